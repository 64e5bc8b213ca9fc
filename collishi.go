// Package collishi provides exact 2D collision predicates between points,
// line segments, circles, axis-aligned boxes and triangles.
//
// Every pairwise combination of those shapes gets one predicate, a pure
// function of scalar coordinates returning a plain bool. The predicates never
// allocate, never divide, and are total: degenerate shapes such as zero-length
// segments, zero-radius circles or zero-area triangles yield a well defined
// answer instead of trapping. Touching counts as colliding throughout.
//
// The tests are the single source of truth for the numeric edge cases; the
// algorithms themselves are small applications of the separating axis theorem
// together with division-free fraction sign tests.
package collishi
