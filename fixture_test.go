package collishi

import (
	"embed"
	"log"
	"strconv"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The fixture scenes are plain SVG files holding rects and circles. This is
// not a full SVG handler; it reads exactly the attributes the shapes need and
// panics on anything malformed, since a broken fixture is a bug in the repo,
// not a runtime condition.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func loadSceneFixture(name string) ([]*Box, []*Circle) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	boxes := []*Box{}
	for _, el := range rootEl.FindAll("rect") {
		boxes = append(boxes, &Box{
			X: fixtureAttr(el.Attributes, "x"),
			Y: fixtureAttr(el.Attributes, "y"),
			W: fixtureAttr(el.Attributes, "width"),
			H: fixtureAttr(el.Attributes, "height"),
		})
	}

	circles := []*Circle{}
	for _, el := range rootEl.FindAll("circle") {
		circles = append(circles, &Circle{
			X: fixtureAttr(el.Attributes, "cx"),
			Y: fixtureAttr(el.Attributes, "cy"),
			R: fixtureAttr(el.Attributes, "r"),
		})
	}

	return boxes, circles
}

func fixtureAttr(attributes map[string]string, name string) float64 {
	value, err := strconv.ParseFloat(attributes[name], 64)
	if err != nil {
		log.Fatalf("Invalid %s value %q: %v", name, attributes[name], err)
	}
	return value
}

// Cross-checks the predicates against a scene whose expected overlaps were
// worked out by hand. The last circle is tangent to the second box from
// below, pinning the touching-counts-as-colliding rule once more.
func TestFixtureScene(t *testing.T) {
	boxes, circles := loadSceneFixture("scene")
	require.Len(t, boxes, 3)
	require.Len(t, circles, 2)

	boxBoxCases := []struct {
		first, second int
		expected      bool
	}{
		{0, 1, true},
		{0, 2, false},
		{1, 2, false},
	}
	for _, c := range boxBoxCases {
		first, second := boxes[c.first], boxes[c.second]
		assert.Equal(t, c.expected,
			CollisionBoxBox(first.X, first.Y, first.W, first.H, second.X, second.Y, second.W, second.H),
			"box %d vs box %d", c.first, c.second)
	}

	circleBoxCases := []struct {
		circle, box int
		expected    bool
	}{
		{0, 0, true},
		{0, 1, false},
		{0, 2, false},
		{1, 0, true},
		{1, 1, true},
		{1, 2, false},
	}
	for _, c := range circleBoxCases {
		circle, box := circles[c.circle], boxes[c.box]
		assert.Equal(t, c.expected,
			CollisionCircleBox(circle.X, circle.Y, circle.R, box.X, box.Y, box.W, box.H),
			"circle %d vs box %d", c.circle, c.box)
	}

	first, second := circles[0], circles[1]
	assert.False(t, CollisionCircleCircle(first.X, first.Y, first.R, second.X, second.Y, second.R))
}
