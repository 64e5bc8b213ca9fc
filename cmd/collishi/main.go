package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	collishi "github.com/Shidacea/Collishi"
	"github.com/Shidacea/Collishi/dbg"
)

// Demo of the collision predicates. Input on stdin should be one shape per
// line, given as a keyword followed by its parameters:
//
//	point x y
//	line x y dx dy
//	circle x y r
//	box x y w h
//	triangle x y sxa sya sxb syb
//
// Blank lines and lines starting with # are skipped. The program prints the
// collision verdict for every shape pair, and can optionally render the scene
// to a PNG and display it inline on terminals that support it.

var (
	draw  = kingpin.Flag("draw", "Render the scene and display it inline.").Bool()
	scale = kingpin.Flag("scale", "Pixels per coordinate unit for --draw.").Default("20").Float64()
	out   = kingpin.Flag("out", "PNG output path for --draw.").Default("/tmp/collishi_scene.png").String()
)

func main() {
	kingpin.Parse()

	shapes, err := readShapes(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Read %d shapes\n", len(shapes))

	for i, a := range shapes {
		for _, b := range shapes[i+1:] {
			colliding, err := collide(a, b)
			label := fmt.Sprintf("%s (%s) vs %s (%s)", dbg.Name(a), kindOf(a), dbg.Name(b), kindOf(b))
			switch {
			case err != nil:
				fmt.Printf("%s: %s\n", label, aurora.Yellow(err.Error()))
			case colliding:
				fmt.Printf("%s: %s\n", label, aurora.Green("collision"))
			default:
				fmt.Printf("%s: %s\n", label, aurora.Red("clear"))
			}
		}
	}

	if *draw {
		if err := collishi.DrawScene(shapes, *scale, *out); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := collishi.CatScene(*out, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func readShapes(in *os.File) ([]collishi.Shape, error) {
	shapes := []collishi.Shape{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		shape, err := parseShape(line)
		if err != nil {
			return nil, errors.Wrapf(err, "bad shape line %q", line)
		}
		shapes = append(shapes, shape)
	}
	return shapes, scanner.Err()
}

func parseShape(line string) (collishi.Shape, error) {
	fields := strings.Fields(line)
	kind := fields[0]
	arity := map[string]int{"point": 2, "line": 4, "circle": 3, "box": 4, "triangle": 6}[kind]
	if arity == 0 {
		return nil, errors.Errorf("unknown shape kind %q", kind)
	}
	if len(fields)-1 != arity {
		return nil, errors.Errorf("%s needs %d parameters, got %d", kind, arity, len(fields)-1)
	}

	params, err := parseParams(fields[1:])
	if err != nil {
		return nil, err
	}

	switch kind {
	case "point":
		return &collishi.Point{X: params[0], Y: params[1]}, nil
	case "line":
		return &collishi.Line{X: params[0], Y: params[1], DX: params[2], DY: params[3]}, nil
	case "circle":
		return &collishi.Circle{X: params[0], Y: params[1], R: params[2]}, nil
	case "box":
		return &collishi.Box{X: params[0], Y: params[1], W: params[2], H: params[3]}, nil
	default:
		return &collishi.Triangle{
			X: params[0], Y: params[1],
			SXA: params[2], SYA: params[3],
			SXB: params[4], SYB: params[5],
		}, nil
	}
}

func parseParams(fields []string) ([]float64, error) {
	params := make([]float64, len(fields))
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %d", i+1)
		}
		params[i] = value
	}
	return params, nil
}

// The library exposes each unordered shape pair exactly once, with the shapes
// in a fixed order. This dispatcher normalizes the order and maps the pair to
// its predicate. Box/triangle and triangle/triangle have no predicate.
func collide(a, b collishi.Shape) (bool, error) {
	if rank(a) > rank(b) {
		a, b = b, a
	}

	switch first := a.(type) {
	case *collishi.Point:
		switch second := b.(type) {
		case *collishi.Point:
			return collishi.CollisionPointPoint(first.X, first.Y, second.X, second.Y), nil
		case *collishi.Line:
			return collishi.CollisionPointLine(first.X, first.Y, second.X, second.Y, second.DX, second.DY), nil
		case *collishi.Circle:
			return collishi.CollisionPointCircle(first.X, first.Y, second.X, second.Y, second.R), nil
		case *collishi.Box:
			return collishi.CollisionPointBox(first.X, first.Y, second.X, second.Y, second.W, second.H), nil
		case *collishi.Triangle:
			return collishi.CollisionPointTriangle(first.X, first.Y, second.X, second.Y, second.SXA, second.SYA, second.SXB, second.SYB), nil
		}
	case *collishi.Line:
		switch second := b.(type) {
		case *collishi.Line:
			return collishi.CollisionLineLine(first.X, first.Y, first.DX, first.DY, second.X, second.Y, second.DX, second.DY), nil
		case *collishi.Circle:
			return collishi.CollisionLineCircle(first.X, first.Y, first.DX, first.DY, second.X, second.Y, second.R), nil
		case *collishi.Box:
			return collishi.CollisionLineBox(first.X, first.Y, first.DX, first.DY, second.X, second.Y, second.W, second.H), nil
		case *collishi.Triangle:
			return collishi.CollisionLineTriangle(first.X, first.Y, first.DX, first.DY, second.X, second.Y, second.SXA, second.SYA, second.SXB, second.SYB), nil
		}
	case *collishi.Circle:
		switch second := b.(type) {
		case *collishi.Circle:
			return collishi.CollisionCircleCircle(first.X, first.Y, first.R, second.X, second.Y, second.R), nil
		case *collishi.Box:
			return collishi.CollisionCircleBox(first.X, first.Y, first.R, second.X, second.Y, second.W, second.H), nil
		case *collishi.Triangle:
			return collishi.CollisionCircleTriangle(first.X, first.Y, first.R, second.X, second.Y, second.SXA, second.SYA, second.SXB, second.SYB), nil
		}
	case *collishi.Box:
		if second, ok := b.(*collishi.Box); ok {
			return collishi.CollisionBoxBox(first.X, first.Y, first.W, first.H, second.X, second.Y, second.W, second.H), nil
		}
	}

	return false, errors.Errorf("no predicate for %s/%s", kindOf(a), kindOf(b))
}

func rank(s collishi.Shape) int {
	switch s.(type) {
	case *collishi.Point:
		return 0
	case *collishi.Line:
		return 1
	case *collishi.Circle:
		return 2
	case *collishi.Box:
		return 3
	default:
		return 4
	}
}

func kindOf(s collishi.Shape) string {
	switch s.(type) {
	case *collishi.Point:
		return "point"
	case *collishi.Line:
		return "line"
	case *collishi.Circle:
		return "circle"
	case *collishi.Box:
		return "box"
	default:
		return "triangle"
	}
}
