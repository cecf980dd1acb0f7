package importer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clinery1/laser-cam/internal/geom"
)

func TestSegmentsForArcSagittaBound(t *testing.T) {
	const (
		radius = 10.0
		tol    = 0.01
		span   = math.Pi / 2
	)

	n := SegmentsForArc(radius, span, tol)
	step := span / float64(n)

	// The sagitta of each chord stays within the tolerance.
	sagitta := radius * (1 - math.Cos(step/2))
	assert.LessOrEqual(t, sagitta, tol+1e-12)

	// One fewer segment would overshoot it: n is minimal.
	if n > 2 {
		coarse := span / float64(n-1)
		assert.Greater(t, radius*(1-math.Cos(coarse/2)), tol)
	}
}

func TestSegmentsForArcDegenerate(t *testing.T) {
	assert.Equal(t, 2, SegmentsForArc(0.005, math.Pi, 0.01), "tolerance above radius still splits the arc")
	assert.Equal(t, 2, SegmentsForArc(10, 0.001, 0.01), "tiny spans keep the two-segment floor")
}

func TestArcTessellationHitsEndpoints(t *testing.T) {
	arc := ArcPrimitive{Center: geom.Point2{X: 0, Y: 0}, Radius: 10, StartAngle: 0, EndAngle: math.Pi / 2}
	segs := arc.tessellate(0.01)
	require.NotEmpty(t, segs)

	assert.True(t, segs[0].Start.Near(geom.Point2{X: 10, Y: 0}, 1e-9))
	assert.True(t, segs[len(segs)-1].End.Near(geom.Point2{X: 0, Y: 10}, 1e-9))

	// Every vertex lies on the circle.
	for _, s := range segs {
		assert.InDelta(t, 10.0, s.Start.Dist(geom.Point2{}), 1e-9)
	}

	// Chord midpoints stay within the sagitta tolerance of the circle.
	for _, s := range segs {
		mid := geom.Point2{X: (s.Start.X + s.End.X) / 2, Y: (s.Start.Y + s.End.Y) / 2}
		assert.InDelta(t, 10.0, mid.Dist(geom.Point2{}), 0.01)
	}
}

func TestCircleTessellationCloses(t *testing.T) {
	circle := CirclePrimitive(geom.Point2{X: 5, Y: 5}, 3)
	segs := circle.tessellate(0.01)
	require.NotEmpty(t, segs)
	assert.True(t, segs[len(segs)-1].End.Near(segs[0].Start, 1e-9), "a full circle must close on itself")
}

func TestIngestFrameFlip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Frame = &geom.FrameAdapter{Height: 100}

	prims := []Primitive{LinePrimitive{Start: geom.Point2{X: 1, Y: 10}, End: geom.Point2{X: 2, Y: 20}}}
	segs := Ingest(prims, cfg)
	require.Len(t, segs, 1)
	assert.Equal(t, geom.Point2{X: 1, Y: 90}, segs[0].Start)
	assert.Equal(t, geom.Point2{X: 2, Y: 80}, segs[0].End)
}

func squarePrims(x, y, size float64) []Primitive {
	return []Primitive{
		LinePrimitive{Start: geom.Point2{X: x, Y: y}, End: geom.Point2{X: x + size, Y: y}},
		LinePrimitive{Start: geom.Point2{X: x + size, Y: y}, End: geom.Point2{X: x + size, Y: y + size}},
		LinePrimitive{Start: geom.Point2{X: x + size, Y: y + size}, End: geom.Point2{X: x, Y: y + size}},
		LinePrimitive{Start: geom.Point2{X: x, Y: y + size}, End: geom.Point2{X: x, Y: y}},
	}
}

func TestLoadModelsSquareWithHole(t *testing.T) {
	prims := append(squarePrims(0, 0, 20), squarePrims(5, 5, 4)...)

	result := LoadModels(prims, "bracket", DefaultConfig())
	require.Empty(t, result.Errors)
	require.Len(t, result.Models, 1)

	m := result.Models[0]
	assert.Equal(t, "bracket", m.Name())
	assert.Len(t, m.Outer(), 4)
	require.Len(t, m.Holes(), 1)
	assert.True(t, m.Outer().IsCCW())
	assert.False(t, m.Holes()[0].IsCCW(), "holes wind clockwise")
	assert.InDelta(t, 20*20-4*4, m.Area(), 1e-9)
}

func TestLoadModelsSeparateShapesGetNumberedNames(t *testing.T) {
	prims := append(squarePrims(0, 0, 10), squarePrims(100, 0, 10)...)

	result := LoadModels(prims, "part", DefaultConfig())
	require.Empty(t, result.Errors)
	require.Len(t, result.Models, 2)
	assert.Equal(t, "part", result.Models[0].Name())
	assert.Equal(t, "part 2", result.Models[1].Name())
}

func TestLoadModelsCircle(t *testing.T) {
	prims := []Primitive{CirclePrimitive(geom.Point2{X: 0, Y: 0}, 10)}

	result := LoadModels(prims, "disc", DefaultConfig())
	require.Empty(t, result.Errors)
	require.Len(t, result.Models, 1)

	// Tessellated circle area converges on the true area from below.
	area := result.Models[0].Area()
	assert.InDelta(t, math.Pi*100, area, math.Pi*100*0.01)
	assert.Less(t, area, math.Pi*100)
}

func TestLoadModelsOpenContourReported(t *testing.T) {
	prims := []Primitive{
		LinePrimitive{Start: geom.Point2{X: 0, Y: 0}, End: geom.Point2{X: 10, Y: 0}},
		LinePrimitive{Start: geom.Point2{X: 10, Y: 0}, End: geom.Point2{X: 10, Y: 10}},
	}

	result := LoadModels(prims, "broken", DefaultConfig())
	assert.Empty(t, result.Models)
	assert.NotEmpty(t, result.Errors, "an unclosable contour is an error, not a silent drop")
}
