package importer

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/Clinery1/laser-cam/internal/geom"
)

// planeEpsilon is the maximum coordinate span along an axis for the drawing
// to count as flat in that axis.
const planeEpsilon = 1e-6

// ImportDXF imports part models from a DXF file. LINE, ARC, CIRCLE, and
// LWPOLYLINE entities are accepted; every other entity type is skipped with
// a warning. The drawing must be flat in one of the XY, XZ, or YZ planes;
// coordinates are projected into the internal 2D frame accordingly.
func ImportDXF(path string, cfg Config) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	prims, diags := primitivesFromEntities(entities)
	result.Errors = append(result.Errors, diags.Errors...)
	result.Warnings = append(result.Warnings, diags.Warnings...)
	if len(prims) == 0 {
		return result
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	loaded := LoadModels(prims, name, cfg)
	loaded.Errors = append(result.Errors, loaded.Errors...)
	loaded.Warnings = append(result.Warnings, loaded.Warnings...)
	return loaded
}

type diagnostics struct {
	Errors   []string
	Warnings []string
}

// rawLine is a LINE's endpoints before plane projection.
type rawLine struct {
	start [3]float64
	end   [3]float64
}

// rawArc is an ARC or CIRCLE before plane projection. Angles in radians,
// already normalized to a counter-clockwise sweep.
type rawArc struct {
	center     [3]float64
	radius     float64
	startAngle float64
	endAngle   float64
}

// primitivesFromEntities extracts line and arc primitives, detecting the
// drawing plane from the coordinate extents of all accepted entities.
func primitivesFromEntities(entities []entity.Entity) ([]Primitive, diagnostics) {
	var diags diagnostics
	var lines []rawLine
	var arcs []rawArc
	var polylines []*entity.LwPolyline

	skipped := map[string]int{}
	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.Line:
			lines = append(lines, rawLine{
				start: [3]float64{e.Start[0], e.Start[1], e.Start[2]},
				end:   [3]float64{e.End[0], e.End[1], e.End[2]},
			})

		case *entity.Arc:
			start := e.Angle[0] * math.Pi / 180
			end := e.Angle[1] * math.Pi / 180
			for end <= start {
				end += 2 * math.Pi
			}
			arcs = append(arcs, rawArc{
				center:     [3]float64{e.Circle.Center[0], e.Circle.Center[1], e.Circle.Center[2]},
				radius:     e.Circle.Radius,
				startAngle: start,
				endAngle:   end,
			})

		case *entity.Circle:
			arcs = append(arcs, rawArc{
				center:     [3]float64{e.Center[0], e.Center[1], e.Center[2]},
				radius:     e.Radius,
				startAngle: 0,
				endAngle:   2 * math.Pi,
			})

		case *entity.LwPolyline:
			polylines = append(polylines, e)

		default:
			skipped[fmt.Sprintf("%T", ent)]++
		}
	}
	for kind, count := range skipped {
		diags.Warnings = append(diags.Warnings,
			fmt.Sprintf("skipped %d unsupported %s entities", count, kind))
	}

	project, planeErr := detectPlane(lines, arcs)
	if planeErr != "" {
		diags.Errors = append(diags.Errors, planeErr)
		return nil, diags
	}

	var prims []Primitive
	for _, l := range lines {
		prims = append(prims, LinePrimitive{Start: project(l.start), End: project(l.end)})
	}
	for _, a := range arcs {
		prims = append(prims, ArcPrimitive{
			Center:     project(a.center),
			Radius:     a.radius,
			StartAngle: a.startAngle,
			EndAngle:   a.endAngle,
		})
	}
	for _, lw := range polylines {
		prims = append(prims, lwPolylinePrimitives(lw)...)
	}
	return prims, diags
}

// detectPlane finds the axis with zero coordinate span and returns the
// projection into the remaining two. Returns an error string if the drawing
// is not flat in any axis-aligned plane.
func detectPlane(lines []rawLine, arcs []rawArc) (func([3]float64) geom.Point2, string) {
	var min, max [3]float64
	first := true
	extend := func(p [3]float64) {
		if first {
			min, max = p, p
			first = false
			return
		}
		for i := 0; i < 3; i++ {
			min[i] = math.Min(min[i], p[i])
			max[i] = math.Max(max[i], p[i])
		}
	}
	for _, l := range lines {
		extend(l.start)
		extend(l.end)
	}
	for _, a := range arcs {
		extend(a.center)
	}

	if first {
		// Only polylines present; those are 2D XY by definition.
		return projectXY, ""
	}

	switch {
	case max[2]-min[2] <= planeEpsilon:
		return projectXY, ""
	case max[1]-min[1] <= planeEpsilon:
		return func(p [3]float64) geom.Point2 { return geom.Point2{X: p[0], Y: p[2]} }, ""
	case max[0]-min[0] <= planeEpsilon:
		return func(p [3]float64) geom.Point2 { return geom.Point2{X: p[1], Y: p[2]} }, ""
	}
	return nil, "drawing is not flat in any of the XY, XZ, or YZ planes"
}

func projectXY(p [3]float64) geom.Point2 {
	return geom.Point2{X: p[0], Y: p[1]}
}

// lwPolylinePrimitives converts an LWPOLYLINE into line and arc primitives.
// A non-zero bulge on a vertex makes the edge to the next vertex an arc; the
// bulge value is the tangent of a quarter of the included angle.
func lwPolylinePrimitives(lw *entity.LwPolyline) []Primitive {
	n := len(lw.Vertices)
	if n < 2 {
		return nil
	}

	var prims []Primitive
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		if next == 0 && !lw.Closed {
			break
		}
		p1 := geom.Point2{X: lw.Vertices[i][0], Y: lw.Vertices[i][1]}
		p2 := geom.Point2{X: lw.Vertices[next][0], Y: lw.Vertices[next][1]}

		bulge := 0.0
		if i < len(lw.Bulges) {
			bulge = lw.Bulges[i]
		}
		if math.Abs(bulge) < 1e-9 {
			prims = append(prims, LinePrimitive{Start: p1, End: p2})
			continue
		}
		if arc, ok := bulgeArc(p1, p2, bulge); ok {
			prims = append(prims, arc)
		} else {
			prims = append(prims, LinePrimitive{Start: p1, End: p2})
		}
	}
	return prims
}

// bulgeArc converts a bulge edge into an ArcPrimitive. Reports false for a
// degenerate (zero-length) chord.
func bulgeArc(p1, p2 geom.Point2, bulge float64) (ArcPrimitive, bool) {
	chord := p1.Dist(p2)
	if chord < 1e-9 {
		return ArcPrimitive{}, false
	}

	sagitta := math.Abs(bulge) * chord / 2
	radius := (chord*chord/(4*sagitta) + sagitta) / 2

	// Perpendicular from the chord midpoint toward the arc center.
	mx := (p1.X + p2.X) / 2
	my := (p1.Y + p2.Y) / 2
	dx := (p2.X - p1.X) / chord
	dy := (p2.Y - p1.Y) / chord
	// A counter-clockwise arc has its center on the left of the chord
	// direction, a clockwise one on the right.
	perpX, perpY := -dy, dx
	if bulge < 0 {
		perpX, perpY = -perpX, -perpY
	}
	dist := radius - sagitta
	center := geom.Point2{X: mx + perpX*dist, Y: my + perpY*dist}

	start := math.Atan2(p1.Y-center.Y, p1.X-center.X)
	end := math.Atan2(p2.Y-center.Y, p2.X-center.X)

	return ArcPrimitive{
		Center:     center,
		Radius:     radius,
		StartAngle: start,
		EndAngle:   end,
		Clockwise:  bulge < 0,
	}, true
}
