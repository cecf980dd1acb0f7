// Package importer turns exchange-file drawing primitives into reconstructed
// part models. Straight lines and circular arcs are supported; arcs are
// tessellated into short segments within a configurable chord tolerance.
// Anything else in a file is skipped with a warning, never a hard failure.
package importer

import (
	"fmt"

	"github.com/Clinery1/laser-cam/internal/geom"
	"github.com/Clinery1/laser-cam/internal/model"
	"github.com/Clinery1/laser-cam/internal/outline"
)

// Config holds the tolerances used during import.
type Config struct {
	// ChordTolerance is the maximum deviation of a tessellated arc from the
	// true arc, in mm.
	ChordTolerance float64
	// JoinEpsilon is the maximum distance between segment endpoints that are
	// considered coincident when assembling loops, in mm.
	JoinEpsilon float64
	// Frame, when non-nil, converts incoming Y-down coordinates into the
	// internal Y-up frame before any other processing.
	Frame *geom.FrameAdapter
}

// DefaultConfig returns the tolerances used when the caller has no opinion.
func DefaultConfig() Config {
	return Config{
		ChordTolerance: 0.01,
		JoinEpsilon:    0.01,
	}
}

// ImportResult holds the results of an import operation. Errors and Warnings
// accumulate per-primitive and per-contour problems; a non-empty Errors slice
// does not imply Models is empty.
type ImportResult struct {
	Models   []*model.Model
	Errors   []string
	Warnings []string
}

// LoadModels runs the full reconstruction pipeline on a bag of primitives:
// tessellation, loop assembly, and outer/hole classification. Each group of
// loops that does not nest inside another becomes its own Model. The first
// model is named after the source, later ones get a numeric suffix.
func LoadModels(prims []Primitive, name string, cfg Config) ImportResult {
	result := ImportResult{}

	segments := Ingest(prims, cfg)
	if len(segments) == 0 {
		result.Errors = append(result.Errors, "no usable line or arc geometry found")
		return result
	}

	loops, diags := outline.Assemble(segments, cfg.JoinEpsilon)
	result.Errors = append(result.Errors, diags.Errors...)
	result.Warnings = append(result.Warnings, diags.Warnings...)
	if len(loops) == 0 {
		result.Errors = append(result.Errors, "no closed contours could be assembled")
		return result
	}

	groups, warns := outline.Classify(loops, cfg.JoinEpsilon)
	result.Warnings = append(result.Warnings, warns...)

	for i, group := range groups {
		modelName := name
		if i > 0 {
			modelName = fmt.Sprintf("%s %d", name, i+1)
		}
		result.Models = append(result.Models, model.New(modelName, group.Outer, group.Holes))
	}
	return result
}

// Ingest normalizes raw primitives into line segments in the internal Y-up
// frame, tessellating arcs within cfg.ChordTolerance.
func Ingest(prims []Primitive, cfg Config) []geom.Segment {
	tol := cfg.ChordTolerance
	if tol <= 0 {
		tol = DefaultConfig().ChordTolerance
	}

	var segments []geom.Segment
	for _, prim := range prims {
		segments = append(segments, prim.tessellate(tol)...)
	}

	if cfg.Frame != nil {
		for i, seg := range segments {
			segments[i] = geom.Segment{
				Start: cfg.Frame.Convert(seg.Start),
				End:   cfg.Frame.Convert(seg.End),
			}
		}
	}
	return segments
}
