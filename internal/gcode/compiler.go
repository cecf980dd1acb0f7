package gcode

import (
	"github.com/Clinery1/laser-cam/internal/laser"
	"github.com/Clinery1/laser-cam/internal/model"
	"github.com/Clinery1/laser-cam/internal/outline"
)

// Compile generates the GCode program for a sheet. Entities are cut in
// placement order; each entity traces its outer loop first and then its
// holes, once per pass of every sequence item of its condition. Entities
// whose condition reference cannot be resolved use the set's default
// condition, noted by a single warning comment in the program header.
func Compile(sheet *model.Sheet, conds *laser.Set) string {
	var b Builder

	entities := sheet.Entities()
	b.CommentBlock("laser-cam program")
	b.CommentBlock("sheet %gx%gmm, %d entities", sheet.Width, sheet.Height, len(entities))

	missing := 0
	for _, e := range entities {
		if _, fellBack := conds.Resolve(e.ConditionID); fellBack {
			missing++
		}
	}
	if missing > 0 {
		b.CommentBlock("warning: %d entities reference missing conditions, using default `%s`", missing, conds.Default().Name)
	}

	b.Header()

	for _, e := range entities {
		compileEntity(&b, e, conds)
	}

	return b.Finish()
}

func compileEntity(b *Builder, e *model.Entity, conds *laser.Set) {
	cond, _ := conds.Resolve(e.ConditionID)
	geo := e.Geometry()

	b.CommentBlock("Start entity `%s` (%s) with laser condition `%s` and %d sequence items",
		e.Model().Name(), e.ID, cond.Name, len(cond.Sequence))

	switch cond.Mode {
	case laser.ModeDynamic:
		b.M(4).EndBlock()
	case laser.ModeCustom:
		// template is emitted per sequence item below
	default:
		b.M(3).EndBlock()
	}

	for i, seq := range cond.Sequence {
		passes := "pass"
		if seq.Passes > 1 {
			passes = "passes"
		}
		b.CommentBlock("- Begin sequence %d with %d %s at %dmm/min and %g%% power",
			i+1, seq.Passes, passes, seq.Feed, float64(seq.Power)/10)

		if cond.Mode == laser.ModeCustom {
			b.Custom(cond.ExpandTemplate(seq)).EndBlock()
		}

		for pass := 0; pass < seq.Passes; pass++ {
			b.CommentBlock("-- Begin pass %d", pass+1)
			compilePass(b, geo, seq)
		}
	}

	b.M(5).EndBlock()
	b.CommentBlock("End entity `%s`", e.Model().Name())
}

// compilePass traces every loop of the entity once: feed and zero power are
// programmed before the first loop, each loop is entered with a rapid move,
// cut at the item's power, closed back to its start, and left with the
// laser at zero power.
func compilePass(b *Builder, geo *model.TransformedGeometry, seq laser.SequenceItem) {
	loops := make([]outline.Loop, 0, 1+len(geo.Holes))
	loops = append(loops, geo.Outer)
	loops = append(loops, geo.Holes...)

	for i, loop := range loops {
		if i == 0 {
			b.G(1).F(seq.Feed).S(0).EndBlock()
		}
		b.CommentBlock("--- Start loop %d", i)

		start := loop[0]
		b.G(0).X(start.X).Y(start.Y).EndBlock()
		for _, p := range loop[1:] {
			b.G(1).X(p.X).Y(p.Y).S(seq.Power).EndBlock()
		}
		b.G(1).X(start.X).Y(start.Y).S(seq.Power).EndBlock()
		b.G(1).S(0).EndBlock()
	}
}
