// Package gcode compiles a placed sheet into GRBL-flavored GCode. Output is
// deterministic: the same sheet and conditions always produce the same bytes,
// so generated programs diff cleanly and tests can compare exact output.
package gcode

import (
	"fmt"
	"strings"
)

// Builder accumulates GCode one block (line) at a time. Words within a block
// are space-separated; a block's comment is appended in parentheses. Finish
// terminates the program with M30.
type Builder struct {
	out     strings.Builder
	words   []string
	comment string
}

// Header emits the standard program prologue: G54 work offset, G17 XY plane,
// G21 millimeters, G90 absolute coordinates, G94 feed per minute.
func (b *Builder) Header() {
	b.G(54).G(17).G(21).G(90).G(94).EndBlock()
}

func (b *Builder) G(n int) *Builder { return b.word("G%d", n) }
func (b *Builder) M(n int) *Builder { return b.word("M%d", n) }

// S sets laser power. GRBL scales S from 0 to 1000.
func (b *Builder) S(power int) *Builder { return b.word("S%d", power) }

// F sets the feedrate in mm/min.
func (b *Builder) F(feed int) *Builder { return b.word("F%d", feed) }

func (b *Builder) X(v float64) *Builder { return b.word("X%.6f", v) }
func (b *Builder) Y(v float64) *Builder { return b.word("Y%.6f", v) }

// Custom appends a raw word, used for expanded condition templates.
func (b *Builder) Custom(s string) *Builder {
	b.words = append(b.words, s)
	return b
}

// Comment attaches a comment to the current block.
func (b *Builder) Comment(format string, args ...any) *Builder {
	b.comment = fmt.Sprintf(format, args...)
	return b
}

// CommentBlock emits a standalone comment line.
func (b *Builder) CommentBlock(format string, args ...any) {
	b.Comment(format, args...).EndBlock()
}

// EndBlock flushes the current block as one output line.
func (b *Builder) EndBlock() {
	b.out.WriteString(strings.Join(b.words, " "))
	if b.comment != "" {
		if len(b.words) > 0 {
			b.out.WriteByte(' ')
		}
		b.out.WriteByte('(')
		b.out.WriteString(b.comment)
		b.out.WriteByte(')')
	}
	b.out.WriteByte('\n')
	b.words = b.words[:0]
	b.comment = ""
}

// Finish flushes any pending block, appends the M30 program end, and
// returns the full program text.
func (b *Builder) Finish() string {
	if len(b.words) > 0 || b.comment != "" {
		b.EndBlock()
	}
	b.M(30).EndBlock()
	return b.out.String()
}

func (b *Builder) word(format string, args ...any) *Builder {
	b.words = append(b.words, fmt.Sprintf(format, args...))
	return b
}
