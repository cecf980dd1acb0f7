// Package laser defines cutting conditions: named parameter sets the GCode
// compiler resolves per entity. A condition has a mode (constant power,
// feed-proportional dynamic power, or a free-form GCode template) and a
// sequence of pass groups, each with its own power, feed, and pass count.
package laser

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Mode selects how the laser-on command is emitted for a condition.
type Mode string

const (
	// ModeConstant holds the programmed power regardless of feedrate (M3).
	ModeConstant Mode = "constant"
	// ModeDynamic scales power with actual feedrate per GRBL's laser mode (M4).
	ModeDynamic Mode = "dynamic"
	// ModeCustom emits a user-supplied GCode template with the condition's
	// power, feed, and pass values substituted in.
	ModeCustom Mode = "custom"
)

// MaxPower is the top of GRBL's S-word power scale.
const MaxPower = 1000

// SequenceItem is one step of a condition: cut every loop Passes times at
// the given feed (mm/min) and power (0..MaxPower).
type SequenceItem struct {
	Passes int `json:"passes"`
	Feed   int `json:"feed"`
	Power  int `json:"power"`
}

// Condition is a named cutting parameter set. Entities reference conditions
// by ID and tolerate the condition disappearing; the compiler substitutes
// the set's default condition in that case.
type Condition struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Mode     Mode           `json:"mode"`
	Sequence []SequenceItem `json:"sequence"`
	// Template is the custom laser-on GCode, used only in ModeCustom.
	// Placeholders [Power], [Feed], and [Passes] are replaced at compile
	// time with the active sequence item's values.
	Template string `json:"template,omitempty"`
	// SaveOrder preserves the on-disk list position across save/reload.
	SaveOrder int `json:"save_order"`

	// Dirty is set on any field edit and cleared on save. The persistence
	// layer uses it to skip rewriting unchanged conditions; it is never
	// serialized.
	Dirty bool `json:"-"`
}

// defaultSequence is the single moderate step new conditions start with.
func defaultSequence() []SequenceItem {
	return []SequenceItem{{Passes: 1, Feed: 1000, Power: 300}}
}

// NewCondition returns a constant-mode condition with one moderate
// sequence step.
func NewCondition(name string) *Condition {
	return &Condition{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Mode:     ModeConstant,
		Sequence: defaultSequence(),
		Dirty:    true,
	}
}

// SetName renames the condition and marks it dirty.
func (c *Condition) SetName(name string) {
	if c.Name != name {
		c.Name = name
		c.Dirty = true
	}
}

// SetMode changes the mode and marks the condition dirty.
func (c *Condition) SetMode(m Mode) {
	if c.Mode != m {
		c.Mode = m
		c.Dirty = true
	}
}

// SetTemplate replaces the custom GCode template and marks the condition dirty.
func (c *Condition) SetTemplate(t string) {
	if c.Template != t {
		c.Template = t
		c.Dirty = true
	}
}

// SetSequence replaces the whole pass sequence and marks the condition dirty.
func (c *Condition) SetSequence(items []SequenceItem) {
	c.Sequence = items
	c.Dirty = true
}

// ExpandTemplate substitutes a sequence item's values into the condition's
// template.
func (c *Condition) ExpandTemplate(item SequenceItem) string {
	out := c.Template
	out = strings.ReplaceAll(out, "[Power]", strconv.Itoa(item.Power))
	out = strings.ReplaceAll(out, "[Feed]", strconv.Itoa(item.Feed))
	out = strings.ReplaceAll(out, "[Passes]", strconv.Itoa(item.Passes))
	return out
}
