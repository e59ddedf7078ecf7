package track

import (
	"errors"
	"image"

	"github.com/golangdaddy/gatedrive/pkg/silhouette"
)

// ErrEmptyTable is returned when a gate table has no entries
var ErrEmptyTable = errors.New("gate table is empty")

// Sequencer tracks which gate the car must pass next.
//
// A gate counts on the rising edge of contact only: after an advance the
// sequencer waits for a frame without contact before it accepts another,
// so a car lingering on a gate never skips ahead.
type Sequencer struct {
	table    Table
	sprite   *silhouette.Sprite
	active   int
	gate     *Gate
	touching bool
}

// NewSequencer starts at gate 0 of table
func NewSequencer(table Table, sprite *silhouette.Sprite) (*Sequencer, error) {
	if len(table) == 0 {
		return nil, ErrEmptyTable
	}
	s := &Sequencer{
		table:  append(Table(nil), table...),
		sprite: sprite,
	}
	s.gate = NewGate(0, s.table[0], sprite)
	return s, nil
}

// Active returns the index of the next expected gate
func (s *Sequencer) Active() int {
	return s.active
}

// Len returns the number of gates
func (s *Sequencer) Len() int {
	return len(s.table)
}

// Gate returns the active gate
func (s *Sequencer) Gate() *Gate {
	return s.gate
}

// Table returns a copy of the gate table
func (s *Sequencer) Table() Table {
	return append(Table(nil), s.table...)
}

// Observe feeds this frame's contact state and reports whether the
// sequencer advanced.
func (s *Sequencer) Observe(overlap bool) bool {
	rising := overlap && !s.touching
	s.touching = overlap
	if !rising {
		return false
	}

	s.active = (s.active + 1) % len(s.table)
	s.gate = NewGate(s.active, s.table[s.active], s.sprite)
	return true
}

// Check tests body against the active gate and feeds the result to Observe
func (s *Sequencer) Check(body *silhouette.Silhouette, rect image.Rectangle) bool {
	return s.Observe(s.gate.Touches(body, rect))
}
