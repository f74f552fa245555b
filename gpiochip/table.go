package gpiochip

import "fmt"

type Error string

func (e Error) Error() string { return string(e) }

const ErrorOverlap = Error("Chip ranges overlap")
const ErrorBadCount = Error("Chip pin count is invalid")
const ErrorDuplicateLabel = Error("Chip label is not unique")
const ErrorHalfFast = Error("Set and clear registers must be given together")
const ErrorMissingRegister = Error("Direction or data register missing")

// Table is an ordered, read only list of chip descriptors
type Table struct {
	name  string
	chips []Chip
}

// NewTable copies the descriptors, later changes to the slice have no effect
func NewTable(name string, chips ...Chip) *Table {
	t := &Table{
		name:  name,
		chips: make([]Chip, len(chips)),
	}
	copy(t.chips, chips)
	return t
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) Len() int {
	return len(t.chips)
}

// Chip returns the descriptor at index i in declaration order
func (t *Table) Chip(i int) Chip {
	return t.chips[i]
}

func (t *Table) Chips() []Chip {
	result := make([]Chip, len(t.chips))
	copy(result, t.chips)
	return result
}

// Pins returns the total number of pins in the table
func (t *Table) Pins() uint32 {
	var n uint32
	for i := range t.chips {
		n += t.chips[i].Count
	}
	return n
}

// Resolve finds the chip owning a global pin number. It returns the chip
// index and the chip local bit.
func (t *Table) Resolve(pin uint32) (int, uint32, bool) {
	for i := range t.chips {
		c := &t.chips[i]
		if c.Owns(pin) {
			return i, pin - c.Base, true
		}
	}
	return -1, 0, false
}

// Validate checks the invariants of the table: pin ranges are disjoint,
// counts fit the registers, labels are unique and set/clear registers come
// in pairs.
func (t *Table) Validate() error {
	labels := make(map[string]bool)

	for i := range t.chips {
		c := &t.chips[i]

		if c.Count == 0 || c.Count > MaxCount {
			return fmt.Errorf("%s: %w", c.Label, ErrorBadCount)
		}
		if uint64(c.Base)+uint64(c.Count) > 1<<32 {
			return fmt.Errorf("%s: %w", c.Label, ErrorBadCount)
		}
		if c.Dir == 0 || c.Data == 0 {
			return fmt.Errorf("%s: %w", c.Label, ErrorMissingRegister)
		}
		if (c.Set == 0) != (c.Clear == 0) {
			return fmt.Errorf("%s: %w", c.Label, ErrorHalfFast)
		}
		if labels[c.Label] {
			return fmt.Errorf("%s: %w", c.Label, ErrorDuplicateLabel)
		}
		labels[c.Label] = true

		for j := 0; j < i; j++ {
			o := &t.chips[j]
			if c.Base < o.Base+o.Count && o.Base < c.Base+c.Count {
				return fmt.Errorf("%s and %s: %w", o, c, ErrorOverlap)
			}
		}
	}

	return nil
}
