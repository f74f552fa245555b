// Package gpiolib is a small GPIO subsystem: chips register their pin range
// and operations, consumers address lines by global pin number.
package gpiolib

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

type Error string

func (e Error) Error() string { return string(e) }

const ErrorRegistrationFailed = Error("Chip registration failed")
const ErrorNoSuchPin = Error("No registered chip owns this GPIO")
const ErrorInvalidLines = Error("Invalid number of lines")
const ErrorLineIndex = Error("Line index out of range")

// maxLines is the widest register a chip can have
const maxLines = 32

type Subsystem struct {
	sync.Mutex

	chips  []Chip
	labels map[string]bool
	log    *logrus.Entry
}

func New(log *logrus.Entry) *Subsystem {
	return &Subsystem{
		labels: make(map[string]bool),
		log:    log,
	}
}

func (s *Subsystem) reject(c Chip, reason string) error {
	return fmt.Errorf("%s: %w: %s", c.Label, ErrorRegistrationFailed, reason)
}

// AddChip registers a chip. Chips with an empty label, an invalid pin count, a
// label that is already taken or a pin range overlapping a registered chip
// are rejected.
func (s *Subsystem) AddChip(c Chip) error {
	if c.Label == "" {
		return s.reject(c, "no label")
	}
	if c.Count == 0 || c.Count > maxLines {
		return s.reject(c, "invalid line count")
	}
	if c.Ops == nil {
		return s.reject(c, "no operations")
	}

	s.Lock()
	defer s.Unlock()

	if s.labels[c.Label] {
		return s.reject(c, "label in use")
	}

	for _, o := range s.chips {
		if uint64(c.Base) < uint64(o.Base)+uint64(o.Count) && uint64(o.Base) < uint64(c.Base)+uint64(c.Count) {
			return s.reject(c, "range overlaps "+o.Label)
		}
	}

	s.chips = append(s.chips, c)
	s.labels[c.Label] = true

	if s.log != nil {
		s.log.Debugf("Registered chip %s: GPIO %d-%d", c.Label, c.Base, c.Base+c.Count-1)
	}
	return nil
}

// Chips returns the registered chips in registration order
func (s *Subsystem) Chips() []ChipInfo {
	s.Lock()
	defer s.Unlock()

	result := make([]ChipInfo, len(s.chips))
	for i, c := range s.chips {
		result[i] = ChipInfo{
			Label: c.Label,
			Base:  c.Base,
			Lines: c.Count,
		}
	}
	return result
}

func (s *Subsystem) lookup(pin uint32) (Chip, uint32, error) {
	s.Lock()
	defer s.Unlock()

	for _, c := range s.chips {
		if pin >= c.Base && pin-c.Base < c.Count {
			return c, pin - c.Base, nil
		}
	}
	return Chip{}, 0, ErrorNoSuchPin
}

func (s *Subsystem) GetLineInfo(pin uint32) (LineInfo, error) {
	result := LineInfo{
		Pin: pin,
	}

	c, bit, err := s.lookup(pin)
	if err != nil {
		return result, err
	}

	result.Chip = c.Label
	result.LineOffset = bit

	if consumer, ok := c.Ops.Owner(bit); ok {
		result.Flags |= LineRequested
		result.Consumer = consumer
	}
	if c.Ops.IsOutput(bit) {
		result.Flags |= LineIsOut
	}

	return result, nil
}
