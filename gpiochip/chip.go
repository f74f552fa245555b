// Package gpiochip describes GPIO port groups ("chips") by their register
// addresses and the range of global pin numbers they own.
package gpiochip

import "fmt"

// MaxCount is the width of the port registers
const MaxCount = 32

type Topology int

const (
	// TopologyBasic has a direction and a data register only
	TopologyBasic Topology = 0
	// TopologyPinState adds a register reflecting the pin levels
	TopologyPinState Topology = 1
	// TopologyFast adds set and clear registers
	TopologyFast Topology = 2
)

func (t Topology) String() string {
	switch t {
	case TopologyBasic:
		return "basic"
	case TopologyPinState:
		return "pinstate"
	case TopologyFast:
		return "fast"
	}
	return fmt.Sprintf("Topology(%d)", int(t))
}

// Chip describes one port group. Optional register addresses are 0 when the
// port does not have that register.
type Chip struct {
	Label string
	Base  uint32
	Count uint32

	Dir      uint32
	Data     uint32
	PinState uint32
	Set      uint32
	Clear    uint32
}

// Fast is true when output levels can be changed with a single write to the
// set or clear register.
func (c *Chip) Fast() bool {
	return c.Set != 0 && c.Clear != 0
}

func (c *Chip) Topology() Topology {
	if c.Fast() {
		return TopologyFast
	}
	if c.PinState != 0 {
		return TopologyPinState
	}
	return TopologyBasic
}

// Input is the register read to get the pin levels
func (c *Chip) Input() uint32 {
	if c.PinState != 0 {
		return c.PinState
	}
	return c.Data
}

// Registers returns the addresses of all registers the chip has
func (c *Chip) Registers() []uint32 {
	var result []uint32
	for _, addr := range []uint32{c.Dir, c.Data, c.PinState, c.Set, c.Clear} {
		if addr != 0 {
			result = append(result, addr)
		}
	}
	return result
}

// Owns reports whether the global pin number falls inside [Base, Base+Count)
func (c *Chip) Owns(pin uint32) bool {
	return pin >= c.Base && pin-c.Base < c.Count
}

func (c *Chip) Mask(bit uint32) uint32 {
	return 1 << bit
}

func (c *Chip) String() string {
	return fmt.Sprintf("%s[%d-%d]", c.Label, c.Base, c.Base+c.Count-1)
}
