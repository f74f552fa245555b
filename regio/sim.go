package regio

import (
	"fmt"
	"sync"
)

type AccessKind int

const (
	AccessRead  AccessKind = 0
	AccessWrite AccessKind = 1
)

func (k AccessKind) String() string {
	if k == AccessWrite {
		return "W"
	}
	return "R"
}

// Access is one entry of the Sim access log
type Access struct {
	Kind  AccessKind
	Addr  uint32
	Value uint32
}

func (a Access) String() string {
	return fmt.Sprintf("%s 0x%08x=0x%08x", a.Kind, a.Addr, a.Value)
}

// PortRegs describes the registers of one GPIO port. PinState, Set and Clear
// are optional and 0 when absent. Set and PinState may share an address.
type PortRegs struct {
	Dir      uint32
	Data     uint32
	PinState uint32
	Set      uint32
	Clear    uint32
}

// Snapshot is the raw state of a Sim
type Snapshot struct {
	Regs   map[uint32]uint32
	Inputs map[uint32]uint32
}

// Sim is a simulated register file. Addresses that are not part of a port
// behave as plain storage with a reset value of 0.
type Sim struct {
	sync.Mutex

	// Record enables the access log. It grows with every access, so leave it
	// off outside of tests.
	Record bool

	regs     map[uint32]uint32
	inputs   map[uint32]uint32
	special  map[uint32]*PortRegs
	accesses []Access
}

func NewSim() *Sim {
	return &Sim{
		regs:    make(map[uint32]uint32),
		inputs:  make(map[uint32]uint32),
		special: make(map[uint32]*PortRegs),
	}
}

// AddPort attaches port semantics to the pin state, set and clear registers
// of p. Writing 1 bits to Set or Clear sets or clears those bits in Data.
// Reading PinState returns Data for output pins and the driven input level
// for input pins. PinState may equal Data, writes then store the output
// latch while reads return the pin levels.
func (s *Sim) AddPort(p PortRegs) {
	assert((p.Set == 0) == (p.Clear == 0), "Set and clear registers must be given together")

	s.Lock()
	defer s.Unlock()

	port := p
	for _, addr := range []uint32{p.PinState, p.Set, p.Clear} {
		if addr != 0 {
			s.special[addr] = &port
		}
	}
}

// Drive sets the external level of the input pins of the port whose pin state
// register is at pinState.
func (s *Sim) Drive(pinState uint32, levels uint32) {
	s.Lock()
	s.inputs[pinState] = levels
	s.Unlock()
}

func (s *Sim) Read32(addr uint32) uint32 {
	s.Lock()
	defer s.Unlock()

	var value uint32
	if p, ok := s.special[addr]; ok {
		if addr == p.PinState {
			dir := s.regs[p.Dir]
			value = (s.regs[p.Data] & dir) | (s.inputs[p.PinState] &^ dir)
		}
	} else {
		value = s.regs[addr]
	}

	if s.Record {
		s.accesses = append(s.accesses, Access{Kind: AccessRead, Addr: addr, Value: value})
	}
	return value
}

func (s *Sim) Write32(addr uint32, value uint32) {
	s.Lock()
	defer s.Unlock()

	if p, ok := s.special[addr]; ok {
		switch addr {
		case p.Data:
			s.regs[addr] = value
		case p.Set:
			s.regs[p.Data] |= value
		case p.Clear:
			s.regs[p.Data] &^= value
		}
		/* Writes to a read only pin state register are dropped */
	} else {
		s.regs[addr] = value
	}

	if s.Record {
		s.accesses = append(s.accesses, Access{Kind: AccessWrite, Addr: addr, Value: value})
	}
}

// Peek returns the stored value of a register without logging the access
func (s *Sim) Peek(addr uint32) uint32 {
	s.Lock()
	defer s.Unlock()

	return s.regs[addr]
}

// Poke stores a value without port semantics and without logging the access
func (s *Sim) Poke(addr uint32, value uint32) {
	s.Lock()
	s.regs[addr] = value
	s.Unlock()
}

// Accesses returns a copy of the access log
func (s *Sim) Accesses() []Access {
	s.Lock()
	defer s.Unlock()

	result := make([]Access, len(s.accesses))
	copy(result, s.accesses)
	return result
}

func (s *Sim) ResetAccesses() {
	s.Lock()
	s.accesses = nil
	s.Unlock()
}

func copyMap(in map[uint32]uint32) map[uint32]uint32 {
	out := make(map[uint32]uint32, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (s *Sim) Snapshot() Snapshot {
	s.Lock()
	defer s.Unlock()

	return Snapshot{
		Regs:   copyMap(s.regs),
		Inputs: copyMap(s.inputs),
	}
}

// Restore replaces the register contents. Port definitions and the access log
// are kept.
func (s *Sim) Restore(snap Snapshot) {
	s.Lock()
	defer s.Unlock()

	s.regs = copyMap(snap.Regs)
	s.inputs = copyMap(snap.Inputs)
}
