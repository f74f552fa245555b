package gpio

import (
	"sync"

	"github.com/BertoldVdb/mcfgpio/gpiochip"
	"github.com/BertoldVdb/mcfgpio/regio"
	"github.com/google/uuid"
)

// Bank performs the register accesses for one chip. Bits passed to its
// methods are chip local and must be below the chip's pin count.
type Bank struct {
	chip  gpiochip.Chip
	fast  bool
	input uint32

	bus    regio.Bus
	lock   *sync.Mutex
	owners *Owners
}

func (b *Bank) Chip() gpiochip.Chip {
	return b.chip
}

func (b *Bank) Label() string {
	return b.chip.Label
}

func (b *Bank) Base() uint32 {
	return b.chip.Base
}

func (b *Bank) Count() uint32 {
	return b.chip.Count
}

func (b *Bank) Fast() bool {
	return b.fast
}

func (b *Bank) mask(bit uint32) uint32 {
	assert(bit < b.chip.Count, "Bit out of range for chip")
	return b.chip.Mask(bit)
}

func (b *Bank) Request(bit uint32, label string) (uuid.UUID, error) {
	b.mask(bit)
	return b.owners.Request(b.chip.Base+bit, label)
}

func (b *Bank) Free(bit uint32, token uuid.UUID) error {
	b.mask(bit)
	return b.owners.Free(b.chip.Base+bit, token)
}

func (b *Bank) Owner(bit uint32) (string, bool) {
	b.mask(bit)
	return b.owners.Owner(b.chip.Base + bit)
}

func (b *Bank) modify(addr uint32, mask uint32, value bool) {
	v := b.bus.Read32(addr)
	if value {
		v |= mask
	} else {
		v &^= mask
	}
	b.bus.Write32(addr, v)
}

func (b *Bank) DirectionInput(bit uint32) {
	mask := b.mask(bit)

	b.lock.Lock()
	b.modify(b.chip.Dir, mask, false)
	b.lock.Unlock()
}

func (b *Bank) DirectionOutput(bit uint32) {
	mask := b.mask(bit)

	b.lock.Lock()
	b.modify(b.chip.Dir, mask, true)
	b.lock.Unlock()
}

// Output drives the level first and then switches the pin to output, so the
// pin never shows the stale data register value.
func (b *Bank) Output(bit uint32, value bool) {
	mask := b.mask(bit)

	b.lock.Lock()
	b.drive(mask, value)
	b.modify(b.chip.Dir, mask, true)
	b.lock.Unlock()
}

func (b *Bank) IsOutput(bit uint32) bool {
	return b.bus.Read32(b.chip.Dir)&b.mask(bit) != 0
}

// Get reads the pin state register when the chip has one, the data register
// otherwise.
func (b *Bank) Get(bit uint32) bool {
	return b.bus.Read32(b.input)&b.mask(bit) != 0
}

func (b *Bank) drive(mask uint32, value bool) {
	if !b.fast {
		b.modify(b.chip.Data, mask, value)
	} else if value {
		b.bus.Write32(b.chip.Set, mask)
	} else {
		b.bus.Write32(b.chip.Clear, mask)
	}
}

func (b *Bank) Set(bit uint32, value bool) {
	mask := b.mask(bit)

	if b.fast {
		b.drive(mask, value)
		return
	}

	b.lock.Lock()
	b.drive(mask, value)
	b.lock.Unlock()
}
