// Package gpio drives ColdFire style GPIO ports through their registers. Pins
// are addressed by a flat global number which the Engine maps to a Bank and a
// chip local bit.
package gpio

import (
	"sync"

	"github.com/BertoldVdb/mcfgpio/gpiochip"
	"github.com/BertoldVdb/mcfgpio/regio"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Error string

func (e Error) Error() string { return string(e) }

const ErrorAlreadyInUse = Error("GPIO already in use")
const ErrorNotOwned = Error("GPIO not owned by caller")
const ErrorNoSuchPin = Error("No chip owns this GPIO")

func assert(condition bool, reason string) {
	if !condition {
		panic(reason)
	}
}

type Engine struct {
	bus    regio.Bus
	table  *gpiochip.Table
	banks  []*Bank
	owners *Owners
}

// New builds one Bank per descriptor in table order. Chips sharing a data
// register share one lock. The table is expected to be valid, see
// gpiochip.Table.Validate.
func New(bus regio.Bus, table *gpiochip.Table, log *logrus.Entry) *Engine {
	e := &Engine{
		bus:    bus,
		table:  table,
		owners: NewOwners(),
	}

	locks := make(map[uint32]*sync.Mutex)
	for _, c := range table.Chips() {
		lock, found := locks[c.Data]
		if !found {
			lock = &sync.Mutex{}
			locks[c.Data] = lock
		}

		bank := &Bank{
			chip:   c,
			fast:   c.Fast(),
			input:  c.Input(),
			bus:    bus,
			lock:   lock,
			owners: e.owners,
		}
		e.banks = append(e.banks, bank)

		if log != nil {
			log.Debugf("Chip %s: %d pins at %d, %s registers", c.Label, c.Count, c.Base, c.Topology())
		}
	}

	return e
}

func (e *Engine) Table() *gpiochip.Table {
	return e.table
}

// Banks returns the banks in table order
func (e *Engine) Banks() []*Bank {
	result := make([]*Bank, len(e.banks))
	copy(result, e.banks)
	return result
}

func (e *Engine) Owners() *Owners {
	return e.owners
}

// Resolve returns the bank owning a global pin and the chip local bit
func (e *Engine) Resolve(pin uint32) (*Bank, uint32, error) {
	index, bit, ok := e.table.Resolve(pin)
	if !ok {
		return nil, 0, ErrorNoSuchPin
	}
	return e.banks[index], bit, nil
}

func (e *Engine) Request(pin uint32, label string) (uuid.UUID, error) {
	b, bit, err := e.Resolve(pin)
	if err != nil {
		return uuid.Nil, err
	}
	return b.Request(bit, label)
}

func (e *Engine) Free(pin uint32, token uuid.UUID) error {
	b, bit, err := e.Resolve(pin)
	if err != nil {
		return err
	}
	return b.Free(bit, token)
}

func (e *Engine) DirectionInput(pin uint32) error {
	b, bit, err := e.Resolve(pin)
	if err != nil {
		return err
	}
	b.DirectionInput(bit)
	return nil
}

func (e *Engine) DirectionOutput(pin uint32) error {
	b, bit, err := e.Resolve(pin)
	if err != nil {
		return err
	}
	b.DirectionOutput(bit)
	return nil
}

func (e *Engine) Output(pin uint32, value bool) error {
	b, bit, err := e.Resolve(pin)
	if err != nil {
		return err
	}
	b.Output(bit, value)
	return nil
}

func (e *Engine) IsOutput(pin uint32) (bool, error) {
	b, bit, err := e.Resolve(pin)
	if err != nil {
		return false, err
	}
	return b.IsOutput(bit), nil
}

func (e *Engine) Get(pin uint32) (bool, error) {
	b, bit, err := e.Resolve(pin)
	if err != nil {
		return false, err
	}
	return b.Get(bit), nil
}

func (e *Engine) Set(pin uint32, value bool) error {
	b, bit, err := e.Resolve(pin)
	if err != nil {
		return err
	}
	b.Set(bit, value)
	return nil
}
