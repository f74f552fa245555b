package gpio

import (
	"sync"

	"github.com/google/uuid"
)

type owner struct {
	token uuid.UUID
	label string
}

// Owners tracks which global pins are reserved. It is shared by all banks of
// an engine. All pins start unowned and reservations live until freed.
// Reservation is advisory: it does not stop register access to a pin.
type Owners struct {
	sync.Mutex
	pins map[uint32]owner
}

func NewOwners() *Owners {
	return &Owners{
		pins: make(map[uint32]owner),
	}
}

// Request reserves a pin. The returned token must be passed to Free.
func (o *Owners) Request(pin uint32, label string) (uuid.UUID, error) {
	o.Lock()
	defer o.Unlock()

	if _, found := o.pins[pin]; found {
		return uuid.Nil, ErrorAlreadyInUse
	}

	token := uuid.New()
	o.pins[pin] = owner{
		token: token,
		label: label,
	}

	return token, nil
}

// Free releases a reservation made with token. Freeing a pin that is not
// reserved, or reserved with another token, returns ErrorNotOwned.
func (o *Owners) Free(pin uint32, token uuid.UUID) error {
	o.Lock()
	defer o.Unlock()

	current, found := o.pins[pin]
	if !found || current.token != token {
		return ErrorNotOwned
	}

	delete(o.pins, pin)
	return nil
}

// Owner returns the label given when the pin was requested
func (o *Owners) Owner(pin uint32) (string, bool) {
	o.Lock()
	defer o.Unlock()

	current, found := o.pins[pin]
	return current.label, found
}

func (o *Owners) Len() int {
	o.Lock()
	defer o.Unlock()

	return len(o.pins)
}
