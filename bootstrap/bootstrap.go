// Package bootstrap registers the chips of a GPIO engine with the GPIO
// subsystem at startup.
package bootstrap

import (
	"sync"

	"github.com/BertoldVdb/mcfgpio/gpio"
	"github.com/BertoldVdb/mcfgpio/gpiolib"
	"github.com/sirupsen/logrus"
)

type Error string

func (e Error) Error() string { return string(e) }

const ErrorAlreadyRun = Error("Bootstrap already ran")

// Registrar accepts chip registrations, gpiolib.Subsystem implements it
type Registrar interface {
	AddChip(c gpiolib.Chip) error
}

type Bootstrapper struct {
	Registrar Registrar
	Log       *logrus.Entry

	sync.Mutex
	done bool
}

// Run registers every bank of e in table order. A chip that fails to register
// is logged and skipped, the remaining chips are still registered. Run only
// does work the first time it is called.
func (b *Bootstrapper) Run(e *gpio.Engine) (int, error) {
	b.Lock()
	defer b.Unlock()

	if b.done {
		return 0, ErrorAlreadyRun
	}
	b.done = true

	registered := 0
	for _, bank := range e.Banks() {
		err := b.Registrar.AddChip(gpiolib.Chip{
			Label: bank.Label(),
			Base:  bank.Base(),
			Count: bank.Count(),
			Ops:   bank,
		})

		if err != nil {
			if b.Log != nil {
				b.Log.WithError(err).Warnf("Failed to register chip %s", bank.Label())
			}
			continue
		}
		registered++
	}

	if b.Log != nil {
		b.Log.Infof("Registered %d of %d GPIO chips", registered, len(e.Banks()))
	}
	return registered, nil
}
