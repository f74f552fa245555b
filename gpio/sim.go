package gpio

import (
	"github.com/BertoldVdb/mcfgpio/gpiochip"
	"github.com/BertoldVdb/mcfgpio/regio"
)

// NewSim returns a simulated register file with the ports of table attached
func NewSim(table *gpiochip.Table) *regio.Sim {
	sim := regio.NewSim()
	for _, c := range table.Chips() {
		sim.AddPort(regio.PortRegs{
			Dir:      c.Dir,
			Data:     c.Data,
			PinState: c.PinState,
			Set:      c.Set,
			Clear:    c.Clear,
		})
	}
	return sim
}
