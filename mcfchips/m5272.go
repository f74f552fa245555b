package mcfchips

import "github.com/BertoldVdb/mcfgpio/gpiochip"

const m5272MBAR = 0x10000000

// M5272 ports only have a direction and a data register
var M5272 = gpiochip.NewTable("m5272",
	gpiochip.Chip{Label: "PA", Base: 0, Count: 16, Dir: m5272MBAR + 0x84, Data: m5272MBAR + 0x88},
	gpiochip.Chip{Label: "PB", Base: 16, Count: 16, Dir: m5272MBAR + 0x90, Data: m5272MBAR + 0x94},
	gpiochip.Chip{Label: "PC", Base: 32, Count: 16, Dir: m5272MBAR + 0x98, Data: m5272MBAR + 0x9c},
)
