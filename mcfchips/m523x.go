package mcfchips

import "github.com/BertoldVdb/mcfgpio/gpiochip"

const (
	m523xIPSBAR = 0x40000000
	m523xGPIO   = m523xIPSBAR + 0x100000
	m523xEPORT  = m523xIPSBAR + 0x130000

	m523xEPDDR = m523xEPORT + 0x04
	m523xEPDR  = m523xEPORT + 0x0c
	m523xEPPDR = m523xEPORT + 0x10
)

/* Port output data, direction, pin data/set and clear registers */
func m523xPODR(port uint32) uint32   { return m523xGPIO + 0x000 + port*4 }
func m523xPDDR(port uint32) uint32   { return m523xGPIO + 0x080 + port*4 }
func m523xPPDSDR(port uint32) uint32 { return m523xGPIO + 0x100 + port*4 }
func m523xPCLRR(port uint32) uint32  { return m523xGPIO + 0x180 + port*4 }

func m523xPort(label string, port uint32, base uint32, count uint32) gpiochip.Chip {
	return gpiochip.Chip{
		Label:    label,
		Base:     base,
		Count:    count,
		Dir:      m523xPDDR(port),
		Data:     m523xPODR(port),
		PinState: m523xPPDSDR(port),
		Set:      m523xPPDSDR(port),
		Clear:    m523xPCLRR(port),
	}
}

// M523x: the edge port (IRQ1-7) is a slow chip with a pin state register,
// all GPIO module ports have set/clear registers.
var M523x = gpiochip.NewTable("m523x",
	gpiochip.Chip{
		Label:    "NQ",
		Base:     1,
		Count:    7,
		Dir:      m523xEPDDR,
		Data:     m523xEPDR,
		PinState: m523xEPPDR,
	},
	m523xPort("ADDR", 0, 13, 3),
	m523xPort("DATAH", 1, 16, 8),
	m523xPort("DATAL", 2, 24, 8),
	m523xPort("BUSCTL", 3, 32, 8),
	m523xPort("A", 4, 40, 8),
	m523xPort("CS", 5, 49, 7),
	m523xPort("SDRAM", 6, 56, 6),
	m523xPort("FECI2C", 7, 64, 4),
	m523xPort("UARTH", 8, 72, 2),
	m523xPort("UARTL", 9, 80, 8),
	m523xPort("QSPI", 10, 88, 5),
	m523xPort("TIMER", 11, 96, 8),
	m523xPort("ETPU", 12, 104, 3),
)
