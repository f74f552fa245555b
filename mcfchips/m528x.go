package mcfchips

import "github.com/BertoldVdb/mcfgpio/gpiochip"

/* Registers are 8 bits wide on the part, here each one gets its own 32 bit
 * word at the same module base. */
const (
	m528xIPSBAR = 0x40000000
	m528xGPIO   = m528xIPSBAR + 0x100000
	m528xEPORT  = m528xIPSBAR + 0x130000
	m528xQADC   = m528xIPSBAR + 0x190000
	m528xGPTA   = m528xIPSBAR + 0x1a0000
	m528xGPTB   = m528xIPSBAR + 0x1b0000

	m528xEPDDR = m528xEPORT + 0x04
	m528xEPDR  = m528xEPORT + 0x0c
	m528xEPPDR = m528xEPORT + 0x10

	m528xPORTQA = m528xQADC + 0x04
	m528xPORTQB = m528xQADC + 0x08
	m528xDDRQA  = m528xQADC + 0x0c
	m528xDDRQB  = m528xQADC + 0x10

	m528xGPTPORT = 0x1c
	m528xGPTDDR  = 0x20
)

func m528xPORT(port uint32) uint32 { return m528xGPIO + 0x000 + port*4 }
func m528xDDR(port uint32) uint32  { return m528xGPIO + 0x080 + port*4 }
func m528xSET(port uint32) uint32  { return m528xGPIO + 0x100 + port*4 }
func m528xCLR(port uint32) uint32  { return m528xGPIO + 0x180 + port*4 }

func m528xPort(label string, port uint32, base uint32, count uint32) gpiochip.Chip {
	return gpiochip.Chip{
		Label:    label,
		Base:     base,
		Count:    count,
		Dir:      m528xDDR(port),
		Data:     m528xPORT(port),
		PinState: m528xSET(port),
		Set:      m528xSET(port),
		Clear:    m528xCLR(port),
	}
}

// m528xShared is a port whose data register also reads back the pin levels
func m528xShared(label string, dir uint32, data uint32, base uint32, count uint32) gpiochip.Chip {
	return gpiochip.Chip{
		Label:    label,
		Base:     base,
		Count:    count,
		Dir:      dir,
		Data:     data,
		PinState: data,
	}
}

// M528x: the edge port and the timer and QADC ports have no set/clear
// registers and take the read-modify-write path, the GPIO module ports are
// fast.
var M528x = gpiochip.NewTable("m528x",
	gpiochip.Chip{
		Label:    "NQ",
		Base:     1,
		Count:    7,
		Dir:      m528xEPDDR,
		Data:     m528xEPDR,
		PinState: m528xEPPDR,
	},
	m528xShared("TA", m528xGPTA+m528xGPTDDR, m528xGPTA+m528xGPTPORT, 8, 4),
	m528xShared("TB", m528xGPTB+m528xGPTDDR, m528xGPTB+m528xGPTPORT, 16, 4),
	m528xShared("QA", m528xDDRQA, m528xPORTQA, 24, 4),
	m528xShared("QB", m528xDDRQB, m528xPORTQB, 32, 4),
	m528xPort("A", 0, 40, 8),
	m528xPort("B", 1, 48, 8),
	m528xPort("C", 2, 56, 8),
	m528xPort("D", 3, 64, 8),
	m528xPort("E", 4, 72, 8),
	m528xPort("F", 5, 80, 8),
	m528xPort("G", 6, 88, 8),
	m528xPort("H", 7, 96, 8),
	m528xPort("J", 8, 104, 8),
	m528xPort("DD", 9, 112, 8),
	m528xPort("EH", 10, 120, 8),
	m528xPort("EL", 11, 128, 8),
	m528xPort("AS", 12, 136, 6),
	m528xPort("QS", 13, 144, 7),
	m528xPort("SD", 14, 152, 6),
	m528xPort("TC", 15, 160, 4),
	m528xPort("TD", 16, 168, 4),
	m528xPort("UA", 17, 176, 4),
)
