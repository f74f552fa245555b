package gpiolib

import "github.com/google/uuid"

type LineFlag uint32

const LineRequested LineFlag = 0x00000001
const LineIsOut LineFlag = 0x00000002

type RequestFlag uint32

const RequestInput RequestFlag = 0x00000001
const RequestOutput RequestFlag = 0x00000002

// ChipOps is the operation set a chip hands to the subsystem. Bits are chip
// local.
type ChipOps interface {
	Request(bit uint32, label string) (uuid.UUID, error)
	Free(bit uint32, token uuid.UUID) error
	Owner(bit uint32) (string, bool)

	DirectionInput(bit uint32)
	DirectionOutput(bit uint32)
	Output(bit uint32, value bool)
	IsOutput(bit uint32) bool

	Get(bit uint32) bool
	Set(bit uint32, value bool)
}

// Chip is what gets registered: the pin range and the operations
type Chip struct {
	Label string
	Base  uint32
	Count uint32
	Ops   ChipOps
}

type ChipInfo struct {
	Label string
	Base  uint32
	Lines uint32
}

type LineInfo struct {
	Pin        uint32
	Chip       string
	LineOffset uint32
	Flags      LineFlag
	Consumer   string
}

type LineRequest struct {
	Pin          uint32
	DefaultValue bool
}
