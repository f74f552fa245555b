// Package regio provides 32 bit register access, either to a simulated register
// file or to physical memory mapped through /dev/mem.
package regio

// Bus reads and writes 32 bit registers by address. Hardware implementations
// must not block or allocate, they are called from the GPIO fast paths.
type Bus interface {
	Read32(addr uint32) uint32
	Write32(addr uint32, value uint32)
}

type Error string

func (e Error) Error() string { return string(e) }

const ErrorUnsupported = Error("Register mapping is not supported on this platform")
const ErrorBadWindow = Error("Invalid register window")

func assert(condition bool, reason string) {
	if !condition {
		panic(reason)
	}
}
