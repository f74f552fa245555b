// +build !linux

package regio

type DevMem struct{}

func OpenDevMem(path string, base uint32, size uint32) (*DevMem, error) {
	return nil, ErrorUnsupported
}

func (d *DevMem) Read32(addr uint32) uint32 {
	panic(ErrorUnsupported)
}

func (d *DevMem) Write32(addr uint32, value uint32) {
	panic(ErrorUnsupported)
}

func (d *DevMem) Close() error {
	return ErrorUnsupported
}
