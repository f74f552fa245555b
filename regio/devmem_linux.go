package regio

import (
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// DevMem maps a window of physical memory. Register addresses passed to
// Read32 and Write32 are physical addresses inside the window.
type DevMem struct {
	file *os.File
	mem  []byte
	base uint32
}

func OpenDevMem(path string, base uint32, size uint32) (*DevMem, error) {
	pageSize := uint32(unix.Getpagesize())
	if size == 0 || base%pageSize != 0 || base%4 != 0 {
		return nil, ErrorBadWindow
	}

	file, err := os.OpenFile(path, os.O_RDWR|unix.O_SYNC, 0)
	if err != nil {
		return nil, err
	}

	mem, err := unix.Mmap(int(file.Fd()), int64(base), int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		file.Close()
		return nil, err
	}

	return &DevMem{
		file: file,
		mem:  mem,
		base: base,
	}, nil
}

func (d *DevMem) reg(addr uint32) *uint32 {
	assert(addr >= d.base && addr%4 == 0, "Register address outside of mapped window")
	off := addr - d.base
	assert(uint64(off)+4 <= uint64(len(d.mem)), "Register address outside of mapped window")

	return (*uint32)(unsafe.Pointer(&d.mem[off]))
}

func (d *DevMem) Read32(addr uint32) uint32 {
	return atomic.LoadUint32(d.reg(addr))
}

func (d *DevMem) Write32(addr uint32, value uint32) {
	atomic.StoreUint32(d.reg(addr), value)
}

func (d *DevMem) Close() error {
	err := unix.Munmap(d.mem)
	err2 := d.file.Close()
	if err == nil {
		err = err2
	}
	return err
}
