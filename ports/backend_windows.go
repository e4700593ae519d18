//go:build windows

package ports

import (
	"sync"

	"golang.org/x/sys/windows"

	"github.com/tekktrik/TekkPort/errcode"
)

// The inpoutx64 vendor driver exposes raw port I/O to user mode. Loading it
// and resolving the entry points is a one-time, irreversible initialization:
// the proc addresses are process-wide state with no safe unload path, so the
// release function is a no-op and repeated opens reuse the first load.
var inpout struct {
	once  sync.Once
	read  *windows.LazyProc
	write *windows.LazyProc
	err   error
}

func loadInpout() {
	dll := windows.NewLazySystemDLL("inpoutx64.dll")
	if err := dll.Load(); err != nil {
		inpout.err = &errcode.E{C: errcode.DriverLoad, Op: "ports.openBackend", Err: err}
		return
	}
	read := dll.NewProc("DlPortReadPortUchar")
	write := dll.NewProc("DlPortWritePortUchar")
	if err := read.Find(); err != nil {
		inpout.err = &errcode.E{C: errcode.DriverLoad, Op: "ports.openBackend", Err: err}
		return
	}
	if err := write.Find(); err != nil {
		inpout.err = &errcode.E{C: errcode.DriverLoad, Op: "ports.openBackend", Err: err}
		return
	}
	inpout.read, inpout.write = read, write
}

type dllPort struct{}

func openBackend(base, span uint16) (PortIO, func() error, error) {
	_ = base
	_ = span // the driver grants the whole port space
	inpout.once.Do(loadInpout)
	if inpout.err != nil {
		return nil, nil, inpout.err
	}
	return dllPort{}, func() error { return nil }, nil
}

func (dllPort) ReadByte(addr uint16) uint8 {
	r1, _, _ := inpout.read.Call(uintptr(addr))
	return uint8(r1)
}

func (dllPort) WriteByte(addr uint16, value uint8) {
	_, _, _ = inpout.write.Call(uintptr(addr), uintptr(value))
}
