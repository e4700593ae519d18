//go:build linux

package ports

import (
	"golang.org/x/sys/unix"

	"github.com/tekktrik/TekkPort/errcode"
)

// devPortPath is the kernel's byte-addressed window onto I/O port space.
// Opening it is the permission request: without CAP_SYS_RAWIO the open fails
// with EPERM/EACCES, which is the POSIX equivalent of an ioperm denial.
const devPortPath = "/dev/port"

type devPort struct {
	fd int
}

func openBackend(base, span uint16) (PortIO, func() error, error) {
	_ = base
	_ = span // permission is granted for the whole port space at open
	fd, err := unix.Open(devPortPath, unix.O_RDWR, 0)
	if err != nil {
		return nil, nil, &errcode.E{C: errcode.Permission, Op: "ports.openBackend", Err: err}
	}
	p := &devPort{fd: fd}
	return p, p.close, nil
}

func (p *devPort) close() error {
	return unix.Close(p.fd)
}

func (p *devPort) ReadByte(addr uint16) uint8 {
	var b [1]byte
	_, _ = unix.Pread(p.fd, b[:], int64(addr))
	return b[0]
}

func (p *devPort) WriteByte(addr uint16, value uint8) {
	b := [1]byte{value}
	_, _ = unix.Pwrite(p.fd, b[:], int64(addr))
}
