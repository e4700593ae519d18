//go:build !linux && !windows

package ports

import "github.com/tekktrik/TekkPort/errcode"

func openBackend(base, span uint16) (PortIO, func() error, error) {
	_ = base
	_ = span
	return nil, nil, &errcode.E{
		C: errcode.Unsupported, Op: "ports.openBackend",
		Msg: "no raw port I/O backend for this platform",
	}
}
