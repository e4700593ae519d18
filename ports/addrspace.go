// Package ports drives a Standard/Enhanced parallel port through its directly
// addressed I/O registers: platform backends for privileged byte access, the
// register address space derived from a base address, and the control-register
// direction protocol.
package ports

import "github.com/tekktrik/TekkPort/errcode"

// Register offsets from the SPP base address.
const (
	dataOffset       = 0
	statusOffset     = 1
	controlOffset    = 2
	eppDataOffset    = 3
	eppAddressOffset = 4
)

// Register spans acquired from the backend.
const (
	sppSpan uint16 = 3
	eppSpan uint16 = 5
)

// AddressSpace maps the five parallel-port registers derived from one base
// address. It is immutable once constructed.
type AddressSpace struct {
	base uint16
}

// NewAddressSpace validates that the full register window fits in the 16-bit
// I/O address range.
func NewAddressSpace(base uint16) (AddressSpace, error) {
	if base > 0xFFFF-eppAddressOffset {
		return AddressSpace{}, &errcode.E{
			C: errcode.InvalidParams, Op: "ports.NewAddressSpace",
			Msg: "base address overflows the I/O range",
		}
	}
	return AddressSpace{base: base}, nil
}

func (a AddressSpace) Base() uint16       { return a.base }
func (a AddressSpace) Data() uint16       { return a.base + dataOffset }
func (a AddressSpace) Status() uint16     { return a.base + statusOffset }
func (a AddressSpace) Control() uint16    { return a.base + controlOffset }
func (a AddressSpace) EPPData() uint16    { return a.base + eppDataOffset }
func (a AddressSpace) EPPAddress() uint16 { return a.base + eppAddressOffset }
