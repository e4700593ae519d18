package ports

import "github.com/tekktrik/TekkPort/x/bitx"

// Direction is the port's bidirectional-transfer direction, encoded in bit 5
// of the control register. Forward (bit clear) is host→device.
type Direction uint8

const (
	Forward Direction = 0
	Reverse Direction = 1
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Control-register bit indices.
const (
	initializeBit = 2 // nInit line, asserted high
	directionBit  = 5
)

// Direction reads the transfer direction from the control register.
func (p *StandardPort) Direction() Direction {
	control := p.pio.ReadByte(p.addr.Control())
	return Direction(bitx.Extract(control, 1, directionBit))
}

// SetDirection writes the transfer direction into the control register,
// preserving the other control bits (read-modify-write, not atomic against
// concurrent writers of the same register).
func (p *StandardPort) SetDirection(d Direction) {
	control := p.pio.ReadByte(p.addr.Control())
	p.pio.WriteByte(p.addr.Control(), bitx.Set(control, directionBit, d == Reverse))
}

// ProbeBidirectional reports whether the port latches the direction bit,
// i.e. whether the data register can be turned around for device→host reads.
// The probe writes to hardware: it forces Reverse and reads the bit back.
// If the bit latched and the port was Forward beforehand, Forward is
// restored; a probed Reverse stays Reverse, and unsupported hardware ignored
// the write anyway.
func (p *StandardPort) ProbeBidirectional() bool {
	original := p.Direction()
	p.SetDirection(Reverse)
	supported := p.Direction() == Reverse
	if supported && original == Forward {
		p.SetDirection(Forward)
	}
	return supported
}

// ResetControlPins soft-resets the control register: control bits already
// set survive (OR, not replace), the direction bit is set when the port is
// bidirectional, and nInit is asserted unconditionally. Starting from a
// clear register this writes 0b00000100, or 0b00100100 when bidirectional.
func (p *StandardPort) ResetControlPins(bidirectional bool) {
	control := p.pio.ReadByte(p.addr.Control())
	if bidirectional {
		control = bitx.Set(control, directionBit, true)
	}
	control = bitx.Set(control, initializeBit, true)
	p.pio.WriteByte(p.addr.Control(), control)
}
