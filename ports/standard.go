package ports

// StandardPort is one SPP parallel port: the register address space plus the
// platform backend that grants access to it. It is the unit of device
// initialization and teardown.
//
// All register operations are synchronous and unlocked. The physical port is
// a single shared resource; callers that use a port from multiple goroutines
// must serialize access with one external lock per port, not per pin.
type StandardPort struct {
	addr    AddressSpace
	pio     PortIO
	release func() error
}

// Open acquires the SPP register window at base. When resetControl is set,
// the port's bidirectional capability is probed and the control pins are
// soft-reset to match. Failure to acquire the backend (errcode.Permission,
// errcode.DriverLoad) is fatal to the open and is not retried; the caller
// re-attempts explicitly, e.g. after escalating privileges.
func Open(base uint16, resetControl bool) (*StandardPort, error) {
	space, err := NewAddressSpace(base)
	if err != nil {
		return nil, err
	}
	pio, release, err := openBackend(base, sppSpan)
	if err != nil {
		return nil, err
	}
	return attach(space, pio, release, resetControl), nil
}

// Attach builds a port over an existing byte accessor, e.g. a *Sim register
// file. No OS permission is acquired and Close releases nothing.
func Attach(pio PortIO, base uint16, resetControl bool) (*StandardPort, error) {
	space, err := NewAddressSpace(base)
	if err != nil {
		return nil, err
	}
	return attach(space, pio, nil, resetControl), nil
}

func attach(space AddressSpace, pio PortIO, release func() error, resetControl bool) *StandardPort {
	p := &StandardPort{addr: space, pio: pio, release: release}
	if resetControl {
		p.ResetControlPins(p.ProbeBidirectional())
	}
	return p
}

// Close releases the OS permission grant. Best effort: on platforms where
// the backend is process-global (the Windows vendor driver) there is nothing
// to release.
func (p *StandardPort) Close() error {
	if p.release == nil {
		return nil
	}
	return p.release()
}

// Addresses returns the port's register address space.
func (p *StandardPort) Addresses() AddressSpace { return p.addr }

// Named register accessors.

func (p *StandardPort) ReadData() uint8      { return p.pio.ReadByte(p.addr.Data()) }
func (p *StandardPort) ReadStatus() uint8    { return p.pio.ReadByte(p.addr.Status()) }
func (p *StandardPort) ReadControl() uint8   { return p.pio.ReadByte(p.addr.Control()) }
func (p *StandardPort) WriteData(v uint8)    { p.pio.WriteByte(p.addr.Data(), v) }
func (p *StandardPort) WriteControl(v uint8) { p.pio.WriteByte(p.addr.Control(), v) }

// ReadRegister and WriteRegister access an arbitrary register address on the
// port's backend. Raw and unchecked; the caller owns correctness of addr.
// The digitalio layer uses these with addresses taken from the pin catalog.
func (p *StandardPort) ReadRegister(addr uint16) uint8     { return p.pio.ReadByte(addr) }
func (p *StandardPort) WriteRegister(addr uint16, v uint8) { p.pio.WriteByte(addr, v) }
