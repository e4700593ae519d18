package digitalio

import (
	"github.com/tekktrik/TekkPort/errcode"
	"github.com/tekktrik/TekkPort/hardware"
	"github.com/tekktrik/TekkPort/ports"
	"github.com/tekktrik/TekkPort/x/bitx"
)

// DigitalInOut is the exclusive handle over one pin. Construction claims the
// pin; Deinit releases it. The handle tracks its own logical direction and
// enforces the pin's fixed capabilities on every access.
//
// Register mutations are read-modify-write and are not atomic against other
// writers of the same register byte; see the ports package for the
// serialization contract.
type DigitalInOut struct {
	port      *ports.StandardPort
	pin       *hardware.Pin
	direction Direction
}

// New claims pin on port. Fails with errcode.PinInUse if another handle owns
// the pin. The initial logical direction follows the pin's capabilities
// (input where allowed, otherwise output); no register is written.
func New(port *ports.StandardPort, pin *hardware.Pin) (*DigitalInOut, error) {
	if port == nil || pin == nil {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "digitalio.New", Msg: "nil port or pin"}
	}
	if err := pin.Claim(); err != nil {
		return nil, err
	}
	d := &DigitalInOut{port: port, pin: pin, direction: Input}
	if !pin.InputAllowed() {
		d.direction = Output
	}
	return d, nil
}

// Deinit releases the pin claim. The handle must not be used afterwards.
func (d *DigitalInOut) Deinit() {
	d.pin.Release()
}

// Pin returns the claimed pin descriptor.
func (d *DigitalInOut) Pin() *hardware.Pin { return d.pin }

// Direction returns the handle's current logical direction.
func (d *DigitalInOut) Direction() Direction { return d.direction }

// SetDirection switches the handle between input and output. A direction the
// pin's fixed capabilities disallow is rejected with errcode.InvalidMode and
// no register is touched. For pins that propagate (the data lines), the
// port's transfer direction is written through.
func (d *DigitalInOut) SetDirection(dir Direction) error {
	switch dir {
	case Input:
		if !d.pin.InputAllowed() {
			return &errcode.E{C: errcode.InvalidMode, Op: "digitalio.SetDirection",
				Msg: d.pin.Name() + " cannot be used as an input"}
		}
	case Output:
		if !d.pin.OutputAllowed() {
			return &errcode.E{C: errcode.InvalidMode, Op: "digitalio.SetDirection",
				Msg: d.pin.Name() + " cannot be used as an output"}
		}
	default:
		return &errcode.E{C: errcode.InvalidParams, Op: "digitalio.SetDirection"}
	}
	if d.pin.PropagatesDirection() {
		d.port.SetDirection(portDirection(dir))
	}
	d.direction = dir
	return nil
}

// Pull returns the pin's fixed pull. Only meaningful for inputs; otherwise
// errcode.NotApplicable.
func (d *DigitalInOut) Pull() (Pull, error) {
	if d.direction != Input {
		return PullNone, &errcode.E{C: errcode.NotApplicable, Op: "digitalio.Pull", Msg: "not an input"}
	}
	return d.pin.FixedPull(), nil
}

// SetPull accepts only the pin's fixed pull; any other value is rejected
// with errcode.ImmutableAttribute. Setting the same value is a no-op.
func (d *DigitalInOut) SetPull(p Pull) error {
	if d.direction != Input {
		return &errcode.E{C: errcode.NotApplicable, Op: "digitalio.SetPull", Msg: "not an input"}
	}
	if p != d.pin.FixedPull() {
		return &errcode.E{C: errcode.ImmutableAttribute, Op: "digitalio.SetPull",
			Msg: "pin pull cannot be changed from its default"}
	}
	return nil
}

// DriveMode returns the pin's fixed drive mode. Only meaningful for outputs.
func (d *DigitalInOut) DriveMode() (DriveMode, error) {
	if d.direction != Output {
		return PushPull, &errcode.E{C: errcode.NotApplicable, Op: "digitalio.DriveMode", Msg: "not an output"}
	}
	return d.pin.FixedDriveMode(), nil
}

// SetDriveMode mirrors SetPull for the output side.
func (d *DigitalInOut) SetDriveMode(m DriveMode) error {
	if d.direction != Output {
		return &errcode.E{C: errcode.NotApplicable, Op: "digitalio.SetDriveMode", Msg: "not an output"}
	}
	if m != d.pin.FixedDriveMode() {
		return &errcode.E{C: errcode.ImmutableAttribute, Op: "digitalio.SetDriveMode",
			Msg: "pin drive mode cannot be changed from its default"}
	}
	return nil
}

// Value reads the pin's register bit, corrected for connector polarity.
// Readable in either direction.
func (d *DigitalInOut) Value() bool {
	reg := d.port.ReadRegister(d.pin.Register())
	v := bitx.Bit(reg, d.pin.Bit())
	if d.pin.Inverted() {
		v = !v
	}
	return v
}

// SetValue drives the line. Requires the handle to be an output
// (errcode.NotApplicable otherwise); the write is a read-modify-write that
// leaves the register's other bits untouched.
func (d *DigitalInOut) SetValue(v bool) error {
	if d.direction != Output {
		return &errcode.E{C: errcode.NotApplicable, Op: "digitalio.SetValue", Msg: "not an output"}
	}
	if d.pin.Inverted() {
		v = !v
	}
	reg := d.port.ReadRegister(d.pin.Register())
	d.port.WriteRegister(d.pin.Register(), bitx.Set(reg, d.pin.Bit(), v))
	return nil
}

// SwitchToOutput switches direction and drives the initial value as one
// logical operation. If the direction change fails nothing else is
// attempted. The drive mode is validated against the pin's fixed mode last,
// matching the attribute order of the underlying setters.
func (d *DigitalInOut) SwitchToOutput(value bool, mode DriveMode) error {
	if err := d.SetDirection(Output); err != nil {
		return err
	}
	if err := d.SetValue(value); err != nil {
		return err
	}
	return d.SetDriveMode(mode)
}

// SwitchToInput switches direction and validates the requested pull as one
// logical operation; a failed direction change stops the sequence.
func (d *DigitalInOut) SwitchToInput(pull Pull) error {
	if err := d.SetDirection(Input); err != nil {
		return err
	}
	return d.SetPull(pull)
}
