// Package hardware describes the physical lines of a parallel port: fixed
// per-pin capabilities and the exclusive-claim protocol that gives a single
// digital-I/O handle ownership of a line.
package hardware

import (
	"sync"

	"github.com/tekktrik/TekkPort/errcode"
)

// Pull is a pin's input pull characteristic. Parallel-port lines have no
// programmable pulls, so a pin's pull is a fixed hardware fact, not a
// runtime-writable property.
type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

func (p Pull) String() string {
	switch p {
	case PullUp:
		return "up"
	case PullDown:
		return "down"
	default:
		return "none"
	}
}

// DriveMode is a pin's output drive characteristic, fixed per pin like Pull.
type DriveMode uint8

const (
	PushPull DriveMode = iota
	OpenDrain
)

func (d DriveMode) String() string {
	if d == OpenDrain {
		return "open_drain"
	}
	return "push_pull"
}

// PinConfig is the capability contract a pin catalog supplies: which register
// bit the line lives on, which directions it may be used in, and its fixed
// electrical characteristics.
type PinConfig struct {
	Name   string
	Number int // DB-25 connector pin number

	Register uint16 // absolute register address
	Bit      uint8  // 0..7

	Input  bool
	Output bool

	// PropagateDirection marks pins whose direction change must be written
	// through to the port's control register (the data lines).
	PropagateDirection bool

	// Inverted marks lines the connector presents with opposite polarity to
	// the register bit.
	Inverted bool

	Pull      Pull
	DriveMode DriveMode
}

// Pin is a fixed-capability descriptor of one register bit. The descriptor
// is shared by reference; the claim flag guarantees at most one digital-I/O
// handle owns it at a time.
type Pin struct {
	cfg PinConfig

	mu      sync.Mutex
	claimed bool
}

// NewPin validates the capability contract: a pin unusable in both
// directions, or addressing a bit outside the register, is invalid.
func NewPin(cfg PinConfig) (*Pin, error) {
	if !cfg.Input && !cfg.Output {
		return nil, &errcode.E{
			C: errcode.InvalidParams, Op: "hardware.NewPin",
			Msg: "pin allows neither input nor output",
		}
	}
	if cfg.Bit > 7 {
		return nil, &errcode.E{
			C: errcode.InvalidParams, Op: "hardware.NewPin",
			Msg: "bit index out of range",
		}
	}
	return &Pin{cfg: cfg}, nil
}

func (p *Pin) Name() string              { return p.cfg.Name }
func (p *Pin) Number() int               { return p.cfg.Number }
func (p *Pin) Register() uint16          { return p.cfg.Register }
func (p *Pin) Bit() uint8                { return p.cfg.Bit }
func (p *Pin) InputAllowed() bool        { return p.cfg.Input }
func (p *Pin) OutputAllowed() bool       { return p.cfg.Output }
func (p *Pin) PropagatesDirection() bool { return p.cfg.PropagateDirection }
func (p *Pin) Inverted() bool            { return p.cfg.Inverted }
func (p *Pin) FixedPull() Pull           { return p.cfg.Pull }
func (p *Pin) FixedDriveMode() DriveMode { return p.cfg.DriveMode }

// Claim transfers ownership of the pin to the caller. Exclusive: a second
// claim fails with errcode.PinInUse until Release.
func (p *Pin) Claim() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.claimed {
		return &errcode.E{C: errcode.PinInUse, Op: "hardware.Claim", Msg: p.cfg.Name}
	}
	p.claimed = true
	return nil
}

// Release returns ownership. Releasing an unclaimed pin is a no-op.
func (p *Pin) Release() {
	p.mu.Lock()
	p.claimed = false
	p.mu.Unlock()
}

// Claimed reports whether a handle currently owns the pin.
func (p *Pin) Claimed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.claimed
}
