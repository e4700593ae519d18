// Package digitalio layers validated digital-I/O semantics over the raw
// register model: a DigitalInOut exclusively claims one catalog pin and
// mediates every direction, value, pull and drive-mode access against the
// pin's fixed capabilities.
package digitalio

import (
	"github.com/tekktrik/TekkPort/hardware"
	"github.com/tekktrik/TekkPort/ports"
)

// Direction of one digital line, from the host's point of view. Output maps
// to the port's Forward transfer direction, Input to Reverse.
type Direction uint8

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	if d == Output {
		return "output"
	}
	return "input"
}

func portDirection(d Direction) ports.Direction {
	if d == Output {
		return ports.Forward
	}
	return ports.Reverse
}

// Pull and DriveMode are the hardware package's fixed pin characteristics,
// re-exported so callers of this package work with one vocabulary.
type (
	Pull      = hardware.Pull
	DriveMode = hardware.DriveMode
)

const (
	PullNone = hardware.PullNone
	PullUp   = hardware.PullUp
	PullDown = hardware.PullDown

	PushPull  = hardware.PushPull
	OpenDrain = hardware.OpenDrain
)
