package hardware

// Pins is the standard SPP pin set for one port: eight bidirectional data
// lines, five read-only status lines and four write-only control lines, with
// their DB-25 connector numbers and polarity.
//
// Only the data lines propagate a direction change to the port's control
// register; status and control lines have a fixed direction of their own.
type Pins struct {
	// Control register, write-only lines.
	Strobe        *Pin
	AutoLinefeed  *Pin
	Initialize    *Pin
	SelectPrinter *Pin

	// Status register, read-only lines.
	Ack      *Pin
	Busy     *Pin
	PaperOut *Pin
	SelectIn *Pin
	Fault    *Pin

	// Data register.
	D0, D1, D2, D3, D4, D5, D6, D7 *Pin
}

// NewPins builds the catalog from the three SPP register addresses.
func NewPins(data, status, control uint16) *Pins {
	ctl := func(name string, number int, bit uint8, inverted bool) *Pin {
		return mustPin(PinConfig{
			Name: name, Number: number, Register: control, Bit: bit,
			Output: true, Inverted: inverted,
		})
	}
	sts := func(name string, number int, bit uint8, inverted bool) *Pin {
		return mustPin(PinConfig{
			Name: name, Number: number, Register: status, Bit: bit,
			Input: true, Inverted: inverted,
		})
	}
	dat := func(name string, number int, bit uint8) *Pin {
		return mustPin(PinConfig{
			Name: name, Number: number, Register: data, Bit: bit,
			Input: true, Output: true, PropagateDirection: true,
		})
	}
	return &Pins{
		Strobe:        ctl("STROBE", 1, 0, true),
		AutoLinefeed:  ctl("AUTO_LINEFEED", 14, 1, true),
		Initialize:    ctl("INITIALIZE", 16, 2, false),
		SelectPrinter: ctl("SELECT_PRINTER", 17, 3, true),

		Ack:      sts("ACK", 10, 6, false),
		Busy:     sts("BUSY", 11, 7, true),
		PaperOut: sts("PAPER_OUT", 12, 5, false),
		SelectIn: sts("SELECT_IN", 13, 4, false),
		Fault:    sts("ERROR", 15, 3, false),

		D0: dat("D0", 2, 0),
		D1: dat("D1", 3, 1),
		D2: dat("D2", 4, 2),
		D3: dat("D3", 5, 3),
		D4: dat("D4", 6, 4),
		D5: dat("D5", 7, 5),
		D6: dat("D6", 8, 6),
		D7: dat("D7", 9, 7),
	}
}

// List returns every pin in connector order.
func (p *Pins) List() []*Pin {
	return []*Pin{
		p.Strobe, p.D0, p.D1, p.D2, p.D3, p.D4, p.D5, p.D6, p.D7,
		p.Ack, p.Busy, p.PaperOut, p.SelectIn, p.AutoLinefeed,
		p.Fault, p.Initialize, p.SelectPrinter,
	}
}

// ByName looks a pin up by its catalog name.
func (p *Pins) ByName(name string) (*Pin, bool) {
	for _, pin := range p.List() {
		if pin.Name() == name {
			return pin, true
		}
	}
	return nil, false
}

// mustPin is for the static catalog only; its configs are valid by
// construction.
func mustPin(cfg PinConfig) *Pin {
	pin, err := NewPin(cfg)
	if err != nil {
		panic("hardware: invalid catalog pin " + cfg.Name)
	}
	return pin
}
