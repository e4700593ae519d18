package ports

import "testing"

func TestRegisterAccessors(t *testing.T) {
	p, sim := simPort(t)
	space := p.Addresses()

	p.WriteData(0xA5)
	if got := sim.Peek(space.Data()); got != 0xA5 {
		t.Fatalf("data register = %#02x, want 0xA5", got)
	}
	if got := p.ReadData(); got != 0xA5 {
		t.Fatalf("ReadData = %#02x, want 0xA5", got)
	}

	sim.Poke(space.Status(), 0x7F)
	if got := p.ReadStatus(); got != 0x7F {
		t.Fatalf("ReadStatus = %#02x, want 0x7F", got)
	}

	p.WriteControl(0x0C)
	if got := p.ReadControl(); got != 0x0C {
		t.Fatalf("ReadControl = %#02x, want 0x0C", got)
	}

	p.WriteRegister(space.Data(), 0x3C)
	if got := p.ReadRegister(space.Data()); got != 0x3C {
		t.Fatalf("raw register access = %#02x, want 0x3C", got)
	}
}

func TestAttachResetControl(t *testing.T) {
	sim := NewSim()
	space, _ := NewAddressSpace(testBase)
	sim.Poke(space.Control(), 0x00)

	p, err := Attach(sim, testBase, true)
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	// The sim latches bit 5, so the attach-time probe reports bidirectional
	// and the soft reset asserts nInit plus the direction bit.
	if got := sim.Peek(space.Control()); got != 0b0010_0100 {
		t.Fatalf("control after reset-on-attach = %#08b, want 0b00100100", got)
	}
	if p.Direction() != Reverse {
		t.Fatalf("direction after bidirectional reset = %v", p.Direction())
	}
}

func TestAttachNoResetLeavesRegistersAlone(t *testing.T) {
	sim := NewSim()
	space, _ := NewAddressSpace(testBase)
	sim.Poke(space.Control(), 0xAB)
	if _, err := Attach(sim, testBase, false); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if got := sim.Peek(space.Control()); got != 0xAB {
		t.Fatalf("attach without reset touched control: %#02x", got)
	}
}

func TestAttachRejectsOverflowingBase(t *testing.T) {
	if _, err := Attach(NewSim(), 0xFFFE, false); err == nil {
		t.Fatal("expected invalid_params for an overflowing base")
	}
}

func TestCloseWithoutBackend(t *testing.T) {
	p, _ := simPort(t)
	if err := p.Close(); err != nil {
		t.Fatalf("Close on an attached port: %v", err)
	}
}
