package ports

import "sync"

// Sim is an in-memory register file implementing PortIO. It backs tests and
// development on machines without a physical port (use Attach/AttachEnhanced
// to build a port over it). By default every bit of every register latches
// writes; MaskWrites narrows that to model hardware that ignores some bits,
// e.g. a non-bidirectional control register.
type Sim struct {
	mu    sync.Mutex
	regs  map[uint16]uint8
	masks map[uint16]uint8
}

func NewSim() *Sim {
	return &Sim{
		regs:  make(map[uint16]uint8),
		masks: make(map[uint16]uint8),
	}
}

// MaskWrites limits which bits latch on writes to addr. Bits outside mask
// keep their current value.
func (s *Sim) MaskWrites(addr uint16, mask uint8) {
	s.mu.Lock()
	s.masks[addr] = mask
	s.mu.Unlock()
}

// Poke sets a register directly, bypassing any write mask.
func (s *Sim) Poke(addr uint16, value uint8) {
	s.mu.Lock()
	s.regs[addr] = value
	s.mu.Unlock()
}

// Peek reads a register without going through the PortIO path.
func (s *Sim) Peek(addr uint16) uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.regs[addr]
}

func (s *Sim) ReadByte(addr uint16) uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.regs[addr]
}

func (s *Sim) WriteByte(addr uint16, value uint8) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mask, ok := s.masks[addr]
	if !ok {
		s.regs[addr] = value
		return
	}
	s.regs[addr] = (s.regs[addr] &^ mask) | (value & mask)
}
