package ports

import (
	"github.com/tekktrik/TekkPort/errcode"
	"github.com/tekktrik/TekkPort/x/bitx"
	"github.com/tekktrik/TekkPort/x/timex"
)

// EPP timeout flag, status register bit 0. The chipset sets it when a
// handshaked transfer stalls; writing the bit back clears it on common
// hardware.
const eppTimeoutBit = 0

// eppSettleMicros is the post-transfer settling time before the timeout bit
// is sampled.
const eppSettleMicros = 10

// EnhancedPort extends a StandardPort with the EPP address/data registers.
// EPP transfers are handshaked by the chipset; the host still just reads and
// writes registers, but a stalled peripheral surfaces as the timeout flag.
type EnhancedPort struct {
	StandardPort
}

// OpenEnhanced acquires the five-register EPP window at base.
func OpenEnhanced(base uint16, resetControl bool) (*EnhancedPort, error) {
	space, err := NewAddressSpace(base)
	if err != nil {
		return nil, err
	}
	pio, release, err := openBackend(base, eppSpan)
	if err != nil {
		return nil, err
	}
	return &EnhancedPort{*attach(space, pio, release, resetControl)}, nil
}

// AttachEnhanced builds an EPP port over an existing byte accessor.
func AttachEnhanced(pio PortIO, base uint16, resetControl bool) (*EnhancedPort, error) {
	space, err := NewAddressSpace(base)
	if err != nil {
		return nil, err
	}
	return &EnhancedPort{*attach(space, pio, nil, resetControl)}, nil
}

// clearTimeout clears a pending EPP timeout so the next transfer starts from
// a clean handshake. Write-back of the set bit, then explicit clear; both
// forms are needed across chipsets.
func (p *EnhancedPort) clearTimeout() {
	status := p.ReadStatus()
	if !bitx.Bit(status, eppTimeoutBit) {
		return
	}
	p.pio.WriteByte(p.addr.Status(), bitx.Set(status, eppTimeoutBit, true))
	p.pio.WriteByte(p.addr.Status(), bitx.Set(status, eppTimeoutBit, false))
}

func (p *EnhancedPort) transfer(op string, run func()) error {
	p.clearTimeout()
	run()
	timex.SleepMicros(eppSettleMicros)
	if bitx.Bit(p.ReadStatus(), eppTimeoutBit) {
		return &errcode.E{C: errcode.Timeout, Op: op}
	}
	return nil
}

// WriteEPPAddress performs an EPP address-write cycle.
func (p *EnhancedPort) WriteEPPAddress(v uint8) error {
	return p.transfer("ports.WriteEPPAddress", func() {
		p.pio.WriteByte(p.addr.EPPAddress(), v)
	})
}

// ReadEPPAddress performs an EPP address-read cycle.
func (p *EnhancedPort) ReadEPPAddress() (uint8, error) {
	var v uint8
	err := p.transfer("ports.ReadEPPAddress", func() {
		v = p.pio.ReadByte(p.addr.EPPAddress())
	})
	return v, err
}

// WriteEPPData performs an EPP data-write cycle.
func (p *EnhancedPort) WriteEPPData(v uint8) error {
	return p.transfer("ports.WriteEPPData", func() {
		p.pio.WriteByte(p.addr.EPPData(), v)
	})
}

// ReadEPPData performs an EPP data-read cycle.
func (p *EnhancedPort) ReadEPPData() (uint8, error) {
	var v uint8
	err := p.transfer("ports.ReadEPPData", func() {
		v = p.pio.ReadByte(p.addr.EPPData())
	})
	return v, err
}
