package hardware

import (
	"errors"
	"testing"

	"github.com/tekktrik/TekkPort/errcode"
)

func TestNewPinValidation(t *testing.T) {
	_, err := NewPin(PinConfig{Name: "dead", Register: 0x378, Bit: 0})
	if !errors.Is(err, errcode.InvalidParams) {
		t.Fatalf("pin with no allowed direction: got %v", err)
	}
	_, err = NewPin(PinConfig{Name: "wide", Register: 0x378, Bit: 8, Input: true})
	if !errors.Is(err, errcode.InvalidParams) {
		t.Fatalf("bit index 8: got %v", err)
	}
	if _, err := NewPin(PinConfig{Name: "ok", Register: 0x378, Bit: 7, Output: true}); err != nil {
		t.Fatalf("valid pin rejected: %v", err)
	}
}

func TestClaimIsExclusive(t *testing.T) {
	pin, err := NewPin(PinConfig{Name: "D0", Register: 0x378, Bit: 0, Input: true, Output: true})
	if err != nil {
		t.Fatalf("NewPin: %v", err)
	}
	if err := pin.Claim(); err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if !pin.Claimed() {
		t.Fatal("pin should report claimed")
	}
	err = pin.Claim()
	if !errors.Is(err, errcode.PinInUse) {
		t.Fatalf("double claim: got %v, want pin_in_use", err)
	}
	pin.Release()
	if pin.Claimed() {
		t.Fatal("pin should be free after release")
	}
	if err := pin.Claim(); err != nil {
		t.Fatalf("re-claim after release: %v", err)
	}
}

func TestReleaseUnclaimedIsNoop(t *testing.T) {
	pin, _ := NewPin(PinConfig{Name: "D1", Register: 0x378, Bit: 1, Input: true})
	pin.Release()
	if pin.Claimed() {
		t.Fatal("release of an unclaimed pin must not claim it")
	}
}
