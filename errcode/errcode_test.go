package errcode

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeIsError(t *testing.T) {
	var err error = Permission
	if err.Error() != "permission_denied" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if Of(err) != Permission {
		t.Fatalf("Of(Code) = %v", Of(err))
	}
}

func TestWrapperOfAndIs(t *testing.T) {
	cause := fmt.Errorf("open /dev/port: operation not permitted")
	err := &E{C: Permission, Op: "ports.Open", Err: cause}
	if Of(err) != Permission {
		t.Fatalf("Of(*E) = %v", Of(err))
	}
	if !errors.Is(err, Permission) {
		t.Fatal("errors.Is(*E, Code) should match the wrapped code")
	}
	if !errors.Is(err, cause) {
		t.Fatal("errors.Is should reach the cause via Unwrap")
	}
}

func TestOfFallback(t *testing.T) {
	if Of(nil) != OK {
		t.Fatal("Of(nil) should be OK")
	}
	if Of(errors.New("whatever")) != Error {
		t.Fatal("Of(unknown) should be the generic fallback")
	}
}
