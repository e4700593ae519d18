package errcode

// Code is a stable error identifier surfaced to callers of the port and
// digital-I/O layers. It is a string newtype, comparable, allocation-free,
// and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Initialization failures. Fatal to the open, not retried automatically.
	Permission  Code = "permission_denied" // OS denied port access
	DriverLoad  Code = "driver_load"       // vendor driver missing or unresolvable
	Unsupported Code = "unsupported"       // no backend for this platform

	// Caller logic errors, rejected synchronously and never downgraded.
	InvalidParams      Code = "invalid_params"
	InvalidMode        Code = "invalid_mode"        // direction not allowed for pin
	ImmutableAttribute Code = "immutable_attribute" // fixed pull / drive mode
	NotApplicable      Code = "not_applicable"      // wrong direction for attribute
	PinInUse           Code = "pin_in_use"

	// Transfer-level (EPP only).
	Timeout Code = "timeout"

	Error Code = "error" // generic fallback
)

// E wraps a Code with context and an optional cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is match an *E against its bare Code.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
