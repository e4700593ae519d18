package ports

// PortIO is the primitive byte accessor over absolute I/O addresses.
// Implementations are raw and unchecked: they assume a successfully opened
// backend and do no bounds checking on addr. Register I/O is assumed to
// succeed once the backend is open; there is no I/O error kind at this layer.
type PortIO interface {
	ReadByte(addr uint16) uint8
	WriteByte(addr uint16, value uint8)
}

// openBackend acquires privileged access to [base, base+span) and returns the
// byte accessor plus a best-effort release function. Each GOOS supplies its
// own implementation; platforms without one refuse with errcode.Unsupported.
//
// Acquisition is per-port where the OS allows it (a file handle on Linux) and
// process-global where it does not (the Windows vendor driver, loaded once
// and never unloaded). Overlapping ranges opened from the same process are
// not arbitrated here; that is the caller's responsibility.
