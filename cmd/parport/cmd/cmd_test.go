package cmd

import "testing"

// Smoke tests over the simulated backend; hardware paths need privileges.

// resetFlags restores flag state; cobra keeps parsed values across Execute
// calls.
func resetFlags(t *testing.T) {
	t.Cleanup(func() {
		baseFlag = "0x378"
		resetControl = false
		useSim = false
	})
}

func run(t *testing.T, args ...string) {
	t.Helper()
	baseFlag = "0x378"
	rootCmd.SetArgs(append([]string{"--sim"}, args...))
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("parport %v: %v", args, err)
	}
}

func TestSimCommands(t *testing.T) {
	resetFlags(t)
	run(t, "info")
	run(t, "read", "status")
	run(t, "write", "data", "0xA5")
	run(t, "dir", "set", "reverse")
	run(t, "dir", "get")
	run(t, "dir", "reset")
	run(t, "pin", "list")
	run(t, "pin", "read", "busy")
	run(t, "pin", "write", "d0", "1")
}

func TestRejectsBadInput(t *testing.T) {
	resetFlags(t)
	cases := [][]string{
		{"--sim", "read", "nope"},
		{"--sim", "write", "status", "0x01"},
		{"--sim", "write", "data", "256"},
		{"--sim", "dir", "set", "sideways"},
		{"--sim", "pin", "read", "D9"},
		{"--sim", "pin", "write", "d0", "2"},
		{"--sim", "--base", "0xFFFE", "info"},
		{"--sim", "--base", "zzz", "info"},
	}
	for _, args := range cases {
		rootCmd.SetArgs(args)
		if err := rootCmd.Execute(); err == nil {
			t.Errorf("parport %v: expected an error", args)
		}
	}
}
