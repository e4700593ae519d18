package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tekktrik/TekkPort/ports"
)

var (
	// Global flags
	baseFlag     string
	resetControl bool
	useSim       bool
)

var rootCmd = &cobra.Command{
	Use:   "parport",
	Short: "Inspect and drive a parallel port's I/O registers and pins",
	Long: `parport talks to a Standard/Enhanced parallel port through its directly
addressed I/O registers. Raw port access needs privileges: root (or
CAP_SYS_RAWIO) on Linux, the inpoutx64 driver on Windows.

Examples:
  parport info                       # addresses and bidirectional capability
  parport read status                # dump one register
  parport write data 0xA5            # write one register
  parport dir set reverse            # turn the data bus around
  parport pin write D0 1             # drive one data line
  parport pin read BUSY              # sample one status line`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&baseFlag, "base", "b", "0x378",
		"SPP base address")
	rootCmd.PersistentFlags().BoolVar(&resetControl, "reset-control", false,
		"soft-reset the control pins on attach")
	rootCmd.PersistentFlags().BoolVar(&useSim, "sim", false,
		"use an in-memory register file instead of hardware")
}

func parseBase() (uint16, error) {
	base, err := strconv.ParseUint(baseFlag, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid base address %q: %w", baseFlag, err)
	}
	return uint16(base), nil
}

// openPort opens the configured port and returns it with its cleanup.
func openPort() (*ports.StandardPort, func(), error) {
	base, err := parseBase()
	if err != nil {
		return nil, nil, err
	}
	var p *ports.StandardPort
	if useSim {
		p, err = ports.Attach(ports.NewSim(), base, resetControl)
	} else {
		p, err = ports.Open(base, resetControl)
	}
	if err != nil {
		return nil, nil, err
	}
	return p, func() { _ = p.Close() }, nil
}
