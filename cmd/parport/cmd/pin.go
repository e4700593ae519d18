package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tekktrik/TekkPort/digitalio"
	"github.com/tekktrik/TekkPort/hardware"
	"github.com/tekktrik/TekkPort/ports"
)

var pinCmd = &cobra.Command{
	Use:   "pin",
	Short: "Read and drive individual port lines",
}

var pinListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the standard SPP pins",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := parseBase()
		if err != nil {
			return err
		}
		space, err := ports.NewAddressSpace(base)
		if err != nil {
			return err
		}
		pins := hardware.NewPins(space.Data(), space.Status(), space.Control())
		fmt.Printf("%-15s %4s %8s %4s %-6s %s\n", "NAME", "PIN", "REG", "BIT", "DIRS", "POLARITY")
		for _, pin := range pins.List() {
			dirs := ""
			if pin.InputAllowed() {
				dirs += "i"
			}
			if pin.OutputAllowed() {
				dirs += "o"
			}
			polarity := "normal"
			if pin.Inverted() {
				polarity = "inverted"
			}
			fmt.Printf("%-15s %4d %#08x %4d %-6s %s\n",
				pin.Name(), pin.Number(), pin.Register(), pin.Bit(), dirs, polarity)
		}
		return nil
	},
}

var pinReadCmd = &cobra.Command{
	Use:   "read <name>",
	Short: "Sample one line as a digital input",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, pin, done, err := openPin(args[0])
		if err != nil {
			return err
		}
		defer done()
		d, err := digitalio.New(p, pin)
		if err != nil {
			return err
		}
		defer d.Deinit()
		if pin.InputAllowed() {
			if err := d.SwitchToInput(pin.FixedPull()); err != nil {
				return err
			}
		}
		if d.Value() {
			fmt.Println("1")
		} else {
			fmt.Println("0")
		}
		return nil
	},
}

var pinWriteCmd = &cobra.Command{
	Use:   "write <name> <0|1>",
	Short: "Drive one line as a digital output",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var level bool
		switch args[1] {
		case "0":
		case "1":
			level = true
		default:
			return fmt.Errorf("level must be 0 or 1, got %q", args[1])
		}
		p, pin, done, err := openPin(args[0])
		if err != nil {
			return err
		}
		defer done()
		d, err := digitalio.New(p, pin)
		if err != nil {
			return err
		}
		defer d.Deinit()
		return d.SwitchToOutput(level, pin.FixedDriveMode())
	},
}

func openPin(name string) (*ports.StandardPort, *hardware.Pin, func(), error) {
	p, done, err := openPort()
	if err != nil {
		return nil, nil, nil, err
	}
	space := p.Addresses()
	pins := hardware.NewPins(space.Data(), space.Status(), space.Control())
	pin, ok := pins.ByName(strings.ToUpper(name))
	if !ok {
		done()
		return nil, nil, nil, fmt.Errorf("unknown pin %q (try 'parport pin list')", name)
	}
	return p, pin, done, nil
}

func init() {
	pinCmd.AddCommand(pinListCmd)
	pinCmd.AddCommand(pinReadCmd)
	pinCmd.AddCommand(pinWriteCmd)
	rootCmd.AddCommand(pinCmd)
}
