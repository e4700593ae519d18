package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tekktrik/TekkPort/ports"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show register addresses and probe bidirectional capability",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, done, err := openPort()
		if err != nil {
			return err
		}
		defer done()
		space := p.Addresses()
		fmt.Printf("base:          %#04x\n", space.Base())
		fmt.Printf("data:          %#04x\n", space.Data())
		fmt.Printf("status:        %#04x\n", space.Status())
		fmt.Printf("control:       %#04x\n", space.Control())
		fmt.Printf("epp data:      %#04x\n", space.EPPData())
		fmt.Printf("epp address:   %#04x\n", space.EPPAddress())
		fmt.Printf("direction:     %s\n", p.Direction())
		fmt.Printf("bidirectional: %v\n", p.ProbeBidirectional())
		return nil
	},
}

var readCmd = &cobra.Command{
	Use:   "read <data|status|control>",
	Short: "Read one SPP register",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, done, err := openPort()
		if err != nil {
			return err
		}
		defer done()
		var v uint8
		switch args[0] {
		case "data":
			v = p.ReadData()
		case "status":
			v = p.ReadStatus()
		case "control":
			v = p.ReadControl()
		default:
			return fmt.Errorf("unknown register %q", args[0])
		}
		fmt.Printf("%#02x (%#08b)\n", v, v)
		return nil
	},
}

var writeCmd = &cobra.Command{
	Use:   "write <data|control> <value>",
	Short: "Write one SPP register",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseUint(args[1], 0, 8)
		if err != nil {
			return fmt.Errorf("invalid byte %q: %w", args[1], err)
		}
		p, done, err := openPort()
		if err != nil {
			return err
		}
		defer done()
		switch args[0] {
		case "data":
			p.WriteData(uint8(value))
		case "control":
			p.WriteControl(uint8(value))
		default:
			return fmt.Errorf("register %q is not writable", args[0])
		}
		return nil
	},
}

var dirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Get or set the port transfer direction",
}

var dirGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current transfer direction",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, done, err := openPort()
		if err != nil {
			return err
		}
		defer done()
		fmt.Println(p.Direction())
		return nil
	},
}

var dirSetCmd = &cobra.Command{
	Use:   "set <forward|reverse>",
	Short: "Set the transfer direction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var d ports.Direction
		switch args[0] {
		case "forward":
			d = ports.Forward
		case "reverse":
			d = ports.Reverse
		default:
			return fmt.Errorf("unknown direction %q", args[0])
		}
		p, done, err := openPort()
		if err != nil {
			return err
		}
		defer done()
		p.SetDirection(d)
		return nil
	},
}

var dirResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Soft-reset the control pins",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, done, err := openPort()
		if err != nil {
			return err
		}
		defer done()
		p.ResetControlPins(p.ProbeBidirectional())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(writeCmd)
	dirCmd.AddCommand(dirGetCmd)
	dirCmd.AddCommand(dirSetCmd)
	dirCmd.AddCommand(dirResetCmd)
	rootCmd.AddCommand(dirCmd)
}
