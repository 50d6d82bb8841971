// Command emulator runs Game Boy cartridge ROMs against the console
// core: plain execution, an interactive debugger, or a header-info dump.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gameboy-emulator/internal/console"
	"gameboy-emulator/internal/debugger"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var bootROMPath string
	var trace bool
	var breakAt string

	root := &cobra.Command{
		Use:   "emulator",
		Short: "A Game Boy (DMG) core emulator",
	}
	root.PersistentFlags().StringVar(&bootROMPath, "boot-rom", "", "path to a boot ROM (optional, defaults to skipping the boot sequence)")
	root.PersistentFlags().BoolVar(&trace, "trace", false, "log one line per executed instruction to stderr (run only: debug's observer replaces the tracer)")
	root.PersistentFlags().StringVar(&breakAt, "break", "", "hex PC address to set an initial breakpoint at (debug only)")

	root.AddCommand(runCmd(&bootROMPath, &trace))
	root.AddCommand(debugCmd(&bootROMPath, &trace, &breakAt))
	root.AddCommand(infoCmd())
	return root
}

func loadConsole(bootROMPath, cartridgePath string) (*console.Console, error) {
	cartridgeROM, err := os.ReadFile(cartridgePath)
	if err != nil {
		return nil, fmt.Errorf("reading cartridge: %w", err)
	}

	var bootROM []byte
	if bootROMPath != "" {
		bootROM, err = os.ReadFile(bootROMPath)
		if err != nil {
			return nil, fmt.Errorf("reading boot ROM: %w", err)
		}
	}

	return console.New(bootROM, cartridgeROM)
}

func runCmd(bootROMPath *string, trace *bool) *cobra.Command {
	var frames int
	cmd := &cobra.Command{
		Use:   "run <cartridge.gb>",
		Short: "Run a cartridge for a fixed number of frames",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConsole(*bootROMPath, args[0])
			if err != nil {
				return err
			}
			if *trace {
				c.Logger.SetOutput(os.Stderr)
				c.EnableTrace()
			}
			for i := 0; i < frames; i++ {
				if _, err := c.RunFrame(); err != nil {
					return fmt.Errorf("frame %d: %w", i, err)
				}
			}
			fmt.Printf("ran %d frames (%s) [%s]\n", frames, c.Cartridge, c.Mode())
			return nil
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 60, "number of PPU frames to run before exiting")
	return cmd
}

func debugCmd(bootROMPath *string, trace *bool, breakAt *string) *cobra.Command {
	return &cobra.Command{
		Use:   "debug <cartridge.gb>",
		Short: "Run a cartridge under the interactive debugger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConsole(*bootROMPath, args[0])
			if err != nil {
				return err
			}
			if *trace {
				c.Logger.SetOutput(os.Stderr)
				c.EnableTrace()
			}
			dbg := debugger.New(c, os.Stdin, os.Stdout)
			if *breakAt != "" {
				var addr uint16
				if _, err := fmt.Sscanf(*breakAt, "%x", &addr); err != nil {
					return fmt.Errorf("parsing --break address %q: %w", *breakAt, err)
				}
				dbg.AddBreakpoint(addr, "break")
			} else {
				dbg.AddBreakpoint(c.CPU.PC, "entry")
			}
			for {
				if _, err := c.Step(); err != nil {
					return err
				}
			}
		},
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <cartridge.gb>",
		Short: "Print cartridge header information",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConsole("", args[0])
			if err != nil {
				return err
			}
			fmt.Println(c.Cartridge)
			return nil
		},
	}
}
