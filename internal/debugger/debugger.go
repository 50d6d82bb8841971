// Package debugger implements the console's single observer hook: a
// breakpoint table, step/continue control, and an interactive
// register-dump command loop.
package debugger

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gameboy-emulator/internal/console"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	breakStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Debugger installs itself as the console's cpu.Observer, pausing for
// interactive commands whenever a breakpoint is hit or single-stepping
// is active.
type Debugger struct {
	console *console.Console

	breakpoints map[uint16]string
	stepping    bool
	verbose     bool

	in  *bufio.Reader
	out io.Writer
}

// New returns a debugger attached to c, reading commands from in and
// writing output to out.
func New(c *console.Console, in io.Reader, out io.Writer) *Debugger {
	d := &Debugger{
		console:     c,
		breakpoints: make(map[uint16]string),
		in:          bufio.NewReader(in),
		out:         out,
	}
	c.CPU.Observer = d
	return d
}

// AddBreakpoint registers a named breakpoint at addr.
func (d *Debugger) AddBreakpoint(addr uint16, name string) {
	d.breakpoints[addr] = name
}

// RemoveBreakpoint clears a breakpoint at addr.
func (d *Debugger) RemoveBreakpoint(addr uint16) {
	delete(d.breakpoints, addr)
}

// RemoveBreakpointByName clears every breakpoint registered under name,
// returning how many were removed.
func (d *Debugger) RemoveBreakpointByName(name string) int {
	removed := 0
	for addr, label := range d.breakpoints {
		if label == name {
			delete(d.breakpoints, addr)
			removed++
		}
	}
	return removed
}

// OnStep implements cpu.Observer: it pauses into the interactive loop
// when single-stepping or when pc matches a breakpoint.
func (d *Debugger) OnStep(pc uint16) {
	name, isBreakpoint := d.breakpoints[pc]
	if !d.stepping && !isBreakpoint {
		return
	}
	if isBreakpoint {
		fmt.Fprintln(d.out, breakStyle.Render(fmt.Sprintf("breakpoint %q hit at 0x%04X", name, pc)))
	}
	if d.verbose {
		fmt.Fprintln(d.out, d.renderRegisters())
	}
	d.commandLoop(pc)
}

// commandLoop reads single-character commands until one resumes
// execution (r, s, or e; b/x/d/v just print and loop again).
func (d *Debugger) commandLoop(pc uint16) {
	for {
		fmt.Fprint(d.out, "(gbdbg) ")
		line, err := d.in.ReadString('\n')
		if err != nil {
			d.stepping = false
			return
		}
		if len(line) == 0 {
			continue
		}
		switch line[0] {
		case 'r': // run/continue until next breakpoint
			d.stepping = false
			return
		case 's': // single step
			d.stepping = true
			return
		case 'b': // set breakpoint: "b 0150 label"
			var addr uint16
			var label string
			if _, err := fmt.Sscanf(line[1:], "%x %s", &addr, &label); err == nil {
				d.AddBreakpoint(addr, label)
				fmt.Fprintf(d.out, "breakpoint set at 0x%04X (%s)\n", addr, label)
			}
		case 'x': // remove a named breakpoint: "x label"
			name := strings.TrimSpace(line[1:])
			if removed := d.RemoveBreakpointByName(name); removed > 0 {
				fmt.Fprintf(d.out, "removed breakpoint %q\n", name)
			} else {
				fmt.Fprintf(d.out, "no breakpoint named %q\n", name)
			}
		case 'd': // dump registers
			fmt.Fprintln(d.out, d.renderRegisters())
		case 'v': // toggle verbose mode
			d.verbose = !d.verbose
			fmt.Fprintf(d.out, "verbose mode: %t\n", d.verbose)
			if d.verbose {
				fmt.Fprint(d.out, d.renderBreakpoints())
			}
		case 'e': // exit debugger, run free
			d.stepping = false
			d.breakpoints = make(map[uint16]string)
			return
		default:
			fmt.Fprintln(d.out, "commands: r=continue s=step b=break x=remove d=regs v=verbose e=exit")
		}
	}
}

func (d *Debugger) renderRegisters() string {
	r := &d.console.CPU.Registers
	field := func(label string, value string) string {
		return labelStyle.Render(label+":") + valueStyle.Render(value)
	}
	return fmt.Sprintf("%s %s %s %s %s %s %s %s %s %s",
		field("A", fmt.Sprintf("%02X", r.A)),
		field("F", fmt.Sprintf("%02X", r.F)),
		field("B", fmt.Sprintf("%02X", r.B)),
		field("C", fmt.Sprintf("%02X", r.C)),
		field("D", fmt.Sprintf("%02X", r.D)),
		field("E", fmt.Sprintf("%02X", r.E)),
		field("H", fmt.Sprintf("%02X", r.H)),
		field("L", fmt.Sprintf("%02X", r.L)),
		field("SP", fmt.Sprintf("%04X", r.SP)),
		field("PC", fmt.Sprintf("%04X", r.PC)),
	)
}

func (d *Debugger) renderBreakpoints() string {
	addrs := make([]uint16, 0, len(d.breakpoints))
	for addr := range d.breakpoints {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	out := "breakpoints:\n"
	for _, addr := range addrs {
		out += fmt.Sprintf("  0x%04X  %s\n", addr, d.breakpoints[addr])
	}
	return out
}
