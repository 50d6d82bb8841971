package console

// tracer implements cpu.Observer by logging one line per instruction in
// the PCMEM format used by several widely used Game Boy trace loggers,
// handy for diffing execution against another emulator.
type tracer struct {
	c *Console
}

// EnableTrace installs a logging observer that writes one line per
// executed instruction to c.Logger in the form:
//
//	A:aa F:ff B:bb C:cc D:dd E:ee H:hh L:ll SP:ssss PC:pppp PCMEM:b0,b1,b2,b3
func (c *Console) EnableTrace() {
	c.CPU.Observer = tracer{c: c}
}

// DisableTrace removes the trace observer, restoring plain execution.
func (c *Console) DisableTrace() {
	c.CPU.Observer = nil
}

func (t tracer) OnStep(pc uint16) {
	r := &t.c.CPU.Registers
	t.c.Logger.Printf(
		"A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X PCMEM:%02X,%02X,%02X,%02X",
		r.A, r.F, r.B, r.C, r.D, r.E, r.H, r.L, r.SP, pc,
		t.c.Bus.Read(pc), t.c.Bus.Read(pc+1), t.c.Bus.Read(pc+2), t.c.Bus.Read(pc+3),
	)
}

// Mode names the console's run state for status reporting by the CLI
// and debugger.
type Mode uint8

const (
	ModeRunning Mode = iota
	ModeHalted
	ModeStopped
)

func (m Mode) String() string {
	switch m {
	case ModeRunning:
		return "running"
	case ModeHalted:
		return "halted"
	case ModeStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Mode reports the console's current run state, for status lines in the
// CLI and debugger.
func (c *Console) Mode() Mode {
	switch {
	case c.CPU.Stopped:
		return ModeStopped
	case c.CPU.Halted:
		return ModeHalted
	default:
		return ModeRunning
	}
}
