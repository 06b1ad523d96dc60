package emulator

import (
	"fmt"
	"strconv"

	"github.com/ezrec/mima/cpu"
)

// addressName renders an address as the name of the first constant
// with the same value, or as a number.
func (emu *Emulator) addressName(addr int) string {
	name, ok := emu.Cpu.Constants.NameOf(addr)
	if ok {
		return name
	}

	return strconv.Itoa(addr)
}

// trace writes the line text and a summary of its effect.
func (emu *Emulator) trace(step cpu.Step) {
	if emu.Quiet {
		return
	}

	out := emu.Output

	fmt.Fprintln(out, step.Line.Text)

	switch step.Kind {
	case cpu.STEP_DEFINE:
		fmt.Fprintf(out, " | %v = %d\n", step.Name, step.Value)
	case cpu.STEP_ACCU:
		fmt.Fprintf(out, " | accu: %d\n", step.Value)
	case cpu.STEP_MEMORY:
		fmt.Fprintf(out, " | %v: %d\n", emu.addressName(step.Address), step.Value)
	case cpu.STEP_JUMP:
		fmt.Fprintf(out, " | jump %v\n", step.Name)
	case cpu.STEP_JUMP_IGNORED:
		fmt.Fprintf(out, " | %v\n", f("ignore jump"))
	case cpu.STEP_HALT:
		fmt.Fprintln(out, " | halt")
	}

	if step.Warning != nil {
		fmt.Fprintf(out, " | WARNING: %v\n", step.Warning)
	}
}

// Dump writes the final machine state: the accumulator, then every
// memory cell in address order.
func (emu *Emulator) Dump() {
	out := emu.Output

	fmt.Fprintln(out, DELIMITER)
	fmt.Fprintf(out, " %v\n", f("Memory (final state)"))
	fmt.Fprintln(out, DELIMITER)
	fmt.Fprintf(out, "accu: %d\n", emu.Cpu.Accu)
	for addr, value := range emu.Cpu.Memory.All() {
		fmt.Fprintf(out, "%v: %d\n", emu.addressName(addr), value)
	}
}
