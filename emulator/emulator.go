// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/ezrec/mima/cpu"
)

const (
	DELIMITER = "------------------------------------" // Separates the output sections.
)

// Emulator state. CPU + program + trace output.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	Quiet    bool         // If set, per-line trace output is suppressed.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Output io.Writer // Trace, error, and dump output.

	predefine []string // 'NAME=VALUE' constants defined at reset.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
		Output:  io.Discard,
	}

	emu.Cpu = cpu.NewCpu(emu.Program)

	return
}

// Predefine adds a 'NAME=VALUE' constant to be defined on every reset.
func (emu *Emulator) Predefine(define string) {
	emu.predefine = append(emu.predefine, define)
}

// Reset the emulator state, and define all of the predefined constants.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Program = emu.Program
	emu.Cpu.Reset()

	for _, define := range emu.predefine {
		_, err = emu.Cpu.Define(define)
		if err != nil {
			err = fmt.Errorf("%v: %w", define, err)
			return
		}
	}

	return
}

// Ticks returns the total executed lines since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Line returns the line at the program counter, or nil if there is none.
func (emu *Emulator) Line() *cpu.Line {
	line, err := emu.Cpu.FetchLine()
	if err != nil {
		return nil
	}

	return line
}

// LineNo returns the current line number for the executing line.
func (emu *Emulator) LineNo() int {
	line := emu.Line()
	if line == nil {
		return 0
	}

	return line.LineNo
}

// Tick executes the next non-blank, non-comment line of the program.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	defer func() {
		if err != nil {
			runtime := &ErrRuntime{Err: err}
			line := emu.Line()
			if line != nil {
				runtime.LineNo = line.LineNo
				runtime.Line = line.Text
			}
			err = runtime
		}
	}()

	// Tick past blank lines and comments.
	for {
		var step cpu.Step
		step, err = emu.Cpu.Tick()
		if errors.Is(err, cpu.ErrIpEmpty) {
			err = nil
			done = true
			return
		}
		if err != nil {
			return
		}
		if step.Kind == cpu.STEP_SKIP {
			continue
		}

		emu.trace(step)

		done = step.Kind == cpu.STEP_HALT
		return
	}
}

// Run executes the program until it halts, or until an error occurs.
// The error, if any, and the final machine state are written to the output.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			if emu.Verbose {
				log.Printf("emulator: halted on error\n%v", emu.Cpu)
			}
			emu.Report(err)
			break
		}
	}

	if emu.Verbose {
		log.Printf("emulator: %v lines executed", emu.Ticks())
	}

	emu.Dump()

	return
}

// Report writes a fatal error to the output.
func (emu *Emulator) Report(err error) {
	fmt.Fprintln(emu.Output, DELIMITER)
	fmt.Fprintf(emu.Output, "ERROR: %v\n", err)
}
