package cpu

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

const (
	IP_HALT = -1 // Program counter value after a HALT.
)

// StepKind is the type of state change made by executing a line.
type StepKind int

const (
	STEP_SKIP         = StepKind(0) // Blank or comment line, nothing to report.
	STEP_NONE         = StepKind(1) // Label declaration.
	STEP_DEFINE       = StepKind(2) // Constant Name defined as Value.
	STEP_ACCU         = StepKind(3) // Accumulator set to Value.
	STEP_MEMORY       = StepKind(4) // Memory at Address set to Value.
	STEP_JUMP         = StepKind(5) // Jumped to label Name.
	STEP_JUMP_IGNORED = StepKind(6) // Conditional jump not taken.
	STEP_HALT         = StepKind(7) // Program halted.
)

// Step is the result of executing a single line.
type Step struct {
	Line    *Line    // Line that was executed.
	Kind    StepKind // Kind of state change.
	Name    string   // Constant or label name.
	Address int      // Memory address.
	Value   int      // New accumulator, memory or constant value.
	Warning error    // Non-fatal condition raised by the line.
}

// Cpu is the simulation context for the MiMa processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Program *Program // Program being executed.

	Ip        int       // Current program counter, as an index into Program.Lines.
	Accu      int       // Accumulator.
	Memory    Memory    // Word addressed memory.
	Constants Constants // Constants defined by the program.

	Ticks int // Executed lines counter, excluding blank lines and comments.
}

// NewCpu creates a new CPU for a program.
func NewCpu(prog *Program) (cpu *Cpu) {
	cpu = &Cpu{
		Program: prog,
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %v\n", "ip", cpu.Ip)
	text += fmt.Sprintf("% 5s: %v (%06X)\n", "accu", cpu.Accu, cpu.Accu&WORD_MASK)
	text += fmt.Sprintf("% 5s: %v\n", "cells", cpu.Memory.Len())
	text += fmt.Sprintf("% 5s: %v\n", "const", cpu.Constants.Len())

	return
}

// Reset the CPU state.
// - Clears the accumulator, memory, and constants.
// - Zeros the tick counter.
// - Sets the program counter to the first line.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Ip = 0
	cpu.Accu = 0
	cpu.Ticks = 0
	cpu.Memory.Reset()
	cpu.Constants.Reset()
}

// FetchLine fetches the line at the program counter.
func (cpu *Cpu) FetchLine() (line *Line, err error) {
	if cpu.Program == nil || cpu.Ip < 0 || cpu.Ip >= cpu.Program.Len() {
		err = ErrIpEmpty
		return
	}

	line = &cpu.Program.Lines[cpu.Ip]
	return
}

// Tick fetches and executes a single line.
func (cpu *Cpu) Tick() (step Step, err error) {
	line, err := cpu.FetchLine()
	if err != nil {
		return
	}

	return cpu.Execute(line)
}

// Define defines a constant from 'NAME=VALUE' text.
func (cpu *Cpu) Define(text string) (step Step, err error) {
	name, value, ok := strings.Cut(text, "=")
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	if !ok || len(name) == 0 {
		err = ErrDefineSyntax
		return
	}

	if !ValidName(name) {
		err = ErrConstantName
		return
	}

	val, err := cpu.numberOf(value)
	if err != nil {
		var perr ErrParseExpression
		if !errors.As(err, &perr) {
			err = ErrDefineValue
		}
		return
	}

	err = cpu.Constants.Define(name, val)
	if err != nil {
		return
	}

	step = Step{Kind: STEP_DEFINE, Name: name, Value: val}
	return
}

// Execute executes a single decoded line. The program counter is only
// advanced if the line executed without error.
func (cpu *Cpu) Execute(line *Line) (step Step, err error) {
	if cpu.Verbose {
		log.Printf("%03d: %v", cpu.Ip, line.Text)
	}

	next_ip := cpu.Ip + 1

	switch line.Kind {
	case LINE_BLANK, LINE_COMMENT:
		step.Kind = STEP_SKIP
	case LINE_LABEL:
		step.Kind = STEP_NONE
		step.Name = line.Label
	case LINE_DEFINE:
		step, err = cpu.Define(line.Parameter)
	case LINE_OPCODE:
		step, next_ip, err = cpu.execOpcode(line.Opcode, line.Parameter, next_ip)
	default:
		err = ErrOpcodeInvalid
	}

	step.Line = line
	if err != nil {
		return
	}

	cpu.Ip = next_ip
	if step.Kind != STEP_SKIP {
		cpu.Ticks += 1
	}

	return
}

// execOpcode executes an instruction, and returns the next program counter.
func (cpu *Cpu) execOpcode(op Opcode, parameter string, next_ip_in int) (step Step, next_ip int, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrOpcode(op), err)
		}
	}()

	next_ip = next_ip_in

	if !op.HasParameter() && len(parameter) != 0 {
		err = ErrOpcodeExtraArgs
		return
	}

	if op.HasParameter() && len(parameter) == 0 {
		err = ErrParameterMissing
		return
	}

	var arg int
	if op.HasParameter() && !op.IsJump() {
		arg, err = cpu.valueOf(parameter)
		if err != nil {
			return
		}
	}

	step.Kind = STEP_ACCU

	switch op {
	case OP_LDC:
		if !ValidAddress(arg) {
			step.Warning = ErrConstantRange(arg)
		}
		cpu.Accu = arg
	case OP_STV:
		cpu.Memory.Store(arg, cpu.Accu)
		step.Kind = STEP_MEMORY
		step.Address = arg
	case OP_LDV:
		var value int
		value, err = cpu.Memory.Load(arg)
		if err != nil {
			return
		}
		cpu.Accu = value
	case OP_STIV:
		var target int
		target, err = cpu.Memory.Indirect(arg)
		if err != nil {
			return
		}
		cpu.Memory.Store(target, cpu.Accu)
		step.Kind = STEP_MEMORY
		step.Address = target
	case OP_LDIV:
		var target, value int
		target, err = cpu.Memory.Indirect(arg)
		if err != nil {
			return
		}
		value, err = cpu.Memory.Load(target)
		if err != nil {
			return
		}
		cpu.Accu = value
	case OP_ADD, OP_AND, OP_OR, OP_XOR, OP_EQL:
		var value int
		value, err = cpu.Memory.Load(arg)
		if err != nil {
			return
		}
		cpu.Accu = cpu.doAlu(op, cpu.Accu, value)
	case OP_NOT:
		cpu.Accu = Trunc24(^cpu.Accu)
	case OP_RAR:
		cpu.Accu = Rar(cpu.Accu)
	case OP_JMN, OP_JMP:
		step.Name = parameter
		if op == OP_JMN && cpu.Accu >= 0 {
			step.Kind = STEP_JUMP_IGNORED
			return
		}
		next_ip, err = cpu.Program.Find(parameter)
		if err != nil {
			return
		}
		step.Kind = STEP_JUMP
		return
	case OP_HALT:
		next_ip = IP_HALT
		step.Kind = STEP_HALT
		return
	default:
		err = ErrOpcodeInvalid
		return
	}

	step.Value = cpu.Accu

	return
}

// doAlu performs the requested ALU action, and returns the output value.
func (cpu *Cpu) doAlu(op Opcode, input int, value int) (output int) {
	switch op {
	case OP_ADD:
		output = input + value
	case OP_AND:
		output = input & value
	case OP_OR:
		output = input | value
	case OP_XOR:
		output = input ^ value
	case OP_EQL:
		if input == value {
			return -1
		}
		return 0
	}

	return Trunc24(output)
}
