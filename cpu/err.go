package cpu

import (
	"errors"
	"strconv"

	"github.com/ezrec/mima/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrIpEmpty = errors.New(f("ip empty"))

	// Program decode errors
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrLabelSyntax     = errors.New(f("label name missing"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrOpcodeExtraArgs = errors.New(f("excessive arguments"))

	// Execution errors
	ErrParameterMissing  = errors.New(f("parameter missing"))
	ErrConstantName      = errors.New(f("constants must begin with a letter"))
	ErrConstantDuplicate = errors.New(f("constant duplicated"))
	ErrDefineSyntax      = errors.New(f("#DEF syntax, use e.g. '#DEF MAX=100'"))
	ErrDefineValue       = errors.New(f("#DEF value is not a number, use e.g. '#DEF MAX=100'"))
)

// ErrLabelMissing is returned when a jump targets an undeclared label.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrAddressMissing is returned when reading a never written address.
type ErrAddressMissing int

func (ea ErrAddressMissing) Error() string {
	return f("address %v missing", strconv.Itoa(int(ea)))
}

// ErrAddressRange is returned when an indirect address is outside
// of the 20-bit address space.
type ErrAddressRange int

func (ea ErrAddressRange) Error() string {
	return f("nonexistent address %v", strconv.Itoa(int(ea)))
}

// ErrConstantRange is the warning for an LDC constant outside
// of the 20-bit range.
type ErrConstantRange int

func (ec ErrConstantRange) Error() string {
	return f("illegal 20-bit constant %v", strconv.Itoa(int(ec)))
}

type ErrIllegalArgument string

func (err ErrIllegalArgument) Error() string {
	return f("illegal argument '%v', constant might not have been initialized", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrOpcode Opcode

func (eo ErrOpcode) Error() string {
	return f("in opcode %v", Opcode(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrSyntax locates a program decode error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %v '%v' %v", strconv.Itoa(err.LineNo), err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
