package cpu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// parenEval does run-time $(...) evaluations, with the currently
// defined constants available as integer variables.
func (cpu *Cpu) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for name, val := range cpu.Constants.All() {
		pred[name] = starlark.MakeInt(val)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrParseExpression(expr), err)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// numberOf parses a decimal or '0x' hexadecimal integer literal,
// or a $(...) expression.
func (cpu *Cpu) numberOf(word string) (value int, err error) {
	if isExpression(word) {
		return cpu.parenEval(word[2 : len(word)-1])
	}

	sign, digits := "", word
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		sign, digits = digits[:1], digits[1:]
	}

	base := 10
	if len(digits) > 2 && strings.EqualFold(digits[:2], "0x") {
		base, digits = 16, digits[2:]
		if strings.ContainsAny(digits, "+-") {
			err = strconv.ErrSyntax
			return
		}
	}

	v64, err := strconv.ParseInt(sign+digits, base, 32)
	if err != nil {
		return
	}

	value = int(v64)
	return
}

// valueOf resolves an instruction parameter. Constants take precedence
// over expressions and literals.
func (cpu *Cpu) valueOf(word string) (value int, err error) {
	value, ok := cpu.Constants.Lookup(word)
	if ok {
		return
	}

	value, err = cpu.numberOf(word)
	if err != nil {
		var perr ErrParseExpression
		if !errors.As(err, &perr) {
			err = ErrIllegalArgument(word)
		}
		return
	}

	return
}
