// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"strings"
)

const (
	COMMENT_PREFIX = "//"   // Prefix of a comment line.
	LABEL_PREFIX   = ":"    // Prefix of a label declaration.
	DEFINE_PREFIX  = "#DEF" // Prefix of a constant definition.
)

// Assembler decodes MiMa program text into a Program.
type Assembler struct {
	Verbose bool           // If set, verbosely logs the decoded lines.
	Label   map[string]int // Map of jump labels to line indexes.
}

// normalize upper-cases a line, and strips carriage returns and
// surrounding whitespace.
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r", "")
	return strings.ToUpper(strings.TrimSpace(text))
}

// isExpression returns true if the word is a $(...) expression.
func isExpression(word string) bool {
	return strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")")
}

// stripComment removes a trailing '//' comment. Comment markers inside
// of parentheses belong to an expression, and are kept.
func stripComment(text string) string {
	depth := 0
	for n := 0; n < len(text); n++ {
		switch text[n] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case '/':
			if depth == 0 && strings.HasPrefix(text[n:], COMMENT_PREFIX) {
				return strings.TrimSpace(text[:n])
			}
		}
	}

	return text
}

// parseLine classifies a single normalized line.
func (asm *Assembler) parseLine(text string, index int) (line Line, err error) {
	line = Line{
		LineNo: index + 1,
		Text:   text,
	}

	code := stripComment(text)

	switch {
	case len(text) == 0:
		line.Kind = LINE_BLANK
	case strings.HasPrefix(text, COMMENT_PREFIX):
		line.Kind = LINE_COMMENT
	case strings.HasPrefix(code, LABEL_PREFIX):
		label := strings.TrimSpace(code[len(LABEL_PREFIX):])
		if len(label) == 0 {
			err = ErrLabelSyntax
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = index
		line.Kind = LINE_LABEL
		line.Label = label
	case strings.HasPrefix(code, DEFINE_PREFIX):
		line.Kind = LINE_DEFINE
		line.Parameter = strings.TrimSpace(code[len(DEFINE_PREFIX):])
	default:
		mnemonic, parameter := code, ""
		n := strings.IndexAny(code, " \t")
		if n >= 0 {
			mnemonic, parameter = code[:n], strings.TrimSpace(code[n:])
		}
		op, ok := LookupOpcode(mnemonic)
		if !ok {
			err = ErrOpcodeInvalid
			return
		}
		if strings.ContainsAny(parameter, " \t") && !isExpression(parameter) {
			err = ErrOpcodeExtraArgs
			return
		}
		line.Kind = LINE_OPCODE
		line.Opcode = op
		line.Parameter = parameter
	}

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Label = make(map[string]int, 16)
	prog = &Program{}

	for scanner.Scan() {
		line = normalize(scanner.Text())
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		var decoded Line
		decoded, err = asm.parseLine(line, lineno-1)
		if err != nil {
			prog = nil
			return
		}

		prog.Lines = append(prog.Lines, decoded)
	}

	err = scanner.Err()
	if err != nil {
		prog = nil
		return
	}

	prog.Label = asm.Label

	return
}
