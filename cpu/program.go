package cpu

// LineKind classifies a program line.
type LineKind int

const (
	LINE_BLANK   = LineKind(0) // Empty line.
	LINE_COMMENT = LineKind(1) // '//' comment.
	LINE_LABEL   = LineKind(2) // ':NAME' jump target.
	LINE_DEFINE  = LineKind(3) // '#DEF NAME=VALUE' constant.
	LINE_OPCODE  = LineKind(4) // 'OPCODE [PARAMETER]' instruction.
)

// Line is a single decoded line of a program.
type Line struct {
	LineNo    int      // Source line number, starting at 1.
	Text      string   // Normalized source text.
	Kind      LineKind // Classification of the line.
	Label     string   // Label name, for LINE_LABEL.
	Opcode    Opcode   // Instruction, for LINE_OPCODE.
	Parameter string   // Raw parameter, for LINE_OPCODE and LINE_DEFINE.
}

// Program is a decoded program. The index of a line in Lines is its
// program counter value.
type Program struct {
	Lines []Line
	Label map[string]int // Map of labels to line indexes.
}

// Find returns the line index of a label.
func (prog *Program) Find(label string) (index int, err error) {
	index, ok := prog.Label[label]
	if !ok {
		err = ErrLabelMissing(label)
		return
	}

	return
}

// Len returns the number of lines in the program.
func (prog *Program) Len() int {
	return len(prog.Lines)
}
