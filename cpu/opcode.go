package cpu

// Opcode is a MiMa instruction.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_LDC  = Opcode(0)  // LDC
	OP_LDV  = Opcode(1)  // LDV
	OP_STV  = Opcode(2)  // STV
	OP_LDIV = Opcode(3)  // LDIV
	OP_STIV = Opcode(4)  // STIV
	OP_ADD  = Opcode(5)  // ADD
	OP_AND  = Opcode(6)  // AND
	OP_OR   = Opcode(7)  // OR
	OP_XOR  = Opcode(8)  // XOR
	OP_NOT  = Opcode(9)  // NOT
	OP_RAR  = Opcode(10) // RAR
	OP_EQL  = Opcode(11) // EQL
	OP_JMP  = Opcode(12) // JMP
	OP_JMN  = Opcode(13) // JMN
	OP_HALT = Opcode(14) // HALT
)

// opcodeMap maps mnemonics to opcodes.
var opcodeMap = map[string]Opcode{
	"LDC":  OP_LDC,
	"LDV":  OP_LDV,
	"STV":  OP_STV,
	"LDIV": OP_LDIV,
	"STIV": OP_STIV,
	"ADD":  OP_ADD,
	"AND":  OP_AND,
	"OR":   OP_OR,
	"XOR":  OP_XOR,
	"NOT":  OP_NOT,
	"RAR":  OP_RAR,
	"EQL":  OP_EQL,
	"JMP":  OP_JMP,
	"JMN":  OP_JMN,
	"HALT": OP_HALT,
}

// LookupOpcode returns the opcode for a mnemonic.
func LookupOpcode(mnemonic string) (op Opcode, ok bool) {
	op, ok = opcodeMap[mnemonic]
	return
}

// HasParameter returns true if the opcode requires a parameter.
func (op Opcode) HasParameter() bool {
	switch op {
	case OP_NOT, OP_RAR, OP_HALT:
		return false
	}

	return true
}

// IsJump returns true if the parameter of the opcode is a label.
func (op Opcode) IsJump() bool {
	return op == OP_JMP || op == OP_JMN
}
