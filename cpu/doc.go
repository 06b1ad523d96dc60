// Package cpu implements the minimal machine (MiMa) processor and its
// program decoder.
//
// The processor consists of a program counter (Ip), a single 24-bit
// two's-complement accumulator, a sparse word-addressed memory, and a
// table of symbolic constants defined by the program with #DEF.
//
// The assembler decodes program text into lines, classifying each line as
// blank, comment, label declaration, constant definition or instruction,
// and builds the label index used by the JMP and JMN instructions.
package cpu
