package cpu

const (
	WORD_BITS = 24                   // Width of a machine word.
	WORD_MASK = (1 << WORD_BITS) - 1 // Mask of the machine word bits.
	WORD_SIGN = 1 << (WORD_BITS - 1) // Sign bit of a machine word.
	ADDR_BITS = 20                   // Width of an address or LDC constant.
	ADDR_MAX  = (1 << ADDR_BITS) - 1 // Largest address or LDC constant.
)

// Trunc24 reduces a value to its low 24 bits, interpreted as a
// two's-complement machine word.
func Trunc24(value int) int {
	value &= WORD_MASK
	if (value & WORD_SIGN) != 0 {
		value -= 1 << WORD_BITS
	}

	return value
}

// Rar rotates the low 24 bits of a value right by one position.
// Bit 0 moves into bit 23.
func Rar(value int) int {
	word := value & WORD_MASK
	word = (word >> 1) | ((word & 1) << (WORD_BITS - 1))

	return Trunc24(word)
}

// ValidAddress returns true if the value fits in the 20-bit address space.
func ValidAddress(value int) bool {
	return value >= 0 && value <= ADDR_MAX
}
