package cpu

import (
	"fmt"
	"iter"
	"unicode"
	"unicode/utf8"
)

// Constants is the write-once table of symbolic constants.
// Definition order is preserved.
type Constants struct {
	names []string
	value map[string]int
}

// ValidName returns true if the name can be used as a constant.
func ValidName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// Define adds a new constant.
func (cs *Constants) Define(name string, value int) (err error) {
	if !ValidName(name) {
		err = ErrConstantName
		return
	}

	_, ok := cs.Lookup(name)
	if ok {
		err = fmt.Errorf("%w: %v", ErrConstantDuplicate, name)
		return
	}

	if cs.value == nil {
		cs.value = make(map[string]int, 16)
	}
	cs.value[name] = value
	cs.names = append(cs.names, name)

	return
}

// Lookup gets the value of a constant.
func (cs *Constants) Lookup(name string) (value int, ok bool) {
	value, ok = cs.value[name]
	return
}

// NameOf returns the first constant, in definition order, whose value
// matches.
func (cs *Constants) NameOf(value int) (name string, ok bool) {
	for key, val := range cs.All() {
		if val == value {
			return key, true
		}
	}

	return
}

// All returns an iterator over the constants in definition order.
func (cs *Constants) All() iter.Seq2[string, int] {
	return func(yield func(name string, value int) bool) {
		for _, name := range cs.names {
			if !yield(name, cs.value[name]) {
				return
			}
		}
	}
}

// Len returns the number of constants.
func (cs *Constants) Len() int {
	return len(cs.names)
}

// Reset removes all of the constants.
func (cs *Constants) Reset() {
	cs.names = cs.names[:0]
	clear(cs.value)
}
