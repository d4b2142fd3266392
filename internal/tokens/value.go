package tokens

import (
	"fmt"
	"strconv"
)

// Value is a literal carried by a token or a literal expression.
// Only Number, String, Boolean and Nil implement it.
type Value interface {
	fmt.Stringer
	value()
}

// Number literal
type Number float64

// String literal, quotes not included
type String string

// Boolean literal
type Boolean bool

// Nil literal
type Nil struct{}

func (Number) value()  {}
func (String) value()  {}
func (Boolean) value() {}
func (Nil) value()     {}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (s String) String() string {
	return string(s)
}

func (b Boolean) String() string {
	return strconv.FormatBool(bool(b))
}

func (Nil) String() string {
	return "nil"
}
