package bignum

import "fmt"

// Sign is the sign of an Int. The three values are ordered
// Negative < Zero < Positive, so they compare like the numbers they stand
// for.
type Sign int8

const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

// Neg returns the opposite sign. Neg of Zero is Zero.
func (s Sign) Neg() Sign {
	switch s {
	case Negative:
		return Positive
	case Zero:
		return Zero
	case Positive:
		return Negative
	default:
		panic(fmt.Sprintf("bignum: invalid sign %d", int8(s)))
	}
}

// Mul returns the sign of a product of two values with signs s and o.
func (s Sign) Mul(o Sign) Sign {
	s.check()
	o.check()
	return s * o
}

func (s Sign) check() {
	if s < Negative || s > Positive {
		panic(fmt.Sprintf("bignum: invalid sign %d", int8(s)))
	}
}

func (s Sign) String() string {
	switch s {
	case Negative:
		return "-"
	case Zero:
		return "0"
	case Positive:
		return "+"
	default:
		panic(fmt.Sprintf("bignum: invalid sign %d", int8(s)))
	}
}
