package bignum

import "fmt"

type RandSource interface {
	Uint64() uint64
}

// RandUint generates a random Uint of at most the given number of digits from
// an external source. The result is shorter if the top digits come out zero.
func RandUint(source RandSource, digits int) Uint {
	if digits < 0 {
		panic(fmt.Sprintf("bignum: negative digit count %d", digits))
	}
	out := make([]Digit, digits)
	for i := 0; i < digits; {
		v := source.Uint64()
		for j := 0; j < 64/DigitBits && i < digits; j++ {
			out[i] = Digit(v & digitMask)
			v >>= DigitBits
			i++
		}
	}
	return newUint(out)
}

// DifferenceUint subtracts the smaller of a and b from the larger.
func DifferenceUint(a, b Uint) Uint {
	switch a.Cmp(b) {
	case 1:
		return a.Sub(b)
	case -1:
		return b.Sub(a)
	}
	return Uint{}
}

func LargerUint(a, b Uint) Uint {
	if a.Cmp(b) < 0 {
		return b
	}
	return a
}

func SmallerUint(a, b Uint) Uint {
	if a.Cmp(b) > 0 {
		return b
	}
	return a
}

// DifferenceInt subtracts the smaller of a and b from the larger.
func DifferenceInt(a, b Int) Int {
	if a.Cmp(b) < 0 {
		return b.Sub(a)
	}
	return a.Sub(b)
}

func LargerInt(a, b Int) Int {
	if a.Cmp(b) < 0 {
		return b
	}
	return a
}

func SmallerInt(a, b Int) Int {
	if a.Cmp(b) > 0 {
		return b
	}
	return a
}
