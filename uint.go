package bignum

import (
	"fmt"
	"math"
	"math/bits"

	"fortio.org/safecast"
)

// Uint is an arbitrary-precision unsigned integer.
//
// The zero value is the number 0. Uint is a value type: no operation
// modifies its receiver or its arguments, and all operations return new
// values.
type Uint struct {
	// Little-endian; digits[0] is the least significant. Never has a
	// trailing zero digit; zero is the empty slice.
	digits []Digit
}

func newUint(d []Digit) Uint { return Uint{digits: normalize(d)} }

// UintFromDigits creates a Uint from a little-endian slice of digits. The
// slice is copied; trailing zero digits are dropped.
func UintFromDigits(d []Digit) Uint {
	d = normalize(d)
	if len(d) == 0 {
		return Uint{}
	}
	out := make([]Digit, len(d))
	copy(out, d)
	return Uint{digits: out}
}

// UintFromWord creates a Uint from a machine word.
func UintFromWord(v uint) Uint {
	hi, lo := SplitWord(v)
	return newUint([]Digit{lo, hi})
}

func UintFrom64(v uint64) Uint {
	var out []Digit
	for v != 0 {
		out = append(out, Digit(v&digitMask))
		v >>= DigitBits
	}
	return Uint{digits: out}
}

func UintFrom32(v uint32) Uint { return UintFrom64(uint64(v)) }

// UintFromInt creates a Uint from an int. Negative values produce zero.
func UintFromInt(v int) Uint {
	w, err := safecast.Conv[uint](v)
	if err != nil {
		return Uint{}
	}
	return UintFromWord(w)
}

func (u Uint) IsZero() bool { return len(u.digits) == 0 }

func (u Uint) isOne() bool { return len(u.digits) == 1 && u.digits[0] == 1 }

// Digits returns a copy of the little-endian digits of u. Zero has no digits.
func (u Uint) Digits() []Digit {
	if len(u.digits) == 0 {
		return nil
	}
	out := make([]Digit, len(u.digits))
	copy(out, u.digits)
	return out
}

// Len returns the number of digits in u.
func (u Uint) Len() int { return len(u.digits) }

// BitLen returns the number of bits required to represent u.
func (u Uint) BitLen() int {
	if len(u.digits) == 0 {
		return 0
	}
	top := u.digits[len(u.digits)-1]
	return (len(u.digits)-1)*DigitBits + bits.Len(uint(top))
}

func (u Uint) String() string { return u.Text(10) }

func (u Uint) Format(s fmt.State, c rune) {
	// Good enough; this is not the hot path.
	u.AsBigInt().Format(s, c)
}

// IsWord reports whether u can be represented as a uint.
func (u Uint) IsWord() bool { return len(u.digits) <= 2 }

// IsUint64 reports whether u can be represented as a uint64.
func (u Uint) IsUint64() bool { return u.BitLen() <= 64 }

// AsWord converts u to a uint. Values that do not fit saturate to
// math.MaxUint.
func (u Uint) AsWord() uint {
	switch len(u.digits) {
	case 0:
		return 0
	case 1:
		return uint(u.digits[0])
	case 2:
		return JoinDigits(u.digits[1], u.digits[0])
	default:
		return math.MaxUint
	}
}

// AsUint64 converts u to a uint64. Values that do not fit saturate to
// math.MaxUint64.
func (u Uint) AsUint64() uint64 {
	if !u.IsUint64() {
		return math.MaxUint64
	}
	var v uint64
	for i := len(u.digits) - 1; i >= 0; i-- {
		v = v<<DigitBits | uint64(u.digits[i])
	}
	return v
}

// AsInt converts u to an int. Values that do not fit saturate to
// math.MaxInt.
func (u Uint) AsInt() int {
	v, err := safecast.Conv[int](u.AsWord())
	if err != nil {
		return math.MaxInt
	}
	return v
}

func (u Uint) Add(n Uint) Uint {
	if len(n.digits) == 0 {
		return u
	} else if len(u.digits) == 0 {
		return n
	}
	return Uint{digits: addDigits(u.digits, n.digits)}
}

// Sub returns u - n. If n > u, Sub panics: a Uint cannot go negative, so
// callers must check with Cmp first.
func (u Uint) Sub(n Uint) Uint {
	if cmpDigits(u.digits, n.digits) < 0 {
		panic("bignum: uint subtraction underflow")
	}
	if len(n.digits) == 0 {
		return u
	}
	out, borrow := subDigits(u.digits, n.digits)
	if borrow != 0 {
		panic("bignum: uint subtraction underflow")
	}
	return Uint{digits: out}
}

// Cmp compares u to n and returns -1 if u < n, 0 if u == n and 1 if u > n.
func (u Uint) Cmp(n Uint) int { return cmpDigits(u.digits, n.digits) }

func (u Uint) Equal(n Uint) bool            { return cmpDigits(u.digits, n.digits) == 0 }
func (u Uint) GreaterThan(n Uint) bool      { return cmpDigits(u.digits, n.digits) > 0 }
func (u Uint) GreaterOrEqualTo(n Uint) bool { return cmpDigits(u.digits, n.digits) >= 0 }
func (u Uint) LessThan(n Uint) bool         { return cmpDigits(u.digits, n.digits) < 0 }
func (u Uint) LessOrEqualTo(n Uint) bool    { return cmpDigits(u.digits, n.digits) <= 0 }

// Lsh returns u << n.
func (u Uint) Lsh(n uint) Uint {
	if n == 0 || len(u.digits) == 0 {
		return u
	}
	units, rem := int(n/DigitBits), n%DigitBits
	return Uint{digits: shlBits(shlUnits(u.digits, units), rem)}
}

// Rsh returns u >> n.
func (u Uint) Rsh(n uint) Uint {
	if n == 0 || len(u.digits) == 0 {
		return u
	}
	if n/DigitBits >= uint(len(u.digits)) {
		return Uint{}
	}
	units, rem := int(n/DigitBits), n%DigitBits
	return newUint(shrBits(shrUnits(u.digits, units), rem))
}

func (u Uint) shlUnits(n int) Uint { return Uint{digits: shlUnits(u.digits, n)} }

// cutAt splits u into the digits at and above n, and the digits below n.
func (u Uint) cutAt(n int) (hi, lo Uint) {
	mid := min(len(u.digits), n)
	return newUint(u.digits[mid:]), newUint(u.digits[:mid])
}
