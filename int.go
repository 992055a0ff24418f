package bignum

import (
	"fmt"
	"math"

	"fortio.org/safecast"
)

// Int is an arbitrary-precision signed integer: a Sign paired with a Uint
// magnitude.
//
// The zero value is the number 0. Like Uint, Int is a value type and all
// operations return new values.
type Int struct {
	// Zero if and only if mag is zero.
	sign Sign
	mag  Uint
}

// IntFromUint creates an Int from a sign and a magnitude. A Zero sign or a
// zero magnitude both produce 0.
func IntFromUint(sign Sign, mag Uint) Int {
	switch sign {
	case Zero:
		return Int{}
	case Negative, Positive:
		if mag.IsZero() {
			return Int{}
		}
		return Int{sign: sign, mag: mag}
	default:
		panic(fmt.Sprintf("bignum: invalid sign %d", int8(sign)))
	}
}

// IntFromDigits creates an Int from a sign and a little-endian slice of
// digits. The slice is copied.
func IntFromDigits(sign Sign, d []Digit) Int {
	return IntFromUint(sign, UintFromDigits(d))
}

func IntFromWord(v uint) Int { return IntFromUint(Positive, UintFromWord(v)) }

func IntFromInt(v int) Int {
	if v < 0 {
		return Int{sign: Negative, mag: UintFromWord(^uint(v) + 1)}
	}
	return IntFromUint(Positive, UintFromWord(uint(v)))
}

func IntFrom64(v int64) Int {
	if v < 0 {
		return Int{sign: Negative, mag: UintFrom64(^uint64(v) + 1)}
	}
	return IntFromUint(Positive, UintFrom64(uint64(v)))
}

func IntFrom32(v int32) Int { return IntFrom64(int64(v)) }

func (i Int) IsZero() bool { return i.sign == Zero }

func (i Int) Sign() Sign { return i.sign }

// Magnitude returns the absolute value of i as a Uint.
func (i Int) Magnitude() Uint { return i.mag }

func (i Int) IsPositive() bool    { return i.sign == Positive }
func (i Int) IsNegative() bool    { return i.sign == Negative }
func (i Int) IsNonNegative() bool { return i.sign != Negative }
func (i Int) IsNonPositive() bool { return i.sign != Positive }

func (i Int) String() string { return i.Text(10) }

func (i Int) Format(s fmt.State, c rune) {
	// Good enough; this is not the hot path.
	i.AsBigInt().Format(s, c)
}

// AsWord converts i to a uint. Negative values produce 0; values that do not
// fit saturate to math.MaxUint.
func (i Int) AsWord() uint {
	if i.sign != Positive {
		return 0
	}
	return i.mag.AsWord()
}

// AsUint64 converts i to a uint64. Negative values produce 0; values that do
// not fit saturate to math.MaxUint64.
func (i Int) AsUint64() uint64 {
	if i.sign != Positive {
		return 0
	}
	return i.mag.AsUint64()
}

// AsInt converts i to an int, saturating at math.MinInt and math.MaxInt.
func (i Int) AsInt() int {
	switch i.sign {
	case Zero:
		return 0
	case Positive:
		return i.mag.AsInt()
	case Negative:
		n, err := safecast.Conv[int](i.mag.AsWord())
		if err != nil {
			return math.MinInt
		}
		return -n
	default:
		panic(fmt.Sprintf("bignum: invalid sign %d", int8(i.sign)))
	}
}

// AsInt64 converts i to an int64, saturating at math.MinInt64 and
// math.MaxInt64.
func (i Int) AsInt64() int64 {
	switch i.sign {
	case Zero:
		return 0
	case Positive:
		n, err := safecast.Conv[int64](i.mag.AsUint64())
		if err != nil {
			return math.MaxInt64
		}
		return n
	case Negative:
		n, err := safecast.Conv[int64](i.mag.AsUint64())
		if err != nil {
			return math.MinInt64
		}
		return -n
	default:
		panic(fmt.Sprintf("bignum: invalid sign %d", int8(i.sign)))
	}
}

// IsInt64 reports whether i can be represented as an int64 without
// saturating.
func (i Int) IsInt64() bool {
	bl := i.mag.BitLen()
	if bl <= 63 {
		return true
	}
	return i.sign == Negative && bl == 64 && i.mag.Equal(minInt64Mag)
}

func (i Int) Neg() Int {
	return Int{sign: i.sign.Neg(), mag: i.mag}
}

func (i Int) Abs() Int {
	if i.sign == Negative {
		return Int{sign: Positive, mag: i.mag}
	}
	return i
}

func (i Int) Add(n Int) Int {
	if i.sign == Zero {
		return n
	} else if n.sign == Zero {
		return i
	}
	if i.sign == n.sign {
		return Int{sign: i.sign, mag: i.mag.Add(n.mag)}
	}
	switch i.mag.Cmp(n.mag) {
	case 1:
		return Int{sign: i.sign, mag: i.mag.Sub(n.mag)}
	case -1:
		return Int{sign: n.sign, mag: n.mag.Sub(i.mag)}
	default:
		return Int{}
	}
}

func (i Int) Sub(n Int) Int {
	return i.Add(n.Neg())
}

func (i Int) Mul(n Int) Int {
	return IntFromUint(i.sign.Mul(n.sign), i.mag.Mul(n.mag))
}

// DivMod returns the floored quotient and modulus of i / by: d is rounded
// towards negative infinity and m takes the sign of by. This is the Euclidean
// convention when by is positive. DivMod panics if by is zero.
func (i Int) DivMod(by Int) (d, m Int) {
	if by.sign == Zero {
		panic("bignum: division by zero")
	}
	q, r := i.mag.QuoRem(by.mag)
	if i.sign == Zero || i.sign == by.sign {
		return IntFromUint(i.sign.Mul(by.sign), q), IntFromUint(by.sign, r)
	}
	if r.IsZero() {
		return IntFromUint(Negative, q), Int{}
	}
	return IntFromUint(Negative, q.Add(uintOne)), IntFromUint(by.sign, by.mag.Sub(r))
}

// Div returns the floored quotient of i / by. See DivMod.
func (i Int) Div(by Int) Int {
	d, _ := i.DivMod(by)
	return d
}

// Mod returns the floored modulus of i / by. See DivMod.
func (i Int) Mod(by Int) Int {
	_, m := i.DivMod(by)
	return m
}

// QuoRem returns the truncated quotient and remainder of i / by: q is rounded
// towards zero and r takes the sign of i, like Go's / and % operators.
// QuoRem panics if by is zero.
func (i Int) QuoRem(by Int) (q, r Int) {
	if by.sign == Zero {
		panic("bignum: division by zero")
	}
	qm, rm := i.mag.QuoRem(by.mag)
	return IntFromUint(i.sign.Mul(by.sign), qm), IntFromUint(i.sign, rm)
}

// Quo returns the truncated quotient of i / by. See QuoRem.
func (i Int) Quo(by Int) Int {
	q, _ := i.QuoRem(by)
	return q
}

// Rem returns the truncated remainder of i / by. See QuoRem.
func (i Int) Rem(by Int) Int {
	_, r := i.QuoRem(by)
	return r
}

// Cmp compares i to n and returns -1 if i < n, 0 if i == n and 1 if i > n.
func (i Int) Cmp(n Int) int {
	if i.sign < n.sign {
		return -1
	} else if i.sign > n.sign {
		return 1
	}
	switch i.sign {
	case Zero:
		return 0
	case Positive:
		return i.mag.Cmp(n.mag)
	case Negative:
		return n.mag.Cmp(i.mag)
	default:
		panic(fmt.Sprintf("bignum: invalid sign %d", int8(i.sign)))
	}
}

func (i Int) Equal(n Int) bool            { return i.Cmp(n) == 0 }
func (i Int) GreaterThan(n Int) bool      { return i.Cmp(n) > 0 }
func (i Int) GreaterOrEqualTo(n Int) bool { return i.Cmp(n) >= 0 }
func (i Int) LessThan(n Int) bool         { return i.Cmp(n) < 0 }
func (i Int) LessOrEqualTo(n Int) bool    { return i.Cmp(n) <= 0 }

// Lsh shifts the magnitude of i left by n bits, keeping the sign.
func (i Int) Lsh(n uint) Int {
	return IntFromUint(i.sign, i.mag.Lsh(n))
}

// Rsh shifts the magnitude of i right by n bits, keeping the sign. Unlike
// big.Int.Rsh, negative values round towards zero: -1 >> 1 == 0.
func (i Int) Rsh(n uint) Int {
	return IntFromUint(i.sign, i.mag.Rsh(n))
}
