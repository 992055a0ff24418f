/*
Package bignum provides arbitrary-precision unsigned (Uint) and signed (Int)
integers.

Uint and Int are value types; all operations return new values and no
operation modifies its receiver or arguments. The zero value of each is the
number 0.

Simple example:

	u1 := UintFrom64(math.MaxUint64)
	u2 := UintFrom64(math.MaxUint64)
	fmt.Println(u1.Mul(u2))
	// Output: 340282366920938463426481119284349108225

Numbers are stored as little-endian slices of Digit, which is half the width
of a machine word: uint32 on 64-bit platforms, uint16 on 32-bit ones.
Multiplication uses Karatsuba; large products split their top level across
goroutines.

Uint and Int can be created from a variety of sources:

	UintFromWord(v uint) Uint
	UintFrom64(v uint64) Uint
	UintFrom32(v uint32) Uint
	UintFromInt(v int) Uint
	UintFromDigits(d []Digit) Uint
	UintFromString(s string, radix int) (out Uint, ok bool)
	UintFromBigInt(v *big.Int) (out Uint, accurate bool)
	UintFromFloat64(f float64) (out Uint, inRange bool)

	IntFromUint(sign Sign, mag Uint) Int
	IntFromDigits(sign Sign, d []Digit) Int
	IntFromWord(v uint) Int
	IntFromInt(v int) Int
	IntFrom64(v int64) Int
	IntFromString(s string, radix int) (out Int, ok bool)
	IntFromBigInt(v *big.Int) Int
	IntFromFloat64(f float64) (out Int, inRange bool)

Conversions back to machine integers saturate rather than wrap; use IsWord,
IsUint64 or IsInt64 to check first.

Int supports two division conventions: DivMod, Div and Mod floor the
quotient so the modulus takes the divisor's sign; QuoRem, Quo and Rem
truncate like Go's own operators.

Uint and Int support the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- msgpack.CustomEncoder
	- msgpack.CustomDecoder

*/
package bignum
