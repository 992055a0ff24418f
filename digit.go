package bignum

import "fmt"

// DigitBase is the number of distinct values a Digit can hold.
const DigitBase = 1 << DigitBits

const digitMask = DigitBase - 1

// SplitWord splits one machine word into its high and low digits.
func SplitWord(n uint) (hi, lo Digit) {
	return Digit(n >> DigitBits), Digit(n & digitMask)
}

// JoinDigits combines two digits into one machine word. It is the inverse of
// SplitWord.
func JoinDigits(hi, lo Digit) uint {
	return uint(hi)<<DigitBits | uint(lo)
}

func checkRadix(radix int) {
	if radix < 2 || radix > 16 {
		panic(fmt.Sprintf("bignum: radix %d out of range [2, 16]", radix))
	}
}
