//go:build 386 || arm || mips || mipsle

package bignum

// Digit is the storage unit of a Uint. It is half the width of a uint, so
// the product of two digits plus a carry always fits in one uint.
type Digit uint16

// DigitBits is the width of a Digit in bits.
const DigitBits = 16

// radixChunk returns the largest power of radix that does not exceed
// DigitBase, along with the number of radix characters it spans.
func radixChunk(radix int) (base uint, width int) {
	checkRadix(radix)
	switch radix {
	case 2:
		return 65536, 16
	case 3:
		return 59049, 10
	case 4:
		return 65536, 8
	case 5:
		return 15625, 6
	case 6:
		return 46656, 6
	case 7:
		return 16807, 5
	case 8:
		return 32768, 5
	case 9:
		return 59049, 5
	case 10:
		return 10000, 4
	case 11:
		return 14641, 4
	case 12:
		return 20736, 4
	case 13:
		return 28561, 4
	case 14:
		return 38416, 4
	case 15:
		return 50625, 4
	case 16:
		return 65536, 4
	default:
		panic("bignum: unreachable radix")
	}
}
