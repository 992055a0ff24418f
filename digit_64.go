//go:build !386 && !arm && !mips && !mipsle

package bignum

// Digit is the storage unit of a Uint. It is half the width of a uint, so
// the product of two digits plus a carry always fits in one uint.
type Digit uint32

// DigitBits is the width of a Digit in bits.
const DigitBits = 32

// radixChunk returns the largest power of radix that does not exceed
// DigitBase, along with the number of radix characters it spans.
func radixChunk(radix int) (base uint, width int) {
	checkRadix(radix)
	switch radix {
	case 2:
		return 4294967296, 32
	case 3:
		return 3486784401, 20
	case 4:
		return 4294967296, 16
	case 5:
		return 1220703125, 13
	case 6:
		return 2176782336, 12
	case 7:
		return 1977326743, 11
	case 8:
		return 1073741824, 10
	case 9:
		return 3486784401, 10
	case 10:
		return 1000000000, 9
	case 11:
		return 2357947691, 9
	case 12:
		return 429981696, 8
	case 13:
		return 815730721, 8
	case 14:
		return 1475789056, 8
	case 15:
		return 2562890625, 8
	case 16:
		return 4294967296, 8
	default:
		panic("bignum: unreachable radix")
	}
}
