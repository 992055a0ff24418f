package bignum

import "math"

const (
	// float64(DigitBase), used when moving between digits and floats.
	digitBaseFloat = float64(DigitBase)

	maxUint64Float = float64(math.MaxUint64) // (1<<64) - 1, rounds up to 1<<64
)

var (
	uintOne = Uint{digits: []Digit{1}}

	// minInt64Mag is the magnitude of math.MinInt64, 1 << 63:
	minInt64Mag = UintFrom64(1 << 63)

	zeroUint Uint
	zeroInt  Int
)
