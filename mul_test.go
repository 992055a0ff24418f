package bignum

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var uintMulTriples = []struct {
	a, b, c []Digit
}{
	{digits(), digits(), digits()},
	{digits(), digits(1), digits()},
	{digits(2), digits(), digits()},
	{digits(1), digits(1), digits(1)},
	{digits(2), digits(3), digits(6)},
	{digits(1), digits(1, 1, 1), digits(1, 1, 1)},
	{digits(1, 2, 3), digits(3), digits(3, 6, 9)},
	{digits(1, 1, 1), digits(M), digits(M, M, M)},
	{digits(1, 2, 3), digits(M), digits(M, M-1, M-1, 2)},
	{digits(1, 2, 3, 4), digits(M), digits(M, M-1, M-1, M-1, 3)},
	{digits(M), digits(M), digits(1, M-1)},
	{digits(M, M), digits(M), digits(1, M, M-1)},
	{digits(M, M, M), digits(M), digits(1, M, M, M-1)},
	{digits(M, M, M, M), digits(M), digits(1, M, M, M, M-1)},
	{digits(H), digits(2), digits(0, 1)},
	{digits(0, H), digits(2), digits(0, 0, 1)},
	{digits(1, 2), digits(1, 2, 3), digits(1, 4, 7, 6)},
	{digits(M, M), digits(M, M, M), digits(1, 0, M, M-1, M)},
	{digits(M, M, M), digits(M, M, M, M), digits(1, 0, 0, M, M-1, M, M)},
	{digits(0, 0, 1), digits(1, 2, 3), digits(0, 0, 1, 2, 3)},
	{digits(0, 0, 1), digits(0, 0, 0, 1), digits(0, 0, 0, 0, 0, 1)},
}

func TestUintMul(t *testing.T) {
	for _, tc := range uintMulTriples {
		a, b, c := ud(tc.a...), ud(tc.b...), ud(tc.c...)
		t.Run(fmt.Sprintf("%s*%s=%s", a, b, c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(c, a.Mul(b), dump(a.Mul(b).Digits()))
			tt.MustEqual(c, b.Mul(a))
		})
	}

	for _, tc := range uintDivModQuadruples {
		a, b, c, d := ud(tc.a...), ud(tc.b...), ud(tc.c...), ud(tc.d...)
		t.Run(fmt.Sprintf("%s=%s*%s+%s", a, b, c, d), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(a, b.Mul(c).Add(d))
			tt.MustEqual(a, c.Mul(b).Add(d))
		})
	}
}

func TestUintFactorial(t *testing.T) {
	factorial := func(n int) Uint {
		f := UintFromWord(1)
		for i := 2; i <= n; i++ {
			f = f.Mul(UintFromInt(i))
		}
		return f
	}

	for _, tc := range []struct {
		n   int
		out string
	}{
		{3, "6"},
		{10, "3628800"},
		{20, "2432902008176640000"},
		{30, "265252859812191058636308480000000"},
	} {
		t.Run(fmt.Sprintf("%d!=%s", tc.n, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			ans, ok := UintFromString(tc.out, 10)
			tt.MustAssert(ok)
			tt.MustEqual(ans, factorial(tc.n))
			tt.MustEqual(tc.out, factorial(tc.n).Text(10))
		})
	}
}

// Each case exercises one combination of signs for the Karatsuba cross
// term. The operands are split at one digit, so hi and lo are single digits.
func TestUintMulKaratsubaCrossSigns(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b Uint
	}{
		{"pos*pos", ud(1, 5), ud(2, 7)},
		{"pos*neg", ud(1, 5), ud(7, 2)},
		{"neg*pos", ud(5, 1), ud(2, 7)},
		{"neg*neg", ud(5, 1), ud(7, 2)},
		{"zero*pos", ud(3, 3), ud(2, 7)},
		{"pos*zero", ud(1, 5), ud(M, M)},
		{"uneven", ud(1, 2, 3, 4, 5), ud(M, 0, M)},
		{"short*long", ud(M, M), ud(1, 2, 3, 4, 5, 6, 7, 8, 9)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tt := assert.WrapTB(t)
			expected := new(big.Int).Mul(tc.a.AsBigInt(), tc.b.AsBigInt())
			tt.MustAssert(expected.Cmp(tc.a.Mul(tc.b).AsBigInt()) == 0)
			tt.MustAssert(expected.Cmp(tc.b.Mul(tc.a).AsBigInt()) == 0)
		})
	}
}

func TestUintMulParallelMatchesSerial(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large multiplication in short mode")
	}

	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2; i++ {
		a := RandUint(rng, karatsubaParallelDigits+rng.Intn(100))
		b := RandUint(rng, karatsubaParallelDigits+rng.Intn(100))

		parallel := a.Mul(b)
		serial := karatsuba(a, b, false)
		tt.MustEqual(serial, parallel)

		expected := new(big.Int).Mul(a.AsBigInt(), b.AsBigInt())
		tt.MustAssert(expected.Cmp(parallel.AsBigInt()) == 0)
	}
}

func TestUintMulCommutesRandom(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(globalRNG.Int63()))
	for i := 0; i < 500; i++ {
		a := RandUint(rng, rng.Intn(30))
		b := RandUint(rng, rng.Intn(30))
		tt.MustEqual(a.Mul(b), b.Mul(a))
		tt.MustEqual(a.Add(b), b.Add(a))
	}
}
