package bignum

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestSign(t *testing.T) {
	for _, tc := range []struct {
		s   Sign
		neg Sign
		str string
	}{
		{Negative, Positive, "-"},
		{Zero, Zero, "0"},
		{Positive, Negative, "+"},
	} {
		t.Run(tc.str, func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.neg, tc.s.Neg())
			tt.MustEqual(tc.str, tc.s.String())
		})
	}
}

func TestSignMul(t *testing.T) {
	signs := []Sign{Negative, Zero, Positive}
	for _, a := range signs {
		for _, b := range signs {
			t.Run(fmt.Sprintf("%s*%s", a, b), func(t *testing.T) {
				tt := assert.WrapTB(t)
				tt.MustEqual(Sign(int8(a)*int8(b)), a.Mul(b))
				tt.MustEqual(a.Mul(b), b.Mul(a))
			})
		}
	}
}

func TestSignInvalidPanics(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, s := range []Sign{-2, 2, 100} {
		mustPanic(tt, "invalid sign", func() { s.Neg() })
		mustPanic(tt, "invalid sign", func() { _ = s.String() })
		mustPanic(tt, "invalid sign", func() { s.Mul(Positive) })
		mustPanic(tt, "invalid sign", func() { Positive.Mul(s) })
		mustPanic(tt, "invalid sign", func() { IntFromUint(s, ud(1)) })
	}
}
