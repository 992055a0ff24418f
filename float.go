// This file contains a heavily modified version of math.Mod
// that only supports our specific range of values.
//
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"math"
)

// UintFromFloat64 creates a Uint from the integer part of f. Negative values,
// NaN and infinities produce zero and set inRange to 'false'.
func UintFromFloat64(f float64) (out Uint, inRange bool) {
	if f == 0 {
		return Uint{}, true

	} else if f < 0 || math.IsInf(f, 1) {
		return Uint{}, false

	} else if f < maxUint64Float {
		return UintFrom64(uint64(f)), true

	} else if f != f { // (f != f) == NaN
		return Uint{}, false
	}

	// f is at least 1<<64 so it has no fractional part, and dividing by
	// DigitBase only adjusts the exponent.
	var digits []Digit
	for f > 0 {
		lo := modpos(f, digitBaseFloat)
		digits = append(digits, Digit(lo))
		f = (f - lo) / digitBaseFloat
	}
	return newUint(digits), true
}

// IntFromFloat64 creates an Int from the integer part of f. NaN and
// infinities produce zero and set inRange to 'false'.
func IntFromFloat64(f float64) (out Int, inRange bool) {
	if f < 0 {
		mag, inRange := UintFromFloat64(-f)
		return IntFromUint(Negative, mag), inRange
	}
	mag, inRange := UintFromFloat64(f)
	return IntFromUint(Positive, mag), inRange
}

// AsFloat64 returns the float64 nearest to u. Values beyond the range of
// float64 produce +Inf.
func (u Uint) AsFloat64() float64 {
	bl := u.BitLen()
	if bl <= 64 {
		return float64(u.AsUint64())
	}

	// Round using the top 64 bits; anything set below them only matters for
	// breaking a tie, so it is folded into the lowest bit.
	shift := uint(bl - 64)
	top := u.Rsh(shift).AsUint64()
	if !u.lowBitsZero(shift) {
		top |= 1
	}
	return math.Ldexp(float64(top), int(shift))
}

// lowBitsZero reports whether the n least significant bits of u are all
// zero.
func (u Uint) lowBitsZero(n uint) bool {
	units, rem := int(n/DigitBits), n%DigitBits
	for i := 0; i < units && i < len(u.digits); i++ {
		if u.digits[i] != 0 {
			return false
		}
	}
	if rem == 0 || units >= len(u.digits) {
		return true
	}
	return u.digits[units]&(1<<rem-1) == 0
}

func (i Int) AsFloat64() float64 {
	if i.sign == Negative {
		return -i.mag.AsFloat64()
	}
	return i.mag.AsFloat64()
}

// modpos is a very slimmed-down approximation of math.Mod, but without support
// for any of the things we don't need here. It is intended for when x is known
// to be positive. All calls have been hand-inlined for performance.
func modpos(x, y float64) float64 {
	const (
		mask  = 0x7FF
		shift = 64 - 11 - 1
		bias  = 1023
	)

	ybits := math.Float64bits(y)

	bits := ybits
	yexp := int((bits>>shift)&mask) - bias + 1
	bits &^= mask << shift
	bits |= (-1 + bias) << shift
	yfr := math.Float64frombits(bits)

	r := x
	for r >= y {
		bits = math.Float64bits(r)
		rexp := int((bits>>shift)&mask) - bias + 1
		bits &^= mask << shift
		bits |= (-1 + bias) << shift
		rfr := math.Float64frombits(bits)

		if rfr < yfr {
			rexp = rexp - 1
		}

		x := ybits
		exp := (rexp - yexp) + int(x>>shift)&mask - bias
		x &^= mask << shift
		x |= uint64(exp+bias) << shift
		r = r - math.Float64frombits(x)
	}
	return r
}
