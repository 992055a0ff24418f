package bignum

import "golang.org/x/sync/errgroup"

// Operands at least this many digits long have their top-level Karatsuba
// sub-products computed concurrently. Below this the goroutine overhead
// outweighs the work.
const karatsubaParallelDigits = 2048

// signedDiff is the signed difference of two magnitudes. It only exists to
// carry the Karatsuba cross term.
type signedDiff struct {
	sign Sign
	mag  Uint
}

func difference(a, b Uint) signedDiff {
	return signedDiff{sign: Sign(a.Cmp(b)), mag: DifferenceUint(a, b)}
}

// Mul returns u * n.
func (u Uint) Mul(n Uint) Uint {
	return karatsuba(u, n, true)
}

func mulSingle(a Uint, d Digit) Uint {
	if d == 1 {
		return a
	}
	return Uint{digits: mulDigit(a.digits, d)}
}

func karatsuba(a, b Uint, parallel bool) Uint {
	la, lb := len(a.digits), len(b.digits)
	if la == 0 || lb == 0 {
		return Uint{}
	}
	if lb == 1 {
		return mulSingle(a, b.digits[0])
	}
	if la == 1 {
		return mulSingle(b, a.digits[0])
	}

	// With a = a1*B^half + a0 and b = b1*B^half + b0:
	//	a*b = hh*B^2half + (hh + ll - (a1-a0)(b1-b0))*B^half + ll
	half := max(la, lb) / 2
	aHi, aLo := a.cutAt(half)
	bHi, bLo := b.cutAt(half)
	dA, dB := difference(aHi, aLo), difference(bHi, bLo)

	var ll, hh, cross Uint
	if parallel && min(la, lb) >= karatsubaParallelDigits {
		var g errgroup.Group
		g.Go(func() error { ll = karatsuba(aLo, bLo, false); return nil })
		g.Go(func() error { hh = karatsuba(aHi, bHi, false); return nil })
		g.Go(func() error { cross = karatsuba(dA.mag, dB.mag, false); return nil })
		_ = g.Wait()
	} else {
		ll = karatsuba(aLo, bLo, false)
		hh = karatsuba(aHi, bHi, false)
		cross = karatsuba(dA.mag, dB.mag, false)
	}

	mm := hh.Add(ll)
	if s := dA.sign * dB.sign; s > 0 {
		mm = mm.Sub(cross)
	} else if s < 0 {
		mm = mm.Add(cross)
	}

	return ll.Add(mm.shlUnits(half)).Add(hh.shlUnits(2 * half))
}
