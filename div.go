package bignum

// QuoRem returns the quotient and remainder of u / by. It panics if by is
// zero.
func (u Uint) QuoRem(by Uint) (q, r Uint) {
	if by.IsZero() {
		panic("bignum: division by zero")
	}
	if u.IsZero() {
		return Uint{}, Uint{}
	}
	if by.isOne() {
		return u, Uint{}
	}
	switch u.Cmp(by) {
	case -1:
		return Uint{}, u
	case 0:
		return uintOne, Uint{}
	}

	// Scale both sides so the divisor's top digit is large enough for the
	// single-digit estimate below to be close. The quotient is unchanged; the
	// remainder has to be scaled back.
	shift := normShift(by.digits[len(by.digits)-1])
	q, r = quoRemNormalized(u.Lsh(shift), by.Lsh(shift))
	return q, r.Rsh(shift)
}

// DivMod is an alias for QuoRem; for unsigned values floored and truncated
// division agree.
func (u Uint) DivMod(by Uint) (q, r Uint) { return u.QuoRem(by) }

// Quo returns the quotient u / by. It panics if by is zero.
func (u Uint) Quo(by Uint) Uint {
	q, _ := u.QuoRem(by)
	return q
}

// Rem returns the remainder u % by. It panics if by is zero.
func (u Uint) Rem(by Uint) Uint {
	_, r := u.QuoRem(by)
	return r
}

func normShift(top Digit) (n uint) {
	for top < 1<<(DigitBits-2) {
		top <<= 1
		n++
	}
	return n
}

func quoRemNormalized(a, b Uint) (q, r Uint) {
	r = a
	bTop := b.digits[len(b.digits)-1]

	// Number of leading digits of r used for the estimate. Drops back to 1
	// after every successful step.
	n := 1

	for r.GreaterOrEqualTo(b) {
		offset := (len(r.digits) - n) - (len(b.digits) - 1)
		d := estimateQuo(r, bTop, n)

		// The estimate never undershoots; walk it down until it fits.
		prod := b.Mul(d)
		for prod.shlUnits(offset).GreaterThan(r) {
			d = d.Sub(uintOne)
			prod = prod.Sub(b)
		}
		if d.IsZero() {
			n = 2
			continue
		}

		n = 1
		q = q.Add(d.shlUnits(offset))
		r = r.Sub(prod.shlUnits(offset))
	}
	return q, r
}

func estimateQuo(r Uint, top Digit, n int) Uint {
	q, _ := divModDigit(r.digits[len(r.digits)-n:], top)
	return Uint{digits: q}
}
