package bignum

// The functions in this file operate on raw little-endian digit vectors.
// They never modify their inputs; every result is freshly allocated and
// normalized unless stated otherwise.

func normalize(d []Digit) []Digit {
	n := len(d)
	for n > 0 && d[n-1] == 0 {
		n--
	}
	if n == 0 {
		return nil
	}
	return d[:n]
}

func cmpDigits(a, b []Digit) int {
	if len(a) < len(b) {
		return -1
	} else if len(a) > len(b) {
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

func addDigits(a, b []Digit) []Digit {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]Digit, len(a)+1)
	var carry Digit
	for i := range a {
		w := uint(a[i]) + uint(carry)
		if i < len(b) {
			w += uint(b[i])
		}
		carry, out[i] = SplitWord(w)
	}
	out[len(a)] = carry
	return normalize(out)
}

// subDigits returns a - b. The caller must ensure len(a) >= len(b); the
// returned borrow is non-zero if b > a, in which case out is garbage.
func subDigits(a, b []Digit) (out []Digit, borrow Digit) {
	out = make([]Digit, len(a))
	for i := range a {
		// hi is 1 if no borrow was needed, 0 otherwise:
		w := DigitBase + uint(a[i]) - uint(borrow)
		if i < len(b) {
			w -= uint(b[i])
		}
		var hi Digit
		hi, out[i] = SplitWord(w)
		borrow = 1 - hi
	}
	return normalize(out), borrow
}

func mulDigit(a []Digit, n Digit) []Digit {
	out := make([]Digit, len(a)+1)
	var carry Digit
	for i, d := range a {
		carry, out[i] = SplitWord(uint(d)*uint(n) + uint(carry))
	}
	out[len(a)] = carry
	return normalize(out)
}

// divModDigit divides a by the single digit n, which must not be zero.
func divModDigit(a []Digit, n Digit) (q []Digit, r Digit) {
	q = make([]Digit, len(a))
	for i := len(a) - 1; i >= 0; i-- {
		w := JoinDigits(r, a[i])
		q[i] = Digit(w / uint(n))
		r = Digit(w % uint(n))
	}
	return normalize(q), r
}

func shlUnits(a []Digit, n int) []Digit {
	if n == 0 || len(a) == 0 {
		return a
	}
	out := make([]Digit, len(a)+n)
	copy(out[n:], a)
	return out
}

func shrUnits(a []Digit, n int) []Digit {
	if n == 0 {
		return a
	}
	if len(a) <= n {
		return nil
	}
	return a[n:]
}

// shlBits shifts a left by n bits, where 0 < n < DigitBits.
func shlBits(a []Digit, n uint) []Digit {
	if n == 0 || len(a) == 0 {
		return a
	}
	out := make([]Digit, len(a)+1)
	var carry Digit
	for i, d := range a {
		carry, out[i] = SplitWord(uint(d)<<n | uint(carry))
	}
	out[len(a)] = carry
	return normalize(out)
}

// shrBits shifts a right by n bits, where 0 < n < DigitBits.
func shrBits(a []Digit, n uint) []Digit {
	if n == 0 || len(a) == 0 {
		return a
	}
	out := make([]Digit, len(a))
	var borrow Digit
	for i := len(a) - 1; i >= 0; i-- {
		d := a[i]
		out[i] = d>>n | borrow
		borrow = d << (DigitBits - n)
	}
	return normalize(out)
}
