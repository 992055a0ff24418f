package bignum

import "math/big"

// UintFromBigInt creates a Uint from a big.Int. Negative values produce zero
// and set accurate to 'false'.
func UintFromBigInt(v *big.Int) (out Uint, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	return uintFromWords(v.Bits()), true
}

// IntFromBigInt creates an Int from a big.Int. Every big.Int is representable.
func IntFromBigInt(v *big.Int) Int {
	return IntFromUint(Sign(v.Sign()), uintFromWords(v.Bits()))
}

// uintFromWords reads the absolute value of a big.Int. A big.Word is always
// exactly two digits wide.
func uintFromWords(words []big.Word) Uint {
	if len(words) == 0 {
		return Uint{}
	}
	out := make([]Digit, len(words)*2)
	for i, w := range words {
		out[2*i+1], out[2*i] = SplitWord(uint(w))
	}
	return newUint(out)
}

// IntoBigInt copies u into b, reusing b's storage where possible.
func (u Uint) IntoBigInt(b *big.Int) {
	words := b.Bits()
	n := (len(u.digits) + 1) / 2
	if cap(words) < n {
		words = make([]big.Word, n)
	}
	words = words[:n]
	clear(words)
	for i, d := range u.digits {
		words[i/2] |= big.Word(d) << (DigitBits * uint(i%2))
	}
	b.SetBits(words)
}

func (u Uint) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u Uint) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetInt(u.AsBigInt())
}

// IntoBigInt copies i into b, reusing b's storage where possible.
func (i Int) IntoBigInt(b *big.Int) {
	i.mag.IntoBigInt(b)
	if i.sign == Negative {
		b.Neg(b)
	}
}

func (i Int) AsBigInt() (b *big.Int) {
	var v big.Int
	i.IntoBigInt(&v)
	return &v
}

func (i Int) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetInt(i.AsBigInt())
}
