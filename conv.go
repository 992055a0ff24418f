package bignum

import (
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// UintFromString parses s as an unsigned integer in the given radix, which
// must be between 2 and 16 inclusive. Letters may be in either case. Signs,
// prefixes, underscores and empty strings are all rejected; ok is false if s
// is not valid.
func UintFromString(s string, radix int) (out Uint, ok bool) {
	base, width := radixChunk(radix)
	if s == "" {
		return Uint{}, false
	}

	// Work from the least significant end so every group except possibly
	// the first is exactly one chunk wide.
	chunkBase := UintFromWord(base)
	power := uintOne
	for end := len(s); end > 0; end -= width {
		start := max(0, end-width)
		v, err := strconv.ParseUint(s[start:end], radix, DigitBits)
		if err != nil {
			return Uint{}, false
		}
		d, err := safecast.Conv[Digit](v)
		if err != nil {
			return Uint{}, false
		}
		if d != 0 {
			out = out.Add(mulSingle(power, d))
		}
		if start > 0 {
			power = power.Mul(chunkBase)
		}
	}
	return out, true
}

// IntFromString parses s as a signed integer in the given radix. A single
// leading '-' is accepted; otherwise the rules are those of UintFromString.
func IntFromString(s string, radix int) (out Int, ok bool) {
	sign := Positive
	if strings.HasPrefix(s, "-") {
		sign, s = Negative, s[1:]
	}
	mag, ok := UintFromString(s, radix)
	if !ok {
		return Int{}, false
	}
	return IntFromUint(sign, mag), true
}

// Text returns the string representation of u in the given radix, which must
// be between 2 and 16 inclusive. Letters are lowercase.
func (u Uint) Text(radix int) string {
	base, width := radixChunk(radix)
	if u.IsZero() {
		return "0"
	}
	var chunks []Digit
	if base == DigitBase {
		chunks = u.digits
	} else {
		chunks = convertBase(u, Digit(base))
	}
	return fillConcat(chunks, radix, width)
}

// Text returns the string representation of i in the given radix, with a
// leading '-' if i is negative.
func (i Int) Text(radix int) string {
	if i.sign == Negative {
		return "-" + i.mag.Text(radix)
	}
	return i.mag.Text(radix)
}

// convertBase returns the little-endian digits of u in the given base.
func convertBase(u Uint, base Digit) []Digit {
	var out []Digit
	d := u.digits
	for len(d) > 0 {
		var r Digit
		d, r = divModDigit(d, base)
		out = append(out, r)
	}
	return out
}

func fillConcat(chunks []Digit, radix, width int) string {
	var sb strings.Builder
	sb.Grow(len(chunks) * width)
	for i := len(chunks) - 1; i >= 0; i-- {
		s := strconv.FormatUint(uint64(chunks[i]), radix)
		if pad := width - len(s); pad > 0 {
			sb.WriteString(strings.Repeat("0", pad))
		}
		sb.WriteString(s)
	}
	return strings.TrimLeft(sb.String(), "0")
}
