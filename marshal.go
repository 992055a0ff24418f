package bignum

import (
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// All encodings below use the decimal string form, which does not depend on
// DigitBits.

var (
	_ msgpack.CustomEncoder = Uint{}
	_ msgpack.CustomDecoder = (*Uint)(nil)
	_ msgpack.CustomEncoder = Int{}
	_ msgpack.CustomDecoder = (*Int)(nil)
)

func (u Uint) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Uint) UnmarshalText(bts []byte) (err error) {
	v, ok := UintFromString(string(bts), 10)
	if !ok {
		return errors.Errorf("bignum: uint string %q invalid", string(bts))
	}
	*u = v
	return nil
}

func (u Uint) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *Uint) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON(bts)
	if err != nil {
		return err
	}
	return u.UnmarshalText(bts)
}

func (u Uint) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(u.String())
}

func (u *Uint) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return errors.Wrap(err, "bignum: uint msgpack decode failed")
	}
	return u.UnmarshalText([]byte(s))
}

func (i Int) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int) UnmarshalText(bts []byte) (err error) {
	v, ok := IntFromString(string(bts), 10)
	if !ok {
		return errors.Errorf("bignum: int string %q invalid", string(bts))
	}
	*i = v
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *Int) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON(bts)
	if err != nil {
		return err
	}
	return i.UnmarshalText(bts)
}

func (i Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(i.String())
}

func (i *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return errors.Wrap(err, "bignum: int msgpack decode failed")
	}
	return i.UnmarshalText([]byte(s))
}

// unquoteJSON strips the quotes from a JSON string. Bare JSON numbers are
// accepted as-is.
func unquoteJSON(bts []byte) ([]byte, error) {
	ln := len(bts)
	if ln == 0 {
		return nil, errors.New("bignum: empty JSON input")
	}
	if bts[0] == '"' {
		if ln < 2 || bts[ln-1] != '"' {
			return nil, errors.Errorf("bignum: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return bts, nil
}
