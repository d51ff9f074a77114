package bignum

import "strings"

// String renders the value as decimal text: a '-' prefix when negative, then
// the digits most significant first. Canonical zero renders as "0" with no
// sign, and the output never carries leading zeros.
func (z BigInt) String() string {
	m := z.digits()
	if len(m) == 0 {
		return "0"
	}
	var sb strings.Builder
	sb.Grow(len(m) + 1)
	if z.neg {
		sb.WriteByte('-')
	}
	for i := len(m) - 1; i >= 0; i-- {
		sb.WriteByte('0' + m[i])
	}
	return sb.String()
}

// Append appends the decimal text of z to dst and returns the extended
// slice.
func (z BigInt) Append(dst []byte) []byte {
	m := z.digits()
	if len(m) == 0 {
		return append(dst, '0')
	}
	if z.neg {
		dst = append(dst, '-')
	}
	for i := len(m) - 1; i >= 0; i-- {
		dst = append(dst, '0'+m[i])
	}
	return dst
}

// MarshalText implements encoding.TextMarshaler using the String rendering.
func (z BigInt) MarshalText() ([]byte, error) {
	return z.Append(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse. The receiver
// is left untouched on error.
func (z *BigInt) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*z = v
	return nil
}
