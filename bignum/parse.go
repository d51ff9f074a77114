package bignum

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is the class every construction failure wraps.
	ErrParse = errors.New("invalid decimal integer")
	// ErrEmptyInput indicates construction from an empty string.
	ErrEmptyInput = fmt.Errorf("%w: empty input", ErrParse)
	// ErrSignOnly indicates a sign character with no digits after it.
	ErrSignOnly = fmt.Errorf("%w: sign without digits", ErrParse)
	// ErrInvalidCharacter indicates a non-digit outside the optional
	// leading sign.
	ErrInvalidCharacter = fmt.Errorf("%w: invalid character", ErrParse)
)

// Parse constructs a BigInt from decimal text matching '-'? digit+.
//
// Leading zeros are accepted and canonicalized away, so "-0" parses to the
// same value as "0". Anything outside the grammar fails with an error
// matching ErrParse and one of ErrEmptyInput, ErrSignOnly, or
// ErrInvalidCharacter.
func Parse(s string) (BigInt, error) {
	if s == "" {
		return BigInt{}, ErrEmptyInput
	}
	neg := s[0] == '-'
	body := s
	if neg {
		body = s[1:]
	}
	if body == "" {
		return BigInt{}, ErrSignOnly
	}

	mag := make([]byte, 0, len(body))
	for i := len(body) - 1; i >= 0; i-- {
		ch := body[i]
		if ch < '0' || ch > '9' {
			return BigInt{}, fmt.Errorf("%w in %q", ErrInvalidCharacter, s)
		}
		mag = append(mag, ch-'0')
	}
	return canonical(neg, mag), nil
}

// MustParse is like Parse but panics on invalid input. Use it for literals
// known to be well formed.
func MustParse(s string) BigInt {
	z, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return z
}
