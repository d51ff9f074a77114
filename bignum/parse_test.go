package bignum

import (
	"errors"
	"testing"
)

func TestParseValid(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"0", "0"},
		{"-0", "0"},
		{"000", "0"},
		{"-000", "0"},
		{"7", "7"},
		{"-7", "-7"},
		{"0042", "42"},
		{"-0042", "-42"},
		{"13206478842272655311", "13206478842272655311"},
		{"-48084066885301367633", "-48084066885301367633"},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tc.in, err)
		}
		if got.String() != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", ErrEmptyInput},
		{"-", ErrSignOnly},
		{"89i1o4", ErrInvalidCharacter},
		{"+7", ErrInvalidCharacter},
		{" 7", ErrInvalidCharacter},
		{"7 ", ErrInvalidCharacter},
		{"1_000", ErrInvalidCharacter},
		{"12.5", ErrInvalidCharacter},
		{"--5", ErrInvalidCharacter},
		{"5-", ErrInvalidCharacter},
	}
	for _, tc := range cases {
		_, err := Parse(tc.in)
		if err == nil {
			t.Fatalf("Parse(%q) succeeded, want error", tc.in)
		}
		if !errors.Is(err, tc.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tc.in, err, tc.want)
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q) error %v does not match ErrParse", tc.in, err)
		}
	}
}

func TestParseNegativeZeroCanonical(t *testing.T) {
	z := MustParse("-0")
	if z.Sign() != 0 {
		t.Errorf("-0 has sign %d", z.Sign())
	}
	if !z.Equal(FromInt64(0)) {
		t.Errorf("-0 != 0")
	}
	if z.String() != "0" {
		t.Errorf("-0 renders as %q", z.String())
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustParse on invalid input did not panic")
		}
	}()
	MustParse("89i1o4")
}
