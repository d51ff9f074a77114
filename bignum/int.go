// Package bignum implements arbitrary-precision signed decimal integers.
//
// A BigInt is a sign-magnitude value: a base-10 digit sequence stored least
// significant digit first plus a sign flag. Values are canonical after every
// operation: no leading zero digits, and zero is always non-negative. Binary
// operators are pure and return fresh values; only the increment/decrement
// methods mutate their receiver, and they replace its state wholesale.
package bignum

import "math"

// BigInt is an arbitrary-precision signed integer.
//
// The zero value is ready to use and represents 0. BigInt values are safe for
// concurrent reads; mutating the same value from multiple goroutines requires
// external synchronization.
type BigInt struct {
	neg bool
	// mag holds base-10 digits, least significant first.
	//
	// Canonical zero is neg=false and mag=[0]; a nil mag (the Go zero
	// value) is accepted everywhere and reads as zero.
	mag []byte
}

var one = BigInt{mag: []byte{1}}

// Zero returns the canonical zero value.
func Zero() BigInt { return BigInt{mag: []byte{0}} }

// FromInt64 converts a native signed integer.
func FromInt64(v int64) BigInt {
	if v == 0 {
		return Zero()
	}
	neg := v < 0
	var u uint64
	if neg {
		// Widen before negating so math.MinInt64 stays exact.
		u = uint64(-(v + 1)) //nolint:gosec // G115: -(v+1) is non-negative here.
		u++
	} else {
		u = uint64(v) //nolint:gosec // G115: v is positive here.
	}
	mag := make([]byte, 0, 20)
	for u != 0 {
		mag = append(mag, byte(u%10))
		u /= 10
	}
	return BigInt{neg: neg, mag: mag}
}

// canonical restores the representation invariant over a raw sign and
// magnitude: leading zeros stripped, at least one digit kept, and a zero
// magnitude forced non-negative.
func canonical(neg bool, mag []byte) BigInt {
	mag = trimDigits(mag)
	if len(mag) == 0 {
		return Zero()
	}
	return BigInt{neg: neg, mag: mag}
}

// digits returns the trimmed magnitude with zero as nil, the form the
// kernels in digits.go operate on.
func (z BigInt) digits() []byte { return trimDigits(z.mag) }

// IsZero reports whether the value is zero.
func (z BigInt) IsZero() bool { return len(z.digits()) == 0 }

// Sign returns -1 for negative values, 0 for zero, and 1 for positive values.
func (z BigInt) Sign() int {
	if z.IsZero() {
		return 0
	}
	if z.neg {
		return -1
	}
	return 1
}

// Neg returns the negated value. Zero stays non-negative zero.
func (z BigInt) Neg() BigInt {
	if z.IsZero() {
		return Zero()
	}
	return BigInt{neg: !z.neg, mag: z.digits()}
}

// Abs returns the absolute value.
func (z BigInt) Abs() BigInt {
	if z.IsZero() {
		return Zero()
	}
	return BigInt{mag: z.digits()}
}

// Add returns x + y.
//
// Matching signs add magnitudes and keep the common sign. Differing signs
// subtract the smaller magnitude from the larger; the result takes the sign
// of the operand with the larger magnitude.
func (x BigInt) Add(y BigInt) BigInt {
	xm := x.digits()
	ym := y.digits()

	if x.neg == y.neg {
		return canonical(x.neg, addDigits(xm, ym))
	}
	switch cmpDigits(xm, ym) {
	case 0:
		return Zero()
	case 1:
		return canonical(x.neg, subDigits(xm, ym))
	default:
		return canonical(y.neg, subDigits(ym, xm))
	}
}

// Sub returns x - y.
func (x BigInt) Sub(y BigInt) BigInt {
	return x.Add(y.Neg())
}

// Mul returns x * y. The result is negative iff exactly one operand is
// negative and neither is zero.
func (x BigInt) Mul(y BigInt) BigInt {
	return canonical(x.neg != y.neg, mulDigits(x.digits(), y.digits()))
}

// Cmp compares two values and returns -1, 0, or 1.
//
// A negative value is smaller than any non-negative one; two negatives order
// in reverse of their magnitudes.
func (x BigInt) Cmp(y BigInt) int {
	xm := x.digits()
	ym := y.digits()
	switch {
	case len(xm) == 0 && len(ym) == 0:
		return 0
	case x.neg != y.neg:
		if x.neg {
			return -1
		}
		return 1
	default:
		cmp := cmpDigits(xm, ym)
		if x.neg {
			return -cmp
		}
		return cmp
	}
}

// Equal reports whether x and y represent the same integer.
func (x BigInt) Equal(y BigInt) bool { return x.Cmp(y) == 0 }

// Inc adds 1 to the receiver in place and returns the new value.
func (z *BigInt) Inc() BigInt {
	*z = z.Add(one)
	return *z
}

// Dec subtracts 1 from the receiver in place and returns the new value.
func (z *BigInt) Dec() BigInt {
	*z = z.Sub(one)
	return *z
}

// PostInc adds 1 to the receiver in place and returns the value it held
// before the increment.
func (z *BigInt) PostInc() BigInt {
	old := *z
	z.Inc()
	return old
}

// PostDec subtracts 1 from the receiver in place and returns the value it
// held before the decrement.
func (z *BigInt) PostDec() BigInt {
	old := *z
	z.Dec()
	return old
}

// Int64 converts the value back to an int64 if it fits.
func (z BigInt) Int64() (int64, bool) {
	m := z.digits()
	var u uint64
	for i := len(m) - 1; i >= 0; i-- {
		if u > (math.MaxUint64-9)/10 {
			return 0, false
		}
		u = u*10 + uint64(m[i])
	}
	if z.neg && len(m) > 0 {
		// Negative: the magnitude may reach 2^63.
		if u > 1<<63 {
			return 0, false
		}
		if u == 1<<63 {
			return math.MinInt64, true
		}
		return -int64(u), true //nolint:gosec // G115: u < 2^63 here.
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true //nolint:gosec // G115: bounds checked above.
}
