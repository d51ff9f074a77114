package bignum

// Magnitude kernels. A magnitude is a base-10 digit slice stored least
// significant digit first. The kernels accept denormalized input but always
// return trimmed output, with zero represented as nil/empty.

func trimDigits(mag []byte) []byte {
	for len(mag) > 0 && mag[len(mag)-1] == 0 {
		mag = mag[:len(mag)-1]
	}
	if len(mag) == 0 {
		return nil
	}
	return mag
}

// cmpDigits orders two magnitudes ignoring sign: longer wins, equal lengths
// are decided by the first differing digit from the most significant end.
func cmpDigits(a, b []byte) int {
	a = trimDigits(a)
	b = trimDigits(b)
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// addDigits returns the positional sum of two magnitudes with carry
// propagation.
func addDigits(a, b []byte) []byte {
	a = trimDigits(a)
	b = trimDigits(b)
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n == 0 {
		return nil
	}

	out := make([]byte, 0, n+1)
	var carry byte
	for i := 0; i < n || carry != 0; i++ {
		sum := carry
		if i < len(a) {
			sum += a[i]
		}
		if i < len(b) {
			sum += b[i]
		}
		out = append(out, sum%10)
		carry = sum / 10
	}
	return trimDigits(out)
}

// subDigits returns a minus b with borrow propagation.
//
// Precondition: a >= b per cmpDigits. Callers order operands by comparison
// first; the helper does not check.
func subDigits(a, b []byte) []byte {
	a = trimDigits(a)
	b = trimDigits(b)
	if len(b) == 0 {
		return a
	}

	out := make([]byte, 0, len(a))
	var borrow int8
	for i := range a {
		d := int8(a[i]) - borrow
		if i < len(b) {
			d -= int8(b[i])
		}
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		out = append(out, byte(d))
	}
	return trimDigits(out)
}

// mulDigits returns the schoolbook product of two magnitudes: every digit
// pair (i, j) accumulates into position i+j of a len(a)+len(b) buffer, with
// the carry riding along the inner loop past len(b) while it remains.
func mulDigits(a, b []byte) []byte {
	a = trimDigits(a)
	b = trimDigits(b)
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	out := make([]byte, len(a)+len(b))
	for i := range a {
		var carry byte
		for j := 0; j < len(b) || carry != 0; j++ {
			var d byte
			if j < len(b) {
				d = b[j]
			}
			cur := out[i+j] + a[i]*d + carry
			out[i+j] = cur % 10
			carry = cur / 10
		}
	}
	return trimDigits(out)
}
