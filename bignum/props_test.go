package bignum

import "testing"

// Algebraic laws checked over a fixed pool of values spanning signs,
// magnitudes and zero.
var pool = []string{
	"0",
	"1",
	"-1",
	"9",
	"-10",
	"907",
	"-100000000000000000000",
	"13206478842272655311",
	"80250025245863872589",
	"-48084066885301367633",
	"-30477676548372141302",
	"333666999222777555000888111",
}

func TestAddCommutative(t *testing.T) {
	for _, as := range pool {
		for _, bs := range pool {
			a, b := MustParse(as), MustParse(bs)
			if !a.Add(b).Equal(b.Add(a)) {
				t.Errorf("%s + %s != %s + %s", as, bs, bs, as)
			}
		}
	}
}

func TestAddAssociative(t *testing.T) {
	for _, as := range pool {
		for _, bs := range pool {
			for _, cs := range pool {
				a, b, c := MustParse(as), MustParse(bs), MustParse(cs)
				l := a.Add(b).Add(c)
				r := a.Add(b.Add(c))
				if !l.Equal(r) {
					t.Errorf("(%s + %s) + %s = %s, %s + (%s + %s) = %s", as, bs, cs, l, as, bs, cs, r)
				}
			}
		}
	}
}

func TestAdditiveInverse(t *testing.T) {
	for _, as := range pool {
		a := MustParse(as)
		if sum := a.Add(a.Neg()); !sum.IsZero() {
			t.Errorf("%s + (-%s) = %s", as, as, sum)
		}
	}
	if !Zero().Neg().Equal(Zero()) {
		t.Errorf("-0 != 0")
	}
}

func TestMulSignRule(t *testing.T) {
	for _, as := range pool {
		for _, bs := range pool {
			a, b := MustParse(as), MustParse(bs)
			p := a.Mul(b)
			if a.IsZero() || b.IsZero() {
				if p.Sign() != 0 {
					t.Errorf("%s * %s = %s, want 0", as, bs, p)
				}
				continue
			}
			wantNeg := (a.Sign() < 0) != (b.Sign() < 0)
			if (p.Sign() < 0) != wantNeg {
				t.Errorf("sign(%s * %s) = %d", as, bs, p.Sign())
			}
		}
	}
}

func TestMulCommutative(t *testing.T) {
	for _, as := range pool {
		for _, bs := range pool {
			a, b := MustParse(as), MustParse(bs)
			if !a.Mul(b).Equal(b.Mul(a)) {
				t.Errorf("%s * %s != %s * %s", as, bs, bs, as)
			}
		}
	}
}

func TestOrderConsistency(t *testing.T) {
	// a < b iff b - a > 0.
	for _, as := range pool {
		for _, bs := range pool {
			a, b := MustParse(as), MustParse(bs)
			lt := a.Cmp(b) < 0
			diffPos := b.Sub(a).Sign() > 0
			if lt != diffPos {
				t.Errorf("%s < %s is %v but (%s - %s).Sign() > 0 is %v", as, bs, lt, bs, as, diffPos)
			}
		}
	}
}

func TestCanonicalRoundTrip(t *testing.T) {
	for _, as := range pool {
		a := MustParse(as)
		back, err := Parse(a.String())
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", a.String(), err)
		}
		if !back.Equal(a) {
			t.Errorf("round trip of %s produced %s", as, back)
		}
	}
}

func TestCanonicalizationIdempotent(t *testing.T) {
	for _, as := range pool {
		a := MustParse(as)
		again := canonical(a.neg, a.mag)
		if !again.Equal(a) || again.String() != a.String() {
			t.Errorf("re-canonicalizing %s changed it to %s", a, again)
		}
	}
}

func TestOperandsUntouched(t *testing.T) {
	a := MustParse("13206478842272655311")
	b := MustParse("-30477676548372141302")
	_ = a.Add(b)
	_ = a.Sub(b)
	_ = a.Mul(b)
	_ = a.Neg()
	if a.String() != "13206478842272655311" {
		t.Errorf("left operand mutated: %s", a)
	}
	if b.String() != "-30477676548372141302" {
		t.Errorf("right operand mutated: %s", b)
	}
}
