package bigint

import (
	"testing"
)

func TestLsh(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int64
		want string
	}{
		{"by zero", "42", 0, "42"},
		{"small", "1", 4, "16"},
		{"across group boundary", "1", 32, "4294967296"},
		{"bits and groups", "3", 33, "25769803776"},
		{"power of two across groups", "1", 100, "1267650600228229401496703205376"},
		{"negative value", "-1", 8, "-256"},
		{"zero stays zero", "0", 1000, "0"},
		{"negative amount is right shift", "256", -4, "16"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustParse(tt.in).Lsh(tt.n)
			if got.String() != tt.want {
				t.Errorf("%s << %d = %s, want %s", tt.in, tt.n, got, tt.want)
			}
		})
	}
}

func TestRsh(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int64
		want string
	}{
		{"by zero", "42", 0, "42"},
		{"small", "16", 4, "1"},
		{"drops low bits", "17", 4, "1"},
		{"across group boundary", "4294967296", 32, "1"},
		{"to zero", "5", 3, "0"},
		{"far past length", "123456781234567812345678", 10_000, "0"},
		{"negative floors", "-1", 1, "-1"},
		{"negative floors odd", "-5", 1, "-3"},
		{"negative exact", "-4", 1, "-2"},
		{"negative to minus one", "-2", 999_999_999, "-1"},
		{"negative across group", "-4294967296", 32, "-1"},
		{"negative large floors", "-123456781234567812345678", 64, "-6693"},
		{"negative quotient at group boundary", "-18446744073709551615", 32, "-4294967296"},
		{"negative quotient near group boundary", "-18446744073709551611", 32, "-4294967296"},
		{"negative quotient at boundary with bit shift", "-8589934591", 1, "-4294967296"},
		{"negative amount is left shift", "16", -4, "256"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustParse(tt.in).Rsh(tt.n)
			if got.String() != tt.want {
				t.Errorf("%s >> %d = %s, want %s", tt.in, tt.n, got, tt.want)
			}
		})
	}
}

func TestShiftInverse(t *testing.T) {
	values := []string{"1", "42", "123456781234567812345678", "-7", "-123456781234567812345678"}
	for _, s := range values {
		x := MustParse(s)
		for _, n := range []int64{0, 1, 31, 32, 33, 64, 100} {
			if got := x.Lsh(n).Rsh(n); !got.Equal(x) {
				t.Errorf("(%s << %d) >> %d = %s, want %s", s, n, n, got, s)
			}
		}
	}
}

func TestShiftComposition(t *testing.T) {
	x := MustParse("123456781234567812345678")
	split := x.Lsh(2).Lsh(3).Lsh(1).Lsh(1)
	direct := x.Lsh(7)
	if !split.Equal(direct) {
		t.Errorf("x<<2<<3<<1<<1 = %s, want x<<7 = %s", split, direct)
	}

	down := x.Rsh(5).Rsh(2)
	if !down.Equal(x.Rsh(7)) {
		t.Errorf("x>>5>>2 = %s, want x>>7 = %s", down, x.Rsh(7))
	}
}

func TestNegativeShiftSymmetry(t *testing.T) {
	values := []string{"0", "1", "-1", "96", "-96", "123456781234567812345678"}
	for _, s := range values {
		x := MustParse(s)
		for _, n := range []int64{1, 5, 33, 64} {
			if got, want := x.Lsh(-n), x.Rsh(n); !got.Equal(want) {
				t.Errorf("%s << -%d = %s, want %s", s, n, got, want)
			}
			if got, want := x.Rsh(-n), x.Lsh(n); !got.Equal(want) {
				t.Errorf("%s >> -%d = %s, want %s", s, n, got, want)
			}
		}
	}
}

func TestRshNegativePowerOfGroupQuotient(t *testing.T) {
	// Quotients landing exactly on -2^(32k) leave an all-zero
	// two's-complement window; the magnitude must carry into a new group
	// instead of collapsing to a signed zero.
	cases := []struct {
		in   string
		n    int64
		want string
	}{
		{"-18446744073709551615", 32, "-4294967296"}, // -(2^64-1) >> 32
		{"-18446744073709551615", 64, "-1"},
		{"-79228162514264337593543950335", 64, "-4294967296"}, // -(2^96-1) >> 64
	}
	for _, tt := range cases {
		got := MustParse(tt.in).Rsh(tt.n)
		if got.String() != tt.want {
			t.Errorf("%s >> %d = %s, want %s", tt.in, tt.n, got, tt.want)
		}
		if got.Sign() != -1 {
			t.Errorf("%s >> %d: sign = %d, want -1", tt.in, tt.n, got.Sign())
		}
	}
}

func TestExtremeRightShiftConvergesToMinusOne(t *testing.T) {
	minusOne := New(-1)
	values := []string{"-1", "-2", "-42", "-123456781234567812345678"}
	for _, s := range values {
		if got := MustParse(s).Rsh(999_999_999); !got.Equal(minusOne) {
			t.Errorf("%s >> 999999999 = %s, want -1", s, got)
		}
	}
	// Positive values collapse to zero instead.
	if got := MustParse("123456781234567812345678").Rsh(999_999_999); got.Sign() != 0 {
		t.Errorf("positive extreme right shift = %s, want 0", got)
	}
}
