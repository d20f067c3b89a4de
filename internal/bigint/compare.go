package bigint

// Equal reports whether x and y represent the same value.
// Canonical form makes this a direct comparison: signs must match, then
// group counts, then every group.
func (x Int) Equal(y Int) bool {
	if x.neg != y.neg {
		return false
	}
	xm, ym := x.mag(), y.mag()
	if len(xm) != len(ym) {
		return false
	}
	for i := range xm {
		if xm[i] != ym[i] {
			return false
		}
	}
	return true
}

// Cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Int) Cmp(y Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := cmpMag(x.mag(), y.mag())
	if x.neg {
		// Both negative: the larger magnitude is the smaller value.
		return -c
	}
	return c
}

// cmpMag compares two canonical magnitudes. A shorter sequence is a smaller
// magnitude; equal-length sequences compare group-wise from the most
// significant end.
func cmpMag(a, b []uint32) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Less reports whether x < y.
func (x Int) Less(y Int) bool { return x.Cmp(y) < 0 }

// LessOrEqual reports whether x <= y.
func (x Int) LessOrEqual(y Int) bool { return x.Cmp(y) <= 0 }

// Greater reports whether x > y.
func (x Int) Greater(y Int) bool { return x.Cmp(y) > 0 }

// GreaterOrEqual reports whether x >= y.
func (x Int) GreaterOrEqual(y Int) bool { return x.Cmp(y) >= 0 }
