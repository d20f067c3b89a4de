package bigint

// combineOp selects the group-wise operation performed by combine.
// The four sign combinations of addition and subtraction reduce to these two
// kernels: a direct add, or an add of the bitwise complement with a carry-in
// of one (a two's-complement subtraction).
type combineOp int

const (
	opAdd           combineOp = iota // a + b
	opComplementAdd                  // a + ^b + 1, i.e. a - b mod 2^(32n)
)

// combine propagates a single carry across max(len(a), len(b)) groups,
// extending the shorter operand with its filler value: 0 for a plain add,
// and all-ones (the complement of 0) when b is complemented.
// It returns the combined groups and the final carry-out.
func combine(a, b []uint32, op combineOp) ([]uint32, uint32) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	res := make([]uint32, n)
	var carry uint64
	if op == opComplementAdd {
		carry = 1
	}
	for i := 0; i < n; i++ {
		var av, bv uint32
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if op == opComplementAdd {
			bv = ^bv
		}
		t := uint64(av) + uint64(bv) + carry
		res[i] = uint32(t & groupMask)
		carry = t >> groupBits
	}
	return res, uint32(carry)
}

// addMag returns |a| + |b|.
func addMag(a, b []uint32) []uint32 {
	res, carry := combine(a, b, opAdd)
	if carry != 0 {
		res = append(res, carry)
	}
	return res
}

// subMag returns ||a| - |b|| and whether |a| < |b|.
// A carry-out of 1 from the complement add means a >= b and the groups
// already hold the difference; a carry-out of 0 means the difference wrapped
// and must be complemented back into magnitude form.
func subMag(a, b []uint32) ([]uint32, bool) {
	res, carry := combine(a, b, opComplementAdd)
	if carry == 0 {
		negateGroups(res)
		return res, true
	}
	return res, false
}

// negateGroups replaces groups with their two's complement in place.
func negateGroups(groups []uint32) {
	var carry uint64 = 1
	for i := range groups {
		t := uint64(^groups[i]) + carry
		groups[i] = uint32(t & groupMask)
		carry = t >> groupBits
	}
}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	xm, ym := x.mag(), y.mag()
	if x.neg == y.neg {
		return makeInt(x.neg, addMag(xm, ym))
	}
	// Differing signs: subtract the negative operand's magnitude from the
	// positive one's. A wrapped difference flips the result sign.
	if x.neg {
		xm, ym = ym, xm
	}
	mag, wrapped := subMag(xm, ym)
	return makeInt(wrapped, mag)
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Neg returns -x. The negation of zero is zero.
func (x Int) Neg() Int {
	if x.IsZero() {
		return makeInt(false, []uint32{0})
	}
	m := x.mag()
	groups := make([]uint32, len(m))
	copy(groups, m)
	return Int{neg: !x.neg, groups: groups}
}

// Abs returns the absolute value of x.
func (x Int) Abs() Int {
	if x.neg {
		return x.Neg()
	}
	return x
}

// Mul returns x * y using schoolbook long multiplication over the unsigned
// magnitudes. Each partial product a[j]*b[i] is accumulated at offset i+j
// through a 64-bit intermediate so no step can overflow. The result sign is
// the XOR of the operand signs; a zero product is always positive.
func (x Int) Mul(y Int) Int {
	xm, ym := x.mag(), y.mag()
	res := make([]uint32, len(xm)+len(ym))
	for i, bv := range ym {
		if bv == 0 {
			continue
		}
		var carry uint64
		for j, av := range xm {
			t := uint64(av)*uint64(bv) + uint64(res[i+j]) + carry
			res[i+j] = uint32(t & groupMask)
			carry = t >> groupBits
		}
		res[i+len(xm)] = uint32(carry)
	}
	return makeInt(x.neg != y.neg, res)
}
