package bigint

// Shifting operates on signed amounts: a negative amount inverts the
// direction, so x.Lsh(-n) behaves as x.Rsh(n) and vice versa. Every shift
// decomposes into a whole-group move and a 0-31 bit sub-shift carried across
// adjacent groups.

// Lsh returns x << n (x >> -n when n is negative).
func (x Int) Lsh(n int64) Int {
	if n < 0 {
		return x.rsh(absAmount(n))
	}
	return x.lsh(uint64(n))
}

// Rsh returns x >> n (x << -n when n is negative).
// For negative x the shift is arithmetic: vacated high bits are filled with
// ones, so the result floors toward negative infinity and a large enough
// shift converges to -1, never to 0.
func (x Int) Rsh(n int64) Int {
	if n < 0 {
		return x.lsh(absAmount(n))
	}
	return x.rsh(uint64(n))
}

// absAmount returns the magnitude of a negative shift amount without
// overflowing on the smallest int64.
func absAmount(n int64) uint64 {
	return -uint64(n)
}

func (x Int) lsh(amount uint64) Int {
	if amount == 0 || x.IsZero() {
		return makeInt(x.neg, x.Groups())
	}
	groupShift := int(amount / groupBits)
	bitShift := uint(amount % groupBits)

	m := x.mag()
	res := make([]uint32, groupShift+len(m), groupShift+len(m)+1)
	copy(res[groupShift:], m)

	if bitShift > 0 {
		var carried uint32
		for i := groupShift; i < len(res); i++ {
			v := res[i]
			res[i] = v<<bitShift | carried
			carried = v >> (groupBits - bitShift)
		}
		// Bits overflowing the most-significant group need a new home.
		if carried > 0 {
			res = append(res, carried)
		}
	}
	return makeInt(x.neg, res)
}

func (x Int) rsh(amount uint64) Int {
	if amount == 0 || x.IsZero() {
		return makeInt(x.neg, x.Groups())
	}
	groupShift := uint64(amount / groupBits)
	bitShift := uint(amount % groupBits)

	if x.neg {
		return x.rshNegative(groupShift, bitShift)
	}

	m := x.mag()
	if groupShift >= uint64(len(m)) {
		return makeInt(false, []uint32{0})
	}
	res := make([]uint32, len(m)-int(groupShift))
	copy(res, m[groupShift:])
	shiftGroupsRight(res, bitShift, fillerPositive)
	return makeInt(false, res)
}

// rshNegative shifts a negative value right by encoding the magnitude in
// two's-complement form, shifting with an all-ones fill (sign extension),
// and decoding back to sign magnitude. A whole-group shift that consumes
// every group leaves only the sign extension, which is exactly -1.
func (x Int) rshNegative(groupShift uint64, bitShift uint) Int {
	m := x.mag()
	if groupShift >= uint64(len(m)) {
		return Int{neg: true, groups: []uint32{1}}
	}

	tc := make([]uint32, len(m))
	copy(tc, m)
	negateGroups(tc)

	res := tc[groupShift:]
	shiftGroupsRight(res, bitShift, fillerNegative)
	res = shrink(res, fillerNegative)

	// Back to sign-magnitude form. The sign extension guarantees the value
	// is at most -1, but the window itself can still read zero: when the
	// floored quotient is exactly -2^(32k) the k-group window holds all
	// zeros and negateGroups wraps back to zero. The magnitude then lives
	// one group past the window.
	mag := make([]uint32, len(res), len(res)+1)
	copy(mag, res)
	negateGroups(mag)
	if allZeroGroups(mag) {
		mag = append(mag, 1)
	}
	return Int{neg: true, groups: shrink(mag, fillerPositive)}
}

// allZeroGroups reports whether every group is zero.
func allZeroGroups(groups []uint32) bool {
	for _, g := range groups {
		if g != 0 {
			return false
		}
	}
	return true
}

// shiftGroupsRight shifts each group right by bits (0-31), carrying the
// dropped low bits of each group into the top of the next less-significant
// group. The most-significant group receives its incoming bits from filler.
func shiftGroupsRight(groups []uint32, bits uint, filler uint32) {
	if bits == 0 {
		return
	}
	carried := filler << (groupBits - bits)
	for i := len(groups) - 1; i >= 0; i-- {
		v := groups[i]
		groups[i] = v>>bits | carried
		carried = v << (groupBits - bits)
	}
}
