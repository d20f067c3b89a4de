package bigint

const (
	// groupBits is the width of a single magnitude group.
	groupBits = 32
	// groupMask isolates the low group from a 64-bit intermediate.
	groupMask = 1<<groupBits - 1
	// fillerPositive extends a non-negative magnitude past its last group.
	fillerPositive = uint32(0)
	// fillerNegative extends a two's-complement encoded negative value past
	// its last group during carry propagation and shifting.
	fillerNegative = ^uint32(0)
)

// Int is an arbitrary-precision signed integer.
// The zero value is the numeric value 0 and is ready to use.
//
// The represented value is (neg ? -1 : 1) * Σ groups[i] * 2^(32*i).
// Invariants maintained by every constructor and operation:
//
//   - groups has no redundant most-significant zero group, and always holds
//     at least one group (zero is the single group 0);
//   - a zero magnitude always carries a positive sign.
type Int struct {
	neg    bool
	groups []uint32
}

// New returns an Int with the value of v.
func New(v int64) Int {
	neg := v < 0
	var mag uint64
	if neg {
		// Negating math.MinInt64 overflows int64; go through uint64.
		mag = -uint64(v)
	} else {
		mag = uint64(v)
	}
	return Int{neg: neg, groups: groupsFromUint64(mag)}
}

// NewUint64 returns an Int with the value of v.
func NewUint64(v uint64) Int {
	return Int{groups: groupsFromUint64(v)}
}

// groupsFromUint64 converts a native magnitude into base-2^32 groups by
// repeatedly extracting the low 32 bits. Zero yields a single 0 group.
func groupsFromUint64(v uint64) []uint32 {
	if v == 0 {
		return []uint32{0}
	}
	groups := make([]uint32, 0, 2)
	for v > 0 {
		groups = append(groups, uint32(v&groupMask))
		v >>= groupBits
	}
	return groups
}

// mag returns the group sequence, mapping the zero value's nil slice to the
// canonical single-zero-group form. Callers must not mutate the result.
func (x Int) mag() []uint32 {
	if len(x.groups) == 0 {
		return []uint32{0}
	}
	return x.groups
}

// makeInt assembles a canonical Int from a sign and a raw magnitude,
// shrinking redundant leading groups and normalizing the sign of zero.
// It takes ownership of groups.
func makeInt(neg bool, groups []uint32) Int {
	groups = shrink(groups, fillerPositive)
	if len(groups) == 1 && groups[0] == 0 {
		neg = false
	}
	return Int{neg: neg, groups: groups}
}

// shrink drops most-significant groups equal to filler while more than one
// group remains. It is the only place the group count decreases.
func shrink(groups []uint32, filler uint32) []uint32 {
	n := len(groups)
	for n > 1 && groups[n-1] == filler {
		n--
	}
	return groups[:n]
}

// Sign returns -1 if x < 0, 0 if x == 0, and +1 if x > 0.
func (x Int) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x has the value 0.
func (x Int) IsZero() bool {
	m := x.mag()
	return len(m) == 1 && m[0] == 0
}

// BitLen returns the length of the magnitude in bits; the bit length of 0 is 0.
func (x Int) BitLen() int {
	m := x.mag()
	top := m[len(m)-1]
	if top == 0 {
		return 0
	}
	n := 0
	for top > 0 {
		top >>= 1
		n++
	}
	return (len(m)-1)*groupBits + n
}

// IsInt64 reports whether x can be represented as an int64.
func (x Int) IsInt64() bool {
	m := x.mag()
	if len(m) > 2 {
		return false
	}
	v := uint64(m[0])
	if len(m) == 2 {
		v |= uint64(m[1]) << groupBits
	}
	if x.neg {
		return v <= 1<<63
	}
	return v < 1<<63
}

// Int64 returns the int64 value of x.
// The result is undefined if x does not fit; use IsInt64 first.
func (x Int) Int64() int64 {
	m := x.mag()
	v := uint64(m[0])
	if len(m) >= 2 {
		v |= uint64(m[1]) << groupBits
	}
	if x.neg {
		return -int64(v)
	}
	return int64(v)
}

// Groups returns a copy of the magnitude groups, least significant first.
// It is intended for display layers that need the raw base-2^32 form
// (for example hexadecimal rendering); the engine itself only converts
// to and from decimal.
func (x Int) Groups() []uint32 {
	m := x.mag()
	out := make([]uint32, len(m))
	copy(out, m)
	return out
}
