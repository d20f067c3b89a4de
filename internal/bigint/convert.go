package bigint

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// decGroupDigits is the number of decimal digits carried per decimal
	// group. 10^9 is the largest power of ten below 2^32, so a decimal
	// group always fits a single binary group.
	decGroupDigits = 9
	// decGroupBase is 10^decGroupDigits.
	decGroupBase = 1_000_000_000
)

// ErrSyntax is the sentinel wrapped by every parse failure.
var ErrSyntax = errors.New("invalid decimal integer")

// SyntaxError describes a string rejected by Parse.
type SyntaxError struct {
	// Input is the rejected text.
	Input string
}

// Error returns the error message.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("bigint: parsing %q: %s", e.Input, ErrSyntax)
}

// Unwrap returns ErrSyntax so callers can match with errors.Is.
func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Parse converts decimal text to an Int.
//
// The accepted grammar is optional surrounding whitespace, an optional '+'
// or '-' (whitespace may also separate the sign from the digits), and one or
// more ASCII decimal digits. Anything else yields a *SyntaxError wrapping
// [ErrSyntax]. "-0" parses to canonical zero with a positive sign.
func Parse(s string) (Int, error) {
	digits, neg, ok := scanDecimal(s)
	if !ok {
		return Int{}, &SyntaxError{Input: s}
	}
	return makeInt(neg, groupsFromDecimal(digits)), nil
}

// scanDecimal validates the text grammar and returns the digit run and sign.
func scanDecimal(s string) (digits string, neg bool, ok bool) {
	i, n := 0, len(s)
	for i < n && isSpace(s[i]) {
		i++
	}
	if i < n && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
		for i < n && isSpace(s[i]) {
			i++
		}
	}
	start := i
	for i < n && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return "", false, false
	}
	digits = s[start:i]
	for i < n && isSpace(s[i]) {
		i++
	}
	if i != n {
		return "", false, false
	}
	return digits, neg, true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// groupsFromDecimal folds a validated digit run into binary groups.
//
// The text is split into 9-digit chunks from the least-significant end (the
// leading chunk may be shorter) and each chunk is accumulated most
// significant first by a multiply-by-10^9-and-add pass over the groups built
// so far. Quadratic in the group count, which is acceptable for this engine.
func groupsFromDecimal(digits string) []uint32 {
	groups := []uint32{0}
	i := 0
	if head := len(digits) % decGroupDigits; head > 0 {
		groups = foldDecimalChunk(groups, digits[:head])
		i = head
	}
	for ; i < len(digits); i += decGroupDigits {
		groups = foldDecimalChunk(groups, digits[i:i+decGroupDigits])
	}
	return groups
}

// foldDecimalChunk computes groups = groups*10^9 + chunk with full carry
// propagation, growing the sequence as carries spill past the top group.
func foldDecimalChunk(groups []uint32, chunk string) []uint32 {
	// The chunk is at most 9 validated digits, so ParseUint cannot fail.
	v, _ := strconv.ParseUint(chunk, 10, 64)
	carry := v
	for i := range groups {
		t := uint64(groups[i])*decGroupBase + carry
		groups[i] = uint32(t & groupMask)
		carry = t >> groupBits
	}
	for carry > 0 {
		groups = append(groups, uint32(carry&groupMask))
		carry >>= groupBits
	}
	return groups
}

// decimalGroups re-expresses a binary magnitude in base 10^9, least
// significant decimal group first. Each pass walks the groups from the most
// significant end, feeding the running remainder back in as the high half of
// a multiply-by-2^32, divide-and-mod-by-10^9 reduction. This is the exact
// dual of groupsFromDecimal and uses no floating point.
func decimalGroups(mag []uint32) []uint32 {
	cur := make([]uint32, len(mag))
	copy(cur, mag)

	var dec []uint32
	for !(len(cur) == 1 && cur[0] == 0) {
		var rem uint64
		for i := len(cur) - 1; i >= 0; i-- {
			v := rem<<groupBits | uint64(cur[i])
			cur[i] = uint32(v / decGroupBase)
			rem = v % decGroupBase
		}
		cur = shrink(cur, fillerPositive)
		dec = append(dec, uint32(rem))
	}
	if len(dec) == 0 {
		dec = []uint32{0}
	}
	return dec
}

// String returns the canonical decimal representation of x: a leading '-'
// for negative values and no leading zeros, except the single digit "0" for
// zero. The output always round-trips through Parse to an equal value.
func (x Int) String() string {
	return string(x.AppendText(nil))
}

// AppendText appends the decimal representation of x to b and returns the
// extended buffer. Only the very first emitted decimal group may omit
// leading zeros; every later group is zero-padded to 9 digits so the
// concatenation reproduces the exact value.
func (x Int) AppendText(b []byte) []byte {
	dec := decimalGroups(x.mag())
	if x.neg {
		b = append(b, '-')
	}
	last := len(dec) - 1
	b = strconv.AppendUint(b, uint64(dec[last]), 10)
	for i := last - 1; i >= 0; i-- {
		b = appendPadded(b, dec[i])
	}
	return b
}

// appendPadded appends v zero-padded to exactly decGroupDigits digits.
func appendPadded(b []byte, v uint32) []byte {
	var buf [decGroupDigits]byte
	for i := decGroupDigits - 1; i >= 0; i-- {
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return append(b, buf[:]...)
}

// Text returns the decimal representation of x, identical to String. The
// engine emits decimal only; other radixes are rendered by display layers
// from [Int.Groups].
func (x Int) Text() string {
	return string(x.AppendText(nil))
}

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() ([]byte, error) {
	return x.AppendText(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
