package bigint

// MustParse is like [Parse] but panics on malformed text.
// It simplifies package-level variables and test fixtures; production code
// parsing untrusted input should call Parse and handle the error.
func MustParse(s string) Int {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}
