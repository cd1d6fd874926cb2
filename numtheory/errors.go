package numtheory

import "fmt"

// Kind enumerates the numeric-utility failure modes from the engine's
// error taxonomy (spec §7). Kinds are mutually exclusive and never
// recoverable by retrying the same inputs.
type Kind uint8

const (
	// NoInverse: gcd(a, m) != 1, so a has no inverse mod m.
	NoInverse Kind = iota + 1
	// NoSqrt: no r exists with r^2 = a (mod m).
	NoSqrt
	// NoGenerator: the search for a generator of (Z/qZ)* exhausted [2, q)
	// without success. Should not occur for a valid prime q.
	NoGenerator
)

func (k Kind) String() string {
	switch k {
	case NoInverse:
		return "NoInverse"
	case NoSqrt:
		return "NoSqrt"
	case NoGenerator:
		return "NoGenerator"
	default:
		return "Unknown"
	}
}

// Error wraps a Kind with the operands that produced it.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("numtheory: %s: %s", e.Kind, e.Msg)
}

func errNoInverse(a, m fmt.Stringer) error {
	return &Error{Kind: NoInverse, Msg: fmt.Sprintf("gcd(%s, %s) != 1", a, m)}
}

func errNoSqrt(a, m fmt.Stringer) error {
	return &Error{Kind: NoSqrt, Msg: fmt.Sprintf("%s is not a quadratic residue mod %s", a, m)}
}

func errNoGenerator(q fmt.Stringer) error {
	return &Error{Kind: NoGenerator, Msg: fmt.Sprintf("search for a generator of (Z/%sZ)* exhausted [2, q)", q)}
}
