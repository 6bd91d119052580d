// Package value defines the runtime value model produced by the
// interpreter: a closed variant of Nil, Bool, Number, and String.
//
// Grounded on the teacher's object.Object interface (object/object.go,
// object/nil.go in the source pack): a small interface implemented by a
// handful of concrete types, rather than a bare Go `any`/type-switch
// value representation. Trimmed to the four variants this language has;
// risor's List/Map/Function/Error-as-value/etc. all require statements,
// calls, or declarations, which are Non-goals here.
package value

import "strconv"

// Value is implemented by every runtime value the interpreter can
// produce.
type Value interface {
	// String returns the value's display text, per the printing rules in
	// spec.md §4.3. This is what `evaluate` writes to stdout.
	String() string

	// IsTruthy reports whether the value is truthy. Per spec.md §4.3 only
	// Nil and a false Bool are falsy.
	IsTruthy() bool

	// Equals implements the equality law from spec.md §4.3: values of
	// different runtime types are always unequal; same-type values compare
	// by value; Nil equals only Nil.
	Equals(other Value) bool
}

// Nil is the language's single absent value.
type Nil struct{}

func (Nil) String() string      { return "nil" }
func (Nil) IsTruthy() bool      { return false }
func (Nil) Equals(o Value) bool { _, ok := o.(Nil); return ok }

// NilValue is the shared Nil instance. Nil carries no state, so every
// evaluation step that needs one can reuse this value instead of
// allocating.
var NilValue Value = Nil{}

// Bool wraps a boolean.
type Bool bool

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Bool) IsTruthy() bool { return bool(b) }

func (b Bool) Equals(o Value) bool {
	other, ok := o.(Bool)
	return ok && b == other
}

// True and False are the two Bool instances, exposed so callers never need
// to spell out a conversion for the common cases.
var (
	True  Value = Bool(true)
	False Value = Bool(false)
)

// BoolOf returns True or False for the given Go bool.
func BoolOf(b bool) Value {
	if b {
		return True
	}
	return False
}

// Number wraps a 64-bit float, the language's only numeric type.
type Number float64

// String renders the value the way spec.md §4.3 requires: integral
// numbers print without a trailing ".0"; others use the shortest decimal
// representation that round trips. strconv.FormatFloat with 'f' and -1
// precision already produces exactly this (it omits the fractional part
// entirely when the value round-trips without one), so no separate
// integral-vs-fractional branch is needed here — contrast with
// token.FormatNumberLiteral, which always keeps the decimal point.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (n Number) IsTruthy() bool { return true }

func (n Number) Equals(o Value) bool {
	other, ok := o.(Number)
	return ok && n == other
}

// String wraps a string. Printing a String value emits its raw
// characters with no surrounding quotes, per spec.md §4.3.
type String string

func (s String) String() string { return string(s) }
func (s String) IsTruthy() bool { return true }

func (s String) Equals(o Value) bool {
	other, ok := o.(String)
	return ok && s == other
}
