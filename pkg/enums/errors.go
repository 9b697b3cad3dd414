package enums

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidValue matches any InvalidValueError via errors.Is.
	ErrInvalidValue = errors.New("enums: not a valid member")
	// ErrInputTooLong matches any InputTooLongError via errors.Is.
	ErrInputTooLong = errors.New("enums: input string too long")
	// ErrBrokenAlias matches any BrokenAliasError via errors.Is.
	ErrBrokenAlias = errors.New("enums: alias target is not a valid member value")
	// ErrMissingSentinel matches any MissingSentinelError via errors.Is.
	ErrMissingSentinel = errors.New("enums: optional enum type must declare a NONE member")
	// ErrDuplicateMember matches any DuplicateMemberError via errors.Is.
	ErrDuplicateMember = errors.New("enums: duplicate member")

	// ErrEmptyTypeName is returned when an enum type is defined without a name.
	ErrEmptyTypeName = errors.New("enums: enum type name cannot be empty")
	// ErrNoMembers is returned when an enum type is defined without members.
	ErrNoMembers = errors.New("enums: enum type must declare at least one member")
	// ErrOptionalIntEnum is returned when WithSentinel is applied to an
	// integer enum type; absence handling is a string-enum feature.
	ErrOptionalIntEnum = errors.New("enums: optional mode requires a string enum type")
	// ErrUnboundValue is returned when a Value is decoded without an enum
	// type attached.
	ErrUnboundValue = errors.New("enums: value is not bound to an enum type")
)

// InvalidValueError reports input that matched no alias, cache entry or
// numeric member. The message shape is part of the public contract; callers
// surface it to end users as-is.
type InvalidValueError struct {
	Input    string
	TypeName string
	Choices  []string
}

func (e *InvalidValueError) Error() string {
	quoted := make([]string, len(e.Choices))
	for i, c := range e.Choices {
		quoted[i] = "'" + c + "'"
	}
	return fmt.Sprintf("'%s' is not a valid %s. Please use one of: %s",
		e.Input, e.TypeName, strings.Join(quoted, ", "))
}

func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }

// InputTooLongError reports input rejected by the length guard before any
// matching work. Distinct from InvalidValueError so callers can treat it as
// an abuse signal rather than a normal miss.
type InputTooLongError struct {
	TypeName string
	Length   int
}

func (e *InputTooLongError) Error() string {
	return fmt.Sprintf("input string too long for %s: %d characters (limit %d)",
		e.TypeName, e.Length, MaxInputLength)
}

func (e *InputTooLongError) Unwrap() error { return ErrInputTooLong }

// BrokenAliasError reports a declared alias whose target value corresponds
// to no member, a configuration defect surfaced at first use of the alias.
type BrokenAliasError struct {
	TypeName string
	Alias    string
	Target   string
}

func (e *BrokenAliasError) Error() string {
	return fmt.Sprintf("alias target '%s' is not a valid member value for %s",
		e.Target, e.TypeName)
}

func (e *BrokenAliasError) Unwrap() error { return ErrBrokenAlias }

// MissingSentinelError reports an optional enum type defined without its
// required absence member. This is a definition-time error; the type is
// never constructed.
type MissingSentinelError struct {
	TypeName string
}

func (e *MissingSentinelError) Error() string {
	return fmt.Sprintf("enum type %s must declare a %s member to be optional, e.g. {Name: %q, Value: \"none\"}",
		e.TypeName, SentinelName, SentinelName)
}

func (e *MissingSentinelError) Unwrap() error { return ErrMissingSentinel }

// DuplicateMemberError reports a member whose name or value collides with an
// earlier declaration.
type DuplicateMemberError struct {
	TypeName string
	Name     string
	Value    any
}

func (e *DuplicateMemberError) Error() string {
	return fmt.Sprintf("duplicate member '%s' (value '%v') in %s", e.Name, e.Value, e.TypeName)
}

func (e *DuplicateMemberError) Unwrap() error { return ErrDuplicateMember }

// IsInvalidValueError reports whether err carries an InvalidValueError.
func IsInvalidValueError(err error) bool {
	var e *InvalidValueError
	return errors.As(err, &e)
}

// IsInputTooLongError reports whether err carries an InputTooLongError.
func IsInputTooLongError(err error) bool {
	var e *InputTooLongError
	return errors.As(err, &e)
}
