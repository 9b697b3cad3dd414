package enums

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Integer covers the integer kinds an IntEnum can be defined over.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IntEnum is a closed set of integer-valued members resolvable from strings.
// Integers carry no separator ambiguity, so the lookup cache indexes member
// names only; numeric strings are matched against member values directly.
type IntEnum[V Integer] struct {
	typeName string
	members  []Member[V]
	byValue  map[V]Member[V]
	aliases  map[string]V

	nameOnce sync.Once
	byName   map[string]Member[V]
}

// NewInt constructs an integer enum type from members in declaration order.
// Member names and values must be unique. WithSentinel is a string-enum
// feature and fails here with ErrOptionalIntEnum.
func NewInt[V Integer](typeName string, members []Member[V], opts ...Option[V]) (*IntEnum[V], error) {
	cfg := newSettings[V]()
	for _, opt := range opts {
		opt(cfg)
	}

	if typeName == "" {
		return nil, ErrEmptyTypeName
	}
	if len(members) == 0 {
		return nil, ErrNoMembers
	}
	if cfg.optional {
		return nil, ErrOptionalIntEnum
	}

	e := &IntEnum[V]{
		typeName: typeName,
		members:  append([]Member[V](nil), members...),
		byValue:  make(map[V]Member[V], len(members)),
		aliases:  cfg.aliases,
	}

	seenNames := make(map[string]struct{}, len(members))
	for _, m := range e.members {
		if m.Name == "" {
			return nil, fmt.Errorf("enums: member of %s has an empty name", typeName)
		}
		if _, ok := seenNames[m.Name]; ok {
			return nil, &DuplicateMemberError{TypeName: typeName, Name: m.Name, Value: m.Value}
		}
		if _, ok := e.byValue[m.Value]; ok {
			return nil, &DuplicateMemberError{TypeName: typeName, Name: m.Name, Value: m.Value}
		}
		seenNames[m.Name] = struct{}{}
		e.byValue[m.Value] = m
	}

	return e, nil
}

// MustInt is like NewInt but panics on a definition error.
func MustInt[V Integer](typeName string, members []Member[V], opts ...Option[V]) *IntEnum[V] {
	e, err := NewInt(typeName, members, opts...)
	if err != nil {
		panic(fmt.Sprintf("enums: failed to define %s: %v", typeName, err))
	}
	return e
}

// FromFuzzyInt resolves s to a member value. Resolution order: declared
// aliases (exact lowercase key match), case-insensitive member names, then a
// numeric parse of s matched against member values. A string that parses as
// an integer but matches no member fails with the same InvalidValueError as
// a non-numeric miss.
func (e *IntEnum[V]) FromFuzzyInt(s string) (V, error) {
	var zero V
	if n := inputLength(s); n > MaxInputLength {
		return zero, &InputTooLongError{TypeName: e.typeName, Length: n}
	}

	lower := strings.ToLower(s)

	if target, ok := e.aliases[lower]; ok {
		if m, ok := e.byValue[target]; ok {
			return m.Value, nil
		}
		return zero, &BrokenAliasError{TypeName: e.typeName, Alias: lower, Target: fmt.Sprintf("%d", target)}
	}

	if m, ok := e.nameMap()[lower]; ok {
		return m.Value, nil
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if m, ok := e.lookupInt64(n); ok {
			return m.Value, nil
		}
	}

	return zero, e.invalid(s)
}

// GetOrNone safely resolves input of any kind. It recognizes the enum's own
// value type, the built-in integer types and strings. It never returns an
// error: any failure collapses to ok == false.
func (e *IntEnum[V]) GetOrNone(input any) (V, bool) {
	var zero V
	switch v := input.(type) {
	case nil:
		return zero, false
	case V:
		if m, ok := e.byValue[v]; ok {
			return m.Value, true
		}
		return zero, false
	case string:
		if m, err := e.FromFuzzyInt(v); err == nil {
			return m, true
		}
		return zero, false
	}
	if n, ok := toInt64(input); ok {
		if m, ok := e.lookupInt64(n); ok {
			return m.Value, true
		}
	}
	return zero, false
}

// TypeName returns the declared name of the enum type, used in error
// messages.
func (e *IntEnum[V]) TypeName() string { return e.typeName }

// Names returns all member names in declaration order.
func (e *IntEnum[V]) Names() []string {
	names := make([]string, len(e.members))
	for i, m := range e.members {
		names[i] = m.Name
	}
	return names
}

// Values returns all member values in declaration order.
func (e *IntEnum[V]) Values() []V {
	values := make([]V, len(e.members))
	for i, m := range e.members {
		values[i] = m.Value
	}
	return values
}

// Items returns all members in declaration order.
func (e *IntEnum[V]) Items() []Member[V] {
	return append([]Member[V](nil), e.members...)
}

// Choices is an alias for Values, named for form/config libraries that
// expect a choices list.
func (e *IntEnum[V]) Choices() []V { return e.Values() }

// Resolve implements Resolver.
func (e *IntEnum[V]) Resolve(s string) (V, error) { return e.FromFuzzyInt(s) }

// ParserFunc adapts the enum to the parser signature used by env parsing
// libraries (caarlos0/env FuncMap).
func (e *IntEnum[V]) ParserFunc() func(string) (any, error) {
	return func(s string) (any, error) {
		v, err := e.FromFuzzyInt(s)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func (e *IntEnum[V]) absent() (V, bool) {
	var zero V
	return zero, false
}

// nameMap lazily builds the lowercase-name lookup exactly once; first member
// wins key collisions. Read-only after construction.
func (e *IntEnum[V]) nameMap() map[string]Member[V] {
	e.nameOnce.Do(func() {
		m := make(map[string]Member[V], len(e.members))
		for _, member := range e.members {
			key := strings.ToLower(member.Name)
			if _, ok := m[key]; !ok {
				m[key] = member
			}
		}
		e.byName = m
	})
	return e.byName
}

// lookupInt64 probes the value map with overflow protection: a candidate
// that does not round-trip through V cannot equal any member value.
func (e *IntEnum[V]) lookupInt64(n int64) (Member[V], bool) {
	v := V(n)
	if int64(v) != n {
		var zero Member[V]
		return zero, false
	}
	m, ok := e.byValue[v]
	return m, ok
}

func (e *IntEnum[V]) invalid(input string) *InvalidValueError {
	choices := make([]string, len(e.members))
	for i, m := range e.members {
		choices[i] = fmt.Sprintf("%d", m.Value)
	}
	return &InvalidValueError{Input: input, TypeName: e.typeName, Choices: choices}
}

func toInt64(input any) (int64, bool) {
	switch v := input.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v > 1<<63-1 {
			return 0, false
		}
		return int64(v), true
	}
	return 0, false
}
