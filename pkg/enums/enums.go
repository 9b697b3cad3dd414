package enums

import (
	"fmt"
	"strings"
	"sync"
)

const (
	// SentinelName is the reserved member name that optional enum types must
	// declare. Absent input resolves to this member.
	SentinelName = "NONE"

	// MaxInputLength bounds the length (in characters) of any input accepted
	// by the resolvers. Longer inputs fail with InputTooLongError before
	// alias lookup, normalization or any map probe.
	MaxInputLength = 1024
)

// Member is a single (name, value) pair of an enum type. Name is the
// canonical identifier, Value the underlying representation.
type Member[V comparable] struct {
	Name  string
	Value V
}

// StringEnum is a closed set of string-valued members with case-insensitive
// and separator-insensitive resolution, alias support and optional absence
// handling. Membership is fixed at construction time and never mutated.
type StringEnum[V ~string] struct {
	typeName string
	members  []Member[V]
	byValue  map[V]Member[V]
	aliases  map[string]V
	optional bool
	sentinel Member[V]

	fuzzyOnce sync.Once
	fuzzy     map[string]Member[V]
}

// NewString constructs a string enum type from members in declaration order.
// Member names and values must be unique; optional types (WithSentinel) must
// declare a member named SentinelName.
func NewString[V ~string](typeName string, members []Member[V], opts ...Option[V]) (*StringEnum[V], error) {
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

	e := &StringEnum[V]{
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

	if cfg.optional {
		found := false
		for _, m := range e.members {
			if m.Name == SentinelName {
				e.sentinel = m
				found = true
				break
			}
		}
		if !found {
			return nil, &MissingSentinelError{TypeName: typeName}
		}
		e.optional = true
	}

	return e, nil
}

// MustString is like NewString but panics on a definition error. Enum types
// are program constants, so a bad definition is a programming error.
func MustString[V ~string](typeName string, members []Member[V], opts ...Option[V]) *StringEnum[V] {
	e, err := NewString(typeName, members, opts...)
	if err != nil {
		panic(fmt.Sprintf("enums: failed to define %s: %v", typeName, err))
	}
	return e
}

// FromFuzzyString resolves s to a member value. Resolution order: declared
// aliases (exact lowercase key match), the fuzzy cache keyed by the raw
// lowercase input, then the cache keyed by the normalized input. All stages
// yield the same member for equivalent inputs; a miss at every stage fails
// with InvalidValueError enumerating the valid values.
func (e *StringEnum[V]) FromFuzzyString(s string) (V, error) {
	var zero V
	if n := inputLength(s); n > MaxInputLength {
		return zero, &InputTooLongError{TypeName: e.typeName, Length: n}
	}

	lower := strings.ToLower(s)

	if target, ok := e.aliases[lower]; ok {
		if m, ok := e.byValue[target]; ok {
			return m.Value, nil
		}
		return zero, &BrokenAliasError{TypeName: e.typeName, Alias: lower, Target: string(target)}
	}

	// Raw lowercase probe catches exact name matches and values that are
	// already in normalized form without paying for the separator pass.
	fuzzy := e.fuzzyMap()
	if m, ok := fuzzy[lower]; ok {
		return m.Value, nil
	}
	if m, ok := fuzzy[normalizeKey(lower)]; ok {
		return m.Value, nil
	}

	return zero, e.invalid(s)
}

// FromOptionalString treats a nil pointer as absent input and resolves it to
// the sentinel member of an optional enum type. Non-nil input goes through
// the standard fuzzy pipeline; fuzzy failures are never converted to the
// sentinel.
func (e *StringEnum[V]) FromOptionalString(s *string) (V, error) {
	if s == nil {
		if e.optional {
			return e.sentinel.Value, nil
		}
		var zero V
		return zero, e.invalid("<nil>")
	}
	return e.FromFuzzyString(*s)
}

// GetOrNone safely resolves input of any kind. It recognizes the enum's own
// value type and plain strings; nil resolves to the sentinel of an optional
// type. It never returns an error: any failure collapses to ok == false.
func (e *StringEnum[V]) GetOrNone(input any) (V, bool) {
	var zero V
	switch v := input.(type) {
	case nil:
		if e.optional {
			return e.sentinel.Value, true
		}
		return zero, false
	case V:
		if m, ok := e.byValue[v]; ok {
			return m.Value, true
		}
		if m, err := e.FromFuzzyString(string(v)); err == nil {
			return m, true
		}
		return zero, false
	case string:
		if m, ok := e.byValue[V(v)]; ok {
			return m.Value, true
		}
		if m, err := e.FromFuzzyString(v); err == nil {
			return m, true
		}
		return zero, false
	}
	return zero, false
}

// TypeName returns the declared name of the enum type, used in error
// messages.
func (e *StringEnum[V]) TypeName() string { return e.typeName }

// Names returns all member names in declaration order.
func (e *StringEnum[V]) Names() []string {
	names := make([]string, len(e.members))
	for i, m := range e.members {
		names[i] = m.Name
	}
	return names
}

// Values returns all member values in declaration order.
func (e *StringEnum[V]) Values() []V {
	values := make([]V, len(e.members))
	for i, m := range e.members {
		values[i] = m.Value
	}
	return values
}

// Items returns all members in declaration order.
func (e *StringEnum[V]) Items() []Member[V] {
	return append([]Member[V](nil), e.members...)
}

// Choices is an alias for Values, named for form/config libraries that
// expect a choices list.
func (e *StringEnum[V]) Choices() []V { return e.Values() }

// Sentinel returns the designated absence member of an optional enum type.
func (e *StringEnum[V]) Sentinel() (Member[V], bool) {
	return e.sentinel, e.optional
}

// Resolve implements Resolver.
func (e *StringEnum[V]) Resolve(s string) (V, error) { return e.FromFuzzyString(s) }

// ParserFunc adapts the enum to the parser signature used by env parsing
// libraries (caarlos0/env FuncMap), so struct fields of the enum's value
// type decode through the fuzzy pipeline.
func (e *StringEnum[V]) ParserFunc() func(string) (any, error) {
	return func(s string) (any, error) {
		v, err := e.FromFuzzyString(s)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func (e *StringEnum[V]) absent() (V, bool) {
	if e.optional {
		return e.sentinel.Value, true
	}
	var zero V
	return zero, false
}

// fuzzyMap lazily builds the lookup cache exactly once. Each member is
// indexed under its normalized value and its lowercase name; on a key
// collision the member declared first wins. After construction the map is
// read-only and shared without locking.
func (e *StringEnum[V]) fuzzyMap() map[string]Member[V] {
	e.fuzzyOnce.Do(func() {
		m := make(map[string]Member[V], len(e.members)*2)
		for _, member := range e.members {
			valKey := normalizeKey(string(member.Value))
			if _, ok := m[valKey]; !ok {
				m[valKey] = member
			}
			nameKey := strings.ToLower(member.Name)
			if _, ok := m[nameKey]; !ok {
				m[nameKey] = member
			}
		}
		e.fuzzy = m
	})
	return e.fuzzy
}

func (e *StringEnum[V]) invalid(input string) *InvalidValueError {
	choices := make([]string, len(e.members))
	for i, m := range e.members {
		choices[i] = string(m.Value)
	}
	return &InvalidValueError{Input: input, TypeName: e.typeName, Choices: choices}
}
