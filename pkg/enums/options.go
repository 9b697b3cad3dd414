package enums

import "strings"

// Option configures an enum type during construction.
type Option[V comparable] func(*settings[V])

type settings[V comparable] struct {
	aliases  map[string]V
	optional bool
}

func newSettings[V comparable]() *settings[V] {
	return &settings[V]{aliases: make(map[string]V)}
}

// WithAliases declares alternative spellings for member values. Keys are
// stored lowercase and matched case-insensitively against the raw input,
// before any fuzzy matching; no separator normalization is applied to alias
// keys. Targets are checked lazily: an alias pointing at a non-member value
// fails with BrokenAliasError at first use.
func WithAliases[V comparable](aliases map[string]V) Option[V] {
	return func(s *settings[V]) {
		for k, v := range aliases {
			s.aliases[strings.ToLower(k)] = v
		}
	}
}

// WithSentinel marks the enum type as optional: absent input resolves to the
// member named SentinelName. Construction fails with MissingSentinelError if
// that member is not declared.
func WithSentinel[V comparable]() Option[V] {
	return func(s *settings[V]) { s.optional = true }
}
