package enums

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Resolver is the resolution surface shared by StringEnum and IntEnum.
// It is implemented only inside this package: enum types are closed sets.
type Resolver[V comparable] interface {
	TypeName() string
	Resolve(s string) (V, error)
	Choices() []V
	absent() (V, bool)
}

// Value binds a field to an enum type so text decoded from YAML, JSON,
// environment variables or command-line flags resolves through the fuzzy
// pipeline. It implements encoding.TextUnmarshaler/TextMarshaler,
// yaml.Unmarshaler and flag.Value (plus Type, so it also satisfies pflag).
type Value[V comparable] struct {
	enum Resolver[V]
	v    V
}

// Bind creates a Value attached to the given enum type.
func Bind[V comparable](enum Resolver[V]) *Value[V] {
	return &Value[V]{enum: enum}
}

// BindDefault creates a Value attached to the given enum type, pre-set to
// def until input overrides it.
func BindDefault[V comparable](enum Resolver[V], def V) *Value[V] {
	return &Value[V]{enum: enum, v: def}
}

// Get returns the currently held member value.
func (f *Value[V]) Get() V { return f.v }

// Set resolves s and stores the result. Implements flag.Value.
func (f *Value[V]) Set(s string) error {
	if f.enum == nil {
		return ErrUnboundValue
	}
	v, err := f.enum.Resolve(s)
	if err != nil {
		return err
	}
	f.v = v
	return nil
}

// String implements flag.Value.
func (f *Value[V]) String() string { return fmt.Sprintf("%v", f.v) }

// Type returns the enum type name, making Value usable as a pflag.Value.
func (f *Value[V]) Type() string {
	if f.enum == nil {
		return ""
	}
	return f.enum.TypeName()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Value[V]) UnmarshalText(b []byte) error { return f.Set(string(b)) }

// MarshalText implements encoding.TextMarshaler.
func (f *Value[V]) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%v", f.v)), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. A null node is absent input:
// it resolves to the sentinel of an optional enum type and fails otherwise.
func (f *Value[V]) UnmarshalYAML(node *yaml.Node) error {
	if f.enum == nil {
		return ErrUnboundValue
	}
	if node.ShortTag() == "!!null" {
		if v, ok := f.enum.absent(); ok {
			f.v = v
			return nil
		}
		return f.invalidNull()
	}
	return f.Set(node.Value)
}

func (f *Value[V]) invalidNull() error {
	values := f.enum.Choices()
	choices := make([]string, len(values))
	for i, v := range values {
		choices[i] = fmt.Sprintf("%v", v)
	}
	return &InvalidValueError{Input: "null", TypeName: f.enum.TypeName(), Choices: choices}
}
