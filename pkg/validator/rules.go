package validator

import (
	"fmt"
	"strings"

	"github.com/adhisantoso/gunzkit/pkg/enums"
)

// NotEmpty fails when value is empty or whitespace-only.
func NotEmpty(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "must not be empty",
		},
	}
}

// OneOf fails when value is not one of the allowed options.
func OneOf[T comparable](field string, value T, options []T) Rule {
	return Rule{
		Check: func() bool {
			for _, allowed := range options {
				if value == allowed {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %s", joinOptions(options)),
		},
	}
}

// MemberOf checks raw input against a closed enum type through its fuzzy
// resolver, so "DARK-BLUE" passes for a member value "dark_blue" and any
// declared alias passes too.
func MemberOf[V comparable](field, input string, enum enums.Resolver[V]) Rule {
	return Rule{
		Check: func() bool {
			_, err := enum.Resolve(input)
			return err == nil
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be a valid %s, one of: %s", enum.TypeName(), joinOptions(enum.Choices())),
		},
	}
}

// IsString fails when value is not a string. The failure message names the
// actual type, never the value.
func IsString(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			_, ok := value.(string)
			return ok
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be a string (got type '%T')", value),
		},
	}
}

// IsInt fails when value is not a built-in integer. The failure message
// names the actual type, never the value.
func IsInt(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			switch value.(type) {
			case int, int8, int16, int32, int64,
				uint, uint8, uint16, uint32, uint64:
				return true
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be an integer (got type '%T')", value),
		},
	}
}

func joinOptions[T any](options []T) string {
	parts := make([]string, len(options))
	for i, o := range options {
		parts[i] = fmt.Sprintf("%v", o)
	}
	return strings.Join(parts, ", ")
}
