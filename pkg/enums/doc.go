// Package enums classifies untrusted or loosely-formatted string and integer
// input into closed sets of enumerated values, tolerating case, separator
// and aliasing variation. It is meant for configuration parsers, CLI
// argument decoding and API boundary layers where external input must map
// unambiguously onto a fixed internal vocabulary.
//
// # Overview
//
// An enum type is a fixed set of (name, value) members declared once, in
// order, with unique names and unique values:
//
//	type Color string
//
//	const (
//	    ColorRed       Color = "red"
//	    ColorBlue      Color = "blue"
//	    ColorDarkBlue  Color = "dark_blue"
//	    ColorLightGreen Color = "light green"
//	)
//
//	var Colors = enums.MustString("Color", []enums.Member[Color]{
//	    {Name: "RED", Value: ColorRed},
//	    {Name: "BLUE", Value: ColorBlue},
//	    {Name: "DARK_BLUE", Value: ColorDarkBlue},
//	    {Name: "LIGHT_GREEN", Value: ColorLightGreen},
//	}, enums.WithAliases(map[string]Color{"dark": ColorDarkBlue}))
//
// Resolution is case- and separator-insensitive ('-', ' ' and '_' are
// interchangeable) and alias-aware:
//
//	Colors.FromFuzzyString("DARK-BLUE") // ColorDarkBlue
//	Colors.FromFuzzyString("dark")      // ColorDarkBlue (alias)
//	Colors.FromFuzzyString("purple")    // InvalidValueError listing all values
//
// The precedence order is fixed: declared aliases first (exact lowercase key
// match), then the lookup cache keyed by the raw lowercase input, then the
// cache keyed by the normalized input. All stages agree on equivalent
// inputs, so the order is an optimization, not a semantic.
//
// # Optional Enum Types
//
// An enum type built with WithSentinel treats absent input as a designated
// member instead of an error. The type must declare a member named
// SentinelName ("NONE"); construction fails with MissingSentinelError
// otherwise.
//
//	var Statuses = enums.MustString("Status", []enums.Member[Status]{
//	    {Name: "NONE", Value: StatusNone},
//	    {Name: "ACTIVE", Value: StatusActive},
//	}, enums.WithSentinel[Status]())
//
//	Statuses.FromOptionalString(nil) // StatusNone
//
// Only true absence resolves to the sentinel; a fuzzy miss still fails.
//
// # Integer Enum Types
//
// IntEnum resolves aliases, case-insensitive member names, and numeric
// strings matched against member values:
//
//	var Codes = enums.MustInt("ErrorCode", []enums.Member[ErrorCode]{
//	    {Name: "OK", Value: 200},
//	    {Name: "NOT_FOUND", Value: 404},
//	}, enums.WithAliases(map[string]ErrorCode{"missing": 404}))
//
//	Codes.FromFuzzyInt("missing")   // 404
//	Codes.FromFuzzyInt("not-found") // InvalidValueError: names are matched
//	                                // verbatim, values numerically
//
// # Safe Lookup
//
// GetOrNone never fails: it recognizes the enum's own value type, strings
// (resolved fuzzily) and, for integer enums, the built-in integer types.
// Anything unresolvable yields ok == false.
//
// # Input Guard
//
// Inputs longer than MaxInputLength (1024 characters) are rejected with
// InputTooLongError before any matching work, so oversized input cannot
// force unbounded normalization. The guard error is distinct from
// InvalidValueError so callers can treat it as an abuse signal.
//
// # Bindings
//
// Value adapts an enum type to the decoding interfaces used at
// configuration and CLI boundaries: encoding.TextUnmarshaler (JSON, env),
// yaml.Unmarshaler (YAML null resolves the sentinel of optional types) and
// flag.Value with Type (stdlib flag and pflag). ParserFunc plugs an enum
// into caarlos0/env FuncMap via this module's config package.
//
// # Error Handling
//
// All failures are typed and matchable with errors.Is/errors.As:
// InvalidValueError (ErrInvalidValue), InputTooLongError (ErrInputTooLong),
// BrokenAliasError (ErrBrokenAlias), MissingSentinelError
// (ErrMissingSentinel) and DuplicateMemberError (ErrDuplicateMember). The
// InvalidValueError message shape is a stable contract:
//
//	'<input>' is not a valid <TypeName>. Please use one of: '<v1>', '<v2>', ...
//
// # Thread Safety
//
// Enum types are immutable after construction. The lookup cache is built at
// most once via sync.Once on first fuzzy lookup and is read-only afterwards,
// so concurrent resolution requires no locking and never observes a partial
// cache.
package enums
