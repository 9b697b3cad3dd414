// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 behind a
// small API that:
//
//   - Loads values from one or multiple .env files (falling back to the
//     default .env in the working directory).
//   - Parses the environment into any Go struct using `env` field tags.
//   - Caches each successfully loaded configuration type so it is parsed
//     once per process.
//   - Accepts custom field parsers, so enum-typed fields resolve through
//     the fuzzy pipeline of this module's enums package.
//
// # Usage
//
//	import (
//	    "github.com/adhisantoso/gunzkit/pkg/config"
//	)
//
//	type AppConfig struct {
//	    Port  int   `env:"APP_PORT" envDefault:"8080"`
//	    Color Color `env:"APP_COLOR" envDefault:"red"`
//	}
//
//	func init() {
//	    config.RegisterParserFor(Colors.FromFuzzyString)
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
//
// With the parser registered, APP_COLOR=DARK-BLUE decodes to the dark_blue
// member; an unknown value fails Load with the enum's InvalidValueError
// inside the returned error chain.
//
// # Error Handling
//
// Load wraps parse failures with ErrParsingConfig and joins the underlying
// parser error, so both errors.Is(err, config.ErrParsingConfig) and
// errors.Is(err, enums.ErrInvalidValue) work on the same chain.
//
// # Thread Safety
//
// All functions are safe for concurrent use. The per-type cache guarantees
// each configuration struct type is parsed at most once; ResetCache and
// ForceReload exist for tests that mutate the environment.
package config
