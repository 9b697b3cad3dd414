package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cacheMu sync.RWMutex
	cache   = make(map[string]any)

	parserMu sync.RWMutex
	parsers  = make(map[reflect.Type]env.ParserFunc)

	defaultEnvOnce sync.Once
)

// RegisterParserFor registers a custom parser for struct fields of type T.
// The typical use is wiring an enum type so its fields decode through fuzzy
// resolution:
//
//	config.RegisterParserFor(Colors.FromFuzzyString)
//
// Registration must happen before the first Load of a struct containing T.
func RegisterParserFor[T any](parse func(string) (T, error)) {
	var zero T
	typ := reflect.TypeOf(zero)

	parserMu.Lock()
	parsers[typ] = func(s string) (any, error) {
		v, err := parse(s)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	parserMu.Unlock()
}

// Load parses environment variables into the provided struct based on `env`
// field tags. Each configuration type is parsed at most once per process;
// later calls for the same type return the cached copy. The default .env
// file, if present, is loaded before the first parse.
//
//	type AppConfig struct {
//	    Port  int   `env:"APP_PORT" envDefault:"8080"`
//	    Color Color `env:"APP_COLOR" envDefault:"red"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
func Load[T any](v *T) error {
	defaultEnvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()

	cacheMu.RLock()
	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		cacheMu.RUnlock()
		return nil
	}
	cacheMu.RUnlock()

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}

	if err := parse(v); err != nil {
		return err
	}
	cache[key] = *v
	return nil
}

// MustLoad works like Load but panics if configuration loading fails. For
// configuration the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReload parses the environment into v bypassing the cache and stores
// the fresh result. Handy in tests after changing environment variables.
func ForceReload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if err := parse(v); err != nil {
		return err
	}
	cache[typeKey[T]()] = *v
	return nil
}

// LoadEnv loads environment variables from the given .env files in order;
// later files override earlier ones and the current environment. With no
// arguments it loads the default .env without overriding existing variables.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		return godotenv.Load()
	}
	for _, path := range paths {
		if err := godotenv.Overload(path); err != nil {
			return err
		}
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// ResetCache clears all cached configurations so subsequent Load calls parse
// the environment again. Intended for tests.
func ResetCache() {
	cacheMu.Lock()
	cache = make(map[string]any)
	cacheMu.Unlock()
}

func parse[T any](v *T) error {
	parserMu.RLock()
	funcMap := make(map[reflect.Type]env.ParserFunc, len(parsers))
	for typ, fn := range parsers {
		funcMap[typ] = fn
	}
	parserMu.RUnlock()

	if err := env.ParseWithOptions(v, env.Options{FuncMap: funcMap}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

func typeKey[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		// Interface types have no concrete reflect.Type.
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
