package config

import (
	"errors"
	"maps"
	"os"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures a single Load call.
type Option func(*loader)

type loader struct {
	files       []string
	prefix      string
	environment map[string]string
}

// WithFiles reads variables from .env files. Variables already present in
// the environment are not overridden; earlier files win over later ones.
func WithFiles(files ...string) Option {
	return func(l *loader) {
		l.files = append(l.files, files...)
	}
}

// WithPrefix prepends prefix to every variable name looked up.
func WithPrefix(prefix string) Option {
	return func(l *loader) {
		l.prefix = prefix
	}
}

// WithEnvironment replaces the process environment as the variable source.
// Intended for tests; nil is ignored.
func WithEnvironment(vars map[string]string) Option {
	return func(l *loader) {
		if vars != nil {
			l.environment = maps.Clone(vars)
		}
	}
}

// Load populates v from environment variables using `env` struct tags.
// The process environment is never modified.
//
//	type Settings struct {
//		Mode string `env:"MODE" envDefault:"continue"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, config.WithFiles(".env")); err != nil {
//		// handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}

	vars := l.environment
	if vars == nil {
		vars = env.ToMap(os.Environ())
	}

	if len(l.files) > 0 {
		// godotenv.Read lets later files override earlier ones.
		files := slices.Clone(l.files)
		slices.Reverse(files)
		fileVars, err := godotenv.Read(files...)
		if err != nil {
			return errors.Join(ErrReadingEnvFile, err)
		}
		for k, val := range fileVars {
			if _, set := vars[k]; !set {
				vars[k] = val
			}
		}
	}

	if err := env.ParseWithOptions(v, env.Options{
		Environment: vars,
		Prefix:      l.prefix,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
