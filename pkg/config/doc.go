// Package config loads configuration structs from environment variables.
//
// It combines `github.com/joho/godotenv`, which reads `.env` files, with
// `github.com/caarlos0/env/v11`, which maps variables onto struct fields
// through `env` tags. Variables from files are merged under the process
// environment into a private map, so loading never calls os.Setenv and
// concurrent loads do not interfere.
//
// # Usage
//
//	type Settings struct {
//	    CascadeMode string `env:"VALIDATOR_CASCADE_MODE" envDefault:"continue"`
//	    Locale      string `env:"VALIDATOR_DEFAULT_LOCALE" envDefault:"en"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, config.WithFiles(".env")); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// Field types implementing encoding.TextUnmarshaler are decoded with it,
// which is how validator.CascadeMode is read from "continue" or "stop".
//
// # Options
//
//   - WithFiles      – read one or more .env files.
//   - WithPrefix     – prepend a prefix to every variable name.
//   - WithEnvironment – replace the process environment, handy in tests.
//
// # Error Handling
//
// Errors wrap the sentinels ErrParsingConfig, ErrReadingEnvFile and
// ErrNilPointer and can be matched with errors.Is.
package config
