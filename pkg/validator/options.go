package validator

import (
	"fmt"

	"github.com/dmitrymomot/rulekit/pkg/config"
)

// Options holds validator defaults that can be set from the environment.
type Options struct {
	// CascadeMode is the cascade mode of rules that do not set their own.
	CascadeMode CascadeMode `env:"VALIDATOR_CASCADE_MODE" envDefault:"continue"`
	// DefaultLocale is the message locale used when a validation has none.
	DefaultLocale string `env:"VALIDATOR_DEFAULT_LOCALE" envDefault:"en"`
}

// OptionsFromEnv reads Options from the environment. Pass config.WithFiles
// to read .env files as well; process variables win over file values.
func OptionsFromEnv(opts ...config.Option) (Options, error) {
	var o Options
	if err := config.Load(&o, opts...); err != nil {
		return Options{}, fmt.Errorf("validator: load options: %w", err)
	}
	return o, nil
}
