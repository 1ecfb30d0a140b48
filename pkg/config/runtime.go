package config

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gitlab.com/tozd/go/errors"
)

// EnvPrefix prefixes environment overrides, MDWRAP_LOG_LEVEL and so on.
const EnvPrefix = "MDWRAP"

const (
	DefaultLogLevel = "info"
	DefaultDebounce = 100 * time.Millisecond
	DefaultThrottle = 1000 * time.Millisecond
)

var DefaultGlobs = []string{"**/*.md", "**/*.org"}

// Runtime holds process options: flags, environment and defaults, in that
// order of precedence.
type Runtime struct {
	LogLevel string        `mapstructure:"log-level" validate:"oneof=trace debug info warn error disabled"`
	Settings string        `mapstructure:"settings"`
	Locale   string        `mapstructure:"locale" validate:"omitempty,bcp47_language_tag"`
	Debounce time.Duration `mapstructure:"debounce" validate:"gte=0"`
	Throttle time.Duration `mapstructure:"throttle" validate:"gte=0"`
	Globs    []string      `mapstructure:"globs" validate:"min=1,dive,required"`
}

// NewViper returns a viper instance with defaults and environment lookups
// set up.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log-level", DefaultLogLevel)
	v.SetDefault("settings", "")
	v.SetDefault("locale", "")
	v.SetDefault("debounce", DefaultDebounce)
	v.SetDefault("throttle", DefaultThrottle)
	v.SetDefault("globs", DefaultGlobs)

	return v
}

// BindFlags lets command-line flags override the environment.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return errors.Errorf("binding flags: %w", err)
	}
	return nil
}

// LoadRuntime resolves and validates the runtime options.
func LoadRuntime(v *viper.Viper) (*Runtime, error) {
	rt := &Runtime{}
	if err := v.Unmarshal(rt); err != nil {
		return nil, errors.Errorf("%w: %s", ErrInvalidSettings, err.Error())
	}

	rt.LogLevel = strings.ToLower(rt.LogLevel)

	if err := validate.Struct(rt); err != nil {
		return nil, errors.Errorf("%w: %s", ErrInvalidSettings, err.Error())
	}

	return rt, nil
}

type runtimeKey struct{}

// WithRuntime stores rt in ctx for subcommands.
func WithRuntime(ctx context.Context, rt *Runtime) context.Context {
	return context.WithValue(ctx, runtimeKey{}, rt)
}

// RuntimeFromContext returns the runtime options stored by WithRuntime, or
// the environment and defaults when there are none.
func RuntimeFromContext(ctx context.Context) (*Runtime, error) {
	if rt, ok := ctx.Value(runtimeKey{}).(*Runtime); ok && rt != nil {
		return rt, nil
	}
	return LoadRuntime(NewViper())
}
