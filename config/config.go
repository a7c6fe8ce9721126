// Package config loads the run configuration from defaults, an optional YAML
// file and FWDINDEX_* environment variables, in increasing precedence.
// Command-line flags bound to the same viper instance override all three.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment keys: search.workers → FWDINDEX_SEARCH_WORKERS.
const EnvPrefix = "FWDINDEX"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds all run configuration.
type Config struct {
	Search  SearchConfig  `mapstructure:"search"`
	Log     LogConfig     `mapstructure:"log"`
	Output  OutputConfig  `mapstructure:"output"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Trace   bool          `mapstructure:"trace"`
}

// SearchConfig controls routing. MaxIterations and TabuSize are nil unless
// set, in which case they override the graph file's parameter line.
type SearchConfig struct {
	MaxIterations *int  `mapstructure:"max_iterations" validate:"omitempty,gte=0"`
	TabuSize      *int  `mapstructure:"tabu_size" validate:"omitempty,gte=0"`
	Seed          int64 `mapstructure:"seed"`
	Workers       int   `mapstructure:"workers" validate:"gte=1,lte=1024"`
	Compare       bool  `mapstructure:"compare"`
}

// LogConfig selects the zap level and encoder.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// OutputConfig selects the report renderer and destination ("" = stdout).
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"oneof=text json yaml"`
	File   string `mapstructure:"file"`
}

// MetricsConfig names the Prometheus textfile to write ("" = none).
type MetricsConfig struct {
	File string `mapstructure:"file"`
}

// SetDefaults installs every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("search.seed", 0)
	v.SetDefault("search.workers", 1)
	v.SetDefault("search.compare", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("output.format", "text")
	v.SetDefault("output.file", "")
	v.SetDefault("metrics.file", "")
	v.SetDefault("trace", false)
}

// Load reads configuration through v (a fresh instance when nil). path names
// an optional YAML file; "" skips it.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only resolves keys viper already knows about.
	for _, key := range []string{"search.max_iterations", "search.tabu_size"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshalling: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var validate = validator.New()

// Validate checks the struct tags and returns one ErrInvalid-wrapped error
// listing every failing field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Namespace())
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
