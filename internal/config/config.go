// Package config resolves runtime settings from defaults, an optional
// optistudy.yaml, OPTISTUDY_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/alexanderramin/optistudy/internal/scheduler"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "OPTISTUDY"
	FileName  = "optistudy"
)

type Config struct {
	DB      string        `mapstructure:"db"`
	Log     LogConfig     `mapstructure:"log"`
	Planner PlannerConfig `mapstructure:"planner"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
}

// PlannerConfig carries the allocator tuning plus per-run budget overrides.
// Zero TotalHours or MaxPerSubject means "use the stored settings".
type PlannerConfig struct {
	TotalHours      float64 `mapstructure:"total_hours"`
	MaxPerSubject   float64 `mapstructure:"max_per_subject"`
	DayStartHour    float64 `mapstructure:"day_start_hour"`
	MinHours        float64 `mapstructure:"min_hours"`
	MaxShareOfTotal float64 `mapstructure:"max_share_of_total"`
}

// Flag names bound onto viper keys when present in the flag set.
var flagKeys = map[string]string{
	"db":         "db",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// Planner keys whose env names skip the "planner" segment.
var plannerEnv = map[string]string{
	"planner.total_hours":        "TOTAL_HOURS",
	"planner.max_per_subject":    "MAX_PER_SUBJECT",
	"planner.day_start_hour":     "DAY_START_HOUR",
	"planner.min_hours":          "MIN_HOURS",
	"planner.max_share_of_total": "MAX_SHARE_OF_TOTAL",
}

// Load builds a Config. configFile, when non-empty, must exist; otherwise
// optistudy.yaml is looked up in the working directory and ~/.optistudy.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if err := setDefaults(v); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range plannerEnv {
		if err := v.BindEnv(key, EnvPrefix+"_"+env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := HomeDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) error {
	dir, err := HomeDir()
	if err != nil {
		return err
	}
	alloc := scheduler.DefaultAllocatorConfig()

	v.SetDefault("db", filepath.Join(dir, FileName+".db"))
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("planner.total_hours", 0.0)
	v.SetDefault("planner.max_per_subject", 0.0)
	v.SetDefault("planner.day_start_hour", float64(domain.DefaultDayStart))
	v.SetDefault("planner.min_hours", alloc.MinHours)
	v.SetDefault("planner.max_share_of_total", alloc.MaxShareOfTotal)
	return nil
}

// HomeDir is ~/.optistudy, where the default database and config live.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, "."+FileName), nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.DB) == "" {
		return errors.New("config: db path is empty")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: log format %q is not text or json", c.Log.Format)
	}
	p := c.Planner
	if p.TotalHours < 0 || p.TotalHours > 24 {
		return fmt.Errorf("config: total_hours %.2f is outside 0-24", p.TotalHours)
	}
	if p.MaxPerSubject < 0 {
		return fmt.Errorf("config: max_per_subject %.2f must not be negative", p.MaxPerSubject)
	}
	if p.DayStartHour < 0 || p.DayStartHour >= 24 {
		return fmt.Errorf("config: day_start_hour %.2f is outside 0-24", p.DayStartHour)
	}
	if p.MinHours < 0 {
		return fmt.Errorf("config: min_hours %.2f must not be negative", p.MinHours)
	}
	if p.MaxShareOfTotal <= 0 || p.MaxShareOfTotal > 1 {
		return fmt.Errorf("config: max_share_of_total %.2f is outside (0, 1]", p.MaxShareOfTotal)
	}
	return nil
}

// Allocator returns the scheduler configured with the planner tuning.
func (c *Config) Allocator() *scheduler.Allocator {
	a := scheduler.NewAllocator()
	a.Config.MinHours = c.Planner.MinHours
	a.Config.MaxShareOfTotal = c.Planner.MaxShareOfTotal
	return a
}
