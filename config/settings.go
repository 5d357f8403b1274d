package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Settings are the per-run options read from a config file and the
// environment. Balance tables stay in the typed defaults above.
type Settings struct {
	TickRate        int           `mapstructure:"tick_rate"`
	MaxCatchUpSteps int           `mapstructure:"max_catchup_steps"`
	Seed            uint64        `mapstructure:"seed"`
	Duration        time.Duration `mapstructure:"duration"`
	Realtime        bool          `mapstructure:"realtime"`
	Arena           ArenaSettings `mapstructure:"arena"`
	Log             LogSettings   `mapstructure:"log"`
}

// ArenaSettings sizes the playfield.
type ArenaSettings struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// LogSettings selects the logger level and encoding.
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		TickRate:        Sim.TickRate,
		MaxCatchUpSteps: Sim.MaxCatchUpSteps,
		Seed:            1,
		Duration:        10 * time.Minute,
		Arena:           ArenaSettings{Width: Sim.ArenaWidth, Height: Sim.ArenaHeight},
		Log:             LogSettings{Level: "info", Format: "console"},
	}
}

// LoadSettings reads settings from path (optional) and ARENA_* environment
// variables on top of DefaultSettings.
func LoadSettings(path string) (Settings, error) {
	def := DefaultSettings()

	v := viper.New()
	v.SetDefault("tick_rate", def.TickRate)
	v.SetDefault("max_catchup_steps", def.MaxCatchUpSteps)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("duration", def.Duration)
	v.SetDefault("realtime", def.Realtime)
	v.SetDefault("arena.width", def.Arena.Width)
	v.SetDefault("arena.height", def.Arena.Height)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	v.SetEnvPrefix("ARENA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("reading config %q: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports every invalid field.
func (s Settings) Validate() error {
	var errs []error
	if s.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", s.TickRate))
	}
	if s.MaxCatchUpSteps <= 0 {
		errs = append(errs, fmt.Errorf("max_catchup_steps must be positive, got %d", s.MaxCatchUpSteps))
	}
	if s.Arena.Width <= 0 || s.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena must have a positive size, got %vx%v", s.Arena.Width, s.Arena.Height))
	}
	switch s.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", s.Log.Format))
	}
	return errors.Join(errs...)
}

// Apply copies the run settings into the global simulation config.
func (s Settings) Apply() {
	Sim.TickRate = s.TickRate
	Sim.MaxCatchUpSteps = s.MaxCatchUpSteps
	Sim.ArenaWidth = s.Arena.Width
	Sim.ArenaHeight = s.Arena.Height
}
