package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/vi-clock/fireworks"
	"github.com/lixenwraith/vi-clock/logging"
	"github.com/lixenwraith/vi-clock/parameter"
)

// EnvPrefix prefixes environment overrides, e.g. VI_CLOCK_TICK_ENABLED=false
const EnvPrefix = "VI_CLOCK"

// LogConfig holds debug log settings
type LogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Level   string `mapstructure:"level"`
	Dir     string `mapstructure:"dir"`
}

// VoiceConfig holds hourly announcement settings
type VoiceConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// TickConfig holds tick sound settings
type TickConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	File    string  `mapstructure:"file"`
	Volume  float64 `mapstructure:"volume"`
}

// MessagesConfig selects the daily message catalogue
type MessagesConfig struct {
	File string `mapstructure:"file"`
}

// FireworksConfig holds the tunable firework parameters
type FireworksConfig struct {
	Gravity   float64 `mapstructure:"gravity"`
	Fade      float64 `mapstructure:"fade"`
	Particles int     `mapstructure:"particles"`
	Chance    float64 `mapstructure:"chance"`
}

// FrameConfig holds the animation rate
type FrameConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// Config is the resolved application configuration
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Voice     VoiceConfig     `mapstructure:"voice"`
	Tick      TickConfig      `mapstructure:"tick"`
	Messages  MessagesConfig  `mapstructure:"messages"`
	Fireworks FireworksConfig `mapstructure:"fireworks"`
	Frame     FrameConfig     `mapstructure:"frame"`
	// Seed fixes the firework random source, 0 seeds from the clock
	Seed uint64 `mapstructure:"seed"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.enabled", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", logging.DefaultDir)

	v.SetDefault("voice.enabled", true)

	v.SetDefault("tick.enabled", true)
	v.SetDefault("tick.file", filepath.Join("sounds", "tick.wav"))
	v.SetDefault("tick.volume", parameter.TickVolume)

	v.SetDefault("messages.file", "")

	v.SetDefault("fireworks.gravity", parameter.ParticleGravity)
	v.SetDefault("fireworks.fade", parameter.ParticleFadeStep)
	v.SetDefault("fireworks.particles", parameter.BurstParticleCount)
	v.SetDefault("fireworks.chance", parameter.BurstSpawnChance)

	v.SetDefault("frame.interval", parameter.FrameInterval)

	v.SetDefault("seed", 0)
}

// flagBindings maps command-line flags onto config keys
var flagBindings = map[string]string{
	"debug":     "log.enabled",
	"log-level": "log.level",
	"voice":     "voice.enabled",
	"tick":      "tick.enabled",
	"tick-file": "tick.file",
	"messages":  "messages.file",
	"frame":     "frame.interval",
	"seed":      "seed",
}

// NewFlagSet declares the command-line flags
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("config", "c", "", "path to a TOML config file")
	fs.Bool("debug", false, "write a debug log under the log directory")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.Bool("voice", true, "speak the time every full hour")
	fs.Bool("tick", true, "play a tick every second")
	fs.String("tick-file", filepath.Join("sounds", "tick.wav"), "WAV file used as tick sound")
	fs.String("messages", "", "YAML file with daily messages")
	fs.Duration("frame", parameter.FrameInterval, "animation frame interval")
	fs.Uint64("seed", 0, "firework random seed, 0 for time based")
	return fs
}

// Load parses args, reads the optional config file and resolves defaults, environment,
// file and flags in increasing priority
func Load(args []string) (*Config, error) {
	fs := NewFlagSet("vi-clock")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return FromFlags(fs)
}

// FromFlags resolves the configuration from an already parsed flag set
func FromFlags(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for flagName, key := range flagBindings {
		if f := fs.Lookup(flagName); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", flagName, err)
			}
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if filepath.Ext(path) == "" {
			v.SetConfigType("toml")
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the clock cannot run with
func (c *Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Tick.Volume < 0 || c.Tick.Volume > 1 {
		errs = append(errs, fmt.Errorf("tick.volume must be within [0, 1], got %v", c.Tick.Volume))
	}
	if c.Fireworks.Particles < 1 {
		errs = append(errs, fmt.Errorf("fireworks.particles must be positive, got %d", c.Fireworks.Particles))
	}
	if c.Fireworks.Fade < 0 {
		errs = append(errs, fmt.Errorf("fireworks.fade must not be negative, got %v", c.Fireworks.Fade))
	}
	if c.Fireworks.Chance < 0 || c.Fireworks.Chance > 1 {
		errs = append(errs, fmt.Errorf("fireworks.chance must be within [0, 1], got %v", c.Fireworks.Chance))
	}
	if c.Frame.Interval <= 0 {
		errs = append(errs, fmt.Errorf("frame.interval must be positive, got %v", c.Frame.Interval))
	}
	return errors.Join(errs...)
}

// FireworksConfig applies the configured tuning over the firework defaults
func (c *Config) FireworksConfig() fireworks.Config {
	fc := fireworks.DefaultConfig()
	fc.Gravity = c.Fireworks.Gravity
	fc.FadeStep = c.Fireworks.Fade
	fc.ParticleCount = c.Fireworks.Particles
	fc.SpawnChance = c.Fireworks.Chance
	return fc
}

// LogOptions converts the log section for logging.Setup
func (c *Config) LogOptions() logging.Options {
	return logging.Options{
		Enabled: c.Log.Enabled,
		Dir:     c.Log.Dir,
		Level:   c.Log.Level,
	}
}
