// Package config loads vi-racer settings from defaults, an optional TOML file, environment and flags
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/vi-racer/constants"
)

// FileName is the config file looked up in the config directory
const FileName = "vi-racer"

// EnvPrefix prefixes environment overrides, e.g. VIRACER_AUDIO_VOLUME
const EnvPrefix = "VIRACER"

// AudioConfig holds sound settings
type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

// RaceConfig sizes every race
type RaceConfig struct {
	TrackLength float64 `mapstructure:"trackLength"`
	AICars      int     `mapstructure:"aiCars"`
}

// DisplayConfig holds frame loop settings
type DisplayConfig struct {
	FPS int `mapstructure:"fps"`
}

// Config is the resolved process configuration
type Config struct {
	LogLevel string        `mapstructure:"logLevel"`
	LogsDir  string        `mapstructure:"logsDir"`
	Debug    bool          `mapstructure:"debug"`
	Seed     uint64        `mapstructure:"seed"` // 0 seeds from the clock
	Audio    AudioConfig   `mapstructure:"audio"`
	Race     RaceConfig    `mapstructure:"race"`
	Display  DisplayConfig `mapstructure:"display"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./logs")
	viper.SetDefault("debug", false)
	viper.SetDefault("seed", 0)

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.volume", 0.5)

	viper.SetDefault("race.trackLength", constants.DefaultTrackLength)
	viper.SetDefault("race.aiCars", constants.DefaultAICars)

	viper.SetDefault("display.fps", 60)
}

// BindFlags registers the command line overrides and binds them to their keys
// Call before Load; only flags set on the command line override file values
func BindFlags(fs *pflag.FlagSet) error {
	fs.String("config", ".", "directory containing vi-racer.toml")
	fs.Bool("debug", false, "write a debug log to the logs directory")
	fs.Uint64("seed", 0, "random seed for traffic (0 = time based)")
	fs.Bool("mute", false, "start with sound disabled")

	binds := map[string]string{
		"debug": "debug",
		"seed":  "seed",
	}
	for key, flag := range binds {
		if err := viper.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}
	return nil
}

// Load resolves configuration from configDir; a missing config file is not an error
func Load(configDir string) (*Config, error) {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.SetConfigType("toml")
	viper.AddConfigPath(configDir)

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the race loop cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Race.TrackLength <= 0:
		return fmt.Errorf("race.trackLength must be positive, got %v", c.Race.TrackLength)
	case c.Race.AICars < 0 || c.Race.AICars > constants.LaneCount:
		return fmt.Errorf("race.aiCars must be within 0..%d, got %d", constants.LaneCount, c.Race.AICars)
	case c.Display.FPS < 1 || c.Display.FPS > 240:
		return fmt.Errorf("display.fps must be within 1..240, got %d", c.Display.FPS)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("audio.volume must be within 0..1, got %v", c.Audio.Volume)
	}
	return nil
}
