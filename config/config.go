// Package config loads host settings from a TOML file over compiled defaults
// The rule table is not configurable; only display, audio, keys and logging are
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/thingmaker/constants"
)

// DefaultPath is read when no -config flag is given; a missing file is not an error then
const DefaultPath = "thingmaker.toml"

// ErrNotFound is returned by Load when the file does not exist
var ErrNotFound = errors.New("config file not found")

// Config is the decoded settings file
type Config struct {
	Display DisplayConfig     `toml:"display"`
	Audio   AudioConfig       `toml:"audio"`
	Keys    map[string]string `toml:"keys"`
	Log     LogConfig         `toml:"log"`
}

// DisplayConfig controls the frame loop
type DisplayConfig struct {
	FPS int `toml:"fps"`
}

// AudioConfig controls the sound manager
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// LogConfig controls debug log placement
type LogConfig struct {
	Dir string `toml:"dir"`
}

// Default returns the settings used when no file is present
func Default() Config {
	return Config{
		Display: DisplayConfig{FPS: constants.DefaultFPS},
		Audio:   AudioConfig{Enabled: true, Volume: constants.DefaultVolume},
		Keys:    map[string]string{},
		Log:     LogConfig{Dir: "logs"},
	}
}

// Load reads path over Default
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := Parse(data, &cfg); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data into cfg, keeping fields the data does not set
// Unknown keys are rejected so typos surface instead of silently doing nothing
func Parse(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg.Validate()
}

// Validate checks ranges
func (c *Config) Validate() error {
	if c.Display.FPS < constants.MinFPS || c.Display.FPS > constants.MaxFPS {
		return fmt.Errorf("display.fps %d out of range [%d, %d]", c.Display.FPS, constants.MinFPS, constants.MaxFPS)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume %v out of range [0, 1]", c.Audio.Volume)
	}
	if c.Keys == nil {
		c.Keys = map[string]string{}
	}
	return nil
}
