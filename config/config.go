package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"voidvanguard/logging"
	"voidvanguard/sim"
)

// EnvPath names the environment variable that overrides the default config path
const EnvPath = "VANGUARD_CONFIG"

// DefaultPath is used when neither a flag nor EnvPath names a file
const DefaultPath = "vanguard.toml"

type Config struct {
	Window  WindowConfig   `toml:"window"`
	Logging logging.Config `toml:"logging"`
	Profile ProfileConfig  `toml:"profile"`
	Sound   SoundConfig    `toml:"sound"`
	Sim     sim.Config     `toml:"sim"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	TPS    int    `toml:"tps"`
}

type ProfileConfig struct {
	Path string `toml:"path"` // YAML file holding coins and upgrades
}

type SoundConfig struct {
	Enabled    bool `toml:"enabled"`
	SampleRate int  `toml:"sample_rate"`
	Volume     int  `toml:"volume"` // 0..128
}

// Path picks the config file: the flag value, then EnvPath, then DefaultPath
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env
	}
	return DefaultPath
}

// Load reads the TOML file at path over the defaults.
// A missing file is not an error: the defaults are returned as is.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Defaults returns the stock configuration
func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Void Vanguard",
			TPS:    60,
		},
		Logging: logging.Config{
			Level:  "info",
			Format: "console",
		},
		Profile: ProfileConfig{
			Path: "profile.yaml",
		},
		Sound: SoundConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     64,
		},
		Sim: sim.DefaultConfig(),
	}
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window tps %d must be positive", c.Window.TPS)
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 128 {
		return fmt.Errorf("sound volume %d out of range 0..128", c.Sound.Volume)
	}
	if c.Sim.EntityCapacity < 0 || c.Sim.PlayerShotCapacity < 0 || c.Sim.HostileShotCapacity < 0 {
		return errors.New("sim capacities must not be negative")
	}
	return nil
}
