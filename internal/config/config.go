package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"k8s.io/klog/v2"

	"github.com/arcanaland/blackjack-solitaire/internal/card"
)

// Environment variables overriding the config file
const (
	EnvSeed  = "BJS_SEED"
	EnvColor = "BJS_COLOR"
)

// Config represents the application configuration
type Config struct {
	Seed      int64  `toml:"seed"`
	Color     string `toml:"color"`
	Breakdown bool   `toml:"breakdown"`
	Theme     Theme  `toml:"theme"`
}

// Theme holds hex colours for card suits
type Theme struct {
	Hearts   string `toml:"hearts"`
	Diamonds string `toml:"diamonds"`
	Spades   string `toml:"spades"`
	Clubs    string `toml:"clubs"`
}

// Colors returns the theme keyed by suit, leaving out unset suits
func (t Theme) Colors() map[card.Suit]string {
	colors := make(map[card.Suit]string)
	for s, hex := range map[card.Suit]string{
		card.Hearts:   t.Hearts,
		card.Diamonds: t.Diamonds,
		card.Spades:   t.Spades,
		card.Clubs:    t.Clubs,
	} {
		if hex != "" {
			colors[s] = hex
		}
	}
	return colors
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Color: "auto",
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "bjsolitaire", "config.toml")
}

// Load loads the config file at path, or the default location when path is
// empty. A missing file gives the defaults; Load never creates files.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	if path == "" {
		path = GetConfigFilePath()
	}

	config := Default()
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, config); err != nil {
			return nil, fmt.Errorf("error decoding config file: %v", err)
		}
		klog.V(1).Infof("loaded config from %s", path)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading config file: %v", err)
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) applyEnv() error {
	// a missing .env file is fine
	_ = godotenv.Load()

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %v", EnvSeed, err)
		}
		c.Seed = seed
	}

	if v := os.Getenv(EnvColor); v != "" {
		c.Color = strings.ToLower(v)
	}

	return nil
}

// Init writes the default config file at path, or the default location when
// path is empty. An existing file is left alone.
func Init(path string) (string, error) {
	if path == "" {
		path = GetConfigFilePath()
	}

	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config file already exists: %s", path)
	}

	if err := Save(path, Default()); err != nil {
		return path, err
	}
	return path, nil
}

// Save writes config to path, creating its directory
func Save(path string, config *Config) error {
	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}
