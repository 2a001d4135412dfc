package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arcanaland/blackjack-solitaire/internal/card"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Setenv(EnvSeed, "")
	t.Setenv(EnvColor, "")

	path := filepath.Join(t.TempDir(), "missing.toml")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Seed != 0 || c.Color != "auto" || c.Breakdown {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Load should not create the config file")
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv(EnvSeed, "")
	t.Setenv(EnvColor, "")

	path := filepath.Join(t.TempDir(), "config.toml")
	data := `seed = 42
color = "never"
breakdown = true

[theme]
hearts = "#ff0000"
clubs = "#00ff00"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Seed != 42 || c.Color != "never" || !c.Breakdown {
		t.Errorf("unexpected config: %+v", c)
	}

	colors := c.Theme.Colors()
	if len(colors) != 2 || colors[card.Hearts] != "#ff0000" || colors[card.Clubs] != "#00ff00" {
		t.Errorf("unexpected theme colours: %v", colors)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("seed = \"not a number\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("expected a decoding error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvSeed, "7")
	t.Setenv(EnvColor, "ALWAYS")

	c, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Seed != 7 || c.Color != "always" {
		t.Errorf("environment was not applied: %+v", c)
	}

	t.Setenv(EnvSeed, "seven")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("expected an error for a bad seed")
	}
}

func TestInitAndDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvSeed, "")
	t.Setenv(EnvColor, "")

	path, err := Init("")
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if path != GetConfigFilePath() {
		t.Errorf("expected %s, got %s", GetConfigFilePath(), path)
	}

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Color != "auto" {
		t.Errorf("expected the default colour mode, got %q", c.Color)
	}

	if _, err := Init(""); err == nil {
		t.Errorf("Init should not overwrite an existing file")
	}
}
