package validator

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/blackjack-solitaire/internal/config"
	"github.com/arcanaland/blackjack-solitaire/internal/console"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	ConfigPath string
	Results    ValidationResults
}

func NewValidator(configPath string) *Validator {
	return &Validator{
		ConfigPath: configPath,
		Results:    ValidationResults{},
	}
}

// Validate checks the config file. The returned error is only set when the
// file cannot be read or parsed at all.
func (v *Validator) Validate() (ValidationResults, error) {
	if _, err := os.Stat(v.ConfigPath); os.IsNotExist(err) {
		return v.Results, fmt.Errorf("config file not found: %s", v.ConfigPath)
	}

	var c config.Config
	meta, err := toml.DecodeFile(v.ConfigPath, &c)
	if err != nil {
		return v.Results, fmt.Errorf("error parsing %s: %v", v.ConfigPath, err)
	}

	v.validateKeys(meta)
	v.validateColor(meta, c)
	v.validateTheme(c.Theme)

	return v.Results, nil
}

// validateKeys warns about keys the game does not know
func (v *Validator) validateKeys(meta toml.MetaData) {
	for _, key := range meta.Undecoded() {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("unknown key: %s", key.String()))
	}
}

func (v *Validator) validateColor(meta toml.MetaData, c config.Config) {
	if !meta.IsDefined("color") {
		return
	}

	switch strings.ToLower(c.Color) {
	case "auto", "always", "never":
	default:
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("unsupported color mode: %q (supported: auto, always, never)", c.Color))
	}
}

// validateTheme checks that every theme colour is a hex colour
func (v *Validator) validateTheme(t config.Theme) {
	colors := []struct {
		key   string
		value string
	}{
		{"theme.hearts", t.Hearts},
		{"theme.diamonds", t.Diamonds},
		{"theme.spades", t.Spades},
		{"theme.clubs", t.Clubs},
	}

	for _, c := range colors {
		if c.value == "" {
			continue
		}
		if _, err := console.ParseColor(c.value); err != nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("%s is not a hex colour: %q", c.key, c.value))
		}
	}

	if t.Hearts != "" && t.Hearts == t.Spades {
		v.Results.Warnings = append(v.Results.Warnings,
			"theme.hearts and theme.spades use the same colour")
	}
}
