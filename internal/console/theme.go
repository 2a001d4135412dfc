package console

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/blackjack-solitaire/internal/card"
)

// Colour modes accepted by ColorEnabled
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorEnabled decides whether output to f is coloured. In auto mode only
// terminals get colour.
func ColorEnabled(mode string, f *os.File) bool {
	switch strings.ToLower(mode) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return f != nil && term.IsTerminal(int(f.Fd()))
	}
}

// Theme paints card codes by suit
type Theme struct {
	paint map[card.Suit]func(string) string
}

// NewTheme creates a theme. colors maps suits to hex colours ("#d7263d");
// suits without one use red or bright white.
func NewTheme(colors map[card.Suit]string, enabled bool) (*Theme, error) {
	t := &Theme{
		paint: make(map[card.Suit]func(string) string),
	}
	if !enabled {
		return t, nil
	}

	for _, s := range card.Suits() {
		if hex := colors[s]; hex != "" {
			c, err := ParseColor(hex)
			if err != nil {
				return nil, fmt.Errorf("invalid colour for %s: %v", strings.ToLower(s.String()), err)
			}
			t.paint[s] = trueColor(c)
			continue
		}

		var c *color.Color
		if s.Red() {
			c = color.New(color.FgRed, color.Bold)
		} else {
			c = color.New(color.FgHiWhite, color.Bold)
		}
		c.EnableColor()
		t.paint[s] = func(v string) string { return c.Sprint(v) }
	}

	return t, nil
}

// Card returns the card code, coloured by suit
func (t *Theme) Card(c card.Card) string {
	return t.Suit(c.Suit, c.String())
}

// Suit paints s in the colour of suit
func (t *Theme) Suit(suit card.Suit, s string) string {
	if p, ok := t.paint[suit]; ok {
		return p(s)
	}
	return s
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ParseColor parses a "#rgb" or "#rrggbb" colour. colorful.Hex alone lets
// through strings such as "#12345".
func ParseColor(s string) (colorful.Color, error) {
	if !hexColor.MatchString(s) {
		return colorful.Color{}, fmt.Errorf("%q is not a hex colour (#rgb or #rrggbb)", s)
	}
	return colorful.Hex(s)
}

// trueColor paints text with a 24-bit foreground escape
func trueColor(c colorful.Color) func(string) string {
	r, g, b := c.RGB255()
	return func(s string) string {
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, s)
	}
}
