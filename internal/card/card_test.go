package card

import (
	"testing"
)

func TestCardString(t *testing.T) {
	tests := []struct {
		card     Card
		expected string
	}{
		{New(Ace, Spades), "AS"},
		{New(Ten, Hearts), "10H"},
		{New(Queen, Clubs), "QC"},
		{New(Ace, Hearts), "AH"},
		{New(King, Diamonds), "KD"},
		{New(Two, Clubs), "2C"},
		{New(Jack, Spades), "JS"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.card.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestPointValue(t *testing.T) {
	for _, r := range Ranks() {
		c := New(r, Hearts)
		var expected int
		switch r {
		case Jack, Queen, King:
			expected = 10
		case Ace:
			expected = 11
		default:
			expected = int(r) + 2
		}
		if got := c.PointValue(); got != expected {
			t.Errorf("%s: expected %d points, got %d", c.Name(), expected, got)
		}
		if c.IsAce() != (r == Ace) {
			t.Errorf("%s: IsAce returned %v", c.Name(), c.IsAce())
		}
	}

	if New(Seven, Clubs).PointValue() != 7 {
		t.Errorf("seven should be worth 7")
	}
}

func TestName(t *testing.T) {
	if got := New(Ace, Hearts).Name(); got != "Ace of Hearts" {
		t.Errorf("expected %q, got %q", "Ace of Hearts", got)
	}
	if got := New(Ten, Clubs).Name(); got != "Ten of Clubs" {
		t.Errorf("expected %q, got %q", "Ten of Clubs", got)
	}
}

func TestParse(t *testing.T) {
	for _, s := range Suits() {
		for _, r := range Ranks() {
			c := New(r, s)
			parsed, err := Parse(c.String())
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", c.String(), err)
			}
			if parsed != c {
				t.Errorf("Parse(%q) = %v, want %v", c.String(), parsed, c)
			}
		}
	}

	if c, err := Parse(" 10d "); err != nil || c != New(Ten, Diamonds) {
		t.Errorf("Parse(\" 10d \") = %v, %v", c, err)
	}

	for _, bad := range []string{"", "A", "1H", "11S", "AX", "ZZ", "10"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) should fail", bad)
		}
	}
}

func TestSuitColor(t *testing.T) {
	if !Hearts.Red() || !Diamonds.Red() {
		t.Errorf("hearts and diamonds should be red")
	}
	if Spades.Red() || Clubs.Red() {
		t.Errorf("spades and clubs should not be red")
	}
}
