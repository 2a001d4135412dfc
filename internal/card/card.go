package card

import (
	"fmt"
	"strings"
)

// Rank is the rank of a playing card
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = [...]string{
	"Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten",
	"Jack", "Queen", "King", "Ace",
}

// Value returns the blackjack point value of the rank. Aces count 11 here,
// softening to 1 is left to scoring.
func (r Rank) Value() int {
	switch {
	case r >= Two && r <= Ten:
		return int(r) + 2
	case r == Jack || r == Queen || r == King:
		return 10
	case r == Ace:
		return 11
	default:
		return 0
	}
}

// Symbol returns the short form used in the card code
func (r Rank) Symbol() string {
	if r >= Jack && r <= Ace {
		return rankNames[r][:1]
	}
	return fmt.Sprint(r.Value())
}

func (r Rank) String() string {
	if r < Two || r > Ace {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Suit is the suit of a playing card
type Suit int

const (
	Hearts Suit = iota
	Spades
	Diamonds
	Clubs
)

var suitNames = [...]string{"Hearts", "Spades", "Diamonds", "Clubs"}

// Code returns the one letter suit code (H, S, D, C)
func (s Suit) Code() string {
	if s < Hearts || s > Clubs {
		return "?"
	}
	return suitNames[s][:1]
}

// Red reports whether the suit is printed in red
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

func (s Suit) String() string {
	if s < Hearts || s > Clubs {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Ranks returns all ranks in ascending order
func Ranks() []Rank {
	return []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

// Suits returns all suits in deck generation order
func Suits() []Suit {
	return []Suit{Hearts, Spades, Diamonds, Clubs}
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// New creates a card
func New(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// PointValue returns the blackjack point value of the card
func (c Card) PointValue() int {
	return c.Rank.Value()
}

// IsAce reports whether the card is an ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// String returns the card code, e.g. "AH", "10S" or "KD"
func (c Card) String() string {
	return c.Rank.Symbol() + c.Suit.Code()
}

// Name returns the long name, e.g. "Ace of Hearts"
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Parse parses a card code such as "AH" or "10s"
func Parse(code string) (Card, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) < 2 {
		return Card{}, fmt.Errorf("invalid card code: %q", code)
	}

	symbol, suitCode := code[:len(code)-1], code[len(code)-1:]

	var (
		rank   Rank
		rankOK bool
		suit   Suit
		suitOK bool
	)
	for _, r := range Ranks() {
		if r.Symbol() == symbol {
			rank, rankOK = r, true
			break
		}
	}
	for _, s := range Suits() {
		if s.Code() == suitCode {
			suit, suitOK = s, true
			break
		}
	}

	if !rankOK {
		return Card{}, fmt.Errorf("invalid rank in card code: %q", code)
	}
	if !suitOK {
		return Card{}, fmt.Errorf("invalid suit in card code: %q", code)
	}

	return New(rank, suit), nil
}
