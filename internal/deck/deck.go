package deck

import (
	"fmt"

	"github.com/arcanaland/blackjack-solitaire/internal/card"
)

// Size is the number of cards in a full deck
const Size = 52

// Shuffler permutes n elements through swap. *rand.Rand satisfies it, so a
// seeded source replays the same shuffle.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Deck represents an ordered pile of playing cards, drawn from the front
type Deck struct {
	cards []card.Card
}

// New creates a full, unshuffled deck, suit by suit
func New() *Deck {
	d := &Deck{
		cards: make([]card.Card, 0, Size),
	}

	for _, s := range card.Suits() {
		for _, r := range card.Ranks() {
			d.cards = append(d.cards, card.New(r, s))
		}
	}

	return d
}

// FromCodes creates a deck holding exactly the given cards in the given
// order. Codes use the card display form ("AH", "10S").
func FromCodes(codes []string) (*Deck, error) {
	d := &Deck{
		cards: make([]card.Card, 0, len(codes)),
	}
	seen := make(map[card.Card]bool, len(codes))

	for _, code := range codes {
		c, err := card.Parse(code)
		if err != nil {
			return nil, err
		}
		if seen[c] {
			return nil, fmt.Errorf("duplicate card in deck: %s", c)
		}
		seen[c] = true
		d.cards = append(d.cards, c)
	}

	return d, nil
}

// Shuffle arranges the remaining cards in random order
func (d *Deck) Shuffle(s Shuffler) {
	s.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Next removes and returns the front card. The second result is false when
// the deck is empty.
func (d *Deck) Next() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}

	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, true
}

// Len returns the number of cards left
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in draw order
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}
