package desk

import (
	"errors"
	"fmt"

	"github.com/arcanaland/blackjack-solitaire/internal/card"
)

var (
	ErrOutOfRange = errors.New("destination out of range")
	ErrOccupied   = errors.New("destination already occupied")
)

type slot struct {
	card card.Card
	used bool
}

// Board holds the game cells and discard slots of one game. Every slot is
// written at most once.
type Board struct {
	cells    [NumCells]slot
	discards [NumDiscards]slot
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{}
}

// Place puts c at destination dest (1-16 game cell, 17-20 discard slot)
func (b *Board) Place(dest int, c card.Card) error {
	s, err := b.slot(dest)
	if err != nil {
		return err
	}
	if s.used {
		return fmt.Errorf("%w: %d", ErrOccupied, dest)
	}

	s.card = c
	s.used = true
	return nil
}

// Free reports whether dest is a valid, empty destination
func (b *Board) Free(dest int) bool {
	s, err := b.slot(dest)
	return err == nil && !s.used
}

// IsDiscard reports whether dest addresses a discard slot
func IsDiscard(dest int) bool {
	return dest > NumCells && dest <= MaxDestination
}

// Cell returns the card in game cell n (1-16)
func (b *Board) Cell(n int) (card.Card, bool) {
	if n < 1 || n > NumCells {
		return card.Card{}, false
	}
	s := b.cells[n-1]
	return s.card, s.used
}

// Discard returns the card in discard slot n (1-4)
func (b *Board) Discard(n int) (card.Card, bool) {
	if n < 1 || n > NumDiscards {
		return card.Card{}, false
	}
	s := b.discards[n-1]
	return s.card, s.used
}

// Cards returns the cards placed in the given cells, in order, skipping
// empty ones
func (b *Board) Cards(cells []int) []card.Card {
	var out []card.Card
	for _, n := range cells {
		if c, ok := b.Cell(n); ok {
			out = append(out, c)
		}
	}
	return out
}

// CellsFull reports whether every game cell holds a card
func (b *Board) CellsFull() bool {
	return b.PlacedCells() == NumCells
}

// PlacedCells returns the number of occupied game cells
func (b *Board) PlacedCells() int {
	return countUsed(b.cells[:])
}

// PlacedDiscards returns the number of occupied discard slots
func (b *Board) PlacedDiscards() int {
	return countUsed(b.discards[:])
}

func (b *Board) slot(dest int) (*slot, error) {
	switch {
	case dest >= 1 && dest <= NumCells:
		return &b.cells[dest-1], nil
	case IsDiscard(dest):
		return &b.discards[dest-NumCells-1], nil
	default:
		return nil, fmt.Errorf("%w: %d (expected 1 to %d)", ErrOutOfRange, dest, MaxDestination)
	}
}

func countUsed(slots []slot) int {
	n := 0
	for _, s := range slots {
		if s.used {
			n++
		}
	}
	return n
}
