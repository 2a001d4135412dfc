package deck

import (
	"math/rand"
	"testing"

	"github.com/arcanaland/blackjack-solitaire/internal/card"
)

func TestNewDeckIsComplete(t *testing.T) {
	d := New()
	if d.Len() != Size {
		t.Fatalf("expected %d cards, got %d", Size, d.Len())
	}

	seen := make(map[card.Card]bool)
	for _, c := range d.Cards() {
		if seen[c] {
			t.Errorf("duplicate card %s", c)
		}
		seen[c] = true
	}

	for _, s := range card.Suits() {
		for _, r := range card.Ranks() {
			if !seen[card.New(r, s)] {
				t.Errorf("missing card %s", card.New(r, s))
			}
		}
	}
}

func TestNextUntilEmpty(t *testing.T) {
	d := New()
	first := d.Cards()[0]

	c, ok := d.Next()
	if !ok || c != first {
		t.Fatalf("expected first card %s, got %s (ok=%v)", first, c, ok)
	}

	for i := 1; i < Size; i++ {
		if _, ok := d.Next(); !ok {
			t.Fatalf("deck ran out after %d cards", i)
		}
	}

	if d.Len() != 0 {
		t.Errorf("expected empty deck, %d cards left", d.Len())
	}
	if _, ok := d.Next(); ok {
		t.Errorf("Next on an empty deck should report no card")
	}
	if _, ok := d.Next(); ok {
		t.Errorf("Next on an empty deck should keep reporting no card")
	}
}

func TestSeededShuffleIsDeterministic(t *testing.T) {
	a, b := New(), New()
	a.Shuffle(rand.New(rand.NewSource(42)))
	b.Shuffle(rand.New(rand.NewSource(42)))

	ca, cb := a.Cards(), b.Cards()
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("position %d differs: %s vs %s", i, ca[i], cb[i])
		}
	}

	// a shuffle keeps every card
	seen := make(map[card.Card]bool)
	for _, c := range ca {
		seen[c] = true
	}
	if len(seen) != Size {
		t.Errorf("expected %d distinct cards after shuffle, got %d", Size, len(seen))
	}

	c := New()
	c.Shuffle(rand.New(rand.NewSource(7)))
	same := true
	for i, x := range c.Cards() {
		if x != ca[i] {
			same = false
			break
		}
	}
	if same {
		t.Errorf("different seeds produced the same order")
	}
}

func TestFromCodes(t *testing.T) {
	d, err := FromCodes([]string{"AH", "10s", "kd"})
	if err != nil {
		t.Fatalf("FromCodes failed: %v", err)
	}

	expected := []card.Card{
		card.New(card.Ace, card.Hearts),
		card.New(card.Ten, card.Spades),
		card.New(card.King, card.Diamonds),
	}
	for _, want := range expected {
		got, ok := d.Next()
		if !ok || got != want {
			t.Errorf("expected %s, got %s (ok=%v)", want, got, ok)
		}
	}

	if _, err := FromCodes([]string{"AH", "ah"}); err == nil {
		t.Errorf("duplicate cards should be rejected")
	}
	if _, err := FromCodes([]string{"XX"}); err == nil {
		t.Errorf("unknown codes should be rejected")
	}
}
