package score

import (
	"k8s.io/klog/v2"

	"github.com/arcanaland/blackjack-solitaire/internal/card"
	"github.com/arcanaland/blackjack-solitaire/internal/desk"
)

// Blackjack is the best possible point total of a line
const Blackjack = 21

// Result holds the score of every line of the desk
type Result struct {
	Columns []int
	Rows    []int
	Total   int
}

// Points sums the point values of cards. Aces are softened from 11 to 1,
// one at a time, while the total is over 21.
func Points(cards []card.Card) int {
	points := 0
	aces := 0

	for _, c := range cards {
		points += c.PointValue()
		if c.IsAce() {
			aces++
		}
	}

	for points > Blackjack && aces > 0 {
		points -= 10
		aces--
	}

	return points
}

// FromPoints converts the points of a line into its score. cellCount is the
// length of the line; only a 21 made in exactly two cells counts as a
// natural blackjack.
func FromPoints(points, cellCount int) int {
	switch {
	case points > 0 && points <= 16:
		return 1
	case points == 17:
		return 2
	case points == 18:
		return 3
	case points == 19:
		return 4
	case points == 20:
		return 5
	case points == Blackjack && cellCount == 2:
		return 10
	case points == Blackjack:
		return 7
	default:
		return 0
	}
}

// Line scores the cards on one line of the desk
func Line(cards []card.Card, cellCount int) int {
	return FromPoints(Points(cards), cellCount)
}

// Evaluate scores every column and row of the board. Empty cells are
// ignored, so a partly filled board can be scored.
//
// Rows are always scored with a cell count of 0 and never earn the
// natural blackjack bonus, even the ones that could hold two cards.
func Evaluate(l *desk.Layout, b *desk.Board) Result {
	r := Result{
		Columns: make([]int, 0, desk.NumColumns),
		Rows:    make([]int, 0, desk.NumRows),
	}

	for i, col := range l.Columns() {
		cs := b.Cards(col)
		s := Line(cs, len(col))
		klog.V(2).Infof("column %d: %v scores %d", i+1, cs, s)
		r.Columns = append(r.Columns, s)
		r.Total += s
	}

	for j, row := range l.Rows() {
		cs := b.Cards(row)
		s := Line(cs, 0)
		klog.V(2).Infof("row %d: %v scores %d", j+1, cs, s)
		r.Rows = append(r.Rows, s)
		r.Total += s
	}

	return r
}
