package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arcanaland/blackjack-solitaire/internal/card"
	"github.com/arcanaland/blackjack-solitaire/internal/desk"
	"github.com/arcanaland/blackjack-solitaire/internal/score"
)

// GameOverMessage is printed when the desk is full
const GameOverMessage = "Game over. Thanks for participating."

var separator = strings.Repeat("=", 56)

// Renderer prints the game to a text stream
type Renderer struct {
	out       io.Writer
	theme     *Theme
	breakdown bool
}

// NewRenderer creates a renderer writing to w. When breakdown is set, the
// score of every line is printed along with the total.
func NewRenderer(w io.Writer, theme *Theme, breakdown bool) *Renderer {
	if theme == nil {
		theme = &Theme{}
	}
	return &Renderer{
		out:       w,
		theme:     theme,
		breakdown: breakdown,
	}
}

// Drawn prints the card taken from the deck
func (r *Renderer) Drawn(c card.Card) {
	fmt.Fprintf(r.out, "Card from the deck: %s\n", r.theme.Card(c))
}

// Board prints the game desk followed by the discard slots
func (r *Renderer) Board(l *desk.Layout, b *desk.Board) {
	var sb strings.Builder

	sb.WriteString("Game desk:\n")
	for j := 0; j < desk.NumRows; j++ {
		for i := 0; i < desk.NumColumns; i++ {
			n, ok := l.CellAt(i, j)
			if !ok {
				sb.WriteString("\t")
				continue
			}
			if c, ok := b.Cell(n); ok {
				sb.WriteString(r.theme.Card(c))
			} else {
				sb.WriteString(strconv.Itoa(n))
			}
			sb.WriteString("\t")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Discard:\n")
	for i := 1; i <= desk.NumDiscards; i++ {
		if c, ok := b.Discard(i); ok {
			sb.WriteString(r.theme.Card(c))
		} else {
			sb.WriteString(strconv.Itoa(desk.NumCells + i))
		}
		sb.WriteString("\t")
	}
	sb.WriteString("\n")

	io.WriteString(r.out, sb.String())
}

// Score prints the current total and a separator
func (r *Renderer) Score(res score.Result) {
	fmt.Fprintf(r.out, "Score: %d\n", res.Total)
	if r.breakdown {
		fmt.Fprintln(r.out, Breakdown(res))
	}
	fmt.Fprintln(r.out, separator)
}

// Finish prints the closing message
func (r *Renderer) Finish(res score.Result) {
	if r.breakdown {
		fmt.Fprintf(r.out, "Final score: %d\n", res.Total)
	}
	fmt.Fprintln(r.out, GameOverMessage)
}

// Breakdown formats the score of every column and row
func Breakdown(res score.Result) string {
	return fmt.Sprintf("Columns: %s  Rows: %s", joinInts(res.Columns), joinInts(res.Rows))
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
