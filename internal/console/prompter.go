package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"k8s.io/klog/v2"

	"github.com/arcanaland/blackjack-solitaire/internal/card"
	"github.com/arcanaland/blackjack-solitaire/internal/desk"
)

// ErrInputClosed is returned when the input ends before a valid cell number
// was entered
var ErrInputClosed = errors.New("input closed")

const promptMessage = "Please enter a free cell number" +
	"(from 1 to 16 - numbers of game cells and from 17 to 20 - numbers of cells for discarded cards):"

const incorrectInputMessage = "Incorrect input. Try again to enter an integer from 1 to 20:"

// Prompter asks the player where to put each card. Input is read as
// whitespace separated tokens; a token that is not an integer discards the
// rest of its line.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	pending []string
}

// NewPrompter creates a prompter reading from r and writing prompts to w
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(r),
		out:     w,
	}
}

// Destination prompts until the player enters a free destination on b
func (p *Prompter) Destination(c card.Card, b *desk.Board) (int, error) {
	fmt.Fprintln(p.out, promptMessage)

	for {
		tok, err := p.token()
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(tok)
		if err != nil {
			klog.V(2).Infof("rejected input %q: %v", tok, err)
			fmt.Fprintln(p.out, incorrectInputMessage)
			p.pending = nil
			continue
		}

		switch {
		case n < 1 || n > desk.MaxDestination:
			fmt.Fprintln(p.out, incorrectInputMessage)
		case !b.Free(n) && desk.IsDiscard(n):
			fmt.Fprintf(p.out, "Trash cell number %d is full. Enter the number of a free trash cell:\n", n)
		case !b.Free(n):
			fmt.Fprintf(p.out, "Cell number %d is full. Enter the number of a free cell:\n", n)
		default:
			return n, nil
		}
	}
}

func (p *Prompter) token() (string, error) {
	for len(p.pending) == 0 {
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return "", fmt.Errorf("error reading input: %w", err)
			}
			return "", ErrInputClosed
		}
		p.pending = strings.Fields(p.scanner.Text())
	}

	tok := p.pending[0]
	p.pending = p.pending[1:]
	return tok, nil
}
