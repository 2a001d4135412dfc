package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"k8s.io/klog/v2"

	"github.com/arcanaland/blackjack-solitaire/internal/card"
	"github.com/arcanaland/blackjack-solitaire/internal/deck"
	"github.com/arcanaland/blackjack-solitaire/internal/desk"
	"github.com/arcanaland/blackjack-solitaire/internal/score"
)

// ErrDeckEmpty is returned when the deck runs out before the desk is full
var ErrDeckEmpty = errors.New("deck is empty")

// State is the stage of a game
type State int

const (
	Setup State = iota
	DrawPending
	AwaitPlacement
	PlacedAndScored
	Complete
)

func (s State) String() string {
	switch s {
	case Setup:
		return "setup"
	case DrawPending:
		return "draw pending"
	case AwaitPlacement:
		return "await placement"
	case PlacedAndScored:
		return "placed and scored"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Placer chooses where a drawn card goes. It must return a destination
// that is free on b.
type Placer interface {
	Destination(c card.Card, b *desk.Board) (int, error)
}

// PlacerFunc adapts a function to a Placer
type PlacerFunc func(c card.Card, b *desk.Board) (int, error)

func (f PlacerFunc) Destination(c card.Card, b *desk.Board) (int, error) {
	return f(c, b)
}

// Renderer reports the progress of a game
type Renderer interface {
	// Drawn is called with every card taken from the deck
	Drawn(c card.Card)
	// Board is called at the start and after every placement
	Board(l *desk.Layout, b *desk.Board)
	// Score is called after every placement
	Score(r score.Result)
	// Finish is called once the desk is full
	Finish(r score.Result)
}

// Move records one placement
type Move struct {
	Card        card.Card
	Destination int
	Total       int
}

// Engine runs a single game. It owns the layout, the board and the deck.
type Engine struct {
	id       uuid.UUID
	layout   *desk.Layout
	board    *desk.Board
	deck     *deck.Deck
	placer   Placer
	renderer Renderer
	state    State
	moves    []Move
	result   score.Result
}

// New creates a game drawing from d. The deck is used in its current
// order, so callers shuffle it first.
func New(d *deck.Deck, p Placer, r Renderer) *Engine {
	return &Engine{
		id:       uuid.New(),
		layout:   desk.NewLayout(),
		board:    desk.NewBoard(),
		deck:     d,
		placer:   p,
		renderer: r,
		state:    Setup,
	}
}

// ID returns the identifier of the game
func (e *Engine) ID() uuid.UUID {
	return e.id
}

// State returns the current stage of the game
func (e *Engine) State() State {
	return e.state
}

// Layout returns the desk layout
func (e *Engine) Layout() *desk.Layout {
	return e.layout
}

// Board returns the board of the game
func (e *Engine) Board() *desk.Board {
	return e.board
}

// Moves returns the placements made so far
func (e *Engine) Moves() []Move {
	return append([]Move(nil), e.moves...)
}

// Result returns the latest score
func (e *Engine) Result() score.Result {
	return e.result
}

// Play draws and places cards until every game cell holds a card, then
// returns the final score. Cards sent to the discard slots do not count
// towards filling the desk.
func (e *Engine) Play() (score.Result, error) {
	if e.state != Setup {
		return e.result, fmt.Errorf("game %s already started (%s)", e.id, e.state)
	}

	klog.V(1).Infof("game %s: starting with %d cards in the deck", e.id, e.deck.Len())
	e.renderer.Board(e.layout, e.board)

	for !e.board.CellsFull() {
		if err := e.step(); err != nil {
			return e.result, err
		}
	}

	e.state = Complete
	klog.V(1).Infof("game %s: complete after %d moves, score %d", e.id, len(e.moves), e.result.Total)
	e.renderer.Finish(e.result)

	return e.result, nil
}

func (e *Engine) step() error {
	e.state = DrawPending
	c, ok := e.deck.Next()
	if !ok {
		return fmt.Errorf("game %s: %w after %d moves", e.id, ErrDeckEmpty, len(e.moves))
	}
	e.renderer.Drawn(c)

	e.state = AwaitPlacement
	dest, err := e.placer.Destination(c, e.board)
	if err != nil {
		return fmt.Errorf("game %s: choosing a cell for %s: %w", e.id, c, err)
	}
	if err := e.board.Place(dest, c); err != nil {
		return fmt.Errorf("game %s: placing %s: %w", e.id, c, err)
	}

	e.state = PlacedAndScored
	e.result = score.Evaluate(e.layout, e.board)
	e.moves = append(e.moves, Move{Card: c, Destination: dest, Total: e.result.Total})
	klog.V(1).Infof("game %s: placed %s at %d, score %d", e.id, c, dest, e.result.Total)

	e.renderer.Board(e.layout, e.board)
	e.renderer.Score(e.result)

	return nil
}
