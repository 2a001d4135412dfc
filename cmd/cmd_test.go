package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arcanaland/blackjack-solitaire/internal/config"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvSeed, "")
	t.Setenv(config.EnvColor, "")

	var out bytes.Buffer
	RootCmd.SetIn(strings.NewReader(input))
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "config.toml")}, args...))

	err := RootCmd.Execute()
	return out.String(), err
}

func TestPlayScriptedGame(t *testing.T) {
	cards := "2H,3H,4H,5H,6H,7H,8H,9H,2S,3S,4S,5S,6S,7S,8S,9S"
	input := "oops\n1\n2 3\n3\n4\n5\n6\n7\n8\n9\n10\n11\n12\n13\n14\n15\n16\n"

	out, err := execute(t, input, "play", "--no-color", "--cards", cards)
	if err != nil {
		t.Fatalf("play failed: %v\n%s", err, out)
	}

	if !strings.Contains(out, "Incorrect input. Try again to enter an integer from 1 to 20:") {
		t.Errorf("expected a re-prompt for the bad token")
	}
	if !strings.Contains(out, "Cell number 3 is full. Enter the number of a free cell:") {
		t.Errorf("expected a re-prompt for the occupied cell")
	}
	if got := strings.Count(out, "Card from the deck:"); got != 16 {
		t.Errorf("expected 16 draws, got %d", got)
	}

	// columns 1 and 5 score 1, row 1 has 20 points (5), row 3 has 15 (1)
	ending := "Score: 8\n" + strings.Repeat("=", 56) + "\nGame over. Thanks for participating.\n"
	if !strings.HasSuffix(out, ending) {
		t.Errorf("unexpected ending:\n%s", out[max(0, len(out)-200):])
	}
}

func TestPlayShortScriptedDeck(t *testing.T) {
	_, err := execute(t, "1\n2\n", "play", "--no-color", "--cards", "2H,3H")
	if err == nil || !strings.Contains(err.Error(), "deck is empty") {
		t.Errorf("expected an empty deck error, got %v", err)
	}
}

func TestPlayInputClosed(t *testing.T) {
	_, err := execute(t, "", "play", "--no-color", "--cards", "2H,3H")
	if err == nil || !strings.Contains(err.Error(), "game abandoned") {
		t.Errorf("expected the game to be abandoned, got %v", err)
	}
}

func TestLayoutCommand(t *testing.T) {
	out, err := execute(t, "", "layout")
	if err != nil {
		t.Fatalf("layout failed: %v", err)
	}

	for _, line := range []string{
		"  1: 1 6\n",
		"  2: 2 7 11 14\n",
		"  5: 5 10\n",
		"  3: 11 12 13\n",
		"Discard: 17-20\n",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("missing %q in:\n%s", line, out)
		}
	}
}

func TestShowCommand(t *testing.T) {
	out, err := execute(t, "", "show", "ah")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(out, "Ace of Hearts") || !strings.Contains(out, "11 (or 1") {
		t.Errorf("unexpected card info:\n%s", out)
	}

	if _, err := execute(t, "", "show", "1Z"); err == nil {
		t.Errorf("expected an error for an unknown card")
	}
}
