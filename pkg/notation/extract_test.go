package notation_test

import (
	"errors"
	"testing"

	"github.com/chatmate/chatmate/pkg/notation"
)

// TestExtract_MoveThenProse verifies only the first-line move is taken
// and the commentary after it is never consumed as part of the move.
func TestExtract_MoveThenProse(t *testing.T) {
	token, err := notation.Extract("e5\nGood central response.")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if token != "e5" {
		t.Fatalf("got %q, want e5", token)
	}
}

// TestExtract_MoveInsideSentence verifies a move is found even when the
// model wraps it in prose.
func TestExtract_MoveInsideSentence(t *testing.T) {
	token, err := notation.Extract("I would play Nf3 here.")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if token != "Nf3" {
		t.Fatalf("got %q, want Nf3", token)
	}
}

// TestExtract_Castling covers the case and zero variants of castling.
func TestExtract_Castling(t *testing.T) {
	for text, want := range map[string]string{
		"O-O":              "O-O",
		"O-O-O and attack": "O-O-O",
		"0-0":              "0-0",
		"o-o-o":            "o-o-o",
	} {
		token, err := notation.Extract(text)
		if err != nil {
			t.Fatalf("extract %q: %v", text, err)
		}
		if token != want {
			t.Fatalf("extract %q: got %q, want %q", text, token, want)
		}
	}
}

// TestExtract_SuffixesAndPromotion covers captures, promotions and
// check/mate suffixes.
func TestExtract_SuffixesAndPromotion(t *testing.T) {
	for text, want := range map[string]string{
		"Qxe4+":    "Qxe4+",
		"e8=Q#":    "e8=Q#",
		"exd5":     "exd5",
		"Rad1 wat": "Rad1",
	} {
		token, err := notation.Extract(text)
		if err != nil {
			t.Fatalf("extract %q: %v", text, err)
		}
		if token != want {
			t.Fatalf("extract %q: got %q, want %q", text, token, want)
		}
	}
}

// TestExtract_ResultAnnotation verifies a trailing result string is
// tolerated but kept out of the move token.
func TestExtract_ResultAnnotation(t *testing.T) {
	token, err := notation.Extract("Qh4# 1-0")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if token != "Qh4#" {
		t.Fatalf("got %q, want Qh4#", token)
	}
}

// TestExtract_NoMove verifies text without any move fails with
// ErrNoMatch, including a bare result string.
func TestExtract_NoMove(t *testing.T) {
	for _, text := range []string{"I resign.", "1/2-1/2", ""} {
		if _, err := notation.Extract(text); !errors.Is(err, notation.ErrNoMatch) {
			t.Fatalf("extract %q: got %v, want ErrNoMatch", text, err)
		}
	}
}

// TestExplanation_DropsFirstLineAndBlanks verifies the commentary is
// the response minus its first line and minus blank lines, otherwise
// verbatim.
func TestExplanation_DropsFirstLineAndBlanks(t *testing.T) {
	text := "e5\n\nGood central response.\n\nIt contests the center."
	want := "Good central response.\nIt contests the center."
	if got := notation.Explanation(text); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// TestExplanation_SingleLine verifies a bare move has no commentary.
func TestExplanation_SingleLine(t *testing.T) {
	if got := notation.Explanation("e5"); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}
