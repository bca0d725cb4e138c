package game_test

import (
	"errors"
	"testing"

	"github.com/notnil/chess"

	"github.com/chatmate/chatmate/pkg/game"
)

// Two white knights on b1 and f1 can both reach d2.
const twoKnightsFEN = "4k3/8/8/8/8/8/4K3/1N3N2 w - - 0 1"

func oracleFromFEN(t *testing.T, fen string) *game.Oracle {
	t.Helper()
	oracle, err := game.OracleFromFEN(fen)
	if err != nil {
		t.Fatalf("fen %q: %v", fen, err)
	}
	return oracle
}

// TestResolve_RoundTrip verifies that the engine's own encoding of
// every legal move resolves back to exactly that move, in the starting
// position and in a busy middlegame one.
func TestResolve_RoundTrip(t *testing.T) {
	positions := []*game.Oracle{
		game.NewOracle(),
		oracleFromFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"),
		oracleFromFEN(t, "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1"), // promotions
	}

	notation := chess.AlgebraicNotation{}
	for _, oracle := range positions {
		pos := oracle.Position()
		for _, move := range oracle.ValidMoves() {
			san := notation.Encode(pos, move)

			got, err := oracle.Resolve(san)
			if err != nil {
				t.Fatalf("resolve %q: %v", san, err)
			}
			if got.String() != move.String() {
				t.Fatalf("resolve %q: got %v, want %v", san, got, move)
			}
		}
	}
}

// TestResolve_InvalidSyntax verifies tokens that are not SAN-shaped at
// all are classified as such.
func TestResolve_InvalidSyntax(t *testing.T) {
	oracle := game.NewOracle()
	for _, token := range []string{"banana", "zzz", "9x9", ""} {
		if _, err := oracle.Resolve(token); !errors.Is(err, game.ErrInvalidSyntax) {
			t.Fatalf("resolve %q: got %v, want ErrInvalidSyntax", token, err)
		}
	}
}

// TestResolve_Illegal verifies well-formed tokens that denote no legal
// move in the position are classified as illegal.
func TestResolve_Illegal(t *testing.T) {
	oracle := game.NewOracle()
	for _, token := range []string{"e5", "Ke2", "Qh5", "O-O"} {
		if _, err := oracle.Resolve(token); !errors.Is(err, game.ErrIllegal) {
			t.Fatalf("resolve %q: got %v, want ErrIllegal", token, err)
		}
	}
}

// TestResolve_Ambiguous verifies a token matching the shape of two
// legal moves is rejected as ambiguous, and that the disambiguated
// token then resolves.
func TestResolve_Ambiguous(t *testing.T) {
	oracle := oracleFromFEN(t, twoKnightsFEN)

	if _, err := oracle.Resolve("Nd2"); !errors.Is(err, game.ErrAmbiguous) {
		t.Fatalf("resolve Nd2: got %v, want ErrAmbiguous", err)
	}

	move, err := oracle.Resolve("Nbd2")
	if err != nil {
		t.Fatalf("resolve Nbd2: %v", err)
	}
	if move.String() != "b1d2" {
		t.Fatalf("resolve Nbd2: got %v, want b1d2", move)
	}
}

// TestResolve_CastlingVariants verifies the zero and lowercase castling
// spellings all resolve to the same move.
func TestResolve_CastlingVariants(t *testing.T) {
	for _, token := range []string{"O-O", "0-0", "o-o"} {
		oracle := oracleFromFEN(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")

		move, err := oracle.Resolve(token)
		if err != nil {
			t.Fatalf("resolve %q: %v", token, err)
		}
		if move.String() != "e1g1" {
			t.Fatalf("resolve %q: got %v, want e1g1", token, move)
		}
	}
}

// TestResolve_CheckSuffix verifies the check suffix carries no weight:
// the token resolves with and without it.
func TestResolve_CheckSuffix(t *testing.T) {
	for _, token := range []string{"Rh8", "Rh8+"} {
		oracle := oracleFromFEN(t, "4k3/8/8/8/8/8/4K3/7R w - - 0 1")

		move, err := oracle.Resolve(token)
		if err != nil {
			t.Fatalf("resolve %q: %v", token, err)
		}
		if move.String() != "h1h8" {
			t.Fatalf("resolve %q: got %v, want h1h8", token, move)
		}
	}
}
