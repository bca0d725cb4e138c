package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/notnil/chess"
)

// ErrQuit is returned when the operator asks to leave the game. It is
// propagated up through the negotiator and game-loop layers instead of
// exiting the process from inside an input loop.
var ErrQuit = errors.New("game: user requested exit")

// QuitKeyword leaves the session immediately, at any prompt.
const QuitKeyword = "quit"

// HumanNegotiator obtains one legal move per turn from the operator,
// reprompting without bound until the input resolves. Unlike the model,
// the operator can always eventually supply a correct move.
type HumanNegotiator struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHumanNegotiator(in io.Reader, out io.Writer) *HumanNegotiator {
	return &HumanNegotiator{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Negotiate prompts for moves until one is legal in the current
// position. It returns ErrQuit on the quit keyword or when the input
// stream ends.
func (human *HumanNegotiator) Negotiate(oracle *Oracle) (*chess.Move, error) {
	fmt.Fprint(human.out, "\nYour next move: ")

	for {
		if !human.scanner.Scan() {
			// A broken input stream is an I/O failure, not a quit.
			if err := human.scanner.Err(); err != nil {
				return nil, err
			}
			return nil, ErrQuit
		}

		token := strings.TrimSpace(human.scanner.Text())
		if token == QuitKeyword {
			return nil, ErrQuit
		}

		move, err := oracle.Resolve(token)
		switch {
		case errors.Is(err, ErrInvalidSyntax):
			fmt.Fprint(human.out, "Not valid standard algebraic chess notation. Try again: ")
		case errors.Is(err, ErrIllegal):
			fmt.Fprint(human.out, "This move is illegal. Try again: ")
		case errors.Is(err, ErrAmbiguous):
			fmt.Fprint(human.out, "This move is ambiguous. Also state piece to move: ")
		case err != nil:
			return nil, err
		default:
			return move, nil
		}
	}
}
