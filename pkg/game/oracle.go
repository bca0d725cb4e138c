// Copyright © 2024 The Chatmate Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package game implements the turn orchestration between the operator
// and the model: obtaining one legal move per turn from either side,
// applying it to the shared board, and running the game to its end.
package game

import (
	"strings"

	"github.com/notnil/chess"
)

// Oracle wraps the rules engine with the operations the negotiators and
// the game loop need: side to move, move resolution, application, and
// game-over detection. It is the single owner of the board state, which
// is only ever mutated through Apply.
type Oracle struct {
	game *chess.Game
}

func NewOracle() *Oracle {
	return &Oracle{game: chess.NewGame()}
}

func OracleFromFEN(fenstr string) (*Oracle, error) {
	fen, err := chess.FEN(fenstr)
	if err != nil {
		return nil, err
	}

	return &Oracle{game: chess.NewGame(fen)}, nil
}

// SideToMove returns the color whose turn it is.
func (oracle *Oracle) SideToMove() chess.Color {
	return oracle.game.Position().Turn()
}

// Apply pushes a previously resolved move onto the board.
func (oracle *Oracle) Apply(move *chess.Move) error {
	return oracle.game.Move(move)
}

// ValidMoves returns the legal moves in the current position.
func (oracle *Oracle) ValidMoves() []*chess.Move {
	return oracle.game.ValidMoves()
}

// Pass hands the turn to the opponent without a move being played,
// the null-move analog for a turn on which the model abstained. The
// pieces stay where they are; any en passant right is forfeited.
func (oracle *Oracle) Pass() error {
	fields := strings.Fields(oracle.game.Position().String())
	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}
	fields[3] = "-"

	fen, err := chess.FEN(strings.Join(fields, " "))
	if err != nil {
		return err
	}

	oracle.game = chess.NewGame(fen)
	return nil
}

// GameOver reports whether the rules engine has declared a result.
func (oracle *Oracle) GameOver() bool {
	return oracle.game.Outcome() != chess.NoOutcome
}

// Winner returns the winning side at game end. The second return is
// false for a drawn game.
func (oracle *Oracle) Winner() (chess.Color, bool) {
	switch oracle.game.Outcome() {
	case chess.WhiteWon:
		return chess.White, true
	case chess.BlackWon:
		return chess.Black, true
	default:
		return chess.NoColor, false
	}
}

// Method returns how the game ended (checkmate, stalemate, ...).
func (oracle *Oracle) Method() chess.Method {
	return oracle.game.Method()
}

// Position exposes the current position for read-only use, mainly by
// the renderer.
func (oracle *Oracle) Position() *chess.Position {
	return oracle.game.Position()
}

var pieceChars = map[chess.PieceType]byte{
	chess.King:   'K',
	chess.Queen:  'Q',
	chess.Rook:   'R',
	chess.Bishop: 'B',
	chess.Knight: 'N',
	chess.Pawn:   'P',
}

// Grid returns the position as an 8x8 character grid, rank 8 down to
// rank 1, uppercase letters for white pieces, lowercase for black and
// dots for empty squares. This is the representation the model is
// prompted with.
func (oracle *Oracle) Grid() string {
	board := oracle.game.Position().Board()

	var grid strings.Builder
	for rank := 7; rank >= 0; rank-- {
		if rank < 7 {
			grid.WriteByte('\n')
		}

		for file := 0; file < 8; file++ {
			if file > 0 {
				grid.WriteByte(' ')
			}

			piece := board.Piece(chess.Square(rank*8 + file))
			if piece == chess.NoPiece {
				grid.WriteByte('.')
				continue
			}

			char := pieceChars[piece.Type()]
			if piece.Color() == chess.Black {
				char += 'a' - 'A'
			}
			grid.WriteByte(char)
		}
	}

	return grid.String()
}
