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

// Package render draws a position as a fixed 8x8 unicode grid for the
// terminal.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/notnil/chess"
)

const (
	numRanks = 8
	numFiles = 8
)

const (
	topBorder    = " ┌───┬───┬───┬───┬───┬───┬───┬───┐"
	midBorder    = " ├───┼───┼───┼───┼───┼───┼───┼───┤"
	bottomBorder = " └───┴───┴───┴───┴───┴───┴───┴───┘"
	fileLabels   = "   a   b   c   d   e   f   g   h"
)

var labelColor = color.New(color.FgCyan)

// Board renders the position with rank and file labels. The grid is
// flipped when black is to move, so the side about to play reads the
// board from its own perspective.
func Board(pos *chess.Position) string {
	board := pos.Board()

	var lines []string
	for i := 0; i < numRanks; i++ {
		rank := numRanks - i - 1

		row := make([]string, numFiles)
		for file := 0; file < numFiles; file++ {
			row[file] = glyph(board.Piece(chess.Square(rank*8 + file)))
		}

		line := fmt.Sprintf("%s│ %s │", labelColor.Sprint(rank+1), strings.Join(row, " │ "))
		lines = append(lines, line)
		if i < numRanks-1 {
			lines = append(lines, midBorder)
		}
	}

	if pos.Turn() == chess.Black {
		reverse(lines)
	}

	lines = append([]string{topBorder}, lines...)
	lines = append(lines, bottomBorder, labelColor.Sprint(fileLabels))
	return strings.Join(lines, "\n")
}

// glyph returns the unicode figure for a piece, or a space for an empty
// square.
func glyph(piece chess.Piece) string {
	if piece == chess.NoPiece {
		return " "
	}

	r, _ := utf8.DecodeRuneInString(piece.String())
	return string(r)
}

func reverse(lines []string) {
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
}
