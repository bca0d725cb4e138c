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

package game

import (
	"errors"
	"regexp"
	"strings"

	"github.com/notnil/chess"
)

var (
	ErrInvalidSyntax = errors.New("game: not valid standard algebraic notation")
	ErrIllegal       = errors.New("game: move is illegal in this position")
	ErrAmbiguous     = errors.New("game: move matches more than one legal move")
)

// Shape of one complete token in standard algebraic notation.
var sanShape = regexp.MustCompile(
	`^([Oo0](-[Oo0]){1,2}|[KQRBN]?[a-h]?[1-8]?x?[a-h][1-8](=[QRBN])?)[+#]?$`,
)

// An encoded piece move split around its disambiguation hint: the file
// and/or rank squeezed between the piece letter and the destination
// (Nbd2, R1e2).
var sanHint = regexp.MustCompile(`^([KQRBN])([a-h]|[1-8]|[a-h][1-8])(x?[a-h][1-8])$`)

var castleShape = regexp.MustCompile(`^[Oo0](-[Oo0]){1,2}$`)

// Resolve turns a candidate token into a legal move for the current
// position, or classifies the failure as invalid syntax, illegal or
// ambiguous. Candidates are matched against the engine's own encodings
// of the legal moves, so any move the engine would print round-trips
// back to itself.
func (oracle *Oracle) Resolve(token string) (*chess.Move, error) {
	if !sanShape.MatchString(token) {
		return nil, ErrInvalidSyntax
	}

	// Check and mate suffixes carry no information the position does
	// not already hold; drop them before matching.
	token = normalize(strings.TrimRight(token, "+#"))

	pos := oracle.game.Position()
	notation := chess.AlgebraicNotation{}

	// Legal moves whose encoding matches the token once their
	// disambiguation hint is removed. More than one of these without
	// an exact match means the token is ambiguous.
	var shaped []*chess.Move

	for _, move := range oracle.game.ValidMoves() {
		san := strings.TrimRight(notation.Encode(pos, move), "+#")
		if san == token {
			return move, nil
		}

		if hint := sanHint.FindStringSubmatch(san); hint != nil && hint[1]+hint[3] == token {
			shaped = append(shaped, move)
		}
	}

	switch len(shaped) {
	case 0:
		return nil, ErrIllegal
	case 1:
		// The engine over-disambiguated relative to the token; the
		// move is still unique.
		return shaped[0], nil
	default:
		return nil, ErrAmbiguous
	}
}

// normalize canonicalizes the zero and lowercase castling variants to
// the O-O form the engine encodes.
func normalize(token string) string {
	if !castleShape.MatchString(token) {
		return token
	}

	if strings.Count(token, "-") == 2 {
		return "O-O-O"
	}
	return "O-O"
}
