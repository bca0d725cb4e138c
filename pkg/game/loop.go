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
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/notnil/chess"

	"github.com/chatmate/chatmate/pkg/llm"
	"github.com/chatmate/chatmate/pkg/render"
)

// SessionConfig wires a Session together.
type SessionConfig struct {
	Human chess.Color // side the operator plays for the whole session
	Tries int         // model retry budget per turn
	FEN   string      // starting position, standard when empty

	Client llm.Client

	Input  io.Reader
	Output io.Writer
}

// Session drives a single game: it alternates the negotiators by side
// to move, applies accepted moves to the board, renders between plies
// and reports the outcome relative to the operator's side.
type Session struct {
	config SessionConfig

	oracle *Oracle
	human  *HumanNegotiator
}

func NewSession(config SessionConfig) (*Session, error) {
	oracle := NewOracle()
	if config.FEN != "" {
		var err error
		if oracle, err = OracleFromFEN(config.FEN); err != nil {
			return nil, err
		}
	}

	return &Session{
		config: config,
		oracle: oracle,
		human:  NewHumanNegotiator(config.Input, config.Output),
	}, nil
}

// Oracle exposes the session's board state read-only.
func (session *Session) Oracle() *Oracle {
	return session.oracle
}

// Run plays the game to completion. It returns ErrQuit when the
// operator leaves and the transport's error when a model request fails;
// a finished game returns nil after the outcome is reported.
func (session *Session) Run(ctx context.Context) error {
	out := session.config.Output

	session.render()
	for !session.oracle.GameOver() {
		// The side to move picks the negotiator, so a custom starting
		// position never hands the operator's turn to the model.
		if session.oracle.SideToMove() == session.config.Human {
			if err := session.humanPly(); err != nil {
				return err
			}
			session.render()
			continue
		}

		result, err := NegotiateAI(ctx, session.oracle, session.config.Client, session.config.Tries, out)
		if err != nil {
			return err
		}

		if result.Abstained() {
			// The pieces are left untouched and the turn goes
			// straight back to the operator.
			fmt.Fprintln(out, result.Reason)
			if err := session.oracle.Pass(); err != nil {
				return err
			}
		} else if err := session.oracle.Apply(result.Move); err != nil {
			return err
		}

		session.render()
		if result.Explanation != "" {
			fmt.Fprintln(out)
			fmt.Fprintln(out, result.Explanation)
		}
	}

	session.reportOutcome()
	return nil
}

func (session *Session) humanPly() error {
	move, err := session.human.Negotiate(session.oracle)
	if err != nil {
		return err
	}

	return session.oracle.Apply(move)
}

func (session *Session) render() {
	fmt.Fprintln(session.config.Output)
	fmt.Fprintln(session.config.Output, render.Board(session.oracle.Position()))
}

func (session *Session) reportOutcome() {
	out := session.config.Output
	fmt.Fprintln(out)

	winner, decisive := session.oracle.Winner()
	switch {
	case !decisive:
		fmt.Fprintln(out, "It's a draw.")
	case winner == session.config.Human:
		color.New(color.FgGreen).Fprintln(out, "You won!")
	default:
		color.New(color.FgRed).Fprintln(out, "You lost.")
	}
}
