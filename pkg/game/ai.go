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
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/notnil/chess"
	"github.com/sirupsen/logrus"

	"github.com/chatmate/chatmate/pkg/llm"
	"github.com/chatmate/chatmate/pkg/notation"
)

const SPIN = 31

// NegotiationResult is the outcome of an AI turn: either a resolved
// move along with the model's commentary, or an abstention after the
// retry budget ran out. A nil Move means the turn produced no move and
// nothing may be applied to the board.
type NegotiationResult struct {
	Move        *chess.Move
	Explanation string
	Reason      string
}

// Abstained reports whether the negotiation produced no move.
func (result NegotiationResult) Abstained() bool {
	return result.Move == nil
}

// NegotiateAI asks the model for a move, giving it maxTries attempts to
// produce one that is legal in the current position. The identical
// prompt is sent on every attempt: the model is not told why a previous
// answer failed. A transport failure is fatal to the negotiation and
// returned as an error instead of consuming an attempt, since "model
// unreachable" and "model gave a bad move" must stay distinguishable.
func NegotiateAI(ctx context.Context, oracle *Oracle, client llm.Client, maxTries int, out io.Writer) (NegotiationResult, error) {
	color := strings.ToLower(oracle.SideToMove().Name())
	prompt := llm.MovePrompt(color, oracle.Grid())

	for try := 0; try < maxTries; try++ {
		reply, err := ask(ctx, client, prompt, out)
		if err != nil {
			return NegotiationResult{}, err
		}

		token, err := notation.Extract(reply)
		if err != nil {
			logrus.WithField("reply", reply).Debug("no move found in model reply")
			continue
		}

		move, err := oracle.Resolve(token)
		if err != nil {
			logrus.WithField("token", token).Debugf("model move rejected: %v", err)
			continue
		}

		return NegotiationResult{
			Move:        move,
			Explanation: notation.Explanation(reply),
		}, nil
	}

	return NegotiationResult{Reason: "AI did not make a valid move."}, nil
}

// ask performs a single model request, spinning on the session's output
// writer while the response is in flight.
func ask(ctx context.Context, client llm.Client, prompt []llm.Message, out io.Writer) (string, error) {
	s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(out))
	s.Start()
	defer s.Stop()

	return client.Chat(ctx, prompt)
}
