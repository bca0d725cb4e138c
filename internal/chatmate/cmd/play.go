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

package cmd

import (
	"errors"
	"math/rand"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/notnil/chess"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	chatmate "github.com/chatmate/chatmate/pkg/common"
	"github.com/chatmate/chatmate/pkg/game"
	"github.com/chatmate/chatmate/pkg/llm"
)

// chatmate play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game of chess against the model in the terminal",
		Args:  cobra.ExactArgs(0),
		Long: heredoc.Doc(`play starts an interactive game of chess against a language
			model. Moves are entered in standard algebraic notation
			(e4, Nf3, O-O, e8=Q). Type quit at any prompt to leave the
			game immediately.

			Unless --white is given, the side you play is picked at
			random. The model gets --tries attempts per turn to come
			up with a legal move and passes if it runs out.

			The API key and model name are read from the configuration
			file, see chatmate config. The OPENAI_API_KEY environment
			variable overrides the configured key.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := chatmate.LoadConfig()
			if err != nil {
				return err
			}

			if model, _ := cmd.Flags().GetString("model"); model != "" {
				config.Model = model
			}

			client := llm.NewOpenAI(config.APIKey, config.Model)

			// A bad key or model name should fail the session up
			// front instead of mid-game.
			if err := client.Verify(cmd.Context()); err != nil {
				return err
			}

			side := chess.White
			if white, _ := cmd.Flags().GetBool("white"); !white && rand.Intn(2) == 1 {
				side = chess.Black
			}
			logrus.WithField("side", side.Name()).Debug("Starting session")

			tries, _ := cmd.Flags().GetInt("tries")
			fen, _ := cmd.Flags().GetString("fen")

			session, err := game.NewSession(game.SessionConfig{
				Human:  side,
				Tries:  tries,
				FEN:    fen,
				Client: client,
				Input:  os.Stdin,
				Output: os.Stdout,
			})
			if err != nil {
				return err
			}

			err = session.Run(cmd.Context())
			if errors.Is(err, game.ErrQuit) {
				// The quit keyword is a clean exit, not a failure.
				return nil
			}
			return err
		},
	}

	cmd.Flags().BoolP("white", "w", false, "Start as white instead of a random side")
	cmd.Flags().IntP("tries", "t", 1, "Maximum tries for the model to make a valid move")
	cmd.Flags().StringP("model", "m", "", "Override the configured model name")
	cmd.Flags().String("fen", "", "Start from the given FEN instead of the standard position")

	return cmd
}
