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

package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// OpenAI is the Client backed by the OpenAI chat-completions API. The
// credential is passed in explicitly; there is no package-level key.
type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(apiKey, model string) *OpenAI {
	return &OpenAI{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Verify retrieves the configured model once, so that a bad key or
// model name ends the session up front instead of mid-game.
func (transport *OpenAI) Verify(ctx context.Context) error {
	if _, err := transport.client.GetModel(ctx, transport.model); err != nil {
		return fmt.Errorf("llm: authentication failed: %w", err)
	}

	return nil
}

func (transport *OpenAI) Chat(ctx context.Context, messages []Message) (string, error) {
	request := openai.ChatCompletionRequest{Model: transport.model}
	for _, message := range messages {
		request.Messages = append(request.Messages, openai.ChatCompletionMessage{
			Role:    message.Role,
			Content: message.Content,
		})
	}

	response, err := transport.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", err
	}

	if len(response.Choices) == 0 {
		return "", errors.New("llm: empty response from model")
	}

	reply := response.Choices[0].Message.Content
	logrus.WithField("model", transport.model).Debugf("model replied: %q", reply)
	return reply, nil
}
