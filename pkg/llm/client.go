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

// Package llm provides a provider-agnostic interface for the model
// transport and its OpenAI implementation.
package llm

import "context"

// Message represents a single conversation turn.
type Message struct {
	Role    string
	Content string
}

const (
	RoleSystem    = "system"
	RoleAssistant = "assistant"
	RoleUser      = "user"
)

// Client is the transport the AI negotiator talks to. A failed call is
// fatal to the session; the negotiator never spends its retry budget on
// transport errors.
type Client interface {
	// Chat sends the conversation and returns the model's reply text.
	Chat(ctx context.Context, messages []Message) (string, error)

	// Verify checks that the transport is usable (credential, model
	// availability) before a session starts.
	Verify(ctx context.Context) error
}
