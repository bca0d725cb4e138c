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

// Package notation extracts chess moves in standard algebraic notation
// from free-form text.
package notation

import (
	"errors"
	"regexp"
	"strings"
)

// Matches one move in standard algebraic notation: castling in its case
// and zero variants, or an ordinary move with optional piece letter,
// disambiguation, capture, promotion and check/mate suffix. A trailing
// result annotation (1-0, 0-1, 1/2-1/2) is tolerated but kept out of
// the move group.
var sanRegexp = regexp.MustCompile(
	`([Oo0](-[Oo0]){1,2}|[KQRBN]?[a-h]?[1-8]?x?[a-h][1-8](=[QRBN])?[+#]?)(\s(1-0|0-1|1/2-1/2))?`,
)

var ErrNoMatch = errors.New("notation: no move found in text")

// Extract returns the first substring of text that reads as a move in
// standard algebraic notation. Anything after the first match is
// ignored; a model's commentary never becomes part of the move.
func Extract(text string) (string, error) {
	match := sanRegexp.FindStringSubmatch(text)
	if match == nil {
		return "", ErrNoMatch
	}

	return match[1], nil
}

// Explanation returns text minus its first line and minus any blank
// lines. The first line is expected to hold the move itself; the rest
// is commentary, preserved verbatim for display.
func Explanation(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) <= 1 {
		return ""
	}

	kept := make([]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if line != "" {
			kept = append(kept, line)
		}
	}

	return strings.Join(kept, "\n")
}
