// This file is part of tinyexpr - https://github.com/Sireth/tinyexpr
//
// Copyright 2020 Sireth <sireth@users.noreply.github.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package expr

import "fmt"

// CompileError reports a parse failure. Position is the 1-based
// character offset within the input expression where parsing got
// stuck; it is never 0, so callers can use "Position != 0" as a
// quick error-present check without a dedicated boolean.
type CompileError struct {
	Position int
	Msg      string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("tinyexpr: %s (at position %d)", e.Msg, e.Position)
}

// compileError builds a *CompileError from a 0-based byte offset,
// remapping offset 0 to 1 so that "offset 0" never collides with "no
// error".
func compileError(offset int, msg string) *CompileError {
	pos := offset + 1
	if pos <= 0 {
		pos = 1
	}
	return &CompileError{Position: pos, Msg: msg}
}
