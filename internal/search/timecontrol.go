//
// Corvid - a UCI chess engine written in Go
//
// MIT License
//
// Copyright (c) 2026 The Corvid Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package search

import (
	"time"

	"github.com/kallsen/corvid/internal/position"
	. "github.com/kallsen/corvid/internal/types"
)

// defaultMovesToGo is assumed remaining until time control when the GUI
// does not supply movestogo.
const defaultMovesToGo = 30

// safetyMargin is reserved so a move is always returned to the GUI
// before its allotted time actually expires.
const safetyMargin = 50 * time.Millisecond

// setupTimeControl turns the search limits sent by the GUI into a wall
// clock budget for the current move: movetime if given exactly, else a
// share of the remaining clock plus incoming increment, minus a safety
// margin when that budget exceeds 1.5s, to account for the overhead of
// actually stopping the search and reporting the result.
func (s *Search) setupTimeControl(p *position.Position, sl *Limits) time.Duration {
	if sl.MoveTime > 0 {
		return sl.MoveTime
	}

	movesToGo := sl.MovesToGo
	if movesToGo <= 0 {
		movesToGo = defaultMovesToGo
	}

	var timeLeft, inc time.Duration
	switch p.NextPlayer() {
	case White:
		timeLeft = sl.WhiteTime
		inc = sl.WhiteInc
	case Black:
		timeLeft = sl.BlackTime
		inc = sl.BlackInc
	}

	timeLimit := timeLeft/time.Duration(movesToGo) + inc
	if timeLimit > 1500*time.Millisecond {
		timeLimit -= safetyMargin
	}
	if timeLimit < 0 {
		timeLimit = 0
	}
	return timeLimit
}
