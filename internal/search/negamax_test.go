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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kallsen/corvid/internal/movegen"
	"github.com/kallsen/corvid/internal/moveslice"
	"github.com/kallsen/corvid/internal/position"
	. "github.com/kallsen/corvid/internal/types"
)

func Test_savePV(t *testing.T) {
	src := moveslice.NewMoveSlice(10)
	dest := moveslice.NewMoveSlice(10)

	src.PushBack(Move(1234))
	src.PushBack(Move(2345))
	src.PushBack(Move(3456))
	src.PushBack(Move(4567))

	savePV(Move(9999), src, dest)

	assert.EqualValues(t, 5, dest.Len())
	assert.EqualValues(t, 9999, dest.At(0))
	assert.EqualValues(t, 4567, dest.At(4))
}

func Test_valueToFromTT(t *testing.T) {
	mateIn3 := ValueCheckMate - 3
	stored := valueToTT(mateIn3, 5)
	assert.EqualValues(t, mateIn3+5, stored)
	assert.EqualValues(t, mateIn3, valueFromTT(stored, 5))

	assert.EqualValues(t, 42, valueToTT(42, 7))
	assert.EqualValues(t, 42, valueFromTT(42, 7))
}

func TestMateInOne(t *testing.T) {
	s := NewSearch()
	p, err := position.NewPositionFen("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	assert.NoError(t, err)
	sl := NewSearchLimits()
	sl.Depth = 4
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	assert.EqualValues(t, "a1a8", result.BestMove.StringUci())
	assert.True(t, result.BestValue.IsCheckMateValue())
}

func TestAvoidsStalemate(t *testing.T) {
	s := NewSearch()
	p, err := position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 w - - 0 1")
	assert.NoError(t, err)
	sl := NewSearchLimits()
	sl.Depth = 3
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	assert.NotEqualValues(t, ValueDraw, result.BestValue)
}

func TestPromotionIsConsidered(t *testing.T) {
	s := NewSearch()
	p, err := position.NewPositionFen("8/P7/8/8/8/8/8/k6K w - - 0 1")
	assert.NoError(t, err)
	sl := NewSearchLimits()
	sl.Depth = 4
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	assert.Contains(t, result.Pv.StringUci(), "a7a8q")
}

func TestRepetitionIsScoredAsDraw(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()
	mg := movegen.NewMoveGen()
	moves := []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"}
	for _, uci := range moves {
		p.DoMove(mg.GetMoveFromUci(p, uci))
	}
	assert.True(t, p.CheckRepetitions(2))

	// a draw by repetition before the search even starts should be
	// reported immediately with a draw value and no crash.
	sl := NewSearchLimits()
	sl.Depth = 6
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	assert.EqualValues(t, ValueDraw, s.LastSearchResult().BestValue)
}

func TestNewGameClearsState(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()
	sl := NewSearchLimits()
	sl.Depth = 4
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	assert.NotZero(t, s.nodesVisited)

	s.NewGame()
	assert.EqualValues(t, [2][64][64]int64{}, s.history.HistoryCount)
}

func TestStopSearchDuringTimeControl(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()
	sl := NewSearchLimits()
	sl.TimeControl = true
	sl.WhiteTime = 10 * time.Second
	sl.BlackTime = 10 * time.Second
	s.StartSearch(*p, *sl)
	time.Sleep(20 * time.Millisecond)
	s.StopSearch()
	assert.False(t, s.IsSearching())
}
