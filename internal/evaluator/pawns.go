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

package evaluator

import (
	. "github.com/kallsen/corvid/internal/config"
	. "github.com/kallsen/corvid/internal/types"
)

// evaluatePawns scores doubled, isolated and passed pawns for both
// colors and returns the (white - black) difference.
func (e *Evaluator) evaluatePawns() *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	e.evaluatePawnsOf(White, &tmpScore, 1)
	e.evaluatePawnsOf(Black, &tmpScore, -1)

	return &tmpScore
}

func (e *Evaluator) evaluatePawnsOf(us Color, s *Score, sign int16) {
	pawns := e.position.PiecesBb(us, Pawn)
	if pawns == BbZero {
		return
	}
	them := us.Flip()
	theirPawns := e.position.PiecesBb(them, Pawn)

	for f := FileA; f <= FileH; f++ {
		onFile := pawns & f.Bb()
		if onFile == BbZero {
			continue
		}
		count := int16(onFile.PopCount())

		// doubled pawns - each pawn on a stacked file is charged count x penalty
		if count > 1 {
			s.MidGameValue += sign * Settings.Eval.PawnDoubledMidMalus * count * count
			s.EndGameValue += sign * Settings.Eval.PawnDoubledEndMalus * count * count
		}

		// isolated pawns - no friendly pawn on an adjacent file
		neighbours := BbZero
		if f > FileA {
			neighbours |= (f - 1).Bb()
		}
		if f < FileH {
			neighbours |= (f + 1).Bb()
		}
		if pawns&neighbours == BbZero {
			s.MidGameValue += sign * Settings.Eval.PawnIsolatedMidMalus * count
			s.EndGameValue += sign * Settings.Eval.PawnIsolatedEndMalus * count
		}
	}

	// passed pawns - no enemy pawn can ever stop or capture it on its way,
	// bonus scaled by how far advanced the pawn already is
	remaining := pawns
	for remaining != BbZero {
		sq := remaining.PopLsb()
		if theirPawns&sq.PassedPawnMask(us) == BbZero {
			rank := sq.RelativeRankOf(us)
			s.MidGameValue += sign * Settings.Eval.PawnPassedMidBonus[rank]
			s.EndGameValue += sign * Settings.Eval.PawnPassedEndBonus[rank]
		}
	}
}
