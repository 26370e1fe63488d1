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

// Package evaluator contains structures and functions to calculate
// the value of a chess position to be used in a chess engine search.
package evaluator

import (
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kallsen/corvid/internal/config"
	myLogging "github.com/kallsen/corvid/internal/logging"
	"github.com/kallsen/corvid/internal/position"
	. "github.com/kallsen/corvid/internal/types"
)

var out = message.NewPrinter(language.English)

// Evaluator holds the transient state needed while scoring one position:
// material and PST values are read straight off the Position, everything
// else (pawn structure, mobility, king shield) is computed here.
//  Create a new instance with NewEvaluator()
type Evaluator struct {
	log *logging.Logger

	position        *position.Position
	gamePhaseFactor float64
	us              Color
	them            Color

	score Score
}

// tmpScore is reused across calls to avoid per-term allocation.
var tmpScore = Score{}

// baseline attack count subtracted before scaling by MobilityBonus.
const (
	bishopMobilityUnit int16 = 4
	queenMobilityUnit  int16 = 9
)

// NewEvaluator creates a new instance of an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		log: myLogging.GetLog(),
	}
}

// InitEval initializes data used by several terms. Called at the start of
// Evaluate() but exposed separately so single terms can be unit tested.
func (e *Evaluator) InitEval(p *position.Position) {
	e.position = p
	e.gamePhaseFactor = p.GamePhaseFactor()
	e.us = p.NextPlayer()
	e.them = e.us.Flip()
	e.score.MidGameValue = 0
	e.score.EndGameValue = 0
}

// Evaluate returns a tapered score for the given position from the view
// of the side to move: material + PST, pawn structure, rook file bonuses,
// bishop/queen mobility and king pawn shield.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	e.InitEval(p)
	return e.evaluate()
}

// value interpolates mid/end game scores by the current game phase.
func (e *Evaluator) value() Value {
	return e.score.ValueFromScore(e.gamePhaseFactor)
}

func (e *Evaluator) evaluate() Value {
	if e.position.HasInsufficientMaterial() {
		return ValueDraw
	}

	// material and piece-square tables, from white's perspective
	e.score.MidGameValue = int16(e.position.Material(White) - e.position.Material(Black))
	e.score.EndGameValue = e.score.MidGameValue
	e.score.MidGameValue += int16(e.position.PsqMidValue(White) - e.position.PsqMidValue(Black))
	e.score.EndGameValue += int16(e.position.PsqEndValue(White) - e.position.PsqEndValue(Black))

	// small bonus for the side to move, smooths out search score swings
	if e.us == White {
		e.score.MidGameValue += config.Settings.Eval.Tempo
	} else {
		e.score.MidGameValue -= config.Settings.Eval.Tempo
	}

	e.score.Add(e.evaluatePawns())

	e.score.Add(e.evalRooks(White))
	e.score.Sub(e.evalRooks(Black))

	if config.Settings.Eval.UseMobility {
		e.score.Add(e.evalMobility(White))
		e.score.Sub(e.evalMobility(Black))
	}

	if config.Settings.Eval.UseKingShield {
		e.score.Add(e.evalKingShield(White))
		e.score.Sub(e.evalKingShield(Black))
	}

	return e.finalEval(e.value())
}

// finalEval flips a white-relative score to the side-to-move's perspective.
func (e *Evaluator) finalEval(value Value) Value {
	return value * Value(e.position.NextPlayer().Direction())
}

// evalRooks scores rook placement on open and semi-open files.
func (e *Evaluator) evalRooks(us Color) *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	rooks := e.position.PiecesBb(us, Rook)
	ownPawns := e.position.PiecesBb(us, Pawn)
	enemyPawns := e.position.PiecesBb(us.Flip(), Pawn)

	for rooks != BbZero {
		sq := rooks.PopLsb()
		fileBb := sq.FileOf().Bb()
		switch {
		case fileBb&(ownPawns|enemyPawns) == BbZero:
			tmpScore.MidGameValue += config.Settings.Eval.RookOpenFileBonus
			tmpScore.EndGameValue += config.Settings.Eval.RookOpenFileBonus
		case fileBb&ownPawns == BbZero:
			tmpScore.MidGameValue += config.Settings.Eval.RookSemiOpenFileBonus
			tmpScore.EndGameValue += config.Settings.Eval.RookSemiOpenFileBonus
		}
	}
	return &tmpScore
}

// evalMobility scores bishop and queen mobility as the number of squares
// each piece attacks through the current occupancy, minus a baseline unit
// (4 for bishops, 9 for queens), times MobilityBonus.
func (e *Evaluator) evalMobility(us Color) *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	occupied := e.position.OccupiedAll()
	bonus := config.Settings.Eval.MobilityBonus

	bishops := e.position.PiecesBb(us, Bishop)
	for bishops != BbZero {
		sq := bishops.PopLsb()
		n := int16(GetAttacksBb(Bishop, sq, occupied).PopCount()) - bishopMobilityUnit
		tmpScore.MidGameValue += n * bonus
		tmpScore.EndGameValue += n * bonus
	}

	queens := e.position.PiecesBb(us, Queen)
	for queens != BbZero {
		sq := queens.PopLsb()
		n := int16(GetAttacksBb(Queen, sq, occupied).PopCount()) - queenMobilityUnit
		tmpScore.MidGameValue += n * bonus
		tmpScore.EndGameValue += n * bonus
	}

	return &tmpScore
}

// evalKingShield counts own pieces on the squares the king itself attacks
// - a crude stand-in for how hemmed in behind its own men (and so, usually,
// how well shielded) the king currently is. Added to both mg and eg.
func (e *Evaluator) evalKingShield(us Color) *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	kingSq := e.position.KingSquare(us)
	ownOccupied := e.position.OccupiedBb(us)

	n := int16((GetPseudoAttacks(King, kingSq) & ownOccupied).PopCount())
	tmpScore.MidGameValue += n * config.Settings.Eval.KingCastlePawnShieldBonus
	tmpScore.EndGameValue += n * config.Settings.Eval.KingCastlePawnShieldBonus
	return &tmpScore
}

// Report prints a human-readable breakdown of the evaluation. Used in
// debugging and from the UCI "eval" extension, if enabled.
func (e *Evaluator) Report() string {
	var report strings.Builder
	report.WriteString("Evaluation Report\n")
	report.WriteString("=============================================\n")
	report.WriteString(out.Sprintf("Position: %s\n", e.position.StringFen()))
	report.WriteString(out.Sprintf("%s\n", e.position.StringBoard()))
	report.WriteString(out.Sprintf("GamePhase factor: %f\n", e.position.GamePhaseFactor()))
	report.WriteString(out.Sprintf("Eval value: %d (from the view of %s)\n", e.Evaluate(e.position), e.position.NextPlayer().String()))
	return report.String()
}
