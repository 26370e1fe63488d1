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

package config

type evalConfiguration struct {
	Tempo int16

	UseMobility   bool
	MobilityBonus int16 // per reachable square, bishops and queens only

	UseKingShield             bool
	KingCastlePawnShieldBonus int16 // per own piece on a square the king attacks

	PawnIsolatedMidMalus  int16
	PawnIsolatedEndMalus  int16
	PawnDoubledMidMalus   int16
	PawnDoubledEndMalus   int16
	PawnPassedMidBonus    [8]int16 // indexed by the pawn's relative rank
	PawnPassedEndBonus    [8]int16
	RookOpenFileBonus     int16
	RookSemiOpenFileBonus int16
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.Tempo = 20

	Settings.Eval.UseMobility = true
	Settings.Eval.MobilityBonus = 4

	Settings.Eval.UseKingShield = true
	Settings.Eval.KingCastlePawnShieldBonus = 10

	Settings.Eval.PawnIsolatedMidMalus = -10
	Settings.Eval.PawnIsolatedEndMalus = -20
	Settings.Eval.PawnDoubledMidMalus = -10
	Settings.Eval.PawnDoubledEndMalus = -30
	// indexed by relative rank (index 0/7 unreachable - a pawn never sits
	// on its own back rank and promotes before being scored on the last)
	Settings.Eval.PawnPassedMidBonus = [8]int16{0, 10, 30, 50, 75, 100, 150, 200}
	Settings.Eval.PawnPassedEndBonus = [8]int16{0, 10, 30, 50, 75, 100, 150, 200}
	Settings.Eval.RookOpenFileBonus = 25
	Settings.Eval.RookSemiOpenFileBonus = 12
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupEval() {
}
