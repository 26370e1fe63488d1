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

// Package types contains the basic chess data types (squares, pieces,
// moves, bitboards) shared by every other package in the engine.
package types

var initialized = false

// init precomputes bitboard/magic and piece-square tables exactly once,
// regardless of how many other packages import this one.
func init() {
	if initialized {
		return
	}
	initBb()
	initPosValues()
	initialized = true
}

const (
	// SqLength is the number of squares on a board.
	SqLength int = 64

	// MaxDepth is the largest ply the search will ever recurse to.
	MaxDepth = 128

	// MaxMoves bounds the number of pseudo-legal moves in any position.
	MaxMoves = 512

	// KB is 1024 bytes.
	KB uint64 = 1024

	// MB is KB * KB bytes.
	MB uint64 = KB * KB

	// GB is KB * MB bytes.
	GB uint64 = KB * MB

	// GamePhaseMax is the non-pawn-material phase value of the starting
	// position; evaluation tapers linearly between 0 (pure endgame) and
	// this value (pure middlegame).
	GamePhaseMax = 24
)
