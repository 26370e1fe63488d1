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

// searchConfiguration is a data structure to hold the configuration of an
// instance of a search.
type searchConfiguration struct {
	// Iterative deepening ceiling when no depth/time limit is given.
	MaxDepth int

	// Transposition table
	UseTT      bool
	TTSize     int
	UseTTMove  bool
	UseTTValue bool

	// Move ordering weights
	HashMoveWeight    int
	PvMoveWeight      int
	MvvLvaWeight      int
	Killer1Weight     int
	Killer2Weight     int
	HistoryWeight     int

	// Killer slots kept per ply.
	NumKillerMoves int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.MaxDepth = 64

	Settings.Search.UseTT = true
	Settings.Search.TTSize = 128
	Settings.Search.UseTTMove = true
	Settings.Search.UseTTValue = true

	Settings.Search.HashMoveWeight = 100_000
	Settings.Search.PvMoveWeight = 20_000
	Settings.Search.MvvLvaWeight = 10_000
	Settings.Search.Killer1Weight = 9_000
	Settings.Search.Killer2Weight = 8_000
	Settings.Search.HistoryWeight = 1

	Settings.Search.NumKillerMoves = 2
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupSearch() {
}
