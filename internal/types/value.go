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

package types

import (
	"fmt"

	"github.com/kallsen/corvid/internal/util"
)

// Value is a centipawn score, from the perspective of the side to move
// unless documented otherwise. Mate scores are encoded as ValueCheckMate
// minus the number of plies to the mated king.
type Value int16

// Value constants used throughout evaluation and search.
const (
	ValueZero Value = 0
	ValueDraw Value = 0
	ValueOne  Value = 1

	// ValueInf is larger than any legal score; used to seed alpha-beta
	// bounds before a real value is known.
	ValueInf Value = 15_000

	// ValueNA marks "no value available" - e.g. an empty transposition
	// table entry.
	ValueNA Value = -ValueInf - 1

	// ValueMax/ValueMin bound every value the evaluator and search
	// produce; mate scores occupy the top of this range (see
	// ValueCheckMateThreshold).
	ValueMax Value = 10_000
	ValueMin Value = -ValueMax

	// ValueCheckMate is the score of delivering mate on the current
	// move. Mate N plies away scores ValueCheckMate-N, so closer mates
	// sort higher.
	ValueCheckMate Value = ValueMax

	// ValueCheckMateThreshold is the smallest absolute value that still
	// represents a mate score rather than a material/positional one.
	ValueCheckMateThreshold = ValueCheckMate - MaxDepth - 1
)

// IsValid reports whether v lies within the legal value range (or is a
// mate score).
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax || v.IsCheckMateValue()
}

// IsCheckMateValue reports whether v encodes a forced mate.
func (v Value) IsCheckMateValue() bool {
	return util.Abs(int(v)) >= int(ValueCheckMateThreshold) && util.Abs(int(v)) <= int(ValueCheckMate)
}

// String renders v the way a UCI "info score" line would: a mate
// distance, "N/A", or a plain centipawn count.
func (v Value) String() string {
	switch {
	case v == ValueNA:
		return "N/A"
	case v.IsCheckMateValue():
		pliesToMate := int(ValueCheckMate) - util.Abs(int(v))
		movesToMate := (pliesToMate + 1) / 2
		if v < 0 {
			movesToMate = -movesToMate
		}
		return fmt.Sprintf("mate %d", movesToMate)
	default:
		return fmt.Sprintf("cp %d", int(v))
	}
}
