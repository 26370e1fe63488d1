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
	"github.com/kallsen/corvid/internal/config"
	"github.com/kallsen/corvid/internal/movegen"
	"github.com/kallsen/corvid/internal/moveslice"
	"github.com/kallsen/corvid/internal/position"
	"github.com/kallsen/corvid/internal/transpositiontable"
	. "github.com/kallsen/corvid/internal/types"
)

// pollInterval is how often (in visited nodes) the search considers
// sending a progress update to the UCI handler. The stop flag and the
// node limit are checked at every node through stopConditions().
const pollInterval = 2048

// iterativeDeepening drives the search: it starts with a one ply search,
// then increments the search depth and searches again, each time
// starting with the best move of the previous iteration first. This is
// repeated until the time allocated for the search is exhausted or the
// configured depth is reached. If an iteration is aborted mid-way the
// best move found so far (pv[0][0] from the last completed iteration)
// is still guaranteed to be the best move found.
func (s *Search) iterativeDeepening(p *position.Position) *Result {
	if s.checkDrawRepAnd50(p, 2) {
		msg := "Search called on DRAW by Repetition or 50-moves-rule"
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return &Result{BestValue: ValueDraw}
	}

	s.rootMoves = s.mg[0].GenerateLegalMoves(p, movegen.GenAll)

	if s.rootMoves.Len() == 0 {
		if p.HasCheck() {
			s.statistics.Checkmates++
			msg := "Search called on a mate position"
			s.sendInfoStringToUci(msg)
			s.log.Warning(msg)
			return &Result{BestValue: -ValueCheckMate}
		}
		s.statistics.Stalemates++
		msg := "Search called on a stalemate position"
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return &Result{BestValue: ValueDraw}
	}

	maxDepth := config.Settings.Search.MaxDepth
	if s.searchLimits.Depth > 0 {
		maxDepth = s.searchLimits.Depth
	}

	alpha := ValueMin
	beta := ValueMax
	bestValue := ValueNA

	for iterationDepth := 0; iterationDepth < maxDepth; {
		iterationDepth++

		s.statistics.CurrentIterationDepth = iterationDepth
		s.statistics.CurrentSearchDepth = iterationDepth
		if s.statistics.CurrentExtraSearchDepth < iterationDepth {
			s.statistics.CurrentExtraSearchDepth = iterationDepth
		}

		bestValue = s.rootSearch(p, iterationDepth, alpha, beta)

		// we want to do at least one complete search at depth 1 before
		// honoring a stop - any new best move will already be in pv[0]
		if !s.stopConditions() && s.rootMoves.Len() > 1 {
			s.rootMoves.Sort()
			s.statistics.CurrentBestRootMove = s.pv[0].At(0)
			s.statistics.CurrentBestRootMoveValue = s.pv[0].At(0).ValueOf()
			s.sendIterationEndInfoToUci()
		} else {
			break
		}
	}
	_ = bestValue

	result := &Result{
		BestMove:    s.pv[0].At(0).MoveOf(),
		BestValue:   s.pv[0].At(0).ValueOf(),
		PonderMove:  MoveNone,
		SearchDepth: s.statistics.CurrentIterationDepth,
		ExtraDepth:  s.statistics.CurrentExtraSearchDepth,
	}

	if s.pv[0].Len() > 1 {
		result.PonderMove = s.pv[0].At(1).MoveOf()
	} else if config.Settings.Search.UseTT && s.tt != nil {
		p.DoMove(result.BestMove)
		ttEntry := s.tt.Probe(p.ZobristKey())
		p.UndoMove()
		if ttEntry != nil {
			s.statistics.TTHit++
			result.PonderMove = ttEntry.Move()
		}
	}

	return result
}

// rootSearch searches every root move with the full remaining depth and
// stores the resulting score back into the root move itself so the next
// iteration can start by re-sorting root moves best-first. Root moves are
// handled outside of search() as the ply==0 special casing (PV tracking,
// per-move reporting to the UCI) would otherwise clutter the common path.
func (s *Search) rootSearch(p *position.Position, depth int, alpha Value, beta Value) Value {
	bestNodeValue := ValueNA
	var value Value

	for i := 0; i < s.rootMoves.Len(); i++ {
		m := s.rootMoves.At(i)

		p.DoMove(m)
		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(m)
		s.statistics.CurrentRootMoveIndex = i
		s.statistics.CurrentRootMove = m

		if s.checkDrawRepAnd50(p, 2) {
			value = ValueDraw
		} else if i == 0 {
			// first move is the assumed PV and gets the full window
			value = -s.search(p, depth-1, 1, -beta, -alpha, true)
		} else {
			// null window search to prove the move is not better than alpha
			value = -s.search(p, depth-1, 1, -alpha-1, -alpha, false)
			if value > alpha && value < beta && !s.stopConditions() {
				s.statistics.RootPvsResearches++
				value = -s.search(p, depth-1, 1, -beta, -alpha, true)
			}
		}

		s.statistics.CurrentVariation.PopBack()
		p.UndoMove()

		// ensure at least one complete depth 1 search
		if s.stopConditions() && depth > 1 {
			return bestNodeValue
		}

		s.rootMoves.Set(i, m.SetValue(value))

		if value > bestNodeValue {
			bestNodeValue = value
			savePV(m, s.pv[1], s.pv[0])
			if value > alpha {
				alpha = value
			}
		}
	}
	return bestNodeValue
}

// search is the normal negamax/PVS search below the root (ply > 0). It
// recurses until depth reaches 0, at which point it falls into
// quiescence search. Transposition table probing, mate distance pruning
// and check extension all happen here.
func (s *Search) search(p *position.Position, depth int, ply int, alpha Value, beta Value, isPV bool) Value {
	if s.stopConditions() {
		return ValueNA
	}

	hasCheck := p.HasCheck()

	// check extension: searching one ply deeper while in check both
	// avoids being mated by a move we never considered and mirrors the
	// fact that quiescence search already looks at all moves in check.
	if hasCheck {
		depth++
		s.statistics.CheckExtension++
	}

	if depth <= 0 || ply >= MaxDepth {
		return s.qsearch(p, ply, alpha, beta, isPV)
	}

	// mate distance pruning: tighten the window to the best/worst mate
	// score reachable from this ply so a shorter mate already found
	// elsewhere in the tree is never displaced by a longer one.
	if alpha < -ValueCheckMate+Value(ply) {
		alpha = -ValueCheckMate + Value(ply)
	}
	if beta > ValueCheckMate-Value(ply) {
		beta = ValueCheckMate - Value(ply)
	}
	if alpha >= beta {
		s.statistics.Mdp++
		return alpha
	}

	us := p.NextPlayer()
	bestNodeValue := ValueNA
	bestNodeMove := MoveNone
	ttMove := MoveNone
	ttType := ALPHA

	var ttEntry *transpositiontable.TtEntry
	if config.Settings.Search.UseTT && s.tt != nil {
		ttEntry = s.tt.Probe(p.ZobristKey())
		if ttEntry != nil {
			s.statistics.TTHit++
			ttMove = ttEntry.Move().MoveOf()
			if int(ttEntry.Depth()) >= depth {
				ttValue := valueFromTT(ttEntry.Value(), ply)
				cut := false
				switch {
				case !ttValue.IsValid():
					cut = false
				case ttEntry.Vtype() == EXACT:
					cut = true
				case ttEntry.Vtype() == ALPHA && ttValue <= alpha:
					cut = true
				case ttEntry.Vtype() == BETA && ttValue >= beta:
					cut = true
				}
				if cut && config.Settings.Search.UseTTValue {
					s.statistics.TTCuts++
					return ttValue
				}
				s.statistics.TTNoCuts++
			}
		} else {
			s.statistics.TTMiss++
		}
	}

	myMg := s.mg[ply]
	myMg.ResetOnDemand()
	s.pv[ply].Clear()

	if config.Settings.Search.UseTTMove {
		if ttMove != MoveNone {
			s.statistics.TTMoveUsed++
			myMg.SetPvMove(ttMove)
		} else {
			s.statistics.NoTTMove++
		}
	}

	var value Value
	movesSearched := 0

	for move := myMg.GetNextMove(p, movegen.GenAll); move != MoveNone; move = myMg.GetNextMove(p, movegen.GenAll) {
		from := move.From()
		to := move.To()

		p.DoMove(move)

		if !p.WasLegalMove() {
			p.UndoMove()
			continue
		}

		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(move)
		if s.nodesVisited%pollInterval == 0 {
			s.sendSearchUpdateToUci()
		}

		if s.checkDrawRepAnd50(p, 2) {
			value = ValueDraw
		} else if movesSearched == 0 {
			value = -s.search(p, depth-1, ply+1, -beta, -alpha, true)
		} else {
			value = -s.search(p, depth-1, ply+1, -alpha-1, -alpha, false)
			if value > alpha && value < beta && !s.stopConditions() {
				s.statistics.PvsResearches++
				value = -s.search(p, depth-1, ply+1, -beta, -alpha, true)
			}
		}

		movesSearched++
		s.statistics.CurrentVariation.PopBack()
		p.UndoMove()

		if s.stopConditions() {
			return ValueNA
		}

		if value > bestNodeValue {
			bestNodeValue = value
			bestNodeMove = move
			if value > alpha {
				savePV(move, s.pv[ply+1], s.pv[ply])
				if value >= beta {
					s.statistics.BetaCuts++
					if movesSearched == 1 {
						s.statistics.BetaCuts1st++
					}
					if !p.IsCapturingMove(move) {
						myMg.StoreKiller(move)
						// favor deeper searches and repeated cutoffs
						s.history.HistoryCount[us][from][to] += int64(depth) * int64(depth)
					}
					ttType = BETA
					break
				}
				alpha = value
				ttType = EXACT
			}
		}
		if !p.IsCapturingMove(move) {
			s.history.HistoryCount[us][from][to] -= int64(depth) * int64(depth)
			if s.history.HistoryCount[us][from][to] < 0 {
				s.history.HistoryCount[us][from][to] = 0
			}
		}
	}

	if movesSearched == 0 && !s.stopConditions() {
		if hasCheck {
			s.statistics.Checkmates++
			bestNodeValue = -ValueCheckMate + Value(ply)
		} else {
			s.statistics.Stalemates++
			bestNodeValue = ValueDraw
		}
		ttType = EXACT
	}

	if config.Settings.Search.UseTT && s.tt != nil {
		s.storeTT(p, depth, ply, bestNodeMove, bestNodeValue, ttType)
	}

	return bestNodeValue
}

// qsearch extends search beyond the nominal depth along capturing lines
// (and all lines while in check) to avoid misjudging a position in the
// middle of a tactical exchange (the horizon effect). Quiet positions
// are resolved with the standing-pat static evaluation.
func (s *Search) qsearch(p *position.Position, ply int, alpha Value, beta Value, isPV bool) Value {
	if s.stopConditions() {
		return ValueNA
	}

	if s.statistics.CurrentExtraSearchDepth < ply {
		s.statistics.CurrentExtraSearchDepth = ply
	}

	if ply >= MaxDepth {
		return s.evaluate(p, ply)
	}

	if alpha < -ValueCheckMate+Value(ply) {
		alpha = -ValueCheckMate + Value(ply)
	}
	if beta > ValueCheckMate-Value(ply) {
		beta = ValueCheckMate - Value(ply)
	}
	if alpha >= beta {
		s.statistics.Mdp++
		return alpha
	}

	bestNodeValue := ValueNA
	ttType := ALPHA
	hasCheck := p.HasCheck()

	if !hasCheck {
		staticEval := s.evaluate(p, ply)
		if staticEval > alpha {
			if staticEval >= beta {
				s.statistics.StandpatCuts++
				return staticEval
			}
			alpha = staticEval
		}
		bestNodeValue = staticEval
	}

	bestNodeMove := MoveNone
	myMg := s.mg[ply]
	myMg.ResetOnDemand()
	s.pv[ply].Clear()

	var mode movegen.GenMode
	if hasCheck {
		s.statistics.CheckInQS++
		mode = movegen.GenAll
	} else {
		mode = movegen.GenCap
	}

	var value Value
	movesSearched := 0

	for move := myMg.GetNextMove(p, mode); move != MoveNone; move = myMg.GetNextMove(p, mode) {
		p.DoMove(move)

		if !p.WasLegalMove() {
			p.UndoMove()
			continue
		}

		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(move)
		if s.nodesVisited%pollInterval == 0 {
			s.sendSearchUpdateToUci()
		}

		if hasCheck && s.checkDrawRepAnd50(p, 2) {
			value = ValueDraw
		} else {
			value = -s.qsearch(p, ply+1, -beta, -alpha, isPV)
		}

		movesSearched++
		s.statistics.CurrentVariation.PopBack()
		p.UndoMove()

		if s.stopConditions() {
			return ValueNA
		}

		if value > bestNodeValue {
			bestNodeValue = value
			bestNodeMove = move
			if value > alpha {
				savePV(move, s.pv[ply+1], s.pv[ply])
				if value >= beta {
					s.statistics.BetaCuts++
					if movesSearched == 1 {
						s.statistics.BetaCuts1st++
					}
					ttType = BETA
					break
				}
				alpha = value
				ttType = EXACT
			}
		}
	}

	if movesSearched == 0 && !s.stopConditions() && hasCheck {
		s.statistics.Checkmates++
		bestNodeValue = -ValueCheckMate + Value(ply)
		ttType = EXACT
	}

	if config.Settings.Search.UseTT && s.tt != nil {
		s.storeTT(p, 0, ply, bestNodeMove, bestNodeValue, ttType)
	}

	return bestNodeValue
}

// evaluate returns the static evaluation of the position from the side
// to move's perspective, counted in the search statistics.
func (s *Search) evaluate(p *position.Position, ply int) Value {
	_ = ply
	s.statistics.LeafPositionsEvaluated++
	s.statistics.Evaluations++
	return s.eval.Evaluate(p)
}

// savePV makes move the new first move of dest followed by all moves
// already found in src, i.e. the principal continuation found deeper
// in the tree.
func savePV(move Move, src *moveslice.MoveSlice, dest *moveslice.MoveSlice) {
	dest.Clear()
	dest.PushBack(move)
	*dest = append(*dest, *src...)
}

// storeTT writes a search result for the current position into the
// transposition table, adjusting mate scores for the current ply.
func (s *Search) storeTT(p *position.Position, depth int, ply int, move Move, value Value, valueType ValueType) {
	s.tt.Put(p.ZobristKey(), move, int8(depth), valueToTT(value, ply), valueType, value)
}

// valueToTT adjusts a mate score relative to the root before storing it,
// since the transposition table is shared across plies but mate scores
// are only meaningful relative to the position they were found in.
func valueToTT(value Value, ply int) Value {
	if value.IsCheckMateValue() {
		if value > 0 {
			value += Value(ply)
		} else {
			value -= Value(ply)
		}
	}
	return value
}

// valueFromTT reverses valueToTT when reading a mate score back out of
// the transposition table at a given ply.
func valueFromTT(value Value, ply int) Value {
	if value.IsCheckMateValue() {
		if value > 0 {
			value -= Value(ply)
		} else {
			value += Value(ply)
		}
	}
	return value
}
