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

// Package search implements iterative deepening PVS search with a
// transposition table, killer/history move ordering and quiescence search.
package search

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/op/go-logging"

	"github.com/kallsen/corvid/internal/config"
	"github.com/kallsen/corvid/internal/evaluator"
	"github.com/kallsen/corvid/internal/history"
	myLogging "github.com/kallsen/corvid/internal/logging"
	"github.com/kallsen/corvid/internal/movegen"
	"github.com/kallsen/corvid/internal/moveslice"
	"github.com/kallsen/corvid/internal/position"
	"github.com/kallsen/corvid/internal/transpositiontable"
	. "github.com/kallsen/corvid/internal/types"
	"github.com/kallsen/corvid/internal/uciInterface"
	"github.com/kallsen/corvid/internal/util"
)

var out = message.NewPrinter(language.English)

// Search represents the data structure for a chess engine search.
//  Create new instance with NewSearch()
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	uciHandlerPtr uciInterface.UciDriver
	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	tt   *transpositiontable.TtTable
	eval *evaluator.Evaluator

	// history heuristics
	history *history.History

	// previous search
	lastSearchResult *Result

	// current search state
	stopFlag          util.Bool
	startTime         time.Time
	hasResult         bool
	currentPosition   *position.Position
	searchLimits      *Limits
	timeLimit         time.Duration
	extraTime         time.Duration
	nodesVisited      uint64
	mg                []*movegen.Movegen
	pv                []*moveslice.MoveSlice
	rootMoves         *moveslice.MoveSlice
	lastUciUpdateTime time.Time
	statistics        Statistics
}

// //////////////////////////////////////////////////////
// Public
// //////////////////////////////////////////////////////

// NewSearch creates a new Search instance. If no uci handler is set
// (SetUciHandler) all output will be logged instead.
func NewSearch() *Search {
	s := &Search{
		log:              myLogging.GetLog(),
		slog:             getSearchTraceLog(),
		uciHandlerPtr:    nil,
		initSemaphore:    semaphore.NewWeighted(int64(1)),
		isRunning:        semaphore.NewWeighted(int64(1)),
		tt:               nil,
		eval:             evaluator.NewEvaluator(),
		history:          history.NewHistory(),
		lastSearchResult: nil,
		startTime:        time.Time{},
		hasResult:        false,
		currentPosition:  nil,
		searchLimits:     nil,
		timeLimit:        0,
		extraTime:        0,
		nodesVisited:     0,
		mg:               nil,
		pv:               nil,
		rootMoves:        nil,
		statistics:       Statistics{},
	}
	return s
}

// NewGame stops any running search and resets all state which must not
// survive into a new game: transposition table and history table. Killer
// moves are held by the per-ply move generators every search creates anew.
func (s *Search) NewGame() {
	s.StopSearch()
	if s.tt != nil {
		s.tt.Clear()
	}
	s.history.Clear()
	s.lastSearchResult = nil
}

// StartSearch starts the search on the given position with the given
// search limits. Search can be stopped with StopSearch(). Search status
// can be checked with IsSearching(). This takes a copy of the position
// and the search limits.
func (s *Search) StartSearch(p position.Position, sl Limits) {
	// acquire init phase lock
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.currentPosition = &p
	s.searchLimits = &sl
	go s.run(&p, &sl)
	// wait until search is running and initialization is done
	// before returning to caller
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch stops a running search as quickly as possible. The search
// stops gracefully and a result will still be sent to the UCI handler.
// This blocks until the search has actually stopped.
func (s *Search) StopSearch() {
	s.stopFlag.Store(true)
	s.WaitWhileSearching()
}

// PonderHit is called when the engine was told to ponder earlier and the
// ponder move was actually played. This activates time control on the
// already running search without interrupting it. No-op if not searching.
func (s *Search) PonderHit() {
	if s.IsSearching() && s.searchLimits.Ponder {
		s.log.Debug("Ponderhit during search - activating time control")
		s.searchLimits.Ponder = false
		s.startTimer()
		return
	}
	s.log.Warning("Ponderhit received while not pondering")
}

// IsSearching checks if a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until a running search has stopped.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

// SetUciHandler sets the UCI handler used to communicate with the UCI
// user interface. If not set output is only logged.
func (s *Search) SetUciHandler(uciHandler uciInterface.UciDriver) {
	s.uciHandlerPtr = uciHandler
}

// GetUciHandlerPtr returns the current UciHandler or nil if none is set.
func (s *Search) GetUciHandlerPtr() uciInterface.UciDriver {
	return s.uciHandlerPtr
}

// IsReady signals the uci handler that the search is ready. This
// initializes the search (which might take a while, e.g. allocating the
// transposition table) and then answers readyok.
func (s *Search) IsReady() {
	s.initialize()
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendReadyOk()
	} else {
		s.log.Debug("uci >> readyok")
	}
}

// ClearHash clears the transposition table. Ignored with a warning
// while a search is running.
func (s *Search) ClearHash() {
	if s.IsSearching() {
		msg := "Can't clear hash while searching."
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return
	}
	if s.tt != nil {
		s.tt.Clear()
		s.sendInfoStringToUci("Hash cleared")
	}
}

// ResizeCache resizes and clears the transposition table according to
// the currently configured size. Ignored with a warning while searching.
func (s *Search) ResizeCache() {
	if s.IsSearching() {
		msg := "Can't resize hash while searching."
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return
	}
	s.tt = nil
	s.initialize()
	s.log.Debug(util.GcWithStats())
	if s.tt != nil {
		s.sendInfoStringToUci(out.Sprintf("Hash resized: %s", s.tt.String()))
	}
}

// LastSearchResult returns a copy of the last search result.
func (s *Search) LastSearchResult() Result {
	return *s.lastSearchResult
}

// NodesVisited returns the number of nodes visited in the last search.
func (s *Search) NodesVisited() uint64 {
	return s.nodesVisited
}

// Statistics returns a pointer to the search statistics of the last search.
func (s *Search) Statistics() *Statistics {
	return &s.statistics
}

// //////////////////////////////////////////////////////
// Private
// //////////////////////////////////////////////////////

// run is called by StartSearch() in a separate goroutine. It runs the
// actual search until a search limit is reached or StopSearch() is called.
func (s *Search) run(p *position.Position, sl *Limits) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("Search already running")
		return
	}
	defer func() {
		s.isRunning.Release(1)
	}()

	s.startTime = time.Now()
	s.log.Infof("Searching: %s", p.StringFen())

	s.stopFlag.Store(false)
	s.hasResult = false
	s.timeLimit = 0
	s.extraTime = 0
	s.nodesVisited = 0
	s.statistics = Statistics{}
	s.lastUciUpdateTime = s.startTime
	s.initialize()

	s.setupSearchLimits(p, sl)

	if s.searchLimits.TimeControl && !s.searchLimits.Ponder {
		s.startTimer()
	}

	if s.tt != nil {
		s.log.Infof("Transposition Table: Using TT (%s)", s.tt.String())
	} else {
		s.log.Info("Transposition Table: Not using TT")
	}

	// per-ply state: one Movegen and one PV buffer per possible ply
	s.mg = make([]*movegen.Movegen, 0, MaxDepth+1)
	s.pv = make([]*moveslice.MoveSlice, 0, MaxDepth+1)
	for i := 0; i <= MaxDepth; i++ {
		newMoveGen := movegen.NewMoveGen()
		newMoveGen.SetHistoryData(s.history)
		s.mg = append(s.mg, newMoveGen)
		s.pv = append(s.pv, moveslice.NewMoveSlice(MaxDepth+1))
	}

	// release the init phase lock to signal the calling goroutine
	// waiting in StartSearch() to return
	s.initSemaphore.Release(1)

	searchResult := s.iterativeDeepening(p)

	// If we arrive here during Ponder or Infinite mode and the search has
	// not been stopped, the search finished before it was told to, so we
	// wait here until stop or ponderhit arrives.
	if (s.searchLimits.Ponder || s.searchLimits.Infinite) && !s.stopFlag.Load() {
		s.log.Debug("Search finished before stopped or ponderhit! Waiting for stop/ponderhit to send result")
		for !s.stopFlag.Load() && (s.searchLimits.Ponder || s.searchLimits.Infinite) {
			time.Sleep(5 * time.Millisecond)
		}
	}

	searchResult.SearchTime = time.Since(s.startTime)
	searchResult.Pv = *s.pv[0]

	s.log.Info(out.Sprintf("Search finished after %s", searchResult.SearchTime))
	s.log.Info(out.Sprintf("Search depth was %d(%d) with %d nodes visited. NPS = %d nps",
		s.statistics.CurrentSearchDepth, s.statistics.CurrentExtraSearchDepth, s.nodesVisited,
		util.Nps(s.nodesVisited, searchResult.SearchTime)))
	s.log.Debugf("Search stats: %s", s.statistics.String())
	s.log.Infof("Search result: %s", searchResult.String())

	s.lastSearchResult = searchResult
	s.hasResult = true

	// make sure the timer goroutine stops even if it is still running
	// because the search finished without any external stop signal
	s.stopFlag.Store(true)

	// at the end of a search we always send the result, even when stopped
	s.sendResult(searchResult)
}

// initialize sets up the transposition table and other potentially time
// consuming setup tasks. Can be called several times without redoing
// initialization that already happened.
func (s *Search) initialize() {
	if config.Settings.Search.UseTT {
		if s.tt == nil {
			sizeInMByte := config.Settings.Search.TTSize
			if sizeInMByte == 0 {
				sizeInMByte = 64
			}
			s.tt = transpositiontable.NewTtTable(sizeInMByte)
		}
	} else {
		s.log.Info("Transposition Table is disabled in configuration")
	}
}

// stopConditions checks if stopFlag is set or if nodesVisited has reached
// a maximum set in the search limits, and sets stopFlag in the latter case.
// The time limit is enforced by the timer goroutine (startTimer).
func (s *Search) stopConditions() bool {
	if s.stopFlag.Load() {
		return true
	}
	if s.searchLimits.Nodes > 0 && s.nodesVisited >= s.searchLimits.Nodes {
		s.stopFlag.Store(true)
	}
	return s.stopFlag.Load()
}

// setupSearchLimits logs the search limits and sets up time control.
func (s *Search) setupSearchLimits(p *position.Position, sl *Limits) {
	if sl.Infinite {
		s.log.Info("Search mode: Infinite")
	}
	if sl.Ponder {
		s.log.Info("Search mode: Ponder")
	}
	if sl.Mate > 0 {
		s.log.Infof("Search mode: Search for mate in %d", sl.Mate)
	}
	if sl.TimeControl {
		s.timeLimit = s.setupTimeControl(p, sl)
		s.extraTime = 0
		if sl.MoveTime > 0 {
			s.log.Infof("Search mode: Time controlled: Time per move %s", sl.MoveTime)
		} else {
			s.log.Info(out.Sprintf("Search mode: Time controlled: White = %s (inc %s) Black = %s (inc %s) Moves to go: %d",
				sl.WhiteTime, sl.WhiteInc, sl.BlackTime, sl.BlackInc, sl.MovesToGo))
			s.log.Info(out.Sprintf("Search mode: Time limit     : %s", s.timeLimit))
		}
		if sl.Ponder {
			s.log.Info("Search mode: Ponder - time control postponed until ponderhit received")
		}
	} else {
		s.log.Info("Search mode: No time control")
	}
	if sl.Depth > 0 {
		s.log.Debugf("Search mode: Depth limited  : %d", sl.Depth)
	}
	if sl.Nodes > 0 {
		s.log.Infof(out.Sprintf("Search mode: Nodes limited  : %d", sl.Nodes))
	}
	if sl.Moves.Len() > 0 {
		s.log.Infof(out.Sprintf("Search mode: Moves limited  : %s", sl.Moves.StringUci()))
	}
}

// startTimer starts a goroutine which regularly checks elapsed time
// against the time limit (plus any extra time granted) and sets stopFlag
// once it is exceeded.
func (s *Search) startTimer() {
	go func() {
		timerStart := time.Now()
		s.log.Debugf("Timer started with time limit of %s", s.timeLimit)
		for time.Since(timerStart) < s.timeLimit+s.extraTime && !s.stopFlag.Load() {
			time.Sleep(5 * time.Millisecond)
		}
		if s.stopFlag.Load() {
			s.log.Debugf("Timer stopped early after wall time: %s (time limit %s and extra time %s)",
				time.Since(timerStart), s.timeLimit, s.extraTime)
		} else {
			s.log.Debugf("Timer stops search after wall time: %s (time limit %s and extra time %s)",
				time.Since(timerStart), s.timeLimit, s.extraTime)
			s.stopFlag.Store(true)
		}
	}()
}

// checkDrawRepAnd50 returns true if the position has already repeated
// itself at least reps times or the 50-moves rule applies.
func (s *Search) checkDrawRepAnd50(p *position.Position, reps int) bool {
	return p.CheckRepetitions(reps) || p.HalfMoveClock() >= 100
}

// sendResult sends the search result to the uci handler if one is set.
func (s *Search) sendResult(searchResult *Result) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendResult(searchResult.BestMove, searchResult.PonderMove)
	}
}

// sendInfoStringToUci sends an info string to the uci handler if one is set.
func (s *Search) sendInfoStringToUci(msg string) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendInfoString(msg)
	} else {
		s.log.Debug(msg)
	}
}

// sendSearchUpdateToUci sends a periodic search update, at most once a second.
func (s *Search) sendSearchUpdateToUci() {
	if time.Since(s.lastUciUpdateTime) < time.Second {
		return
	}
	s.lastUciUpdateTime = time.Now()
	hashfull := 0
	if s.tt != nil {
		hashfull = s.tt.Hashfull()
	}
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendSearchUpdate(
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime),
			hashfull)
		s.uciHandlerPtr.SendCurrentRootMove(s.statistics.CurrentRootMove, s.statistics.CurrentRootMoveIndex)
		s.uciHandlerPtr.SendCurrentLine(s.statistics.CurrentVariation)
	} else {
		s.log.Infof(out.Sprintf("depth %d seldepth %d nodes %d nps %d time %d hashfull %d",
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime).Milliseconds(),
			hashfull))
	}
}

// sendIterationEndInfoToUci sends an info line after each completed
// iterative deepening iteration.
func (s *Search) sendIterationEndInfoToUci() {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendIterationEndInfo(
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.statistics.CurrentBestRootMoveValue,
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime),
			*s.pv[0])
	} else {
		s.log.Infof(out.Sprintf("depth %d seldepth %d value %s nodes %d nps %d time %d pv %s",
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.statistics.CurrentBestRootMoveValue.String(),
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime).Milliseconds(),
			s.pv[0].StringUci()))
	}
}

// getNps returns the current nodes-per-second rate relative to
// s.startTime, capped to avoid unrealistic values for very short times.
func (s *Search) getNps() uint64 {
	nps := util.Nps(s.nodesVisited, time.Since(s.startTime)+100)
	if nps > 15_000_000 {
		nps = 0
	}
	return nps
}

// getSearchTraceLog returns the search logger, preconfigured with a
// stdout backend, dedicated to search trace output.
func getSearchTraceLog() *logging.Logger {
	return myLogging.GetSearchLog()
}
