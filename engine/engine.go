package engine

import (
	"sort"
	"time"
)

// MateValue is the score assigned to an immediate checkmate at ply 0;
// scores near it encode mate distance.
const MateValue = 100000

// MaxDepth bounds recursion: the PV table and iterative deepening loop
// never search past it.
const MaxDepth = 32

// checkNodesInterval is how often (in visited nodes) the search checks
// the wall clock against its time budget.
const checkNodesInterval = 1024

// Options configures a single Think invocation.
type Options struct {
	// DisableQuiescence makes leaf nodes return the static evaluation
	// directly instead of running quiescence. Useful for perft-adjacent
	// smoke tests that want a shallow, deterministic leaf.
	DisableQuiescence bool
	// MaxDepth overrides MaxDepth as the iterative-deepening ceiling, if
	// non-zero and smaller.
	MaxDepth int
}

// Stats reports what a completed or aborted Think did.
type Stats struct {
	Depth   int
	Nodes   int64
	Elapsed time.Duration
}

// InfoSink receives principal-variation updates as the search progresses.
// It is the engine's only reporting channel; a protocol adapter (not part
// of this package) is expected to translate calls into its own wire
// format.
type InfoSink interface {
	ThinkInfo(depth int, scoreCP int, mateIn int, nodes int64, elapsed time.Duration, pv []string)
}

// NopSink discards every ThinkInfo call. The zero value is ready to use.
type NopSink struct{}

// ThinkInfo implements InfoSink by doing nothing.
func (NopSink) ThinkInfo(int, int, int, int64, time.Duration, []string) {}

// Engine runs iterative-deepening search against a single Position. It is
// not safe for concurrent use; callers wanting parallel search run
// independent Engines over independent Positions.
type Engine struct {
	Options Options

	pos       *Position
	sink      InfoSink
	cutoffs   cutoffTable
	pvTable   [MaxDepth + 1][MaxDepth + 1]Move
	pvLen     [MaxDepth + 1]int
	prevPV    [MaxDepth + 1]Move
	prevPVLen int
	nodes     int64
	deadline  time.Time
	start     time.Time
	stop      bool
	lastStat  Stats
}

// NewEngine returns an Engine ready to search pos with the given options.
func NewEngine(pos *Position, opts Options) *Engine {
	return &Engine{Options: opts, pos: pos}
}

// Stats returns the Stats recorded by the most recent Think call.
func (e *Engine) Stats() Stats { return e.lastStat }

func (e *Engine) effectiveMaxDepth() int {
	if e.Options.MaxDepth > 0 && e.Options.MaxDepth < MaxDepth {
		return e.Options.MaxDepth
	}
	return MaxDepth
}

// Think runs iterative deepening from depth 1 up to maxDepth (or the
// Engine's configured ceiling, whichever is smaller), bounded by
// budgetMs wall-clock milliseconds. It returns the best move found by the
// last fully completed depth, or NoMove if the position has no legal
// moves at any searched depth.
func (e *Engine) Think(budgetMs int, maxDepth int, sink InfoSink) Move {
	if sink == nil {
		sink = NopSink{}
	}
	e.sink = sink
	e.nodes = 0
	e.stop = false
	e.cutoffs = cutoffTable{}
	e.start = time.Now()
	e.deadline = e.start.Add(time.Duration(budgetMs) * time.Millisecond)
	e.prevPVLen = 0

	ceiling := e.effectiveMaxDepth()
	if maxDepth <= 0 || maxDepth > ceiling {
		maxDepth = ceiling
	}

	best := NoMove
	completedDepth := 0

	for depth := 1; depth <= maxDepth; depth++ {
		for i := range e.pvLen {
			e.pvLen[i] = 0
		}
		score := e.search(-MateValue, MateValue, 0, depth, true)
		if e.stop {
			break
		}
		completedDepth = depth
		if e.pvLen[0] > 0 {
			best = e.pvTable[0][0]
		}
		e.prevPVLen = e.pvLen[0]
		copy(e.prevPV[:e.prevPVLen], e.pvTable[0][:e.prevPVLen])
		e.reportRoot(depth, score)
		if abs(score) >= MateValue-MaxDepth {
			break
		}
	}

	e.lastStat = Stats{Depth: completedDepth, Nodes: e.nodes, Elapsed: time.Since(e.start)}
	return best
}

func (e *Engine) reportRoot(depth, score int) {
	mateIn := 0
	if a := abs(score); a >= MateValue-MaxDepth {
		mateIn = (MateValue - a) / 2
		if score < 0 {
			mateIn = -mateIn
		}
	}
	pvStrings := make([]string, e.pvLen[0])
	for i := 0; i < e.pvLen[0]; i++ {
		pvStrings[i] = MoveToAlgebraic(e.pvTable[0][i])
	}
	e.sink.ThinkInfo(depth, score, mateIn, e.nodes, time.Since(e.start), pvStrings)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (e *Engine) timeUp() bool {
	e.nodes++
	if e.nodes%checkNodesInterval != 0 {
		return false
	}
	if time.Now().After(e.deadline) {
		e.stop = true
	}
	return e.stop
}

func sortMoves(moves []Move) {
	sort.Slice(moves, func(i, j int) bool {
		return moves[i].SortKey() > moves[j].SortKey()
	})
}

// search is a fail-hard negamax alpha-beta with PV tracking, check
// extension, repetition/fifty-move draw detection and move ordering.
func (e *Engine) search(alpha, beta, ply, depth int, followPV bool) int {
	if e.timeUp() {
		return 0
	}

	pos := e.pos
	if ply > 0 && pos.Repetitions() > 0 {
		return 0
	}
	if pos.FiftyMoveDraw() {
		return 0
	}
	if ply >= MaxDepth-1 {
		return pos.Evaluate()
	}
	if depth <= 0 {
		if e.Options.DisableQuiescence {
			return pos.Evaluate()
		}
		return e.quiesce(alpha, beta, ply, followPV)
	}

	inCheck := pos.InCheck()
	if inCheck {
		depth++
	}

	moves := pos.GenerateMoves()
	var pvMove Move
	if followPV && ply < e.prevPVLen {
		pvMove = e.prevPV[ply]
	}
	pos.ScoreMoves(moves, pvMove, &e.cutoffs)
	sortMoves(moves)

	legalCount := 0
	childFollowsPV := followPV
	for _, m := range moves {
		if !pos.MakeMove(m) {
			continue
		}
		legalCount++
		e.pvLen[ply+1] = 0
		score := -e.search(-beta, -alpha, ply+1, depth-1, childFollowsPV)
		pos.UnmakeMove(m)
		childFollowsPV = false

		if e.stop {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
			e.cutoffs[cutoffIndex(m.From(), m.To())] += int32(MaxDepth - ply)
			e.pvTable[ply][0] = m
			copy(e.pvTable[ply][1:], e.pvTable[ply+1][:e.pvLen[ply+1]])
			e.pvLen[ply] = e.pvLen[ply+1] + 1
		}
	}

	if legalCount == 0 {
		if inCheck {
			return -MateValue + ply
		}
		return 0
	}
	return alpha
}

// quiesce extends only capturing lines to avoid horizon effects. Callers
// must not invoke this when Options.DisableQuiescence is set.
func (e *Engine) quiesce(alpha, beta, ply int, followPV bool) int {
	if e.timeUp() {
		return 0
	}

	pos := e.pos
	standPat := pos.Evaluate()
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if ply >= MaxDepth-1 {
		return standPat
	}

	moves := pos.CaptureMoves()
	var pvMove Move
	if followPV && ply < e.prevPVLen {
		pvMove = e.prevPV[ply]
	}
	pos.ScoreMoves(moves, pvMove, nil)
	sortMoves(moves)

	childFollowsPV := followPV
	for _, m := range moves {
		if !pos.MakeMove(m) {
			continue
		}
		e.pvLen[ply+1] = 0
		score := -e.quiesce(-beta, -alpha, ply+1, childFollowsPV)
		pos.UnmakeMove(m)
		childFollowsPV = false

		if e.stop {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
			e.pvTable[ply][0] = m
			copy(e.pvTable[ply][1:], e.pvTable[ply+1][:e.pvLen[ply+1]])
			e.pvLen[ply] = e.pvLen[ply+1] + 1
		}
	}
	return alpha
}
