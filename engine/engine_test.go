package engine

import (
	"testing"
	"time"
)

type recordingSink struct {
	calls int
	last  []string
}

func (r *recordingSink) ThinkInfo(depth, scoreCP, mateIn int, nodes int64, elapsed time.Duration, pv []string) {
	r.calls++
	r.last = pv
}

func TestThinkSmokeTest(t *testing.T) {
	fen := "1rb2rk1/p4ppp/1p1qp1n1/3n2N1/2pP4/2P3P1/PPQ2PBP/R1B1R1K1 w - - 4 17"
	pos, err := FromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	e := NewEngine(pos, Options{})
	sink := &recordingSink{}
	budget := 2000
	if testing.Short() {
		budget = 300
	}
	move := e.Think(budget, 6, sink)
	if move == NoMove {
		t.Fatalf("Think returned no move")
	}
	stats := e.Stats()
	if stats.Depth == 0 {
		t.Fatalf("Think completed no depth")
	}
	if sink.calls == 0 {
		t.Errorf("expected at least one ThinkInfo callback")
	}
	if got := len(sink.last); got != stats.Depth {
		t.Errorf("pv length = %d, want %d (= completed depth, no mate found)", got, stats.Depth)
	}
}

func TestThinkFindsMateInOne(t *testing.T) {
	// White to move, back-rank mate pattern: Qd1-d8 mates.
	pos, err := FromFEN("6k1/5ppp/8/8/8/8/8/3Q2K1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	e := NewEngine(pos, Options{})
	move := e.Think(2000, 4, NopSink{})
	if move == NoMove {
		t.Fatalf("Think returned no move")
	}
	if !pos.MakeMove(move) {
		t.Fatalf("best move %s was illegal", MoveToAlgebraic(move))
	}
	if !pos.InCheck() || len(pos.LegalMoves()) != 0 {
		t.Errorf("best move %s does not mate", MoveToAlgebraic(move))
	}
}

func TestThinkNoLegalMoves(t *testing.T) {
	// Stalemate: black king on h8, white queen f7, white king g6; Black
	// to move is not in check and has no legal move.
	pos, err := FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if len(pos.LegalMoves()) != 0 {
		t.Skip("position is not actually terminal; skipping")
	}
	e := NewEngine(pos, Options{})
	move := e.Think(500, 4, NopSink{})
	if move != NoMove {
		t.Errorf("Think from a terminal position returned %s, want NoMove", MoveToAlgebraic(move))
	}
}
