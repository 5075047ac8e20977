package engine

import "testing"

// perft counts the leaves of the full legal move tree to depth, the
// standard move-generator correctness oracle. Moves are filtered to
// legal ones by make's own legality gate rather than a separate legality
// check.
func perft(pos *Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	var nodes int64
	for _, m := range pos.GenerateMoves() {
		if !pos.MakeMove(m) {
			continue
		}
		nodes += perft(pos, depth-1)
		pos.UnmakeMove(m)
	}
	return nodes
}

func mustFEN(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q): %v", fen, err)
	}
	return pos
}

func TestPerftInitialPosition(t *testing.T) {
	depths := []int64{20, 400, 8902, 197281}
	if !testing.Short() {
		depths = append(depths, 4865609)
	}
	pos := mustFEN(t, FENStartPos)
	for i, want := range depths {
		depth := i + 1
		if got := perft(pos, depth); got != want {
			t.Errorf("perft(initial, %d) = %d, want %d", depth, got, want)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -"
	depths := []int64{48, 2039, 97862}
	if !testing.Short() {
		depths = append(depths, 4085603)
	}
	pos := mustFEN(t, fen)
	for i, want := range depths {
		depth := i + 1
		if got := perft(pos, depth); got != want {
			t.Errorf("perft(kiwipete, %d) = %d, want %d", depth, got, want)
		}
	}
}

func TestPerftPosition3(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -"
	depths := []int64{14, 191, 2812, 43238}
	if !testing.Short() {
		depths = append(depths, 674624)
	}
	pos := mustFEN(t, fen)
	for i, want := range depths {
		depth := i + 1
		if got := perft(pos, depth); got != want {
			t.Errorf("perft(position3, %d) = %d, want %d", depth, got, want)
		}
	}
}

func TestPerftPosition4(t *testing.T) {
	for _, fen := range []string{
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq -",
		"r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ -",
	} {
		pos := mustFEN(t, fen)
		if got := perft(pos, 4); got != 422333 {
			t.Errorf("perft(position4 %q, 4) = %d, want 422333", fen, got)
		}
	}
}

func TestPerftPosition5(t *testing.T) {
	fen := "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	pos := mustFEN(t, fen)
	if got := perft(pos, 3); got != 62379 {
		t.Errorf("perft(position5, 3) = %d, want 62379", got)
	}
}

func TestPerftPosition6(t *testing.T) {
	fen := "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10"
	pos := mustFEN(t, fen)
	if got := perft(pos, 3); got != 89890 {
		t.Errorf("perft(position6, 3) = %d, want 89890", got)
	}
	if !testing.Short() {
		if got := perft(pos, 5); got != 164075551 {
			t.Errorf("perft(position6, 5) = %d, want 164075551", got)
		}
	}
}
