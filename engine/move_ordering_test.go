package engine

import "testing"

func TestScoreMovesPVFirst(t *testing.T) {
	pos, err := FromFEN(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	moves := pos.GenerateMoves()
	pv := moves[len(moves)/2].Base()
	var cutoffs cutoffTable
	pos.ScoreMoves(moves, pv, &cutoffs)

	best := moves[0]
	for _, m := range moves[1:] {
		if m.SortKey() > best.SortKey() {
			best = m
		}
	}
	if best.Base() != pv {
		t.Errorf("PV move did not receive the top sort key")
	}
	if best.SortKey() != sortKeyPV {
		t.Errorf("PV move sort key = %d, want %d", best.SortKey(), sortKeyPV)
	}
}

func TestScoreMovesMVVLVA(t *testing.T) {
	pos, err := FromFEN("4k3/8/8/3q4/2P5/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	moves := pos.GenerateMoves()
	var cutoffs cutoffTable
	pos.ScoreMoves(moves, NoMove, &cutoffs)
	for _, m := range moves {
		if pos.Get(m.To()) != Empty {
			if m.SortKey() < sortKeyCaptures {
				t.Errorf("capture %s scored below the capture band: %d", MoveToAlgebraic(m), m.SortKey())
			}
		}
	}
}

func TestCutoffIndexRange(t *testing.T) {
	for i := 0; i < 64; i++ {
		for j := 0; j < 64; j++ {
			idx := cutoffIndex(MAP8X8[i], MAP8X8[j])
			if idx < 0 || idx >= 64*64 {
				t.Fatalf("cutoffIndex(%d,%d) = %d out of range", i, j, idx)
			}
		}
	}
}
