package engine

import "testing"

func TestSetHashMatchesRecompute(t *testing.T) {
	pos, err := FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	if err != nil {
		t.Fatal(err)
	}
	want := pos.hash
	pos.setHash()
	if pos.hash != want {
		t.Errorf("setHash() changed an already-correct hash: got %#x, want %#x", pos.hash, want)
	}
}

func TestHashDiffersAfterMove(t *testing.T) {
	pos, err := FromFEN(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	before := pos.Hash()
	pos.MakeMoveAlgebraic("e2e4")
	if pos.Hash() == before {
		t.Errorf("hash did not change after a move")
	}
	pos.UnmakeMove(NewMove(MustSquare(t, "e2"), MustSquare(t, "e4"), NoFigure))
	if pos.Hash() != before {
		t.Errorf("hash not restored after unmake: got %#x, want %#x", pos.Hash(), before)
	}
}

func MustSquare(t *testing.T, s string) Square {
	t.Helper()
	sq, err := SquareFromString(s)
	if err != nil {
		t.Fatalf("SquareFromString(%q): %v", s, err)
	}
	return sq
}
