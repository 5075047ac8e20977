package engine

import "fmt"

// MakeMove applies m to the position. It is the sole legality gate: it
// always applies the move, then rejects (restoring the position via
// unmakeMove) if the mover's own king ends up attacked. Returns true iff
// the move was legal and the position advanced.
func (pos *Position) MakeMove(m Move) bool {
	m = m.Base()
	from, to, promo := m.From(), m.To(), m.Promotion()

	mover := pos.board[from]
	captured := pos.board[to]
	priorState := pos.state
	us := priorState.Side()
	them := us.Opposite()

	enPassant := isEnPassantCapture(mover, to, priorState.EnPassant())
	castle := isCastle(mover, from, to)
	doublePush := isDoublePush(mover, from, to)

	var epCapSq Square
	if enPassant {
		epCapSq = Square(int(to) - pawnStep(us))
		captured = pos.board[epCapSq]
	}

	var newEP Square
	if doublePush {
		newEP = Square((int(from) + int(to)) / 2)
	}

	newHalfMove := priorState.HalfMove() + 1
	if mover.Figure() == Pawn || captured != Empty {
		newHalfMove = 0
	}

	newCastle := priorState.Castling() & castleMask[from] & castleMask[to]

	pos.board[from] = Empty
	if promo != NoFigure {
		pos.board[to] = MakePiece(us, promo)
	} else {
		pos.board[to] = mover
	}

	if enPassant {
		pos.board[epCapSq] = Empty
	}

	if mover.Figure() == King {
		if us == White {
			pos.kingWhite = to
		} else {
			pos.kingBlack = to
		}
		if castle {
			rookFrom, rookTo := castleRookSquares(us, to)
			pos.board[rookTo] = pos.board[rookFrom]
			pos.board[rookFrom] = Empty
		}
	}

	pos.state = packState(them, newCastle, newEP, newHalfMove)

	pos.history = append(pos.history, undoInfo{
		captured:   captured,
		priorState: priorState,
		preHash:    pos.hash,
	})

	if pos.IsAttackedBy(pos.KingSquare(us), them) {
		pos.unmakeMove(m, from, to, promo, mover, captured, priorState, enPassant, castle)
		return false
	}

	pos.setHash()
	return true
}

// UnmakeMove reverses the most recent MakeMove(m). The history top must
// have been produced by make of m; calling this otherwise is a programmer
// error.
func (pos *Position) UnmakeMove(m Move) {
	m = m.Base()
	from, to, promo := m.From(), m.To(), m.Promotion()
	mover := pos.board[to]
	us := pos.state.Side().Opposite() // state currently reflects the side after the move

	n := len(pos.history)
	if n == 0 {
		panic("engine: UnmakeMove called with empty history")
	}
	undo := pos.history[n-1]

	enPassant := isEnPassantCapture(originalMover(mover, promo, us), to, undo.priorState.EnPassant())
	castle := isCastle(originalMover(mover, promo, us), from, to)

	pos.unmakeMove(m, from, to, promo, originalMover(mover, promo, us), undo.captured, undo.priorState, enPassant, castle)
}

// originalMover reconstructs the piece that stood on `from` before the
// move, undoing a promotion (the moved piece is always a pawn of us in
// that case).
func originalMover(onTo Piece, promo Figure, us Color) Piece {
	if promo != NoFigure {
		return MakePiece(us, Pawn)
	}
	return onTo
}

func (pos *Position) unmakeMove(m Move, from, to Square, promo Figure, mover, captured Piece, priorState GameState, enPassant, castle bool) {
	n := len(pos.history)
	undo := pos.history[n-1]
	pos.history = pos.history[:n-1]

	us := priorState.Side()

	pos.board[from] = mover
	pos.board[to] = Empty

	if enPassant {
		capSq := Square(int(to) - pawnStep(us))
		pos.board[capSq] = captured
	} else if captured != Empty {
		pos.board[to] = captured
	}

	if mover.Figure() == King {
		if us == White {
			pos.kingWhite = from
		} else {
			pos.kingBlack = from
		}
		if castle {
			rookFrom, rookTo := castleRookSquares(us, to)
			pos.board[rookFrom] = pos.board[rookTo]
			pos.board[rookTo] = Empty
		}
	}

	pos.state = priorState
	pos.hash = undo.preHash
}

func pawnStep(us Color) int {
	if us == White {
		return pawnPushWhite
	}
	return pawnPushBlack
}

// castleRookSquares returns the rook's from/to cells for a castling king
// move to `to` by color us.
func castleRookSquares(us Color, kingTo Square) (from, to Square) {
	if us == White {
		if kingTo == RankFile(7, 6) {
			return RankFile(7, 7), RankFile(7, 5)
		}
		return RankFile(7, 0), RankFile(7, 3)
	}
	if kingTo == RankFile(0, 6) {
		return RankFile(0, 7), RankFile(0, 5)
	}
	return RankFile(0, 0), RankFile(0, 3)
}

// LegalMoves filters GenerateMoves down to moves for which MakeMove
// succeeds, immediately unmaking each trial. Convenience for callers (a
// protocol adapter, tests) that want the true legal move set rather than
// the pseudo-legal one.
func (pos *Position) LegalMoves() []Move {
	pseudo := pos.GenerateMoves()
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if pos.MakeMove(m) {
			pos.UnmakeMove(m)
			legal = append(legal, m)
		}
	}
	return legal
}

// MakeMoveAlgebraic parses s as long algebraic notation ("e2e4", "e7e8q"),
// finds the matching generated move and applies it. s naming an illegal
// move is a programmer error, not a user-facing validation path, and
// panics rather than returning false.
func (pos *Position) MakeMoveAlgebraic(s string) {
	m := AlgebraicToMove(s)
	for _, g := range pos.GenerateMoves() {
		if g.Base() == m && pos.MakeMove(g) {
			return
		}
	}
	panic(fmt.Sprintf("engine: MakeMoveAlgebraic: illegal move %q", s))
}
