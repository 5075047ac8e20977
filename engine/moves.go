package engine

// Move packs a legality-relevant 32-bit value (from, to, promotion figure)
// plus 32 spare high bits used transiently as a move-ordering sort key.
// Consumers mask back to the low 32 bits (Base) before decoding.
type Move uint64

// NoMove is the zero Move, used as a "no PV move yet" sentinel.
const NoMove Move = 0

const moveBaseMask = 0xFFFFFFFF

// NewMove builds a Move from its from-cell, to-cell and promotion figure
// (NoFigure for a non-promoting move).
func NewMove(from, to Square, promo Figure) Move {
	return Move(from) | Move(to)<<8 | Move(promo)<<16
}

// From returns the move's origin cell.
func (m Move) From() Square { return Square(m & 0xFF) }

// To returns the move's destination cell.
func (m Move) To() Square { return Square((m >> 8) & 0xFF) }

// Promotion returns the promotion figure, or NoFigure for a non-promoting
// move.
func (m Move) Promotion() Figure { return Figure((m >> 16) & 0xFF) }

// Base strips any sort key, leaving only the from/to/promotion bits.
func (m Move) Base() Move { return m & moveBaseMask }

// SortKey returns the ordering key written by ScoreMoves.
func (m Move) SortKey() int32 { return int32(m >> 32) }

// WithSortKey returns m with its high 32 bits replaced by key.
func (m Move) WithSortKey(key int32) Move {
	return m.Base() | Move(uint32(key))<<32
}

var promotionFigures = [4]Figure{Bishop, Knight, Rook, Queen}

const (
	pawnPushWhite = -10
	pawnPushBlack = 10
)

var pawnCaptureSteps = [2]int{-1, 1}

// GenerateMoves returns all pseudo-legal moves for the side to move:
// pushes, captures (including en-passant), promotions, slider and jumper
// moves, and castling. Legality (own king left in check) is not checked
// here; MakeMove is the legality gate.
func (pos *Position) GenerateMoves() []Move {
	moves := make([]Move, 0, 64)
	us := pos.SideToMove()
	moves = pos.generatePawnMoves(moves, us, false)
	moves = pos.generatePieceMoves(moves, us, false)
	moves = pos.generateCastling(moves, us)
	return moves
}

// CaptureMoves returns only captures and capture-promotions (including
// en-passant), for use by quiescence search.
func (pos *Position) CaptureMoves() []Move {
	moves := make([]Move, 0, 32)
	us := pos.SideToMove()
	moves = pos.generatePawnMoves(moves, us, true)
	moves = pos.generatePieceMoves(moves, us, true)
	return moves
}

func (pos *Position) generatePawnMoves(moves []Move, us Color, capturesOnly bool) []Move {
	push := pawnPushWhite
	startRank, promoteFromRank := 6, 1
	if us == Black {
		push = pawnPushBlack
		startRank, promoteFromRank = 1, 6
	}
	pawn := MakePiece(us, Pawn)

	for i := 0; i < 64; i++ {
		from := MAP8X8[i]
		if pos.board[from] != pawn {
			continue
		}
		r := REV8X8[from] / 8

		if !capturesOnly {
			to := Square(int(from) + push)
			if pos.board[to] == Empty {
				if r == promoteFromRank {
					moves = appendPromotions(moves, from, to)
				} else {
					moves = append(moves, NewMove(from, to, NoFigure))
					if r == startRank {
						to2 := Square(int(to) + push)
						if pos.board[to2] == Empty {
							moves = append(moves, NewMove(from, to2, NoFigure))
						}
					}
				}
			}
		}

		for _, d := range pawnCaptureSteps {
			to := Square(int(from) + push + d)
			target := pos.board[to]
			if target == OffBoard {
				continue
			}
			if to == pos.state.EnPassant() {
				moves = append(moves, NewMove(from, to, NoFigure))
				continue
			}
			if target == Empty || target.Color() == us {
				continue
			}
			if r == promoteFromRank {
				moves = appendPromotions(moves, from, to)
			} else {
				moves = append(moves, NewMove(from, to, NoFigure))
			}
		}
	}
	return moves
}

func appendPromotions(moves []Move, from, to Square) []Move {
	for _, f := range promotionFigures {
		moves = append(moves, NewMove(from, to, f))
	}
	return moves
}

func (pos *Position) generatePieceMoves(moves []Move, us Color, capturesOnly bool) []Move {
	for i := 0; i < 64; i++ {
		from := MAP8X8[i]
		p := pos.board[from]
		if p == Empty || p.Color() != us {
			continue
		}
		switch p.Figure() {
		case Knight:
			moves = pos.generateJumps(moves, from, us, knightSteps[:], capturesOnly)
		case King:
			moves = pos.generateJumps(moves, from, us, kingSteps[:], capturesOnly)
		case Bishop:
			moves = pos.generateSlides(moves, from, us, bishopSteps[:], capturesOnly)
		case Rook:
			moves = pos.generateSlides(moves, from, us, rookSteps[:], capturesOnly)
		case Queen:
			moves = pos.generateSlides(moves, from, us, bishopSteps[:], capturesOnly)
			moves = pos.generateSlides(moves, from, us, rookSteps[:], capturesOnly)
		case Pawn:
			// handled by generatePawnMoves
		default:
			panic("engine: generatePieceMoves: unexpected piece kind")
		}
	}
	return moves
}

func (pos *Position) generateJumps(moves []Move, from Square, us Color, steps []int, capturesOnly bool) []Move {
	for _, d := range steps {
		to := Square(int(from) + d)
		target := pos.board[to]
		if target == OffBoard || target.Color() == us {
			continue
		}
		if capturesOnly && target == Empty {
			continue
		}
		moves = append(moves, NewMove(from, to, NoFigure))
	}
	return moves
}

func (pos *Position) generateSlides(moves []Move, from Square, us Color, steps []int, capturesOnly bool) []Move {
	for _, d := range steps {
		for to := Square(int(from) + d); ; to = Square(int(to) + d) {
			target := pos.board[to]
			if target == OffBoard {
				break
			}
			if target == Empty {
				if !capturesOnly {
					moves = append(moves, NewMove(from, to, NoFigure))
				}
				continue
			}
			if target.Color() != us {
				moves = append(moves, NewMove(from, to, NoFigure))
			}
			break
		}
	}
	return moves
}

func (pos *Position) generateCastling(moves []Move, us Color) []Move {
	rights := pos.state.Castling()
	opp := us.Opposite()

	if us == White {
		e1, f1, g1 := RankFile(7, 4), RankFile(7, 5), RankFile(7, 6)
		d1, c1, b1 := RankFile(7, 3), RankFile(7, 2), RankFile(7, 1)
		if rights&WhiteKingSide != 0 &&
			pos.board[f1] == Empty && pos.board[g1] == Empty &&
			!pos.IsAttackedBy(e1, opp) && !pos.IsAttackedBy(f1, opp) {
			moves = append(moves, NewMove(e1, g1, NoFigure))
		}
		if rights&WhiteQueenSide != 0 &&
			pos.board[d1] == Empty && pos.board[c1] == Empty && pos.board[b1] == Empty &&
			!pos.IsAttackedBy(e1, opp) && !pos.IsAttackedBy(d1, opp) {
			moves = append(moves, NewMove(e1, c1, NoFigure))
		}
	} else {
		e8, f8, g8 := RankFile(0, 4), RankFile(0, 5), RankFile(0, 6)
		d8, c8, b8 := RankFile(0, 3), RankFile(0, 2), RankFile(0, 1)
		if rights&BlackKingSide != 0 &&
			pos.board[f8] == Empty && pos.board[g8] == Empty &&
			!pos.IsAttackedBy(e8, opp) && !pos.IsAttackedBy(f8, opp) {
			moves = append(moves, NewMove(e8, g8, NoFigure))
		}
		if rights&BlackQueenSide != 0 &&
			pos.board[d8] == Empty && pos.board[c8] == Empty && pos.board[b8] == Empty &&
			!pos.IsAttackedBy(e8, opp) && !pos.IsAttackedBy(d8, opp) {
			moves = append(moves, NewMove(e8, c8, NoFigure))
		}
	}
	return moves
}

// isCastle reports whether m is a king move of two files, the encoding
// MakeMove uses to recognize and apply the matching rook motion.
func isCastle(p Piece, from, to Square) bool {
	if p.Figure() != King {
		return false
	}
	diff := int(to) - int(from)
	return diff == 2 || diff == -2
}

func isEnPassantCapture(p Piece, to Square, ep Square) bool {
	return p.Figure() == Pawn && to == ep && ep != 0
}

func isDoublePush(p Piece, from, to Square) bool {
	if p.Figure() != Pawn {
		return false
	}
	diff := int(to) - int(from)
	return diff == 20 || diff == -20
}
