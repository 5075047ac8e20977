package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the standard starting position.
var FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var symbolToPiece = map[byte]Piece{
	'P': MakePiece(White, Pawn), 'B': MakePiece(White, Bishop), 'N': MakePiece(White, Knight),
	'R': MakePiece(White, Rook), 'Q': MakePiece(White, Queen), 'K': MakePiece(White, King),
	'p': MakePiece(Black, Pawn), 'b': MakePiece(Black, Bishop), 'n': MakePiece(Black, Knight),
	'r': MakePiece(Black, Rook), 'q': MakePiece(Black, Queen), 'k': MakePiece(Black, King),
}

// undoInfo records what make() needs to restore on unmake(): the piece
// captured (Empty if none), the complete prior state word, and the hash
// the position had before the move. It plays the role of the single
// packed "undo word + pre-move hash" history record from the spec.
type undoInfo struct {
	captured   Piece
	priorState GameState
	preHash    uint64
}

// Position is a mutable chess position: a 10x12 mailbox board plus packed
// game state, cached king squares, a running Zobrist hash and a LIFO
// history of undo records. The zero Position is not valid; construct one
// with FromFEN.
type Position struct {
	board     [120]Piece
	state     GameState
	kingWhite Square
	kingBlack Square
	hash      uint64
	history   []undoInfo
}

// NewPosition returns an empty board with every on-board cell set to
// Empty and every margin cell set to OffBoard. It has no kings and is not
// itself a legal position; FromFEN uses it as scratch space.
func NewPosition() *Position {
	pos := &Position{}
	for i := range pos.board {
		pos.board[i] = OffBoard
	}
	for i := 0; i < 64; i++ {
		pos.board[MAP8X8[i]] = Empty
	}
	return pos
}

// FromFEN parses the first six FEN fields (the move number, if present, is
// ignored) into a new Position.
func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, ErrEmptyFEN
	}

	pos := NewPosition()

	sq := 0
	for _, c := range fields[0] {
		if c == '/' {
			continue
		}
		if c >= '1' && c <= '8' {
			sq += int(c - '0')
			continue
		}
		pi, ok := symbolToPiece[byte(c)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrIllegalPlacement, c)
		}
		if sq >= 64 {
			return nil, fmt.Errorf("%w: too many squares", ErrIllegalPlacement)
		}
		pos.board[MAP8X8[sq]] = pi
		sq++
	}

	var side Color
	if len(fields) < 2 {
		return nil, ErrIllegalSide
	}
	switch fields[1] {
	case "w":
		side = White
	case "b":
		side = Black
	default:
		return nil, fmt.Errorf("%w: %q", ErrIllegalSide, fields[1])
	}

	var castle Castle
	if len(fields) >= 3 && fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				castle |= WhiteKingSide
			case 'Q':
				castle |= WhiteQueenSide
			case 'k':
				castle |= BlackKingSide
			case 'q':
				castle |= BlackQueenSide
			default:
				return nil, fmt.Errorf("%w: %q", ErrIllegalCastling, c)
			}
		}
	}

	var ep Square
	if len(fields) >= 4 && fields[3] != "-" {
		sq, err := SquareFromString(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrIllegalEnPassant, fields[3])
		}
		ep = sq
	}

	halfMove := 0
	if len(fields) >= 5 {
		v, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrIllegalHalfMove, fields[4])
		}
		if v < 0 || v >= 100 {
			return nil, fmt.Errorf("%w: %d", ErrIllegalHalfMove, v)
		}
		halfMove = v
	}

	pos.state = packState(side, castle, ep, halfMove)

	pos.kingWhite = -1
	pos.kingBlack = -1
	for i := 0; i < 64; i++ {
		c := MAP8X8[i]
		switch pos.board[c] {
		case MakePiece(White, King):
			pos.kingWhite = c
		case MakePiece(Black, King):
			pos.kingBlack = c
		}
	}
	if pos.kingWhite == -1 {
		return nil, ErrMissingWhiteKing
	}
	if pos.kingBlack == -1 {
		return nil, ErrMissingBlackKing
	}

	pos.setHash()
	return pos, nil
}

// String renders the position back to FEN (six standard fields). The
// move number is not tracked, so the sixth field is always written as 1.
func (pos *Position) String() string {
	var b strings.Builder
	for r := 0; r < 8; r++ {
		empty := 0
		for f := 0; f < 8; f++ {
			pi := pos.board[RankFile(r, f)]
			if pi == Empty {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte(byte('0' + empty))
				empty = 0
			}
			b.WriteByte(pi.Symbol())
		}
		if empty > 0 {
			b.WriteByte(byte('0' + empty))
		}
		if r != 7 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	if pos.WhiteToMove() {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}

	b.WriteByte(' ')
	b.WriteString(pos.state.Castling().String())

	b.WriteByte(' ')
	if ep := pos.state.EnPassant(); ep == 0 {
		b.WriteByte('-')
	} else {
		b.WriteString(ep.String())
	}

	fmt.Fprintf(&b, " %d 1", pos.state.HalfMove())
	return b.String()
}

// WhiteToMove reports whether White is to move.
func (pos *Position) WhiteToMove() bool {
	return pos.state.Side() == White
}

// SideToMove returns the color to move.
func (pos *Position) SideToMove() Color {
	return pos.state.Side()
}

// Get returns the piece on sq (Empty if the square is vacant, OffBoard if
// sq is off the 8x8 board).
func (pos *Position) Get(sq Square) Piece {
	return pos.board[sq]
}

// KingSquare returns the cached square of c's king.
func (pos *Position) KingSquare(c Color) Square {
	if c == White {
		return pos.kingWhite
	}
	return pos.kingBlack
}

// Hash returns the position's current Zobrist fingerprint.
func (pos *Position) Hash() uint64 {
	return pos.hash
}

// InCheck reports whether the side to move's king is currently attacked.
func (pos *Position) InCheck() bool {
	us := pos.SideToMove()
	return pos.IsAttackedBy(pos.KingSquare(us), us.Opposite())
}

// FiftyMoveDraw reports whether the fifty-move (100-ply) rule applies.
func (pos *Position) FiftyMoveDraw() bool {
	return pos.state.HalfMove() >= 100
}

// Repetitions returns how many times the current hash has occurred among
// the positions reachable within the current fifty-move window (i.e. the
// count of prior history entries, within the last HalfMove() plies, whose
// pre-move hash equals the current hash).
func (pos *Position) Repetitions() int {
	n := len(pos.history)
	fifty := pos.state.HalfMove()
	if fifty > n {
		fifty = n
	}
	reps := 0
	for k := n - fifty; k < n; k++ {
		if pos.history[k].preHash == pos.hash {
			reps++
		}
	}
	return reps
}
