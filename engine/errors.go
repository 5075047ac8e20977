package engine

import "errors"

// FEN parsing fails with one of these sentinel errors, wrapped with the
// offending input so both errors.Is and a human-readable message are
// available to the caller.
var (
	ErrEmptyFEN           = errors.New("engine: empty FEN")
	ErrIllegalPlacement   = errors.New("engine: illegal piece placement character")
	ErrIllegalSide        = errors.New("engine: missing or illegal side to move")
	ErrIllegalCastling    = errors.New("engine: illegal castling character")
	ErrIllegalEnPassant   = errors.New("engine: illegal en-passant square")
	ErrIllegalHalfMove    = errors.New("engine: illegal half-move clock")
	ErrMissingWhiteKing   = errors.New("engine: no white king on board")
	ErrMissingBlackKing   = errors.New("engine: no black king on board")
)
