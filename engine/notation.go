package engine

import "fmt"

var symbolToPromotion = map[byte]Figure{
	'b': Bishop, 'n': Knight, 'r': Rook, 'q': Queen,
}

var promotionToSymbol = map[Figure]byte{
	Bishop: 'b', Knight: 'n', Rook: 'r', Queen: 'q',
}

// AlgebraicToMove decodes long algebraic notation ("e2e4", "e7e8q") into a
// Move. It is a pure decoder, not a legality check: it does not consult any
// Position. Malformed notation (wrong length, unparseable square, an
// unrecognized promotion letter) is a programmer error, not a user-facing
// validation path, and panics rather than signalling failure through a
// return value.
func AlgebraicToMove(s string) Move {
	if len(s) != 4 && len(s) != 5 {
		panic(fmt.Sprintf("engine: AlgebraicToMove: malformed move %q", s))
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		panic(fmt.Sprintf("engine: AlgebraicToMove: %v", err))
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		panic(fmt.Sprintf("engine: AlgebraicToMove: %v", err))
	}
	promo := NoFigure
	if len(s) == 5 {
		f, ok := symbolToPromotion[s[4]]
		if !ok {
			panic(fmt.Sprintf("engine: AlgebraicToMove: illegal promotion %q", s[4:]))
		}
		promo = f
	}
	return NewMove(from, to, promo)
}

// MoveToAlgebraic renders m as long algebraic notation.
func MoveToAlgebraic(m Move) string {
	m = m.Base()
	s := m.From().String() + m.To().String()
	if p := m.Promotion(); p != NoFigure {
		s += string(promotionToSymbol[p])
	}
	return s
}
