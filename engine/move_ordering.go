package engine

const (
	sortKeyPV       = 1_000_000_000
	sortKeyCaptures = 1_000_000
)

// cutoffTable is the history heuristic: cutoffTable[from64*64+to64]
// accumulates MaxDepth - ply each time a (from,to) move raises alpha in
// the full-width search; ScoreMoves reads it only for quiet moves. One
// table per think() invocation.
type cutoffTable [64 * 64]int32

func cutoffIndex(from, to Square) int {
	return REV8X8[from]*64 + REV8X8[to]
}

// ScoreMoves assigns each move a descending-priority sort key (written
// into its high 32 bits): the PV move first, then MVV/LVA captures, then
// quiet moves by history-heuristic score. It does not sort; callers sort
// by SortKey() descending (an unstable sort is fine).
func (pos *Position) ScoreMoves(moves []Move, pv Move, cutoffs *cutoffTable) {
	for i, m := range moves {
		base := m.Base()
		if base == pv.Base() && pv != NoMove {
			moves[i] = base.WithSortKey(sortKeyPV)
			continue
		}
		target := pos.board[m.To()]
		isEnPassant := target == Empty && m.To() == pos.state.EnPassant() && pos.board[m.From()].Figure() == Pawn
		if target != Empty || isEnPassant {
			captured := target.Figure()
			if isEnPassant {
				captured = Pawn
			}
			attacker := pos.board[m.From()].Figure()
			key := sortKeyCaptures + 10*int(captured) - int(attacker)
			moves[i] = base.WithSortKey(int32(key))
			continue
		}
		key := int32(0)
		if cutoffs != nil {
			key = cutoffs[cutoffIndex(m.From(), m.To())]
		}
		moves[i] = base.WithSortKey(key)
	}
}
