package rules

import "github.com/arbiterhq/arbiter/internal/board"

// IsInCheck reports whether colour's king is attacked by any enemy piece.
// A board without the requested king is never in check; such positions only
// occur in hand-built test fixtures.
func IsInCheck(b *board.Board, colour board.Color) bool {
	king, ok := b.King(colour)
	if !ok {
		return false
	}
	return squareAttacked(b, king, colour.Opposite())
}

// squareAttacked reports whether sq is attacked by any piece of byColour.
// Pseudo-legal attack paths only: the attacker's own king exposure is
// irrelevant when testing check.
func squareAttacked(b *board.Board, sq board.Coord, byColour board.Color) bool {
	// Pawns attack one square diagonally forward, so an attacking pawn sits
	// one rank behind sq relative to its own direction of travel.
	pawnRank := sq.Y - board.ColorOffset(byColour)
	for _, dx := range []int{-1, 1} {
		c := board.Coord{X: sq.X + dx, Y: pawnRank}
		if p, ok := b.PieceAt(c); ok && p.Color == byColour && p.Kind == board.Pawn {
			return true
		}
	}

	for _, off := range knightOffsets {
		c := board.Coord{X: sq.X + off[0], Y: sq.Y + off[1]}
		if p, ok := b.PieceAt(c); ok && p.Color == byColour && p.Kind == board.Knight {
			return true
		}
	}

	for _, off := range kingOffsets {
		c := board.Coord{X: sq.X + off[0], Y: sq.Y + off[1]}
		if p, ok := b.PieceAt(c); ok && p.Color == byColour && p.Kind == board.King {
			return true
		}
	}

	if slidingAttack(b, sq, byColour, diagonalDirs, board.Bishop) {
		return true
	}
	return slidingAttack(b, sq, byColour, straightDirs, board.Rook)
}

// slidingAttack scans outward along dirs until blocked, looking for the
// given slider kind or a queen of byColour.
func slidingAttack(b *board.Board, sq board.Coord, byColour board.Color, dirs [4][2]int, kind board.PieceKind) bool {
	for _, dir := range dirs {
		c := board.Coord{X: sq.X + dir[0], Y: sq.Y + dir[1]}
		for c.Valid() {
			if p, ok := b.PieceAt(c); ok {
				if p.Color == byColour && (p.Kind == kind || p.Kind == board.Queen) {
					return true
				}
				break
			}
			c.X += dir[0]
			c.Y += dir[1]
		}
	}
	return false
}
