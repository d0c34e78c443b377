// Package rules implements move legality, check detection and terminal-state
// classification over the passive board model.
package rules

import "github.com/arbiterhq/arbiter/internal/board"

var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsLegal reports whether the candidate move is legal for side right now:
// pseudo-legal per the piece's movement pattern, and leaving side's own king
// out of check once applied.
func IsLegal(b *board.Board, side board.Color, mv board.Move) bool {
	if !mv.InRange() {
		return false
	}
	if !pseudoLegal(b, side, mv) {
		return false
	}
	scratch := b.Copy()
	Apply(scratch, mv)
	return !IsInCheck(scratch, side)
}

// Apply mutates b with an already validated move: the piece on From is
// lifted onto To, replacing any capture, and promotions swap in the new
// kind. Callers own legality checking.
func Apply(b *board.Board, mv board.Move) {
	p, ok := b.PieceAt(mv.From)
	if !ok {
		return
	}
	if mv.Promotion != board.NoKind {
		p = board.Piece{Kind: mv.Promotion, Color: p.Color}
	}
	b.Remove(mv.From)
	b.Place(mv.To, p)
}

// pseudoLegal checks the movement pattern, blocking and capture rules,
// ignoring whether the mover's own king ends up in check.
func pseudoLegal(b *board.Board, side board.Color, mv board.Move) bool {
	if mv.From == mv.To {
		return false
	}
	p, ok := b.PieceAt(mv.From)
	if !ok || p.Color != side {
		return false
	}
	if dest, occupied := b.PieceAt(mv.To); occupied && dest.Color == side {
		return false
	}
	// Promotion is a pawn-only attribute.
	if mv.Promotion != board.NoKind && p.Kind != board.Pawn {
		return false
	}

	dx := mv.To.X - mv.From.X
	dy := mv.To.Y - mv.From.Y

	switch p.Kind {
	case board.Pawn:
		return pawnPseudoLegal(b, side, mv, dx, dy)
	case board.Knight:
		for _, off := range knightOffsets {
			if dx == off[0] && dy == off[1] {
				return true
			}
		}
		return false
	case board.Bishop:
		return abs(dx) == abs(dy) && pathClear(b, mv.From, mv.To)
	case board.Rook:
		return (dx == 0 || dy == 0) && pathClear(b, mv.From, mv.To)
	case board.Queen:
		if abs(dx) != abs(dy) && dx != 0 && dy != 0 {
			return false
		}
		return pathClear(b, mv.From, mv.To)
	case board.King:
		return abs(dx) <= 1 && abs(dy) <= 1
	}
	return false
}

func pawnPseudoLegal(b *board.Board, side board.Color, mv board.Move, dx, dy int) bool {
	dir := board.ColorOffset(side)
	homeRank, lastRank := 1, 7
	if side == board.Black {
		homeRank, lastRank = 6, 0
	}

	// Promotion is mandatory on the farthest rank and forbidden elsewhere.
	if mv.To.Y == lastRank {
		switch mv.Promotion {
		case board.Knight, board.Bishop, board.Rook, board.Queen:
		default:
			return false
		}
	} else if mv.Promotion != board.NoKind {
		return false
	}

	switch {
	case dx == 0 && dy == dir:
		return b.IsEmpty(mv.To)
	case dx == 0 && dy == 2*dir:
		between := board.Coord{X: mv.From.X, Y: mv.From.Y + dir}
		return mv.From.Y == homeRank && b.IsEmpty(between) && b.IsEmpty(mv.To)
	case abs(dx) == 1 && dy == dir:
		dest, occupied := b.PieceAt(mv.To)
		return occupied && dest.Color != side
	}
	return false
}

// pathClear walks the straight or diagonal line between from and to,
// exclusive of both endpoints, and reports whether every square is empty.
func pathClear(b *board.Board, from, to board.Coord) bool {
	dx := sign(to.X - from.X)
	dy := sign(to.Y - from.Y)
	c := board.Coord{X: from.X + dx, Y: from.Y + dy}
	for c != to {
		if !b.IsEmpty(c) {
			return false
		}
		c.X += dx
		c.Y += dy
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
