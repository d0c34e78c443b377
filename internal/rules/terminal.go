package rules

import "github.com/arbiterhq/arbiter/internal/board"

// Outcome classifies a position for the side about to move.
type Outcome int

const (
	InProgress Outcome = iota
	Checkmate
	Stalemate
)

func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "in progress"
}

// Evaluate classifies the position for toMove. Checkmate and stalemate are
// mutually exclusive: both require the no-legal-move scan, and the in-check
// test decides between them.
func Evaluate(b *board.Board, toMove board.Color) Outcome {
	if HasAnyLegalMove(b, toMove) {
		return InProgress
	}
	if IsInCheck(b, toMove) {
		return Checkmate
	}
	return Stalemate
}

// HasAnyLegalMove reports whether colour has at least one legal move. It
// short-circuits on the first legal move found rather than generating the
// full move list.
func HasAnyLegalMove(b *board.Board, colour board.Color) bool {
	for _, placed := range b.PiecesOf(colour) {
		if pieceHasLegalMove(b, colour, placed) {
			return true
		}
	}
	return false
}

// LegalMoves returns every legal move for colour. Pawn moves onto the far
// rank expand into one move per promotion kind.
func LegalMoves(b *board.Board, colour board.Color) []board.Move {
	var out []board.Move
	for _, placed := range b.PiecesOf(colour) {
		for _, mv := range candidateMoves(b, colour, placed) {
			if IsLegal(b, colour, mv) {
				out = append(out, mv)
			}
		}
	}
	return out
}

func pieceHasLegalMove(b *board.Board, colour board.Color, placed board.Placed) bool {
	for _, mv := range candidateMoves(b, colour, placed) {
		if IsLegal(b, colour, mv) {
			return true
		}
	}
	return false
}

// candidateMoves generates destination squares matching the piece's movement
// pattern. Blocking, capture and self-check filtering happen in IsLegal; the
// generator only has to be a superset of the legal moves from the square.
func candidateMoves(b *board.Board, colour board.Color, placed board.Placed) []board.Move {
	from := placed.Coord
	var out []board.Move
	add := func(to board.Coord) {
		if !to.Valid() {
			return
		}
		lastRank := 7
		if colour == board.Black {
			lastRank = 0
		}
		if placed.Piece.Kind == board.Pawn && to.Y == lastRank {
			for _, k := range []board.PieceKind{board.Queen, board.Rook, board.Bishop, board.Knight} {
				out = append(out, board.Move{From: from, To: to, Promotion: k})
			}
			return
		}
		out = append(out, board.Move{From: from, To: to})
	}

	switch placed.Piece.Kind {
	case board.Pawn:
		dir := board.ColorOffset(colour)
		add(board.Coord{X: from.X, Y: from.Y + dir})
		add(board.Coord{X: from.X, Y: from.Y + 2*dir})
		add(board.Coord{X: from.X - 1, Y: from.Y + dir})
		add(board.Coord{X: from.X + 1, Y: from.Y + dir})
	case board.Knight:
		for _, off := range knightOffsets {
			add(board.Coord{X: from.X + off[0], Y: from.Y + off[1]})
		}
	case board.King:
		for _, off := range kingOffsets {
			add(board.Coord{X: from.X + off[0], Y: from.Y + off[1]})
		}
	case board.Bishop:
		addRays(add, b, from, diagonalDirs)
	case board.Rook:
		addRays(add, b, from, straightDirs)
	case board.Queen:
		addRays(add, b, from, diagonalDirs)
		addRays(add, b, from, straightDirs)
	}
	return out
}

// addRays walks each direction until the edge or the first occupied square,
// which is itself a candidate (a potential capture).
func addRays(add func(board.Coord), b *board.Board, from board.Coord, dirs [4][2]int) {
	for _, dir := range dirs {
		c := board.Coord{X: from.X + dir[0], Y: from.Y + dir[1]}
		for c.Valid() {
			add(c)
			if !b.IsEmpty(c) {
				break
			}
			c.X += dir[0]
			c.Y += dir[1]
		}
	}
}
