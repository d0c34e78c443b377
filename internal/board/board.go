package board

import (
	"encoding/json"
	"fmt"
)

// Board is an 8x8 grid of optionally occupied squares. It is a passive data
// structure: all legality checking lives in the rules package.
type Board struct {
	squares [8][8]Piece // indexed [y][x]
}

// New returns an empty board.
func New() *Board {
	return &Board{}
}

// StartingPosition returns a board set up for the standard opening position,
// with White on ranks 0 and 1.
func StartingPosition() *Board {
	b := New()
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x := 0; x < 8; x++ {
		b.squares[0][x] = Piece{Kind: backRank[x], Color: White}
		b.squares[1][x] = Piece{Kind: Pawn, Color: White}
		b.squares[6][x] = Piece{Kind: Pawn, Color: Black}
		b.squares[7][x] = Piece{Kind: backRank[x], Color: Black}
	}
	return b
}

// PieceAt returns the piece on c and whether the square is occupied.
func (b *Board) PieceAt(c Coord) (Piece, bool) {
	if !c.Valid() {
		return Piece{}, false
	}
	p := b.squares[c.Y][c.X]
	return p, !p.IsZero()
}

// Place puts a piece on c, replacing whatever was there.
func (b *Board) Place(c Coord, p Piece) {
	if c.Valid() {
		b.squares[c.Y][c.X] = p
	}
}

// Remove clears the square at c.
func (b *Board) Remove(c Coord) {
	if c.Valid() {
		b.squares[c.Y][c.X] = Piece{}
	}
}

// IsEmpty reports whether c holds no piece. Off-board coordinates report
// occupied so callers never walk through them.
func (b *Board) IsEmpty(c Coord) bool {
	if !c.Valid() {
		return false
	}
	return b.squares[c.Y][c.X].IsZero()
}

// Placed pairs a coordinate with the piece occupying it.
type Placed struct {
	Coord Coord
	Piece Piece
}

// PiecesOf returns every piece of the given colour in rank-then-file order.
func (b *Board) PiecesOf(c Color) []Placed {
	var out []Placed
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			p := b.squares[y][x]
			if !p.IsZero() && p.Color == c {
				out = append(out, Placed{Coord: Coord{X: x, Y: y}, Piece: p})
			}
		}
	}
	return out
}

// King returns the coordinate of the given colour's king.
func (b *Board) King(c Color) (Coord, bool) {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			p := b.squares[y][x]
			if p.Kind == King && p.Color == c {
				return Coord{X: x, Y: y}, true
			}
		}
	}
	return Coord{}, false
}

// Copy returns a deep copy. Used to simulate moves on a scratch board
// before committing them.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// Rows renders the board as eight strings of eight FEN-style letters, rank 0
// first. This is both the persistence encoding and the wire representation.
func (b *Board) Rows() []string {
	rows := make([]string, 8)
	for y := 0; y < 8; y++ {
		line := make([]byte, 8)
		for x := 0; x < 8; x++ {
			p := b.squares[y][x]
			line[x] = p.Kind.Letter(p.Color)
		}
		rows[y] = string(line)
	}
	return rows
}

// MarshalJSON encodes the board as its row strings.
func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Rows())
}

// UnmarshalJSON decodes the row-string encoding produced by MarshalJSON.
func (b *Board) UnmarshalJSON(data []byte) error {
	var rows []string
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	if len(rows) != 8 {
		return fmt.Errorf("board has %d rows, want 8", len(rows))
	}
	var squares [8][8]Piece
	for y, row := range rows {
		if len(row) != 8 {
			return fmt.Errorf("board row %d has %d squares, want 8", y, len(row))
		}
		for x := 0; x < 8; x++ {
			p, err := pieceFromLetter(row[x])
			if err != nil {
				return fmt.Errorf("board row %d: %w", y, err)
			}
			squares[y][x] = p
		}
	}
	b.squares = squares
	return nil
}

func pieceFromLetter(l byte) (Piece, error) {
	if l == '.' {
		return Piece{}, nil
	}
	color := Black
	if l >= 'A' && l <= 'Z' {
		color = White
		l = l - 'A' + 'a'
	}
	for k := Pawn; k <= King; k++ {
		if k.Letter(Black) == l {
			return Piece{Kind: k, Color: color}, nil
		}
	}
	return Piece{}, fmt.Errorf("unknown square letter %q", string(l))
}
