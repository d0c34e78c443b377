// Package board holds the passive chess data model: coordinates, pieces,
// moves and the 8x8 board itself. No rule knowledge lives here.
package board

import (
	"encoding/json"
	"fmt"
)

// Color identifies a chess side. The host of a match always plays White.
type Color int

const (
	White Color = iota
	Black
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// MarshalJSON encodes a colour as "white" or "black".
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "white":
		*c = White
	case "black":
		*c = Black
	default:
		return fmt.Errorf("unknown colour %q", s)
	}
	return nil
}

// ColorOffset returns the pawn advance direction: +1 for White, -1 for Black.
func ColorOffset(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// PieceKind enumerates the six piece types. NoKind is the zero value and
// doubles as "no promotion" on a Move.
type PieceKind int

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = []string{"", "pawn", "knight", "bishop", "rook", "queen", "king"}

func (k PieceKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind parses a lowercase piece kind name. The empty string maps to
// NoKind.
func ParseKind(s string) (PieceKind, error) {
	for i, name := range kindNames {
		if s == name {
			return PieceKind(i), nil
		}
	}
	return NoKind, fmt.Errorf("unknown piece kind %q", s)
}

func (k PieceKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *PieceKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Letter returns the FEN-style letter for the kind: uppercase for White,
// lowercase for Black. Empty squares render as '.'.
func (k PieceKind) Letter(c Color) byte {
	letters := []byte{'.', 'p', 'n', 'b', 'r', 'q', 'k'}
	if int(k) >= len(letters) || k == NoKind {
		return '.'
	}
	l := letters[k]
	if c == White {
		return l - 'a' + 'A'
	}
	return l
}

// Piece is an occupied square's content. The zero value (Kind == NoKind)
// means "no piece".
type Piece struct {
	Kind  PieceKind `json:"kind"`
	Color Color     `json:"color"`
}

// IsZero reports whether the piece value denotes an empty square.
func (p Piece) IsZero() bool { return p.Kind == NoKind }

// Coord addresses a square: X is the file (0 = a), Y is the rank
// (0 = White's home rank). Both must be in [0,7].
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Valid reports whether the coordinate lies on the board.
func (c Coord) Valid() bool {
	return c.X >= 0 && c.X <= 7 && c.Y >= 0 && c.Y <= 7
}

// String renders the coordinate in algebraic form ("e2"). Off-board
// coordinates render with their raw components.
func (c Coord) String() string {
	if !c.Valid() {
		return fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}
	return fmt.Sprintf("%c%d", byte('a'+c.X), c.Y+1)
}

// Move is a request to move the piece on From to To. Promotion must be set
// exactly when a pawn reaches the farthest rank, and must be NoKind
// otherwise.
type Move struct {
	From      Coord     `json:"from"`
	To        Coord     `json:"to"`
	Promotion PieceKind `json:"promotion,omitempty"`
}

// InRange reports whether both endpoints lie on the board. Range errors are
// a distinct failure from illegality and are checked first.
func (m Move) InRange() bool {
	return m.From.Valid() && m.To.Valid()
}

// String renders the move in coordinate notation ("e2e4", "e7e8=q").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += "=" + string(m.Promotion.Letter(Black))
	}
	return s
}
