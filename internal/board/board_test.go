package board

import (
	"encoding/json"
	"testing"
)

func TestStartingPositionRows(t *testing.T) {
	b := StartingPosition()
	want := []string{
		"RNBQKBNR",
		"PPPPPPPP",
		"........",
		"........",
		"........",
		"........",
		"pppppppp",
		"rnbqkbnr",
	}
	got := b.Rows()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAccessors(t *testing.T) {
	b := New()
	c := Coord{X: 4, Y: 3}
	if !b.IsEmpty(c) {
		t.Fatalf("new board square should be empty")
	}
	b.Place(c, Piece{Kind: Knight, Color: Black})
	p, ok := b.PieceAt(c)
	if !ok || p.Kind != Knight || p.Color != Black {
		t.Fatalf("PieceAt = %+v, %v", p, ok)
	}
	if b.IsEmpty(c) {
		t.Fatalf("square should be occupied")
	}
	b.Remove(c)
	if _, ok := b.PieceAt(c); ok {
		t.Fatalf("square should be empty after Remove")
	}
}

func TestOffBoardAccess(t *testing.T) {
	b := StartingPosition()
	if _, ok := b.PieceAt(Coord{X: 8, Y: 0}); ok {
		t.Fatalf("off-board coordinate reported a piece")
	}
	if b.IsEmpty(Coord{X: -1, Y: 0}) {
		t.Fatalf("off-board coordinate should never be empty")
	}
}

func TestPiecesOfAndKing(t *testing.T) {
	b := StartingPosition()
	if n := len(b.PiecesOf(White)); n != 16 {
		t.Fatalf("white has %d pieces, want 16", n)
	}
	if n := len(b.PiecesOf(Black)); n != 16 {
		t.Fatalf("black has %d pieces, want 16", n)
	}
	wk, ok := b.King(White)
	if !ok || wk != (Coord{X: 4, Y: 0}) {
		t.Fatalf("white king at %v", wk)
	}
	bk, ok := b.King(Black)
	if !ok || bk != (Coord{X: 4, Y: 7}) {
		t.Fatalf("black king at %v", bk)
	}
}

func TestBoardJSONRoundTrip(t *testing.T) {
	b := StartingPosition()
	b.Remove(Coord{X: 4, Y: 1})
	b.Place(Coord{X: 4, Y: 3}, Piece{Kind: Pawn, Color: White})

	raw, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Board
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := back.Rows()
	for i, row := range b.Rows() {
		if got[i] != row {
			t.Fatalf("row %d = %q, want %q", i, got[i], row)
		}
	}
}

func TestBoardJSONRejectsBadInput(t *testing.T) {
	var b Board
	if err := json.Unmarshal([]byte(`["RNBQKBNR"]`), &b); err == nil {
		t.Fatalf("expected error for short board")
	}
	if err := json.Unmarshal([]byte(`["XNBQKBNR","PPPPPPPP","........","........","........","........","pppppppp","rnbqkbnr"]`), &b); err == nil {
		t.Fatalf("expected error for unknown letter")
	}
}

func TestMoveString(t *testing.T) {
	mv := Move{From: Coord{X: 4, Y: 1}, To: Coord{X: 4, Y: 3}}
	if mv.String() != "e2e4" {
		t.Fatalf("move string = %q", mv.String())
	}
	promo := Move{From: Coord{X: 0, Y: 6}, To: Coord{X: 0, Y: 7}, Promotion: Queen}
	if promo.String() != "a7a8=q" {
		t.Fatalf("promotion string = %q", promo.String())
	}
}

func TestCoordValidity(t *testing.T) {
	for _, c := range []Coord{{0, 0}, {7, 7}, {3, 5}} {
		if !c.Valid() {
			t.Fatalf("%v should be valid", c)
		}
	}
	for _, c := range []Coord{{8, 0}, {0, 8}, {-1, 3}, {3, -1}} {
		if c.Valid() {
			t.Fatalf("%v should be invalid", c)
		}
	}
}

func TestColorJSON(t *testing.T) {
	raw, err := json.Marshal(Black)
	if err != nil || string(raw) != `"black"` {
		t.Fatalf("marshal black = %s, %v", raw, err)
	}
	var c Color
	if err := json.Unmarshal([]byte(`"white"`), &c); err != nil || c != White {
		t.Fatalf("unmarshal white = %v, %v", c, err)
	}
	if err := json.Unmarshal([]byte(`"green"`), &c); err == nil {
		t.Fatalf("expected error for unknown colour")
	}
}
