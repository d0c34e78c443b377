// Package match implements the two-party match state machine, the registry
// that persists it, and the manager that ties the two together.
package match

import (
	"errors"
	"time"

	"github.com/arbiterhq/arbiter/internal/board"
)

// Status is the lifecycle state of a match. A match is created directly
// into StatusInProgress and becomes terminal exactly once.
type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusCheckmate  Status = "CHECKMATE"
	StatusStalemate  Status = "STALEMATE"
)

// The error taxonomy. Every operation on a match or the registry fails with
// exactly one of these kinds; callers surface them verbatim.
var (
	ErrOutOfRange           = errors.New("coordinate outside the board")
	ErrNoMatch              = errors.New("no active match for this pair")
	ErrNotYourTurn          = errors.New("it is not the requester's turn")
	ErrIllegalMove          = errors.New("illegal move")
	ErrMatchAlreadyFinished = errors.New("match already finished")
	ErrUnauthorized         = errors.New("requester is not a participant")
)

// Match is the persisted record of one game between a fixed, ordered
// (host, opponent) pair. The host plays White and made the first move.
type Match struct {
	ID         string       `json:"id"`
	Host       string       `json:"host"`
	Opponent   string       `json:"opponent"`
	Board      *board.Board `json:"board"`
	SideToMove board.Color  `json:"side_to_move"`
	Status     Status       `json:"status"`
	Winner     string       `json:"winner,omitempty"`
	Moves      []board.Move `json:"moves"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// Terminal reports whether the match accepts no further moves.
func (m *Match) Terminal() bool {
	return m.Status != StatusInProgress
}

// Copy returns a deep copy, so stores can hand out records without aliasing
// the caller's board.
func (m *Match) Copy() *Match {
	c := *m
	if m.Board != nil {
		c.Board = m.Board.Copy()
	}
	c.Moves = append([]board.Move(nil), m.Moves...)
	return &c
}
