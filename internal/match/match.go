package match

import (
	"time"

	"github.com/arbiterhq/arbiter/internal/board"
	"github.com/arbiterhq/arbiter/internal/rules"
)

// New creates a match between host (White) and opponent (Black) and applies
// the host's opening move as the first ply, so a match is never observable
// before any move has been made.
func New(id, host, opponent string, firstMove board.Move) (*Match, error) {
	now := time.Now().UTC()
	m := &Match{
		ID:         id,
		Host:       host,
		Opponent:   opponent,
		Board:      board.StartingPosition(),
		SideToMove: board.White,
		Status:     StatusInProgress,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := m.Apply(host, firstMove); err != nil {
		return nil, err
	}
	return m, nil
}

// Apply validates and commits one ply from requester. On any error the
// match is untouched: the move is simulated on a scratch board and only
// swapped in once it has passed every check.
func (m *Match) Apply(requester string, mv board.Move) error {
	if m.Terminal() {
		return ErrMatchAlreadyFinished
	}
	if !mv.InRange() {
		return ErrOutOfRange
	}
	colour, ok := m.participantColor(requester)
	if !ok {
		return ErrUnauthorized
	}
	if colour != m.SideToMove {
		return ErrNotYourTurn
	}
	if !rules.IsLegal(m.Board, colour, mv) {
		return ErrIllegalMove
	}

	next := m.Board.Copy()
	rules.Apply(next, mv)

	m.Board = next
	m.Moves = append(m.Moves, mv)
	m.SideToMove = colour.Opposite()
	m.UpdatedAt = time.Now().UTC()

	switch rules.Evaluate(m.Board, m.SideToMove) {
	case rules.Checkmate:
		m.Status = StatusCheckmate
		m.Winner = requester
	case rules.Stalemate:
		m.Status = StatusStalemate
	}
	return nil
}

// participantColor maps an identity onto its side. The pair is ordered:
// the host is always White.
func (m *Match) participantColor(id string) (board.Color, bool) {
	switch id {
	case m.Host:
		return board.White, true
	case m.Opponent:
		return board.Black, true
	}
	return board.White, false
}

// ColorOf exposes the participant mapping for callers that only need to
// label a side, such as the archive.
func (m *Match) ColorOf(id string) (board.Color, bool) {
	return m.participantColor(id)
}
