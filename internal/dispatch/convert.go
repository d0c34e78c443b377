package dispatch

import (
	"github.com/arbiterhq/arbiter/internal/board"
	"github.com/arbiterhq/arbiter/internal/match"
	"github.com/arbiterhq/arbiter/pkg/matchdto"
)

// toBoardMove converts the wire move into the domain move. Coordinates are
// carried through unchecked — range errors are the state machine's first
// check — but an unparseable promotion token is rejected here.
func toBoardMove(mv matchdto.Move) (board.Move, error) {
	promotion := board.NoKind
	if mv.Promotion != "" {
		parsed, err := board.ParseKind(mv.Promotion)
		if err != nil {
			return board.Move{}, match.ErrIllegalMove
		}
		promotion = parsed
	}
	return board.Move{
		From:      board.Coord{X: mv.Original[0], Y: mv.Original[1]},
		To:        board.Coord{X: mv.New[0], Y: mv.New[1]},
		Promotion: promotion,
	}, nil
}

// ToState projects a match onto its wire read model.
func ToState(m *match.Match) *matchdto.MatchState {
	if m == nil {
		return nil
	}
	moves := make([]string, len(m.Moves))
	for i, mv := range m.Moves {
		moves[i] = mv.String()
	}
	return &matchdto.MatchState{
		ID:         m.ID,
		Host:       m.Host,
		Opponent:   m.Opponent,
		Board:      m.Board.Rows(),
		SideToMove: m.SideToMove.String(),
		Status:     string(m.Status),
		Winner:     m.Winner,
		Moves:      moves,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
