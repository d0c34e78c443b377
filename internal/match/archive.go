package match

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/arbiterhq/arbiter/internal/board"
)

// Archive records concluded matches in Postgres. The registry entry is
// deleted the moment a match turns terminal, so the archive is the only
// durable trace of a finished game.
type Archive struct {
	db *sql.DB
}

func NewArchive(databaseURL string) (*Archive, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, fmt.Errorf("database URL is required")
	}
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(16)
	db.SetMaxIdleConns(8)
	db.SetConnMaxLifetime(30 * time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return &Archive{db: db}, nil
}

func (a *Archive) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

// SaveResult upserts a terminal match into the archive table, keyed by the
// match UUID so redelivery is harmless.
func (a *Archive) SaveResult(ctx context.Context, m *Match) error {
	if a == nil || a.db == nil || m == nil {
		return nil
	}
	if !m.Terminal() {
		return nil
	}

	movesRaw, err := json.Marshal(moveStrings(m.Moves))
	if err != nil {
		return fmt.Errorf("marshal moves: %w", err)
	}
	duration := m.UpdatedAt.Sub(m.CreatedAt).Milliseconds()
	if duration < 0 {
		duration = 0
	}

	const q = `INSERT INTO arbiter_matches (
	    match_id, host, opponent, result, result_method, moves,
	    started_at, ended_at, duration_ms
	  ) VALUES ($1,$2,$3,$4,$5,$6::jsonb,$7,$8,$9)
	  ON CONFLICT (match_id) DO UPDATE SET
	    result=EXCLUDED.result,
	    result_method=EXCLUDED.result_method,
	    moves=EXCLUDED.moves,
	    started_at=EXCLUDED.started_at,
	    ended_at=EXCLUDED.ended_at,
	    duration_ms=EXCLUDED.duration_ms`

	_, err = a.db.ExecContext(ctx, q,
		m.ID, m.Host, m.Opponent,
		resultToken(m), resultMethod(m), string(movesRaw),
		m.CreatedAt, m.UpdatedAt, duration,
	)
	return err
}

// resultToken labels who won by colour, or "draw" for stalemate.
func resultToken(m *Match) string {
	if m.Status == StatusStalemate {
		return "draw"
	}
	if colour, ok := m.ColorOf(m.Winner); ok {
		return colour.String()
	}
	return ""
}

func resultMethod(m *Match) string {
	switch m.Status {
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	}
	return ""
}

func moveStrings(moves []board.Move) []string {
	out := make([]string, len(moves))
	for i, mv := range moves {
		out[i] = mv.String()
	}
	return out
}
