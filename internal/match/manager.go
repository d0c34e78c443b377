package match

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arbiterhq/arbiter/internal/board"
)

// Manager owns the match lifecycle against an injected registry: it loads,
// mutates through the state machine, and persists or deletes. Serialization
// of requests is the dispatcher's job; the manager assumes at most one
// writer per pair key at a time.
type Manager struct {
	store   Store
	archive *Archive
	log     *zap.Logger
}

func NewManager(store Store, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{store: store, log: log}
}

// AttachArchive wires a Postgres archive for terminal matches. Without one,
// concluded games simply vanish with their registry entry.
func (m *Manager) AttachArchive(a *Archive) {
	m.archive = a
}

// StartMatch creates a match with the requester as host/White, validating
// and applying the opening move before anything is persisted.
func (m *Manager) StartMatch(ctx context.Context, host, opponent string, firstMove board.Move) (*Match, error) {
	host = strings.TrimSpace(host)
	opponent = strings.TrimSpace(opponent)
	if host == "" || opponent == "" || host == opponent {
		return nil, fmt.Errorf("invalid participants")
	}

	mt, err := New(uuid.NewString(), host, opponent, firstMove)
	if err != nil {
		return nil, err
	}
	if err := m.store.Put(ctx, mt); err != nil {
		return nil, err
	}
	m.log.Info("match_start",
		zap.String("match_id", mt.ID),
		zap.String("host", host),
		zap.String("opponent", opponent),
		zap.String("first_move", firstMove.String()),
	)
	return mt, nil
}

// PlayMove applies one ply from requester to the pair's match. The registry
// write happens only after the state machine has fully accepted the move;
// a terminal result deletes the entry instead and goes to the archive.
func (m *Manager) PlayMove(ctx context.Context, requester, host, opponent string, mv board.Move) (*Match, error) {
	if !mv.InRange() {
		return nil, ErrOutOfRange
	}

	mt, err := m.store.Get(ctx, host, opponent)
	if err != nil {
		return nil, err
	}
	if err := mt.Apply(requester, mv); err != nil {
		return nil, err
	}

	if mt.Terminal() {
		if err := m.store.Delete(ctx, host, opponent); err != nil {
			return nil, err
		}
		m.archiveResult(ctx, mt)
	} else if err := m.store.Put(ctx, mt); err != nil {
		return nil, err
	}

	m.log.Info("match_move",
		zap.String("match_id", mt.ID),
		zap.String("requester", requester),
		zap.String("move", mv.String()),
		zap.String("status", string(mt.Status)),
		zap.String("side_to_move", mt.SideToMove.String()),
	)
	return mt, nil
}

// CheckMatch is the read-only lookup: current board, side to move and
// status, or ErrNoMatch once the game has concluded.
func (m *Manager) CheckMatch(ctx context.Context, host, opponent string) (*Match, error) {
	return m.store.Get(ctx, host, opponent)
}

// archiveResult persists a concluded match. Archive failures are logged and
// swallowed: the game outcome already stands and the caller's request
// succeeded.
func (m *Manager) archiveResult(ctx context.Context, mt *Match) {
	if m.archive == nil {
		return
	}
	if err := m.archive.SaveResult(ctx, mt); err != nil {
		m.log.Error("match_archive_error",
			zap.String("match_id", mt.ID),
			zap.String("status", string(mt.Status)),
			zap.Error(err),
		)
		return
	}
	m.log.Info("match_archived",
		zap.String("match_id", mt.ID),
		zap.String("status", string(mt.Status)),
		zap.String("winner", mt.Winner),
	)
}
