// Package dispatch routes inbound requests to the match manager and the
// admin controller. It is the explicit sequential processor: one request
// fully settles — load, validate, mutate, persist or delete — before the
// next one starts, mirroring single-threaded deterministic execution.
package dispatch

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/arbiterhq/arbiter/internal/admin"
	"github.com/arbiterhq/arbiter/internal/match"
	"github.com/arbiterhq/arbiter/pkg/matchdto"
)

type Dispatcher struct {
	mu      sync.Mutex
	matches *match.Manager
	admin   *admin.Controller
	log     *zap.Logger
}

func New(matches *match.Manager, adm *admin.Controller, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{matches: matches, admin: adm, log: log}
}

// StartMatch creates a match with requester as host/White and applies the
// opening move.
func (d *Dispatcher) StartMatch(ctx context.Context, requester string, req matchdto.StartMatchRequest) (*match.Match, error) {
	mv, err := toBoardMove(req.FirstMove)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.matches.StartMatch(ctx, requester, req.Opponent, mv)
}

// PlayMove applies one ply from requester to the named pair's match.
func (d *Dispatcher) PlayMove(ctx context.Context, requester string, req matchdto.PlayMoveRequest) (*match.Match, error) {
	mv, err := toBoardMove(req.Move)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.matches.PlayMove(ctx, requester, req.Host, req.Opponent, mv)
}

// CheckMatch looks up the pair's match without mutating it. Reads go
// through the same lock: the registry sees strictly serialized traffic.
func (d *Dispatcher) CheckMatch(ctx context.Context, host, opponent string) (*match.Match, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.matches.CheckMatch(ctx, host, opponent)
}

// UpdateAdmin delegates to the admin controller; a nil admin clears the
// record.
func (d *Dispatcher) UpdateAdmin(ctx context.Context, requester string, req matchdto.UpdateAdminRequest) error {
	next := ""
	if req.Admin != nil {
		next = *req.Admin
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.admin.Update(ctx, requester, next)
}

// Admin returns the current admin identity.
func (d *Dispatcher) Admin(ctx context.Context) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.admin.Admin(ctx)
}
