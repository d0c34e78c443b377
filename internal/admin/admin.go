// Package admin holds the administrative identity record. It sits entirely
// outside the chess state machine: a single configuration value with its own
// access-control check.
package admin

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// ErrUnauthorized is returned when anyone but the current admin attempts an
// administrative operation.
var ErrUnauthorized = errors.New("sender is not the current admin")

// Store persists the admin identity. The empty string means "no admin set".
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, admin string) error
}

// Controller guards reads and updates of the admin record.
type Controller struct {
	store Store
	log   *zap.Logger
}

func NewController(store Store, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{store: store, log: log}
}

// Seed installs the initial admin if none is set yet. Called once at boot
// with the configured identity; a no-op when a record already exists.
func (c *Controller) Seed(ctx context.Context, initial string) error {
	initial = strings.TrimSpace(initial)
	if initial == "" {
		return nil
	}
	current, err := c.store.Load(ctx)
	if err != nil {
		return err
	}
	if current != "" {
		return nil
	}
	return c.store.Save(ctx, initial)
}

// Admin returns the current admin identity, or the empty string when unset.
func (c *Controller) Admin(ctx context.Context) (string, error) {
	return c.store.Load(ctx)
}

// Update replaces the admin identity. Only the current admin may update;
// passing the empty string clears the record, leaving the service without
// an admin.
func (c *Controller) Update(ctx context.Context, sender, next string) error {
	current, err := c.store.Load(ctx)
	if err != nil {
		return err
	}
	if current == "" || sender != current {
		return ErrUnauthorized
	}
	next = strings.TrimSpace(next)
	if err := c.store.Save(ctx, next); err != nil {
		return err
	}
	c.log.Info("admin_update",
		zap.String("sender", sender),
		zap.String("admin", next),
	)
	return nil
}
