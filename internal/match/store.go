package match

import (
	"context"
	"strings"
)

// Store is the injected match registry: one record per ordered
// (host, opponent) pair. The engine has no knowledge of the storage engine
// behind it.
type Store interface {
	// Get loads the match for the pair, or ErrNoMatch.
	Get(ctx context.Context, host, opponent string) (*Match, error)
	// Put persists or overwrites the match under its pair key.
	Put(ctx context.Context, m *Match) error
	// Delete removes the pair's record. Deleting an absent key is not an
	// error.
	Delete(ctx context.Context, host, opponent string) error
}

func pairKey(host, opponent string) string {
	return strings.TrimSpace(host) + ":" + strings.TrimSpace(opponent)
}
