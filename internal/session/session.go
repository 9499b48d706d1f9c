// Package session tracks ephemeral per-session like counters.
//
// Counters live only in process memory: they start at zero for every
// new session and are lost on restart. There is no cross-session
// aggregation and nothing is persisted.
package session

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/okian/greenwatch/internal/domain/types"
	"github.com/okian/greenwatch/pkg/metrics"
)

// Kind identifies one of the reaction buttons.
type Kind string

// Known reaction kinds.
const (
	KindLike Kind = "like"
	KindStar Kind = "star"
)

// ParseKind maps a user-supplied reaction name to a known Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindLike:
		return KindLike, nil
	case KindStar:
		return KindStar, nil
	}
	return "", ErrUnknownKind
}

// Registry holds the per-session counters behind a mutex. Sessions are
// identified by opaque UUIDs minted by NewSession.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*types.LikeCounts
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*types.LikeCounts),
	}
}

// NewSession mints a fresh session ID with zeroed counters.
func (r *Registry) NewSession(ctx context.Context) string {
	id := uuid.NewString()
	r.mu.Lock()
	r.sessions[id] = &types.LikeCounts{}
	count := len(r.sessions)
	r.mu.Unlock()
	metrics.UpdateActiveSessions(count)
	return id
}

// Increment bumps one counter of a session and returns the new counts.
// An unknown session ID lazily gets fresh counters; the ID is opaque so
// a stale cookie after a restart simply starts from zero again.
func (r *Registry) Increment(ctx context.Context, sessionID string, kind Kind) (types.LikeCounts, error) {
	switch kind {
	case KindLike, KindStar:
	default:
		return types.LikeCounts{}, ErrUnknownKind
	}

	r.mu.Lock()
	c, ok := r.sessions[sessionID]
	if !ok {
		c = &types.LikeCounts{}
		r.sessions[sessionID] = c
	}
	if kind == KindLike {
		c.Likes++
	} else {
		c.Stars++
	}
	out := *c
	count := len(r.sessions)
	r.mu.Unlock()

	metrics.RecordLike(string(kind))
	metrics.UpdateActiveSessions(count)
	return out, nil
}

// Counts returns the current counters of a session. Unknown sessions
// report zeros.
func (r *Registry) Counts(ctx context.Context, sessionID string) types.LikeCounts {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.sessions[sessionID]; ok {
		return *c
	}
	return types.LikeCounts{}
}

// Size returns the number of sessions currently tracked.
func (r *Registry) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
