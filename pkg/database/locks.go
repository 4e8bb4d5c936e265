package database

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"
)

// GroupLocker serializes per-group pipeline work across all replicas using
// PostgreSQL session advisory locks. Buffer rewrites and case extraction for
// one group must never interleave; advisory locks give that guarantee even
// with multiple worker pods sharing the database.
//
// Each Acquire checks out a dedicated connection and takes
// pg_advisory_lock(key) on it; Release unlocks and returns the connection.
type GroupLocker struct {
	db *sql.DB
}

// NewGroupLocker creates a locker backed by the given connection pool.
func NewGroupLocker(db *sql.DB) *GroupLocker {
	return &GroupLocker{db: db}
}

// GroupLock is a held per-group advisory lock.
type GroupLock struct {
	conn *sql.Conn
	key  int64
}

// Acquire blocks until the advisory lock for groupID is held.
// The returned lock MUST be released with Release; it pins a pooled
// connection for its lifetime.
func (l *GroupLocker) Acquire(ctx context.Context, groupID string) (*GroupLock, error) {
	conn, err := l.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check out connection for group lock: %w", err)
	}

	key := groupLockKey(groupID)
	if _, err := conn.ExecContext(ctx, "SELECT pg_advisory_lock($1)", key); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to acquire group lock for %s: %w", groupID, err)
	}

	return &GroupLock{conn: conn, key: key}, nil
}

// TryAcquire attempts the lock without blocking.
// Returns (nil, nil) when another holder has the lock.
func (l *GroupLocker) TryAcquire(ctx context.Context, groupID string) (*GroupLock, error) {
	conn, err := l.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check out connection for group lock: %w", err)
	}

	key := groupLockKey(groupID)
	var acquired bool
	if err := conn.QueryRowContext(ctx, "SELECT pg_try_advisory_lock($1)", key).Scan(&acquired); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to try group lock for %s: %w", groupID, err)
	}
	if !acquired {
		_ = conn.Close()
		return nil, nil
	}

	return &GroupLock{conn: conn, key: key}, nil
}

// Release unlocks and returns the pinned connection to the pool.
// Safe to call on a nil lock.
func (g *GroupLock) Release(ctx context.Context) error {
	if g == nil || g.conn == nil {
		return nil
	}
	_, err := g.conn.ExecContext(ctx, "SELECT pg_advisory_unlock($1)", g.key)
	closeErr := g.conn.Close()
	g.conn = nil
	if err != nil {
		return fmt.Errorf("failed to release group lock: %w", err)
	}
	return closeErr
}

// groupLockKey maps a group id to a stable 64-bit advisory lock key.
func groupLockKey(groupID string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("casemine:group:" + groupID))
	return int64(h.Sum64())
}
