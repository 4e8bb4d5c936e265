package index

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/casemine/casemine/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	p, err := NewProvider(&config.IndexConfig{}) // in-memory
	require.NoError(t, err)
	return p
}

func entry(caseID, groupID string, vec []float32) Entry {
	return Entry{
		CaseID:   caseID,
		GroupID:  groupID,
		Title:    "title " + caseID,
		Solution: "solution " + caseID,
		Vector:   vec,
	}
}

func TestUpsertAndQuery(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)

	require.NoError(t, p.Upsert(ctx, entry("c1", "g1", []float32{1, 0, 0})))
	require.NoError(t, p.Upsert(ctx, entry("c2", "g1", []float32{0, 1, 0})))

	hits, err := p.Query(ctx, "g1", []float32{0.9, 0.1, 0}, 5)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "c1", hits[0].CaseID)
	assert.Equal(t, "title c1", hits[0].Title)
	assert.Greater(t, hits[0].Score, hits[1].Score)
}

func TestQueryIsGroupScoped(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)

	require.NoError(t, p.Upsert(ctx, entry("c1", "g1", []float32{1, 0, 0})))
	require.NoError(t, p.Upsert(ctx, entry("c2", "g2", []float32{1, 0, 0})))

	hits, err := p.Query(ctx, "g2", []float32{1, 0, 0}, 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "c2", hits[0].CaseID)
}

func TestQueryEmptyIndex(t *testing.T) {
	p := newTestProvider(t)
	hits, err := p.Query(context.Background(), "g1", []float32{1, 0, 0}, 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestUpsertReplaces(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)

	require.NoError(t, p.Upsert(ctx, entry("c1", "g1", []float32{1, 0, 0})))
	e := entry("c1", "g1", []float32{0, 0, 1})
	e.Title = "updated"
	require.NoError(t, p.Upsert(ctx, e))

	hits, err := p.Query(ctx, "g1", []float32{0, 0, 1}, 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "updated", hits[0].Title)
	assert.Equal(t, []string{"c1"}, p.ListIDs())
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)

	require.NoError(t, p.Upsert(ctx, entry("c1", "g1", []float32{1, 0, 0})))
	require.NoError(t, p.Delete(ctx, "c1"))
	assert.False(t, p.Has("c1"))

	// deleting an absent ID is a no-op
	require.NoError(t, p.Delete(ctx, "c1"))

	hits, err := p.Query(ctx, "g1", []float32{1, 0, 0}, 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)

	require.NoError(t, p.Upsert(ctx, entry("c1", "g1", []float32{1, 0, 0})))
	require.NoError(t, p.Upsert(ctx, entry("c2", "g1", []float32{0, 1, 0})))
	require.NoError(t, p.Reset(ctx))

	assert.Empty(t, p.ListIDs())
	hits, err := p.Query(ctx, "g1", []float32{1, 0, 0}, 5)
	require.NoError(t, err)
	assert.Empty(t, hits)

	// index stays usable after reset
	require.NoError(t, p.Upsert(ctx, entry("c3", "g1", []float32{1, 0, 0})))
	assert.True(t, p.Has("c3"))
}

func TestPersistAndReload(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	p, err := NewProvider(&config.IndexConfig{PersistPath: dir})
	require.NoError(t, err)
	require.NoError(t, p.Upsert(ctx, entry("c1", "g1", []float32{1, 0, 0})))
	require.NoError(t, p.Upsert(ctx, entry("c2", "g2", []float32{0, 1, 0})))
	require.NoError(t, p.Close())

	reopened, err := NewProvider(&config.IndexConfig{PersistPath: dir})
	require.NoError(t, err)
	hits, err := reopened.Query(ctx, "g1", []float32{1, 0, 0}, 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "c1", hits[0].CaseID)

	// the ID set survives the restart together with the vectors
	assert.True(t, reopened.Has("c1"))
	assert.Equal(t, []string{"c1", "c2"}, reopened.ListIDs())

	require.NoError(t, reopened.Delete(ctx, "c1"))
	assert.Equal(t, []string{"c2"}, reopened.ListIDs())
}

func TestPersistAndReloadCompressed(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	cfg := &config.IndexConfig{PersistPath: dir, Compress: true}

	p, err := NewProvider(cfg)
	require.NoError(t, err)
	require.NoError(t, p.Upsert(ctx, entry("c1", "g1", []float32{1, 0, 0})))
	require.NoError(t, p.Close())

	reopened, err := NewProvider(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, reopened.ListIDs())
}

func TestCorruptSnapshotStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cases.gob"), []byte("not a gob"), 0o644))

	p, err := NewProvider(&config.IndexConfig{PersistPath: dir})
	require.NoError(t, err)
	assert.Empty(t, p.ListIDs())

	// still usable after the failed load
	require.NoError(t, p.Upsert(context.Background(), entry("c1", "g1", []float32{1, 0, 0})))
	assert.True(t, p.Has("c1"))
}

func TestTornSnapshotStartsEmpty(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	p, err := NewProvider(&config.IndexConfig{PersistPath: dir})
	require.NoError(t, err)
	require.NoError(t, p.Upsert(ctx, entry("c1", "g1", []float32{1, 0, 0})))
	require.NoError(t, p.Close())

	// the export without its ID set is a torn snapshot
	require.NoError(t, os.Remove(filepath.Join(dir, "ids.json")))

	reopened, err := NewProvider(&config.IndexConfig{PersistPath: dir})
	require.NoError(t, err)
	assert.Empty(t, reopened.ListIDs())
	hits, err := reopened.Query(ctx, "g1", []float32{1, 0, 0}, 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestRejectsEmptyIDs(t *testing.T) {
	p := newTestProvider(t)
	assert.Error(t, p.Upsert(context.Background(), Entry{GroupID: "g1", Vector: []float32{1}}))
	assert.Error(t, p.Upsert(context.Background(), Entry{CaseID: "c1", Vector: []float32{1}}))
}
