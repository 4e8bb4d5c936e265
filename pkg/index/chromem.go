// Package index provides the vector index over solved cases. It wraps an
// embedded chromem-go database: vectors are computed externally and passed
// in pre-computed, queries filter by group so retrieval never crosses
// group boundaries.
package index

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/casemine/casemine/pkg/config"
	"github.com/philippgille/chromem-go"
)

const collectionName = "solved_cases"

// Entry is one indexed case. Only solved cases with a non-empty solution
// belong in the index; the caller enforces that before upserting.
type Entry struct {
	CaseID   string
	GroupID  string
	Title    string
	Solution string
	Vector   []float32
}

// Hit is one retrieval result.
type Hit struct {
	CaseID string
	Title  string
	Score  float32
}

// Provider is the embedded vector index. Safe for concurrent use.
//
// The index is a cache over the relational store, never the source of
// truth: it tracks its own ID set so the reconciler can compare it
// against the store and converge after crashes or partial writes.
type Provider struct {
	db          *chromem.DB
	col         *chromem.Collection
	persistPath string
	compress    bool

	mu  sync.RWMutex
	ids map[string]struct{}

	logger *slog.Logger
}

// NewProvider opens the index. With a persist path the previous export is
// imported when present and the ID set is restored from the sidecar file
// written next to it. A corrupt or inconsistent snapshot is never fatal:
// the index starts empty and the reconciler rebuilds it from the store.
func NewProvider(cfg *config.IndexConfig) (*Provider, error) {
	db := chromem.NewDB()
	imported := false

	if cfg.PersistPath != "" {
		if err := os.MkdirAll(cfg.PersistPath, 0755); err != nil {
			return nil, fmt.Errorf("create index directory: %w", err)
		}
		dbPath := indexFile(cfg.PersistPath, cfg.Compress)
		if _, statErr := os.Stat(dbPath); statErr == nil {
			if err := db.ImportFromFile(dbPath, ""); err != nil {
				slog.Warn("Failed to load vector index, starting empty", "path", dbPath, "error", err)
				db = chromem.NewDB()
			} else {
				imported = true
			}
		}
	}

	p := &Provider{
		db:          db,
		persistPath: cfg.PersistPath,
		compress:    cfg.Compress,
		ids:         make(map[string]struct{}),
		logger:      slog.Default().With("component", "vector-index"),
	}
	if err := p.openCollection(); err != nil {
		return nil, err
	}
	if imported {
		if err := p.seedIDs(); err != nil {
			slog.Warn("Vector index snapshot inconsistent, starting empty",
				"path", cfg.PersistPath, "error", err)
			if err := p.Reset(context.Background()); err != nil {
				return nil, err
			}
		}
	}
	return p, nil
}

func indexFile(dir string, compress bool) string {
	name := "cases.gob"
	if compress {
		name += ".gz"
	}
	return filepath.Join(dir, name)
}

func idsFile(dir string) string {
	return filepath.Join(dir, "ids.json")
}

// seedIDs restores the ID set persisted alongside the export. The two
// files are written together; a count mismatch means the snapshot is
// torn and the whole index must be rebuilt from the store.
func (p *Provider) seedIDs() error {
	raw, err := os.ReadFile(idsFile(p.persistPath))
	if err != nil {
		return fmt.Errorf("read index ID set: %w", err)
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return fmt.Errorf("decode index ID set: %w", err)
	}
	if len(ids) != p.col.Count() {
		return fmt.Errorf("ID set has %d entries, collection has %d", len(ids), p.col.Count())
	}
	for _, id := range ids {
		p.ids[id] = struct{}{}
	}
	return nil
}

func (p *Provider) openCollection() error {
	// Vectors are pre-computed; the embedding func must never run.
	identity := func(ctx context.Context, text string) ([]float32, error) {
		return nil, fmt.Errorf("embedding requested for pre-computed index")
	}
	col, err := p.db.GetOrCreateCollection(collectionName, nil, identity)
	if err != nil {
		return fmt.Errorf("open index collection: %w", err)
	}
	p.col = col
	return nil
}

// Upsert adds or replaces one case entry.
func (p *Provider) Upsert(ctx context.Context, e Entry) error {
	if e.CaseID == "" || e.GroupID == "" {
		return fmt.Errorf("index entry needs case and group IDs")
	}

	doc := chromem.Document{
		ID:      e.CaseID,
		Content: e.Title + "\n" + e.Solution,
		Metadata: map[string]string{
			"group_id": e.GroupID,
			"title":    e.Title,
		},
		Embedding: e.Vector,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.col.AddDocuments(ctx, []chromem.Document{doc}, runtime.NumCPU()); err != nil {
		return fmt.Errorf("index upsert: %w", err)
	}
	p.ids[e.CaseID] = struct{}{}
	p.persistLocked()
	return nil
}

// Query returns up to topK cases of one group by cosine similarity,
// best first.
func (p *Provider) Query(ctx context.Context, groupID string, vector []float32, topK int) ([]Hit, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	// chromem rejects nResults above the document count
	if n := p.col.Count(); topK > n {
		topK = n
	}
	if topK <= 0 {
		return nil, nil
	}

	results, err := p.col.QueryEmbedding(ctx, vector, topK, map[string]string{"group_id": groupID}, nil)
	if err != nil {
		return nil, fmt.Errorf("index query: %w", err)
	}

	hits := make([]Hit, 0, len(results))
	for _, r := range results {
		hits = append(hits, Hit{
			CaseID: r.ID,
			Title:  r.Metadata["title"],
			Score:  r.Similarity,
		})
	}
	return hits, nil
}

// Delete removes one case. Deleting an absent ID is not an error.
func (p *Provider) Delete(ctx context.Context, caseID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.ids[caseID]; !ok {
		return nil
	}
	if err := p.col.Delete(ctx, nil, nil, caseID); err != nil {
		return fmt.Errorf("index delete: %w", err)
	}
	delete(p.ids, caseID)
	p.persistLocked()
	return nil
}

// Has reports whether a case is currently indexed.
func (p *Provider) Has(caseID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.ids[caseID]
	return ok
}

// ListIDs returns all indexed case IDs in stable order.
func (p *Provider) ListIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.listIDsLocked()
}

func (p *Provider) listIDsLocked() []string {
	out := make([]string, 0, len(p.ids))
	for id := range p.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Reset drops all entries. The startup reconciliation pass calls this
// before re-upserting from the store, which also clears any orphans a
// stale persisted file carried over.
func (p *Provider) Reset(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.db.DeleteCollection(collectionName); err != nil {
		return fmt.Errorf("reset index: %w", err)
	}
	if err := p.openCollection(); err != nil {
		return err
	}
	p.ids = make(map[string]struct{})
	p.persistLocked()
	return nil
}

// Close persists the index when persistence is enabled.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.persistPath == "" {
		return nil
	}
	return p.writeSnapshotLocked()
}

func (p *Provider) persistLocked() {
	if p.persistPath == "" {
		return
	}
	if err := p.writeSnapshotLocked(); err != nil {
		p.logger.Warn("Failed to persist vector index", "error", err)
	}
}

// writeSnapshotLocked exports the collection and its ID set. The two
// files form one snapshot; ImportFromFile reads the export back and
// seedIDs checks the pair for consistency on the next start.
func (p *Provider) writeSnapshotLocked() error {
	if err := p.db.ExportToFile(indexFile(p.persistPath, p.compress), p.compress, ""); err != nil {
		return fmt.Errorf("persist index: %w", err)
	}
	raw, err := json.Marshal(p.listIDsLocked())
	if err != nil {
		return fmt.Errorf("encode index ID set: %w", err)
	}
	if err := os.WriteFile(idsFile(p.persistPath), raw, 0644); err != nil {
		return fmt.Errorf("persist index ID set: %w", err)
	}
	return nil
}
