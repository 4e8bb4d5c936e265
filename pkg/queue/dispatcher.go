package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/casemine/casemine/ent"
	"github.com/casemine/casemine/ent/job"
	"github.com/casemine/casemine/pkg/answer"
	"github.com/casemine/casemine/pkg/extract"
	"github.com/casemine/casemine/pkg/history"
	"github.com/casemine/casemine/pkg/models"
)

// Router dispatches jobs to the pipeline handlers by job type.
type Router struct {
	extractor *extract.Extractor
	engine    *answer.Engine
	importer  *history.Importer
}

// NewRouter creates a new Router.
func NewRouter(extractor *extract.Extractor, engine *answer.Engine, importer *history.Importer) *Router {
	if extractor == nil || engine == nil || importer == nil {
		panic("NewRouter: all handlers must be non-nil")
	}
	return &Router{extractor: extractor, engine: engine, importer: importer}
}

// Dispatch decodes the payload and invokes the handler. Payloads that
// fail to decode and unknown job types are terminal: no retry can fix
// them.
func (r *Router) Dispatch(ctx context.Context, j *ent.Job) error {
	switch j.Type {
	case job.TypeBufferUpdate:
		var p models.BufferUpdatePayload
		if err := json.Unmarshal(j.Payload, &p); err != nil {
			return Terminal(fmt.Errorf("decode %s payload: %w", j.Type, err))
		}
		return r.extractor.HandleBufferUpdate(ctx, p)

	case job.TypeMaybeRespond:
		var p models.MaybeRespondPayload
		if err := json.Unmarshal(j.Payload, &p); err != nil {
			return Terminal(fmt.Errorf("decode %s payload: %w", j.Type, err))
		}
		return r.engine.HandleMaybeRespond(ctx, p)

	case job.TypeHistoryLink:
		var p models.HistoryLinkPayload
		if err := json.Unmarshal(j.Payload, &p); err != nil {
			return Terminal(fmt.Errorf("decode %s payload: %w", j.Type, err))
		}
		return r.importer.HandleHistoryLink(ctx, p)

	default:
		return Terminal(fmt.Errorf("unknown job type %q", j.Type))
	}
}

var _ Dispatcher = (*Router)(nil)
