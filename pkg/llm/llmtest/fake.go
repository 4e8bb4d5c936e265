// Package llmtest provides scriptable fakes for the LLM gateway and
// embedder, used by pipeline tests.
package llmtest

import (
	"context"

	"github.com/casemine/casemine/pkg/buffer"
	"github.com/casemine/casemine/pkg/config"
	"github.com/casemine/casemine/pkg/llm"
)

// Gateway is a scriptable llm.Gateway. Unset functions return benign
// zero results (no spans, not considered, not resolved).
type Gateway struct {
	ImageToTextFn      func(ctx context.Context, img llm.ImageInput, contextText string) (*llm.ImageFacts, error)
	GateClassifyFn     func(ctx context.Context, message, recentContext string, images []llm.ImageInput) (*llm.GateResult, error)
	ExtractCaseSpansFn func(ctx context.Context, numberedBuffer string, blockCount int) ([]buffer.Span, error)
	StructureCaseFn    func(ctx context.Context, caseBlockText string) (*llm.StructuredCase, error)
	CheckResolvedFn    func(ctx context.Context, title, problem, bufferText string) (*llm.ResolutionResult, error)
	SynthesizeAnswerFn func(ctx context.Context, question, retrievedContext string, lang config.Language) (string, error)
}

func (g *Gateway) ImageToText(ctx context.Context, img llm.ImageInput, contextText string) (*llm.ImageFacts, error) {
	if g.ImageToTextFn != nil {
		return g.ImageToTextFn(ctx, img, contextText)
	}
	return &llm.ImageFacts{Observations: []string{}}, nil
}

func (g *Gateway) GateClassify(ctx context.Context, message, recentContext string, images []llm.ImageInput) (*llm.GateResult, error) {
	if g.GateClassifyFn != nil {
		return g.GateClassifyFn(ctx, message, recentContext, images)
	}
	return &llm.GateResult{Consider: false, Tag: llm.TagNoise}, nil
}

func (g *Gateway) ExtractCaseSpans(ctx context.Context, numberedBuffer string, blockCount int) ([]buffer.Span, error) {
	if g.ExtractCaseSpansFn != nil {
		return g.ExtractCaseSpansFn(ctx, numberedBuffer, blockCount)
	}
	return nil, nil
}

func (g *Gateway) StructureCase(ctx context.Context, caseBlockText string) (*llm.StructuredCase, error) {
	if g.StructureCaseFn != nil {
		return g.StructureCaseFn(ctx, caseBlockText)
	}
	return &llm.StructuredCase{Keep: false}, nil
}

func (g *Gateway) CheckResolved(ctx context.Context, title, problem, bufferText string) (*llm.ResolutionResult, error) {
	if g.CheckResolvedFn != nil {
		return g.CheckResolvedFn(ctx, title, problem, bufferText)
	}
	return &llm.ResolutionResult{Resolved: false}, nil
}

func (g *Gateway) SynthesizeAnswer(ctx context.Context, question, retrievedContext string, lang config.Language) (string, error) {
	if g.SynthesizeAnswerFn != nil {
		return g.SynthesizeAnswerFn(ctx, question, retrievedContext, lang)
	}
	return "[[TAG_ADMIN]]", nil
}

var _ llm.Gateway = (*Gateway)(nil)

// Embedder returns scripted vectors keyed by exact text; unknown texts
// get the fallback vector.
type Embedder struct {
	Vectors  map[string][]float32
	Fallback []float32
	Dim      int
}

func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if v, ok := e.Vectors[text]; ok {
		return v, nil
	}
	if e.Fallback != nil {
		return e.Fallback, nil
	}
	v := make([]float32, e.Dimension())
	v[0] = 1
	return v, nil
}

func (e *Embedder) Dimension() int {
	if e.Dim > 0 {
		return e.Dim
	}
	return 3
}

var _ llm.Embedder = (*Embedder)(nil)
