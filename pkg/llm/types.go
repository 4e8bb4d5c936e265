// Package llm provides typed calls to the completion and embedding
// providers. Every call returns either a validated schema instance or a
// typed failure; free-text responses never leak past this package except
// for answer synthesis, which is free text by contract.
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/casemine/casemine/pkg/buffer"
	"github.com/casemine/casemine/pkg/config"
)

// Sentinel errors.
var (
	// ErrParse indicates the provider response failed schema validation
	// twice (the call is retried once on parse failure).
	ErrParse = errors.New("llm response failed schema validation")

	// ErrUnavailable indicates a transient provider failure.
	ErrUnavailable = errors.New("llm provider unavailable")
)

// ParseError carries the offending raw response for logging.
type ParseError struct {
	Call string // which typed call failed
	Raw  string // raw response text (truncated)
	Err  error
}

// Error returns the formatted message.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Call, e.Err)
}

// Unwrap makes ParseError match ErrParse.
func (e *ParseError) Unwrap() error {
	return ErrParse
}

// ImageFacts is the result of OCR-ing one attached image.
type ImageFacts struct {
	Observations  []string `json:"observations"`
	ExtractedText string   `json:"extracted_text"`
}

// GateTag classifies an inbound message for the response gate.
type GateTag string

// Gate tags.
const (
	TagNewQuestion       GateTag = "new_question"
	TagOngoingDiscussion GateTag = "ongoing_discussion"
	TagStatement         GateTag = "statement"
	TagNoise             GateTag = "noise"
)

// GateResult is the response-gate classification.
// Consider is true only for new_question and ongoing_discussion;
// the client enforces that invariant after parsing.
type GateResult struct {
	Consider bool    `json:"consider"`
	Tag      GateTag `json:"tag"`
}

// StructuredCase is the structured form of one candidate case block.
type StructuredCase struct {
	Keep            bool     `json:"keep"`
	Status          string   `json:"status"` // open | solved
	ProblemTitle    string   `json:"problem_title"`
	ProblemSummary  string   `json:"problem_summary"`
	SolutionSummary string   `json:"solution_summary"`
	Tags            []string `json:"tags"`
}

// ResolutionResult is the outcome of checking an open case against the
// current buffer. Resolved=true with an empty solution is treated as
// not-resolved by the client.
type ResolutionResult struct {
	Resolved        bool   `json:"resolved"`
	SolutionSummary string `json:"solution_summary"`
}

// ImageInput is one attachment passed to a vision-capable call.
type ImageInput struct {
	Data []byte
	MIME string
}

// Gateway is the typed completion interface the pipeline depends on.
type Gateway interface {
	// ImageToText extracts observations and literal text from an image,
	// with the message text as context.
	ImageToText(ctx context.Context, img ImageInput, contextText string) (*ImageFacts, error)

	// GateClassify decides whether an inbound message deserves an answer.
	GateClassify(ctx context.Context, message, recentContext string, images []ImageInput) (*GateResult, error)

	// ExtractCaseSpans proposes case spans over the numbered buffer.
	// Returned spans are sorted, in-range for blockCount, and pairwise
	// non-overlapping; any violation rejects the entire result.
	ExtractCaseSpans(ctx context.Context, numberedBuffer string, blockCount int) ([]buffer.Span, error)

	// StructureCase turns a raw case block into structured fields.
	StructureCase(ctx context.Context, caseBlockText string) (*StructuredCase, error)

	// CheckResolved decides whether the buffer resolves an open case.
	CheckResolved(ctx context.Context, title, problem, bufferText string) (*ResolutionResult, error)

	// SynthesizeAnswer produces the reply text. Free text by contract;
	// the caller enforces the [[TAG_ADMIN]] sentinel semantics.
	SynthesizeAnswer(ctx context.Context, question, retrievedContext string, lang config.Language) (string, error)
}

// Embedder produces fixed-dimension embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimension is the fixed output dimension.
	Dimension() int
}
