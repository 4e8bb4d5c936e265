package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/casemine/casemine/pkg/buffer"
	"github.com/casemine/casemine/pkg/config"
	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
)

// maxRawLogged caps how much of an invalid response lands in logs.
const maxRawLogged = 500

// Client implements Gateway against the Anthropic messages API.
// Safe for concurrent use; a token-bucket limiter paces requests.
type Client struct {
	api       anthropic.Client
	model     anthropic.Model
	maxTokens int64
	timeout   time.Duration
	limiter   *rate.Limiter
	logger    *slog.Logger
}

// NewClient creates a completion client from configuration.
// The API key is read from the configured environment variable.
func NewClient(cfg *config.LLMConfig) (*Client, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("missing API key: set %s", cfg.APIKeyEnv)
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Client{
		api:       anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     anthropic.Model(cfg.Model),
		maxTokens: int64(cfg.MaxTokens),
		timeout:   cfg.Timeout,
		limiter:   limiter,
		logger:    slog.Default().With("component", "llm-client"),
	}, nil
}

// complete runs one completion and returns the concatenated text blocks.
// Transient provider failures are retried with exponential backoff.
func (c *Client) complete(ctx context.Context, call, prompt string, images []ImageInput) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var blocks []anthropic.ContentBlockParamUnion
	for _, img := range images {
		encoded := base64.StdEncoding.EncodeToString(img.Data)
		blocks = append(blocks, anthropic.NewImageBlockBase64(img.MIME, encoded))
	}
	blocks = append(blocks, anthropic.NewTextBlock(prompt))

	var resp *anthropic.Message
	op := func() error {
		var err error
		resp, err = c.api.Messages.New(ctx, anthropic.MessageNewParams{
			Model:     c.model,
			MaxTokens: c.maxTokens,
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(blocks...),
			},
		})
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnavailable, call, err)
	}

	var sb strings.Builder
	for _, blk := range resp.Content {
		if blk.Type == "text" {
			sb.WriteString(blk.Text)
		}
	}
	return sb.String(), nil
}

// callJSON runs a typed call with the retry-once-on-parse-failure policy:
// decode+validate, and on schema failure issue the call once more before
// giving up with a ParseError.
func callJSON[T any](ctx context.Context, c *Client, call, prompt string, images []ImageInput, validate func(*T) error) (*T, error) {
	var lastRaw string
	for attempt := 0; attempt < 2; attempt++ {
		raw, err := c.complete(ctx, call, prompt, images)
		if err != nil {
			return nil, err
		}
		lastRaw = raw

		out := new(T)
		if err := json.Unmarshal([]byte(extractJSON(raw)), out); err == nil {
			if validate == nil {
				return out, nil
			}
			if err := validate(out); err == nil {
				return out, nil
			} else {
				c.logger.Warn("LLM response failed validation, retrying once",
					"call", call, "attempt", attempt+1, "error", err)
				continue
			}
		}
		c.logger.Warn("LLM response is not valid JSON, retrying once",
			"call", call, "attempt", attempt+1)
	}

	return nil, &ParseError{Call: call, Raw: truncate(lastRaw, maxRawLogged), Err: errors.New("schema validation failed after retry")}
}

// ImageToText extracts observations and text from one image.
func (c *Client) ImageToText(ctx context.Context, img ImageInput, contextText string) (*ImageFacts, error) {
	prompt := fmt.Sprintf(promptImageToText, contextText)
	return callJSON(ctx, c, "image_to_text", prompt, []ImageInput{img}, func(f *ImageFacts) error {
		if f.Observations == nil {
			f.Observations = []string{}
		}
		return nil
	})
}

// GateClassify decides whether a message deserves an answer.
func (c *Client) GateClassify(ctx context.Context, message, recentContext string, images []ImageInput) (*GateResult, error) {
	prompt := fmt.Sprintf(promptGateClassify, recentContext, message)
	return callJSON(ctx, c, "gate_classify", prompt, images, ValidateGateResult)
}

// ExtractCaseSpans proposes case spans over the numbered buffer.
// Schema failures are retried once; range, order, or overlap violations
// reject the whole result and yield no spans (the buffer must never
// shrink on a doubtful extraction).
func (c *Client) ExtractCaseSpans(ctx context.Context, numberedBuffer string, blockCount int) ([]buffer.Span, error) {
	prompt := fmt.Sprintf(promptExtractSpans, numberedBuffer)

	type spansResponse struct {
		Spans []buffer.Span `json:"spans"`
	}
	out, err := callJSON[spansResponse](ctx, c, "extract_case_spans", prompt, nil, nil)
	if err != nil {
		return nil, err
	}

	if err := buffer.ValidateSpans(out.Spans, blockCount); err != nil {
		c.logger.Warn("Rejecting extraction: invalid spans", "error", err, "block_count", blockCount)
		return nil, nil
	}
	return out.Spans, nil
}

// StructureCase turns a raw case block into structured fields.
// A solved verdict without a solution is demoted to open.
func (c *Client) StructureCase(ctx context.Context, caseBlockText string) (*StructuredCase, error) {
	prompt := fmt.Sprintf(promptStructureCase, caseBlockText)
	return callJSON(ctx, c, "structure_case", prompt, nil, ValidateStructuredCase)
}

// CheckResolved decides whether the buffer resolves an open case.
// Resolved without a solution summary is normalized to not-resolved.
func (c *Client) CheckResolved(ctx context.Context, title, problem, bufferText string) (*ResolutionResult, error) {
	prompt := fmt.Sprintf(promptCheckResolved, title, problem, bufferText)
	return callJSON(ctx, c, "check_resolved", prompt, nil, func(r *ResolutionResult) error {
		NormalizeResolution(r)
		return nil
	})
}

// SynthesizeAnswer produces the free-text reply.
func (c *Client) SynthesizeAnswer(ctx context.Context, question, retrievedContext string, lang config.Language) (string, error) {
	langName := "English"
	if lang == config.LanguageUK {
		langName = "Ukrainian"
	}
	prompt := fmt.Sprintf(promptSynthesizeAnswer, langName, question, retrievedContext)

	raw, err := c.complete(ctx, "synthesize_answer", prompt, nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
