package buffer

import (
	"fmt"
	"strings"
	"time"
)

// Append adds a formatted message block to the buffer text and trims the
// result: age-based eviction first, then count-based (oldest first).
func Append(bufferText string, m Message, maxAge time.Duration, maxMessages int, now time.Time) string {
	block := FormatBlock(m)
	if strings.TrimSpace(bufferText) == "" {
		bufferText = block + "\n"
	} else {
		bufferText = strings.TrimRight(bufferText, "\n") + "\n\n" + block + "\n"
	}
	return Trim(bufferText, maxAge, maxMessages, now)
}

// Trim enforces the buffer caps: first evict blocks older than maxAge,
// then keep only the newest maxMessages blocks.
func Trim(bufferText string, maxAge time.Duration, maxMessages int, now time.Time) string {
	blocks := ParseToBlocks(bufferText)
	if len(blocks) == 0 {
		return ""
	}

	cutoff := now.Add(-maxAge).UnixMilli()
	kept := blocks[:0]
	for _, b := range blocks {
		if b.TS >= cutoff {
			kept = append(kept, b)
		}
	}

	if maxMessages > 0 && len(kept) > maxMessages {
		kept = kept[len(kept)-maxMessages:]
	}

	for i := range kept {
		kept[i].Index = i
	}
	return Render(kept)
}

// FormatNumbered renders the extraction input: every block preceded by a
// "### MSG idx=<i> lines=<a>-<b>" delimiter. Blocks from the bot are
// skipped (they are context for the chat, not extraction material) but the
// original indexes are preserved, so returned spans always refer to the
// full block slice.
func FormatNumbered(blocks []Block) string {
	var sb strings.Builder
	for _, b := range blocks {
		if b.FromBot {
			continue
		}
		fmt.Fprintf(&sb, "### MSG idx=%d lines=%d-%d\n", b.Index, b.StartLine, b.EndLine)
		sb.WriteString(b.RawText)
		sb.WriteString("\n\n")
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// ValidateSpans checks that spans are in-range for n blocks, sorted
// ascending, and pairwise non-overlapping. Any violation rejects the whole
// set: span removal must never operate on a partially valid extraction.
func ValidateSpans(spans []Span, n int) error {
	for i, s := range spans {
		if s.Start < 0 || s.Start > s.End || s.End >= n {
			return fmt.Errorf("span %d (%d,%d) out of range for %d blocks", i, s.Start, s.End, n)
		}
		if i > 0 && s.Start < spans[i-1].Start {
			return fmt.Errorf("span %d (%d,%d) not in ascending order after (%d,%d)",
				i, s.Start, s.End, spans[i-1].Start, spans[i-1].End)
		}
		if i > 0 && spans[i-1].End >= s.Start {
			return fmt.Errorf("span %d (%d,%d) overlaps previous (%d,%d)",
				i, s.Start, s.End, spans[i-1].Start, spans[i-1].End)
		}
	}
	return nil
}

// RemoveSpans returns new buffer text with exactly the blocks covered by
// the accepted spans removed. Spans must already be validated against
// len(blocks); an invalid set returns an error and the caller keeps the
// buffer untouched.
func RemoveSpans(blocks []Block, accepted []Span) (string, error) {
	if err := ValidateSpans(accepted, len(blocks)); err != nil {
		return "", err
	}

	removed := make(map[int]bool)
	for _, s := range accepted {
		for i := s.Start; i <= s.End; i++ {
			removed[i] = true
		}
	}

	var kept []Block
	for _, b := range blocks {
		if !removed[b.Index] {
			kept = append(kept, b)
		}
	}
	for i := range kept {
		kept[i].Index = i
	}
	return Render(kept), nil
}

// ComposeSpanText concatenates the raw text of the blocks in one span,
// bot blocks included — the case block goes to the LLM with full context.
func ComposeSpanText(blocks []Block, s Span) string {
	var parts []string
	for i := s.Start; i <= s.End && i < len(blocks); i++ {
		parts = append(parts, blocks[i].RawText)
	}
	return strings.Join(parts, "\n\n")
}

// SpanEvidence lists the (message id, ts) pairs covered by a span,
// excluding bot messages.
func SpanEvidence(blocks []Block, s Span) []EvidenceRef {
	var refs []EvidenceRef
	for i := s.Start; i <= s.End && i < len(blocks); i++ {
		if blocks[i].FromBot {
			continue
		}
		refs = append(refs, EvidenceRef{MessageID: blocks[i].MessageID, TS: blocks[i].TS})
	}
	return refs
}

// EvidenceRef is a (message id, ts) pair extracted from a span.
type EvidenceRef struct {
	MessageID string
	TS        int64
}
