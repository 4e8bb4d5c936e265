package buffer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hour = time.Hour

// fixedNow keeps age-based trimming deterministic: all test messages use
// small millisecond timestamps, so a now close to the epoch exercises the
// cutoff arithmetic.
var fixedNow = time.UnixMilli(10_000)

func TestTrimByAge(t *testing.T) {
	text := ""
	text = Append(text, msg("old", 1000, "stale"), 1000*hour, 100, fixedNow)
	text = Append(text, msg("new", 8000, "fresh"), 1000*hour, 100, fixedNow)

	// cutoff at now-5s: only ts >= 5000 survives
	trimmed := Trim(text, 5*time.Second, 100, fixedNow)
	blocks := ParseToBlocks(trimmed)
	require.Len(t, blocks, 1)
	assert.Equal(t, "new", blocks[0].MessageID)
}

func TestTrimByCount(t *testing.T) {
	text := ""
	for i := 0; i < 10; i++ {
		text = Append(text, msg(string(rune('a'+i)), int64(1000+i), "x"), 1000*hour, 100, fixedNow)
	}

	trimmed := Trim(text, 1000*hour, 3, fixedNow)
	blocks := ParseToBlocks(trimmed)
	require.Len(t, blocks, 3)
	assert.Equal(t, "h", blocks[0].MessageID)
	assert.Equal(t, "j", blocks[2].MessageID)
	assert.Equal(t, 0, blocks[0].Index)
}

func TestTrimBothCapsSimultaneously(t *testing.T) {
	text := ""
	for i := 0; i < 10; i++ {
		text = Append(text, msg(string(rune('a'+i)), int64(i*1000), "x"), 1000*hour, 100, fixedNow)
	}

	// Age cutoff removes ts < 5000, then count cap keeps the newest 2.
	trimmed := Trim(text, 5*time.Second, 2, fixedNow)
	blocks := ParseToBlocks(trimmed)
	require.Len(t, blocks, 2)
	assert.Equal(t, "i", blocks[0].MessageID)
	assert.Equal(t, "j", blocks[1].MessageID)
}

func TestAppendEnforcesCaps(t *testing.T) {
	text := ""
	for i := 0; i < 8; i++ {
		text = Append(text, msg(string(rune('a'+i)), int64(1000+i), "x"), 1000*hour, 5, fixedNow)
		assert.LessOrEqual(t, len(ParseToBlocks(text)), 5)
	}
}

func TestValidateSpans(t *testing.T) {
	// single-block span is valid
	assert.NoError(t, ValidateSpans([]Span{{0, 0}}, 1))
	// end at N-1 is valid
	assert.NoError(t, ValidateSpans([]Span{{0, 2}, {4, 5}}, 6))
	// end == N is out of range
	assert.Error(t, ValidateSpans([]Span{{0, 6}}, 6))
	// negative start
	assert.Error(t, ValidateSpans([]Span{{-1, 0}}, 3))
	// inverted range
	assert.Error(t, ValidateSpans([]Span{{2, 1}}, 3))
	// overlap rejects the whole set
	assert.Error(t, ValidateSpans([]Span{{0, 3}, {2, 5}}, 6))
	// touching spans (shared boundary) overlap too
	assert.Error(t, ValidateSpans([]Span{{0, 2}, {2, 4}}, 5))
	// empty set is fine
	assert.NoError(t, ValidateSpans(nil, 0))
}

func TestRemoveSpansExactness(t *testing.T) {
	text := ""
	ids := []string{"m0", "m1", "m2", "m3", "m4", "m5"}
	for i, id := range ids {
		text = Append(text, msg(id, int64(1000+i), "body "+id), 1000*hour, 100, fixedNow)
	}
	blocks := ParseToBlocks(text)
	require.Len(t, blocks, 6)

	out, err := RemoveSpans(blocks, []Span{{0, 1}, {4, 4}})
	require.NoError(t, err)

	remaining := ParseToBlocks(out)
	require.Len(t, remaining, 3)
	assert.Equal(t, "m2", remaining[0].MessageID)
	assert.Equal(t, "m3", remaining[1].MessageID)
	assert.Equal(t, "m5", remaining[2].MessageID)

	// no block outside a span was removed, none inside remains
	for _, b := range remaining {
		assert.NotContains(t, []string{"m0", "m1", "m4"}, b.MessageID)
	}
}

func TestRemoveSpansRejectsInvalidSetEntirely(t *testing.T) {
	text := ""
	for i := 0; i < 4; i++ {
		text = Append(text, msg(string(rune('a'+i)), int64(1000+i), "x"), 1000*hour, 100, fixedNow)
	}
	blocks := ParseToBlocks(text)

	_, err := RemoveSpans(blocks, []Span{{0, 3}, {2, 3}})
	require.Error(t, err)
}

func TestRemoveAllBlocksYieldsEmptyBuffer(t *testing.T) {
	text := Append("", msg("m1", 1000, "x"), 1000*hour, 100, fixedNow)
	blocks := ParseToBlocks(text)

	out, err := RemoveSpans(blocks, []Span{{0, 0}})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestComposeSpanText(t *testing.T) {
	text := ""
	text = Append(text, msg("m1", 1000, "How do I reset X?"), 1000*hour, 100, fixedNow)
	text = Append(text, msg("m2", 2000, "Set flag Y to true."), 1000*hour, 100, fixedNow)
	blocks := ParseToBlocks(text)

	composed := ComposeSpanText(blocks, Span{0, 1})
	assert.Contains(t, composed, "How do I reset X?")
	assert.Contains(t, composed, "Set flag Y to true.")
}

func TestSpanEvidenceSkipsBot(t *testing.T) {
	text := ""
	text = Append(text, msg("m1", 1000, "q"), 1000*hour, 100, fixedNow)
	text = Append(text, Message{SenderHash: "b0t", FromBot: true, TS: 1500, MessageID: "mb", Content: "r"}, 1000*hour, 100, fixedNow)
	text = Append(text, msg("m2", 2000, "a"), 1000*hour, 100, fixedNow)
	blocks := ParseToBlocks(text)

	refs := SpanEvidence(blocks, Span{0, 2})
	require.Len(t, refs, 2)
	assert.Equal(t, "m1", refs[0].MessageID)
	assert.Equal(t, int64(2000), refs[1].TS)
}

func TestValidateSpansRejectsUnsorted(t *testing.T) {
	// order matters: a descending set is invalid even without overlap
	assert.Error(t, ValidateSpans([]Span{{4, 5}, {0, 1}}, 10))
	assert.NoError(t, ValidateSpans([]Span{{0, 1}, {4, 5}}, 10))
}
