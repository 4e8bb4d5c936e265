package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func msg(id string, ts int64, content string) Message {
	return Message{SenderHash: "a1b2c3", TS: ts, MessageID: id, Content: content}
}

func TestFormatBlockBasic(t *testing.T) {
	got := FormatBlock(Message{
		SenderHash: "a1b2c3",
		TS:         1000,
		MessageID:  "m1",
		Reactions:  2,
		Content:    "How do I reset X?",
	})
	assert.Equal(t, "a1b2c3 ts=1000 msg_id=m1 reactions=2\nHow do I reset X?", got)
}

func TestFormatBlockBotAndReply(t *testing.T) {
	got := FormatBlock(Message{
		SenderHash: "botbot",
		FromBot:    true,
		TS:         2000,
		MessageID:  "m2",
		ReplyToID:  "m1",
		Content:    "answer",
	})
	assert.Equal(t, "botbot[BOT] ts=2000 msg_id=m2 reply_to=m1 reactions=0\nanswer", got)
}

func TestParseToBlocksRoundTrip(t *testing.T) {
	text := ""
	for i, m := range []Message{
		msg("m1", 1000, "How do I reset X?"),
		msg("m2", 2000, "Set flag Y to true.\nAnd restart."),
		msg("m3", 3000, "Worked, thanks."),
	} {
		_ = i
		text = Append(text, m, 1000*hour, 100, fixedNow)
	}

	blocks := ParseToBlocks(text)
	require.Len(t, blocks, 3)
	assert.Equal(t, "m1", blocks[0].MessageID)
	assert.Equal(t, int64(2000), blocks[1].TS)
	assert.Equal(t, "Set flag Y to true.\nAnd restart.", blocks[1].Body)
	assert.Equal(t, 2, blocks[2].Index)

	// parse ∘ render ∘ parse is a fixed point on block count and text
	again := ParseToBlocks(Render(blocks))
	require.Len(t, again, len(blocks))
	for i := range blocks {
		assert.Equal(t, blocks[i].RawText, again[i].RawText)
		assert.Equal(t, blocks[i].Body, again[i].Body)
	}
}

func TestParseToBlocksMultilineBodyWithBlankLines(t *testing.T) {
	text := Append("", msg("m1", 1000, "broken, see log:\n\n[image]\n{\"observations\":[\"err 0x8000\"]}"), 1000*hour, 100, fixedNow)
	blocks := ParseToBlocks(text)
	require.Len(t, blocks, 1)
	assert.Contains(t, blocks[0].Body, "[image]")
	assert.Contains(t, blocks[0].Body, "err 0x8000")

	again := ParseToBlocks(Render(blocks))
	require.Len(t, again, 1)
	assert.Equal(t, blocks[0].Body, again[0].Body)
}

func TestParseToBlocksEmpty(t *testing.T) {
	assert.Nil(t, ParseToBlocks(""))
	assert.Nil(t, ParseToBlocks("\n\n  \n"))
}

func TestParseDetectsBotHeader(t *testing.T) {
	text := Append("", Message{SenderHash: "b0t", FromBot: true, TS: 1, MessageID: "m1", Content: "hi"}, 1000*hour, 100, fixedNow)
	blocks := ParseToBlocks(text)
	require.Len(t, blocks, 1)
	assert.True(t, blocks[0].FromBot)
	assert.Equal(t, "b0t", blocks[0].SenderHash)
}

func TestFormatNumberedSkipsBotKeepsIndexes(t *testing.T) {
	text := ""
	text = Append(text, msg("m1", 1000, "question"), 1000*hour, 100, fixedNow)
	text = Append(text, Message{SenderHash: "b0t", FromBot: true, TS: 1500, MessageID: "mb", Content: "bot reply"}, 1000*hour, 100, fixedNow)
	text = Append(text, msg("m2", 2000, "answer"), 1000*hour, 100, fixedNow)

	blocks := ParseToBlocks(text)
	require.Len(t, blocks, 3)

	numbered := FormatNumbered(blocks)
	assert.Contains(t, numbered, "### MSG idx=0 ")
	assert.NotContains(t, numbered, "idx=1 ") // bot block skipped
	assert.Contains(t, numbered, "### MSG idx=2 ")
	assert.NotContains(t, numbered, "bot reply")
}
