package services

import (
	"context"
	"testing"

	"github.com/casemine/casemine/pkg/models"
	testdb "github.com/casemine/casemine/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inbound(groupID, messageID string, ts int64, text string) models.InboundMessage {
	return models.InboundMessage{
		GroupID:   groupID,
		MessageID: messageID,
		TS:        ts,
		Sender:    "a1b2c3",
		Text:      text,
	}
}

func TestInsertRawMessageIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewMessageService(client.Client)
	ctx := context.Background()

	inserted, err := svc.InsertRawMessage(ctx, inbound("g1", "m1", 1000, "hello"), false)
	require.NoError(t, err)
	assert.True(t, inserted)

	// second insert with the same (group_id, message_id) is a no-op
	inserted, err = svc.InsertRawMessage(ctx, inbound("g1", "m1", 1000, "hello"), false)
	require.NoError(t, err)
	assert.False(t, inserted)

	// same message_id in another group is a distinct row
	inserted, err = svc.InsertRawMessage(ctx, inbound("g2", "m1", 1000, "hello"), false)
	require.NoError(t, err)
	assert.True(t, inserted)

	m, err := svc.GetMessage(ctx, "g1", "m1")
	require.NoError(t, err)
	assert.Equal(t, "hello", m.ContentText)
	assert.False(t, m.FromBot)
}

func TestGetMessageNotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewMessageService(client.Client)

	_, err := svc.GetMessage(context.Background(), "g1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecentMessagesChronological(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewMessageService(client.Client)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := svc.InsertRawMessage(ctx, inbound("g1", string(rune('a'+i)), int64(i*1000), "x"), false)
		require.NoError(t, err)
	}

	// last 3 strictly before ts=5000, oldest first
	msgs, err := svc.RecentMessages(ctx, "g1", 5000, 3)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, int64(2000), msgs[0].Ts)
	assert.Equal(t, int64(4000), msgs[2].Ts)
}

func TestReactionLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewMessageService(client.Client)
	ctx := context.Background()

	r := models.InboundReaction{
		GroupID:      "g1",
		TargetTS:     1000,
		TargetAuthor: "author1",
		Sender:       "s1",
		Emoji:        "👍",
	}

	require.NoError(t, svc.UpsertReaction(ctx, r, true))
	// duplicate upsert is idempotent
	require.NoError(t, svc.UpsertReaction(ctx, r, true))

	other := r
	other.Sender = "s2"
	require.NoError(t, svc.UpsertReaction(ctx, other, true))

	n, err := svc.CountPositiveReactions(ctx, "g1", 1000)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// removal deletes the exact tuple only
	require.NoError(t, svc.RemoveReaction(ctx, r))
	n, err = svc.CountPositiveReactions(ctx, "g1", 1000)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestBufferRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewMessageService(client.Client)
	ctx := context.Background()

	// missing row reads as empty
	text, err := svc.GetBuffer(ctx, "g1")
	require.NoError(t, err)
	assert.Empty(t, text)

	require.NoError(t, svc.SetBuffer(ctx, "g1", "first"))
	require.NoError(t, svc.SetBuffer(ctx, "g1", "second"))

	text, err = svc.GetBuffer(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "second", text)
}

func TestDocURLsRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewMessageService(client.Client)
	ctx := context.Background()

	// missing row reads as unset
	urls, err := svc.DocURLs(ctx, "g1")
	require.NoError(t, err)
	assert.Empty(t, urls)

	// setting links must not require a buffer row, and vice versa
	require.NoError(t, svc.SetDocURLs(ctx, "g1", []string{"https://docs.example.com"}))
	require.NoError(t, svc.SetBuffer(ctx, "g1", "buf"))
	require.NoError(t, svc.SetDocURLs(ctx, "g1", []string{"https://docs.example.com/v2"}))

	urls, err = svc.DocURLs(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://docs.example.com/v2"}, urls)

	text, err := svc.GetBuffer(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "buf", text)
}

func TestTryMarkReplied(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewMessageService(client.Client)
	ctx := context.Background()

	first, err := svc.TryMarkReplied(ctx, "g1", "m1")
	require.NoError(t, err)
	assert.True(t, first)

	second, err := svc.TryMarkReplied(ctx, "g1", "m1")
	require.NoError(t, err)
	assert.False(t, second)

	replied, err := svc.HasReplied(ctx, "g1", "m1")
	require.NoError(t, err)
	assert.True(t, replied)
}

func TestDeleteGroupData(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewMessageService(client.Client)
	ctx := context.Background()

	_, err := svc.InsertRawMessage(ctx, inbound("g1", "m1", 1000, "x"), false)
	require.NoError(t, err)
	require.NoError(t, svc.SetBuffer(ctx, "g1", "buf"))
	_, err = svc.TryMarkReplied(ctx, "g1", "m1")
	require.NoError(t, err)

	// another group's data must survive
	_, err = svc.InsertRawMessage(ctx, inbound("g2", "m1", 1000, "x"), false)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGroupData(ctx, "g1"))

	_, err = svc.GetMessage(ctx, "g1", "m1")
	assert.ErrorIs(t, err, ErrNotFound)
	text, err := svc.GetBuffer(ctx, "g1")
	require.NoError(t, err)
	assert.Empty(t, text)

	_, err = svc.GetMessage(ctx, "g2", "m1")
	assert.NoError(t, err)
}
