package services

import (
	"context"
	"testing"
	"time"

	"github.com/casemine/casemine/ent/adminsession"
	testdb "github.com/casemine/casemine/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminSessionLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAdminService(client.Client)
	ctx := context.Background()

	_, err := svc.GetSession(ctx, "admin1")
	assert.ErrorIs(t, err, ErrNotFound)

	sess, err := svc.CreateSession(ctx, "admin1", adminsession.LangUk)
	require.NoError(t, err)
	assert.Equal(t, adminsession.StateAwaitingGroupName, sess.State)
	assert.Equal(t, adminsession.LangUk, sess.Lang)

	require.NoError(t, svc.BeginQRScan(ctx, "admin1", "g1", "Support Group", "tok123"))
	sess, err = svc.GetSession(ctx, "admin1")
	require.NoError(t, err)
	assert.Equal(t, adminsession.StateAwaitingQrScan, sess.State)
	require.NotNil(t, sess.PendingGroupID)
	assert.Equal(t, "g1", *sess.PendingGroupID)
	require.NotNil(t, sess.PendingToken)
	assert.Equal(t, "tok123", *sess.PendingToken)

	require.NoError(t, svc.ResetToGroupSearch(ctx, "admin1"))
	sess, err = svc.GetSession(ctx, "admin1")
	require.NoError(t, err)
	assert.Equal(t, adminsession.StateAwaitingGroupName, sess.State)
	assert.Nil(t, sess.PendingToken)

	require.NoError(t, svc.SetLanguage(ctx, "admin1", adminsession.LangEn))
	sess, err = svc.GetSession(ctx, "admin1")
	require.NoError(t, err)
	assert.Equal(t, adminsession.LangEn, sess.Lang)
}

func TestHistoryTokenSingleUse(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAdminService(client.Client)
	ctx := context.Background()

	tok, err := svc.CreateToken(ctx, "admin1", "g1", 30*time.Minute)
	require.NoError(t, err)
	assert.False(t, tok.Consumed)

	peeked, err := svc.PeekToken(ctx, tok.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin1", peeked.AdminID)

	consumed, err := svc.ConsumeToken(ctx, tok.ID)
	require.NoError(t, err)
	assert.Equal(t, "g1", consumed.GroupID)

	// second use fails
	_, err = svc.ConsumeToken(ctx, tok.ID)
	assert.ErrorIs(t, err, ErrTokenUnusable)
	_, err = svc.PeekToken(ctx, tok.ID)
	assert.ErrorIs(t, err, ErrTokenUnusable)

	// unknown token
	_, err = svc.ConsumeToken(ctx, "no-such-token")
	assert.ErrorIs(t, err, ErrTokenUnusable)
}

func TestHistoryTokenExpiry(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAdminService(client.Client)
	ctx := context.Background()

	tok, err := svc.CreateToken(ctx, "admin1", "g1", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ConsumeToken(ctx, tok.ID)
	assert.ErrorIs(t, err, ErrTokenUnusable)

	n, err := svc.DeleteExpiredTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestAdminGroupLinks(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAdminService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.CreateLink(ctx, "admin1", "g1"))
	// idempotent
	require.NoError(t, svc.CreateLink(ctx, "admin1", "g1"))
	require.NoError(t, svc.CreateLink(ctx, "admin2", "g1"))
	require.NoError(t, svc.CreateLink(ctx, "admin1", "g2"))

	admins, err := svc.AdminsForGroup(ctx, "g1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"admin1", "admin2"}, admins)

	groups, err := svc.GroupsForAdmin(ctx, "admin1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"g1", "g2"}, groups)
}

func TestLanguageForGroup(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAdminService(client.Client)
	ctx := context.Background()

	// no admin links the group: not ok, the bot must stay silent
	_, ok, err := svc.LanguageForGroup(ctx, "g1")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.CreateSession(ctx, "admin1", adminsession.LangUk)
	require.NoError(t, err)
	require.NoError(t, svc.CreateLink(ctx, "admin1", "g1"))

	lang, ok, err := svc.LanguageForGroup(ctx, "g1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, adminsession.LangUk, lang)
}

func TestRemoveAdmin(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAdminService(client.Client)
	ctx := context.Background()

	_, err := svc.CreateSession(ctx, "admin1", adminsession.LangEn)
	require.NoError(t, err)
	require.NoError(t, svc.CreateLink(ctx, "admin1", "g1"))
	_, err = svc.CreateToken(ctx, "admin1", "g1", time.Hour)
	require.NoError(t, err)

	groups, err := svc.RemoveAdmin(ctx, "admin1")
	require.NoError(t, err)
	assert.Equal(t, []string{"g1"}, groups)

	_, err = svc.GetSession(ctx, "admin1")
	assert.ErrorIs(t, err, ErrNotFound)
	admins, err := svc.AdminsForGroup(ctx, "g1")
	require.NoError(t, err)
	assert.Empty(t, admins)
}
