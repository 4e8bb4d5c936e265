package admin

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/casemine/casemine/ent"
	"github.com/casemine/casemine/ent/adminsession"
	"github.com/casemine/casemine/ent/job"
	"github.com/casemine/casemine/pkg/config"
	"github.com/casemine/casemine/pkg/index"
	"github.com/casemine/casemine/pkg/models"
	"github.com/casemine/casemine/pkg/services"
	"github.com/casemine/casemine/pkg/transport"
	testdb "github.com/casemine/casemine/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransport records DMs and serves a fixed group list.
type fakeTransport struct {
	groups      []transport.Group
	dms         []string
	unreachable bool
}

func (f *fakeTransport) Listen(ctx context.Context) (<-chan transport.Event, error) {
	ch := make(chan transport.Event)
	close(ch)
	return ch, nil
}

func (f *fakeTransport) SendGroupText(_ context.Context, _, _, _ string, _ []string) (bool, error) {
	return true, nil
}

func (f *fakeTransport) SendDirectText(_ context.Context, _, text string, _ []byte) (bool, error) {
	if f.unreachable {
		return false, nil
	}
	f.dms = append(f.dms, text)
	return true, nil
}

func (f *fakeTransport) ListGroups(_ context.Context) ([]transport.Group, error) {
	return f.groups, nil
}

func (f *fakeTransport) MentionToken(recipientID string) string {
	return "<@" + recipientID + ">"
}

var _ transport.Transport = (*fakeTransport)(nil)

type flowEnv struct {
	flow     *Flow
	admins   *services.AdminService
	messages *services.MessageService
	cases    *services.CaseService
	jobs     *services.JobService
	idx      *index.Provider
	sender   *fakeTransport
}

func newFlowEnv(t *testing.T) *flowEnv {
	t.Helper()
	client := testdb.NewTestClient(t)

	idx, err := index.NewProvider(&config.IndexConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	sender := &fakeTransport{groups: []transport.Group{
		{ID: "g1", Name: "Support Team"},
		{ID: "g2", Name: "Dev Chat"},
	}}
	cfg := &config.Config{
		Pipeline:  config.DefaultPipelineConfig(),
		Queue:     config.DefaultQueueConfig(),
		Retention: config.DefaultRetentionConfig(),
		Images:    config.DefaultImageConfig(),
	}

	admins := services.NewAdminService(client.Client)
	messages := services.NewMessageService(client.Client)
	cases := services.NewCaseService(client.Client)
	jobs := services.NewJobService(client.Client, cfg.Queue.MaxAttempts)

	return &flowEnv{
		flow:     NewFlow(admins, messages, cases, jobs, idx, sender, cfg),
		admins:   admins,
		messages: messages,
		cases:    cases,
		jobs:     jobs,
		idx:      idx,
		sender:   sender,
	}
}

func (e *flowEnv) dm(t *testing.T, adminID, text string) {
	t.Helper()
	require.NoError(t, e.flow.HandleDirectMessage(context.Background(), models.DirectMessage{
		AdminID: adminID, Text: text,
	}))
}

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, adminsession.LangUk, DetectLanguage("Привіт, як справи?"))
	assert.Equal(t, adminsession.LangUk, DetectLanguage("Київ"))
	assert.Equal(t, adminsession.LangEn, DetectLanguage("hello there"))
	// Russian-only Cyrillic has none of the Ukrainian-specific letters
	assert.Equal(t, adminsession.LangEn, DetectLanguage("привет"))
}

func TestFirstDMCreatesSessionAndWelcomes(t *testing.T) {
	env := newFlowEnv(t)
	ctx := context.Background()

	env.dm(t, "admin1", "Привіт!")

	session, err := env.admins.GetSession(ctx, "admin1")
	require.NoError(t, err)
	assert.Equal(t, adminsession.StateAwaitingGroupName, session.State)
	assert.Equal(t, adminsession.LangUk, session.Lang)
	require.Len(t, env.sender.dms, 1)
	assert.Contains(t, env.sender.dms[0], "Привіт")
}

func TestGroupNameMatchStartsBootstrap(t *testing.T) {
	env := newFlowEnv(t)
	ctx := context.Background()

	env.dm(t, "admin1", "hello")
	env.dm(t, "admin1", "support team") // case-insensitive match

	session, err := env.admins.GetSession(ctx, "admin1")
	require.NoError(t, err)
	assert.Equal(t, adminsession.StateAwaitingQrScan, session.State)
	require.NotNil(t, session.PendingGroupID)
	assert.Equal(t, "g1", *session.PendingGroupID)
	require.NotNil(t, session.PendingToken)

	tok, err := env.admins.PeekToken(ctx, *session.PendingToken)
	require.NoError(t, err)
	assert.Equal(t, "admin1", tok.AdminID)
	assert.Equal(t, "g1", tok.GroupID)

	// exactly one HISTORY_LINK job waits for the collaborator
	leased, payload, err := leaseHistoryLink(ctx, env.jobs)
	require.NoError(t, err)
	assert.Equal(t, job.TypeHistoryLink, leased.Type)
	assert.Equal(t, *session.PendingToken, payload.Token)
	assert.Equal(t, "admin1", payload.AdminID)
}

func leaseHistoryLink(ctx context.Context, jobs *services.JobService) (*ent.Job, models.HistoryLinkPayload, error) {
	leased, err := jobs.Lease(ctx, "w1", time.Minute)
	if err != nil {
		return nil, models.HistoryLinkPayload{}, err
	}
	var payload models.HistoryLinkPayload
	err = json.Unmarshal(leased.Payload, &payload)
	return leased, payload, err
}

func TestUnknownGroupNameKeepsSearching(t *testing.T) {
	env := newFlowEnv(t)
	ctx := context.Background()

	env.dm(t, "admin1", "hello")
	env.dm(t, "admin1", "No Such Group")

	session, err := env.admins.GetSession(ctx, "admin1")
	require.NoError(t, err)
	assert.Equal(t, adminsession.StateAwaitingGroupName, session.State)
	assert.Nil(t, session.PendingGroupID)
}

func TestNewNameDuringQRScanCancelsPriorJob(t *testing.T) {
	env := newFlowEnv(t)
	ctx := context.Background()

	env.dm(t, "admin1", "hello")
	env.dm(t, "admin1", "Support Team")
	env.dm(t, "admin1", "Dev Chat")

	session, err := env.admins.GetSession(ctx, "admin1")
	require.NoError(t, err)
	assert.Equal(t, adminsession.StateAwaitingQrScan, session.State)
	require.NotNil(t, session.PendingGroupID)
	assert.Equal(t, "g2", *session.PendingGroupID)

	// the g1 job was cancelled; only the g2 job remains leasable
	leased, payload, err := leaseHistoryLink(ctx, env.jobs)
	require.NoError(t, err)
	assert.Equal(t, "g2", payload.GroupID)
	require.NoError(t, env.jobs.Complete(ctx, leased.ID))

	_, err = env.jobs.Lease(ctx, "w1", time.Minute)
	assert.ErrorIs(t, err, services.ErrNoJobsAvailable)
}

func TestLanguageCommands(t *testing.T) {
	env := newFlowEnv(t)
	ctx := context.Background()

	env.dm(t, "admin1", "hello")
	env.dm(t, "admin1", "/uk")

	session, err := env.admins.GetSession(ctx, "admin1")
	require.NoError(t, err)
	assert.Equal(t, adminsession.LangUk, session.Lang)

	env.dm(t, "admin1", "/en")
	session, err = env.admins.GetSession(ctx, "admin1")
	require.NoError(t, err)
	assert.Equal(t, adminsession.LangEn, session.Lang)
}

func TestWipeRemovesAdminAndOrphanedGroupData(t *testing.T) {
	env := newFlowEnv(t)
	ctx := context.Background()

	env.dm(t, "admin1", "hello")
	require.NoError(t, env.admins.CreateLink(ctx, "admin1", "g1"))

	_, err := env.messages.InsertRawMessage(ctx, models.InboundMessage{
		GroupID: "g1", MessageID: "m1", TS: 1000, Sender: "s1", Text: "hi",
	}, false)
	require.NoError(t, err)
	c, err := env.cases.CreateCase(ctx, "g1", models.CaseFields{
		ProblemTitle: "t", ProblemSummary: "p", SolutionSummary: "s",
	}, "solved", nil, nil)
	require.NoError(t, err)
	require.NoError(t, env.idx.Upsert(ctx, index.Entry{
		CaseID: c.ID, GroupID: "g1", Title: "t", Solution: "s", Vector: []float32{1, 0, 0},
	}))

	env.dm(t, "admin1", "/wipe")

	_, err = env.admins.GetSession(ctx, "admin1")
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = env.messages.GetMessage(ctx, "g1", "m1")
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = env.cases.GetCase(ctx, c.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.False(t, env.idx.Has(c.ID))
}

func TestWipeSparesGroupsWithOtherAdmins(t *testing.T) {
	env := newFlowEnv(t)
	ctx := context.Background()

	env.dm(t, "admin1", "hello")
	env.dm(t, "admin2", "hello")
	require.NoError(t, env.admins.CreateLink(ctx, "admin1", "g1"))
	require.NoError(t, env.admins.CreateLink(ctx, "admin2", "g1"))

	_, err := env.messages.InsertRawMessage(ctx, models.InboundMessage{
		GroupID: "g1", MessageID: "m1", TS: 1000, Sender: "s1", Text: "hi",
	}, false)
	require.NoError(t, err)

	env.dm(t, "admin1", "/wipe")

	// admin2 still owns g1; the group data survives
	_, err = env.messages.GetMessage(ctx, "g1", "m1")
	require.NoError(t, err)
	remaining, err := env.admins.AdminsForGroup(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, []string{"admin2"}, remaining)
}

func TestContactRemovedCleansUp(t *testing.T) {
	env := newFlowEnv(t)
	ctx := context.Background()

	env.dm(t, "admin1", "hello")
	require.NoError(t, env.flow.HandleContactRemoved(ctx, "admin1"))

	_, err := env.admins.GetSession(ctx, "admin1")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
