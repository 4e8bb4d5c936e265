// Package admin implements the direct-message onboarding state machine:
// language detection, group binding, history-bootstrap token issuing, and
// admin data wipe.
package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/casemine/casemine/ent/adminsession"
	"github.com/casemine/casemine/ent/job"
	"github.com/casemine/casemine/pkg/config"
	"github.com/casemine/casemine/pkg/index"
	"github.com/casemine/casemine/pkg/models"
	"github.com/casemine/casemine/pkg/services"
	"github.com/casemine/casemine/pkg/transport"
)

// Flow drives admin DM conversations and admin lifecycle events.
type Flow struct {
	admins   *services.AdminService
	messages *services.MessageService
	cases    *services.CaseService
	jobs     *services.JobService
	idx      *index.Provider
	sender   transport.Transport
	cfg      *config.Config
	logger   *slog.Logger
}

// NewFlow creates a new Flow.
func NewFlow(admins *services.AdminService, messages *services.MessageService, cases *services.CaseService, jobs *services.JobService, idx *index.Provider, sender transport.Transport, cfg *config.Config) *Flow {
	if admins == nil || messages == nil || cases == nil || jobs == nil || idx == nil || sender == nil || cfg == nil {
		panic("NewFlow: all dependencies must be non-nil")
	}
	return &Flow{
		admins:   admins,
		messages: messages,
		cases:    cases,
		jobs:     jobs,
		idx:      idx,
		sender:   sender,
		cfg:      cfg,
		logger:   slog.Default().With("component", "admin"),
	}
}

// HandleDirectMessage advances the admin's session state machine by one
// input. Unknown admins get a session and a welcome; commands work in any
// state.
func (f *Flow) HandleDirectMessage(ctx context.Context, dm models.DirectMessage) error {
	text := strings.TrimSpace(dm.Text)
	if text == "" {
		return nil
	}

	session, err := f.admins.GetSession(ctx, dm.AdminID)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			return err
		}
		lang := DetectLanguage(text)
		if _, err := f.admins.CreateSession(ctx, dm.AdminID, lang); err != nil {
			return err
		}
		return f.dm(ctx, dm.AdminID, msgWelcome, lang)
	}

	switch strings.ToLower(text) {
	case "/uk":
		if err := f.admins.SetLanguage(ctx, dm.AdminID, adminsession.LangUk); err != nil {
			return err
		}
		return f.dm(ctx, dm.AdminID, msgLanguageSet, adminsession.LangUk)
	case "/en":
		if err := f.admins.SetLanguage(ctx, dm.AdminID, adminsession.LangEn); err != nil {
			return err
		}
		return f.dm(ctx, dm.AdminID, msgLanguageSet, adminsession.LangEn)
	case "/wipe":
		if err := f.wipeAdmin(ctx, dm.AdminID); err != nil {
			return err
		}
		return f.dm(ctx, dm.AdminID, msgWiped, session.Lang)
	}

	// a new group name while waiting for a QR scan abandons the pending
	// bootstrap: cancel its job and restart the search
	if session.State == adminsession.StateAwaitingQrScan {
		if session.PendingGroupID != nil {
			if _, err := f.jobs.CancelPendingByType(ctx, job.TypeHistoryLink, *session.PendingGroupID); err != nil {
				return err
			}
		}
		if err := f.admins.ResetToGroupSearch(ctx, dm.AdminID); err != nil {
			return err
		}
	}

	return f.bindGroup(ctx, dm.AdminID, text, session.Lang)
}

// bindGroup matches the text against reachable group names and, on a hit,
// issues a history token and schedules the bootstrap.
func (f *Flow) bindGroup(ctx context.Context, adminID, name string, lang adminsession.Lang) error {
	groups, err := f.sender.ListGroups(ctx)
	if err != nil {
		return fmt.Errorf("list groups: %w", err)
	}

	var match *transport.Group
	for i, g := range groups {
		if strings.EqualFold(g.Name, name) {
			match = &groups[i]
			break
		}
	}
	if match == nil {
		return f.dm(ctx, adminID, msgGroupNotFound, lang)
	}

	token, err := f.admins.CreateToken(ctx, adminID, match.ID, f.cfg.Retention.TokenTTL)
	if err != nil {
		return err
	}
	payload := models.HistoryLinkPayload{Token: token.ID, AdminID: adminID, GroupID: match.ID}
	if _, err := f.jobs.Enqueue(ctx, job.TypeHistoryLink, match.ID, payload); err != nil {
		return err
	}
	if err := f.admins.BeginQRScan(ctx, adminID, match.ID, match.Name, token.ID); err != nil {
		return err
	}
	return f.dm(ctx, adminID, msgGroupBound, lang)
}

// wipeAdmin purges everything the admin owns. Groups left without any
// admin lose their data too: messages, buffer, cases, index entries, and
// any jobs still pending for them.
func (f *Flow) wipeAdmin(ctx context.Context, adminID string) error {
	groupIDs, err := f.admins.RemoveAdmin(ctx, adminID)
	if err != nil {
		return err
	}

	for _, groupID := range groupIDs {
		remaining, err := f.admins.AdminsForGroup(ctx, groupID)
		if err != nil {
			return err
		}
		if len(remaining) > 0 {
			continue
		}
		for _, jt := range []job.Type{job.TypeBufferUpdate, job.TypeMaybeRespond, job.TypeHistoryLink} {
			if _, err := f.jobs.CancelPendingByType(ctx, jt, groupID); err != nil {
				return err
			}
		}
		if err := f.messages.DeleteGroupData(ctx, groupID); err != nil {
			return err
		}
		caseIDs, err := f.cases.DeleteGroupCases(ctx, groupID)
		if err != nil {
			return err
		}
		for _, id := range caseIDs {
			if err := f.idx.Delete(ctx, id); err != nil {
				f.logger.Error("Failed to delete index entry", "case_id", id, "error", err)
			}
		}
		f.logger.Info("Group data wiped", "group_id", groupID, "cases", len(caseIDs))
	}
	return nil
}

// HandleContactRemoved reacts to the transport reporting the admin is
// gone: same cleanup as /wipe, without the goodbye.
func (f *Flow) HandleContactRemoved(ctx context.Context, adminID string) error {
	f.logger.Info("Admin contact removed", "admin_id", adminID)
	return f.wipeAdmin(ctx, adminID)
}

func (f *Flow) dm(ctx context.Context, adminID string, m message, lang adminsession.Lang) error {
	sent, err := f.sender.SendDirectText(ctx, adminID, m.text(lang), nil)
	if err != nil {
		return err
	}
	if !sent {
		// the DM channel is gone; treat it like a contact removal
		return f.wipeAdmin(ctx, adminID)
	}
	return nil
}

// ukrainianLetters are characters present in Ukrainian but not Russian;
// any hit classifies the text as Ukrainian.
const ukrainianLetters = "іїєґІЇЄҐ"

// DetectLanguage guesses the admin's language from their first message.
func DetectLanguage(text string) adminsession.Lang {
	if strings.ContainsAny(text, ukrainianLetters) {
		return adminsession.LangUk
	}
	return adminsession.LangEn
}

// message is a localized DM template.
type message struct {
	en string
	uk string
}

func (m message) text(lang adminsession.Lang) string {
	if lang == adminsession.LangUk {
		return m.uk
	}
	return m.en
}

var (
	msgWelcome = message{
		en: "Hi! I mine solved support cases from your group chat and answer repeat questions. Send me the name of a group I should watch.",
		uk: "Привіт! Я збираю вирішені кейси підтримки з групового чату та відповідаю на повторні питання. Надішліть назву групи, яку я маю відстежувати.",
	}
	msgLanguageSet = message{
		en: "Language set to English.",
		uk: "Мову змінено на українську.",
	}
	msgGroupNotFound = message{
		en: "I can't find a group with that name among the chats I'm in. Check the name and try again.",
		uk: "Не знаходжу групу з такою назвою серед чатів, де я присутній. Перевірте назву та спробуйте ще раз.",
	}
	msgGroupBound = message{
		en: "Found the group. History linking has started — you'll receive a QR code here shortly.",
		uk: "Групу знайдено. Підключення історії розпочато — незабаром ви отримаєте QR-код.",
	}
	msgWiped = message{
		en: "All your data has been removed.",
		uk: "Усі ваші дані видалено.",
	}
)
