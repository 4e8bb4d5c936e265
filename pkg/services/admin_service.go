package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/casemine/casemine/ent"
	"github.com/casemine/casemine/ent/admingrouplink"
	"github.com/casemine/casemine/ent/adminsession"
	"github.com/casemine/casemine/ent/historytoken"
)

// AdminService owns admin DM sessions, admin-group links, and the
// single-use history-bootstrap tokens.
type AdminService struct {
	client *ent.Client
}

// NewAdminService creates a new AdminService.
func NewAdminService(client *ent.Client) *AdminService {
	if client == nil {
		panic("NewAdminService: client must not be nil")
	}
	return &AdminService{client: client}
}

// GetSession loads an admin's session, or ErrNotFound.
func (s *AdminService) GetSession(ctx context.Context, adminID string) (*ent.AdminSession, error) {
	sess, err := s.client.AdminSession.Get(ctx, adminID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get admin session: %w", err)
	}
	return sess, nil
}

// CreateSession starts a fresh session in awaiting_group_name.
func (s *AdminService) CreateSession(ctx context.Context, adminID string, lang adminsession.Lang) (*ent.AdminSession, error) {
	sess, err := s.client.AdminSession.Create().
		SetID(adminID).
		SetState(adminsession.StateAwaitingGroupName).
		SetLang(lang).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin session: %w", err)
	}
	return sess, nil
}

// BeginQRScan moves the session to awaiting_qr_scan with the pending
// group and token recorded.
func (s *AdminService) BeginQRScan(ctx context.Context, adminID, groupID, groupName, token string) error {
	err := s.client.AdminSession.UpdateOneID(adminID).
		SetState(adminsession.StateAwaitingQrScan).
		SetPendingGroupID(groupID).
		SetPendingGroupName(groupName).
		SetPendingToken(token).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update admin session: %w", err)
	}
	return nil
}

// ResetToGroupSearch returns the session to awaiting_group_name and
// clears any pending group/token.
func (s *AdminService) ResetToGroupSearch(ctx context.Context, adminID string) error {
	err := s.client.AdminSession.UpdateOneID(adminID).
		SetState(adminsession.StateAwaitingGroupName).
		ClearPendingGroupID().
		ClearPendingGroupName().
		ClearPendingToken().
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to reset admin session: %w", err)
	}
	return nil
}

// SetLanguage applies a /uk or /en override.
func (s *AdminService) SetLanguage(ctx context.Context, adminID string, lang adminsession.Lang) error {
	err := s.client.AdminSession.UpdateOneID(adminID).SetLang(lang).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set admin language: %w", err)
	}
	return nil
}

// CreateToken mints a single-use history token for admin+group.
func (s *AdminService) CreateToken(ctx context.Context, adminID, groupID string, ttl time.Duration) (*ent.HistoryToken, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	tok, err := s.client.HistoryToken.Create().
		SetID(hex.EncodeToString(buf)).
		SetAdminID(adminID).
		SetGroupID(groupID).
		SetExpiresAt(time.Now().Add(ttl)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create history token: %w", err)
	}
	return tok, nil
}

// ConsumeToken validates and burns a token in one step. A consumed,
// expired, or unknown token yields ErrTokenUnusable.
func (s *AdminService) ConsumeToken(ctx context.Context, token string) (*ent.HistoryToken, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	tok, err := tx.HistoryToken.Get(ctx, token)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTokenUnusable
		}
		return nil, fmt.Errorf("failed to load token: %w", err)
	}
	if tok.Consumed || time.Now().After(tok.ExpiresAt) {
		return nil, ErrTokenUnusable
	}

	if err := tx.HistoryToken.UpdateOne(tok).SetConsumed(true).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to consume token: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit token consumption: %w", err)
	}
	return tok, nil
}

// PeekToken loads a token without consuming it (used by /history/qr-ready).
func (s *AdminService) PeekToken(ctx context.Context, token string) (*ent.HistoryToken, error) {
	tok, err := s.client.HistoryToken.Get(ctx, token)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTokenUnusable
		}
		return nil, fmt.Errorf("failed to load token: %w", err)
	}
	if tok.Consumed || time.Now().After(tok.ExpiresAt) {
		return nil, ErrTokenUnusable
	}
	return tok, nil
}

// DeleteExpiredTokens reaps tokens past their expiry.
func (s *AdminService) DeleteExpiredTokens(ctx context.Context) (int, error) {
	n, err := s.client.HistoryToken.Delete().
		Where(historytoken.ExpiresAtLT(time.Now())).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}
	return n, nil
}

// CreateLink binds an admin to a group, idempotently.
func (s *AdminService) CreateLink(ctx context.Context, adminID, groupID string) error {
	err := s.client.AdminGroupLink.Create().
		SetAdminID(adminID).
		SetGroupID(groupID).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("failed to create admin-group link: %w", err)
	}
	return nil
}

// AdminsForGroup returns the IDs of admins linked to a group.
func (s *AdminService) AdminsForGroup(ctx context.Context, groupID string) ([]string, error) {
	ids, err := s.client.AdminGroupLink.Query().
		Where(admingrouplink.GroupID(groupID)).
		Select(admingrouplink.FieldAdminID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list group admins: %w", err)
	}
	return ids, nil
}

// GroupsForAdmin returns the group IDs an admin supervises.
func (s *AdminService) GroupsForAdmin(ctx context.Context, adminID string) ([]string, error) {
	ids, err := s.client.AdminGroupLink.Query().
		Where(admingrouplink.AdminID(adminID)).
		Select(admingrouplink.FieldGroupID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin groups: %w", err)
	}
	return ids, nil
}

// LanguageForGroup resolves the reply language from any linked admin's
// session. ok=false means no active admin supervises the group and the
// answer engine must stay silent.
func (s *AdminService) LanguageForGroup(ctx context.Context, groupID string) (adminsession.Lang, bool, error) {
	admins, err := s.AdminsForGroup(ctx, groupID)
	if err != nil {
		return "", false, err
	}
	for _, adminID := range admins {
		sess, err := s.GetSession(ctx, adminID)
		if err != nil {
			if err == ErrNotFound {
				continue
			}
			return "", false, err
		}
		return sess.Lang, true, nil
	}
	return "", false, nil
}

// RemoveAdmin deletes an admin's session, tokens, and group links. Used
// for both /wipe and contact-removed. Returns the group IDs the admin was
// linked to so the caller can decide what group data to purge.
func (s *AdminService) RemoveAdmin(ctx context.Context, adminID string) ([]string, error) {
	groups, err := s.GroupsForAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.HistoryToken.Delete().Where(historytoken.AdminID(adminID)).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete admin tokens: %w", err)
	}
	if _, err := tx.AdminGroupLink.Delete().Where(admingrouplink.AdminID(adminID)).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete admin links: %w", err)
	}
	if _, err := tx.AdminSession.Delete().Where(adminsession.ID(adminID)).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete admin session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit admin removal: %w", err)
	}
	return groups, nil
}
