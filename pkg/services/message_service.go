package services

import (
	"context"
	"fmt"

	"github.com/casemine/casemine/ent"
	"github.com/casemine/casemine/ent/groupbuffer"
	"github.com/casemine/casemine/ent/rawmessage"
	"github.com/casemine/casemine/ent/reaction"
	"github.com/casemine/casemine/ent/sentreply"
	"github.com/casemine/casemine/pkg/models"
	"github.com/google/uuid"
)

// MessageService owns raw messages, reactions, per-group buffers, and the
// sent-reply idempotency markers.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService.
func NewMessageService(client *ent.Client) *MessageService {
	if client == nil {
		panic("NewMessageService: client must not be nil")
	}
	return &MessageService{client: client}
}

// InsertRawMessage persists an inbound message. Inserts are idempotent on
// (group_id, message_id): a duplicate returns inserted=false, not an error.
func (s *MessageService) InsertRawMessage(ctx context.Context, m models.InboundMessage, fromBot bool) (bool, error) {
	if m.GroupID == "" || m.MessageID == "" {
		return false, NewValidationError("message_id", "group and message IDs are required")
	}

	builder := s.client.RawMessage.Create().
		SetID(uuid.New().String()).
		SetGroupID(m.GroupID).
		SetMessageID(m.MessageID).
		SetTs(m.TS).
		SetSenderHash(m.Sender).
		SetContentText(m.Text).
		SetFromBot(fromBot)

	if m.SenderName != "" {
		builder.SetSenderName(m.SenderName)
	}
	if m.ReplyToID != "" {
		builder.SetReplyToID(m.ReplyToID)
	}
	if len(m.ImagePaths) > 0 {
		builder.SetImagePaths(m.ImagePaths)
	}

	if err := builder.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert raw message: %w", err)
	}
	return true, nil
}

// GetMessage loads one message by its transport identity.
func (s *MessageService) GetMessage(ctx context.Context, groupID, messageID string) (*ent.RawMessage, error) {
	m, err := s.client.RawMessage.Query().
		Where(rawmessage.GroupID(groupID), rawmessage.MessageID(messageID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return m, nil
}

// RecentMessages returns up to k messages of the group strictly older than
// beforeTS, oldest first. Used to compose the gate's recent context.
func (s *MessageService) RecentMessages(ctx context.Context, groupID string, beforeTS int64, k int) ([]*ent.RawMessage, error) {
	msgs, err := s.client.RawMessage.Query().
		Where(rawmessage.GroupID(groupID), rawmessage.TsLT(beforeTS)).
		Order(ent.Desc(rawmessage.FieldTs)).
		Limit(k).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent messages: %w", err)
	}
	// reverse to chronological order
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// SetReactionCount updates the denormalized counter on a raw message.
func (s *MessageService) SetReactionCount(ctx context.Context, groupID, messageID string, count int) error {
	n, err := s.client.RawMessage.Update().
		Where(rawmessage.GroupID(groupID), rawmessage.MessageID(messageID)).
		SetReactionCount(count).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update reaction count: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpsertReaction records one reaction idempotently on its full tuple.
func (s *MessageService) UpsertReaction(ctx context.Context, r models.InboundReaction, isPositive bool) error {
	err := s.client.Reaction.Create().
		SetGroupID(r.GroupID).
		SetTargetTs(r.TargetTS).
		SetTargetAuthor(r.TargetAuthor).
		SetSenderHash(r.Sender).
		SetEmoji(r.Emoji).
		SetIsPositive(isPositive).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("failed to upsert reaction: %w", err)
	}
	return nil
}

// RemoveReaction deletes the exact reaction tuple and nothing else.
func (s *MessageService) RemoveReaction(ctx context.Context, r models.InboundReaction) error {
	_, err := s.client.Reaction.Delete().
		Where(
			reaction.GroupID(r.GroupID),
			reaction.TargetTs(r.TargetTS),
			reaction.TargetAuthor(r.TargetAuthor),
			reaction.SenderHash(r.Sender),
			reaction.Emoji(r.Emoji),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove reaction: %w", err)
	}
	return nil
}

// CountPositiveReactions counts positive reactions targeting one message
// timestamp in the group.
func (s *MessageService) CountPositiveReactions(ctx context.Context, groupID string, targetTS int64) (int, error) {
	n, err := s.client.Reaction.Query().
		Where(
			reaction.GroupID(groupID),
			reaction.TargetTs(targetTS),
			reaction.IsPositive(true),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count reactions: %w", err)
	}
	return n, nil
}

// GetBuffer returns the group's buffer text; a missing row is an empty buffer.
func (s *MessageService) GetBuffer(ctx context.Context, groupID string) (string, error) {
	b, err := s.client.GroupBuffer.Get(ctx, groupID)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get buffer: %w", err)
	}
	return b.BufferText, nil
}

// SetBuffer writes the group's buffer text, creating the row on first use.
func (s *MessageService) SetBuffer(ctx context.Context, groupID, text string) error {
	err := s.client.GroupBuffer.Create().
		SetID(groupID).
		SetBufferText(text).
		OnConflictColumns(groupbuffer.FieldID).
		UpdateBufferText().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set buffer: %w", err)
	}
	return nil
}

// DocURLs returns the group's documentation links; empty when never set.
func (s *MessageService) DocURLs(ctx context.Context, groupID string) ([]string, error) {
	b, err := s.client.GroupBuffer.Get(ctx, groupID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get doc urls: %w", err)
	}
	return b.DocUrls, nil
}

// SetDocURLs replaces the group's documentation links, creating the
// group row on first use.
func (s *MessageService) SetDocURLs(ctx context.Context, groupID string, urls []string) error {
	err := s.client.GroupBuffer.Create().
		SetID(groupID).
		SetDocUrls(urls).
		OnConflictColumns(groupbuffer.FieldID).
		UpdateDocUrls().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set doc urls: %w", err)
	}
	return nil
}

// TryMarkReplied records that the bot answered (group_id, message_id).
// Returns false when a reply was already recorded, making sends idempotent.
func (s *MessageService) TryMarkReplied(ctx context.Context, groupID, messageID string) (bool, error) {
	err := s.client.SentReply.Create().
		SetGroupID(groupID).
		SetMessageID(messageID).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to mark reply: %w", err)
	}
	return true, nil
}

// HasReplied reports whether a reply marker exists for the message.
func (s *MessageService) HasReplied(ctx context.Context, groupID, messageID string) (bool, error) {
	exists, err := s.client.SentReply.Query().
		Where(sentreply.GroupID(groupID), sentreply.MessageID(messageID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check reply marker: %w", err)
	}
	return exists, nil
}

// DeleteGroupData removes the group's messages, buffer, reactions, and
// reply markers. Case rows are handled by CaseService.
func (s *MessageService) DeleteGroupData(ctx context.Context, groupID string) error {
	if _, err := s.client.RawMessage.Delete().Where(rawmessage.GroupID(groupID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete messages: %w", err)
	}
	if _, err := s.client.GroupBuffer.Delete().Where(groupbuffer.ID(groupID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete buffer: %w", err)
	}
	if _, err := s.client.Reaction.Delete().Where(reaction.GroupID(groupID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete reactions: %w", err)
	}
	if _, err := s.client.SentReply.Delete().Where(sentreply.GroupID(groupID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete reply markers: %w", err)
	}
	return nil
}
