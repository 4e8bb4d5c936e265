package transport

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/casemine/casemine/pkg/config"
	"github.com/casemine/casemine/pkg/models"
	goslack "github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
)

// SlackTransport implements Transport over Slack Socket Mode. Group chats
// map to channels, admin DMs to IM conversations, message IDs to Slack
// message timestamps.
type SlackTransport struct {
	api     *goslack.Client
	sm      *socketmode.Client
	timeout time.Duration
	logger  *slog.Logger
}

// NewSlackTransport builds the adapter from configuration. Tokens are
// read from the configured environment variables by the caller.
func NewSlackTransport(botToken, appToken string, cfg *config.TransportConfig) (*SlackTransport, error) {
	if botToken == "" || appToken == "" {
		return nil, fmt.Errorf("transport tokens are required")
	}
	api := goslack.New(botToken, goslack.OptionAppLevelToken(appToken))
	return &SlackTransport{
		api:     api,
		sm:      socketmode.New(api),
		timeout: cfg.Timeout,
		logger:  slog.Default().With("component", "transport"),
	}, nil
}

// SenderHash derives the stable pseudonymous sender identity used in
// buffers and stored messages.
func SenderHash(userID string) string {
	sum := sha256.Sum256([]byte(userID))
	return hex.EncodeToString(sum[:])[:12]
}

// Listen connects the socket-mode stream and translates Slack events into
// pipeline events. The returned channel closes when ctx is cancelled.
func (t *SlackTransport) Listen(ctx context.Context) (<-chan Event, error) {
	out := make(chan Event, 64)

	go func() {
		if err := t.sm.RunContext(ctx); err != nil && ctx.Err() == nil {
			t.logger.Error("Socket mode connection ended", "error", err)
		}
	}()

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-t.sm.Events:
				if !ok {
					return
				}
				if evt.Type != socketmode.EventTypeEventsAPI {
					continue
				}
				apiEvent, ok := evt.Data.(slackevents.EventsAPIEvent)
				if !ok {
					continue
				}
				if evt.Request != nil {
					t.sm.Ack(*evt.Request)
				}
				if e := t.translate(apiEvent); e != nil {
					select {
					case out <- *e:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()

	return out, nil
}

func (t *SlackTransport) translate(apiEvent slackevents.EventsAPIEvent) *Event {
	switch ev := apiEvent.InnerEvent.Data.(type) {
	case *slackevents.MessageEvent:
		// edits, joins and other subtypes are not pipeline input
		if ev.SubType != "" && ev.SubType != "file_share" {
			return nil
		}
		if ev.ChannelType == "im" {
			return &Event{Direct: &models.DirectMessage{
				AdminID: ev.User,
				Text:    ev.Text,
			}}
		}
		return &Event{Message: &models.InboundMessage{
			GroupID:   ev.Channel,
			MessageID: ev.TimeStamp,
			TS:        slackTSToMillis(ev.TimeStamp),
			Sender:    SenderHash(ev.User),
			Text:      ev.Text,
			ReplyToID: ev.ThreadTimeStamp,
		}}

	case *slackevents.ReactionAddedEvent:
		return &Event{Reaction: &models.InboundReaction{
			GroupID:      ev.Item.Channel,
			TargetTS:     slackTSToMillis(ev.Item.Timestamp),
			TargetAuthor: SenderHash(ev.ItemUser),
			Sender:       SenderHash(ev.User),
			Emoji:        ev.Reaction,
		}}

	case *slackevents.ReactionRemovedEvent:
		return &Event{Reaction: &models.InboundReaction{
			GroupID:      ev.Item.Channel,
			TargetTS:     slackTSToMillis(ev.Item.Timestamp),
			TargetAuthor: SenderHash(ev.ItemUser),
			Sender:       SenderHash(ev.User),
			Emoji:        ev.Reaction,
			IsRemove:     true,
		}}
	}
	return nil
}

// slackTSToMillis converts a Slack "seconds.fraction" timestamp to
// millisecond instants. Malformed input yields 0.
func slackTSToMillis(ts string) int64 {
	sec, frac, _ := strings.Cut(ts, ".")
	s, err := strconv.ParseInt(sec, 10, 64)
	if err != nil {
		return 0
	}
	ms := s * 1000
	if len(frac) >= 3 {
		if m, err := strconv.ParseInt(frac[:3], 10, 64); err == nil {
			ms += m
		}
	}
	return ms
}

// SendGroupText posts a reply, threading on the quoted message when set.
// Slack mentions are inline in the text, so mentionRecipients is only
// used to detect "nobody to mention" situations upstream.
func (t *SlackTransport) SendGroupText(ctx context.Context, groupID, text, quoteMessageID string, mentionRecipients []string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	opts := []goslack.MsgOption{goslack.MsgOptionText(text, false)}
	if quoteMessageID != "" {
		opts = append(opts, goslack.MsgOptionTS(quoteMessageID))
	}

	_, _, err := t.api.PostMessageContext(ctx, groupID, opts...)
	if err != nil {
		if isUnreachable(err) {
			return false, nil
		}
		return false, fmt.Errorf("chat.postMessage failed: %w", err)
	}
	return true, nil
}

// SendDirectText opens (or reuses) the IM conversation and posts there.
// A non-nil attachment is uploaded as a PNG (used for history QR codes).
func (t *SlackTransport) SendDirectText(ctx context.Context, adminID, text string, attachment []byte) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	channel, _, _, err := t.api.OpenConversationContext(ctx, &goslack.OpenConversationParameters{
		Users: []string{adminID},
	})
	if err != nil {
		if isUnreachable(err) {
			return false, nil
		}
		return false, fmt.Errorf("conversations.open failed: %w", err)
	}

	if _, _, err := t.api.PostMessageContext(ctx, channel.ID, goslack.MsgOptionText(text, false)); err != nil {
		if isUnreachable(err) {
			return false, nil
		}
		return false, fmt.Errorf("chat.postMessage failed: %w", err)
	}

	if len(attachment) > 0 {
		_, err := t.api.UploadFileContext(ctx, goslack.UploadFileParameters{
			Channel:  channel.ID,
			Filename: "qr.png",
			FileSize: len(attachment),
			Reader:   bytes.NewReader(attachment),
		})
		if err != nil {
			return false, fmt.Errorf("file upload failed: %w", err)
		}
	}
	return true, nil
}

// ListGroups pages through the channels the bot account is a member of.
func (t *SlackTransport) ListGroups(ctx context.Context) ([]Group, error) {
	var (
		groups []Group
		cursor string
	)
	for {
		channels, next, err := t.api.GetConversationsContext(ctx, &goslack.GetConversationsParameters{
			Types:           []string{"public_channel", "private_channel"},
			ExcludeArchived: true,
			Cursor:          cursor,
			Limit:           200,
		})
		if err != nil {
			return nil, fmt.Errorf("conversations.list failed: %w", err)
		}
		for _, ch := range channels {
			if !ch.IsMember {
				continue
			}
			groups = append(groups, Group{ID: ch.ID, Name: ch.Name})
		}
		if next == "" {
			return groups, nil
		}
		cursor = next
	}
}

// MentionToken renders a Slack user mention.
func (t *SlackTransport) MentionToken(recipientID string) string {
	return "<@" + recipientID + ">"
}

func isUnreachable(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "channel_not_found") ||
		strings.Contains(msg, "user_not_found") ||
		strings.Contains(msg, "user_not_visible")
}

var _ Transport = (*SlackTransport)(nil)
