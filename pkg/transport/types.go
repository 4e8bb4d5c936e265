// Package transport abstracts the chat platform. The pipeline consumes a
// stream of inbound events and sends replies through this interface; the
// Slack adapter is the production implementation.
package transport

import (
	"context"

	"github.com/casemine/casemine/pkg/models"
)

// Event is one inbound transport event. Exactly one field is non-nil.
type Event struct {
	Message        *models.InboundMessage
	Reaction       *models.InboundReaction
	Direct         *models.DirectMessage
	ContactRemoved *ContactRemoved
}

// ContactRemoved signals that an admin is no longer reachable.
type ContactRemoved struct {
	AdminID string
}

// Group is one chat group the bot account belongs to.
type Group struct {
	ID   string
	Name string
}

// Transport is the chat-platform interface the pipeline depends on.
type Transport interface {
	// Listen produces inbound events until ctx is cancelled. The channel
	// closes on shutdown or on an unrecoverable connection error.
	Listen(ctx context.Context) (<-chan Event, error)

	// SendGroupText posts a reply into a group, optionally quoting one
	// message and mentioning recipients. ok=false means the recipient is
	// unreachable (the caller handles admin cleanup).
	SendGroupText(ctx context.Context, groupID, text, quoteMessageID string, mentionRecipients []string) (bool, error)

	// SendDirectText sends a private message to an admin, optionally with
	// a PNG attachment.
	SendDirectText(ctx context.Context, adminID, text string, attachment []byte) (bool, error)

	// ListGroups returns the groups the bot account is a member of.
	ListGroups(ctx context.Context) ([]Group, error)

	// MentionToken renders the platform mention for one recipient.
	MentionToken(recipientID string) string
}
