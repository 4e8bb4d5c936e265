// Package models defines request/response types and job payloads shared
// across services, the queue, and the HTTP API.
package models

// InboundMessage is a chat message delivered by the transport adapter.
type InboundMessage struct {
	GroupID    string   `json:"group_id"`
	MessageID  string   `json:"message_id"`
	TS         int64    `json:"ts"` // milliseconds
	Sender     string   `json:"sender"`
	SenderName string   `json:"sender_name,omitempty"`
	Text       string   `json:"text"`
	ImagePaths []string `json:"image_paths,omitempty"`
	ReplyToID  string   `json:"reply_to_id,omitempty"`
}

// InboundReaction is a reaction event delivered by the transport adapter.
type InboundReaction struct {
	GroupID      string `json:"group_id"`
	TargetTS     int64  `json:"target_ts"`
	TargetAuthor string `json:"target_author"`
	Sender       string `json:"sender"`
	Emoji        string `json:"emoji"`
	IsRemove     bool   `json:"is_remove"`
}

// DirectMessage is a private message from an admin to the bot.
type DirectMessage struct {
	AdminID string `json:"admin_id"`
	Text    string `json:"text"`
}
