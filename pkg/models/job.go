package models

// BufferUpdatePayload is the payload of a BUFFER_UPDATE job.
type BufferUpdatePayload struct {
	GroupID   string `json:"group_id"`
	MessageID string `json:"message_id"`
}

// MaybeRespondPayload is the payload of a MAYBE_RESPOND job.
type MaybeRespondPayload struct {
	GroupID   string `json:"group_id"`
	MessageID string `json:"message_id"`
}

// HistoryLinkPayload is the payload of a HISTORY_LINK job.
type HistoryLinkPayload struct {
	Token   string `json:"token"`
	AdminID string `json:"admin_id"`
	GroupID string `json:"group_id"`
}
