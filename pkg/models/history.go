package models

// LinkTokenRequest asks for a new history-bootstrap token.
type LinkTokenRequest struct {
	AdminID string `json:"admin_id"`
	GroupID string `json:"group_id"`
}

// LinkTokenResponse carries the issued token.
type LinkTokenResponse struct {
	Token  string `json:"token"`
	QRHint string `json:"qr_hint"`
}

// QRReadyRequest relays a login QR from the history collaborator.
type QRReadyRequest struct {
	Token       string `json:"token"`
	QRPNGBase64 string `json:"qr_png_base64"`
}

// HistoryCasesRequest is a bulk import of extracted case blocks.
type HistoryCasesRequest struct {
	Token string             `json:"token"`
	Cases []HistoryCaseBlock `json:"cases"`
}

// HistoryCaseBlock is one candidate case mined from group history.
// CaseBlock is raw buffer-format text whose msg_id= headers identify
// the evidence messages.
type HistoryCaseBlock struct {
	CaseBlock     string `json:"case_block"`
	ReactionEmoji string `json:"reaction_emoji,omitempty"`
}

// HistoryCasesResponse summarizes an import.
type HistoryCasesResponse struct {
	Imported int `json:"imported"`
	Merged   int `json:"merged"`
	Skipped  int `json:"skipped"`
}
