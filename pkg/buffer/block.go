// Package buffer owns the per-group rolling message buffer: block
// formatting, deterministic parsing, age/count trimming, numbered
// extraction input, and span removal.
package buffer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Message is the input for formatting one buffer block.
type Message struct {
	SenderHash string
	FromBot    bool
	TS         int64 // milliseconds
	MessageID  string
	ReplyToID  string
	Reactions  int
	Content    string
}

// Block is one parsed buffer entry. Index is the position within a single
// parse and is stable for that parse only.
type Block struct {
	Index      int
	SenderHash string
	FromBot    bool
	TS         int64
	MessageID  string
	ReplyToID  string
	Reactions  int
	Body       string
	RawText    string // header line + body, no trailing blank line
	StartLine  int    // 1-based line of the header within the buffer
	EndLine    int    // 1-based last body line
}

// Span is an inclusive index range over parsed blocks.
type Span struct {
	Start int `json:"start_idx"`
	End   int `json:"end_idx"`
}

// headerRe matches a block header line:
//
//	<sender_hash>[BOT?] ts=<ms> msg_id=<id> [reply_to=<id>] reactions=<n>
var headerRe = regexp.MustCompile(`^(\S+?)(\[BOT\])? ts=(\d+) msg_id=(\S+)(?: reply_to=(\S+))? reactions=(\d+)$`)

// FormatBlock renders one message as a buffer block (header + body).
func FormatBlock(m Message) string {
	var sb strings.Builder
	sb.WriteString(m.SenderHash)
	if m.FromBot {
		sb.WriteString("[BOT]")
	}
	fmt.Fprintf(&sb, " ts=%d msg_id=%s", m.TS, m.MessageID)
	if m.ReplyToID != "" {
		fmt.Fprintf(&sb, " reply_to=%s", m.ReplyToID)
	}
	fmt.Fprintf(&sb, " reactions=%d", m.Reactions)
	sb.WriteString("\n")
	sb.WriteString(strings.TrimRight(m.Content, "\n"))
	return sb.String()
}

// ParseToBlocks splits buffer text into blocks. A block starts at every
// line matching the header pattern and runs until the next header (or end
// of text); trailing blank lines are not part of the body. Parsing is
// deterministic: the same text always yields the same blocks.
func ParseToBlocks(bufferText string) []Block {
	if strings.TrimSpace(bufferText) == "" {
		return nil
	}

	lines := strings.Split(bufferText, "\n")
	var blocks []Block
	var cur *Block

	flush := func(endLine int) {
		if cur == nil {
			return
		}
		cur.Body = strings.TrimRight(cur.Body, "\n")
		cur.RawText = strings.TrimRight(cur.RawText, "\n")
		cur.EndLine = endLine
		blocks = append(blocks, *cur)
		cur = nil
	}

	lastContent := 0
	for i, line := range lines {
		m := headerRe.FindStringSubmatch(line)
		if m != nil {
			flush(lastContent)

			ts, _ := strconv.ParseInt(m[3], 10, 64)
			reactions, _ := strconv.Atoi(m[6])
			cur = &Block{
				Index:      len(blocks),
				SenderHash: m[1],
				FromBot:    m[2] != "",
				TS:         ts,
				MessageID:  m[4],
				ReplyToID:  m[5],
				Reactions:  reactions,
				RawText:    line + "\n",
				StartLine:  i + 1,
			}
			lastContent = i + 1
			continue
		}
		if cur != nil {
			cur.Body += line + "\n"
			cur.RawText += line + "\n"
			if strings.TrimSpace(line) != "" {
				lastContent = i + 1
			}
		}
	}
	flush(lastContent)

	return blocks
}

// Render serializes blocks back into canonical buffer text:
// blocks joined by a blank line, trailing newline.
func Render(blocks []Block) string {
	if len(blocks) == 0 {
		return ""
	}
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = b.RawText
	}
	return strings.Join(parts, "\n\n") + "\n"
}
