package transport

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlackTSToMillis(t *testing.T) {
	assert.Equal(t, int64(1726000000123), slackTSToMillis("1726000000.123456"))
	assert.Equal(t, int64(1726000000000), slackTSToMillis("1726000000"))
	assert.Equal(t, int64(0), slackTSToMillis("not-a-ts"))
}

func TestSenderHashStable(t *testing.T) {
	a := SenderHash("U12345")
	assert.Len(t, a, 12)
	assert.Equal(t, a, SenderHash("U12345"))
	assert.NotEqual(t, a, SenderHash("U99999"))
}

func TestMentionToken(t *testing.T) {
	tr := &SlackTransport{}
	assert.Equal(t, "<@U123>", tr.MentionToken("U123"))
}

func TestIsUnreachable(t *testing.T) {
	assert.True(t, isUnreachable(errors.New("channel_not_found")))
	assert.True(t, isUnreachable(errors.New("user_not_found")))
	assert.False(t, isUnreachable(errors.New("rate_limited")))
}
