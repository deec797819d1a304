package contact

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit_DisablesUntilReset(t *testing.T) {
	c := NewController("jane@example.com", 0)
	assert.Equal(t, DefaultResetDelay, c.ResetDelay())
	assert.Equal(t, SubmitLabel, c.Label())

	s, err := c.Submit(Form{Name: "Ada", Email: "ada@example.com", Message: "hello"})
	require.NoError(t, err)
	assert.NotEmpty(t, s.MailtoURL)
	assert.True(t, c.Disabled())
	assert.Equal(t, SentLabel, c.Label())

	_, err = c.Submit(Form{})
	assert.ErrorIs(t, err, ErrBusy)

	c.Reset()
	assert.False(t, c.Disabled())
	assert.Equal(t, SubmitLabel, c.Label())
}

func TestNewController_CustomDelay(t *testing.T) {
	assert.Equal(t, 5*time.Second, NewController("", 5*time.Second).ResetDelay())
}

func TestMailtoURL(t *testing.T) {
	raw := MailtoURL("jane@example.com", Form{Name: "Ada", Email: "ada@example.com", Message: "hi there"})

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "mailto", u.Scheme)
	assert.Equal(t, "jane@example.com", u.Opaque)
	assert.Equal(t, "Portfolio contact from Ada", u.Query().Get("subject"))
	assert.Equal(t, "hi there\n\nReply to: ada@example.com", u.Query().Get("body"))
	assert.NotContains(t, raw, "+")
}

func TestMailtoURL_NoRecipient(t *testing.T) {
	assert.Empty(t, MailtoURL("  ", Form{Message: "x"}))
}
