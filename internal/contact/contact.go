package contact

import (
	"errors"
	"net/url"
	"strings"
	"sync"
	"time"

	"termfolio/pkg/logging"
)

const (
	// SubmitLabel is the button label while the form is ready.
	SubmitLabel = "Send Message"
	// SentLabel replaces the label after a submission until the reset delay passes.
	SentLabel = "✓ Message Sent!"
	// DefaultResetDelay is how long the sent state is shown.
	DefaultResetDelay = 3 * time.Second
)

// ErrBusy is returned when a submission arrives while the sent state is shown.
var ErrBusy = errors.New("contact: submit button is disabled")

// Form is the contact form payload.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Submission is the result of a stubbed submission. Nothing is sent over
// the network; MailtoURL is what a mail client would open.
type Submission struct {
	Form      Form
	MailtoURL string
	At        time.Time
}

// Controller drives the submit button state.
type Controller struct {
	mu         sync.Mutex
	recipient  string
	resetDelay time.Duration
	sent       bool
	now        func() time.Time
}

// NewController creates a controller mailing recipient. A non-positive
// delay uses DefaultResetDelay.
func NewController(recipient string, resetDelay time.Duration) *Controller {
	if resetDelay <= 0 {
		resetDelay = DefaultResetDelay
	}
	return &Controller{recipient: recipient, resetDelay: resetDelay, now: time.Now}
}

// Submit records the form and disables the button. The caller schedules
// Reset after ResetDelay.
func (c *Controller) Submit(f Form) (Submission, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sent {
		return Submission{}, ErrBusy
	}
	c.sent = true
	s := Submission{Form: f, MailtoURL: MailtoURL(c.recipient, f), At: c.now()}
	logging.Info("Contact", "form submitted: name=%q email=%q message=%d bytes", f.Name, f.Email, len(f.Message))
	return s, nil
}

// Reset restores the button.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = false
}

// SetRecipient changes the mail recipient, e.g. after a profile update.
func (c *Controller) SetRecipient(to string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recipient = to
}

// Label returns the current button label.
func (c *Controller) Label() string {
	if c.Disabled() {
		return SentLabel
	}
	return SubmitLabel
}

// Disabled reports whether the sent state is shown.
func (c *Controller) Disabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sent
}

// ResetDelay is how long the sent state lasts.
func (c *Controller) ResetDelay() time.Duration { return c.resetDelay }

// MailtoURL builds the mailto link for f. It is empty when there is no recipient.
func MailtoURL(to string, f Form) string {
	to = strings.TrimSpace(to)
	if to == "" {
		return ""
	}
	q := url.Values{}
	subject := "Portfolio contact"
	if f.Name != "" {
		subject += " from " + f.Name
	}
	q.Set("subject", subject)
	body := f.Message
	if f.Email != "" {
		body += "\n\nReply to: " + f.Email
	}
	q.Set("body", body)
	u := url.URL{Scheme: "mailto", Opaque: to, RawQuery: strings.ReplaceAll(q.Encode(), "+", "%20")}
	return u.String()
}
