package xdg

import (
	"context"

	"xdgkit/internal/scripts"
)

// Email describes a message to open in the user's preferred composer.
// Zero-value fields are omitted from the invocation.
type Email struct {
	UTF8       bool
	CC         string
	BCC        string
	Subject    string
	Body       string
	Attach     string
	Recipients []string // mailto URIs or plain addresses
}

// ComposeEmail opens the user's preferred email composer with the
// fields of msg pre-filled.
func (c *Client) ComposeEmail(ctx context.Context, msg Email) (Result, error) {
	a := args{}.
		swtch("--utf8", msg.UTF8).
		flag("--cc", msg.CC).
		flag("--bcc", msg.BCC).
		flag("--subject", msg.Subject).
		flag("--body", msg.Body).
		flag("--attach", msg.Attach).
		values(msg.Recipients...)
	return c.run(ctx, scripts.Email, a...)
}
