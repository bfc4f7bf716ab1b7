package whatsapp

import (
	"net/url"

	"go.uber.org/zap"
)

// Dispatcher builds wa.me deep links addressed to the business's fixed
// recipient number. Opening the link is the client's job; there is no
// acknowledgment and no retry.
type Dispatcher struct {
	host      string
	recipient string
	logger    *zap.Logger
}

// NewDispatcher creates a Dispatcher for the given messaging host (e.g.
// "wa.me") and recipient number (digits only, no plus sign).
func NewDispatcher(host, recipient string, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{host: host, recipient: recipient, logger: logger}
}

// Recipient returns the configured recipient number.
func (d *Dispatcher) Recipient() string { return d.recipient }

// Link percent-encodes the message text and returns the deep link
// https://<host>/<recipient>?text=<encoded>. Decoding the text query
// parameter yields exactly the original string, emoji included.
func (d *Dispatcher) Link(text string) string {
	q := url.Values{}
	q.Set("text", text)
	u := url.URL{
		Scheme:   "https",
		Host:     d.host,
		Path:     "/" + d.recipient,
		RawQuery: q.Encode(),
	}
	link := u.String()

	d.logger.Info("handoff link built",
		zap.String("recipient", d.recipient),
		zap.Int("message_chars", len(text)),
	)
	return link
}
