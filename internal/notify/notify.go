// Package notify composes sprint-request notifications and hands them to a
// delivery mechanism. The core stays environment-agnostic: delivery is a
// pluggable interface and the default implementation builds a mailto URL
// for the user's own mail client instead of sending server-side.
package notify

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/ourgorithm/seo-audit/internal/types"
)

// Message is a plain-text notification ready for delivery.
type Message struct {
	Recipient string
	Subject   string
	Body      string
}

// Notifier hands a composed message to a delivery mechanism.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// ComposeSprintRequest builds the notification for a new sprint request.
func ComposeSprintRequest(recipient, domain string, req types.SprintRequest) Message {
	blockers := "None"
	if len(req.Blockers) > 0 {
		blockers = strings.Join(req.Blockers, ", ")
	}

	var body strings.Builder
	body.WriteString("New Sprint Request Received!\n\n")
	fmt.Fprintf(&body, "Website: %s\n", domain)
	fmt.Fprintf(&body, "Client Email: %s\n", req.Email)
	fmt.Fprintf(&body, "Client Phone: %s\n", req.Phone)
	fmt.Fprintf(&body, "Readiness Tier: %s\n", req.ReadinessTier)
	fmt.Fprintf(&body, "Blockers: %s\n", blockers)

	return Message{
		Recipient: recipient,
		Subject:   fmt.Sprintf("New Sprint Request: %s", domain),
		Body:      body.String(),
	}
}

// MailtoURL encodes a message as a mailto URL for a local mail client.
// Spaces must be percent-encoded: mailto handlers take the hname/hvalue
// pairs as percent-encoded text per RFC 6068, not as form data, so a `+`
// would show up literally in the subject line.
func MailtoURL(msg Message) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		msg.Recipient, mailtoEscape(msg.Subject), mailtoEscape(msg.Body))
}

func mailtoEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// MailtoNotifier writes the mailto URL to an output stream so the caller's
// environment can open it. No mail is ever sent by this process.
type MailtoNotifier struct {
	Out io.Writer
}

// Notify writes the mailto URL for the message.
func (n *MailtoNotifier) Notify(_ context.Context, msg Message) error {
	if _, err := fmt.Fprintln(n.Out, MailtoURL(msg)); err != nil {
		return fmt.Errorf("failed to write notification: %w", err)
	}
	return nil
}
