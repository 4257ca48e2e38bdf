package notify

import (
	"context"
	"fmt"
	"html"

	domain "loan-origination-backend/internal/domain/notify"

	"gopkg.in/gomail.v2"
)

// Sender is the subset of *gomail.Dialer used here.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailNotifier mails the applicant when their application changes status.
// Applicants without an email address are skipped.
type EmailNotifier struct {
	sender Sender
	from   string
}

func NewEmailNotifier(s Sender, from string) *EmailNotifier {
	return &EmailNotifier{sender: s, from: from}
}

func (n *EmailNotifier) StatusChanged(_ context.Context, ev domain.StatusChanged) error {
	if ev.Email == "" {
		return nil
	}
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", ev.Email)
	m.SetHeader("Subject", fmt.Sprintf("Your loan application %s is now %s", ev.ApplicationNo, ev.To))
	m.SetBody("text/html", statusBody(ev))
	if err := n.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("send status email: %w", err)
	}
	return nil
}

func statusBody(ev domain.StatusChanged) string {
	name := ev.FullName
	if name == "" {
		name = "Customer"
	}
	return fmt.Sprintf(
		"<p>Dear %s,</p><p>The status of your loan application <b>%s</b> has changed to <b>%s</b>.</p>",
		html.EscapeString(name), html.EscapeString(ev.ApplicationNo), html.EscapeString(ev.To),
	)
}
