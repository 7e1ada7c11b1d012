// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import "context"

// SendEmailInput represents an email to be sent.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// EmailSender defines the interface for sending emails.
type EmailSender interface {
	// Send delivers an email.
	Send(ctx context.Context, input SendEmailInput) error
}
