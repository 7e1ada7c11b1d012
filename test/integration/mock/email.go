package mock

import (
	"context"
	"sync"

	"github.com/snehithlal/money-manager/internal/application/adapter"
)

// EmailOutbox captures emails instead of delivering them, so scenarios can
// assert on the password reset mail and pull the token out of its link.
type EmailOutbox struct {
	mu   sync.Mutex
	sent []adapter.SendEmailInput
}

func NewEmailOutbox() *EmailOutbox {
	return &EmailOutbox{}
}

var _ adapter.EmailSender = (*EmailOutbox)(nil)

func (o *EmailOutbox) Send(_ context.Context, input adapter.SendEmailInput) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, input)
	return nil
}

// Last returns the most recently captured email.
func (o *EmailOutbox) Last() (adapter.SendEmailInput, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.sent) == 0 {
		return adapter.SendEmailInput{}, false
	}
	return o.sent[len(o.sent)-1], true
}

func (o *EmailOutbox) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = nil
}
