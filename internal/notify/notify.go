// Package notify sends an optional notification when a probe run fails.
// PRTG already alerts on the error document; this is for operators who want
// a direct push (Telegram, ntfy, email, ...) without waiting for the
// platform's notification chain.
package notify

import (
	"fmt"

	"github.com/nicholas-fedor/shoutrrr"
)

// Sender abstracts message dispatch so callers can be tested without
// hitting real services.
type Sender interface {
	Send(serviceURL, message string) error
}

// ShoutrrrSender dispatches via the Shoutrrr library.
type ShoutrrrSender struct{}

func (ShoutrrrSender) Send(serviceURL, message string) error {
	return shoutrrr.Send(serviceURL, message)
}

// Failure describes a failed probe run.
type Failure struct {
	Host     string
	Category string
	Message  string
}

// Format renders the notification text for a failed run.
func Format(f *Failure) string {
	return fmt.Sprintf("PowerStore probe failed\nHost: %s\nMode: %s\n%s", f.Host, f.Category, f.Message)
}

// SendFailure delivers a failure notification to the given Shoutrrr service
// URL. A nil sender uses the real Shoutrrr dispatcher.
func SendFailure(sender Sender, serviceURL string, f *Failure) error {
	if sender == nil {
		sender = ShoutrrrSender{}
	}
	if err := sender.Send(serviceURL, Format(f)); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}
