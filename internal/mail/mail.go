// Package mail formats the contributor form messages and hands them to a
// delivery capability. Formatting is delivery-agnostic; swapping the simulated
// LogSender for a real provider needs no change to callers.
package mail

import (
	"context"
	"errors"
)

// Kind identifies which of the two form messages is being sent.
type Kind string

const (
	KindAdminNotification Kind = "admin_notification"
	KindDonorConfirmation Kind = "donor_confirmation"
)

// ErrNoRecipients is reported when a message has nobody to go to.
var ErrNoRecipients = errors.New("mail: no recipients")

// Message is one outbound email.
type Message struct {
	Kind    Kind
	From    string
	To      []string
	Subject string
	Body    string
}

// Result is the outcome of one dispatch. Failures are values, not errors:
// a failed notification never stops the form flow.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Sender delivers a message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, msg Message) error

func (f SenderFunc) Send(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}
