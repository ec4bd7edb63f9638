package mail

import (
	"context"
	"fmt"
	"time"
)

// RetrySender bounds each attempt with a timeout and retries a failed send
// once, immediately. Notifications are best effort, so there is no backoff.
type RetrySender struct {
	next    Sender
	timeout time.Duration
}

func NewRetrySender(next Sender, timeout time.Duration) *RetrySender {
	return &RetrySender{next: next, timeout: timeout}
}

func (r *RetrySender) Send(ctx context.Context, msg Message) error {
	const attempts = 2
	var err error
	for i := 0; i < attempts; i++ {
		if err = r.attempt(ctx, msg); err == nil {
			return nil
		}
		if ctx.Err() != nil {
			break
		}
	}
	return fmt.Errorf("send %s: %w", msg.Kind, err)
}

func (r *RetrySender) attempt(ctx context.Context, msg Message) error {
	if r.timeout <= 0 {
		return r.next.Send(ctx, msg)
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.next.Send(ctx, msg)
}
