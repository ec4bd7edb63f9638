package mail

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

// LogSender simulates a mail provider: it logs the message and succeeds after
// a per-kind delay standing in for the provider round trip.
type LogSender struct {
	log    *zap.Logger
	delays map[Kind]time.Duration
}

// NewLogSender returns a LogSender. Kinds missing from delays are sent
// without waiting.
func NewLogSender(log *zap.Logger, delays map[Kind]time.Duration) *LogSender {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogSender{log: log.With(zap.String("component", "mail")), delays: delays}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.log.Info("simulated email",
		zap.String("kind", string(msg.Kind)),
		zap.String("from", msg.From),
		zap.String("to", strings.Join(msg.To, ", ")),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Body),
	)

	d := s.delays[msg.Kind]
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
