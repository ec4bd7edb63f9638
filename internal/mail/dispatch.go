package mail

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bwdtc/bridgewater-dems/internal/metrics"
)

// Dispatch attempts delivery of msg and converts the outcome into a Result.
// It never returns an error.
func Dispatch(ctx context.Context, sender Sender, msg Message) Result {
	ctx, span := otel.Tracer("mail").Start(ctx, "mail.Dispatch",
		trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("mail.kind", string(msg.Kind)),
		attribute.Int("mail.recipients", len(msg.To)),
	)

	err := send(ctx, sender, msg)
	metrics.MailDispatch.WithLabelValues(string(msg.Kind), metrics.Result(err)).Inc()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{Success: false, Error: err.Error()}
	}
	return Result{Success: true}
}

func send(ctx context.Context, sender Sender, msg Message) error {
	to := msg.To[:0:0]
	for _, addr := range msg.To {
		if a := strings.TrimSpace(addr); a != "" {
			to = append(to, a)
		}
	}
	if len(to) == 0 {
		return ErrNoRecipients
	}
	msg.To = to
	return sender.Send(ctx, msg)
}
