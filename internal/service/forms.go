package service

import (
	"context"
	"errors"
	"net/url"

	"go.uber.org/zap"

	"github.com/bwdtc/bridgewater-dems/internal/forms"
	"github.com/bwdtc/bridgewater-dems/internal/model"
)

// Form names registered with the forms backend.
const (
	FormContact   = "contact"
	FormVolunteer = "volunteer"
)

// VolunteerAcknowledgement is shown after a volunteer sign-up.
const VolunteerAcknowledgement = "Thank you for volunteering! We'll contact you within 2-3 business days to discuss next steps."

// Relay posts a form to the forms backend.
type Relay interface {
	Submit(ctx context.Context, formName string, fields url.Values) error
}

// FormService validates the public contact and volunteer forms against the
// field lists published in the site content and relays them.
type FormService interface {
	// Contact returns the message to show the visitor.
	Contact(ctx context.Context, values url.Values) (string, error)
	Volunteer(ctx context.Context, values url.Values) (string, error)
}

type formService struct {
	content ContentService
	relay   Relay
	log     *zap.Logger
}

// NewFormService constructs a FormService.
func NewFormService(content ContentService, relay Relay, log *zap.Logger) FormService {
	return &formService{
		content: content,
		relay:   relay,
		log:     orGlobal(log).With(zap.String("component", "forms")),
	}
}

func (s *formService) Contact(ctx context.Context, values url.Values) (string, error) {
	c := s.content.Site(ctx).Contact.ContactForm
	return c.SuccessMessage, s.handle(ctx, FormContact, c.Fields, values)
}

func (s *formService) Volunteer(ctx context.Context, values url.Values) (string, error) {
	fields := s.content.Site(ctx).Volunteer.CallToAction.FormFields
	return VolunteerAcknowledgement, s.handle(ctx, FormVolunteer, fields, values)
}

func (s *formService) handle(ctx context.Context, name string, fields []model.FormField, values url.Values) error {
	ctx, span := tracer.Start(ctx, "forms."+name)
	defer span.End()

	if forms.IsSpam(values) {
		s.log.Info("honeypot filled, dropping submission", zap.String("event", "form_spam"), zap.String("form", name))
		return nil
	}
	if err := forms.Validate(fields, values); err != nil {
		return err
	}

	err := s.relay.Submit(ctx, name, values)
	switch {
	case err == nil:
		s.log.Info("form relayed", zap.String("event", "form_relayed"), zap.String("form", name))
		return nil
	case errors.Is(err, forms.ErrNotConfigured):
		// No backend in local setups: the submission only reaches the log.
		s.log.Warn("forms backend not configured, submission logged only",
			zap.String("event", "form_not_relayed"),
			zap.String("form", name),
			zap.Any("fields", values),
		)
		return nil
	default:
		span.RecordError(err)
		s.log.Error("form relay failed", zap.String("event", "form_relay_failed"), zap.String("form", name), zap.Error(err))
		return err
	}
}
