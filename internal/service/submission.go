package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bwdtc/bridgewater-dems/internal/content"
	bwmail "github.com/bwdtc/bridgewater-dems/internal/mail"
	"github.com/bwdtc/bridgewater-dems/internal/model"
	"github.com/bwdtc/bridgewater-dems/internal/repository"
	"github.com/bwdtc/bridgewater-dems/internal/storage"
)

// SubmissionListResult is the service-level DTO for archived submissions.
type SubmissionListResult struct {
	Items []model.StoredSubmission `json:"data"`
	Total int                      `json:"total"`
}

// SubmissionService runs the SEEC contributor form flow.
type SubmissionService interface {
	// Recipients returns the admin notification list, falling back to the
	// configured defaults when nothing usable is stored.
	Recipients(ctx context.Context) []string
	SetRecipients(ctx context.Context, recipients []string) error

	// Validate returns a *model.ValidationError describing every bad field.
	Validate(rec model.SubmissionRecord) error

	// Submit validates rec, sends the admin notification and the donor
	// confirmation, and records the outcome. Delivery failures are reported
	// in the snapshot, not as errors.
	Submit(ctx context.Context, rec model.SubmissionRecord) (*model.LastSubmission, error)

	// Snapshot returns the snapshot Submit stored for id. Ids that are not
	// well-formed uuids never reach the store.
	Snapshot(ctx context.Context, id string) (*model.LastSubmission, bool)

	List(ctx context.Context, limit, offset int) (*SubmissionListResult, error)
	Get(ctx context.Context, id string) (*model.StoredSubmission, error)
}

// SubmissionConfig carries the mail settings of the form flow.
type SubmissionConfig struct {
	From              string
	DefaultRecipients []string
}

type submissionService struct {
	store   storage.Store
	content ContentService
	sender  bwmail.Sender
	repo    repository.SubmissionRepository
	cfg     SubmissionConfig
	log     *zap.Logger
	now     func() time.Time
}

// NewSubmissionService constructs a SubmissionService. repo may be nil, in
// which case submissions are not archived.
func NewSubmissionService(
	store storage.Store,
	content ContentService,
	sender bwmail.Sender,
	repo repository.SubmissionRepository,
	cfg SubmissionConfig,
	log *zap.Logger,
) SubmissionService {
	return &submissionService{
		store:   store,
		content: content,
		sender:  sender,
		repo:    repo,
		cfg:     cfg,
		log:     orGlobal(log).With(zap.String("component", "submission")),
		now:     time.Now,
	}
}

func (s *submissionService) defaultRecipients() []string {
	if len(s.cfg.DefaultRecipients) > 0 {
		return append([]string(nil), s.cfg.DefaultRecipients...)
	}
	return content.DefaultRecipients()
}

func (s *submissionService) Recipients(ctx context.Context) []string {
	raw, err := s.store.Get(ctx, storage.KeyRecipients)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Error("recipients read failed, using defaults", zap.String("event", "recipients_read_failed"), zap.Error(err))
		}
		return s.defaultRecipients()
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		s.log.Error("stored recipients unparsable, using defaults", zap.String("event", "recipients_parse_failed"), zap.Error(err))
		return s.defaultRecipients()
	}
	if len(list) == 0 {
		return s.defaultRecipients()
	}
	return list
}

func (s *submissionService) SetRecipients(ctx context.Context, recipients []string) error {
	verr := &model.ValidationError{}
	clean := make([]string, 0, len(recipients))
	for i, r := range recipients {
		r = strings.TrimSpace(r)
		if _, err := mail.ParseAddress(r); err != nil {
			verr.Add(fmt.Sprintf("recipients[%d]", i), "must be a valid email address")
			continue
		}
		clean = append(clean, r)
	}
	if len(recipients) == 0 {
		verr.Add("recipients", "at least one address is required")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	raw, err := json.Marshal(clean)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, storage.KeyRecipients, raw); err != nil {
		return fmt.Errorf("save recipients: %w", err)
	}
	s.log.Info("recipients updated", zap.String("event", "recipients_saved"), zap.Int("count", len(clean)))
	return nil
}

func (s *submissionService) Validate(rec model.SubmissionRecord) error {
	verr := &model.ValidationError{}

	required := []struct {
		name  string
		value string
	}{
		{"your-first-name", rec.FirstName},
		{"your-last-name", rec.LastName},
		{"your-email", rec.Email},
		{"tel-number", rec.Phone},
		{"your-street", rec.Street},
		{"your-city", rec.City},
		{"your-state", rec.State},
		{"your-zip", rec.Zip},
		{"employer", rec.Employer},
		{"occupation", rec.Occupation},
		{"digital-signature", rec.Signature},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			verr.Add(f.name, "is required")
		}
	}

	if rec.Email != "" {
		if _, err := mail.ParseAddress(rec.Email); err != nil {
			verr.Add("your-email", "must be a valid email address")
		}
	}
	if rec.Under18 && strings.TrimSpace(rec.Age) == "" {
		verr.Add("text-age", "is required when under 18")
	}
	if utf8.RuneCountInString(strings.TrimSpace(rec.MiddleInitial)) > 1 {
		verr.Add("text-initial", "must be a single character")
	}

	switch {
	case rec.Donation == 0:
		verr.Add("donation", "is required")
	case rec.Donation < model.MinDonation || rec.Donation > model.MaxDonation:
		verr.Add("donation", fmt.Sprintf("must be between %d and %d", model.MinDonation, model.MaxDonation))
	case rec.Donation%model.DonationStep != 0:
		verr.Add("donation", fmt.Sprintf("must be a multiple of %d", model.DonationStep))
	}

	answers := []struct {
		name     string
		value    string
		required bool
	}{
		{"checkbox-lobby", rec.Lobbyist, true},
		{"checkbox-spouse", rec.LobbyistSpouse, true},
		{"checkbox-contractor", rec.Contractor, true},
		{"checkbox-holder", rec.PrequalHolder, true},
		{"checkbox-elected", rec.ElectedOfficial, false},
		{"checkbox-contractor-official", rec.ContractorOfficial, false},
	}
	for _, a := range answers {
		switch a.value {
		case model.AnswerYes, model.AnswerNo:
		case "":
			if a.required {
				verr.Add(a.name, "is required")
			}
		default:
			verr.Add(a.name, "must be Yes or No")
		}
	}

	for _, b := range rec.ContractorBranches {
		if b != model.BranchLegislative && b != model.BranchExecutive {
			verr.Add("checkbox-branch", "must be Legislative or Executive")
		}
	}

	return verr.OrNil()
}

func (s *submissionService) Submit(ctx context.Context, rec model.SubmissionRecord) (*model.LastSubmission, error) {
	if err := s.Validate(rec); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "submission.Submit")
	defer span.End()

	now := s.now()
	tpl := s.content.Donation(ctx).EmailTemplates
	recipients := s.Recipients(ctx)

	admin := bwmail.Dispatch(ctx, s.sender, bwmail.Message{
		Kind:    bwmail.KindAdminNotification,
		From:    s.cfg.From,
		To:      recipients,
		Subject: tpl.AdminNotification.Subject,
		Body:    bwmail.FormatAdminNotification(rec, tpl.AdminNotification),
	})
	if !admin.Success {
		s.log.Error("admin notification failed", zap.String("event", "dispatch_failed"), zap.String("kind", string(bwmail.KindAdminNotification)), zap.String("error", admin.Error))
	}

	donor := bwmail.Dispatch(ctx, s.sender, bwmail.Message{
		Kind:    bwmail.KindDonorConfirmation,
		From:    s.cfg.From,
		To:      []string{rec.Email},
		Subject: tpl.DonorConfirmation.Subject,
		Body:    bwmail.FormatDonorConfirmation(rec, tpl.DonorConfirmation, now),
	})
	if !donor.Success {
		s.log.Error("donor confirmation failed", zap.String("event", "dispatch_failed"), zap.String("kind", string(bwmail.KindDonorConfirmation)), zap.String("error", donor.Error))
	}

	snap := &model.LastSubmission{
		ID:               uuid.NewString(),
		FormData:         rec,
		NotificationSent: admin.Success,
		ConfirmationSent: donor.Success,
		Timestamp:        now.UTC(),
	}

	if raw, err := json.Marshal(snap); err != nil {
		s.log.Error("snapshot encode failed", zap.String("event", "snapshot_save_failed"), zap.Error(err))
	} else if err := s.store.Set(ctx, storage.SubmissionSnapshotKey(snap.ID), raw); err != nil {
		s.log.Error("snapshot save failed", zap.String("event", "snapshot_save_failed"), zap.Error(err))
	}

	if s.repo != nil {
		_, err := s.repo.Create(ctx, &model.StoredSubmission{
			ID:               snap.ID,
			Record:           rec,
			NotificationSent: snap.NotificationSent,
			ConfirmationSent: snap.ConfirmationSent,
			CreatedAt:        snap.Timestamp,
		})
		if err != nil {
			s.log.Error("submission archive failed", zap.String("event", "archive_failed"), zap.String("submission_id", snap.ID), zap.Error(err))
		}
	}

	s.log.Info("contributor form submitted",
		zap.String("event", "submission_received"),
		zap.String("submission_id", snap.ID),
		zap.Int("donation", rec.Donation),
		zap.Bool("notification_sent", snap.NotificationSent),
		zap.Bool("confirmation_sent", snap.ConfirmationSent),
	)
	return snap, nil
}

func (s *submissionService) Snapshot(ctx context.Context, id string) (*model.LastSubmission, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}
	raw, err := s.store.Get(ctx, storage.SubmissionSnapshotKey(id))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Error("snapshot read failed", zap.String("event", "snapshot_read_failed"), zap.Error(err))
		}
		return nil, false
	}
	var snap model.LastSubmission
	if err := json.Unmarshal(raw, &snap); err != nil {
		s.log.Error("stored snapshot unparsable", zap.String("event", "snapshot_parse_failed"), zap.Error(err))
		return nil, false
	}
	return &snap, true
}

func (s *submissionService) List(ctx context.Context, limit, offset int) (*SubmissionListResult, error) {
	if s.repo == nil {
		return nil, ErrArchiveDisabled
	}
	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &SubmissionListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *submissionService) Get(ctx context.Context, id string) (*model.StoredSubmission, error) {
	if s.repo == nil {
		return nil, ErrArchiveDisabled
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	sub, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return sub, err
}
