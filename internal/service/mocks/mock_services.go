package mocks

import (
	"context"
	"net/url"

	"github.com/stretchr/testify/mock"

	"github.com/bwdtc/bridgewater-dems/internal/model"
	"github.com/bwdtc/bridgewater-dems/internal/service"
)

type MockContentService struct {
	mock.Mock
}

var _ service.ContentService = (*MockContentService)(nil)

func (m *MockContentService) Site(ctx context.Context) model.SiteContent {
	return m.Called(ctx).Get(0).(model.SiteContent)
}

func (m *MockContentService) SaveSite(ctx context.Context, doc model.SiteContent) {
	m.Called(ctx, doc)
}

func (m *MockContentService) ResetSite(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockContentService) Donation(ctx context.Context) model.DonationContent {
	return m.Called(ctx).Get(0).(model.DonationContent)
}

func (m *MockContentService) SaveDonation(ctx context.Context, doc model.DonationContent) {
	m.Called(ctx, doc)
}

func (m *MockContentService) ResetDonation(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockContentService) Document(ctx context.Context) model.ContentDocument {
	return m.Called(ctx).Get(0).(model.ContentDocument)
}

func (m *MockContentService) Section(ctx context.Context, name string) (any, bool) {
	args := m.Called(ctx, name)
	return args.Get(0), args.Bool(1)
}

func (m *MockContentService) SaveDocument(ctx context.Context, raw []byte) error {
	args := m.Called(ctx, raw)
	return args.Error(0)
}

func (m *MockContentService) SaveDonationDocument(ctx context.Context, raw []byte) error {
	args := m.Called(ctx, raw)
	return args.Error(0)
}

func (m *MockContentService) SaveSection(ctx context.Context, name string, raw []byte) error {
	args := m.Called(ctx, name, raw)
	return args.Error(0)
}

type MockSubmissionService struct {
	mock.Mock
}

var _ service.SubmissionService = (*MockSubmissionService)(nil)

func (m *MockSubmissionService) Recipients(ctx context.Context) []string {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockSubmissionService) SetRecipients(ctx context.Context, recipients []string) error {
	args := m.Called(ctx, recipients)
	return args.Error(0)
}

func (m *MockSubmissionService) Validate(rec model.SubmissionRecord) error {
	args := m.Called(rec)
	return args.Error(0)
}

func (m *MockSubmissionService) Submit(ctx context.Context, rec model.SubmissionRecord) (*model.LastSubmission, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LastSubmission), args.Error(1)
}

func (m *MockSubmissionService) Snapshot(ctx context.Context, id string) (*model.LastSubmission, bool) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*model.LastSubmission), args.Bool(1)
}

func (m *MockSubmissionService) List(ctx context.Context, limit, offset int) (*service.SubmissionListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SubmissionListResult), args.Error(1)
}

func (m *MockSubmissionService) Get(ctx context.Context, id string) (*model.StoredSubmission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoredSubmission), args.Error(1)
}

type MockFormService struct {
	mock.Mock
}

var _ service.FormService = (*MockFormService)(nil)

func (m *MockFormService) Contact(ctx context.Context, values url.Values) (string, error) {
	args := m.Called(ctx, values)
	return args.String(0), args.Error(1)
}

func (m *MockFormService) Volunteer(ctx context.Context, values url.Values) (string, error) {
	args := m.Called(ctx, values)
	return args.String(0), args.Error(1)
}
