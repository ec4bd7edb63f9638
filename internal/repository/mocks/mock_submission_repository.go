package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bwdtc/bridgewater-dems/internal/model"
	"github.com/bwdtc/bridgewater-dems/internal/repository"
)

type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Create(ctx context.Context, sub *model.StoredSubmission) (*model.StoredSubmission, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoredSubmission), args.Error(1)
}

func (m *MockSubmissionRepository) FindByID(ctx context.Context, id string) (*model.StoredSubmission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoredSubmission), args.Error(1)
}

func (m *MockSubmissionRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.StoredSubmission], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.StoredSubmission]), args.Error(1)
}
