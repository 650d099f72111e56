package paymentmock

import (
	"context"

	domain "goldvault-backend/internal/domain/payment"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, e *domain.Entry) error
	GetByPaymentIDFn func(ctx context.Context, paymentID string) (*domain.Entry, error)
	ListByLoanIDFn   func(ctx context.Context, loanNumericID uint64) ([]domain.Entry, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, e *domain.Entry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Entry, error) {
	if m.GetByPaymentIDFn != nil {
		return m.GetByPaymentIDFn(ctx, paymentID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]domain.Entry, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanNumericID)
	}
	return nil, nil
}
