package collateralmock

import (
	"context"

	domain "goldvault-backend/internal/domain/collateral"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, it *domain.Item) error
	GetByItemIDFn  func(ctx context.Context, itemID string) (*domain.Item, error)
	ListByLoanIDFn func(ctx context.Context, loanNumericID uint64) ([]domain.Item, error)
	SaveFn         func(ctx context.Context, it *domain.Item) error
	DeleteFn       func(ctx context.Context, it *domain.Item, deletedBy string) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, it *domain.Item) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, it)
	}
	return nil
}

func (m *Repo) GetByItemID(ctx context.Context, itemID string) (*domain.Item, error) {
	if m.GetByItemIDFn != nil {
		return m.GetByItemIDFn(ctx, itemID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]domain.Item, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanNumericID)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, it *domain.Item) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, it)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, it *domain.Item, deletedBy string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, it, deletedBy)
	}
	return nil
}
