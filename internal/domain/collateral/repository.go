package collateral

import "context"

type Repository interface {
	Create(ctx context.Context, it *Item) error
	GetByItemID(ctx context.Context, itemID string) (*Item, error)
	ListByLoanID(ctx context.Context, loanNumericID uint64) ([]Item, error)
	Save(ctx context.Context, it *Item) error
	// Delete soft-deletes; callers enforce the PENDING-loan guard.
	Delete(ctx context.Context, it *Item, deletedBy string) error
}
