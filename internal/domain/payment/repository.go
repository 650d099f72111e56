package payment

import "context"

type Repository interface {
	// Create appends an entry; entries are never updated or deleted.
	Create(ctx context.Context, e *Entry) error
	GetByPaymentID(ctx context.Context, paymentID string) (*Entry, error)
	ListByLoanID(ctx context.Context, loanNumericID uint64) ([]Entry, error)
}
