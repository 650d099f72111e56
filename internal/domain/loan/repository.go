package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the row (SELECT ... FOR UPDATE) so that
	// commands on the same loan are serialized.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	ListByBorrowerID(ctx context.Context, borrowerID string) ([]Loan, error)
	// ListByStatuses feeds the overdue sweep.
	ListByStatuses(ctx context.Context, statuses ...Status) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
}
