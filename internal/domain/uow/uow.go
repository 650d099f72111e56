package uow

import (
	"context"

	"goldvault-backend/internal/domain/collateral"
	"goldvault-backend/internal/domain/loan"
	"goldvault-backend/internal/domain/payment"
)

type Repos struct {
	Loans    loan.Repository
	Items    collateral.Repository
	Payments payment.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in; this is the
	// single-writer-per-loan boundary every command runs inside.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
