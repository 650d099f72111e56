package uowmock

import (
	"context"
	"errors"

	"goldvault-backend/internal/domain/loan"
	"goldvault-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
//
// For the common case, set Repos and LoanFn: WithinTx runs the callback
// against Repos directly, and WithinLoanTx resolves the loan through
// LoanFn first — mirroring the row-lock fetch without a database. Set the
// *Fn overrides for full control.
type UoW struct {
	Repos  uow.Repos
	LoanFn func(loanID string) (*loan.Loan, error)

	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLoanTxFn func(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error
}

func New() *UoW { return &UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.Repos)
}

func (m *UoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error {
	if m.WithinLoanTxFn != nil {
		return m.WithinLoanTxFn(ctx, loanID, fn)
	}
	if m.LoanFn == nil {
		return errUnimplemented
	}
	l, err := m.LoanFn(loanID)
	if err != nil {
		return err
	}
	return fn(m.Repos, l)
}
