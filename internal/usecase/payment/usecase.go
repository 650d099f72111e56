package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	loanDomain "goldvault-backend/internal/domain/loan"
	domain "goldvault-backend/internal/domain/payment"
	"goldvault-backend/internal/domain/schedule"
	"goldvault-backend/internal/domain/uow"
	"goldvault-backend/pkg/id"

	"gorm.io/gorm"
)

// Usecase is the append-only payment ledger boundary. Entries are immutable
// once written; corrections are offsetting entries, never edits.
type Usecase struct {
	loans    loanDomain.Repository
	payments domain.Repository
	uow      uow.UnitOfWork
	now      func() time.Time
}

func NewUsecase(loans loanDomain.Repository, payments domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, payments: payments, uow: tx, now: func() time.Time { return time.Now().UTC() }}
}

// Record appends a repayment entry and re-derives the loan's balance and
// status in the same transaction. LOAN_DISBURSEMENT is written by the
// disburse command only and is rejected at this client boundary.
func (u *Usecase) Record(ctx context.Context, in RecordInput) (*domain.Entry, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive: %w", loanDomain.ErrValidation)
	}
	if !in.PaymentType.Valid() {
		return nil, fmt.Errorf("unknown payment_type %q: %w", in.PaymentType, loanDomain.ErrValidation)
	}
	if in.PaymentType == domain.TypeLoanDisbursement {
		return nil, fmt.Errorf("LOAN_DISBURSEMENT entries are system generated: %w", loanDomain.ErrValidation)
	}
	if !in.PaymentMethod.Valid() {
		return nil, fmt.Errorf("unknown payment_method %q: %w", in.PaymentMethod, loanDomain.ErrValidation)
	}

	var out *domain.Entry
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if l.Status != loanDomain.StatusActive && l.Status != loanDomain.StatusOverdue {
			return fmt.Errorf("payments can be recorded only on ACTIVE or OVERDUE loans, loan is %s: %w", l.Status, loanDomain.ErrInvalidState)
		}
		now := u.now()
		when := in.PaymentDate
		if when.IsZero() {
			when = now
		}
		entry := &domain.Entry{
			PaymentID:      id.NewID32(),
			LoanID:         l.ID,
			Amount:         in.Amount,
			PaymentType:    in.PaymentType,
			PaymentMethod:  in.PaymentMethod,
			Status:         domain.StatusCompleted,
			PaymentDate:    when,
			ReceiptNumber:  id.NewReceiptNumber(),
			TransactionRef: in.TransactionRef,
			RecordedBy:     in.Actor,
		}
		if err := r.Payments.Create(ctx, entry); err != nil {
			return err
		}

		entries, err := r.Payments.ListByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		balance := schedule.OutstandingBalance(l.PrincipalAmount, entries)
		l.OutstandingBalance = balance
		next := l.Status
		switch {
		case balance <= 0:
			next = loanDomain.StatusCompleted
		case l.Status == loanDomain.StatusActive && l.MaturityDate != nil && now.After(*l.MaturityDate):
			next = loanDomain.StatusOverdue
		}
		if next != l.Status {
			if !loanDomain.CanTransition(l.Status, next) {
				return loanDomain.NewInvalidTransition(l.Status, string(next))
			}
			l.Status = next
			l.StatusUpdatedAt = now
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		out = entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListByLoan returns the ledger with its collected/disbursed totals and
// the ledger-derived balance, all computed on read.
func (u *Usecase) ListByLoan(ctx context.Context, loanID string) (*LedgerDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	entries, err := u.payments.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	return &LedgerDTO{
		LoanID:             l.LoanID,
		TotalCollected:     domain.CollectedTotal(entries),
		TotalDisbursed:     domain.DisbursedTotal(entries),
		OutstandingBalance: schedule.OutstandingBalance(l.PrincipalAmount, entries),
		Entries:            entries,
	}, nil
}
