package jobs

import (
	"context"
	"strings"
	"testing"
	"time"

	loanDomain "goldvault-backend/internal/domain/loan"
	paymentDomain "goldvault-backend/internal/domain/payment"
	"goldvault-backend/internal/domain/uow"
	"goldvault-backend/internal/testutil/collateralmock"
	"goldvault-backend/internal/testutil/loanmock"
	"goldvault-backend/internal/testutil/paymentmock"
	"goldvault-backend/internal/testutil/uowmock"
	loanUC "goldvault-backend/internal/usecase/loan"
)

func sweptLoan(status loanDomain.Status, maturity time.Time) *loanDomain.Loan {
	disb := maturity.AddDate(0, -12, 0)
	return &loanDomain.Loan{
		ID:                 1,
		LoanID:             strings.Repeat("a", 32),
		PrincipalAmount:    100_000,
		TenureMonths:       12,
		Status:             status,
		OutstandingBalance: 100_000,
		DisbursedDate:      &disb,
		MaturityDate:       &maturity,
	}
}

func TestSweepOverdue_FlagsMaturedActiveLoans(t *testing.T) {
	l := sweptLoan(loanDomain.StatusActive, time.Now().UTC().AddDate(0, 0, -10))

	loans := &loanmock.Repo{
		ListByStatusesFn: func(ctx context.Context, statuses ...loanDomain.Status) ([]loanDomain.Loan, error) {
			return []loanDomain.Loan{*l}, nil
		},
	}
	payments := &paymentmock.Repo{
		ListByLoanIDFn: func(ctx context.Context, id uint64) ([]paymentDomain.Entry, error) {
			return []paymentDomain.Entry{
				{Amount: 100_000, PaymentType: paymentDomain.TypeLoanDisbursement, Status: paymentDomain.StatusCompleted},
			}, nil
		},
	}
	m := uowmock.New()
	m.Repos = uow.Repos{Loans: loans, Items: &collateralmock.Repo{}, Payments: payments}
	m.LoanFn = func(string) (*loanDomain.Loan, error) { return l, nil }

	r := NewRunner(loans, loanUC.NewUsecase(loans, payments, m))
	r.SweepOverdue()

	if l.Status != loanDomain.StatusOverdue {
		t.Fatalf("status = %s, want OVERDUE", l.Status)
	}
}

func TestSweepOverdue_SettledLoanCompletes(t *testing.T) {
	l := sweptLoan(loanDomain.StatusOverdue, time.Now().UTC().AddDate(0, 0, -10))

	loans := &loanmock.Repo{
		ListByStatusesFn: func(ctx context.Context, statuses ...loanDomain.Status) ([]loanDomain.Loan, error) {
			return []loanDomain.Loan{*l}, nil
		},
	}
	payments := &paymentmock.Repo{
		ListByLoanIDFn: func(ctx context.Context, id uint64) ([]paymentDomain.Entry, error) {
			return []paymentDomain.Entry{
				{Amount: 100_000, PaymentType: paymentDomain.TypeLoanDisbursement, Status: paymentDomain.StatusCompleted},
				{Amount: 100_000, PaymentType: paymentDomain.TypeLoanClosure, Status: paymentDomain.StatusCompleted},
			}, nil
		},
	}
	m := uowmock.New()
	m.Repos = uow.Repos{Loans: loans, Items: &collateralmock.Repo{}, Payments: payments}
	m.LoanFn = func(string) (*loanDomain.Loan, error) { return l, nil }

	r := NewRunner(loans, loanUC.NewUsecase(loans, payments, m))
	r.SweepOverdue()

	if l.Status != loanDomain.StatusCompleted {
		t.Fatalf("status = %s, want COMPLETED", l.Status)
	}
	if l.OutstandingBalance != 0 {
		t.Fatalf("balance = %v, want 0", l.OutstandingBalance)
	}
}

func TestRunWithRecovery_SwallowsPanic(t *testing.T) {
	r := NewRunner(&loanmock.Repo{}, nil)
	// must not propagate
	r.runWithRecovery("test-job", func() { panic("boom") })
}
