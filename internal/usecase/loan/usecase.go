package loan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"goldvault-backend/internal/domain/collateral"
	domain "goldvault-backend/internal/domain/loan"
	paymentDomain "goldvault-backend/internal/domain/payment"
	"goldvault-backend/internal/domain/schedule"
	"goldvault-backend/internal/domain/uow"
	"goldvault-backend/pkg/id"

	"gorm.io/gorm"
)

// Usecase is the loan state machine: it owns every status transition and
// authorizes the ledger/collateral side effects that ride along with them.
type Usecase struct {
	loans    domain.Repository
	payments paymentDomain.Repository
	uow      uow.UnitOfWork
	now      func() time.Time
}

func NewUsecase(loans domain.Repository, payments paymentDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, payments: payments, uow: tx, now: func() time.Time { return time.Now().UTC() }}
}

// casGuard applies the optional optimistic check before any write.
func casGuard(l *domain.Loan, expected domain.Status) error {
	if expected != "" && l.Status != expected {
		return domain.ErrConcurrentModification
	}
	return nil
}

// Create originates a loan in PENDING together with its pledged items, in
// one transaction. Item valuation is frozen here.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if len(in.BorrowerID) != 32 {
		return nil, fmt.Errorf("borrower_id must be a 32-char id: %w", domain.ErrValidation)
	}
	if in.PrincipalAmount <= 0 {
		return nil, fmt.Errorf("principal_amount must be positive: %w", domain.ErrValidation)
	}
	if in.InterestRatePercent < 0 {
		return nil, fmt.Errorf("interest_rate_percent must not be negative: %w", domain.ErrValidation)
	}
	if in.TenureMonths <= 0 {
		return nil, fmt.Errorf("tenure_months must be positive: %w", domain.ErrValidation)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("at least one collateral item is required: %w", domain.ErrValidation)
	}
	for i, it := range in.Items {
		if it.WeightGrams <= 0 {
			return nil, fmt.Errorf("items[%d].weight_grams must be positive: %w", i, domain.ErrValidation)
		}
		if it.RateAtPledge < 0 {
			return nil, fmt.Errorf("items[%d].rate_at_pledge must not be negative: %w", i, domain.ErrValidation)
		}
	}

	now := u.now()
	l := &domain.Loan{
		LoanID:              id.NewID32(),
		LoanNumber:          id.NewLoanNumber(),
		BorrowerID:          in.BorrowerID,
		PrincipalAmount:     in.PrincipalAmount,
		InterestRatePercent: in.InterestRatePercent,
		TenureMonths:        in.TenureMonths,
		Status:              domain.StatusPending,
		OutstandingBalance:  in.PrincipalAmount,
		CreatedBy:           in.CreatedBy,
		StatusUpdatedAt:     now,
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		for _, it := range in.Items {
			item := &collateral.Item{
				ItemID:       id.NewID32(),
				LoanID:       l.ID,
				ItemType:     it.ItemType,
				WeightGrams:  it.WeightGrams,
				Purity:       it.Purity,
				RateAtPledge: it.RateAtPledge,
				TotalValue:   collateral.ItemValue(it.WeightGrams, it.RateAtPledge),
				Description:  it.Description,
				Status:       collateral.StatusPledged,
			}
			if err := r.Items.Create(ctx, item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	dto := u.toDTO(l, nil)
	return &dto, nil
}

// Approve moves PENDING → APPROVED and freezes the EMI amount.
func (u *Usecase) Approve(ctx context.Context, in ApproveInput) (*LoanDTO, error) {
	var dto LoanDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domain.Loan) error {
		if err := casGuard(l, in.ExpectedStatus); err != nil {
			return err
		}
		if l.Status != domain.StatusPending {
			return domain.NewInvalidTransition(l.Status, "approve")
		}
		l.EmiAmount = schedule.EMI(l.PrincipalAmount, l.InterestRatePercent, l.TenureMonths)
		l.Status = domain.StatusApproved
		l.ApprovedBy = in.Actor
		if strings.TrimSpace(in.Remarks) != "" {
			l.Remarks = in.Remarks
		}
		l.StatusUpdatedAt = u.now()
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = u.toDTO(l, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// Reject moves PENDING → REJECTED; remarks are mandatory.
func (u *Usecase) Reject(ctx context.Context, in RejectInput) (*LoanDTO, error) {
	if strings.TrimSpace(in.Remarks) == "" {
		return nil, fmt.Errorf("remarks are required to reject: %w", domain.ErrValidation)
	}
	var dto LoanDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domain.Loan) error {
		if err := casGuard(l, in.ExpectedStatus); err != nil {
			return err
		}
		if l.Status != domain.StatusPending {
			return domain.NewInvalidTransition(l.Status, "reject")
		}
		l.Status = domain.StatusRejected
		l.RejectedBy = in.Actor
		l.Remarks = in.Remarks
		l.StatusUpdatedAt = u.now()
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = u.toDTO(l, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// Disburse moves APPROVED → ACTIVE. The LOAN_DISBURSEMENT ledger entry and
// the status change commit together or not at all.
func (u *Usecase) Disburse(ctx context.Context, in DisburseInput) (*LoanDTO, error) {
	var dto LoanDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domain.Loan) error {
		if err := casGuard(l, in.ExpectedStatus); err != nil {
			return err
		}
		if l.Status != domain.StatusApproved {
			return domain.NewInvalidTransition(l.Status, "disburse")
		}
		now := u.now()
		entry := &paymentDomain.Entry{
			PaymentID:     id.NewID32(),
			LoanID:        l.ID,
			Amount:        l.PrincipalAmount,
			PaymentType:   paymentDomain.TypeLoanDisbursement,
			PaymentMethod: paymentDomain.MethodBankTransfer,
			Status:        paymentDomain.StatusCompleted,
			PaymentDate:   now,
			ReceiptNumber: id.NewReceiptNumber(),
			RecordedBy:    in.Actor,
		}
		if err := r.Payments.Create(ctx, entry); err != nil {
			return err
		}
		maturity := now.AddDate(0, l.TenureMonths, 0)
		l.DisbursedDate = &now
		l.MaturityDate = &maturity
		l.Status = domain.StatusActive
		l.OutstandingBalance = l.PrincipalAmount
		l.StatusUpdatedAt = now
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = u.toDTO(l, []paymentDomain.Entry{*entry})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// RecomputeDerivedStatus re-derives ACTIVE/OVERDUE/COMPLETED from the
// ledger. It is idempotent and a no-op on every other status; it never
// resurrects a terminal loan.
func (u *Usecase) RecomputeDerivedStatus(ctx context.Context, loanID string) (domain.Status, error) {
	var status domain.Status
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		status = l.Status
		if l.Status != domain.StatusActive && l.Status != domain.StatusOverdue {
			return nil
		}
		entries, err := r.Payments.ListByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		out := schedule.OutstandingBalance(l.PrincipalAmount, entries)

		next := l.Status
		switch {
		case out <= 0:
			next = domain.StatusCompleted
		case l.MaturityDate != nil && u.now().After(*l.MaturityDate):
			if l.Status == domain.StatusActive {
				next = domain.StatusOverdue
			}
		}

		if next == l.Status && out == l.OutstandingBalance {
			return nil
		}
		if next != l.Status && !domain.CanTransition(l.Status, next) {
			return domain.NewInvalidTransition(l.Status, string(next))
		}
		l.OutstandingBalance = out
		if next != l.Status {
			l.Status = next
			l.StatusUpdatedAt = u.now()
		}
		status = l.Status
		return r.Loans.Save(ctx, l)
	})
	if err != nil {
		return "", err
	}
	return status, nil
}

// MarkDefaulted is the administrative ACTIVE/OVERDUE → DEFAULTED move.
func (u *Usecase) MarkDefaulted(ctx context.Context, in DefaultInput) (*LoanDTO, error) {
	if strings.TrimSpace(in.Remarks) == "" {
		return nil, fmt.Errorf("remarks are required to mark defaulted: %w", domain.ErrValidation)
	}
	var dto LoanDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domain.Loan) error {
		if err := casGuard(l, in.ExpectedStatus); err != nil {
			return err
		}
		if l.Status != domain.StatusActive && l.Status != domain.StatusOverdue {
			return domain.NewInvalidTransition(l.Status, "default")
		}
		l.Status = domain.StatusDefaulted
		l.DefaultedBy = in.Actor
		l.Remarks = in.Remarks
		l.StatusUpdatedAt = u.now()
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = u.toDTO(l, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// Get returns the loan with its balance, overdue flag and aging derived
// from the ledger on read.
func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errorsIsNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	entries, err := u.payments.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	dto := u.toDTO(l, entries)
	return &dto, nil
}

// ListByBorrower is a portfolio read; it relies on the cached balance.
func (u *Usecase) ListByBorrower(ctx context.Context, borrowerID string) ([]LoanDTO, error) {
	loans, err := u.loans.ListByBorrowerID(ctx, borrowerID)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(loans))
	now := u.now()
	for i := range loans {
		l := &loans[i]
		over, days := schedule.Overdue(l.MaturityDate, l.OutstandingBalance, now)
		dto := u.baseDTO(l)
		dto.OutstandingBalance = l.OutstandingBalance
		dto.IsOverdue = over
		dto.DaysOverdue = days
		if over {
			dto.AgeBucket = schedule.AgeBucket(days)
		}
		out = append(out, dto)
	}
	return out, nil
}

// Schedule projects the installment due table; only meaningful once the
// loan has a disbursement date.
func (u *Usecase) Schedule(ctx context.Context, loanID string) ([]schedule.Installment, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errorsIsNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if l.DisbursedDate == nil {
		return nil, fmt.Errorf("loan is not disbursed yet: %w", domain.ErrInvalidState)
	}
	return schedule.Installments(l.PrincipalAmount, l.InterestRatePercent, l.TenureMonths, *l.DisbursedDate), nil
}

func (u *Usecase) baseDTO(l *domain.Loan) LoanDTO {
	return LoanDTO{
		LoanID:              l.LoanID,
		LoanNumber:          l.LoanNumber,
		BorrowerID:          l.BorrowerID,
		PrincipalAmount:     l.PrincipalAmount,
		InterestRatePercent: l.InterestRatePercent,
		TenureMonths:        l.TenureMonths,
		EmiAmount:           l.EmiAmount,
		Status:              string(l.Status),
		DisbursedDate:       l.DisbursedDate,
		MaturityDate:        l.MaturityDate,
		Remarks:             l.Remarks,
		CreatedAt:           l.CreatedAt,
	}
}

func (u *Usecase) toDTO(l *domain.Loan, entries []paymentDomain.Entry) LoanDTO {
	dto := u.baseDTO(l)
	out := schedule.OutstandingBalance(l.PrincipalAmount, entries)
	over, days := schedule.Overdue(l.MaturityDate, out, u.now())
	dto.OutstandingBalance = out
	dto.IsOverdue = over
	dto.DaysOverdue = days
	if over {
		dto.AgeBucket = schedule.AgeBucket(days)
	}
	return dto
}

func errorsIsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, domain.ErrNotFound)
}
