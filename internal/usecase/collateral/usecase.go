package collateral

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "goldvault-backend/internal/domain/collateral"
	loanDomain "goldvault-backend/internal/domain/loan"
	"goldvault-backend/internal/domain/uow"
	"goldvault-backend/pkg/id"

	"gorm.io/gorm"
)

// Usecase guards the custody state of pledged items. Items are editable
// only while the owning loan is PENDING and releasable only once it is
// COMPLETED; every mutation runs inside the owning loan's transaction.
type Usecase struct {
	items domain.Repository
	loans loanDomain.Repository
	uow   uow.UnitOfWork
	now   func() time.Time
}

func NewUsecase(items domain.Repository, loans loanDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{items: items, loans: loans, uow: tx, now: func() time.Time { return time.Now().UTC() }}
}

func (u *Usecase) AddItem(ctx context.Context, in AddItemInput) (*domain.Item, error) {
	if in.WeightGrams <= 0 {
		return nil, fmt.Errorf("weight_grams must be positive: %w", loanDomain.ErrValidation)
	}
	if in.RateAtPledge < 0 {
		return nil, fmt.Errorf("rate_at_pledge must not be negative: %w", loanDomain.ErrValidation)
	}
	var item *domain.Item
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if l.Status != loanDomain.StatusPending {
			return fmt.Errorf("items can be added only while the loan is PENDING, loan is %s: %w", l.Status, loanDomain.ErrInvalidState)
		}
		item = &domain.Item{
			ItemID:       id.NewID32(),
			LoanID:       l.ID,
			ItemType:     in.ItemType,
			WeightGrams:  in.WeightGrams,
			Purity:       in.Purity,
			RateAtPledge: in.RateAtPledge,
			TotalValue:   domain.ItemValue(in.WeightGrams, in.RateAtPledge),
			Description:  in.Description,
			Status:       domain.StatusPledged,
		}
		return r.Items.Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (u *Usecase) UpdateItem(ctx context.Context, in UpdateItemInput) (*domain.Item, error) {
	if in.WeightGrams != nil && *in.WeightGrams <= 0 {
		return nil, fmt.Errorf("weight_grams must be positive: %w", loanDomain.ErrValidation)
	}
	if in.RateAtPledge != nil && *in.RateAtPledge < 0 {
		return nil, fmt.Errorf("rate_at_pledge must not be negative: %w", loanDomain.ErrValidation)
	}
	loanID, err := u.ownerLoanID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	var out *domain.Item
	err = u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
		item, err := u.lockedItem(ctx, r, in.ItemID)
		if err != nil {
			return err
		}
		if l.Status != loanDomain.StatusPending {
			return fmt.Errorf("items can be edited only while the loan is PENDING, loan is %s: %w", l.Status, loanDomain.ErrInvalidState)
		}
		if item.Status != domain.StatusPledged {
			return fmt.Errorf("item %s is %s and can no longer be edited: %w", item.ItemID, item.Status, loanDomain.ErrInvalidState)
		}
		if in.ItemType != nil {
			item.ItemType = *in.ItemType
		}
		if in.WeightGrams != nil {
			item.WeightGrams = *in.WeightGrams
		}
		if in.Purity != nil {
			item.Purity = *in.Purity
		}
		if in.RateAtPledge != nil {
			item.RateAtPledge = *in.RateAtPledge
		}
		if in.Description != nil {
			item.Description = *in.Description
		}
		item.TotalValue = domain.ItemValue(item.WeightGrams, item.RateAtPledge)
		if err := r.Items.Save(ctx, item); err != nil {
			return err
		}
		out = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReleaseItem hands one PLEDGED item back; legal only once the owning loan
// is COMPLETED.
func (u *Usecase) ReleaseItem(ctx context.Context, in ReleaseItemInput) (*domain.Item, error) {
	if strings.TrimSpace(in.ReleasedToName) == "" {
		return nil, fmt.Errorf("released_to_name is required: %w", loanDomain.ErrValidation)
	}
	loanID, err := u.ownerLoanID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	var out *domain.Item
	err = u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
		item, err := u.lockedItem(ctx, r, in.ItemID)
		if err != nil {
			return err
		}
		if err := u.releaseOne(ctx, r, l, item, in.Actor, in.ReleasedToName, in.ReleasedToPhone, in.Notes); err != nil {
			return err
		}
		out = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReleaseAll releases every PLEDGED item of a loan in one transaction:
// either every eligible item transitions or none do.
func (u *Usecase) ReleaseAll(ctx context.Context, in ReleaseAllInput) (int, error) {
	if strings.TrimSpace(in.ReleasedToName) == "" {
		return 0, fmt.Errorf("released_to_name is required: %w", loanDomain.ErrValidation)
	}
	released := 0
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loanDomain.Loan) error {
		released = 0
		items, err := r.Items.ListByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		for i := range items {
			if items[i].Status != domain.StatusPledged {
				continue
			}
			if err := u.releaseOne(ctx, r, l, &items[i], in.Actor, in.ReleasedToName, in.ReleasedToPhone, in.Notes); err != nil {
				return err
			}
			released++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return released, nil
}

func (u *Usecase) releaseOne(ctx context.Context, r uow.Repos, l *loanDomain.Loan, item *domain.Item, actor, toName, toPhone, notes string) error {
	if l.Status != loanDomain.StatusCompleted {
		return fmt.Errorf("collateral can be released only once the loan is COMPLETED, loan is %s: %w", l.Status, loanDomain.ErrInvalidState)
	}
	if item.Status != domain.StatusPledged {
		return fmt.Errorf("item %s is %s, not PLEDGED: %w", item.ItemID, item.Status, loanDomain.ErrInvalidState)
	}
	now := u.now()
	item.Status = domain.StatusReleased
	item.ReleasedToName = toName
	item.ReleasedToPhone = toPhone
	item.ReleaseNotes = notes
	item.ReleasedAt = &now
	item.ReleasedBy = actor
	return r.Items.Save(ctx, item)
}

func (u *Usecase) DeleteItem(ctx context.Context, itemID, actor string) error {
	loanID, err := u.ownerLoanID(ctx, itemID)
	if err != nil {
		return err
	}
	return u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
		item, err := u.lockedItem(ctx, r, itemID)
		if err != nil {
			return err
		}
		if l.Status != loanDomain.StatusPending {
			return fmt.Errorf("items can be deleted only while the loan is PENDING, loan is %s: %w", l.Status, loanDomain.ErrInvalidState)
		}
		if item.Status != domain.StatusPledged {
			return fmt.Errorf("item %s is %s and can no longer be deleted: %w", item.ItemID, item.Status, loanDomain.ErrInvalidState)
		}
		return r.Items.Delete(ctx, item, actor)
	})
}

// GetByLoan returns the items with their summary projection, recomputed on
// read — the summary is never persisted.
func (u *Usecase) GetByLoan(ctx context.Context, loanID string) (*LoanItemsDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	items, err := u.items.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	return &LoanItemsDTO{
		LoanID:  l.LoanID,
		Summary: domain.Summarize(items),
		Items:   items,
	}, nil
}

// ownerLoanID resolves an item's owning loan public id outside the tx; the
// item itself is re-read under the loan lock.
func (u *Usecase) ownerLoanID(ctx context.Context, itemID string) (string, error) {
	item, err := u.items.GetByItemID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	l, err := u.loans.GetByID(ctx, item.LoanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", loanDomain.ErrNotFound
		}
		return "", err
	}
	return l.LoanID, nil
}

func (u *Usecase) lockedItem(ctx context.Context, r uow.Repos, itemID string) (*domain.Item, error) {
	item, err := r.Items.GetByItemID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}
