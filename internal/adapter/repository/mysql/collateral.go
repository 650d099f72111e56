package mysql

import (
	"context"

	itemDomain "goldvault-backend/internal/domain/collateral"

	"gorm.io/gorm"
)

type CollateralRepository struct{ db *gorm.DB }

func NewCollateralRepository(db *gorm.DB) *CollateralRepository {
	return &CollateralRepository{db: db}
}

func (r *CollateralRepository) Create(ctx context.Context, it *itemDomain.Item) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *CollateralRepository) Save(ctx context.Context, it *itemDomain.Item) error {
	return r.db.WithContext(ctx).Save(it).Error
}

func (r *CollateralRepository) GetByItemID(ctx context.Context, itemID string) (*itemDomain.Item, error) {
	var out itemDomain.Item
	res := r.db.WithContext(ctx).Where("item_id = ?", itemID).First(&out)
	return &out, res.Error
}

func (r *CollateralRepository) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]itemDomain.Item, error) {
	var out []itemDomain.Item
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanNumericID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

// Delete soft-deletes and stamps who removed the item.
func (r *CollateralRepository) Delete(ctx context.Context, it *itemDomain.Item, deletedBy string) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Model(it).UpdateColumn("deleted_by", deletedBy).Error; err != nil {
		return err
	}
	return tx.Delete(it).Error
}
