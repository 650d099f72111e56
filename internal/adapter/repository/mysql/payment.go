package mysql

import (
	"context"

	paymentDomain "goldvault-backend/internal/domain/payment"

	"gorm.io/gorm"
)

// PaymentRepository is append-only on purpose: no Save, no Delete.
type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, e *paymentDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *PaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*paymentDomain.Entry, error) {
	var out paymentDomain.Entry
	res := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]paymentDomain.Entry, error) {
	var out []paymentDomain.Entry
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanNumericID).
		Order("payment_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}
