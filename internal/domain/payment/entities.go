package payment

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("payment entry not found")

type Type string

const (
	TypeLoanDisbursement Type = "LOAN_DISBURSEMENT"
	TypeEMIPayment       Type = "EMI_PAYMENT"
	TypePartialPayment   Type = "PARTIAL_PAYMENT"
	TypeInterestPayment  Type = "INTEREST_PAYMENT"
	TypePenaltyPayment   Type = "PENALTY_PAYMENT"
	TypeLoanClosure      Type = "LOAN_CLOSURE"
)

func (t Type) Valid() bool {
	switch t {
	case TypeLoanDisbursement, TypeEMIPayment, TypePartialPayment,
		TypeInterestPayment, TypePenaltyPayment, TypeLoanClosure:
		return true
	}
	return false
}

// ReducesPrincipal reports whether a completed entry of this type lowers
// the outstanding principal. Interest and penalty are tracked separately
// and never netted against principal; a disbursement is an outflow.
func (t Type) ReducesPrincipal() bool {
	switch t {
	case TypeEMIPayment, TypePartialPayment, TypeLoanClosure:
		return true
	}
	return false
}

type Method string

const (
	MethodCash         Method = "CASH"
	MethodUPI          Method = "UPI"
	MethodBankTransfer Method = "BANK_TRANSFER"
	MethodCheque       Method = "CHEQUE"
	MethodCard         Method = "CARD"
)

func (m Method) Valid() bool {
	switch m {
	case MethodCash, MethodUPI, MethodBankTransfer, MethodCheque, MethodCard:
		return true
	}
	return false
}

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

// Entry is one money movement against a loan. The ledger is append-only:
// no soft delete, no in-place edits — corrections are offsetting entries.
type Entry struct {
	ID             uint64    `gorm:"primaryKey;column:id" json:"-"`
	PaymentID      string    `gorm:"size:32;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	LoanID         uint64    `gorm:"index:idx_payments_loan" json:"-"`
	Amount         float64   `gorm:"type:decimal(18,2)" json:"amount"`
	PaymentType    Type      `gorm:"type:enum('LOAN_DISBURSEMENT','EMI_PAYMENT','PARTIAL_PAYMENT','INTEREST_PAYMENT','PENALTY_PAYMENT','LOAN_CLOSURE')" json:"payment_type"`
	PaymentMethod  Method    `gorm:"type:enum('CASH','UPI','BANK_TRANSFER','CHEQUE','CARD')" json:"payment_method"`
	Status         Status    `gorm:"type:enum('PENDING','COMPLETED','FAILED');default:'COMPLETED'" json:"status"`
	PaymentDate    time.Time `gorm:"type:datetime" json:"payment_date"`
	ReceiptNumber  string    `gorm:"size:32;uniqueIndex:ux_payments_receipt" json:"receipt_number"`
	TransactionRef string    `gorm:"size:64" json:"transaction_ref,omitempty"`
	RecordedBy     string    `gorm:"size:32" json:"recorded_by"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Entry) TableName() string { return "payment_entries" }

// CollectedTotal sums completed inflows. Disbursements are outflow, not
// repayment, and are excluded from every collected aggregate.
func CollectedTotal(entries []Entry) float64 {
	var sum float64
	for _, e := range entries {
		if e.Status != StatusCompleted || e.PaymentType == TypeLoanDisbursement {
			continue
		}
		sum += e.Amount
	}
	return sum
}

// DisbursedTotal sums completed disbursement outflows.
func DisbursedTotal(entries []Entry) float64 {
	var sum float64
	for _, e := range entries {
		if e.Status == StatusCompleted && e.PaymentType == TypeLoanDisbursement {
			sum += e.Amount
		}
	}
	return sum
}
