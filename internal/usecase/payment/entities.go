package payment

import (
	"time"

	domain "goldvault-backend/internal/domain/payment"
)

type RecordInput struct {
	LoanID         string        `json:"loan_id"`
	Actor          string        `json:"-"`
	Amount         float64       `json:"amount"`
	PaymentType    domain.Type   `json:"payment_type"`
	PaymentMethod  domain.Method `json:"payment_method"`
	PaymentDate    time.Time     `json:"payment_date"`
	TransactionRef string        `json:"transaction_ref"`
}

// LedgerDTO is the read projection of one loan's ledger. Disbursements are
// outflow and excluded from TotalCollected.
type LedgerDTO struct {
	LoanID             string         `json:"loan_id"`
	TotalCollected     float64        `json:"total_collected"`
	TotalDisbursed     float64        `json:"total_disbursed"`
	OutstandingBalance float64        `json:"outstanding_balance"`
	Entries            []domain.Entry `json:"entries"`
}
