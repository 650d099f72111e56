package loan

import (
	"time"

	domain "goldvault-backend/internal/domain/loan"
)

type NewItemInput struct {
	ItemType     string  `json:"item_type"`
	WeightGrams  float64 `json:"weight_grams"`
	Purity       string  `json:"purity"`
	RateAtPledge float64 `json:"rate_at_pledge"`
	Description  string  `json:"description"`
}

type CreateLoanInput struct {
	BorrowerID          string         `json:"borrower_id"`
	PrincipalAmount     float64        `json:"principal_amount"`
	InterestRatePercent float64        `json:"interest_rate_percent"`
	TenureMonths        int            `json:"tenure_months"`
	CreatedBy           string         `json:"-"`
	Items               []NewItemInput `json:"items"`
}

// ApproveInput carries the acting officer for audit attribution.
// ExpectedStatus, when set, is a compare-and-swap guard: a stale value
// fails with ErrConcurrentModification before any write.
type ApproveInput struct {
	LoanID         string
	Actor          string
	Remarks        string
	ExpectedStatus domain.Status
}

type RejectInput struct {
	LoanID         string
	Actor          string
	Remarks        string
	ExpectedStatus domain.Status
}

type DisburseInput struct {
	LoanID         string
	Actor          string
	ExpectedStatus domain.Status
}

type DefaultInput struct {
	LoanID         string
	Actor          string
	Remarks        string
	ExpectedStatus domain.Status
}

type LoanDTO struct {
	LoanID              string     `json:"loan_id"`
	LoanNumber          string     `json:"loan_number"`
	BorrowerID          string     `json:"borrower_id"`
	PrincipalAmount     float64    `json:"principal_amount"`
	InterestRatePercent float64    `json:"interest_rate_percent"`
	TenureMonths        int        `json:"tenure_months"`
	EmiAmount           float64    `json:"emi_amount"`
	Status              string     `json:"status"`
	OutstandingBalance  float64    `json:"outstanding_balance"`
	IsOverdue           bool       `json:"is_overdue"`
	DaysOverdue         int        `json:"days_overdue"`
	AgeBucket           string     `json:"age_bucket,omitempty"`
	DisbursedDate       *time.Time `json:"disbursed_date,omitempty"`
	MaturityDate        *time.Time `json:"maturity_date,omitempty"`
	Remarks             string     `json:"remarks,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}
