package loan

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusOverdue   Status = "OVERDUE"
	StatusDefaulted Status = "DEFAULTED"
)

// transitions is the closed one-directional state graph. REJECTED,
// COMPLETED and DEFAULTED are terminal.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusActive},
	StatusActive:   {StatusCompleted, StatusOverdue, StatusDefaulted},
	StatusOverdue:  {StatusCompleted, StatusDefaulted},
}

// CanTransition reports whether from → to is an edge of the graph.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Valid rejects unknown status strings at the storage boundary.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusActive,
		StatusCompleted, StatusOverdue, StatusDefaulted:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCompleted || s == StatusDefaulted
}

type Loan struct {
	ID                  uint64  `gorm:"primaryKey;column:id" json:"-"`
	LoanID              string  `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	LoanNumber          string  `gorm:"size:16;uniqueIndex:ux_loans_loan_number_active" json:"loan_number"`
	BorrowerID          string  `gorm:"size:32;index:idx_loans_borrower_active" json:"borrower_id"`
	PrincipalAmount     float64 `gorm:"type:decimal(18,2)" json:"principal_amount"`
	InterestRatePercent float64 `gorm:"type:decimal(6,2)" json:"interest_rate_percent"`
	TenureMonths        int     `gorm:"type:int" json:"tenure_months"`
	// Frozen at approval, zero before.
	EmiAmount float64 `gorm:"type:decimal(18,2)" json:"emi_amount"`
	Status    Status  `gorm:"type:enum('PENDING','APPROVED','REJECTED','ACTIVE','COMPLETED','OVERDUE','DEFAULTED');default:'PENDING'" json:"status"`
	// Cached copy of the ledger-derived balance; rewritten inside every
	// transaction that appends a ledger row, never read back as a guard input.
	OutstandingBalance float64    `gorm:"type:decimal(18,2)" json:"outstanding_balance"`
	DisbursedDate      *time.Time `gorm:"type:datetime" json:"disbursed_date,omitempty"`
	MaturityDate       *time.Time `gorm:"type:datetime" json:"maturity_date,omitempty"`

	Remarks     string `gorm:"type:text" json:"remarks,omitempty"`
	CreatedBy   string `gorm:"size:32" json:"created_by"`
	ApprovedBy  string `gorm:"size:32" json:"approved_by,omitempty"`
	RejectedBy  string `gorm:"size:32" json:"rejected_by,omitempty"`
	DefaultedBy string `gorm:"size:32" json:"defaulted_by,omitempty"`

	StatusUpdatedAt time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy       string         `gorm:"size:32" json:"-"`
}

func (Loan) TableName() string { return "loans" }
