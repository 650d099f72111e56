package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "goldvault-backend/internal/domain/loan"
	"goldvault-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM) ---

type loanSQLite struct {
	ID                  uint64         `gorm:"primaryKey;column:id"`
	LoanID              string         `gorm:"size:32;column:loan_id"`
	LoanNumber          string         `gorm:"size:16;column:loan_number"`
	BorrowerID          string         `gorm:"size:32;column:borrower_id"`
	PrincipalAmount     float64        `gorm:"column:principal_amount"`
	InterestRatePercent float64        `gorm:"column:interest_rate_percent"`
	TenureMonths        int            `gorm:"column:tenure_months"`
	EmiAmount           float64        `gorm:"column:emi_amount"`
	Status              string         `gorm:"type:text;column:status"` // ← no enum
	OutstandingBalance  float64        `gorm:"column:outstanding_balance"`
	DisbursedDate       *time.Time     `gorm:"column:disbursed_date"`
	MaturityDate        *time.Time     `gorm:"column:maturity_date"`
	Remarks             string         `gorm:"column:remarks"`
	CreatedBy           string         `gorm:"column:created_by"`
	ApprovedBy          string         `gorm:"column:approved_by"`
	RejectedBy          string         `gorm:"column:rejected_by"`
	DefaultedBy         string         `gorm:"column:defaulted_by"`
	StatusUpdatedAt     time.Time      `gorm:"column:status_updated_at"`
	CreatedAt           time.Time      `gorm:"column:created_at"`
	UpdatedAt           time.Time      `gorm:"column:updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"column:deleted_at"`
	DeletedBy           string         `gorm:"column:deleted_by"`
}

func (loanSQLite) TableName() string { return "loans" }

type itemSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id"`
	ItemID          string         `gorm:"size:32;column:item_id"`
	LoanID          uint64         `gorm:"column:loan_id"`
	ItemType        string         `gorm:"column:item_type"`
	WeightGrams     float64        `gorm:"column:weight_grams"`
	Purity          string         `gorm:"column:purity"`
	RateAtPledge    float64        `gorm:"column:rate_at_pledge"`
	TotalValue      float64        `gorm:"column:total_value"`
	Description     string         `gorm:"column:description"`
	Status          string         `gorm:"type:text;column:status"` // ← no enum
	ReleasedToName  string         `gorm:"column:released_to_name"`
	ReleasedToPhone string         `gorm:"column:released_to_phone"`
	ReleaseNotes    string         `gorm:"column:release_notes"`
	ReleasedAt      *time.Time     `gorm:"column:released_at"`
	ReleasedBy      string         `gorm:"column:released_by"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
	DeletedBy       string         `gorm:"column:deleted_by"`
}

func (itemSQLite) TableName() string { return "collateral_items" }

type paymentSQLite struct {
	ID             uint64    `gorm:"primaryKey;column:id"`
	PaymentID      string    `gorm:"size:32;column:payment_id"`
	LoanID         uint64    `gorm:"column:loan_id"`
	Amount         float64   `gorm:"column:amount"`
	PaymentType    string    `gorm:"type:text;column:payment_type"`   // ← no enum
	PaymentMethod  string    `gorm:"type:text;column:payment_method"` // ← no enum
	Status         string    `gorm:"type:text;column:status"`         // ← no enum
	PaymentDate    time.Time `gorm:"column:payment_date"`
	ReceiptNumber  string    `gorm:"size:32;column:receipt_number"`
	TransactionRef string    `gorm:"column:transaction_ref"`
	RecordedBy     string    `gorm:"column:recorded_by"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (paymentSQLite) TableName() string { return "payment_entries" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&loanSQLite{}, &itemSQLite{}, &paymentSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeLoan(loanID, borrowerID string) *domain.Loan {
	return &domain.Loan{
		LoanID:              loanID,
		LoanNumber:          id.NewLoanNumber(),
		BorrowerID:          borrowerID,
		PrincipalAmount:     100_000.00,
		InterestRatePercent: 12,
		TenureMonths:        12,
		Status:              domain.StatusPending,
		OutstandingBalance:  100_000.00,
		StatusUpdatedAt:     time.Now().UTC(),
	}
}

func TestLoanCreateAndGetByLoanID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	loanID := id.NewID32()
	borrower := id.NewID32()

	l := makeLoan(loanID, borrower)
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.LoanID != loanID || got.BorrowerID != borrower || got.Status != domain.StatusPending {
		t.Errorf("unexpected loan: %+v", got)
	}

	byID, err := repo.GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.LoanID != loanID {
		t.Errorf("GetByID mismatch: %+v", byID)
	}
}

func TestLoanSaveUpdates(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	loanID := id.NewID32()
	l := makeLoan(loanID, "dddddddddddddddddddddddddddddddd")

	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	l.Status = domain.StatusApproved
	l.EmiAmount = 9333.33
	l.ApprovedBy = "0123456789abcdef0123456789abcdef"
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.Status != domain.StatusApproved || got.EmiAmount != 9333.33 {
		t.Errorf("update not persisted: %+v", got)
	}
}

func TestLoanGetByLoanID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)

	_, err := repo.GetByLoanID(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestLoanListByBorrowerID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	b1 := "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	now := time.Now().UTC()

	for i, st := range []string{"COMPLETED", "ACTIVE"} {
		if err := db.Create(&loanSQLite{
			LoanID:     id.NewID32(),
			LoanNumber: id.NewLoanNumber(),
			BorrowerID: b1, PrincipalAmount: 50_000,
			Status:    st,
			CreatedAt: now.Add(time.Duration(-i) * time.Hour),
		}).Error; err != nil {
			t.Fatal(err)
		}
	}
	// Another borrower's loan must not leak into the list.
	if err := db.Create(&loanSQLite{
		LoanID:     id.NewID32(),
		LoanNumber: id.NewLoanNumber(),
		BorrowerID: "cccccccccccccccccccccccccccccccc",
		Status:     "PENDING",
		CreatedAt:  now,
	}).Error; err != nil {
		t.Fatal(err)
	}

	got, err := repo.ListByBorrowerID(ctx, b1)
	if err != nil {
		t.Fatalf("ListByBorrowerID: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d loans, want 2", len(got))
	}
	for _, l := range got {
		if l.BorrowerID != b1 {
			t.Fatalf("wrong borrower in result: %+v", l)
		}
	}
}

func TestLoanListByStatuses(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	for _, st := range []string{"PENDING", "ACTIVE", "OVERDUE", "COMPLETED"} {
		if err := db.Create(&loanSQLite{
			LoanID:     id.NewID32(),
			LoanNumber: id.NewLoanNumber(),
			BorrowerID: id.NewID32(),
			Status:     st,
		}).Error; err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.ListByStatuses(ctx, domain.StatusActive, domain.StatusOverdue)
	if err != nil {
		t.Fatalf("ListByStatuses: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d loans, want 2", len(got))
	}
	for _, l := range got {
		if l.Status != domain.StatusActive && l.Status != domain.StatusOverdue {
			t.Fatalf("unexpected status in result: %s", l.Status)
		}
	}
}
