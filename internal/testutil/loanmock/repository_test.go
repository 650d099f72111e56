package loanmock

import (
	"context"
	"errors"
	"testing"

	domain "goldvault-backend/internal/domain/loan"
)

func TestRepo_Create(t *testing.T) {
	ctx := context.Background()
	l := &domain.Loan{LoanID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}

	// Uses provided func
	called := false
	wantErr := errors.New("boom")
	m := &Repo{
		CreateFn: func(gotCtx context.Context, got *domain.Loan) error {
			called = true
			if gotCtx != ctx {
				t.Fatalf("Create ctx mismatch")
			}
			if got != l {
				t.Fatalf("Create arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Create(ctx, l); !errors.Is(err, wantErr) {
		t.Fatalf("Create: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("CreateFn not called")
	}

	// Default (nil func) → no-op, nil error
	m = &Repo{}
	if err := m.Create(ctx, l); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
}

func TestRepo_GetByLoanID(t *testing.T) {
	ctx := context.Background()
	want := &domain.Loan{LoanID: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"}

	// Uses provided func
	called := false
	m := &Repo{
		GetByLoanIDFn: func(gotCtx context.Context, loanID string) (*domain.Loan, error) {
			called = true
			if gotCtx != ctx {
				t.Fatalf("GetByLoanID ctx mismatch")
			}
			if loanID != want.LoanID {
				t.Fatalf("GetByLoanID loanID mismatch: got %s", loanID)
			}
			return want, nil
		},
	}
	got, err := m.GetByLoanID(ctx, want.LoanID)
	if err != nil {
		t.Fatalf("GetByLoanID: unexpected err: %v", err)
	}
	if got != want {
		t.Fatalf("GetByLoanID: want %+v, got %+v", want, got)
	}
	if !called {
		t.Fatalf("GetByLoanIDFn not called")
	}

	// Default (nil func) → ErrNotFound
	m = &Repo{}
	got, err = m.GetByLoanID(ctx, want.LoanID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByLoanID default: want ErrNotFound, got %v", err)
	}
	if got != nil {
		t.Fatalf("GetByLoanID default: want nil loan, got %+v", got)
	}
}

func TestRepo_GetByLoanIDForUpdate_Default(t *testing.T) {
	m := &Repo{}
	got, err := m.GetByLoanIDForUpdate(context.Background(), "x")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("default: want ErrNotFound, got %v", err)
	}
	if got != nil {
		t.Fatalf("default: want nil loan, got %+v", got)
	}
}

func TestRepo_Save(t *testing.T) {
	ctx := context.Background()
	l := &domain.Loan{LoanID: "cccccccccccccccccccccccccccccccc"}

	called := false
	wantErr := errors.New("save-fail")
	m := &Repo{
		SaveFn: func(gotCtx context.Context, got *domain.Loan) error {
			called = true
			if got != l {
				t.Fatalf("Save arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Save(ctx, l); !errors.Is(err, wantErr) {
		t.Fatalf("Save: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("SaveFn not called")
	}

	// Default (nil func) → no-op, nil error
	m = &Repo{}
	if err := m.Save(ctx, l); err != nil {
		t.Fatalf("Save default: want nil, got %v", err)
	}
}

func TestRepo_Lists_DefaultEmpty(t *testing.T) {
	m := &Repo{}
	ctx := context.Background()

	if got, err := m.ListByBorrowerID(ctx, "b"); err != nil || got != nil {
		t.Fatalf("ListByBorrowerID default: got %v, %v", got, err)
	}
	if got, err := m.ListByStatuses(ctx, domain.StatusActive); err != nil || got != nil {
		t.Fatalf("ListByStatuses default: got %v, %v", got, err)
	}
}
