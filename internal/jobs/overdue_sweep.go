package jobs

import (
	"context"
	"log"
	"time"

	loanDomain "goldvault-backend/internal/domain/loan"
	loanUC "goldvault-backend/internal/usecase/loan"
)

// Runner coordinates scheduled maintenance jobs. The only one today is the
// overdue sweep; payments already re-derive status lazily on write, the
// sweep catches loans that cross maturity with no payment activity.
type Runner struct {
	loans  loanDomain.Repository
	loanUC *loanUC.Usecase
}

func NewRunner(loans loanDomain.Repository, uc *loanUC.Usecase) *Runner {
	return &Runner{loans: loans, loanUC: uc}
}

// runWithRecovery wraps job execution with panic recovery.
func (r *Runner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("job %s panicked: %v", jobName, rec)
		}
	}()
	log.Printf("job %s: starting", jobName)
	jobFunc()
	log.Printf("job %s: done", jobName)
}

func (r *Runner) SweepOverdue() {
	r.runWithRecovery("overdue-sweep", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := r.sweepOverdue(ctx); err != nil {
			log.Printf("overdue-sweep: %v", err)
		}
	})
}

// sweepOverdue re-derives status for every ACTIVE and OVERDUE loan. Each
// loan is recomputed in its own transaction so one failure does not stall
// the rest of the portfolio.
func (r *Runner) sweepOverdue(ctx context.Context) error {
	loans, err := r.loans.ListByStatuses(ctx, loanDomain.StatusActive, loanDomain.StatusOverdue)
	if err != nil {
		return err
	}
	var changed int
	for i := range loans {
		before := loans[i].Status
		after, err := r.loanUC.RecomputeDerivedStatus(ctx, loans[i].LoanID)
		if err != nil {
			log.Printf("overdue-sweep: loan %s: %v", loans[i].LoanID, err)
			continue
		}
		if after != before {
			changed++
		}
	}
	log.Printf("overdue-sweep: %d loans scanned, %d status changes", len(loans), changed)
	return nil
}
