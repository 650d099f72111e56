package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"goldvault-backend/internal/jobs"
)

// Scheduler runs the maintenance jobs on cron specs (UTC, with seconds).
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.Runner
}

func New(r *jobs.Runner, overdueSpec string) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)
	s := &Scheduler{cron: c, jobs: r}
	if _, err := c.AddFunc(overdueSpec, r.SweepOverdue); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() { s.cron.Start() }

// Stop waits for a running job to finish before returning.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
