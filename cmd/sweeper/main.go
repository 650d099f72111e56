package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"goldvault-backend/internal/adapter/repository/mysql"
	"goldvault-backend/internal/config"
	"goldvault-backend/internal/infrastructure/db"
	"goldvault-backend/internal/jobs"
	"goldvault-backend/internal/scheduler"
	loanUC "goldvault-backend/internal/usecase/loan"
)

func main() {
	runOnce := flag.Bool("run-once", false, "run the overdue sweep once and exit")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}

	loans := mysql.NewLoanRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	uow := mysql.NewGormUoW(gdb)
	runner := jobs.NewRunner(loans, loanUC.NewUsecase(loans, payments, uow))

	if *runOnce {
		runner.SweepOverdue()
		return
	}

	sched, err := scheduler.New(runner, cfg.OverdueSweepSpec)
	if err != nil {
		log.Fatalf("scheduler: %v", err)
	}
	sched.Start()
	log.Printf("overdue sweeper scheduled: %q", cfg.OverdueSweepSpec)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down sweeper")
	sched.Stop()
}
