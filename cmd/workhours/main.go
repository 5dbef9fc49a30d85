package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"workhours/internal/config"
	"workhours/internal/model"
	"workhours/internal/notify"
	"workhours/internal/repository"
	"workhours/internal/server"
	"workhours/internal/service"
)

type reportFlags struct {
	from    string
	to      string
	heading string
	status  string
}

func main() {
	root := &cobra.Command{
		Use:   "workhours",
		Short: "Personal work-hours tracker",
		Long:  "Tracks work hours against ordered headings, served over a PIN-authenticated REST API.",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server and the scheduled summary job",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	var flags reportFlags
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print a work summary for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(flags)
		},
	}
	f := reportCmd.Flags()
	f.StringVar(&flags.from, "from", "", "Earliest start date (YYYY-MM-DD)")
	f.StringVar(&flags.to, "to", "", "Latest end date (YYYY-MM-DD)")
	f.StringVar(&flags.heading, "heading", "", "Restrict to a heading id")
	f.StringVar(&flags.status, "status", "all", "Completion filter: all, complete or pending")

	root.AddCommand(serveCmd)
	root.AddCommand(reportCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	headingRepo := repository.NewHeadingRepository(db)
	workHourRepo := repository.NewWorkHourRepository(db)

	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, cfg.DefaultPIN)
	headingSvc := service.NewHeadingService(headingRepo, workHourRepo)
	workHourSvc := service.NewWorkHourService(workHourRepo, headingRepo, cfg.RatePerMinute)
	summarySvc := service.NewSummaryService(workHourRepo, headingRepo, cfg.RatePerMinute)

	var notifier *notify.TelegramNotifier
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		notifier, err = notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			return fmt.Errorf("notifier: %w", err)
		}
	}

	if cfg.SummaryInterval > 0 {
		scheduler := service.NewSchedulerService(time.Local)
		if _, err := scheduler.ScheduleInterval(cfg.SummaryInterval, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			publishSummary(jobCtx, userRepo, summarySvc, notifier)
		}); err != nil {
			return fmt.Errorf("schedule summary: %w", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.New(authSvc, headingSvc, workHourSvc).Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[info] listening on %s", cfg.ListenAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped with error: %w", err)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	log.Println("Shutdown complete.")
	return nil
}

// publishSummary logs the pending-work summary and, when a notifier is
// configured, sends it out. Failures are logged, never fatal.
func publishSummary(ctx context.Context, userRepo *repository.UserRepository, summarySvc *service.SummaryService, notifier *notify.TelegramNotifier) {
	user, err := userRepo.First(ctx)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			log.Printf("[warn] summary job: %v", err)
		}
		return
	}

	text, err := summarySvc.Compose(ctx, user.ID, model.EntryFilter{Status: model.StatusPending})
	if err != nil {
		log.Printf("[warn] summary job: %v", err)
		return
	}

	log.Printf("[info] %s", text)
	if notifier != nil {
		if err := notifier.Send(text); err != nil {
			log.Printf("[warn] summary notification: %v", err)
		}
	}
}

func runReport(flags reportFlags) error {
	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	headingRepo := repository.NewHeadingRepository(db)
	workHourRepo := repository.NewWorkHourRepository(db)
	summarySvc := service.NewSummaryService(workHourRepo, headingRepo, cfg.RatePerMinute)

	ctx := context.Background()
	user, err := userRepo.First(ctx)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			fmt.Println("No data recorded yet.")
			return nil
		}
		return err
	}

	filter := model.EntryFilter{
		From:      flags.from,
		To:        flags.to,
		HeadingID: flags.heading,
		Status:    model.EntryStatus(flags.status),
	}
	text, err := summarySvc.Compose(ctx, user.ID, filter)
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}
