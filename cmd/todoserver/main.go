package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	"todo-service/internal/bot"
	"todo-service/internal/config"
	"todo-service/internal/httpapi"
	"todo-service/internal/repository"
	"todo-service/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer sqlDB.Close()
	log.Printf("[info] connected to SQLite database %s", cfg.DatabaseURL)

	var notifier service.Notifier = service.LogNotifier{}
	if cfg.NotificationsEnabled() {
		tg, err := bot.New(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("bot: %v", err)
		}
		notifier = tg
	}

	todoRepo := repository.NewTodoRepository(db)
	todoSvc := service.NewTodoService(todoRepo, notifier)
	digestSvc := service.NewDigestService(todoRepo, notifier)

	scheduler := service.NewSchedulerService(time.Local)
	_, err = scheduler.Schedule(cfg.DigestAt, cfg.ReportInterval, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := digestSvc.Deliver(jobCtx, time.Now()); err != nil {
			log.Printf("[error] digest: %v", err)
		}
	})
	switch {
	case errors.Is(err, service.ErrNoSchedule):
	case err != nil:
		log.Fatalf("schedule digest: %v", err)
	default:
		scheduler.Start()
		defer scheduler.Stop()
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewServer(todoSvc, sqlDB, cfg.StaticDir),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[info] todo API server listening on %s", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[error] server stopped: %v", err)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[error] shutdown: %v", err)
		}
	}
	log.Println("Shutdown complete.")
}
