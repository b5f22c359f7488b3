package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/spec-kit/ticketapp/internal/auth"
	"github.com/spec-kit/ticketapp/internal/config"
	"github.com/spec-kit/ticketapp/internal/domain"
	"github.com/spec-kit/ticketapp/internal/events"
	"github.com/spec-kit/ticketapp/internal/observability"
	"github.com/spec-kit/ticketapp/internal/service"
	"github.com/spec-kit/ticketapp/internal/storage"
	"github.com/spec-kit/ticketapp/internal/store"
	"github.com/spec-kit/ticketapp/internal/worker"
	"github.com/spec-kit/ticketapp/pkg/util"
)

// main wires the data layer and plays the part of the presentation layer:
// it walks through the service operations and logs what they return.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	kv, err := storage.OpenSQLite(cfg.Storage.Path)
	if err != nil {
		logger.Fatal("failed to open storage", zap.Error(err))
	}
	defer kv.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	notificationService := service.NewNotificationService(dispatcher, logger)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		Directory:  auth.NewUserDirectory(),
		Sessions:   store.NewSessionStore(kv),
		Dispatcher: dispatcher,
		Metrics:    metrics,
	})
	ticketService := service.NewTicketService(*cfg, service.TicketDependencies{
		Tickets:    store.NewTicketStore(kv, nil),
		Dispatcher: dispatcher,
		Metrics:    metrics,
	})

	ctx := context.Background()

	session, err := authService.Login(ctx, "demo@ticketapp.com", "demo123")
	if err != nil {
		logger.Fatal("login failed", zap.Error(err))
	}
	logger.Info("logged in", zap.String("user", session.User.Email))

	tickets, err := ticketService.List(ctx)
	if err != nil {
		logger.Fatal("list failed", zap.Error(err))
	}
	logger.Info("tickets loaded", zap.Int("count", len(tickets)))

	created, err := ticketService.Create(ctx, domain.TicketForm{
		Title:       "Try the demo walkthrough",
		Description: "Created by cmd/ticketapp on startup",
		Status:      domain.TicketStatusOpen,
		Priority:    domain.TicketPriorityLow,
	})
	if err != nil {
		logger.Fatal("create failed", zap.Error(err))
	}

	status := domain.TicketStatusInProgress
	if _, err := ticketService.Update(ctx, created.ID, domain.TicketPatch{Status: &status}); err != nil {
		logger.Fatal("update failed", zap.Error(err))
	}

	stats, err := ticketService.Stats(ctx)
	if err != nil {
		logger.Fatal("stats failed", zap.Error(err))
	}
	logger.Info("dashboard",
		zap.Int("total", stats.TotalTickets),
		zap.Int("open", stats.OpenTickets),
		zap.Int("in_progress", stats.InProgressTickets),
		zap.Int("closed", stats.ClosedTickets))

	if err := ticketService.Delete(ctx, created.ID); err != nil {
		logger.Fatal("delete failed", zap.Error(err))
	}

	// expected failure: the demo email is already taken
	if _, err := authService.Signup(ctx, "Demo User", "demo@ticketapp.com", "demo123"); err != nil {
		logger.Info("signup rejected", zap.String("code", util.CodeOf(err)))
	}

	if err := authService.Logout(ctx); err != nil {
		logger.Fatal("logout failed", zap.Error(err))
	}
}
