package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Travel-Muslim/Frontend-sub000/api"
	"github.com/Travel-Muslim/Frontend-sub000/config"
	"github.com/Travel-Muslim/Frontend-sub000/internal/bootstrap"
	"github.com/Travel-Muslim/Frontend-sub000/internal/httpclient"
	"github.com/Travel-Muslim/Frontend-sub000/internal/service/booking"
	"github.com/Travel-Muslim/Frontend-sub000/internal/service/catalog"
	"github.com/Travel-Muslim/Frontend-sub000/internal/service/dashboard"
	"github.com/Travel-Muslim/Frontend-sub000/internal/service/ticket"
	"github.com/Travel-Muslim/Frontend-sub000/internal/session"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessions := newSessionStore(cfg)
	client := httpclient.New(cfg.Backend.BaseURL, cfg.Backend.Timeout(), sessions)

	bookingService := booking.NewBookingService(client)
	ticketService := ticket.NewTicketService(client)
	dashboardReader := dashboard.NewReader(client)
	catalogService := catalog.NewCatalogService(client, sessions)

	handlers := bootstrap.Handlers{
		Bookings:  api.NewBookingHandler(bookingService, ticketService),
		Dashboard: api.NewDashboardHandler(dashboardReader),
		Catalog:   api.NewCatalogHandler(catalogService),
		Session:   api.NewSessionHandler(sessions),
	}

	if err := bootstrap.Run(ctx, cfg, handlers); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func newSessionStore(cfg *config.Config) session.Store {
	if cfg.Session.Backend == "redis" {
		return session.NewRedisStore(cfg.Redis)
	}
	return session.NewMemoryStore()
}
