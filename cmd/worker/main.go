package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Travel-Muslim/Frontend-sub000/config"
	"github.com/Travel-Muslim/Frontend-sub000/internal/domain"
	"github.com/Travel-Muslim/Frontend-sub000/internal/httpclient"
	"github.com/Travel-Muslim/Frontend-sub000/internal/service/dashboard"
	"github.com/Travel-Muslim/Frontend-sub000/internal/session"
)

// The worker keeps the dashboard snapshot warm by polling the backend on a
// fixed interval. The interval is this caller's policy, not the reader's.
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

	var sessions session.Store
	if cfg.Session.Backend == "redis" {
		sessions = session.NewRedisStore(cfg.Redis)
	} else {
		sessions = session.NewMemoryStore()
	}

	client := httpclient.New(cfg.Backend.BaseURL, cfg.Backend.Timeout(), sessions)
	reader := dashboard.NewReader(client)

	log.Printf("dashboard poller started, interval %s", cfg.Dashboard.PollInterval())
	reader.Poll(ctx, cfg.Dashboard.PollInterval(), func(stats domain.DashboardStats) {
		log.Printf("dashboard snapshot: %d bookings, %d users, revenue %s",
			stats.TotalBookings, stats.TotalUsers, stats.Revenue)
	})
	log.Println("dashboard poller stopped")
}
