package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Travel-Muslim/Frontend-sub000/api"
	"github.com/Travel-Muslim/Frontend-sub000/config"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Bookings  *api.BookingHandler
	Dashboard *api.DashboardHandler
	Catalog   *api.CatalogHandler
	Session   *api.SessionHandler
}

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, handlers Handlers) error {
	router := gin.Default()

	handlers.Bookings.Register(router.Group("/bookings"))
	handlers.Dashboard.Register(router.Group("/dashboard"))
	handlers.Catalog.Register(router.Group("/"))
	handlers.Session.Register(router.Group("/session"))

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
