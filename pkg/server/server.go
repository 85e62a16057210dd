package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	commissionshandler "github.com/pd-tools/partner-desk/pkg/handlers/commissions"
	dashboardhandler "github.com/pd-tools/partner-desk/pkg/handlers/dashboard"
	ordershandler "github.com/pd-tools/partner-desk/pkg/handlers/orders"
	usershandler "github.com/pd-tools/partner-desk/pkg/handlers/users"
	pdmiddleware "github.com/pd-tools/partner-desk/pkg/server/middleware"
	"github.com/pd-tools/partner-desk/pkg/services/commissions"
	"github.com/pd-tools/partner-desk/pkg/services/orders"
	"github.com/pd-tools/partner-desk/pkg/services/users"
)

type Dependencies struct {
	Users       users.Service
	Orders      orders.Service
	Commissions commissions.Service
	Dashboard   dashboardhandler.Reporter
	Logger      zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter wires the resource handlers into the /api/v1 namespace.
func ConfigureRouter(config Config) *chi.Mux {
	deps := config.Dependencies

	usersHandler := usershandler.NewHandler(deps.Users)
	ordersHandler := ordershandler.NewHandler(deps.Orders)
	commissionsHandler := commissionshandler.NewHandler(deps.Commissions)
	dashboardHandler := dashboardhandler.NewHandler(deps.Dashboard)

	router := chi.NewRouter()

	router.Use(pdmiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/users", usersHandler.ListUsers)
		r.Get("/users/{id}", usersHandler.GetUser)
		r.Patch("/users/{id}", usersHandler.UpdateUser)

		r.Get("/orders", ordersHandler.ListOrders)
		r.Get("/orders/{id}", ordersHandler.GetOrder)
		r.Patch("/orders/{id}", ordersHandler.UpdateOrder)

		r.Get("/commissions", commissionsHandler.ListCommissions)
		r.Get("/commissions/{id}", commissionsHandler.GetCommission)
		r.Patch("/commissions/{id}", commissionsHandler.UpdateCommission)

		r.Get("/dashboard", dashboardHandler.GetDashboard)
	})

	return router
}

type WebAPI struct {
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

func NewWebAPI(config Config) *WebAPI {
	logger := config.Dependencies.Logger
	timeout := config.ShutdownTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		logger:          &logger,
		shutdownTimeout: timeout,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: ConfigureRouter(config),
		},
	}
}

// Start serves until the listener fails or a termination signal arrives,
// then drains in-flight requests within the shutdown timeout.
func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
