package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	chartmodel "github.com/carson-networks/ledger-chart/internal/chart"
	"github.com/carson-networks/ledger-chart/internal/handlers/page"
	"github.com/carson-networks/ledger-chart/internal/handlers/v1/chart"
	"github.com/carson-networks/ledger-chart/internal/handlers/v1/status"
	"github.com/carson-networks/ledger-chart/internal/handlers/v1/transaction"
	"github.com/carson-networks/ledger-chart/internal/logging"
	"github.com/carson-networks/ledger-chart/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Rest struct {
	Logger           *logrus.Logger
	Port             string
	Service          *service.Service
	DefaultTimeframe chartmodel.Timeframe
}

// Handler builds the router with every endpoint registered.
func (r *Rest) Handler() (http.Handler, error) {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(logging.Middleware(r.Logger))

	statusHandler := status.NewHandler(r.Service.Transaction)
	router.Get("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	indexHandler, err := page.NewIndexHandler(r.Service.Transaction, r.DefaultTimeframe)
	if err != nil {
		return nil, err
	}
	router.Get("/", logging.LoggingWrapper("Index", r.Logger, indexHandler.Handler))

	api := humachi.New(router, huma.DefaultConfig("Ledger Chart API", "1.0.0"))
	chart.NewGetChartHandler(r.Service.Chart, r.DefaultTimeframe).Register(api)
	chart.NewGetChartImageHandler(r.Service.Chart, r.DefaultTimeframe).Register(api)
	chart.NewListTimeframesHandler(r.DefaultTimeframe).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)

	return router, nil
}

// Serve listens until ctx is cancelled, then shuts the server down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	handler, err := r.Handler()
	if err != nil {
		return err
	}

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           handler,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
