package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-chart/api"
	"github.com/carson-networks/ledger-chart/internal/chart"
	"github.com/carson-networks/ledger-chart/internal/config"
	"github.com/carson-networks/ledger-chart/internal/ledger"
	"github.com/carson-networks/ledger-chart/internal/logging"
	"github.com/carson-networks/ledger-chart/internal/operator"
	"github.com/carson-networks/ledger-chart/internal/service"
)

const previewRows = 5

func main() {
	logger := logging.SetupLogging()
	logrus.Info("ledger-chart starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	if err := logging.SetLevel(logger, envConfig.LogLevel); err != nil {
		logrus.WithError(err).Fatal("logging.SetLevel")
		return
	}

	table, err := ledger.Load(envConfig.CSVPath)
	if err != nil {
		logger.WithError(err).WithField("csvPath", envConfig.CSVPath).Fatal("ledger.Load")
		return
	}
	logTableHead(logger, table)

	defaultTimeframe, err := chart.ParseTimeframe(envConfig.DefaultTimeframe)
	if err != nil {
		logger.WithError(err).Fatal("chart.ParseTimeframe")
		return
	}

	op := operator.NewOperatorDelegator(table, envConfig.Workers)
	op.Start()

	svc := service.NewService(table, op)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:           logger,
		Port:             envConfig.Port,
		Service:          svc,
		DefaultTimeframe: defaultTimeframe,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("HttpServer.Serve")
	}

	op.Stop()
	logger.Info("ledger-chart stopped")
}

func logTableHead(logger *logrus.Logger, table *ledger.Table) {
	logger.WithFields(logrus.Fields{
		"rows":  table.Len(),
		"total": table.Total().String(),
	}).Info("ledger.Load.complete")

	for _, row := range table.Slice(0, previewRows) {
		logger.WithFields(logrus.Fields{
			"line":         row.Line,
			"date":         row.Date.Format("2006-01-02"),
			"amount":       row.Amount.String(),
			"runningTotal": row.RunningTotal.String(),
		}).Debug("ledger.Load.row")
	}
}
