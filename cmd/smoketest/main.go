package main

import (
	"context"
	"os"

	"github.com/Behyna/sms-services/smsactivate/internal/config"
	"github.com/Behyna/sms-services/smsactivate/internal/smoke"
	"github.com/Behyna/sms-services/smsactivate/pkg/httpclient"
	"github.com/Behyna/sms-services/smsactivate/pkg/metrics"
	"github.com/Behyna/sms-services/smsactivate/pkg/smsactivate"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			NewLogger,
			NewMetrics,
			NewHTTPClient,
			NewActivationClient,
			NewSmokeRunner,
		),
		fx.Invoke(runSmoke),
	).Run()
}

func runSmoke(runner smoke.Runner, logger *zap.Logger, shutdowner fx.Shutdowner, lc fx.Lifecycle) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				exitCode := 0
				report, err := runner.Run(appCtx)
				if err != nil {
					logger.Error("smoke test aborted", zap.Error(err))
					exitCode = 2
				} else if report.Failed() > 0 {
					exitCode = 1
				}

				if err := shutdowner.Shutdown(fx.ExitCode(exitCode)); err != nil {
					logger.Error("shutdown failed", zap.Error(err))
					os.Exit(exitCode)
				}
			}()

			logger.Info("smoke runner started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			return logger.Sync()
		},
	})
}

func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.Logger.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Logger.Level)
	if err != nil {
		return nil, err
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

func NewMetrics() *metrics.Metrics {
	return metrics.NewMetrics(prometheus.DefaultRegisterer)
}

func NewHTTPClient(cfg *config.Config) (httpclient.HTTPClient, error) {
	proxy, err := cfg.SMSActivate.Proxy()
	if err != nil {
		return nil, err
	}

	return httpclient.NewHTTPClient(cfg.SMSActivate.WithDefaults().Timeout, proxy), nil
}

func NewActivationClient(cfg *config.Config, client httpclient.HTTPClient, m *metrics.Metrics,
	logger *zap.Logger) (smsactivate.Activator, error) {
	activator, err := smsactivate.NewClient(cfg.SMSActivate, client,
		smsactivate.WithLogger(logger.Named("smsactivate")),
		smsactivate.WithMetrics(m))
	if err != nil {
		return nil, err
	}

	return activator, nil
}

func NewSmokeRunner(cfg *config.Config, client smsactivate.Activator, logger *zap.Logger) smoke.Runner {
	return smoke.NewRunner(client, cfg.Smoke, logger.Named("smoke"))
}
