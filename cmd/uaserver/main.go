package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/dmitrymomot/viewkit/internal/server"
	"github.com/dmitrymomot/viewkit/pkg/browser"
	"github.com/dmitrymomot/viewkit/pkg/config"
	"github.com/dmitrymomot/viewkit/pkg/httpserver"
	"github.com/dmitrymomot/viewkit/pkg/logger"
	"github.com/dmitrymomot/viewkit/pkg/requestid"
	"github.com/dmitrymomot/viewkit/pkg/useragent"
)

func main() {
	var (
		appCfg     config.App
		parserCfg  useragent.Config
		browserCfg browser.Config
		serverCfg  httpserver.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&parserCfg)
	config.MustLoad(&browserCfg)
	config.MustLoad(&serverCfg)

	log := logger.New(
		logger.WithEnvironment(appCfg.Env, appCfg.Name),
		logger.WithLevelName(appCfg.LogLevel),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			browser.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), log, parserCfg, browserCfg, serverCfg); err != nil {
		log.Error("uaserver stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, parserCfg useragent.Config, browserCfg browser.Config, serverCfg httpserver.Config) error {
	parser, err := useragent.NewFromConfig(parserCfg, useragent.WithLogger(log.With(logger.Component("useragent"))))
	if err != nil {
		return err
	}
	log.Info("keyword table loaded",
		slog.Int("rules", parser.Table().Len()),
		slog.String("source", keywordsSource(parserCfg)),
	)

	metrics := server.NewMetrics()
	detector, err := browser.NewFromConfig(browserCfg,
		browser.WithParser(parser),
		browser.WithObserver(metrics.ObserveDetection),
	)
	if err != nil {
		return err
	}

	router := server.NewRouter(detector, metrics,
		server.WithRouterLogger(log.With(logger.Component("http"))),
		server.WithReadinessCheck(func(context.Context) error {
			if parser.Table().Len() == 0 {
				return errors.New("keyword table is empty")
			}
			return nil
		}),
	)

	srv := httpserver.New(serverCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}

func keywordsSource(cfg useragent.Config) string {
	if cfg.KeywordsFile != "" {
		return cfg.KeywordsFile
	}
	return "embedded"
}
