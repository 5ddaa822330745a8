// Package webrunner assembles the store, the services, the event bus and the
// HTTP server into a running process.
package webrunner

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/postwire/postwire/internal/seed"
	"github.com/postwire/postwire/internal/store"
	"github.com/postwire/postwire/mutation"
	"github.com/postwire/postwire/pubsub"
	"github.com/postwire/postwire/query"
	"github.com/postwire/postwire/runner"
	"github.com/postwire/postwire/web"
)

type webrunner struct {
	cfg    *runner.Config
	logger *zap.Logger
	srv    *web.Server
}

func New(cfg *runner.Config) (runner.Runner, error) {
	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return nil, err
	}

	st := store.New()

	if cfg.Seed {
		if err := seed.Load(st); err != nil {
			return nil, err
		}

		logger.Info("demo dataset loaded")
	}

	bus := pubsub.New(logger.Named("pubsub"), pubsub.WithBuffer(cfg.EventBuffer))
	mutations := mutation.NewService(st, bus, logger.Named("mutation"))
	queries := query.NewService(st)

	srv := web.New(web.Config{
		Addr:      cfg.Addr,
		Debug:     cfg.Debug,
		Mutations: mutations,
		Queries:   queries,
		Bus:       bus,
		Logger:    logger.Named("web"),
	})

	ans := webrunner{
		cfg:    cfg,
		logger: logger,
		srv:    srv,
	}

	return &ans, nil
}

func (w *webrunner) Run(ctx context.Context) error {
	w.logger.Info("starting server", zap.String("addr", w.cfg.Addr))

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return w.srv.Start(ctx)
	})

	return g.Wait()
}

func (w *webrunner) Close(context.Context) error {
	return w.logger.Sync()
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}
