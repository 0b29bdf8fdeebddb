package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/config"
	batchrepo "github.com/MadScie254/Bordaless-SKU-Lab/internal/repository/batch"
	thttp "github.com/MadScie254/Bordaless-SKU-Lab/internal/transport/http/catalog/v1"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/transport/http/health"
	"github.com/MadScie254/Bordaless-SKU-Lab/platform/closer"
	"github.com/MadScie254/Bordaless-SKU-Lab/platform/logger"
)

type app struct {
	di     *di
	server *http.Server
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

// Handler exposes the fully wired router.
func (a *app) Handler() http.Handler { return a.server.Handler }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initTables,
		a.initCatalog,
		a.initServer,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

func (a *app) initTables(ctx context.Context) error {
	if config.C().Settings.Storage() != config.StoragePostgres {
		return nil
	}
	if err := a.di.Migrator(ctx).Up(); err != nil {
		logger.Error(ctx, "failed to apply migrations", logger.ErrorF(err))
		return err
	}
	return nil
}

// initCatalog seeds an empty repository when bootstrap is enabled and loads
// the catalog into memory.
func (a *app) initCatalog(ctx context.Context) error {
	repo := a.di.BatchRepository(ctx)

	if config.C().Catalog.Bootstrap() {
		existing, err := repo.List(ctx)
		if err != nil {
			logger.Error(ctx, "failed to list batches", logger.ErrorF(err))
			return err
		}
		if len(existing) == 0 {
			if err := batchrepo.BatchesBootstrap(ctx, repo); err != nil {
				logger.Error(ctx, "failed to bootstrap catalog", logger.ErrorF(err))
				return err
			}
			logger.Info(ctx, "🌱 catalog seeded with demo batches")
		}
	}

	// The session store subscribes to bounds changes before the first load.
	a.di.SessionStore(ctx)

	if err := a.di.CatalogService(ctx).Load(ctx); err != nil {
		logger.Error(ctx, "failed to load catalog", logger.ErrorF(err))
		return err
	}
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()
	m := a.di.Metrics(ctx)

	r := a.di.Router(ctx)
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		m.Middleware,
		cors.New(cors.Options{
			AllowedOrigins:   cfg.Server.AllowedOrigins(),
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Content-Type", thttp.ClientIDHeader},
			ExposedHeaders:   []string{thttp.ClientIDHeader},
			AllowCredentials: false,
		}).Handler,
	)

	r.Route("/api/v1", func(r chi.Router) {
		a.di.CatalogHandler(ctx).Routes(r)
	})
	r.Get("/health", health.Handler(a.di.CatalogService(ctx)))
	r.Handle("/metrics", m.Handler())

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}
	return nil
}

func (a *app) run(ctx context.Context) error {
	defer gracefulShutdown()

	eg, egCtx := errgroup.WithContext(ctx)

	if config.C().Kafka.Enabled() {
		eg.Go(func() error {
			logger.Info(egCtx,
				"🚀 batch listed consumer running",
				logger.Strings("kafka_brokers", config.C().Kafka.Brokers()),
			)
			return a.di.CatalogConsumer(egCtx).RunBatchListedConsume(egCtx)
		})
	}

	eg.Go(func() error {
		return a.di.SessionStore(egCtx).RunJanitor(
			egCtx,
			config.C().Session.JanitorInterval(),
			config.C().Session.TTL(),
		)
	})

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 catalog server listening",
			logger.String("address", config.C().Server.Address()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		logger.Info(ctx, "🛑 Server shutdown...")

		sdCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), config.C().Server.ShutdownTimeout())
		defer cancel()
		return a.server.Shutdown(sdCtx)
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Server stopped")
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}
