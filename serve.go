package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"smartstock/config"
	"smartstock/database"
	"smartstock/handlers"
	"smartstock/metrics"
	"smartstock/middleware"
	"smartstock/models"
	"smartstock/prefs"
	"smartstock/refresh"
	"smartstock/routes"
	"smartstock/seed"
	"smartstock/store"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	if err := cfg.ValidateServe(); err != nil {
		return err
	}
	dataset, err := seed.Load(cfg.App.SeedFile)
	if err != nil {
		return err
	}

	repo, closeRepo, err := openPrefs(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	refresher, closeRefresher, err := openRefresher(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRefresher()

	m := metrics.New()
	systemTheme := models.Theme(cfg.App.SystemTheme)
	s := store.New(dataset,
		store.WithRefresher(refresher),
		store.WithRefreshTimeout(cfg.Refresh.Timeout),
		store.WithSystemTheme(func() models.Theme { return systemTheme }),
		store.WithLogger(log.Named("store")),
		store.WithObserver(m),
	)

	syncer := prefs.NewSyncer(repo, cfg.Prefs.Key, log.Named("prefs"))
	if err := syncer.Restore(ctx, s); err != nil {
		log.Warn("could not restore preferences", zap.Error(err))
	}
	syncDone := make(chan struct{})
	go func() {
		defer close(syncDone)
		syncer.Run(ctx, s)
	}()

	app := fiber.New(fiber.Config{DisableStartupMessage: cfg.IsProduction()})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.RequestLogger(log.Named("http"), m))

	h := handlers.New(handlers.Config{
		Store:      s,
		JWTSecret:  []byte(cfg.JWT.Secret),
		JWTTTL:     cfg.JWT.TTL,
		Logger:     log.Named("handlers"),
		Background: ctx,
	})
	routes.SetupRoutes(app, h, []byte(cfg.JWT.Secret), m)

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(":" + cfg.Server.Port)
	}()
	log.Info("server started", zap.String("port", cfg.Server.Port), zap.String("prefs", cfg.Prefs.Backend), zap.String("refresh", cfg.Refresh.Source))

	select {
	case err = <-listenErr:
	case <-ctx.Done():
		log.Info("shutting down")
		err = app.ShutdownWithTimeout(shutdownTimeout)
	}
	<-syncDone
	return err
}

func openPrefs(ctx context.Context, cfg *config.Config) (prefs.Repository, func(), error) {
	switch cfg.Prefs.Backend {
	case config.BackendSQLite:
		db, err := database.OpenSQLite(cfg.Prefs.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		repo, err := prefs.NewSQLite(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return repo, closer(db), nil
	case config.BackendPostgres:
		pool, err := database.Connect(ctx, cfg.Prefs.DatabaseURL, log)
		if err != nil {
			return nil, nil, err
		}
		repo, err := prefs.NewPostgres(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, pool.Close, nil
	case config.BackendRedis:
		client, err := database.NewRedisClient(ctx, database.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return prefs.NewRedis(client), closer(client), nil
	case config.BackendMemory:
		return prefs.NewMemory(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown preferences backend %q", cfg.Prefs.Backend)
}

func openRefresher(ctx context.Context, cfg *config.Config) (store.Refresher, func(), error) {
	switch cfg.Refresh.Source {
	case config.SourceGemini:
		g, err := refresh.NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			return nil, nil, err
		}
		return g, closer(g), nil
	case config.SourceSimulated:
		return refresh.NewSimulated(cfg.Refresh.Delay), func() {}, nil
	}
	return nil, nil, errors.New("unknown refresh source " + cfg.Refresh.Source)
}

func closer(c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			log.Warn("close failed", zap.Error(err))
		}
	}
}
