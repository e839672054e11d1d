package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/catalog"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/config"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/infra/db"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/infra/redisguard"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/pkg/clock"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/repository/memory"
	repopg "github.com/NastyaGoryachaya/crypto-conversion-service/internal/repository/postgres"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/scheduler"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/conversion"
	historysvc "github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/history"
	ratesvc "github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/rates"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/snapshot"
	statssvc "github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/stats"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/service/submit"
	botpkg "github.com/NastyaGoryachaya/crypto-conversion-service/internal/transport/bot"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/transport/httptransport"
	"github.com/NastyaGoryachaya/crypto-conversion-service/internal/transport/web"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
)

// store - общий контракт memory.Store и postgres.Store
type store interface {
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
	ListRates(ctx context.Context) ([]domain.RateEntry, error)
	ReplaceCatalog(ctx context.Context, currencies []domain.Currency, rates []domain.RateEntry) error
	ListConversions(ctx context.Context) ([]domain.ConversionRecord, error)
	GetConversion(ctx context.Context, id string) (domain.ConversionRecord, error)
	AppendConversion(ctx context.Context, rec domain.ConversionRecord) error
	SeedConversions(ctx context.Context, items []domain.ConversionRecord) error
}

type App struct {
	cfg config.Config
	log *slog.Logger

	db    *pgxpool.Pool
	redis *redis.Client
	e     *echo.Echo
	serv  *http.Server

	store store

	rates     ratesvc.Service
	history   historysvc.Service
	stats     statssvc.Service
	snapshot  snapshot.Service
	sessions  *conversion.SessionStore
	submitter *submit.Submitter

	updater *scheduler.Scheduler

	bot *botpkg.Bot
}

// NewApp собирает зависимости. Снапшот загружается сразу, до старта сервера.
func NewApp(ctx context.Context, cfg config.Config, log *slog.Logger) (*App, error) {
	app := &App{cfg: cfg, log: log}
	clk := clock.NewRealClock()

	if err := app.initStorage(ctx); err != nil {
		app.closeInfra()
		return nil, err
	}

	guard, err := app.initGuard(ctx)
	if err != nil {
		app.closeInfra()
		return nil, err
	}

	var source snapshot.Source = catalog.NewStaticSource(catalog.Default())
	if cfg.Snapshot.Path != "" {
		source = catalog.NewFileSource(cfg.Snapshot.Path)
	}
	app.snapshot = snapshot.NewService(source, app.store, app.store, clk, log)
	if _, err := app.snapshot.Reload(ctx); err != nil {
		log.Error("initial snapshot load failed", slog.String("error", err.Error()))
		app.closeInfra()
		return nil, err
	}

	app.rates = ratesvc.NewService(app.store, app.store, log)
	app.history = historysvc.NewService(app.store, log)
	app.stats = statssvc.NewService(app.history, app.rates, log)
	app.sessions = conversion.NewSessionStore(
		conversion.State{From: cfg.Web.DefaultFrom, To: cfg.Web.DefaultTo},
		cfg.Web.SessionIdleTTL,
		clk,
	)

	executor := submit.NewSimulatedExecutor(app.rates, app.store, cfg.Submit.Delay, cfg.Submit.FeeRate, clk, log)
	app.submitter = submit.NewSubmitter(executor, guard, submit.Options{
		Timeout:   cfg.Submit.Timeout,
		Retention: cfg.Submit.Retention,
	}, clk, log)

	if err := app.initHTTP(); err != nil {
		app.closeInfra()
		return nil, err
	}

	if cfg.Scheduler.Enabled {
		app.updater = scheduler.NewScheduler(app.snapshot, cfg.Scheduler.Interval, log, app.sessions, app.submitter)
	}

	if cfg.Telegram.Enabled {
		replies := botpkg.NewReplies(app.rates, app.history, cfg.Telegram.HistoryLimit, log)
		botApp, err := botpkg.New(cfg.Telegram, replies, log)
		if err != nil {
			log.Error("telegram init failed", slog.String("error", err.Error()))
			app.closeInfra()
			return nil, err
		}
		app.bot = botApp
	}

	log.Info("app initialized",
		slog.String("storage", cfg.Storage.Driver),
		slog.String("inflight", cfg.Submit.InflightDriver),
		slog.Bool("telegram_enabled", cfg.Telegram.Enabled),
		slog.Bool("scheduler_enabled", cfg.Scheduler.Enabled),
		slog.String("http_addr", cfg.Server.Addr),
	)
	return app, nil
}

func (a *App) initStorage(ctx context.Context) error {
	if !strings.EqualFold(a.cfg.Storage.Driver, config.StoragePostgres) {
		a.store = memory.NewStore()
		return nil
	}

	pool, err := db.NewPool(ctx, &a.cfg.Postgres)
	if err != nil {
		a.log.Error("postgres connect failed", slog.String("error", err.Error()))
		return err
	}
	a.db = pool

	if a.cfg.Storage.EnsureSchema {
		if err := repopg.EnsureSchema(ctx, pool); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	a.store = repopg.NewStore(pool)
	return nil
}

func (a *App) initGuard(ctx context.Context) (submit.Guard, error) {
	if !strings.EqualFold(a.cfg.Submit.InflightDriver, config.InflightRedis) {
		return submit.NewMemoryGuard(), nil
	}

	client, err := db.NewRedis(ctx, &a.cfg.Redis)
	if err != nil {
		a.log.Error("redis connect failed", slog.String("error", err.Error()))
		return nil, err
	}
	a.redis = client
	return redisguard.New(client, a.cfg.Redis.KeyPrefix), nil
}

func (a *App) initHTTP() error {
	cfg := a.cfg

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			a.log.Debug("http request", attrs...)
			return nil
		},
	}))

	renderer, err := web.NewRenderer()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	e.Renderer = renderer

	page := web.NewHandler(a.log, a.rates, a.history, a.stats, a.submitter, a.snapshot, a.sessions, web.Options{
		CookieName:   cfg.Web.SessionCookie,
		HistoryLimit: cfg.Telegram.HistoryLimit,
		Timeout:      cfg.Server.RequestTimeout,
	})
	page.RegisterRoutes(e)

	api := e.Group("/api/v1")
	rh := httptransport.NewRatesHandler(a.log, a.rates, a.snapshot, cfg.Server.RequestTimeout)
	rh.RegisterRoutes(api)
	ch := httptransport.NewConversionsHandler(a.log, a.submitter, a.history, a.stats, cfg.Web.SessionCookie, cfg.Server.RequestTimeout)
	ch.RegisterRoutes(api)

	a.e = e
	a.serv = &http.Server{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      e,
	}
	return nil
}

func (a *App) Run(ctx context.Context) error {
	if a.updater != nil {
		a.log.Info("starting updater")
		go a.updater.Start(ctx)
	}

	if a.bot != nil {
		a.log.Info("starting bot")
		go a.bot.Start(ctx)
	}

	a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
	go func() {
		if err := a.e.StartServer(a.serv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", slog.String("error", err.Error()))
		}
	}()
	<-ctx.Done()
	return a.Shutdown(context.Background())
}

func (a *App) Shutdown(ctx context.Context) error {
	shCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()

	var errs []error
	if a.e != nil {
		if err := a.e.Shutdown(shCtx); err != nil {
			a.log.Error("http shutdown error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	// незавершённые конвертации отменяются
	if a.submitter != nil {
		if err := a.submitter.Shutdown(shCtx); err != nil {
			a.log.Error("submitter shutdown error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	if a.bot != nil {
		a.bot.Stop()
	}

	a.closeInfra()

	a.log.Info("application stopped")
	return errors.Join(errs...)
}

func (a *App) closeInfra() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("redis close error", slog.String("error", err.Error()))
		}
	}
	if a.db != nil {
		a.db.Close()
	}
}
