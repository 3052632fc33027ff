package apiapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/config"
	sweepjob "github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/jobs/sweep"
	pgrepo "github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/repo/postgres"
	redrepo "github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/repo/redis"
	authsvc "github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/services/auth"
	matchessvc "github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/services/matches"
	ratesvc "github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/services/rate"
	swipesvc "github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/services/swipes"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	server     *http.Server
	postgres   *pgxpool.Pool
	redis      *goredis.Client
	sweep      *sweepjob.Job
	httpRouter http.Handler
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	r := chi.NewRouter()
	ApplyMiddlewares(r, log)

	var pool *pgxpool.Pool
	if p, err := pgrepo.NewPool(ctx, cfg.Postgres.DSN); err != nil {
		log.Warn("postgres init failed, continuing in degraded mode", zap.Error(err))
	} else {
		pool = p
	}

	var redisClient *goredis.Client
	var counterStore ratesvc.CounterStore
	var purger sweepjob.Purger
	switch cfg.Limits.Store {
	case "redis":
		redisClient = redrepo.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		rateRepo := redrepo.NewRateRepo(redisClient)
		counterStore = rateRepo
		purger = rateRepo
	default:
		memStore := ratesvc.NewMemoryStore()
		counterStore = memStore
		purger = memStore
	}

	swipeRepo := pgrepo.NewSwipeRepo(pool)
	matchRepo := pgrepo.NewMatchRepo(pool)
	listingRepo := pgrepo.NewListingRepo(pool)

	jwtManager := authsvc.NewJWTManager(cfg.Auth.JWTSecret)
	rateLimiter := ratesvc.NewLimiter(counterStore, ratesvc.Config{
		MaxRequests: cfg.Limits.MaxRequests,
		Window:      cfg.Limits.Window,
		KeyPrefix:   cfg.Limits.KeyPrefix,
	})
	swipeService := swipesvc.NewService(swipesvc.Dependencies{
		SwipeStore:   swipeRepo,
		MatchStore:   matchRepo,
		ListingStore: listingRepo,
	}, swipesvc.Config{
		MinSeparation: cfg.Match.MinSeparation,
	})
	matchesService := matchessvc.NewService(matchRepo)
	sweep := sweepjob.New(purger, cfg.Limits.SweepInterval, log)

	RegisterRoutes(r, Dependencies{
		JWTManager:   jwtManager,
		RateLimiter:  rateLimiter,
		SwipeService: swipeService,
		MatchService: matchesService,
		Logger:       log,
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	return &App{
		cfg:        cfg,
		logger:     log,
		server:     server,
		postgres:   pool,
		redis:      redisClient,
		sweep:      sweep,
		httpRouter: r,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info("api server started", zap.String("addr", a.cfg.HTTP.Addr))
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// StartJobs launches the background sweep loop. It returns once the loop
// goroutine is running; the loop itself stops when ctx is cancelled.
func (a *App) StartJobs(ctx context.Context) {
	go func() {
		if err := a.sweep.RunLoop(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Error("sweep loop stopped", zap.Error(err))
		}
	}()
}

func (a *App) Shutdown(ctx context.Context) error {
	var shutdownErr error

	if err := a.server.Shutdown(ctx); err != nil {
		shutdownErr = err
	}
	if a.postgres != nil {
		a.postgres.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil && shutdownErr == nil {
			shutdownErr = err
		}
	}

	return shutdownErr
}

func (a *App) Handler() http.Handler {
	return a.httpRouter
}
