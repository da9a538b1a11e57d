package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/yosefin19/sinac-turismo-api/internal/application/auth"
	"github.com/yosefin19/sinac-turismo-api/internal/application/catalog"
	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
	profilesvc "github.com/yosefin19/sinac-turismo-api/internal/application/profile"
	"github.com/yosefin19/sinac-turismo-api/internal/config"
	infraauth "github.com/yosefin19/sinac-turismo-api/internal/infrastructure/auth"
	httprouter "github.com/yosefin19/sinac-turismo-api/internal/infrastructure/http"
	"github.com/yosefin19/sinac-turismo-api/internal/infrastructure/http/handlers"
	"github.com/yosefin19/sinac-turismo-api/internal/infrastructure/http/middleware"
	"github.com/yosefin19/sinac-turismo-api/internal/infrastructure/mail"
	"github.com/yosefin19/sinac-turismo-api/internal/infrastructure/media"
	"github.com/yosefin19/sinac-turismo-api/internal/infrastructure/persistence/postgres"
	"github.com/yosefin19/sinac-turismo-api/internal/infrastructure/queue"
	"github.com/yosefin19/sinac-turismo-api/internal/infrastructure/security"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("parse REDIS_URL")
		}
		redisClient = redis.NewClient(opt)
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis ping failed; continuing without redis")
			redisClient = nil
		}
	}

	healthHandler := handlers.NewHealthHandler(pool, redisClient)

	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	galleryRepo := postgres.NewGalleryRepository(pool)
	areaRepo := postgres.NewAreaRepository(pool)
	destinationRepo := postgres.NewDestinationRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	favoriteRepo := postgres.NewMarkRepository(pool, postgres.FavoriteTable)
	visitedRepo := postgres.NewMarkRepository(pool, postgres.VisitedTable)

	sender := mail.NewSender(mail.Config{
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
		FromName: cfg.Mail.FromName,
		Server:   cfg.Mail.Server,
		Port:     cfg.Mail.Port,
	})

	var taskEnqueuer ports.TaskEnqueuer
	var asynqWorker *queue.Worker
	if redisClient != nil {
		redisOpt, _ := redis.ParseURL(cfg.Redis.URL)
		asynqOpt := asynq.RedisClientOpt{Addr: redisOpt.Addr, Password: redisOpt.Password, DB: redisOpt.DB}
		asynqEnq := queue.NewAsynqEnqueuer(asynqOpt)
		defer asynqEnq.Close()
		taskEnqueuer = asynqEnq
		asynqWorker = queue.NewWorker(asynqOpt, sender, log)
		go func() {
			if err := asynqWorker.Run(); err != nil {
				log.Warn().Err(err).Msg("asynq worker stopped")
			}
		}()
	} else {
		taskEnqueuer = queue.NewNoopEnqueuer(log)
	}

	hasher := security.NewBcryptHasher(cfg.Bcrypt.Cost)
	issuer := infraauth.NewTokenIssuer([]byte(cfg.Token.Secret), time.Duration(cfg.Token.ExpiryDays)*24*time.Hour)
	mediaStore := media.NewStore(cfg.Media.Dir, cfg.Media.Quality, log)

	registerUC := auth.NewRegister(userRepo, hasher)
	loginUC := auth.NewLogin(userRepo, hasher, issuer)
	resetPasswordUC := auth.NewResetPassword(userRepo, hasher, taskEnqueuer)

	profileService := profilesvc.NewService(profileRepo, galleryRepo, mediaStore)
	areaService := catalog.NewAreaService(areaRepo, mediaStore)
	destinationService := catalog.NewDestinationService(destinationRepo, favoriteRepo, mediaStore)
	reviewService := catalog.NewReviewService(reviewRepo, mediaStore)
	favoriteService := catalog.NewMarkService(favoriteRepo)
	visitedService := catalog.NewMarkService(visitedRepo)

	ipLimit, err := middleware.NewIPRateLimiter(cfg.RateLimit.RatePerIP)
	if err != nil {
		log.Fatal().Err(err).Msg("create IP rate limiter")
	}
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.Secure.IsDevelopment))
	corsMiddleware := middleware.CORS([]string{"*"}, nil, nil)
	requireJWT := middleware.NewAuthValidator(issuer).Handler
	requireAdmin := middleware.NewAdminGuard(userRepo).Handler

	router := httprouter.NewRouter(httprouter.RouterConfig{
		UserHandler:        handlers.NewUserHandler(registerUC, loginUC, resetPasswordUC, userRepo, hasher, profileService, log),
		ProfileHandler:     handlers.NewProfileHandler(profileService, log),
		GalleryHandler:     handlers.NewGalleryHandler(profileService, log),
		AreaHandler:        handlers.NewAreaHandler(areaService, log),
		DestinationHandler: handlers.NewDestinationHandler(destinationService, log),
		ReviewHandler:      handlers.NewReviewHandler(reviewService, log),
		FavoriteHandler:    handlers.NewMarkHandler(favoriteService, log),
		VisitedHandler:     handlers.NewMarkHandler(visitedService, log),
		HealthHandler:      healthHandler,
		RequireJWT:         requireJWT,
		RequireAdmin:       requireAdmin,
		Log:                log,
		Secure:             secureMiddleware,
		IPRateLimit:        ipLimit,
		CORS:               corsMiddleware,
		MediaDir:           cfg.Media.Dir,
		Metrics:            true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if asynqWorker != nil {
		asynqWorker.Shutdown()
	}
	log.Info().Msg("server stopped")
}
