package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/adenmarket/adenmarket/internal/facades"
	"github.com/adenmarket/adenmarket/internal/handlers"
	"github.com/adenmarket/adenmarket/internal/jwt"
	"github.com/adenmarket/adenmarket/internal/logger"
	"github.com/adenmarket/adenmarket/internal/middlewares"
	"github.com/adenmarket/adenmarket/internal/repositories"
	"github.com/adenmarket/adenmarket/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const httpClientTimeout = 10 * time.Second

// @title adenmarket API
// @version 1.0.0
// @description Backend for the in-game item marketplace: listings, boosts, moderation
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBroker, kafkaTopic,
		discordAPIURL, webhookURL,
		storageURL, storageBucket, storageKey,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBroker, kafkaTopic,
		discordAPIURL, webhookURL,
		storageURL, storageBucket, storageKey,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, external-service, and JWT
// configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBroker, kafkaTopic string,
	discordAPIURL, webhookURL string,
	storageURL, storageBucket, storageKey string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config; an empty broker disables audit publishing
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "adenmarket-audit")

	// External services
	discordAPIURL = getEnv("DISCORD_API_URL", "https://discord.com/api")
	webhookURL = getEnv("WEBHOOK_URL", "")
	storageURL = getEnv("STORAGE_URL", "")
	storageBucket = getEnv("STORAGE_BUCKET", "report-images")
	storageKey = getEnv("STORAGE_API_KEY", "")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, external facades, and
// HTTP server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBroker, kafkaTopic string,
	discordAPIURL, webhookURL string,
	storageURL, storageBucket, storageKey string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for the audit trail; services tolerate a nil writer
	var auditWriter services.KafkaWriter
	if kafkaBroker != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		auditWriter = kw
	}

	// Initialize JWT service
	jwt := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// External facades
	discord := facades.NewDiscordFacade(discordAPIURL, httpClientTimeout)
	webhook := facades.NewWebhookFacade(webhookURL, httpClientTimeout)
	storage := facades.NewStorageFacade(storageURL, storageBucket, storageKey, httpClientTimeout)

	// Initialize repositories
	profileReadRepo := repositories.NewProfileReadRepository(db)
	profileWriteRepo := repositories.NewProfileWriteRepository(db)
	listingReadRepo := repositories.NewListingReadRepository(db)
	listingWriteRepo := repositories.NewListingWriteRepository(db, middlewares.GetTxFromContext)
	accessLogReadRepo := repositories.NewAccessLogReadRepository(db)
	accessLogWriteRepo := repositories.NewAccessLogWriteRepository(db)
	reportWriteRepo := repositories.NewReportWriteRepository(db)
	boostMarkerRepo := repositories.NewBoostMarkerRepository(rdb, services.BoostCooldown)

	// Initialize services
	moderationService := services.NewModerationService(
		profileReadRepo, profileReadRepo, profileWriteRepo, accessLogReadRepo, auditWriter)
	accountService := services.NewAccountService(
		discord, profileWriteRepo, accessLogWriteRepo, moderationService, jwt)
	boostService := services.NewBoostService(
		profileReadRepo, profileWriteRepo, listingWriteRepo, listingReadRepo, boostMarkerRepo, auditWriter)
	listingService := services.NewListingService(listingWriteRepo, listingReadRepo, auditWriter)
	reportService := services.NewReportService(reportWriteRepo, storage, webhook)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/login", handlers.NewLoginHandler(accountService))
		r.Get("/listings", handlers.NewBrowseHandler(listingService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(jwt))

			r.Post("/track-login", handlers.NewTrackLoginHandler(accountService))
			r.Patch("/profile/name", handlers.NewRenameHandler(accountService))

			r.Get("/listings/my", handlers.NewMyListingsHandler(listingService))
			r.With(middlewares.TxMiddleware(db)).
				Post("/listings", handlers.NewRegisterListingHandler(listingService))
			r.Patch("/listings/{id}/visibility", handlers.NewSetVisibleHandler(listingService))
			r.Patch("/listings/{id}/price", handlers.NewUpdatePriceHandler(listingService))
			r.Patch("/listings/{id}/delivery", handlers.NewUpdateDeliveryHandler(listingService))
			r.Delete("/listings/{id}", handlers.NewDeleteListingHandler(listingService))

			r.Get("/boost", handlers.NewEvaluateCooldownHandler(boostService))
			r.Post("/boost", handlers.NewApplyBoostHandler(boostService))

			r.Post("/reports", handlers.NewReportHandler(reportService))
			r.Post("/feedback", handlers.NewFeedbackHandler(reportService))

			r.Get("/admin/users", handlers.NewRosterHandler(moderationService))
			r.Get("/admin/users/{id}/access-log", handlers.NewAccessLogHandler(moderationService))
			r.Post("/admin/users/{id}/ban", handlers.NewToggleBanHandler(moderationService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
