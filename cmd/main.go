package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sgrinev/habit-streak-bot/internal/db"
	"github.com/sgrinev/habit-streak-bot/internal/gateway"
	"github.com/sgrinev/habit-streak-bot/internal/handlers"
	"github.com/sgrinev/habit-streak-bot/internal/jwt"
	"github.com/sgrinev/habit-streak-bot/internal/logger"
	"github.com/sgrinev/habit-streak-bot/internal/middlewares"
	"github.com/sgrinev/habit-streak-bot/internal/repositories"
	"github.com/sgrinev/habit-streak-bot/internal/scheduler"
	"github.com/sgrinev/habit-streak-bot/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything parseConfig reads from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int

	kafkaBrokers []string
	kafkaTopic   string

	gatewayURL string
	botToken   string
	jwtExp     int

	reminderInterval time.Duration
}

// @title habit-streak-bot API
// @version 1.0.0
// @description Backend for a habit tracking chat bot: streaks, achievements, reminders and a community chat
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// parseConfig loads environment variables from a file and returns the
// application configuration. BOT_TOKEN has no default: the service must
// not start with a guessable signing secret.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "habitbot")
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config; empty broker list disables event publishing.
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.kafkaBrokers = strings.Split(brokers, ",")
	}
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "checkin-events")

	// Messaging gateway config
	cfg.gatewayURL = getEnv("GATEWAY_URL", "http://localhost:8090")
	cfg.botToken = getEnv("BOT_TOKEN", "")
	if cfg.botToken == "" {
		err = errors.New("BOT_TOKEN is required")
		return
	}
	if cfg.jwtExp, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "60")); err != nil {
		return
	}

	// Reminder scheduler config
	var intervalSeconds int
	if intervalSeconds, err = strconv.Atoi(getEnv("REMINDER_INTERVAL_SECONDS", "60")); err != nil {
		return
	}
	cfg.reminderInterval = time.Duration(intervalSeconds) * time.Second

	return
}

// run initializes the logger, database, Redis, Kafka, gateway client and
// HTTP server. It sets up routes, applies middleware, starts the
// reminder scheduler and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)

	dbConn, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer dbConn.Close()
	dbConn.SetMaxOpenConns(cfg.pgMaxOpenConns)
	dbConn.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := dbConn.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	if err := db.RunMigrations(ctx, dbConn); err != nil {
		logger.Log.Errorw("migrations failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for check-in events
	var eventWriter services.EventWriter
	if len(cfg.kafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaBrokers...),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		eventWriter = kw
	}

	// JWT service: the bot token is the shared secret between this
	// service and the messaging gateway.
	tokener := jwt.New(
		jwt.WithSecretKey(cfg.botToken),
		jwt.WithExpiration(time.Duration(cfg.jwtExp)*time.Second),
	)

	// Messaging gateway client
	gatewayClient := gateway.New(cfg.gatewayURL, tokener)

	// Repositories
	userReadRepo := repositories.NewUserReadRepository(dbConn, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(dbConn, middlewares.GetTxFromContext)
	achievementWriteRepo := repositories.NewAchievementWriteRepository(dbConn, middlewares.GetTxFromContext)
	achievementReadRepo := repositories.NewAchievementReadRepository(dbConn, middlewares.GetTxFromContext)
	chatWriteRepo := repositories.NewChatMessageWriteRepository(dbConn, middlewares.GetTxFromContext)
	chatReadRepo := repositories.NewChatMessageReadRepository(dbConn, middlewares.GetTxFromContext)
	sessionRepo := repositories.NewSessionRepository(rdb)

	// Services
	achievementService := services.NewAchievementService(achievementWriteRepo, achievementReadRepo)
	streakService := services.NewStreakService(userReadRepo, userWriteRepo, achievementService, eventWriter)
	registrationService := services.NewRegistrationService(userWriteRepo)
	broadcastService := services.NewBroadcastService(userReadRepo, gatewayClient)
	reminderService := services.NewReminderService(userReadRepo, gatewayClient)
	chatService := services.NewChatService(sessionRepo, chatWriteRepo, chatReadRepo, broadcastService)
	settingsService := services.NewSettingsService(userReadRepo, userWriteRepo)

	// Handlers
	startHandler := handlers.NewStartHandler(registrationService, sessionRepo)
	helpHandler := handlers.NewHelpHandler(sessionRepo)
	emergencyMenuHandler := handlers.NewEmergencyMenuHandler(sessionRepo)
	checkInHandler := handlers.NewCheckInHandler(streakService)
	statsHandler := handlers.NewStatsHandler(streakService)
	taskHandler := handlers.NewTaskHandler()
	motivationHandler := handlers.NewMotivationHandler()
	emergencyTipHandler := handlers.NewEmergencyTipHandler()
	achievementsHandler := handlers.NewAchievementsHandler(achievementService)
	reminderSettingsHandler := handlers.NewReminderSettingsHandler(settingsService)
	reminderOnHandler := handlers.NewReminderOnHandler(settingsService)
	reminderOffHandler := handlers.NewReminderOffHandler(settingsService)
	reminderTimeHandler := handlers.NewReminderTimeHandler(settingsService)
	chatJoinHandler := handlers.NewChatJoinHandler(chatService)
	chatLeaveHandler := handlers.NewChatLeaveHandler(chatService)
	chatMessageHandler := handlers.NewChatMessageHandler(chatService)
	chatHistoryHandler := handlers.NewChatHistoryHandler(chatService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	authMiddleware := middlewares.AuthMiddleware(tokener)
	txMiddleware := middlewares.TxMiddleware(dbConn)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/stats", statsHandler)
		r.Get("/task", taskHandler)
		r.Get("/motivation", motivationHandler)
		r.Get("/emergency/tip", emergencyTipHandler)
		r.Get("/achievements", achievementsHandler)
		r.Get("/reminder", reminderSettingsHandler)
		r.Get("/chat/messages", chatHistoryHandler)

		// Menu transitions only touch the session store, no tx needed.
		r.Post("/help", helpHandler)
		r.Post("/emergency", emergencyMenuHandler)

		// Mutating routes run inside a request-scoped transaction.
		r.Group(func(r chi.Router) {
			r.Use(txMiddleware)

			r.Post("/start", startHandler)
			r.Post("/checkin", checkInHandler)
			r.Post("/reminder/on", reminderOnHandler)
			r.Post("/reminder/off", reminderOffHandler)
			r.Post("/reminder/time", reminderTimeHandler)
			r.Post("/chat/join", chatJoinHandler)
			r.Post("/chat/leave", chatLeaveHandler)
			r.Post("/chat/message", chatMessageHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Reminder scheduler
	go scheduler.New(reminderService, cfg.reminderInterval).Run(ctxShutdown)

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
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
