package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	_ "github.com/sbilibin2017/vibecare/docs"
	"github.com/sbilibin2017/vibecare/internal/config"
	"github.com/sbilibin2017/vibecare/internal/events"
	"github.com/sbilibin2017/vibecare/internal/facades"
	"github.com/sbilibin2017/vibecare/internal/handlers"
	"github.com/sbilibin2017/vibecare/internal/jwt"
	"github.com/sbilibin2017/vibecare/internal/logger"
	"github.com/sbilibin2017/vibecare/internal/mailer"
	"github.com/sbilibin2017/vibecare/internal/middlewares"
	"github.com/sbilibin2017/vibecare/internal/render"
	"github.com/sbilibin2017/vibecare/internal/repositories"
	"github.com/sbilibin2017/vibecare/internal/services"
	"github.com/sbilibin2017/vibecare/migrations"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

//go:generate swag init -d ../ -g cmd/main.go -o ../docs

// @title VibeCare API
// @version 1.0.0
// @description Mental wellbeing backend: accounts, self-assessments, journaling, caretakers and an admin console
// @host localhost:3000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo(os.Stdout)
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo(w io.Writer) {
	fmt.Fprintf(w, "Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run connects the stores, wires services and serves HTTP until a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// Connect to PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := migrations.Migrate(db.DB); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Outbound integrations
	var publisher *events.Publisher
	if w := events.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic); w != nil {
		publisher = events.NewPublisher(w)
		defer publisher.Close()
	} else {
		publisher = events.NewPublisher(nil)
		log.Warn("Kafka brokers not configured, events are dropped")
	}

	var mail services.Mailer = mailer.NopMailer{}
	if cfg.SMTP.Host != "" {
		mail = mailer.New(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	} else {
		log.Warn("SMTP not configured, mail is only logged")
	}

	predictor := facades.NewPredictionHTTPFacade(cfg.Prediction.URL, cfg.Prediction.Timeout)
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWT.Secret), jwt.WithExpiration(cfg.JWT.Expiration))

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, middlewares.GetTxFromContext)
	loginRepo := repositories.NewLoginHistoryRepository(db)
	otpRepo := repositories.NewOTPCacheRepository(rdb, cfg.OTP.TTL)
	feedbackRepo := repositories.NewFeedbackRepository(db)
	storyRepo := repositories.NewStoryRepository(db)
	diaryRepo := repositories.NewDiaryRepository(db)
	chatRepo := repositories.NewChatRepository(db)
	caretakerRepo := repositories.NewCaretakerRepository(db)
	assessmentRepo := repositories.NewAssessmentRepository(db)
	faceRepo := repositories.NewFaceExpressionRepository(db)
	prefsRepo := repositories.NewPreferencesRepository(db)
	imageRepo := repositories.NewImageRepository(db)
	emojiRepo := repositories.NewEmojiRepository(db)

	rnd, err := render.New()
	if err != nil {
		return fmt.Errorf("templates: %w", err)
	}

	router := handlers.NewRouter(handlers.RouterDeps{
		Auth:          services.NewAuthService(userRepo, loginRepo, otpRepo, tokens, mail, publisher, cfg.OTP.TTL),
		Users:         services.NewUserService(userRepo, loginRepo, faceRepo),
		Preferences:   services.NewPreferencesService(prefsRepo),
		Predictor:     services.NewPredictionService(predictor),
		Expressions:   services.NewFaceService(faceRepo),
		Feedback:      services.NewFeedbackService(feedbackRepo, mail, publisher),
		Stories:       services.NewStoryService(storyRepo, mail, publisher),
		Diary:         services.NewDiaryService(diaryRepo),
		Caretakers:    services.NewCaretakerService(caretakerRepo, userRepo),
		Assessments:   services.NewAssessmentService(assessmentRepo),
		Chats:         services.NewChatService(chatRepo),
		Analytics:     services.NewOverviewService(userRepo, loginRepo, faceRepo, assessmentRepo),
		Media:         services.NewMediaService(imageRepo, emojiRepo),
		Renderer:      rnd,
		Tokener:       tokens,
		AuthRequired:  cfg.App.AuthRequired,
		AdminUser:     cfg.App.AdminUser,
		AdminPassword: cfg.App.AdminPassword,
		Tx:            middlewares.TxMiddleware(db),
	})

	addr := net.JoinHostPort(cfg.App.Host, cfg.App.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
