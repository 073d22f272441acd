package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Capp3/broadcast-flow-control-system/config"
	"github.com/Capp3/broadcast-flow-control-system/internal/api/handler"
	"github.com/Capp3/broadcast-flow-control-system/internal/api/router"
	"github.com/Capp3/broadcast-flow-control-system/internal/model"
	"github.com/Capp3/broadcast-flow-control-system/internal/repository"
	"github.com/Capp3/broadcast-flow-control-system/internal/service"
	"github.com/Capp3/broadcast-flow-control-system/pkg/database"
	applogger "github.com/Capp3/broadcast-flow-control-system/pkg/logger"
	"github.com/Capp3/broadcast-flow-control-system/pkg/mailer"
	"github.com/Capp3/broadcast-flow-control-system/pkg/redis"
	"github.com/Capp3/broadcast-flow-control-system/pkg/session"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	seed := flag.Bool("seed", false, "create the initial staff account and exit")
	flag.Parse()

	// 1. configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// 2. logging
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting up",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. database and migrations
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	logger.Info("database connected")

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("unwrap sql.DB", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("run migrations", zap.Error(err))
	}

	if *seed {
		if err := seedStaffAccount(db, logger); err != nil {
			logger.Fatal("seed account", zap.Error(err))
		}
		return
	}

	// 4. Redis; a failed connection degrades sessions to process memory
	var rdb *redis.Client
	var sessions session.Store
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, sessions will not survive restarts", zap.Error(err))
		rdb = nil
		sessions = session.NewMemoryStore(cfg.Session.TTL)
	} else {
		sessions = session.NewRedisStore(rdb.Redis(), cfg.Session.TTL)
	}

	// 5. dependency wiring: repository → service → handler
	repo := repository.NewRepository(db)
	sender := mailer.NewSMTPSender(&cfg.Mail)
	svc := service.NewService(cfg, repo, sessions, sender, logger)
	h := handler.NewHandler(svc, cfg)

	// 6. routes
	engine := router.Setup(cfg, h, sessions, rdb, logger)

	// 7. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}

// seedStaffAccount bootstraps one staff login so a fresh deployment can
// authenticate. Credentials come from BFCS_SEED_USERNAME / BFCS_SEED_PASSWORD,
// defaulting to admin / admin (change it immediately).
func seedStaffAccount(db *gorm.DB, logger *zap.Logger) error {
	username := os.Getenv("BFCS_SEED_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("BFCS_SEED_PASSWORD")
	if password == "" {
		password = "admin"
	}

	var existing model.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		logger.Info("seed account already exists", zap.String("username", username))
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Username:     username,
		Email:        username + "@localhost",
		FirstName:    "System",
		LastName:     "Administrator",
		IsStaff:      true,
		PasswordHash: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		return err
	}

	logger.Info("seed account created", zap.String("username", username), zap.Uint("id", user.ID))
	return nil
}
