package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"camphq/platform/internal/config"
	"camphq/platform/internal/handler"
	"camphq/platform/internal/model"
	"camphq/platform/internal/repository"
	"camphq/platform/internal/service"
	jwtpkg "camphq/platform/pkg/jwt"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Initialize logger
	var logger *zap.Logger
	if cfg.Log.Format == "json" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	// 3. Connect to PostgreSQL
	db, err := config.NewPostgresDB(cfg.Database.Postgres)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}

	// 4. Auto-migrate if enabled
	if cfg.Database.Postgres.AutoMigrate {
		if err := model.AutoMigrate(db); err != nil {
			logger.Fatal("failed to auto-migrate", zap.Error(err))
		}
		logger.Info("database migration completed")
	}

	// 5. Initialize state store (Redis or in-memory)
	var stateStore repository.StateStore
	switch cfg.State.Backend {
	case "redis":
		redisClient, err := config.NewRedisClient(cfg.Database.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		stateStore = repository.NewRedisStateStore(redisClient)
		logger.Info("using Redis state store")
	case "memory":
		stateStore = repository.NewMemoryStateStore()
		logger.Info("using in-memory state store")
	default:
		logger.Fatal("unknown state backend", zap.String("backend", cfg.State.Backend))
	}

	// 6. Initialize repositories
	txManager := repository.NewGormTxManager(db)
	userRepo := repository.NewPGUserRepository(db)
	athleteRepo := repository.NewPGAthleteRepository(db)
	campRepo := repository.NewPGCampRepository(db)
	registrationRepo := repository.NewPGRegistrationRepository(db)
	attendanceRepo := repository.NewPGAttendanceRepository(db)
	pickupTokenRepo := repository.NewPGPickupTokenRepository(db)
	waiverRepo := repository.NewPGWaiverRepository(db)
	curriculumRepo := repository.NewPGCurriculumRepository(db)
	lmsRepo := repository.NewPGLmsRepository(db)
	venueRepo := repository.NewPGVenueRepository(db)
	territoryRepo := repository.NewPGTerritoryRepository(db)
	licenseeRepo := repository.NewPGLicenseeRepository(db)
	applicationRepo := repository.NewPGLicenseeApplicationRepository(db)
	productRepo := repository.NewPGProductRepository(db)

	// 7. Initialize JWT manager
	jwtManager := jwtpkg.NewManager(
		cfg.JWT.SigningKey,
		cfg.JWT.Issuer,
		cfg.JWT.AccessTokenTTL,
		cfg.JWT.RefreshTokenTTL,
	)

	// 8. Initialize mail backend (smtp, resend, or disabled)
	var mailer service.MailSender
	switch cfg.Mail.Backend {
	case "smtp":
		mailer, err = service.NewSMTPSender(cfg.Mail.SMTP)
		if err != nil {
			logger.Fatal("failed to init smtp sender", zap.Error(err))
		}
		logger.Info("using SMTP mail backend")
	case "resend":
		mailer, err = service.NewResendSender(cfg.Mail.Resend)
		if err != nil {
			logger.Fatal("failed to init resend sender", zap.Error(err))
		}
		logger.Info("using Resend mail backend")
	case "":
		logger.Info("mail sending disabled")
	default:
		logger.Fatal("unknown mail backend", zap.String("backend", cfg.Mail.Backend))
	}

	// 9. Initialize services
	authService := service.NewAuthService(userRepo, stateStore, jwtManager)
	userService := service.NewUserService(userRepo)
	athleteService := service.NewAthleteService(athleteRepo, registrationRepo, campRepo)
	campService := service.NewCampService(campRepo, registrationRepo, attendanceRepo)
	pickupService := service.NewPickupService(pickupTokenRepo, attendanceRepo, athleteRepo, campRepo, txManager)
	waiverService := service.NewWaiverService(waiverRepo, registrationRepo)
	curriculumService := service.NewCurriculumService(curriculumRepo)
	lmsService := service.NewLmsService(lmsRepo)
	venueService := service.NewVenueService(venueRepo)
	licenseeService := service.NewLicenseeService(territoryRepo, licenseeRepo, applicationRepo, txManager, mailer, logger)
	shopService := service.NewShopService(productRepo, stateStore, cfg.Cart.TTL)
	exportService := service.NewExportService(athleteRepo, userRepo, registrationRepo)

	uploadService, err := service.NewUploadService(cfg.Storage)
	if err != nil {
		logger.Fatal("failed to init upload service", zap.Error(err))
	}

	// 10. Initialize handlers
	handlers := handler.Handlers{
		Auth:       handler.NewAuthHandler(authService, userService),
		User:       handler.NewUserHandler(userService),
		Athlete:    handler.NewAthleteHandler(athleteService),
		Camp:       handler.NewCampHandler(campService),
		Pickup:     handler.NewPickupHandler(pickupService),
		Waiver:     handler.NewWaiverHandler(waiverService),
		Curriculum: handler.NewCurriculumHandler(curriculumService),
		Lms:        handler.NewLmsHandler(lmsService),
		Venue:      handler.NewVenueHandler(venueService),
		Licensee:   handler.NewLicenseeHandler(licenseeService),
		Shop:       handler.NewShopHandler(shopService),
		Upload:     handler.NewUploadHandler(uploadService),
		Export:     handler.NewExportHandler(exportService),
	}

	// 11. Setup router
	router := handler.SetupRouter(cfg, logger, jwtManager, handlers)

	// 12. Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 13. Start server with graceful shutdown
	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// 14. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited gracefully")
}
