package main

import (
	"context"
	crypto_rand "crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mvega09/SIACOM/internal/config"
	"github.com/mvega09/SIACOM/internal/domain/clinicalnote"
	"github.com/mvega09/SIACOM/internal/domain/contact"
	"github.com/mvega09/SIACOM/internal/domain/dashboard"
	"github.com/mvega09/SIACOM/internal/domain/familyaccess"
	"github.com/mvega09/SIACOM/internal/domain/familyportal"
	"github.com/mvega09/SIACOM/internal/domain/identity"
	"github.com/mvega09/SIACOM/internal/domain/notification"
	"github.com/mvega09/SIACOM/internal/domain/patient"
	"github.com/mvega09/SIACOM/internal/domain/surgery"
	"github.com/mvega09/SIACOM/internal/domain/vitals"
	"github.com/mvega09/SIACOM/internal/platform/auth"
	"github.com/mvega09/SIACOM/internal/platform/db"
	"github.com/mvega09/SIACOM/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "siacom-server",
		Short: "Surgery tracking and family communication API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	secret := []byte(cfg.JWTSecret)
	if len(secret) == 0 {
		// Development only; Validate rejects the empty secret otherwise.
		secret = randomSecret()
		logger.Warn().Msg("using an ephemeral signing secret, tokens will not survive restarts")
	}

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))
	e.Use(middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}))

	// Token issuer
	issuer := auth.NewIssuer(secret, cfg.StaffTokenTTL, cfg.FamilyTokenTTL)

	// Repositories
	userRepo := identity.NewRepoPG(pool)
	codeRepo := familyaccess.NewRepoPG(pool)
	patientRepo := patient.NewRepoPG(pool)
	contactRepo := contact.NewRepoPG(pool)
	surgeryRepo := surgery.NewRepoPG(pool)
	vitalsRepo := vitals.NewRepoPG(pool)
	noteRepo := clinicalnote.NewRepoPG(pool)
	notificationRepo := notification.NewRepoPG(pool)

	// Services
	identitySvc := identity.NewService(userRepo, issuer)
	familySvc := familyaccess.NewService(codeRepo, issuer)
	patientSvc := patient.NewService(patientRepo)
	contactSvc := contact.NewService(contactRepo)
	surgerySvc := surgery.NewService(surgeryRepo, contactRepo, notificationRepo, surgery.PoolTxRunner(pool), logger)
	vitalsSvc := vitals.NewService(vitalsRepo)
	noteSvc := clinicalnote.NewService(noteRepo)
	portalSvc := familyportal.NewService(patientRepo, surgeryRepo, vitalsRepo, notificationRepo)
	dashboardSvc := dashboard.NewService(patientRepo, surgeryRepo, noteSvc)

	// Public login endpoints
	identity.NewHandler(identitySvc).RegisterRoutes(e)
	familyaccess.NewHandler(familySvc).RegisterRoutes(e)

	// Staff endpoints: bearer token verified here, roles per route group
	staffAPI := e.Group("", auth.RequireStaff(issuer))
	patient.NewHandler(patientSvc).RegisterRoutes(staffAPI)
	contact.NewHandler(contactSvc).RegisterRoutes(staffAPI)
	surgery.NewHandler(surgerySvc).RegisterRoutes(staffAPI)
	vitals.NewHandler(vitalsSvc).RegisterRoutes(staffAPI)
	clinicalnote.NewHandler(noteSvc).RegisterRoutes(staffAPI)
	dashboard.NewHandler(dashboardSvc).RegisterRoutes(staffAPI)

	// Family endpoints
	familyportal.NewHandler(portalSvc, issuer).RegisterRoutes(e.Group(""))

	// Health checks
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

func randomSecret() []byte {
	buf := make([]byte, 32)
	if _, err := crypto_rand.Read(buf); err != nil {
		panic(fmt.Sprintf("cannot generate signing secret: %v", err))
	}
	return []byte(hex.EncodeToString(buf))
}
