// main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ariebrainware/clinic-management/auth"
	"github.com/ariebrainware/clinic-management/config"
	"github.com/ariebrainware/clinic-management/model"
	"github.com/ariebrainware/clinic-management/routes"
	"github.com/ariebrainware/clinic-management/util"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// @title                      Clinic Management API
// @version                    1.0
// @description                Patients, doctors and administrators of a clinic: signup, login, appointments and file uploads.
// @BasePath                   /
// @securityDefinitions.apikey SessionToken
// @in                         header
// @name                       session-token
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "clinic",
		Short:        "Clinic management API server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
	root.AddCommand(serveCmd(), migrateCmd(), createAdminCmd(), geoipCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase(config.LoadConfig())
			if err != nil {
				return err
			}
			util.Logger().Info().Int("tables", len(model.AllModels())).Msg("schema is up to date")
			return closeDatabase(db)
		},
	}
}

type adminFlags struct {
	name     string
	email    string
	password string
	role     string
	phone    string
	active   bool
}

func createAdminCmd() *cobra.Command {
	var f adminFlags
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase(config.LoadConfig())
			if err != nil {
				return err
			}
			defer closeDatabase(db)

			admin, err := createAdmin(db, f)
			if err != nil {
				return err
			}
			util.Logger().Info().Uint("id", admin.ID).Str("email", admin.Email).Msg("administrator created")
			return nil
		},
	}
	cmd.Flags().StringVar(&f.name, "name", "", "full name")
	cmd.Flags().StringVar(&f.email, "email", "", "login email")
	cmd.Flags().StringVar(&f.password, "password", "", "login password")
	cmd.Flags().StringVar(&f.role, "role", "superuser", "administrative role")
	cmd.Flags().StringVar(&f.phone, "phone", "", "phone number")
	cmd.Flags().BoolVar(&f.active, "active", true, "mark the account active")
	for _, name := range []string{"name", "email", "password", "phone"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

// createAdmin stores a new administrator with a hashed password.
func createAdmin(db *gorm.DB, f adminFlags) (model.Admin, error) {
	if strings.TrimSpace(f.name) == "" || strings.TrimSpace(f.email) == "" || f.password == "" || strings.TrimSpace(f.phone) == "" {
		return model.Admin{}, errors.New("name, email, password and phone are required")
	}
	hashed, err := auth.HashPassword(f.password)
	if err != nil {
		return model.Admin{}, err
	}
	admin := model.Admin{
		Name:      util.NormalizeName(f.name),
		Email:     strings.TrimSpace(f.email),
		Password:  hashed,
		Role:      f.role,
		Phone:     strings.TrimSpace(f.phone),
		IsActive:  f.active,
		LastLogin: time.Now(),
	}
	if err := db.Create(&admin).Error; err != nil {
		return model.Admin{}, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}

func geoipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "geoip",
		Short: "Manage the GeoIP database used to locate security events",
	}

	var dl util.DownloadRequest
	download := &cobra.Command{
		Use:   "download",
		Short: "Download a GeoLite2 City .mmdb file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dl.DestPath == "" {
				dl.DestPath = config.LoadConfig().GeoIPDBPath
			}
			if dl.URL == "" || dl.DestPath == "" {
				return errors.New("--url and --dest (or GEOIP_DB_PATH) are required")
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			path, err := util.DownloadGeoIPWithRequest(ctx, dl)
			if err != nil {
				return err
			}
			if err := util.ValidateGeoIP(path); err != nil {
				return fmt.Errorf("downloaded file is not a valid GeoIP database: %w", err)
			}
			util.Logger().Info().Str("path", path).Msg("GeoIP database ready")
			return nil
		},
	}
	download.Flags().StringVar(&dl.URL, "url", "", "download URL (.mmdb or .mmdb.gz)")
	download.Flags().StringVar(&dl.DestPath, "dest", "", "destination path")
	cmd.AddCommand(download)
	return cmd
}

// openDatabase connects to the configured store and migrates it.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := config.ConnectDatabase()
	if err != nil {
		return nil, fmt.Errorf("connect database (%s): %w", cfg.DBDriver, err)
	}
	if err := model.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func closeDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func runServer(ctx context.Context) error {
	cfg := config.LoadConfig()
	util.InitLogger(cfg.AppEnv, cfg.LogLevel)
	log := util.Logger()

	if cfg.JWTSecret == "" {
		return errors.New("JWTSECRET must be set")
	}
	util.SetJWTSecret(cfg.JWTSecret)

	if err := util.InitSentry(cfg.SentryDSN, cfg.AppEnv); err != nil {
		log.Warn().Err(err).Msg("sentry disabled")
	}
	defer util.FlushSentry()

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	if _, err := config.ConnectRedis(); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, sessions are served from the database")
	}
	if err := util.InitGeoIP(cfg.GeoIPDBPath); err != nil {
		log.Warn().Err(err).Str("path", cfg.GeoIPDBPath).Msg("GeoIP lookups disabled")
	}
	defer util.CloseGeoIP()
	util.InitPrincipalEmailCacheFromEnv()
	util.SetSecurityLoggerDB(db)

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	routes.SetupRoutes(router, db, cfg)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("app", cfg.AppName).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
