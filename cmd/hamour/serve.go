// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"hamour/internal/auth"
	"hamour/internal/cache"
	"hamour/internal/config"
	"hamour/internal/database"
	"hamour/internal/filestore"
	"hamour/internal/gateway"
	"hamour/internal/handlers"
	"hamour/internal/logging"
	"hamour/internal/middleware"
	"hamour/internal/models"
	"hamour/internal/router"
	"hamour/internal/session"
	"hamour/internal/storage"
	"hamour/internal/store"
	"hamour/web"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the content HTTP server",
		Long:  `Serve the JSON content API, uploaded images and the static site until SIGINT or SIGTERM.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	logging.Setup(cfg.LogFormat, cfg.LogLevel)

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"backend", cfg.Backend,
		"image_store", cfg.ImageStore,
	)

	dateLocale, err := models.ParseLocale(cfg.DateLocale)
	if err != nil {
		return err
	}

	records, closeRecords, err := openRecords(cfg, dateLocale)
	if err != nil {
		return err
	}
	defer closeRecords()

	images, err := openImages(cfg)
	if err != nil {
		return err
	}

	authn, err := auth.FromConfig(cfg.AdminSecret, cfg.AdminPasswordHash)
	if err != nil {
		return fmt.Errorf("admin credentials: %w", err)
	}

	// Login and ticket submission are the only public writes worth limiting.
	loginLimiter := middleware.NewRateLimiter(5, time.Minute)
	defer loginLimiter.Stop()
	ticketLimiter := middleware.NewRateLimiter(10, time.Minute)
	defer ticketLimiter.Stop()

	fallback, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		return fmt.Errorf("embedded site: %w", err)
	}

	opts := router.Options{
		API:           handlers.NewAPI(gateway.New(records, images), cfg.MaxBodyBytes),
		Static:        handlers.NewStatic(cfg.StaticDir, fallback),
		LoginLimiter:  loginLimiter,
		TicketLimiter: ticketLimiter,
		CORSOrigins:   cfg.CORSOrigins,
	}
	if cfg.ImageStore == config.ImageStoreDisk {
		opts.UploadDir = cfg.UploadDir
		opts.UploadPrefix = cfg.UploadURLPrefix
	}

	// Admin sessions need Valkey; without it login only reports success.
	var sessions *session.Store
	if cfg.SessionsEnabled() {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			return fmt.Errorf("connect to valkey: %w", err)
		}
		defer valkeyClient.Close()

		// In non-development environments, mark session cookies as Secure (HTTPS-only).
		sessions = session.NewStore(valkeyClient, !cfg.IsDev())
		opts.Sessions = sessions
	} else {
		slog.Warn("valkey not configured, admin sessions disabled")
	}
	opts.Auth = handlers.NewAuth(authn, sessions)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.New(opts),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// openRecords selects the persistence adapter named by BACKEND. The
// returned function releases it.
func openRecords(cfg *config.Config, dateLocale language.Tag) (gateway.Records, func(), error) {
	switch cfg.Backend {
	case config.BackendHosted:
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		if cfg.IsDev() {
			if err := prepareDatabase(db); err != nil {
				db.Close()
				return nil, nil, err
			}
		}
		slog.Info("hosted backend ready")
		return store.NewHosted(db, dateLocale), func() { db.Close() }, nil

	default:
		files, err := filestore.Open(cfg.DataFile, filestore.WithDateLocale(dateLocale))
		if err != nil {
			return nil, nil, fmt.Errorf("open data file: %w", err)
		}
		slog.Info("file backend ready", "path", files.Path())
		return files, func() {}, nil
	}
}

// openImages selects the image store named by IMAGE_STORE.
func openImages(cfg *config.Config) (gateway.ImageStore, error) {
	switch cfg.ImageStore {
	case config.ImageStoreS3:
		s3, err := storage.NewS3(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicURL)
		if err != nil {
			return nil, fmt.Errorf("s3 storage: %w", err)
		}
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
		return s3, nil

	case config.ImageStoreCloudinary:
		cld, err := storage.NewCloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			return nil, fmt.Errorf("cloudinary storage: %w", err)
		}
		slog.Info("cloudinary storage configured", "cloud", cfg.CloudinaryCloudName)
		return cld, nil

	default:
		disk, err := storage.NewDisk(cfg.UploadDir, cfg.UploadURLPrefix)
		if err != nil {
			return nil, err
		}
		slog.Info("disk storage ready", "dir", disk.Dir())
		return disk, nil
	}
}
