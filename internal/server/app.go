// Package server wires the application together: configuration, logging,
// credential verification, storage, blob URL issuance and the HTTP endpoint,
// and runs the server with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/mpavlovs/taskvault/internal/logging"
	"github.com/mpavlovs/taskvault/internal/server/auth"
	"github.com/mpavlovs/taskvault/internal/server/blob"
	"github.com/mpavlovs/taskvault/internal/server/config"
	"github.com/mpavlovs/taskvault/internal/server/entries"
	"github.com/mpavlovs/taskvault/internal/server/httpapi"
	"github.com/mpavlovs/taskvault/internal/server/repositories/repomanager"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	handler http.Handler
}

func NewApp(c *config.Config) (*App, error) {
	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	// The signing key is the only process-wide state; it is loaded once
	// and never mutated.
	pemBytes, err := os.ReadFile(c.JWTPublicKeyFile)
	if err != nil {
		return nil, fmt.Errorf("public key read error: %w", err)
	}
	verifier, err := auth.NewVerifierFromPEM(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("public key parse error: %w", err)
	}
	authorizer := auth.NewAuthorizer(verifier, logger)

	rm, err := repomanager.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	blobs := blob.NewS3Store(blob.Options{
		AccessKey:     c.S3AccessKey,
		SecretKey:     c.S3SecretKey,
		Region:        c.S3Region,
		Bucket:        c.S3Bucket,
		BaseEndpoint:  c.S3BaseEndpoint,
		PublicBaseURL: c.AttachmentBaseURL,
	})

	guard := entries.NewOwnershipGuard(rm.Entries())
	svc := entries.NewService(rm.Entries(), guard, blobs, c.UploadURLExpiration, logger)

	handler := httpapi.NewRouter(authorizer, svc, logger)

	return &App{config: c, logger: logger, handler: handler}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: app.handler,
	}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, err.Error())
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", app.config.EndpointAddr)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
