// Package server initializes and runs the main application server.
// It wires the object store, mailer, and upload-authorization engine,
// and handles graceful shutdown of the HTTP endpoint.
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

	"github.com/radblock/gifgate/internal/logging"
	"github.com/radblock/gifgate/internal/server/config"
	"github.com/radblock/gifgate/internal/server/credential"
	"github.com/radblock/gifgate/internal/server/httpapi"
	"github.com/radblock/gifgate/internal/server/mail"
	usersrepo "github.com/radblock/gifgate/internal/server/repositories/users"
	"github.com/radblock/gifgate/internal/server/services"
	"github.com/radblock/gifgate/internal/server/storage"
	"github.com/radblock/gifgate/internal/server/verification"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	store, err := storage.NewS3Store(cfg)
	if err != nil {
		return nil, fmt.Errorf("object store init error: %w", err)
	}

	codec := credential.NewCodec(cfg.PBKDF2Iterations)
	repo := usersrepo.NewBlobRepository(store, codec, cfg.UserBucket)

	mailer, err := mail.NewSMTPMailer(mail.SMTPSettings{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		UseTLS:   cfg.SMTPUseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("mailer init error: %w", err)
	}

	dispatcher := verification.NewDispatcher(mailer, cfg.VerifyBaseURL)
	uploads := services.NewUploadService(repo, store, dispatcher, services.NoopCharger{}, logger, cfg)
	resetter := services.NewManualResetter(repo)

	handler := httpapi.NewHandler(uploads, resetter, logger)
	router := httpapi.NewRouter(handler, logger, cfg)

	srv := &http.Server{
		Addr:    cfg.EndpointAddrHTTP,
		Handler: router,
	}

	return &App{config: cfg, logger: logger, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	app.logger.Info(ctx, "listening", "addr", app.config.EndpointAddrHTTP)

	if err := app.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, err.Error())
	}

	wg.Wait()
}
