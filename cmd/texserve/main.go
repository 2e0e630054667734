// Command texserve runs the preview HTTP server.
//
// Configuration comes from the environment, seeded from .env when present;
// see internal/config for the variables.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gogpu/texcomp"
	"github.com/gogpu/texcomp/internal/config"
	"github.com/gogpu/texcomp/internal/imageio"
	"github.com/gogpu/texcomp/internal/server"
	"github.com/gogpu/texcomp/text"
)

const shutdownTimeout = 10 * time.Second

func main() {
	envFile := flag.String("env", ".env", "environment file")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		slog.Error("texserve: configuration", slog.Any("err", err))
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	texcomp.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("texserve failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	base, err := imageio.DecodeFile(cfg.BasePath)
	if err != nil {
		return err
	}

	var opts []texcomp.Option
	if cfg.LayoutPath != "" {
		l, err := texcomp.LoadLayout(cfg.LayoutPath)
		if err != nil {
			return err
		}
		opts = append(opts, texcomp.WithLayout(l))
	}
	if cfg.FontDir != "" {
		fonts := text.NewFonts()
		n, err := fonts.LoadDir(cfg.FontDir)
		if err != nil {
			return err
		}
		logger.Info("fonts loaded", slog.Int("count", n), slog.Any("families", fonts.Families()))
		opts = append(opts, texcomp.WithFonts(fonts))
	}

	if cfg.LogLevel > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}
	limits := server.Limits{Bytes: cfg.MaxUploadBytes, Pixels: cfg.MaxUploadPixels}
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.New(texcomp.New(opts...), base, limits).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", srv.Addr), slog.String("base", cfg.BasePath))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
