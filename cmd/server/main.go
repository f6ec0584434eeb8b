package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/ragview/internal/api"
	"github.com/dgallion1/ragview/internal/config"
	"github.com/dgallion1/ragview/internal/nav"
	"github.com/dgallion1/ragview/internal/ragapi"
	"github.com/dgallion1/ragview/internal/views"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	renderer, err := views.New()
	if err != nil {
		log.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	backend := ragapi.NewClient(cfg.RagBackendURL, cfg.RagBackendAPIKey, cfg.BackendTimeout)
	navigator := nav.NewRedirector(map[nav.Destination]string{
		nav.Chats: cfg.ChatsURL,
	})

	srv := api.NewServer(backend, navigator, renderer, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Warn("shutdown", "error", err)
		}

		backend.Close()
	}()

	log.Info("starting ragview", "port", cfg.Port, "rag_backend", cfg.RagBackendURL)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
