package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/adibayu/corpsite/content/application"
	"github.com/adibayu/corpsite/content/domain"
	"github.com/adibayu/corpsite/content/store"
	"github.com/adibayu/corpsite/internal/middleware"
	"github.com/adibayu/corpsite/internal/rest"
	"github.com/adibayu/corpsite/internal/web"
	"github.com/adibayu/corpsite/shared/config"
	"github.com/adibayu/corpsite/shared/supabase"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg := config.Load()

	// Backend selection happens exactly once. The mock store is always
	// constructed: in mock mode it is the backend itself, and in remote
	// mode it is the last-resort corpus for the public feed.
	local := store.NewMemoryStore(store.SeedPosts())
	clients := supabase.NewFactory(cfg.Supabase)

	var backend domain.Backend = local
	if cfg.Supabase.IsConfigured() {
		backend = store.NewRemoteStore(clients)
		log.Info().Msg("Using remote content backend")
	} else {
		log.Info().Msg("No remote backend configured, serving in-memory content")
	}

	repo := application.NewRepository(backend, local)

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(gin.CustomRecovery(middleware.HandlePanics()))
	router.Use(middleware.Preferences())
	router.HTMLRender = web.NewRenderer()

	web.NewHandler(repo, cfg.Supabase, clients).RegisterRoutes(router)
	rest.RegisterRoutes(router, repo)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to shutdown server")
	}

	log.Info().Msg("Server stopped")
}
