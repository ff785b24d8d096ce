package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	appservices "github.com/daxdesai/Closetly/internal/application/services"
	"github.com/daxdesai/Closetly/internal/application/usecases"
	"github.com/daxdesai/Closetly/internal/config"
	domainservices "github.com/daxdesai/Closetly/internal/domain/services"
	"github.com/daxdesai/Closetly/internal/infrastructure/api"
	"github.com/daxdesai/Closetly/internal/infrastructure/external"
	"github.com/daxdesai/Closetly/internal/infrastructure/rendering"
	"github.com/daxdesai/Closetly/internal/infrastructure/repositories"
	infraservices "github.com/daxdesai/Closetly/internal/infrastructure/services"
)

func main() {
	cfg := config.Load()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if cfg.Env == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	logger.Info().
		Bool("remote_enabled", cfg.RemoteEnabled()).
		Str("image_model", cfg.ImageModel).
		Msg("booting")

	// Infrastructure layer.
	pool := infraservices.NewGenAIClientPool(cfg.GeminiAPIKey)
	remote := external.NewGeminiGenerativeService(pool, cfg.ImageModel, cfg.GeminiAPIKey, logger)
	defer remote.Close()

	compositor := rendering.NewCompositor(logger)
	wardrobe := repositories.NewMemoryWardrobeRepository()
	defer wardrobe.Close()

	// Domain layer.
	tryOnService := domainservices.NewTryOnService(remote, compositor, logger)

	// Application layer.
	tryOnUseCase := usecases.NewTryOnUseCase(tryOnService, logger)
	wardrobeUseCase := usecases.NewWardrobeUseCase(wardrobe)
	parameterService := appservices.NewParameterService()

	// API layer.
	handler := api.NewTryOnHandler(tryOnUseCase, wardrobeUseCase, parameterService, logger)

	r := mux.NewRouter()
	handler.Register(r)

	logger.Info().Str("port", cfg.Port).Msg("starting server")
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
