package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"poi-api/internal/config"
	"poi-api/internal/handler"
	"poi-api/internal/logging"
	"poi-api/internal/provider"
	"poi-api/internal/repository"
	"poi-api/internal/server"
	"poi-api/internal/service"
	"poi-api/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

//	@title		POI API
//	@version	1.0
//	@BasePath	/

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	if err := logging.Setup(config.LogLevel, config.LogFormat); err != nil {
		log.Fatal().Err(err).Msg("cannot configure logging")
	}
	if err := config.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	if config.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	uploads, err := storage.NewLocal(config.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot prepare upload folder")
	}

	// Provider adapters
	openAI := provider.NewOpenAI(&config)
	gemini := provider.NewGemini(&config)
	cloudflare := provider.NewCloudflare(&config)
	vision := provider.NewGoogleVision(&config)
	geocoder := provider.NewGoogleGeocoder(&config)

	// Initialize layers
	poiService := service.NewPOIService(uploads, service.POIBackends{
		OCR:      vision,
		Geocoder: geocoder,
		VisualA:  gemini,
		VisualB:  openAI,
		TextA:    openAI,
		TextB:    gemini,
	}, config.POIConcurrent)
	extService := service.NewExtService(uploads, service.ExtBackends{
		Vision:   vision,
		Geocoder: geocoder,
		GPT:      openAI,
		Gemini:   gemini,
		Llama:    cloudflare,
		Embedder: cloudflare,
	})

	handlers := server.Handlers{
		POI: handler.NewPOIHandler(poiService, uploads),
		Ext: handler.NewExtHandler(extService, uploads),
	}

	// Database connection is optional; without it the store routes are not mounted
	if config.DBSource != "" {
		conn, err := repository.Open(context.Background(), config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		storeService := service.NewStoreService(
			repository.NewKeyValueRepository(conn),
			repository.NewVectorRepository(conn),
			cloudflare,
		)
		handlers.Store = handler.NewStoreHandler(storeService)
	} else {
		log.Warn().Msg("DB_SOURCE is empty, store routes disabled")
	}

	srv := &http.Server{
		Addr:    config.ServerAddress,
		Handler: server.NewRouter(handlers, config.AllowedOrigin),
	}

	go func() {
		log.Info().Str("addr", config.ServerAddress).Bool("poi_concurrent", config.POIConcurrent).Msg("starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exited")
}
