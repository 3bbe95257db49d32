// Package server assembles the gin engine.
package server

import (
	"net/http"
	"time"

	_ "poi-api/docs"
	"poi-api/internal/handler"
	"poi-api/internal/logging"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups the route handlers. Store is nil when no database is configured.
type Handlers struct {
	POI   *handler.POIHandler
	Ext   *handler.ExtHandler
	Store *handler.StoreHandler
}

// NewRouter wires every route onto a new engine.
func NewRouter(h Handlers, allowedOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging.Middleware())
	r.Use(cors.New(corsConfig(allowedOrigin)))
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, handler.Envelope{Status: "success", Message: "POI API is alive"})
	})

	v1 := api.Group("/v1")

	ext := v1.Group("/ext")
	ext.POST("/text_gpt", h.Ext.TextGPT)
	ext.POST("/text_llama", h.Ext.TextLlama)
	ext.POST("/text_gemini", h.Ext.TextGemini)
	ext.POST("/visual_gpt", h.Ext.VisualGPT)
	ext.POST("/visual_gemini", h.Ext.VisualGemini)
	ext.POST("/vision", h.Ext.Vision)
	ext.POST("/embedding", h.Ext.Embedding)
	ext.GET("/geocoding", h.Ext.Geocoding)

	poi := v1.Group("/poi")
	poi.POST("/from_image", h.POI.FromImage)

	if h.Store != nil {
		store := v1.Group("/store")
		store.POST("/kv", h.Store.PutDocuments)
		store.GET("/kv", h.Store.ListDocuments)
		store.GET("/kv/:id", h.Store.GetDocument)
		store.POST("/vectors", h.Store.StoreVectors)
		store.GET("/vectors/search", h.Store.SearchVectors)
		store.GET("/vectors/:id/neighbors", h.Store.Neighbors)
	}

	return r
}

// corsConfig allows allowedOrigin, or every origin when it is "*".
func corsConfig(allowedOrigin string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization", logging.RequestIDHeader},
		ExposeHeaders: []string{logging.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if allowedOrigin == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{allowedOrigin}
	}
	return cfg
}
