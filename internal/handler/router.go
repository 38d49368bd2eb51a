package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const serviceName = "TripDine-App"

// Health GET /api/health - ヘルスチェック
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
	})
}

// NewRouter APIルートと静的ファイル配信を設定したルーターを作成
func NewRouter(restaurants *RestaurantHandler, trips *TripHandler, staticDir string, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	api := router.Group("/api")
	{
		api.GET("/health", Health)
		api.POST("/yelp/search", restaurants.SearchYelp)
		api.GET("/restaurants/nearby", restaurants.GetNearby)

		api.GET("/trips", trips.GetTrips)
		api.GET("/trips/options", trips.GetTripOptions)
		api.GET("/trips/default", trips.GetDefaultTrip)
		api.GET("/trips/:type/:id/context", trips.GetTripContext)
		api.GET("/travel-log", trips.GetTravelLog)
	}

	router.NoRoute(staticFiles(staticDir))
	return router
}

// staticFiles APIに一致しないパスを静的ファイルとして配信する。存在しないパスは index.html を返す
func staticFiles(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": "Unknown API endpoint",
			})
			return
		}

		path := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}

		index := filepath.Join(staticDir, "index.html")
		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}
		c.Status(http.StatusNotFound)
	}
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()))
	}
}
