package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"TripDine-App/internal/application"
	"TripDine-App/internal/domain/helper"
	"TripDine-App/internal/domain/model"
	"TripDine-App/internal/domain/repository"
	"TripDine-App/internal/domain/service"
)

// TripHandler 旅程と旅の記録に関するHTTPハンドラー
type TripHandler struct {
	tripService      application.TripService
	travelLogService service.TravelLogService
	now              func() time.Time
	logger           *zap.Logger
}

// NewTripHandler TripHandlerの新しいインスタンスを作成
func NewTripHandler(tripService application.TripService, travelLogService service.TravelLogService, logger *zap.Logger) *TripHandler {
	return &TripHandler{
		tripService:      tripService,
		travelLogService: travelLogService,
		now:              time.Now,
		logger:           logger,
	}
}

// GetTrips GET /api/trips - 過去と予定の旅程一覧
func (h *TripHandler) GetTrips(c *gin.Context) {
	trips, err := h.tripService.GetTrips(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to get trips", err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// GetTripOptions GET /api/trips/options - 旅程セレクタの選択肢
func (h *TripHandler) GetTripOptions(c *gin.Context) {
	groups, err := h.tripService.GetTripOptions(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to get trip options", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// GetDefaultTrip GET /api/trips/default - 今日の日付から選んだデフォルト旅程
func (h *TripHandler) GetDefaultTrip(c *gin.Context) {
	today := h.now()
	if raw := c.Query("today"); raw != "" {
		parsed, ok := helper.ParseTripDate(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "today must be formatted as YYYY-MM-DD",
			})
			return
		}
		today = parsed
	}

	result, err := h.tripService.GetDefaultTrip(c.Request.Context(), today)
	if err != nil {
		h.internalError(c, "Failed to select default trip", err)
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "No trips available",
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetTripContext GET /api/trips/:type/:id/context - 旅程の検索コンテキスト
func (h *TripHandler) GetTripContext(c *gin.Context) {
	kind, ok := model.ParseTripKind(c.Param("type"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "type must be 'upcoming' or 'past'",
		})
		return
	}

	sc, err := h.tripService.GetSearchContext(c.Request.Context(), kind, c.Param("id"))
	switch {
	case errors.Is(err, repository.ErrTripNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "Trip not found",
		})
	case errors.Is(err, application.ErrTripWithoutLocation):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "Trip has no valid coordinates",
		})
	case err != nil:
		h.internalError(c, "Failed to build search context", err)
	default:
		c.JSON(http.StatusOK, sc)
	}
}

// GetTravelLog GET /api/travel-log - 過去の旅程から作る旅の記録
func (h *TripHandler) GetTravelLog(c *gin.Context) {
	travelLog, err := h.travelLogService.Generate(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to generate travel log", err)
		return
	}
	c.JSON(http.StatusOK, travelLog)
}

func (h *TripHandler) internalError(c *gin.Context, message string, err error) {
	h.logger.Error("❌ "+message, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "internal_error",
		"message": message + ": " + err.Error(),
	})
}
