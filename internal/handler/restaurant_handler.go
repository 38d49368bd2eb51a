package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"TripDine-App/internal/application"
	"TripDine-App/internal/domain/model"
	"TripDine-App/internal/infrastructure/yelp"
)

// RestaurantHandler レストラン検索に関するHTTPハンドラー
type RestaurantHandler struct {
	proxyService application.RestaurantProxyService
	dataSource   application.RestaurantDataSource
	validate     *validator.Validate
	logger       *zap.Logger
}

// NewRestaurantHandler RestaurantHandlerの新しいインスタンスを作成
func NewRestaurantHandler(proxyService application.RestaurantProxyService, dataSource application.RestaurantDataSource, logger *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		proxyService: proxyService,
		dataSource:   dataSource,
		validate:     validator.New(),
		logger:       logger,
	}
}

// SearchYelp POST /api/yelp/search - 上流のレストラン検索を中継
func (h *RestaurantHandler) SearchYelp(c *gin.Context) {
	var req model.RestaurantSearchRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": validationMessage(err),
		})
		return
	}

	body, cached, err := h.proxyService.Search(c.Request.Context(), req.Params())
	if err != nil {
		h.respondSearchError(c, err)
		return
	}

	if cached {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (h *RestaurantHandler) respondSearchError(c *gin.Context, err error) {
	var upstreamErr *yelp.UpstreamError

	switch {
	case errors.Is(err, yelp.ErrMissingAPIKey):
		h.logger.Error("❌ Yelp APIキーが設定されていません")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "service_unavailable",
			"message": "Restaurant search is not configured on this server",
		})
	case errors.As(err, &upstreamErr) && upstreamErr.StatusCode >= 400 && upstreamErr.StatusCode < 500:
		h.logger.Warn("⚠️ 上流がリクエストを拒否", zap.Int("status", upstreamErr.StatusCode))
		c.JSON(upstreamErr.StatusCode, gin.H{
			"error":   "upstream_rejected",
			"message": string(upstreamErr.Body),
		})
	default:
		h.logger.Error("❌ レストラン検索に失敗", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "upstream_error",
			"message": "Failed to fetch restaurants: " + err.Error(),
		})
	}
}

// GetNearby GET /api/restaurants/nearby - 座標周辺のレストランを取得（上流が失敗した場合は参照データ）
func (h *RestaurantHandler) GetNearby(c *gin.Context) {
	lat, errLat := parseCoordinate(c.Query("lat"), 90)
	lng, errLng := parseCoordinate(c.Query("lng"), 180)
	if errLat != nil || errLng != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "lat and lng must be finite numbers within range",
		})
		return
	}

	restaurants := h.dataSource.Fetch(c.Request.Context(), lat, lng)
	c.JSON(http.StatusOK, model.RestaurantSearchResponse{
		Businesses: restaurants,
		Total:      len(restaurants),
	})
}

var errInvalidCoordinate = errors.New("invalid coordinate")

func parseCoordinate(raw string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < -limit || v > limit {
		return 0, errInvalidCoordinate
	}
	return v, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "min", "max":
		return fe.Field() + " is out of range (" + fe.Tag() + "=" + fe.Param() + ")"
	default:
		return fe.Field() + " is invalid"
	}
}
