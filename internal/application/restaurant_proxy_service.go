package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"TripDine-App/internal/domain/model"
	"TripDine-App/internal/domain/repository"
)

// SearchCache 上流の検索レスポンスを保持するキャッシュ
type SearchCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, body []byte)
}

// RestaurantProxyService APIキーを隠したまま上流のレストラン検索を中継するサービス
type RestaurantProxyService interface {
	// Search は上流のレスポンスボディをそのまま返す。cached はキャッシュから返した場合 true
	Search(ctx context.Context, params model.RestaurantSearchParams) (body []byte, cached bool, err error)
}

// restaurantProxyServiceImpl RestaurantProxyServiceの実装
type restaurantProxyServiceImpl struct {
	provider repository.RestaurantSearchProvider
	cache    SearchCache
	logger   *zap.Logger
}

// NewRestaurantProxyService RestaurantProxyServiceの新しいインスタンスを作成
// cache が nil の場合は毎回上流を呼び出す
func NewRestaurantProxyService(provider repository.RestaurantSearchProvider, cache SearchCache, logger *zap.Logger) RestaurantProxyService {
	return &restaurantProxyServiceImpl{
		provider: provider,
		cache:    cache,
		logger:   logger,
	}
}

func (s *restaurantProxyServiceImpl) Search(ctx context.Context, params model.RestaurantSearchParams) ([]byte, bool, error) {
	key := params.CacheKey()
	if s.cache != nil {
		if body, found := s.cache.Get(key); found {
			s.logger.Debug("検索キャッシュにヒット", zap.String("key", key))
			return body, true, nil
		}
	}

	body, err := s.provider.SearchRaw(ctx, params)
	if err != nil {
		return nil, false, fmt.Errorf("レストラン検索に失敗: %w", err)
	}

	if s.cache != nil {
		s.cache.Set(key, body)
	}
	s.logger.Info("🔍 レストラン検索を中継",
		zap.Float64("lat", params.Latitude), zap.Float64("lng", params.Longitude),
		zap.Int("radius", params.Radius), zap.Int("bytes", len(body)))
	return body, false, nil
}
