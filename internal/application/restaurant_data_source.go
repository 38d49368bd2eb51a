package application

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"TripDine-App/internal/domain/helper"
	"TripDine-App/internal/domain/model"
	"TripDine-App/internal/domain/repository"
)

// RestaurantDataSource 座標周辺のレストランを取得する
type RestaurantDataSource interface {
	// Fetch は失敗しない。上流でエラーが起きた場合は参照データで代替する
	Fetch(ctx context.Context, lat, lng float64) []model.Restaurant
}

// restaurantDataSourceImpl RestaurantDataSourceの実装
type restaurantDataSourceImpl struct {
	provider repository.RestaurantSearchProvider
	fallback repository.RestaurantsRepository
	logger   *zap.Logger
}

// NewRestaurantDataSource RestaurantDataSourceの新しいインスタンスを作成
// provider が nil の場合は常に参照データを返す
func NewRestaurantDataSource(provider repository.RestaurantSearchProvider, fallback repository.RestaurantsRepository, logger *zap.Logger) RestaurantDataSource {
	return &restaurantDataSourceImpl{
		provider: provider,
		fallback: fallback,
		logger:   logger,
	}
}

// Fetch 検索を実行し、検索中心からの距離を付けて返す
func (s *restaurantDataSourceImpl) Fetch(ctx context.Context, lat, lng float64) []model.Restaurant {
	origin := model.LatLng{Lat: lat, Lng: lng}

	if s.provider != nil {
		restaurants, err := s.provider.Search(ctx, model.NewRestaurantSearchParams(lat, lng))
		if err == nil {
			return helper.AnnotateDistances(restaurants, origin)
		}
		s.logger.Warn("⚠️ レストラン検索に失敗、サンプルデータを使用",
			zap.Float64("lat", lat), zap.Float64("lng", lng), zap.Error(err))
	}

	return s.fallbackRestaurants(ctx, origin)
}

// fallbackRestaurants 参照データを検索中心からの距離順で返す
func (s *restaurantDataSourceImpl) fallbackRestaurants(ctx context.Context, origin model.LatLng) []model.Restaurant {
	restaurants, err := s.fallback.GetAll(ctx)
	if err != nil {
		s.logger.Error("❌ サンプルデータの取得に失敗", zap.Error(err))
		return []model.Restaurant{}
	}

	annotated := helper.AnnotateDistances(restaurants, origin)
	sort.SliceStable(annotated, func(i, j int) bool {
		return annotated[i].Distance < annotated[j].Distance
	})
	return annotated
}
