package repository

import (
	"context"

	"TripDine-App/internal/domain/model"
)

// RestaurantsRepository レストランの参照データ
// トラベルログの名前解決と、外部検索失敗時のフォールバックに使う
type RestaurantsRepository interface {
	GetAll(ctx context.Context) ([]model.Restaurant, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]model.Restaurant, error)
}

// RestaurantSearchProvider 外部のレストラン検索API
type RestaurantSearchProvider interface {
	// SearchRaw は上流のレスポンスボディをそのまま返す（プロキシ用）
	SearchRaw(ctx context.Context, params model.RestaurantSearchParams) ([]byte, error)
	// Search は上流のレスポンスをドメインモデルに変換して返す
	Search(ctx context.Context, params model.RestaurantSearchParams) ([]model.Restaurant, error)
}
