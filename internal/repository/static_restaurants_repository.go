package repository

import (
	"context"

	"TripDine-App/internal/domain/model"
	"TripDine-App/internal/domain/repository"
)

// StaticRestaurantsRepository メモリ上のレストラン参照データ
type StaticRestaurantsRepository struct {
	restaurants []model.Restaurant
	byID        map[string]model.Restaurant
}

// NewStaticRestaurantsRepository 指定したレストランを返すリポジトリを作成
func NewStaticRestaurantsRepository(restaurants []model.Restaurant) repository.RestaurantsRepository {
	byID := make(map[string]model.Restaurant, len(restaurants))
	for _, r := range restaurants {
		byID[r.ID] = r
	}
	return &StaticRestaurantsRepository{restaurants: restaurants, byID: byID}
}

// NewSampleRestaurantsRepository 同梱のサンプルレストランを返すリポジトリを作成
func NewSampleRestaurantsRepository() (repository.RestaurantsRepository, error) {
	restaurants, err := LoadSampleRestaurants()
	if err != nil {
		return nil, err
	}
	return NewStaticRestaurantsRepository(restaurants), nil
}

func (r *StaticRestaurantsRepository) GetAll(ctx context.Context) ([]model.Restaurant, error) {
	result := make([]model.Restaurant, len(r.restaurants))
	copy(result, r.restaurants)
	return result, nil
}

func (r *StaticRestaurantsRepository) GetByIDs(ctx context.Context, ids []string) (map[string]model.Restaurant, error) {
	result := make(map[string]model.Restaurant, len(ids))
	for _, id := range ids {
		if rest, ok := r.byID[id]; ok {
			result[id] = rest
		}
	}
	return result, nil
}
