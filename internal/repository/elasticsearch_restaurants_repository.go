package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"TripDine-App/internal/domain/model"
	"TripDine-App/internal/domain/repository"
	"TripDine-App/internal/infrastructure/search"
)

const maxReferenceRestaurants = 1000

// ElasticsearchRestaurantsRepository Elasticsearchのインデックスからレストラン参照データを読む
type ElasticsearchRestaurantsRepository struct {
	client *search.ElasticsearchClient
}

func NewElasticsearchRestaurantsRepository(client *search.ElasticsearchClient) repository.RestaurantsRepository {
	return &ElasticsearchRestaurantsRepository{
		client: client,
	}
}

type esSearchResponse struct {
	Hits struct {
		Hits []struct {
			Source model.Restaurant `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (r *ElasticsearchRestaurantsRepository) GetAll(ctx context.Context) ([]model.Restaurant, error) {
	query := map[string]interface{}{
		"size": maxReferenceRestaurants,
		"query": map[string]interface{}{
			"match_all": map[string]interface{}{},
		},
	}
	return r.search(ctx, query)
}

func (r *ElasticsearchRestaurantsRepository) GetByIDs(ctx context.Context, ids []string) (map[string]model.Restaurant, error) {
	result := make(map[string]model.Restaurant, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := map[string]interface{}{
		"size": len(ids),
		"query": map[string]interface{}{
			"terms": map[string]interface{}{
				"id": ids,
			},
		},
	}
	restaurants, err := r.search(ctx, query)
	if err != nil {
		return nil, err
	}
	for _, rest := range restaurants {
		result[rest.ID] = rest
	}
	return result, nil
}

func (r *ElasticsearchRestaurantsRepository) search(ctx context.Context, query map[string]interface{}) ([]model.Restaurant, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("クエリのシリアライズに失敗: %w", err)
	}

	es := r.client.Client
	resp, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(r.client.Index),
		es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("レストラン検索に失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("レストラン検索エラー: %s", resp.Status())
	}

	var searchResult esSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResult); err != nil {
		return nil, fmt.Errorf("検索結果のパースに失敗: %w", err)
	}

	restaurants := make([]model.Restaurant, 0, len(searchResult.Hits.Hits))
	for _, hit := range searchResult.Hits.Hits {
		restaurants = append(restaurants, hit.Source)
	}
	return restaurants, nil
}
