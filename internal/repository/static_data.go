package repository

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"TripDine-App/internal/domain/model"
)

//go:embed data/trips.json
var tripsJSON []byte

//go:embed data/restaurants.json
var restaurantsJSON []byte

// LoadSampleTrips 同梱のサンプル旅程を読み込む
func LoadSampleTrips() (model.TripCollections, error) {
	var trips model.TripCollections
	if err := json.Unmarshal(tripsJSON, &trips); err != nil {
		return model.TripCollections{}, fmt.Errorf("サンプル旅程のJSONパースエラー: %w", err)
	}
	return trips, nil
}

// LoadSampleRestaurants 同梱のサンプルレストランを読み込む
func LoadSampleRestaurants() ([]model.Restaurant, error) {
	var restaurants []model.Restaurant
	if err := json.Unmarshal(restaurantsJSON, &restaurants); err != nil {
		return nil, fmt.Errorf("サンプルレストランのJSONパースエラー: %w", err)
	}
	return restaurants, nil
}
