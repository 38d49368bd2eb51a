package repository

import (
	"context"

	"TripDine-App/internal/domain/model"
	"TripDine-App/internal/domain/repository"
)

// StaticTripsRepository メモリ上の旅程を返すリポジトリ
type StaticTripsRepository struct {
	trips model.TripCollections
}

// NewStaticTripsRepository 指定した旅程を返すリポジトリを作成
func NewStaticTripsRepository(trips model.TripCollections) repository.TripsRepository {
	return &StaticTripsRepository{trips: trips}
}

// NewSampleTripsRepository 同梱のサンプル旅程を返すリポジトリを作成
func NewSampleTripsRepository() (repository.TripsRepository, error) {
	trips, err := LoadSampleTrips()
	if err != nil {
		return nil, err
	}
	return NewStaticTripsRepository(trips), nil
}

func (r *StaticTripsRepository) GetPastTrips(ctx context.Context) ([]model.Trip, error) {
	return r.trips.Past, nil
}

func (r *StaticTripsRepository) GetUpcomingTrips(ctx context.Context) ([]model.Trip, error) {
	return r.trips.Upcoming, nil
}
