package repository

import (
	"context"
	"errors"

	"TripDine-App/internal/domain/model"
)

// ErrTripNotFound 指定された旅程が存在しない
var ErrTripNotFound = errors.New("trip not found")

// TripsRepository 過去・予定の旅程への読み取り専用アクセス
type TripsRepository interface {
	GetPastTrips(ctx context.Context) ([]model.Trip, error)
	GetUpcomingTrips(ctx context.Context) ([]model.Trip, error)
}
