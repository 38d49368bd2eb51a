package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"TripDine-App/internal/domain/model"
	"TripDine-App/internal/domain/repository"
	"TripDine-App/internal/infrastructure/database"
)

type SupabaseTripsRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseTripsRepository(client *database.SupabaseClient) repository.TripsRepository {
	return &SupabaseTripsRepository{
		client: client,
	}
}

// TripDB trips テーブルの JSON 表現
type TripDB struct {
	ID                    string              `json:"id"`
	Kind                  string              `json:"kind"`
	City                  string              `json:"city"`
	State                 string              `json:"state"`
	Country               string              `json:"country"`
	Latitude              *float64            `json:"latitude"`
	Longitude             *float64            `json:"longitude"`
	StartDate             string              `json:"start_date"`
	EndDate               string              `json:"end_date"`
	Purpose               string              `json:"purpose"`
	Hotel                 string              `json:"hotel"`
	RestaurantsVisited    []string            `json:"restaurants_visited"`
	ConfirmedReservations []model.Reservation `json:"confirmed_reservations"`
}

// ToTrip TripDB を model.Trip に変換
func (t *TripDB) ToTrip() model.Trip {
	trip := model.Trip{
		ID:                    t.ID,
		City:                  t.City,
		State:                 t.State,
		Country:               t.Country,
		StartDate:             t.StartDate,
		EndDate:               t.EndDate,
		Purpose:               t.Purpose,
		Hotel:                 t.Hotel,
		RestaurantsVisited:    t.RestaurantsVisited,
		ConfirmedReservations: t.ConfirmedReservations,
	}
	if t.Latitude != nil && t.Longitude != nil {
		trip.Coordinates = &model.Coordinates{Latitude: *t.Latitude, Longitude: *t.Longitude}
	}
	return trip
}

func (r *SupabaseTripsRepository) GetPastTrips(ctx context.Context) ([]model.Trip, error) {
	return r.getByKind(model.TripKindPast)
}

func (r *SupabaseTripsRepository) GetUpcomingTrips(ctx context.Context) ([]model.Trip, error) {
	return r.getByKind(model.TripKindUpcoming)
}

func (r *SupabaseTripsRepository) getByKind(kind model.TripKind) ([]model.Trip, error) {
	data, _, err := r.client.GetClient().From("trips").
		Select("*", "exact", false).
		Eq("kind", string(kind)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("旅程データの取得失敗 (%s): %w", kind, err)
	}

	var rows []TripDB
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("旅程データのJSONアンマーシャル失敗: %w", err)
	}

	trips := make([]model.Trip, 0, len(rows))
	for i := range rows {
		trips = append(trips, rows[i].ToTrip())
	}
	return trips, nil
}
