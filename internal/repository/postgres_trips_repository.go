package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"TripDine-App/internal/domain/model"
	"TripDine-App/internal/domain/repository"
	"TripDine-App/internal/infrastructure/database"
)

type PostgresTripsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresTripsRepository(client *database.PostgreSQLClient) repository.TripsRepository {
	return &PostgresTripsRepository{
		client: client,
	}
}

// TripRow trips テーブルの1行
type TripRow struct {
	ID                    string
	City                  string
	State                 sql.NullString
	Country               sql.NullString
	Latitude              sql.NullFloat64
	Longitude             sql.NullFloat64
	StartDate             string
	EndDate               string
	Purpose               sql.NullString
	Hotel                 string
	RestaurantsVisited    []byte
	ConfirmedReservations []byte
}

// ToTrip TripRowをmodel.Tripに変換
func (tr *TripRow) ToTrip() (model.Trip, error) {
	trip := model.Trip{
		ID:        tr.ID,
		City:      tr.City,
		State:     tr.State.String,
		Country:   tr.Country.String,
		StartDate: tr.StartDate,
		EndDate:   tr.EndDate,
		Purpose:   tr.Purpose.String,
		Hotel:     tr.Hotel,
	}

	if tr.Latitude.Valid && tr.Longitude.Valid {
		trip.Coordinates = &model.Coordinates{Latitude: tr.Latitude.Float64, Longitude: tr.Longitude.Float64}
	}

	if len(tr.RestaurantsVisited) > 0 {
		if err := json.Unmarshal(tr.RestaurantsVisited, &trip.RestaurantsVisited); err != nil {
			return model.Trip{}, fmt.Errorf("restaurants_visited JSONBパースエラー: %w", err)
		}
	}
	if len(tr.ConfirmedReservations) > 0 {
		if err := json.Unmarshal(tr.ConfirmedReservations, &trip.ConfirmedReservations); err != nil {
			return model.Trip{}, fmt.Errorf("confirmed_reservations JSONBパースエラー: %w", err)
		}
	}

	return trip, nil
}

func (r *PostgresTripsRepository) GetPastTrips(ctx context.Context) ([]model.Trip, error) {
	return r.getByKind(ctx, model.TripKindPast)
}

func (r *PostgresTripsRepository) GetUpcomingTrips(ctx context.Context) ([]model.Trip, error) {
	return r.getByKind(ctx, model.TripKindUpcoming)
}

func (r *PostgresTripsRepository) getByKind(ctx context.Context, kind model.TripKind) ([]model.Trip, error) {
	query := `
		SELECT
			id, city, state, country, latitude, longitude,
			to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
			purpose, hotel, restaurants_visited, confirmed_reservations
		FROM trips
		WHERE kind = $1
		ORDER BY start_date
	`

	rows, err := r.client.DB.QueryContext(ctx, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("旅程データの取得失敗 (%s): %w", kind, err)
	}
	defer rows.Close()

	trips := []model.Trip{}
	for rows.Next() {
		var row TripRow
		err := rows.Scan(&row.ID, &row.City, &row.State, &row.Country, &row.Latitude, &row.Longitude,
			&row.StartDate, &row.EndDate, &row.Purpose, &row.Hotel, &row.RestaurantsVisited, &row.ConfirmedReservations)
		if err != nil {
			return nil, fmt.Errorf("旅程データスキャンエラー: %w", err)
		}

		trip, err := row.ToTrip()
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("旅程データ読み込みエラー: %w", err)
	}

	return trips, nil
}
