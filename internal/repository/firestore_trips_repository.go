package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"TripDine-App/internal/domain/model"
	"TripDine-App/internal/domain/repository"
)

const (
	pastTripsCollection     = "pastTrips"
	upcomingTripsCollection = "upcomingTrips"
)

// FirestoreTripsRepository Firestoreの旅程コレクションを読むリポジトリ
// 過去と予定は別コレクションに保存されている
type FirestoreTripsRepository struct {
	client *firestore.Client
}

// NewFirestoreTripsRepository 新しいFirestoreTripsRepositoryインスタンスを作成
func NewFirestoreTripsRepository(client *firestore.Client) repository.TripsRepository {
	return &FirestoreTripsRepository{
		client: client,
	}
}

func (r *FirestoreTripsRepository) GetPastTrips(ctx context.Context) ([]model.Trip, error) {
	return r.getAll(ctx, pastTripsCollection)
}

func (r *FirestoreTripsRepository) GetUpcomingTrips(ctx context.Context) ([]model.Trip, error) {
	return r.getAll(ctx, upcomingTripsCollection)
}

func (r *FirestoreTripsRepository) getAll(ctx context.Context, collection string) ([]model.Trip, error) {
	docs, err := r.client.Collection(collection).OrderBy("startDate", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("旅程の取得に失敗しました (%s): %w", collection, err)
	}

	trips := make([]model.Trip, 0, len(docs))
	for _, doc := range docs {
		var trip model.Trip
		if err := doc.DataTo(&trip); err != nil {
			return nil, fmt.Errorf("データの変換に失敗しました (%s): %w", doc.Ref.ID, err)
		}
		if trip.ID == "" {
			trip.ID = doc.Ref.ID
		}
		trips = append(trips, trip)
	}

	return trips, nil
}
