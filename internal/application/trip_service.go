package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"TripDine-App/internal/domain/model"
	"TripDine-App/internal/domain/repository"
	"TripDine-App/internal/domain/service"
)

// ErrTripWithoutLocation 旅程に有効な座標が無い
var ErrTripWithoutLocation = errors.New("trip has no valid coordinates")

// DefaultTripResult デフォルト旅程とその検索コンテキスト
type DefaultTripResult struct {
	Kind    model.TripKind      `json:"kind"`
	Trip    model.Trip          `json:"trip"`
	Context model.SearchContext `json:"context"`
}

// TripService 旅程の一覧・選択肢・検索コンテキストを提供するサービス
type TripService interface {
	// GetTrips 過去と予定の旅程を取得
	GetTrips(ctx context.Context) (model.TripCollections, error)

	// GetTripOptions 旅程セレクタの選択肢を取得（予定のグループが先）
	GetTripOptions(ctx context.Context) ([]model.TripOptionGroup, error)

	// GetDefaultTrip 今日の日付からデフォルト旅程を決める。旅程が1件も無い場合は nil
	GetDefaultTrip(ctx context.Context, today time.Time) (*DefaultTripResult, error)

	// GetSearchContext 旅程を検索コンテキストに変換する
	GetSearchContext(ctx context.Context, kind model.TripKind, tripID string) (*model.SearchContext, error)
}

// tripServiceImpl TripServiceの実装
type tripServiceImpl struct {
	tripsRepo repository.TripsRepository
}

// NewTripService TripServiceの新しいインスタンスを作成
func NewTripService(tripsRepo repository.TripsRepository) TripService {
	return &tripServiceImpl{
		tripsRepo: tripsRepo,
	}
}

func (s *tripServiceImpl) GetTrips(ctx context.Context) (model.TripCollections, error) {
	past, err := s.tripsRepo.GetPastTrips(ctx)
	if err != nil {
		return model.TripCollections{}, fmt.Errorf("過去の旅程の取得に失敗: %w", err)
	}
	upcoming, err := s.tripsRepo.GetUpcomingTrips(ctx)
	if err != nil {
		return model.TripCollections{}, fmt.Errorf("予定の旅程の取得に失敗: %w", err)
	}

	if past == nil {
		past = []model.Trip{}
	}
	if upcoming == nil {
		upcoming = []model.Trip{}
	}
	return model.TripCollections{Past: past, Upcoming: upcoming}, nil
}

func (s *tripServiceImpl) selector(ctx context.Context) (*service.TripSelector, error) {
	trips, err := s.GetTrips(ctx)
	if err != nil {
		return nil, err
	}
	return service.NewTripSelector(trips), nil
}

func (s *tripServiceImpl) GetTripOptions(ctx context.Context) ([]model.TripOptionGroup, error) {
	selector, err := s.selector(ctx)
	if err != nil {
		return nil, err
	}
	return selector.BuildOptions(), nil
}

func (s *tripServiceImpl) GetDefaultTrip(ctx context.Context, today time.Time) (*DefaultTripResult, error) {
	selector, err := s.selector(ctx)
	if err != nil {
		return nil, err
	}

	trip, kind, ok := selector.DefaultTrip(today)
	if !ok {
		return nil, nil
	}

	result := &DefaultTripResult{Kind: kind, Trip: *trip}
	if sc, ok := selector.Select(kind, trip.ID); ok {
		result.Context = sc
	}
	return result, nil
}

func (s *tripServiceImpl) GetSearchContext(ctx context.Context, kind model.TripKind, tripID string) (*model.SearchContext, error) {
	selector, err := s.selector(ctx)
	if err != nil {
		return nil, err
	}

	if _, found := selector.Find(kind, tripID); !found {
		return nil, fmt.Errorf("旅程 %s/%s: %w", kind, tripID, repository.ErrTripNotFound)
	}
	sc, ok := selector.Select(kind, tripID)
	if !ok {
		return nil, fmt.Errorf("旅程 %s/%s: %w", kind, tripID, ErrTripWithoutLocation)
	}
	return &sc, nil
}
