package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"TripDine-App/internal/domain/helper"
	"TripDine-App/internal/domain/model"
	"TripDine-App/internal/domain/repository"
)

// TravelLogService 過去の旅程からトラベルログを生成するサービス
type TravelLogService interface {
	// Generate は毎回最新の過去旅程からトラベルログを作り直す
	Generate(ctx context.Context) (*model.TravelLog, error)
}

type travelLogServiceImpl struct {
	tripsRepo       repository.TripsRepository
	restaurantsRepo repository.RestaurantsRepository
}

// NewTravelLogService TravelLogServiceの新しいインスタンスを作成
func NewTravelLogService(tripsRepo repository.TripsRepository, restaurantsRepo repository.RestaurantsRepository) TravelLogService {
	return &travelLogServiceImpl{
		tripsRepo:       tripsRepo,
		restaurantsRepo: restaurantsRepo,
	}
}

// Generate トラベルログを生成する
func (s *travelLogServiceImpl) Generate(ctx context.Context) (*model.TravelLog, error) {
	past, err := s.tripsRepo.GetPastTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("過去の旅程の取得に失敗: %w", err)
	}

	var ids []string
	for _, trip := range past {
		ids = append(ids, trip.RestaurantsVisited...)
	}

	restaurants, err := s.restaurantsRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("訪問レストランの取得に失敗: %w", err)
	}

	travelLog := BuildTravelLog(past, restaurants)
	return &travelLog, nil
}

// BuildTravelLog 集計と年ごとのグループ化を行う
// 参照データに無いレストランIDは表示せずに読み飛ばす
func BuildTravelLog(past []model.Trip, restaurants map[string]model.Restaurant) model.TravelLog {
	cities := make(map[string]struct{})
	hotels := make(map[string]struct{})
	visitedCount := 0

	byYear := make(map[int][]datedLogTrip)
	for i := range past {
		trip := &past[i]
		cities[cityKey(trip)] = struct{}{}
		if trip.Hotel != "" {
			hotels[strings.ToLower(trip.Hotel)] = struct{}{}
		}
		visitedCount += len(trip.RestaurantsVisited)

		year := 0
		start, ok := helper.ParseTripDate(trip.StartDate)
		if ok {
			year = start.Year()
		}
		byYear[year] = append(byYear[year], datedLogTrip{
			startDate: trip.StartDate,
			entry:     toTravelLogTrip(trip, restaurants),
		})
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	groups := make([]model.TravelLogYear, 0, len(years))
	for _, y := range years {
		trips := byYear[y]
		// ISO日付なので文字列比較で新しい順に並べられる
		sort.SliceStable(trips, func(i, j int) bool {
			return trips[i].startDate > trips[j].startDate
		})
		entries := make([]model.TravelLogTrip, 0, len(trips))
		for _, t := range trips {
			entries = append(entries, t.entry)
		}
		groups = append(groups, model.TravelLogYear{Year: y, Trips: entries})
	}

	return model.TravelLog{
		Stats: model.TravelLogStats{
			TripCount:       len(past),
			CityCount:       len(cities),
			HotelCount:      len(hotels),
			RestaurantCount: visitedCount,
		},
		Years: groups,
	}
}

type datedLogTrip struct {
	startDate string
	entry     model.TravelLogTrip
}

func toTravelLogTrip(trip *model.Trip, restaurants map[string]model.Restaurant) model.TravelLogTrip {
	visited := make([]model.VisitedRestaurant, 0, len(trip.RestaurantsVisited))
	for _, id := range trip.RestaurantsVisited {
		r, ok := restaurants[id]
		if !ok {
			continue
		}
		visited = append(visited, model.VisitedRestaurant{
			ID:     r.ID,
			Name:   r.Name,
			Rating: r.Rating,
			Price:  r.Price,
		})
	}

	return model.TravelLogTrip{
		TripID:      trip.ID,
		City:        trip.City,
		State:       trip.State,
		Hotel:       trip.Hotel,
		Purpose:     trip.Purpose,
		DateRange:   helper.FormatDateRange(trip.StartDate, trip.EndDate),
		Restaurants: visited,
	}
}

func cityKey(trip *model.Trip) string {
	return strings.ToLower(strings.Join([]string{trip.City, trip.State, trip.Country}, "|"))
}
