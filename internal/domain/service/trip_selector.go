package service

import (
	"fmt"
	"sort"
	"time"

	"TripDine-App/internal/domain/helper"
	"TripDine-App/internal/domain/model"
)

const (
	upcomingGroupLabel = "Upcoming Trips"
	pastGroupLabel     = "Past Trips"
)

// TripSelector 旅程一覧からデフォルトの旅程を選び、旅程を SearchContext に変換する
type TripSelector struct {
	past     []model.Trip
	upcoming []model.Trip
}

// NewTripSelector TripSelectorの新しいインスタンスを作成
func NewTripSelector(trips model.TripCollections) *TripSelector {
	return &TripSelector{
		past:     trips.Past,
		upcoming: trips.Upcoming,
	}
}

// Trips 種別に対応する旅程一覧を取得する
func (s *TripSelector) Trips(kind model.TripKind) []model.Trip {
	if kind == model.TripKindPast {
		return s.past
	}
	return s.upcoming
}

// Find 種別とIDで旅程を検索する（IDは種別の中でのみ一意）
func (s *TripSelector) Find(kind model.TripKind, tripID string) (*model.Trip, bool) {
	trips := s.Trips(kind)
	for i := range trips {
		if trips[i].ID == tripID {
			return &trips[i], true
		}
	}
	return nil, false
}

// DefaultTrip デフォルトで選択する旅程を決める
//  1. 開始日が今日以降の予定の旅程のうち最も早いもの
//  2. なければ予定の旅程のうち開始日が最も早いもの
//  3. 予定の旅程が無ければ、開始日が最も新しい過去の旅程
func (s *TripSelector) DefaultTrip(today time.Time) (*model.Trip, model.TripKind, bool) {
	if len(s.upcoming) > 0 {
		todayDay := helper.TruncateToDay(today)
		dated := datedTrips(s.upcoming)

		for _, d := range dated {
			if !d.start.Before(todayDay) {
				return d.trip, model.TripKindUpcoming, true
			}
		}
		if len(dated) > 0 {
			return dated[0].trip, model.TripKindUpcoming, true
		}
		return &s.upcoming[0], model.TripKindUpcoming, true
	}

	if len(s.past) > 0 {
		dated := datedTrips(s.past)
		if len(dated) > 0 {
			return dated[len(dated)-1].trip, model.TripKindPast, true
		}
		return &s.past[0], model.TripKindPast, true
	}

	return nil, "", false
}

// DefaultContext デフォルト旅程の SearchContext を作成する
func (s *TripSelector) DefaultContext(today time.Time) (model.SearchContext, bool) {
	trip, kind, ok := s.DefaultTrip(today)
	if !ok {
		return model.SearchContext{}, false
	}
	return s.Select(kind, trip.ID)
}

// Select 旅程を SearchContext に変換する
// 旅程が見つからない、または座標が有限でない場合は false
func (s *TripSelector) Select(kind model.TripKind, tripID string) (model.SearchContext, bool) {
	trip, ok := s.Find(kind, tripID)
	if !ok {
		return model.SearchContext{}, false
	}
	location, ok := trip.Location()
	if !ok {
		return model.SearchContext{}, false
	}

	label := fmt.Sprintf("%s • %s", trip.Hotel, helper.FormatDateRange(trip.StartDate, trip.EndDate))
	return model.NewSearchContext(model.OriginForTripKind(kind), trip.ID, location, label), true
}

// BuildOptions セレクタの選択肢を作成する（予定のグループが先）
func (s *TripSelector) BuildOptions() []model.TripOptionGroup {
	groups := make([]model.TripOptionGroup, 0, 2)
	if len(s.upcoming) > 0 {
		groups = append(groups, buildOptionGroup(model.TripKindUpcoming, upcomingGroupLabel, s.upcoming))
	}
	if len(s.past) > 0 {
		groups = append(groups, buildOptionGroup(model.TripKindPast, pastGroupLabel, s.past))
	}
	return groups
}

// OptionLabel 選択肢のラベル "{hotel} ({city}) — {dateRange}"
func OptionLabel(trip *model.Trip) string {
	return fmt.Sprintf("%s (%s) — %s", trip.Hotel, trip.City, helper.FormatDateRange(trip.StartDate, trip.EndDate))
}

func buildOptionGroup(kind model.TripKind, label string, trips []model.Trip) model.TripOptionGroup {
	options := make([]model.TripOption, 0, len(trips))
	for i := range trips {
		options = append(options, model.TripOption{
			Kind:   kind,
			TripID: trips[i].ID,
			Label:  OptionLabel(&trips[i]),
		})
	}
	return model.TripOptionGroup{Kind: kind, Label: label, Options: options}
}

type datedTrip struct {
	trip  *model.Trip
	start time.Time
}

// datedTrips 開始日が解析できる旅程を開始日の昇順で返す
func datedTrips(trips []model.Trip) []datedTrip {
	result := make([]datedTrip, 0, len(trips))
	for i := range trips {
		start, ok := helper.ParseTripDate(trips[i].StartDate)
		if !ok {
			continue
		}
		result = append(result, datedTrip{trip: &trips[i], start: start})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].start.Before(result[j].start)
	})
	return result
}
