package mapview

import (
	"fmt"
	"strings"

	"TripDine-App/internal/domain/helper"
	"TripDine-App/internal/domain/model"
)

// マーカーの色
const (
	RestaurantColor   = "#e11d48"
	SearchCenterColor = "#2563eb"
	PastTripColor     = "#7c3aed"
	UpcomingTripColor = "#0891b2"
	NearbyVenueColor  = "#f59e0b"
)

const searchCenterKey = "search-center"

// TripMarkerKey 旅程マーカーのキー（旅程IDは種別内でのみ一意）
func TripMarkerKey(kind model.TripKind, tripID string) string {
	return string(kind) + ":" + tripID
}

// RestaurantMarkers 検索結果をマーカーに変換する
// 座標の無いレストランは除外する
func RestaurantMarkers(restaurants []model.Restaurant) []MarkerSpec {
	specs := make([]MarkerSpec, 0, len(restaurants))
	for i := range restaurants {
		r := &restaurants[i]
		p, ok := r.Position()
		if !ok {
			continue
		}
		specs = append(specs, MarkerSpec{
			Key:      r.ID,
			Kind:     MarkerRestaurant,
			Position: p,
			Title:    r.Name,
			Popup:    restaurantPopup(r),
			Color:    RestaurantColor,
		})
	}
	return specs
}

// TripMarkers 過去と予定の旅程をマーカーに変換する
// 座標の無い旅程は除外する
func TripMarkers(trips model.TripCollections) []MarkerSpec {
	specs := make([]MarkerSpec, 0, len(trips.Past)+len(trips.Upcoming))
	specs = appendTripMarkers(specs, model.TripKindPast, trips.Past)
	specs = appendTripMarkers(specs, model.TripKindUpcoming, trips.Upcoming)
	return specs
}

func appendTripMarkers(specs []MarkerSpec, kind model.TripKind, trips []model.Trip) []MarkerSpec {
	markerKind, color := MarkerPastTrip, PastTripColor
	if kind == model.TripKindUpcoming {
		markerKind, color = MarkerUpcomingTrip, UpcomingTripColor
	}

	for i := range trips {
		trip := &trips[i]
		loc, ok := trip.Location()
		if !ok {
			continue
		}
		specs = append(specs, MarkerSpec{
			Key:      TripMarkerKey(kind, trip.ID),
			Kind:     markerKind,
			Position: loc,
			Title:    fmt.Sprintf("%s, %s", trip.City, trip.State),
			Popup:    fmt.Sprintf("%s\n%s\n%s", trip.City, trip.Hotel, helper.FormatDateRange(trip.StartDate, trip.EndDate)),
			Color:    color,
		})
	}
	return specs
}

// NearbyVenueMarkers 旅程周辺のサンプル店舗をマーカーに変換する
func NearbyVenueMarkers(venues []model.Restaurant) []MarkerSpec {
	specs := RestaurantMarkers(venues)
	for i := range specs {
		specs[i].Kind = MarkerNearbyVenue
		specs[i].Color = NearbyVenueColor
	}
	return specs
}

func restaurantPopup(r *model.Restaurant) string {
	parts := []string{fmt.Sprintf("★ %.1f", r.Rating)}
	if r.Price != "" {
		parts = append(parts, r.Price)
	}
	if r.Distance > 0 {
		parts = append(parts, helper.FormatDistance(r.Distance))
	}
	return r.Name + "\n" + strings.Join(parts, " · ")
}

func searchCenterMarker(p model.LatLng, label string) MarkerSpec {
	return MarkerSpec{
		Key:      searchCenterKey,
		Kind:     MarkerSearchCenter,
		Position: p,
		Title:    label,
		Popup:    label,
		Color:    SearchCenterColor,
	}
}
