package service

import (
	"fmt"
	"strings"

	"TripDine-App/internal/domain/helper"
	"TripDine-App/internal/domain/model"
)

// venueTemplate 旅程周辺に表示するサンプル店舗の雛形
type venueTemplate struct {
	Name     string
	Category string
	Rating   float64
	Price    string
	DLat     float64 // 旅程座標からの緯度オフセット（度）
	DLng     float64 // 旅程座標からの経度オフセット（度）
}

// cityVenueTemplates 都市ごとのサンプル店舗
// ここで生成する店舗は実データではなく、ワールドマップ上の演出用
var cityVenueTemplates = map[string][]venueTemplate{
	"san francisco": {
		{Name: "Tadich Grill", Category: "Seafood", Rating: 4.0, Price: "$$$", DLat: 0.004, DLng: 0.003},
		{Name: "Swan Oyster Depot", Category: "Seafood", Rating: 4.5, Price: "$$", DLat: -0.003, DLng: 0.005},
		{Name: "Tartine Bakery", Category: "Bakeries", Rating: 4.5, Price: "$$", DLat: 0.002, DLng: -0.004},
		{Name: "House of Prime Rib", Category: "Steakhouses", Rating: 4.5, Price: "$$$", DLat: -0.005, DLng: -0.002},
	},
	"new york": {
		{Name: "Katz's Delicatessen", Category: "Delis", Rating: 4.0, Price: "$$", DLat: 0.004, DLng: 0.003},
		{Name: "Joe's Pizza", Category: "Pizza", Rating: 4.0, Price: "$", DLat: -0.003, DLng: 0.005},
		{Name: "Le Bernardin", Category: "French", Rating: 4.5, Price: "$$$$", DLat: 0.002, DLng: -0.004},
		{Name: "Russ & Daughters", Category: "Delis", Rating: 4.5, Price: "$$", DLat: -0.005, DLng: -0.002},
	},
	"chicago": {
		{Name: "Lou Malnati's", Category: "Pizza", Rating: 4.0, Price: "$$", DLat: 0.004, DLng: 0.003},
		{Name: "Girl & the Goat", Category: "American", Rating: 4.5, Price: "$$$", DLat: -0.003, DLng: 0.005},
		{Name: "Portillo's", Category: "Hot Dogs", Rating: 4.0, Price: "$", DLat: 0.002, DLng: -0.004},
	},
	"austin": {
		{Name: "Franklin Barbecue", Category: "Barbeque", Rating: 4.5, Price: "$$", DLat: 0.004, DLng: 0.003},
		{Name: "Veracruz All Natural", Category: "Tacos", Rating: 4.5, Price: "$", DLat: -0.003, DLng: 0.005},
		{Name: "Uchi", Category: "Japanese", Rating: 4.5, Price: "$$$$", DLat: 0.002, DLng: -0.004},
	},
	"seattle": {
		{Name: "Pike Place Chowder", Category: "Seafood", Rating: 4.5, Price: "$$", DLat: 0.004, DLng: 0.003},
		{Name: "Canlis", Category: "American", Rating: 4.5, Price: "$$$$", DLat: -0.003, DLng: 0.005},
		{Name: "Paseo", Category: "Caribbean", Rating: 4.5, Price: "$", DLat: 0.002, DLng: -0.004},
	},
}

// genericVenueTemplates 一覧に無い都市向けの汎用サンプル店舗
var genericVenueTemplates = []venueTemplate{
	{Name: "Downtown Grill", Category: "American", Rating: 4.0, Price: "$$", DLat: 0.004, DLng: 0.003},
	{Name: "Corner Café", Category: "Cafes", Rating: 4.5, Price: "$", DLat: -0.003, DLng: 0.005},
	{Name: "Harbor Kitchen", Category: "Seafood", Rating: 4.0, Price: "$$$", DLat: 0.002, DLng: -0.004},
	{Name: "Local Bistro", Category: "French", Rating: 4.0, Price: "$$", DLat: -0.005, DLng: -0.002},
}

// SimulatedVenueTag シミュレーションで生成した店舗に付けるタグ
const SimulatedVenueTag = "simulated"

// SimulateNearbyVenues 旅程座標の周辺にサンプル店舗を並べる
// 実際の検索は行わない
func SimulateNearbyVenues(trip *model.Trip) []model.Restaurant {
	origin, ok := trip.Location()
	if !ok {
		return nil
	}

	templates, found := cityVenueTemplates[strings.ToLower(strings.TrimSpace(trip.City))]
	if !found {
		templates = genericVenueTemplates
	}

	venues := make([]model.Restaurant, 0, len(templates))
	for i, tmpl := range templates {
		p := model.LatLng{Lat: origin.Lat + tmpl.DLat, Lng: origin.Lng + tmpl.DLng}
		venues = append(venues, model.Restaurant{
			ID:          fmt.Sprintf("nearby-%s-%d", trip.ID, i),
			Name:        tmpl.Name,
			Coordinates: model.NewRestaurantCoordinates(p.Lat, p.Lng),
			Rating:      tmpl.Rating,
			Price:       tmpl.Price,
			Categories:  []model.Category{{Title: tmpl.Category}},
			Location:    model.RestaurantLocation{City: trip.City, State: trip.State},
			Distance:    helper.DistanceBetween(origin, p),
			Tags:        []string{SimulatedVenueTag},
		})
	}
	return venues
}
