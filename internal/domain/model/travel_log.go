package model

// TravelLog トラベルログ画面の内容（開くたびに再生成する）
type TravelLog struct {
	Stats TravelLogStats  `json:"stats"`
	Years []TravelLogYear `json:"years"` // 年の降順
}

// TravelLogStats 過去の旅程全体の集計
type TravelLogStats struct {
	TripCount       int `json:"tripCount"`
	CityCount       int `json:"cityCount"`
	HotelCount      int `json:"hotelCount"`
	RestaurantCount int `json:"restaurantCount"`
}

// TravelLogYear 年ごとの旅程グループ
type TravelLogYear struct {
	Year  int             `json:"year"`
	Trips []TravelLogTrip `json:"trips"`
}

// TravelLogTrip トラベルログに表示する1件の旅程
type TravelLogTrip struct {
	TripID      string              `json:"tripId"`
	City        string              `json:"city"`
	State       string              `json:"state"`
	Hotel       string              `json:"hotel"`
	Purpose     string              `json:"purpose"`
	DateRange   string              `json:"dateRange"`
	Restaurants []VisitedRestaurant `json:"restaurants"`
}

// VisitedRestaurant 訪問済みレストランの表示情報
type VisitedRestaurant struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
	Price  string  `json:"price,omitempty"`
}
