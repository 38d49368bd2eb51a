package model

// TripKind 旅程の種別（過去 / 予定）
type TripKind string

const (
	TripKindPast     TripKind = "past"
	TripKindUpcoming TripKind = "upcoming"
)

// ParseTripKind 文字列から TripKind を取得する
func ParseTripKind(s string) (TripKind, bool) {
	switch TripKind(s) {
	case TripKindPast:
		return TripKindPast, true
	case TripKindUpcoming:
		return TripKindUpcoming, true
	}
	return "", false
}

// Reservation 予定されている旅程のレストラン予約
type Reservation struct {
	RestaurantID string `json:"restaurantId" firestore:"restaurantId"`
	Name         string `json:"name" firestore:"name"`
	Date         string `json:"date" firestore:"date"`
	Time         string `json:"time" firestore:"time"`
	PartySize    int    `json:"partySize" firestore:"partySize"`
}

// Trip 過去または予定されている出張・旅行の参照データ
// ID は同じ種別の中でのみ一意
type Trip struct {
	ID                    string        `json:"id" firestore:"id"`
	City                  string        `json:"city" firestore:"city"`
	State                 string        `json:"state" firestore:"state"`
	Country               string        `json:"country" firestore:"country"`
	Coordinates           *Coordinates  `json:"coordinates" firestore:"coordinates"`
	StartDate             string        `json:"startDate" firestore:"startDate"` // ISO日付 (YYYY-MM-DD)
	EndDate               string        `json:"endDate" firestore:"endDate"`
	Purpose               string        `json:"purpose" firestore:"purpose"`
	Hotel                 string        `json:"hotel" firestore:"hotel"`
	RestaurantsVisited    []string      `json:"restaurantsVisited,omitempty" firestore:"restaurantsVisited"`       // 過去の旅程のみ
	ConfirmedReservations []Reservation `json:"confirmedReservations,omitempty" firestore:"confirmedReservations"` // 予定の旅程のみ
}

// Location 旅程の座標を取得する（座標が無い・有限でない場合は false）
func (t *Trip) Location() (LatLng, bool) {
	if t == nil || t.Coordinates == nil {
		return LatLng{}, false
	}
	p := t.Coordinates.ToLatLng()
	if !p.IsFinite() {
		return LatLng{}, false
	}
	return p, true
}

// TripCollections 過去と予定の旅程（互いに素な2つの集合）
type TripCollections struct {
	Past     []Trip `json:"past"`
	Upcoming []Trip `json:"upcoming"`
}
