package model

import "github.com/google/uuid"

// OriginKind 検索コンテキストの発生源
type OriginKind string

const (
	OriginTripUpcoming OriginKind = "trip-upcoming"
	OriginTripPast     OriginKind = "trip-past"
	OriginGPS          OriginKind = "gps"
	OriginMapArea      OriginKind = "map-area"
)

// OriginForTripKind 旅程の種別に対応する OriginKind を取得する
func OriginForTripKind(kind TripKind) OriginKind {
	if kind == TripKindPast {
		return OriginTripPast
	}
	return OriginTripUpcoming
}

// SearchContext レストラン検索と地図の中心を決める座標とラベル
// 生成後は変更せず、新しいコンテキストで丸ごと置き換える
type SearchContext struct {
	ID         string     `json:"id"`
	OriginKind OriginKind `json:"originKind"`
	TripID     string     `json:"tripId,omitempty"`
	Coordinate LatLng     `json:"coordinate"`
	Label      string     `json:"label"`
}

// NewSearchContext 新しい SearchContext を作成
func NewSearchContext(kind OriginKind, tripID string, coordinate LatLng, label string) SearchContext {
	return SearchContext{
		ID:         uuid.NewString(),
		OriginKind: kind,
		TripID:     tripID,
		Coordinate: coordinate,
		Label:      label,
	}
}
