package model

// TripOption 旅程セレクタの選択肢
type TripOption struct {
	Kind   TripKind `json:"kind"`
	TripID string   `json:"tripId"`
	Label  string   `json:"label"` // "{hotel} ({city}) — {dateRange}"
}

// TripOptionGroup 種別ごとの選択肢グループ（予定が先、過去が後）
type TripOptionGroup struct {
	Kind    TripKind     `json:"kind"`
	Label   string       `json:"label"`
	Options []TripOption `json:"options"`
}
