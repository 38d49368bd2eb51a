package model

// ViewState 画面に表示されているトップレベルのビュー
type ViewState string

const (
	ViewWorld     ViewState = "world"
	ViewLocal     ViewState = "local"
	ViewTravelLog ViewState = "travel_log"
)

// AllViews は全ビューの一覧を取得する
func AllViews() []ViewState {
	return []ViewState{ViewWorld, ViewLocal, ViewTravelLog}
}
