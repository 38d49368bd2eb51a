package model

// Category レストランのカテゴリ
type Category struct {
	Alias string `json:"alias,omitempty"`
	Title string `json:"title"`
}

// RestaurantLocation レストランの住所
type RestaurantLocation struct {
	Address1 string `json:"address1"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
}

// Restaurant 検索結果のレストラン（Yelp Business 形式）
type Restaurant struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Coordinates  RestaurantCoordinates `json:"coordinates"`
	Rating       float64               `json:"rating"` // 0〜5、0.5刻み
	ReviewCount  int                   `json:"review_count"`
	Price        string                `json:"price,omitempty"` // "$"〜"$$$$"
	Categories   []Category            `json:"categories"`
	Location     RestaurantLocation    `json:"location"`
	Distance     float64               `json:"distance"` // 現在の検索中心からのメートル距離
	URL          string                `json:"url,omitempty"`
	DisplayPhone string                `json:"display_phone,omitempty"`
	ImageURL     string                `json:"image_url,omitempty"`
	Tags         []string              `json:"tags,omitempty"`
}

// Position レストランの位置を取得する（座標が無い・有限でない場合は false）
func (r *Restaurant) Position() (LatLng, bool) {
	return r.Coordinates.ToLatLng()
}

// HasLocation 地図に表示できる座標があるかどうか
func (r *Restaurant) HasLocation() bool {
	_, ok := r.Position()
	return ok
}

// CategoryTitles カテゴリ名の一覧を取得する
func (r *Restaurant) CategoryTitles() []string {
	titles := make([]string, 0, len(r.Categories))
	for _, c := range r.Categories {
		titles = append(titles, c.Title)
	}
	return titles
}

// RestaurantSearchResponse Yelp /businesses/search のレスポンス
type RestaurantSearchResponse struct {
	Businesses []Restaurant `json:"businesses"`
	Total      int          `json:"total"`
}
