package helper

import (
	"fmt"
	"math"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"TripDine-App/internal/domain/model"
)

const (
	metersPerMile   = 1609.344
	feetPerMeter    = 3.28084
	tripDateLayout  = "2006-01-02"
	feetThresholdMi = 0.1
)

// DistanceMeters 2地点間の大圏距離を計算する (m)
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	return geo.DistanceHaversine(orb.Point{lng1, lat1}, orb.Point{lng2, lat2})
}

// DistanceBetween LatLng 同士の大圏距離を計算する (m)
func DistanceBetween(p1, p2 model.LatLng) float64 {
	return DistanceMeters(p1.Lat, p1.Lng, p2.Lat, p2.Lng)
}

// FormatDistance 距離を表示用文字列に変換する
// 0.1マイル未満はフィート（整数）、それ以上はマイル（小数1桁）
func FormatDistance(meters float64) string {
	miles := meters / metersPerMile
	if miles < feetThresholdMi {
		return fmt.Sprintf("%d ft", int(math.Round(meters*feetPerMeter)))
	}
	return fmt.Sprintf("%.1f mi", miles)
}

// ParseTripDate ISO日付 (YYYY-MM-DD) を日単位で解析する
func ParseTripDate(s string) (time.Time, bool) {
	t, err := time.Parse(tripDateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// TruncateToDay 時刻を切り捨てて日付だけにする
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDateRange 旅程の期間を表示用文字列に変換する
//
//	同年同月:   "Mar 15–19, 2026"
//	同年別月:   "Mar 30 – Apr 2, 2026"
//	年をまたぐ: "Dec 30, 2026 – Jan 2, 2027"
//
// どちらかが解析できない場合は "{raw1} – {raw2}" をそのまま返す
func FormatDateRange(start, end string) string {
	s, okStart := ParseTripDate(start)
	e, okEnd := ParseTripDate(end)
	if !okStart || !okEnd {
		return fmt.Sprintf("%s – %s", start, end)
	}

	switch {
	case s.Year() == e.Year() && s.Month() == e.Month():
		return fmt.Sprintf("%s %d–%d, %d", s.Format("Jan"), s.Day(), e.Day(), s.Year())
	case s.Year() == e.Year():
		return fmt.Sprintf("%s %d – %s %d, %d", s.Format("Jan"), s.Day(), e.Format("Jan"), e.Day(), s.Year())
	default:
		return fmt.Sprintf("%s %d, %d – %s %d, %d", s.Format("Jan"), s.Day(), s.Year(), e.Format("Jan"), e.Day(), e.Year())
	}
}

// BoundsWithPadding 全地点を含む境界ボックスを作り、幅・高さに対する割合で余白を付ける
func BoundsWithPadding(points []model.LatLng, fraction float64) (orb.Bound, bool) {
	if len(points) == 0 {
		return orb.Bound{}, false
	}

	first := orb.Point{points[0].Lng, points[0].Lat}
	bound := first.Bound()
	for _, p := range points[1:] {
		bound = bound.Extend(orb.Point{p.Lng, p.Lat})
	}

	padLng := (bound.Max.Lon() - bound.Min.Lon()) * fraction
	padLat := (bound.Max.Lat() - bound.Min.Lat()) * fraction
	return orb.Bound{
		Min: orb.Point{bound.Min.Lon() - padLng, bound.Min.Lat() - padLat},
		Max: orb.Point{bound.Max.Lon() + padLng, bound.Max.Lat() + padLat},
	}, true
}

// AnnotateDistances 検索中心からの距離を各レストランに設定したコピーを返す
// 座標の無いレストランは地図に置けないため除外する
func AnnotateDistances(restaurants []model.Restaurant, origin model.LatLng) []model.Restaurant {
	result := make([]model.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		p, ok := r.Position()
		if !ok {
			continue
		}
		r.Distance = DistanceBetween(origin, p)
		result = append(result, r)
	}
	return result
}
