package platform

import (
	"context"
	"errors"

	"TripDine-App/internal/domain/model"
)

var (
	ErrGeolocationUnsupported = errors.New("geolocation is not supported")
	ErrPermissionDenied       = errors.New("location permission denied")
	ErrPositionUnavailable    = errors.New("location information is unavailable")
	ErrTimeout                = errors.New("location request timed out")
)

// Geolocator 端末の位置情報API
type Geolocator interface {
	CurrentPosition(ctx context.Context) (model.LatLng, error)
}

// DescribeGeolocationError 位置情報エラーをログ向けの説明文に変換する
func DescribeGeolocationError(err error) string {
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return "User denied the request for geolocation"
	case errors.Is(err, ErrPositionUnavailable):
		return "Location information is unavailable"
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return "The request to get user location timed out"
	case errors.Is(err, ErrGeolocationUnsupported):
		return "Geolocation is not supported by this platform"
	default:
		return "An unknown error occurred while getting location"
	}
}
