package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/station-dashboard/internal/domain"
)

// ParseLatLng parses a combined "lat,lng" string. Whitespace around either
// number is ignored.
func ParseLatLng(s string) (domain.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return domain.Point{}, fmt.Errorf("expected \"lat,lng\", got %q", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return domain.Point{}, fmt.Errorf("latitude in %q: %w", s, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.Point{}, fmt.Errorf("longitude in %q: %w", s, err)
	}

	if !ValidateCoordinates(lat, lon) {
		return domain.Point{}, fmt.Errorf("coordinates out of range in %q", s)
	}

	return domain.Point{Lat: lat, Lon: lon}, nil
}

// ValidateCoordinates reports whether lat and lon are within WGS84 bounds.
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Centroid returns the arithmetic mean of points; the zero Point for none.
func Centroid(lats, lons []float64) domain.Point {
	n := len(lats)
	if n == 0 || len(lons) != n {
		return domain.Point{}
	}
	var sumLat, sumLon float64
	for i := 0; i < n; i++ {
		sumLat += lats[i]
		sumLon += lons[i]
	}
	return domain.Point{Lat: sumLat / float64(n), Lon: sumLon / float64(n)}
}

// Bounds returns the bounding box of points.
func Bounds(lats, lons []float64) domain.BoundingBox {
	if len(lats) == 0 || len(lons) != len(lats) {
		return domain.BoundingBox{}
	}
	box := domain.BoundingBox{MinLat: lats[0], MaxLat: lats[0], MinLon: lons[0], MaxLon: lons[0]}
	for i := 1; i < len(lats); i++ {
		box.MinLat = min(box.MinLat, lats[i])
		box.MaxLat = max(box.MaxLat, lats[i])
		box.MinLon = min(box.MinLon, lons[i])
		box.MaxLon = max(box.MaxLon, lons[i])
	}
	return box
}
