package tracking

import (
	"math"

	"checkout/internal/domain"
)

const (
	MarkerCurrent     = "current"
	MarkerDestination = "destination"

	boundsPadding = 0.1
)

type Marker struct {
	Kind     string          `json:"kind"`
	Position domain.GeoPoint `json:"position"`
	Title    string          `json:"title"`
	Popup    string          `json:"popup"`
}

type Route struct {
	Path   []domain.GeoPoint `json:"path"`
	Dashed bool              `json:"dashed"`
}

type Bounds struct {
	SouthWest domain.GeoPoint `json:"southWest"`
	NorthEast domain.GeoPoint `json:"northEast"`
}

type MapPlan struct {
	Center  domain.GeoPoint `json:"center"`
	Zoom    int             `json:"zoom"`
	Markers []Marker        `json:"markers"`
	Route   *Route          `json:"route"`
	Bounds  Bounds          `json:"bounds"`
}

// PlanMap decides what the tracking map draws. The destination marker is always present;
// the current position is only marked once the parcel has left, and only an in-flight
// parcel gets a route line.
func PlanMap(status string, current, dest domain.GeoPoint) MapPlan {
	plan := MapPlan{
		Center:  current,
		Zoom:    12,
		Markers: []Marker{},
		Bounds:  paddedBounds(current, dest, boundsPadding),
	}

	if status == domain.OrderStatusShipped || status == domain.OrderStatusDelivered {
		plan.Markers = append(plan.Markers, Marker{
			Kind:     MarkerCurrent,
			Position: current,
			Title:    "Lokasi Saat Ini",
			Popup:    "Paket sedang dalam perjalanan",
		})
	}

	plan.Markers = append(plan.Markers, Marker{
		Kind:     MarkerDestination,
		Position: dest,
		Title:    "Alamat Tujuan",
		Popup:    "Lokasi pengiriman",
	})

	if status == domain.OrderStatusShipped {
		plan.Route = &Route{Path: []domain.GeoPoint{current, dest}, Dashed: true}
	}

	return plan
}

// paddedBounds grows the box around a and b by ratio of its span on every side.
func paddedBounds(a, b domain.GeoPoint, ratio float64) Bounds {
	south, north := math.Min(a.Lat, b.Lat), math.Max(a.Lat, b.Lat)
	west, east := math.Min(a.Lng, b.Lng), math.Max(a.Lng, b.Lng)

	latPad := (north - south) * ratio
	lngPad := (east - west) * ratio

	return Bounds{
		SouthWest: domain.GeoPoint{Lat: south - latPad, Lng: west - lngPad},
		NorthEast: domain.GeoPoint{Lat: north + latPad, Lng: east + lngPad},
	}
}
