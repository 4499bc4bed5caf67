package tracking

import "checkout/internal/domain"

var (
	warehouse   = domain.GeoPoint{Lat: -6.1395, Lng: 106.8135}
	transitHub  = domain.GeoPoint{Lat: -6.2088, Lng: 106.8456}
	destination = domain.GeoPoint{Lat: -6.3021, Lng: 106.8959}

	defaultDestination = domain.GeoPoint{Lat: -6.2297, Lng: 106.8295}
)

type Locations struct {
	Current       domain.GeoPoint `json:"current"`
	Destination   domain.GeoPoint `json:"destination"`
	Distance      string          `json:"distance"`
	EstimatedTime string          `json:"estimatedTime"`
}

// LocationsFor picks the regional points shown for a shipment in the given status.
// An empty status means no order is loaded yet.
func LocationsFor(status string) Locations {
	switch status {
	case "":
		return Locations{Current: transitHub, Destination: defaultDestination, Distance: "2.5 km", EstimatedTime: "30 menit"}
	case domain.OrderStatusProcessing:
		return Locations{Current: warehouse, Destination: transitHub, Distance: "5.2 km", EstimatedTime: "2-3 jam"}
	case domain.OrderStatusShipped:
		return Locations{Current: transitHub, Destination: destination, Distance: "8.7 km", EstimatedTime: "1-2 jam"}
	default:
		return Locations{Current: destination, Destination: destination, Distance: "0 km", EstimatedTime: "Sampai"}
	}
}
