package tracking

import (
	"net/http"

	"checkout/internal/respond"

	"go.uber.org/zap"
)

type trackingResponse struct {
	Success bool         `json:"success"`
	Data    trackingData `json:"data"`
}

type trackingData struct {
	Label     StatusLabel `json:"label"`
	Locations Locations   `json:"locations"`
	Map       MapPlan     `json:"map"`
}

type Controller struct {
	logger *zap.Logger
}

func NewController(logger *zap.Logger) *Controller {
	return &Controller{logger: logger}
}

// HandleTracking serves GET /api/order/tracking?status=.
func (c *Controller) HandleTracking(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	locations := LocationsFor(status)

	respond.JSON(w, http.StatusOK, trackingResponse{
		Success: true,
		Data: trackingData{
			Label:     LabelFor(status),
			Locations: locations,
			Map:       PlanMap(status, locations.Current, locations.Destination),
		},
	}, c.logger)
}
