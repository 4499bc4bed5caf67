package service

import (
	"fmt"
	"time"
)

const (
	defaultDeliveryPhrase = "2-3 hari"
	expeditedCourierID    = "sicepat"
)

var deliveryPhrases = map[string]string{
	"jne":     "2-3 hari",
	"sicepat": "1-2 hari",
	"jnt":     "2-3 hari",
}

// Dates are rendered the way the id-ID locale prints short dates, in Jakarta time.
var jakarta = time.FixedZone("WIB", 7*60*60)

const shortDateLayout = "2/1/2006"

type DeliveryEstimator struct {
	phrases map[string]string
	loc     *time.Location
}

func NewDeliveryEstimator() *DeliveryEstimator {
	return &DeliveryEstimator{phrases: deliveryPhrases, loc: jakarta}
}

// Estimate returns "<phrase> (<d/m/yyyy>)" for the courier, counting from now.
func (e *DeliveryEstimator) Estimate(courierID string, now time.Time) string {
	phrase, ok := e.phrases[courierID]
	if !ok {
		phrase = defaultDeliveryPhrase
	}

	return fmt.Sprintf("%s (%s)", phrase, e.DeliveryDate(courierID, now).Format(shortDateLayout))
}

func (e *DeliveryEstimator) DeliveryDate(courierID string, now time.Time) time.Time {
	days := 2
	if courierID == expeditedCourierID {
		days = 1
	}
	return now.In(e.loc).AddDate(0, 0, days)
}
