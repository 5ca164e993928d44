package model

import (
	"fmt"
	"math"
)

// RouteEstimate is derived state: recomputed whenever pickup, destination or
// vehicle class changes, never persisted on its own.
type RouteEstimate struct {
	DistanceMeters  float64    `json:"distance_meters"`
	DurationSeconds float64    `json:"duration_seconds"`
	Price           float64    `json:"price"`
	Path            []Location `json:"path"`
}

func (re RouteEstimate) DistanceText() string {
	return fmt.Sprintf("%.1f km", re.DistanceMeters/1000)
}

func (re RouteEstimate) DurationText() string {
	minutes := int(math.Round(re.DurationSeconds / 60))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min", minutes)
}

func (re RouteEstimate) PriceText() string {
	return fmt.Sprintf("$%.2f", re.Price)
}
