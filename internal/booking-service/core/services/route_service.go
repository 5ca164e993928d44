package services

import (
	"fmt"
	"math"

	"bookmycar/internal/booking-service/core/domain/model"
	"bookmycar/internal/booking-service/core/myerrors"
)

// curveOffsetRatio scales the perpendicular control-point offset relative to
// the straight segment length.
const curveOffsetRatio = 0.2

// RouteCurve returns pointCount waypoints along a quadratic bezier from start
// to end. The control point sits at the segment midpoint, pushed out
// perpendicular to the segment, so the drawn route is never a straight line.
// Display aid only: fare distance comes from the direct haversine distance.
func RouteCurve(start, end model.Location, pointCount int) ([]model.Location, error) {
	if pointCount < 2 {
		return nil, fmt.Errorf("%w: got %d", myerrors.ErrInvalidPointCount, pointCount)
	}

	dLat := end.Latitude - start.Latitude
	dLon := end.Longitude - start.Longitude
	segLen := math.Hypot(dLat, dLon)

	midLat := (start.Latitude + end.Latitude) / 2
	midLon := (start.Longitude + end.Longitude) / 2

	ctrlLat, ctrlLon := midLat, midLon
	if segLen > 0 {
		// Unit perpendicular of (dLat, dLon) is (-dLon, dLat)/|seg|.
		ctrlLat = midLat - dLon/segLen*curveOffsetRatio*segLen
		ctrlLon = midLon + dLat/segLen*curveOffsetRatio*segLen
	}

	points := make([]model.Location, pointCount)
	for i := 0; i < pointCount; i++ {
		t := float64(i) / float64(pointCount-1)
		omt := 1 - t
		points[i] = model.Location{
			Latitude:  omt*omt*start.Latitude + 2*omt*t*ctrlLat + t*t*end.Latitude,
			Longitude: omt*omt*start.Longitude + 2*omt*t*ctrlLon + t*t*end.Longitude,
		}
	}

	// Endpoints carry the selected place labels.
	points[0] = start
	points[pointCount-1] = end

	return points, nil
}
