package services

import (
	"fmt"
	"math"

	"bookmycar/internal/booking-service/core/domain/dto"
	"bookmycar/internal/booking-service/core/domain/model"
	"bookmycar/internal/booking-service/core/myerrors"
)

const (
	EarthRadiusKm = 6371.0

	// Assumed average city speed used to turn distance into a duration.
	AverageSpeedKmph = 40.0

	// Number of waypoints in the display path attached to an estimate.
	RoutePathPoints = 32
)

// FareEstimator is side-effect free. Distance is the haversine great-circle
// distance between pickup and destination; the display curve is never summed
// to obtain it.
type FareEstimator struct{}

func NewFareEstimator() *FareEstimator {
	return &FareEstimator{}
}

func (fe *FareEstimator) Estimate(pickup, destination model.Location, tariff model.VehicleTariff) (model.RouteEstimate, error) {
	if err := validateCoordinates(pickup); err != nil {
		return model.RouteEstimate{}, fmt.Errorf("invalid pickup: %w", err)
	}
	if err := validateCoordinates(destination); err != nil {
		return model.RouteEstimate{}, fmt.Errorf("invalid destination: %w", err)
	}

	distanceKm := haversineKm(pickup.Latitude, pickup.Longitude, destination.Latitude, destination.Longitude)

	path, err := RouteCurve(pickup, destination, RoutePathPoints)
	if err != nil {
		return model.RouteEstimate{}, err
	}

	return model.RouteEstimate{
		DistanceMeters:  distanceKm * 1000,
		DurationSeconds: distanceKm / AverageSpeedKmph * 3600,
		Price:           PriceFor(tariff, distanceKm),
		Path:            path,
	}, nil
}

// Reprice recomputes only the price of an existing estimate for a different
// vehicle class. Distance, duration and path are reused unchanged.
func (fe *FareEstimator) Reprice(est model.RouteEstimate, tariff model.VehicleTariff) model.RouteEstimate {
	est.Price = PriceFor(tariff, est.DistanceMeters/1000)
	return est
}

// Quotes prices every vehicle class for one already-computed estimate.
func (fe *FareEstimator) Quotes(est model.RouteEstimate) []dto.VehicleQuoteDto {
	distanceKm := est.DistanceMeters / 1000
	quotes := make([]dto.VehicleQuoteDto, 0, len(model.Tariffs()))
	for _, t := range model.Tariffs() {
		price := PriceFor(t, distanceKm)
		quotes = append(quotes, dto.VehicleQuoteDto{
			Class:     t.Class,
			Capacity:  t.Capacity,
			Price:     price,
			PriceText: fmt.Sprintf("$%.2f", price),
		})
	}
	return quotes
}

// PriceFor is strictly increasing in distance for a fixed tariff.
func PriceFor(tariff model.VehicleTariff, distanceKm float64) float64 {
	return tariff.BasePrice + distanceKm*tariff.PricePerKm
}

func validateCoordinates(loc model.Location) error {
	if math.IsNaN(loc.Latitude) || math.IsNaN(loc.Longitude) {
		return myerrors.ErrInvalidLocation
	}
	if math.Abs(loc.Latitude) > 90 {
		return fmt.Errorf("%w: latitude out of [-90, 90]", myerrors.ErrInvalidLocation)
	}
	if math.Abs(loc.Longitude) > 180 {
		return fmt.Errorf("%w: longitude out of [-180, 180]", myerrors.ErrInvalidLocation)
	}
	return nil
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(d float64) float64 { return d * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return EarthRadiusKm * c
}
