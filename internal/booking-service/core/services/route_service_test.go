package services

import (
	"errors"
	"math"
	"testing"

	"bookmycar/internal/booking-service/core/myerrors"
)

func TestRouteCurvePointCount(t *testing.T) {
	for _, n := range []int{2, 3, 16, 32, 100} {
		points, err := RouteCurve(sanFrancisco, oakland, n)
		if err != nil {
			t.Fatalf("RouteCurve(%d): %v", n, err)
		}
		if len(points) != n {
			t.Errorf("got %d points, want %d", len(points), n)
		}
	}
}

func TestRouteCurveTooFewPoints(t *testing.T) {
	for _, n := range []int{1, 0, -5} {
		if _, err := RouteCurve(sanFrancisco, oakland, n); !errors.Is(err, myerrors.ErrInvalidPointCount) {
			t.Errorf("RouteCurve(%d): got %v, want ErrInvalidPointCount", n, err)
		}
	}
}

func TestRouteCurveEndpointsExact(t *testing.T) {
	points, err := RouteCurve(sanFrancisco, oakland, 32)
	if err != nil {
		t.Fatalf("RouteCurve: %v", err)
	}

	if points[0] != sanFrancisco {
		t.Errorf("first point = %+v, want start with label", points[0])
	}
	if points[len(points)-1] != oakland {
		t.Errorf("last point = %+v, want end with label", points[len(points)-1])
	}
}

func TestRouteCurveBendsAwayFromChord(t *testing.T) {
	points, err := RouteCurve(sanFrancisco, oakland, 33)
	if err != nil {
		t.Fatalf("RouteCurve: %v", err)
	}

	// Midpoint of the curve must sit off the straight chord midpoint.
	mid := points[16]
	chordMidLat := (sanFrancisco.Latitude + oakland.Latitude) / 2
	chordMidLon := (sanFrancisco.Longitude + oakland.Longitude) / 2

	offset := math.Hypot(mid.Latitude-chordMidLat, mid.Longitude-chordMidLon)
	if offset < 1e-4 {
		t.Errorf("curve midpoint sits on the chord, offset = %g", offset)
	}
}

func TestRouteCurveDegenerateSegment(t *testing.T) {
	points, err := RouteCurve(sanFrancisco, sanFrancisco, 8)
	if err != nil {
		t.Fatalf("RouteCurve: %v", err)
	}
	for i, p := range points {
		if math.IsNaN(p.Latitude) || math.IsNaN(p.Longitude) {
			t.Fatalf("point %d is NaN: %+v", i, p)
		}
	}
}

func TestRouteCurveIntermediateLabelsEmpty(t *testing.T) {
	points, err := RouteCurve(sanFrancisco, oakland, 8)
	if err != nil {
		t.Fatalf("RouteCurve: %v", err)
	}
	for i := 1; i < len(points)-1; i++ {
		if points[i].Label != "" {
			t.Errorf("point %d carries label %q", i, points[i].Label)
		}
	}
}
