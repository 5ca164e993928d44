package dto

import "bookmycar/internal/booking-service/core/domain/model"

type LocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
	Label     string   `json:"label" validate:"required"`
	Subtitle  string   `json:"subtitle"`
}

type VehicleClassRequest struct {
	Class string `json:"class" validate:"required"`
}

type PaymentMethodRequest struct {
	// Either a free method label (UPI Payment, Cash on Delivery) or a stored
	// card id; exactly one of the two.
	Method string `json:"method"`
	CardID string `json:"card_id"`
}

type RatingRequest struct {
	Rating *int `json:"rating" validate:"required"`
}

type EstimateDto struct {
	DistanceMeters  float64          `json:"distance_meters"`
	DurationSeconds float64          `json:"duration_seconds"`
	Price           float64          `json:"price"`
	DistanceText    string           `json:"distance_text"`
	DurationText    string           `json:"duration_text"`
	PriceText       string           `json:"price_text"`
	Path            []model.Location `json:"path,omitempty"`
}

type VehicleQuoteDto struct {
	Class     model.VehicleClass `json:"class"`
	Capacity  int                `json:"capacity"`
	Price     float64            `json:"price"`
	PriceText string             `json:"price_text"`
}

// FlowSnapshot is the current booking flow state as shown to the client.
type FlowSnapshot struct {
	State        string             `json:"state"`
	Pickup       *model.Location    `json:"pickup,omitempty"`
	Destination  *model.Location    `json:"destination,omitempty"`
	VehicleClass model.VehicleClass `json:"vehicle_class,omitempty"`
	Estimate     *EstimateDto       `json:"estimate,omitempty"`
	Quotes       []VehicleQuoteDto  `json:"quotes,omitempty"`
}
