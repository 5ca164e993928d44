package model

import "time"

// Booking is a persisted ride record. Created when a payment method is picked
// for a pending draft; mutated only by rating submission and favorite toggle;
// deleted explicitly by the user.
type Booking struct {
	ID            string       `json:"id"`
	UserID        string       `json:"-"`
	Pickup        Location     `json:"pickup"`
	Destination   Location     `json:"destination"`
	VehicleClass  VehicleClass `json:"vehicle_class"`
	DistanceText  string       `json:"distance_text"`
	DurationText  string       `json:"duration_text"`
	PriceText     string       `json:"price_text"`
	DriverName    string       `json:"driver_name"`
	DriverPhone   string       `json:"driver_phone"`
	DriverEmail   string       `json:"driver_email"`
	Rating        *int         `json:"rating,omitempty"`
	IsFavorite    bool         `json:"is_favorite"`
	PaymentMethod *string      `json:"payment_method,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}
