package websocketdto

import "encoding/json"

type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// BookingStatusUpdateDto is pushed to the owning passenger connection when a
// booking changes state.
type BookingStatusUpdateDto struct {
	BookingID   string `json:"booking_id"`
	Status      string `json:"status"`
	DriverName  string `json:"driver_name,omitempty"`
	DriverPhone string `json:"driver_phone,omitempty"`
	PriceText   string `json:"price_text,omitempty"`
}
