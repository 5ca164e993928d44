package messagebrokerdto

type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

type BookingConfirmed struct {
	BookingID           string   `json:"booking_id"`
	UserID              string   `json:"user_id"`
	VehicleClass        string   `json:"vehicle_class"`
	PickupLocation      Location `json:"pickup_location"`
	DestinationLocation Location `json:"destination_location"`
	PriceText           string   `json:"price_text"`
	DistanceText        string   `json:"distance_text"`
	PaymentMethod       string   `json:"payment_method"`
	CorrelationID       string   `json:"correlation_id"`
}

type BookingStatus struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
