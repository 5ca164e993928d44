package dto

import "bookmycar/internal/booking-service/core/domain/model"

const (
	HistoryFilterAll       = "all"
	HistoryFilterFavorites = "favorites"

	HistoryGroupNone = "none"
	HistoryGroupDay  = "day"
)

type HistoryQuery struct {
	Filter  string
	GroupBy string
}

type HistoryGroup struct {
	Day      string          `json:"day"`
	Bookings []model.Booking `json:"bookings"`
}

type HistoryResponse struct {
	Bookings []model.Booking `json:"bookings,omitempty"`
	Groups   []HistoryGroup  `json:"groups,omitempty"`
}
