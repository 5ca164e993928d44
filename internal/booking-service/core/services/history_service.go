package services

import (
	"context"
	"fmt"
	"time"

	"bookmycar/internal/booking-service/core/domain/dto"
	"bookmycar/internal/booking-service/core/domain/model"
	"bookmycar/internal/booking-service/core/ports/driven"
	driverports "bookmycar/internal/booking-service/core/ports/driver"
	"bookmycar/internal/mylogger"
)

const dayLabelFormat = "Jan 02, 2006"

type HistoryService struct {
	ctx         context.Context
	bookingRepo driven.IBookingRepo
	mylog       mylogger.Logger
}

func NewHistoryService(ctx context.Context, bookingRepo driven.IBookingRepo, mylog mylogger.Logger) driverports.IHistoryService {
	return &HistoryService{
		ctx:         ctx,
		bookingRepo: bookingRepo,
		mylog:       mylog,
	}
}

// List returns past bookings most-recent-first, optionally restricted to
// favorites and optionally grouped by day (most recent day first).
func (hs *HistoryService) List(ctx context.Context, userID string, q dto.HistoryQuery) (dto.HistoryResponse, error) {
	bookings, err := hs.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		hs.mylog.Error("failed to list bookings", err, "user_id", userID)
		return dto.HistoryResponse{}, fmt.Errorf("cannot list bookings: %w", err)
	}

	if q.Filter == dto.HistoryFilterFavorites {
		filtered := bookings[:0]
		for _, b := range bookings {
			if b.IsFavorite {
				filtered = append(filtered, b)
			}
		}
		bookings = filtered
	}

	if q.GroupBy != dto.HistoryGroupDay {
		return dto.HistoryResponse{Bookings: bookings}, nil
	}

	return dto.HistoryResponse{Groups: groupByDay(bookings)}, nil
}

func (hs *HistoryService) ToggleFavorite(ctx context.Context, userID, bookingID string) (bool, error) {
	log := hs.mylog.Action("ToggleFavorite")

	fav, err := hs.bookingRepo.ToggleFavorite(ctx, userID, bookingID)
	if err != nil {
		return false, err
	}

	log.Info("favorite toggled", "user_id", userID, "booking_id", bookingID, "is_favorite", fav)
	return fav, nil
}

// Delete removes a booking permanently. A missing id is treated as already
// deleted, not as an error.
func (hs *HistoryService) Delete(ctx context.Context, userID, bookingID string) error {
	log := hs.mylog.Action("DeleteBooking")

	if err := hs.bookingRepo.Delete(ctx, userID, bookingID); err != nil {
		log.Error("failed to delete booking", err, "user_id", userID, "booking_id", bookingID)
		return fmt.Errorf("cannot delete booking: %w", err)
	}

	log.Info("booking deleted", "user_id", userID, "booking_id", bookingID)
	return nil
}

// groupByDay relies on the input being sorted most-recent-first: group order
// then falls out of iteration order.
func groupByDay(bookings []model.Booking) []dto.HistoryGroup {
	var groups []dto.HistoryGroup
	var currentDay time.Time

	for _, b := range bookings {
		day := startOfDay(b.CreatedAt)
		if len(groups) == 0 || !day.Equal(currentDay) {
			groups = append(groups, dto.HistoryGroup{Day: day.Format(dayLabelFormat)})
			currentDay = day
		}
		last := len(groups) - 1
		groups[last].Bookings = append(groups[last].Bookings, b)
	}
	return groups
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
