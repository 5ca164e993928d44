package driver

import (
	"context"

	"bookmycar/internal/booking-service/core/domain/dto"
	"bookmycar/internal/booking-service/core/domain/model"
)

type IAuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
}

type IBookingService interface {
	SelectPickup(ctx context.Context, userID string, loc model.Location) (dto.FlowSnapshot, error)
	SelectDestination(ctx context.Context, userID string, loc model.Location) (dto.FlowSnapshot, error)
	SelectVehicleClass(ctx context.Context, userID, class string) (dto.FlowSnapshot, error)
	ConfirmBooking(ctx context.Context, userID string) (model.Booking, error)
	SelectPaymentMethod(ctx context.Context, userID string, req dto.PaymentMethodRequest) (model.Booking, error)
	SubmitRating(ctx context.Context, userID string, rating int) (model.Booking, error)
	Reset(ctx context.Context, userID string) error
	Snapshot(userID string) dto.FlowSnapshot
}

type IHistoryService interface {
	List(ctx context.Context, userID string, q dto.HistoryQuery) (dto.HistoryResponse, error)
	ToggleFavorite(ctx context.Context, userID, bookingID string) (bool, error)
	Delete(ctx context.Context, userID, bookingID string) error
}

type ICardService interface {
	Add(ctx context.Context, userID string, req dto.AddCardRequest) (model.PaymentCard, error)
	List(ctx context.Context, userID string) ([]model.PaymentCard, error)
	SetDefault(ctx context.Context, userID, cardID string) error
	Delete(ctx context.Context, userID, cardID string) error
}
