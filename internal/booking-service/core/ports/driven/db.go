package driven

import (
	"context"

	"bookmycar/internal/booking-service/core/domain/model"
)

type IUserRepo interface {
	// Create fails with myerrors.ErrDuplicateEmail when the email exists.
	Create(ctx context.Context, user model.UserAccount) error
	// GetByEmail fails with myerrors.ErrAccountNotFound when no account exists.
	GetByEmail(ctx context.Context, email string) (model.UserAccount, error)
}

type IBookingRepo interface {
	Create(ctx context.Context, b model.Booking) error
	GetByID(ctx context.Context, userID, bookingID string) (model.Booking, error)
	// ListByUser returns the user's bookings most-recent-first.
	ListByUser(ctx context.Context, userID string) ([]model.Booking, error)
	SetRating(ctx context.Context, userID, bookingID string, rating int) error
	// ToggleFavorite flips the flag and returns the new value.
	ToggleFavorite(ctx context.Context, userID, bookingID string) (bool, error)
	// Delete of a missing id is not an error: the record is already gone.
	Delete(ctx context.Context, userID, bookingID string) error
}

type ICardRepo interface {
	Create(ctx context.Context, card model.PaymentCard) error
	GetByID(ctx context.Context, userID, cardID string) (model.PaymentCard, error)
	ListByUser(ctx context.Context, userID string) ([]model.PaymentCard, error)
	// SetDefault makes the given card the single default for the user,
	// clearing every other card in the same transaction.
	SetDefault(ctx context.Context, userID, cardID string) error
	Delete(ctx context.Context, userID, cardID string) error
}
