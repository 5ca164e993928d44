package driven

import (
	"context"

	messagebrokerdto "bookmycar/internal/booking-service/core/domain/message_broker_dto"
)

type IBookingBroker interface {
	Close() error
	IsAlive() bool
	PushBookingConfirmed(ctx context.Context, msg messagebrokerdto.BookingConfirmed) error
	PushBookingStatus(ctx context.Context, msg messagebrokerdto.BookingStatus) error
}
