package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"bookmycar/internal/booking-service/core/domain/dto"
	"bookmycar/internal/booking-service/core/domain/model"
	"bookmycar/internal/booking-service/core/myerrors"
	"bookmycar/internal/booking-service/core/ports/driven"
	driverports "bookmycar/internal/booking-service/core/ports/driver"
	"bookmycar/internal/mylogger"

	messagebrokerdto "bookmycar/internal/booking-service/core/domain/message_broker_dto"
	websocketdto "bookmycar/internal/booking-service/core/domain/websocket_dto"

	"github.com/google/uuid"
)

var allowedVehicleClasses = map[string]model.VehicleClass{
	"AUTO":   model.VehicleAuto,
	"MINI":   model.VehicleMini,
	"SEDAN":  model.VehicleSedan,
	"SUV":    model.VehicleSUV,
	"LUXURY": model.VehicleLuxury,
}

type BookingService struct {
	ctx         context.Context
	mylog       mylogger.Logger
	estimator   *FareEstimator
	bookingRepo driven.IBookingRepo
	cardRepo    driven.ICardRepo
	broker      driven.IBookingBroker
	notifier    driven.INotifyWebsocket

	mu    sync.Mutex
	flows map[string]*bookingFlow
}

func NewBookingService(
	ctx context.Context,
	mylog mylogger.Logger,
	bookingRepo driven.IBookingRepo,
	cardRepo driven.ICardRepo,
	broker driven.IBookingBroker,
	notifier driven.INotifyWebsocket,
) driverports.IBookingService {
	return &BookingService{
		ctx:         ctx,
		mylog:       mylog,
		estimator:   NewFareEstimator(),
		bookingRepo: bookingRepo,
		cardRepo:    cardRepo,
		broker:      broker,
		notifier:    notifier,
		flows:       make(map[string]*bookingFlow),
	}
}

func (bs *BookingService) SelectPickup(ctx context.Context, userID string, loc model.Location) (dto.FlowSnapshot, error) {
	log := bs.mylog.Action("SelectPickup")

	snap, err := bs.flowFor(userID).selectPickup(loc, bs.estimator)
	if err != nil {
		log.Warn("rejected pickup selection", "user_id", userID, "reason", err.Error())
		return dto.FlowSnapshot{}, err
	}

	log.Info("pickup selected", "user_id", userID, "label", loc.Label, "state", snap.State)
	return snap, nil
}

func (bs *BookingService) SelectDestination(ctx context.Context, userID string, loc model.Location) (dto.FlowSnapshot, error) {
	log := bs.mylog.Action("SelectDestination")

	snap, err := bs.flowFor(userID).selectDestination(loc, bs.estimator)
	if err != nil {
		log.Warn("rejected destination selection", "user_id", userID, "reason", err.Error())
		return dto.FlowSnapshot{}, err
	}

	log.Info("destination selected", "user_id", userID, "label", loc.Label, "state", snap.State)
	return snap, nil
}

func (bs *BookingService) SelectVehicleClass(ctx context.Context, userID, class string) (dto.FlowSnapshot, error) {
	log := bs.mylog.Action("SelectVehicleClass")

	vc, ok := allowedVehicleClasses[strings.ToUpper(class)]
	if !ok {
		return dto.FlowSnapshot{}, fmt.Errorf("%w: %q", myerrors.ErrInvalidVehicleClass, class)
	}
	tariff, _ := model.TariffFor(vc)

	snap, err := bs.flowFor(userID).selectVehicleClass(tariff, bs.estimator)
	if err != nil {
		log.Warn("rejected vehicle class selection", "user_id", userID, "reason", err.Error())
		return dto.FlowSnapshot{}, err
	}

	log.Info("vehicle class selected", "user_id", userID, "class", vc)
	return snap, nil
}

func (bs *BookingService) ConfirmBooking(ctx context.Context, userID string) (model.Booking, error) {
	log := bs.mylog.Action("ConfirmBooking")

	draft, err := bs.flowFor(userID).confirm(userID)
	if err != nil {
		log.Warn("rejected booking confirmation", "user_id", userID, "reason", err.Error())
		return model.Booking{}, err
	}

	log.Info("driver assigned to draft booking",
		"user_id", userID, "booking_id", draft.ID, "driver", draft.DriverName)

	bs.notify(userID, "driver_assigned", websocketdto.BookingStatusUpdateDto{
		BookingID:   draft.ID,
		Status:      string(StatePaymentPending),
		DriverName:  draft.DriverName,
		DriverPhone: draft.DriverPhone,
		PriceText:   draft.PriceText,
	})
	return draft, nil
}

func (bs *BookingService) SelectPaymentMethod(ctx context.Context, userID string, req dto.PaymentMethodRequest) (model.Booking, error) {
	log := bs.mylog.Action("SelectPaymentMethod")
	f := bs.flowFor(userID)

	label, err := bs.resolveMethodLabel(ctx, userID, req)
	if err != nil {
		return model.Booking{}, err
	}

	draft, gen, err := f.beginPayment()
	if err != nil {
		return model.Booking{}, err
	}
	draft.PaymentMethod = &label

	if err := bs.bookingRepo.Create(ctx, draft); err != nil {
		f.fail()
		log.Error("failed to persist booking", err, "user_id", userID, "booking_id", draft.ID)
		return model.Booking{}, fmt.Errorf("cannot save booking: %w", err)
	}

	committed := f.commit(gen, func() {
		b := draft
		f.booking = &b
		f.draft = nil
		f.state = StateConfirmed
	})
	if !committed {
		// Flow was reset while the write was in flight. The booking is
		// persisted, but the stale flow state stays discarded.
		log.Warn("booking persisted after flow reset, flow state discarded",
			"user_id", userID, "booking_id", draft.ID)
		return draft, nil
	}

	log.Info("booking confirmed", "user_id", userID, "booking_id", draft.ID, "payment_method", label)

	bs.publishConfirmed(draft)
	bs.publishStatus(draft.ID, string(StateConfirmed))
	bs.notify(userID, "booking_status_update", websocketdto.BookingStatusUpdateDto{
		BookingID:  draft.ID,
		Status:     string(StateConfirmed),
		DriverName: draft.DriverName,
		PriceText:  draft.PriceText,
	})
	return draft, nil
}

func (bs *BookingService) SubmitRating(ctx context.Context, userID string, rating int) (model.Booking, error) {
	log := bs.mylog.Action("SubmitRating")

	if rating < 1 || rating > 5 {
		return model.Booking{}, fmt.Errorf("%w: got %d", myerrors.ErrInvalidRating, rating)
	}

	f := bs.flowFor(userID)
	booking, gen, err := f.beginRating()
	if err != nil {
		return model.Booking{}, err
	}

	if err := bs.bookingRepo.SetRating(ctx, userID, booking.ID, rating); err != nil {
		f.fail()
		log.Error("failed to persist rating", err, "user_id", userID, "booking_id", booking.ID)
		return model.Booking{}, fmt.Errorf("cannot save rating: %w", err)
	}

	r := rating
	booking.Rating = &r
	committed := f.commit(gen, func() {
		f.booking.Rating = &r
		f.state = StateRated
	})
	if !committed {
		log.Warn("rating persisted after flow reset, flow state discarded",
			"user_id", userID, "booking_id", booking.ID)
		return booking, nil
	}

	log.Info("rating submitted", "user_id", userID, "booking_id", booking.ID, "rating", rating)

	bs.publishStatus(booking.ID, string(StateRated))
	bs.notify(userID, "booking_status_update", websocketdto.BookingStatusUpdateDto{
		BookingID: booking.ID,
		Status:    string(StateRated),
	})
	return booking, nil
}

func (bs *BookingService) Reset(ctx context.Context, userID string) error {
	bs.flowFor(userID).reset()
	bs.mylog.Action("Reset").Info("booking flow reset", "user_id", userID)
	return nil
}

func (bs *BookingService) Snapshot(userID string) dto.FlowSnapshot {
	return bs.flowFor(userID).snapshot(bs.estimator)
}

func (bs *BookingService) flowFor(userID string) *bookingFlow {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	f, ok := bs.flows[userID]
	if !ok {
		f = newBookingFlow()
		bs.flows[userID] = f
	}
	return f
}

func (bs *BookingService) resolveMethodLabel(ctx context.Context, userID string, req dto.PaymentMethodRequest) (string, error) {
	if req.CardID != "" {
		card, err := bs.cardRepo.GetByID(ctx, userID, req.CardID)
		if err != nil {
			return "", err
		}
		return card.MethodLabel(), nil
	}

	switch req.Method {
	case model.PaymentMethodUPI, model.PaymentMethodCash:
		return req.Method, nil
	default:
		return "", fmt.Errorf("%w: %q", myerrors.ErrInvalidPaymentMethod, req.Method)
	}
}

func (bs *BookingService) publishConfirmed(b model.Booking) {
	if bs.broker == nil {
		return
	}

	ctx, cancel := context.WithTimeout(bs.ctx, time.Second*15)
	defer cancel()

	method := ""
	if b.PaymentMethod != nil {
		method = *b.PaymentMethod
	}
	msg := messagebrokerdto.BookingConfirmed{
		BookingID:    b.ID,
		UserID:       b.UserID,
		VehicleClass: string(b.VehicleClass),
		PickupLocation: messagebrokerdto.Location{
			Lat:     b.Pickup.Latitude,
			Lng:     b.Pickup.Longitude,
			Address: b.Pickup.Label,
		},
		DestinationLocation: messagebrokerdto.Location{
			Lat:     b.Destination.Latitude,
			Lng:     b.Destination.Longitude,
			Address: b.Destination.Label,
		},
		PriceText:     b.PriceText,
		DistanceText:  b.DistanceText,
		PaymentMethod: method,
		CorrelationID: uuid.NewString(),
	}

	if err := bs.broker.PushBookingConfirmed(ctx, msg); err != nil {
		bs.mylog.Error("failed to publish booking confirmation", err, "booking_id", b.ID)
	}
}

func (bs *BookingService) publishStatus(bookingID, status string) {
	if bs.broker == nil {
		return
	}

	ctx, cancel := context.WithTimeout(bs.ctx, time.Second*15)
	defer cancel()

	msg := messagebrokerdto.BookingStatus{
		BookingID: bookingID,
		Status:    status,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if err := bs.broker.PushBookingStatus(ctx, msg); err != nil {
		bs.mylog.Error("failed to publish booking status", err, "booking_id", bookingID)
	}
}

func (bs *BookingService) notify(userID, eventType string, data any) {
	if bs.notifier == nil {
		return
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		bs.mylog.Error("failed to marshal websocket event", err, "type", eventType)
		return
	}
	bs.notifier.Notify(userID, websocketdto.Event{
		Type: eventType,
		Data: jsonData,
	})
}
