package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"bookmycar/internal/booking-service/adapters/driven/memdb"
	"bookmycar/internal/booking-service/core/domain/dto"
	"bookmycar/internal/booking-service/core/domain/model"
	"bookmycar/internal/booking-service/core/myerrors"
	"bookmycar/internal/booking-service/core/ports/driver"
	"bookmycar/internal/mylogger"

	messagebrokerdto "bookmycar/internal/booking-service/core/domain/message_broker_dto"
	websocketdto "bookmycar/internal/booking-service/core/domain/websocket_dto"
)

type fakeBroker struct {
	mu        sync.Mutex
	confirmed []messagebrokerdto.BookingConfirmed
	statuses  []messagebrokerdto.BookingStatus
}

func (fb *fakeBroker) Close() error  { return nil }
func (fb *fakeBroker) IsAlive() bool { return true }

func (fb *fakeBroker) PushBookingConfirmed(ctx context.Context, msg messagebrokerdto.BookingConfirmed) error {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.confirmed = append(fb.confirmed, msg)
	return nil
}

func (fb *fakeBroker) PushBookingStatus(ctx context.Context, msg messagebrokerdto.BookingStatus) error {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.statuses = append(fb.statuses, msg)
	return nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []websocketdto.Event
}

func (fn *fakeNotifier) Notify(userID string, event websocketdto.Event) {
	fn.mu.Lock()
	defer fn.mu.Unlock()
	fn.events = append(fn.events, event)
}

func testLogger() mylogger.Logger {
	return mylogger.NewWithWriter(io.Discard, slog.LevelError, "test")
}

func newTestBookingService(t *testing.T) (driver.IBookingService, *fakeBroker, *fakeNotifier) {
	t.Helper()
	broker := &fakeBroker{}
	notifier := &fakeNotifier{}
	svc := NewBookingService(
		context.Background(),
		testLogger(),
		memdb.NewBookingRepo(),
		memdb.NewCardRepo(),
		broker,
		notifier,
	)
	return svc, broker, notifier
}

const testUser = "rider@example.com"

func runToEstimate(t *testing.T, svc driver.IBookingService) dto.FlowSnapshot {
	t.Helper()
	ctx := context.Background()

	if _, err := svc.SelectPickup(ctx, testUser, sanFrancisco); err != nil {
		t.Fatalf("SelectPickup: %v", err)
	}
	snap, err := svc.SelectDestination(ctx, testUser, oakland)
	if err != nil {
		t.Fatalf("SelectDestination: %v", err)
	}
	return snap
}

func TestFlowHappyPath(t *testing.T) {
	svc, broker, notifier := newTestBookingService(t)
	ctx := context.Background()

	snap := runToEstimate(t, svc)
	if snap.State != string(StateEstimateReady) {
		t.Fatalf("state = %s, want %s", snap.State, StateEstimateReady)
	}
	if snap.Estimate == nil {
		t.Fatal("estimate missing after both locations selected")
	}
	if len(snap.Quotes) != len(model.Tariffs()) {
		t.Fatalf("got %d quotes, want %d", len(snap.Quotes), len(model.Tariffs()))
	}

	snap, err := svc.SelectVehicleClass(ctx, testUser, "sedan")
	if err != nil {
		t.Fatalf("SelectVehicleClass: %v", err)
	}
	if snap.VehicleClass != model.VehicleSedan {
		t.Fatalf("class = %s, want SEDAN", snap.VehicleClass)
	}

	draft, err := svc.ConfirmBooking(ctx, testUser)
	if err != nil {
		t.Fatalf("ConfirmBooking: %v", err)
	}
	if draft.DriverName == "" || draft.DriverPhone == "" || draft.DriverEmail == "" {
		t.Errorf("driver details incomplete: %+v", draft)
	}

	booking, err := svc.SelectPaymentMethod(ctx, testUser, dto.PaymentMethodRequest{Method: model.PaymentMethodUPI})
	if err != nil {
		t.Fatalf("SelectPaymentMethod: %v", err)
	}
	if booking.PaymentMethod == nil || *booking.PaymentMethod != model.PaymentMethodUPI {
		t.Errorf("payment method = %v, want %q", booking.PaymentMethod, model.PaymentMethodUPI)
	}
	if booking.ID != draft.ID {
		t.Errorf("booking id %s differs from draft id %s", booking.ID, draft.ID)
	}

	rated, err := svc.SubmitRating(ctx, testUser, 5)
	if err != nil {
		t.Fatalf("SubmitRating: %v", err)
	}
	if rated.Rating == nil || *rated.Rating != 5 {
		t.Errorf("rating = %v, want 5", rated.Rating)
	}

	broker.mu.Lock()
	if len(broker.confirmed) != 1 {
		t.Errorf("got %d confirmation messages, want 1", len(broker.confirmed))
	}
	if len(broker.statuses) != 2 {
		t.Errorf("got %d status messages, want 2", len(broker.statuses))
	}
	broker.mu.Unlock()

	notifier.mu.Lock()
	if len(notifier.events) != 3 {
		t.Errorf("got %d websocket events, want 3", len(notifier.events))
	}
	notifier.mu.Unlock()
}

func TestConfirmWithoutEstimate(t *testing.T) {
	svc, _, _ := newTestBookingService(t)

	if _, err := svc.ConfirmBooking(context.Background(), testUser); !errors.Is(err, myerrors.ErrInvalidTransition) {
		t.Errorf("got %v, want ErrInvalidTransition", err)
	}
}

func TestPaymentWithoutPendingDraft(t *testing.T) {
	svc, _, _ := newTestBookingService(t)
	runToEstimate(t, svc)

	_, err := svc.SelectPaymentMethod(context.Background(), testUser, dto.PaymentMethodRequest{Method: model.PaymentMethodCash})
	if !errors.Is(err, myerrors.ErrNoPendingBooking) {
		t.Errorf("got %v, want ErrNoPendingBooking", err)
	}
}

func TestUnknownVehicleClass(t *testing.T) {
	svc, _, _ := newTestBookingService(t)
	runToEstimate(t, svc)

	if _, err := svc.SelectVehicleClass(context.Background(), testUser, "ROCKET"); !errors.Is(err, myerrors.ErrInvalidVehicleClass) {
		t.Errorf("got %v, want ErrInvalidVehicleClass", err)
	}
}

func TestVehicleClassChangeRepricesOnly(t *testing.T) {
	svc, _, _ := newTestBookingService(t)
	ctx := context.Background()

	snap := runToEstimate(t, svc)
	miniPrice := snap.Estimate.Price
	distance := snap.Estimate.DistanceMeters

	snap, err := svc.SelectVehicleClass(ctx, testUser, "LUXURY")
	if err != nil {
		t.Fatalf("SelectVehicleClass: %v", err)
	}
	if snap.Estimate.DistanceMeters != distance {
		t.Errorf("distance changed on reprice: %.2f != %.2f", snap.Estimate.DistanceMeters, distance)
	}
	if snap.Estimate.Price <= miniPrice {
		t.Errorf("luxury price %.2f not above mini price %.2f", snap.Estimate.Price, miniPrice)
	}
}

func TestRatingBounds(t *testing.T) {
	svc, _, _ := newTestBookingService(t)
	ctx := context.Background()

	for _, r := range []int{0, 6, -1} {
		if _, err := svc.SubmitRating(ctx, testUser, r); !errors.Is(err, myerrors.ErrInvalidRating) {
			t.Errorf("rating %d: got %v, want ErrInvalidRating", r, err)
		}
	}

	// Valid value but wrong state.
	if _, err := svc.SubmitRating(ctx, testUser, 3); !errors.Is(err, myerrors.ErrInvalidTransition) {
		t.Errorf("got %v, want ErrInvalidTransition", err)
	}
}

func TestPaymentWithStoredCard(t *testing.T) {
	broker := &fakeBroker{}
	cardRepo := memdb.NewCardRepo()
	svc := NewBookingService(context.Background(), testLogger(), memdb.NewBookingRepo(), cardRepo, broker, nil)
	ctx := context.Background()

	card := model.PaymentCard{
		ID:        "card-1",
		UserID:    testUser,
		Number:    "4111111111111234",
		CardType:  model.CardTypeCredit,
		CreatedAt: time.Now(),
	}
	if err := cardRepo.Create(ctx, card); err != nil {
		t.Fatalf("Create card: %v", err)
	}

	runToEstimate(t, svc)
	if _, err := svc.ConfirmBooking(ctx, testUser); err != nil {
		t.Fatalf("ConfirmBooking: %v", err)
	}

	booking, err := svc.SelectPaymentMethod(ctx, testUser, dto.PaymentMethodRequest{CardID: "card-1"})
	if err != nil {
		t.Fatalf("SelectPaymentMethod: %v", err)
	}
	want := "Credit Card **** 1234"
	if booking.PaymentMethod == nil || *booking.PaymentMethod != want {
		t.Errorf("payment method = %v, want %q", booking.PaymentMethod, want)
	}
}

func TestUnknownPaymentMethod(t *testing.T) {
	svc, _, _ := newTestBookingService(t)
	ctx := context.Background()

	runToEstimate(t, svc)
	if _, err := svc.ConfirmBooking(ctx, testUser); err != nil {
		t.Fatalf("ConfirmBooking: %v", err)
	}

	_, err := svc.SelectPaymentMethod(ctx, testUser, dto.PaymentMethodRequest{Method: "Barter"})
	if !errors.Is(err, myerrors.ErrInvalidPaymentMethod) {
		t.Errorf("got %v, want ErrInvalidPaymentMethod", err)
	}
}

func TestResetReturnsFlowToIdle(t *testing.T) {
	svc, _, _ := newTestBookingService(t)
	ctx := context.Background()

	runToEstimate(t, svc)
	if err := svc.Reset(ctx, testUser); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	snap := svc.Snapshot(testUser)
	if snap.State != string(StateIdle) {
		t.Errorf("state = %s, want IDLE", snap.State)
	}
	if snap.Pickup != nil || snap.Destination != nil || snap.Estimate != nil {
		t.Errorf("snapshot not cleared: %+v", snap)
	}
	if snap.VehicleClass != model.VehicleMini {
		t.Errorf("class = %s, want MINI default", snap.VehicleClass)
	}
}

func TestFlowsAreIsolatedPerUser(t *testing.T) {
	svc, _, _ := newTestBookingService(t)
	ctx := context.Background()

	if _, err := svc.SelectPickup(ctx, "a@example.com", sanFrancisco); err != nil {
		t.Fatalf("SelectPickup: %v", err)
	}

	snap := svc.Snapshot("b@example.com")
	if snap.State != string(StateIdle) {
		t.Errorf("second user state = %s, want IDLE", snap.State)
	}
}

func TestCommitDiscardedAfterReset(t *testing.T) {
	fe := NewFareEstimator()
	f := newBookingFlow()

	if _, err := f.selectPickup(sanFrancisco, fe); err != nil {
		t.Fatalf("selectPickup: %v", err)
	}
	if _, err := f.selectDestination(oakland, fe); err != nil {
		t.Fatalf("selectDestination: %v", err)
	}
	if _, err := f.confirm(testUser); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	_, gen, err := f.beginPayment()
	if err != nil {
		t.Fatalf("beginPayment: %v", err)
	}

	// Reset lands while the boundary write is in flight.
	f.reset()

	applied := false
	if committed := f.commit(gen, func() { applied = true }); committed {
		t.Error("commit accepted a stale generation")
	}
	if applied {
		t.Error("commit ran fn despite the reset")
	}
	if f.state != StateIdle {
		t.Errorf("state = %s, want IDLE", f.state)
	}
}

func TestPendingBlocksSecondOperation(t *testing.T) {
	fe := NewFareEstimator()
	f := newBookingFlow()

	if _, err := f.selectPickup(sanFrancisco, fe); err != nil {
		t.Fatalf("selectPickup: %v", err)
	}
	if _, err := f.selectDestination(oakland, fe); err != nil {
		t.Fatalf("selectDestination: %v", err)
	}
	if _, err := f.confirm(testUser); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if _, _, err := f.beginPayment(); err != nil {
		t.Fatalf("beginPayment: %v", err)
	}

	if _, _, err := f.beginPayment(); !errors.Is(err, myerrors.ErrOperationInProgress) {
		t.Errorf("got %v, want ErrOperationInProgress", err)
	}
	if _, err := f.selectPickup(oakland, fe); !errors.Is(err, myerrors.ErrOperationInProgress) {
		t.Errorf("got %v, want ErrOperationInProgress", err)
	}
}

func TestDriverAssignmentDeterministic(t *testing.T) {
	d1 := pickDriver("draft-123")
	d2 := pickDriver("draft-123")
	if d1 != d2 {
		t.Errorf("same draft id picked different drivers: %+v vs %+v", d1, d2)
	}

	pool := model.DriverPool()
	found := false
	for _, d := range pool {
		if d == d1 {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("picked driver %+v not in pool", d1)
	}
}
