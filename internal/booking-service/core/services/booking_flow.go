package services

import (
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"bookmycar/internal/booking-service/core/domain/dto"
	"bookmycar/internal/booking-service/core/domain/model"
	"bookmycar/internal/booking-service/core/myerrors"

	"github.com/google/uuid"
)

type FlowState string

const (
	StateIdle              FlowState = "IDLE"
	StateLocationsSelected FlowState = "LOCATIONS_SELECTED"
	StateEstimateReady     FlowState = "ESTIMATE_READY"
	StatePaymentPending    FlowState = "PAYMENT_PENDING"
	StateConfirmed         FlowState = "CONFIRMED"
	StateRated             FlowState = "RATED"
)

// bookingFlow is the per-user booking lifecycle. One transition runs at a
// time: a second call while a boundary operation is in flight fails with
// ErrOperationInProgress. reset bumps the generation counter, so a boundary
// result that lands afterwards is discarded instead of reviving stale state.
type bookingFlow struct {
	mu         sync.Mutex
	pending    bool
	generation uint64

	state       FlowState
	pickup      *model.Location
	destination *model.Location
	tariff      model.VehicleTariff
	estimate    *model.RouteEstimate
	draft       *model.Booking
	booking     *model.Booking
}

func newBookingFlow() *bookingFlow {
	tariff, _ := model.TariffFor(model.VehicleMini)
	return &bookingFlow{
		state:  StateIdle,
		tariff: tariff,
	}
}

func (f *bookingFlow) selectPickup(loc model.Location, fe *FareEstimator) (dto.FlowSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.locationsMutable(); err != nil {
		return dto.FlowSnapshot{}, err
	}
	if err := validateCoordinates(loc); err != nil {
		return dto.FlowSnapshot{}, err
	}

	f.pickup = &loc
	if err := f.recompute(fe); err != nil {
		return dto.FlowSnapshot{}, err
	}
	return f.snapshotLocked(fe), nil
}

func (f *bookingFlow) selectDestination(loc model.Location, fe *FareEstimator) (dto.FlowSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.locationsMutable(); err != nil {
		return dto.FlowSnapshot{}, err
	}
	if err := validateCoordinates(loc); err != nil {
		return dto.FlowSnapshot{}, err
	}

	f.destination = &loc
	if err := f.recompute(fe); err != nil {
		return dto.FlowSnapshot{}, err
	}
	return f.snapshotLocked(fe), nil
}

func (f *bookingFlow) selectVehicleClass(tariff model.VehicleTariff, fe *FareEstimator) (dto.FlowSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pending {
		return dto.FlowSnapshot{}, myerrors.ErrOperationInProgress
	}
	if f.state != StateEstimateReady || f.estimate == nil {
		return dto.FlowSnapshot{}, fmt.Errorf("%w: vehicle class requires both locations", myerrors.ErrInvalidTransition)
	}

	f.tariff = tariff
	repriced := fe.Reprice(*f.estimate, tariff)
	f.estimate = &repriced
	return f.snapshotLocked(fe), nil
}

// confirm produces the draft booking and moves the flow to PAYMENT_PENDING.
// The draft is not persisted until a payment method is selected.
func (f *bookingFlow) confirm(userID string) (model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pending {
		return model.Booking{}, myerrors.ErrOperationInProgress
	}
	if f.state != StateEstimateReady || f.estimate == nil {
		return model.Booking{}, fmt.Errorf("%w: confirm requires a ready estimate, flow is %s", myerrors.ErrInvalidTransition, f.state)
	}

	draftID := uuid.NewString()
	driver := pickDriver(draftID)

	draft := model.Booking{
		ID:           draftID,
		UserID:       userID,
		Pickup:       *f.pickup,
		Destination:  *f.destination,
		VehicleClass: f.tariff.Class,
		DistanceText: f.estimate.DistanceText(),
		DurationText: f.estimate.DurationText(),
		PriceText:    f.estimate.PriceText(),
		DriverName:   driver.Name,
		DriverPhone:  driver.Phone,
		DriverEmail:  driver.Email,
		CreatedAt:    time.Now().UTC(),
	}

	f.draft = &draft
	f.state = StatePaymentPending
	return draft, nil
}

// beginPayment starts the persistence boundary call for the pending draft.
// The caller must finish with commit or fail.
func (f *bookingFlow) beginPayment() (model.Booking, uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pending {
		return model.Booking{}, 0, myerrors.ErrOperationInProgress
	}
	if f.state != StatePaymentPending || f.draft == nil {
		return model.Booking{}, 0, myerrors.ErrNoPendingBooking
	}

	f.pending = true
	return *f.draft, f.generation, nil
}

// beginRating starts the persistence boundary call for a rating submission.
func (f *bookingFlow) beginRating() (model.Booking, uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pending {
		return model.Booking{}, 0, myerrors.ErrOperationInProgress
	}
	if f.state != StateConfirmed || f.booking == nil {
		return model.Booking{}, 0, fmt.Errorf("%w: rating requires a confirmed booking, flow is %s", myerrors.ErrInvalidTransition, f.state)
	}

	f.pending = true
	return *f.booking, f.generation, nil
}

// commit applies fn if no reset happened since the matching begin call.
// Returns false when the result was discarded.
func (f *bookingFlow) commit(gen uint64, fn func()) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pending = false
	if f.generation != gen {
		return false
	}
	fn()
	return true
}

// fail releases the pending marker after a boundary call error.
func (f *bookingFlow) fail() {
	f.mu.Lock()
	f.pending = false
	f.mu.Unlock()
}

// reset returns the flow to IDLE. Persisted bookings are untouched; any
// in-flight boundary result is discarded via the generation bump.
func (f *bookingFlow) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.generation++
	f.pending = false
	f.state = StateIdle
	f.pickup = nil
	f.destination = nil
	f.estimate = nil
	f.draft = nil
	f.booking = nil
	f.tariff, _ = model.TariffFor(model.VehicleMini)
}

func (f *bookingFlow) snapshot(fe *FareEstimator) dto.FlowSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked(fe)
}

func (f *bookingFlow) locationsMutable() error {
	if f.pending {
		return myerrors.ErrOperationInProgress
	}
	switch f.state {
	case StateIdle, StateLocationsSelected, StateEstimateReady:
		return nil
	default:
		return fmt.Errorf("%w: cannot change locations while flow is %s", myerrors.ErrInvalidTransition, f.state)
	}
}

func (f *bookingFlow) recompute(fe *FareEstimator) error {
	if f.pickup == nil || f.destination == nil {
		f.estimate = nil
		f.state = StateLocationsSelected
		return nil
	}

	est, err := fe.Estimate(*f.pickup, *f.destination, f.tariff)
	if err != nil {
		return err
	}
	f.estimate = &est
	f.state = StateEstimateReady
	return nil
}

func (f *bookingFlow) snapshotLocked(fe *FareEstimator) dto.FlowSnapshot {
	snap := dto.FlowSnapshot{
		State:        string(f.state),
		Pickup:       f.pickup,
		Destination:  f.destination,
		VehicleClass: f.tariff.Class,
	}
	if f.estimate != nil {
		snap.Estimate = &dto.EstimateDto{
			DistanceMeters:  f.estimate.DistanceMeters,
			DurationSeconds: f.estimate.DurationSeconds,
			Price:           f.estimate.Price,
			DistanceText:    f.estimate.DistanceText(),
			DurationText:    f.estimate.DurationText(),
			PriceText:       f.estimate.PriceText(),
			Path:            f.estimate.Path,
		}
		snap.Quotes = fe.Quotes(*f.estimate)
	}
	return snap
}

// pickDriver deterministically maps a draft id onto the driver pool. Name,
// phone and email always travel together.
func pickDriver(draftID string) model.Driver {
	h := fnv.New32a()
	h.Write([]byte(draftID))
	pool := model.DriverPool()
	return pool[int(h.Sum32())%len(pool)]
}
