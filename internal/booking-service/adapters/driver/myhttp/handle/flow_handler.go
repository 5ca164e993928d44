package handle

import (
	"context"
	"encoding/json"
	"net/http"

	"bookmycar/internal/booking-service/core/domain/dto"
	"bookmycar/internal/booking-service/core/domain/model"
	"bookmycar/internal/booking-service/core/ports/driver"
	"bookmycar/internal/mylogger"

	"github.com/go-playground/validator/v10"
)

type FlowHandler struct {
	bookingService driver.IBookingService
	validate       *validator.Validate
	log            mylogger.Logger
}

func NewFlowHandler(bs driver.IBookingService, validate *validator.Validate, log mylogger.Logger) *FlowHandler {
	return &FlowHandler{
		bookingService: bs,
		validate:       validate,
		log:            log,
	}
}

func (fh *FlowHandler) Snapshot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-UserId")
		jsonResponse(w, http.StatusOK, fh.bookingService.Snapshot(userID))
	}
}

func (fh *FlowHandler) SelectPickup() http.HandlerFunc {
	return fh.selectLocation(fh.bookingService.SelectPickup)
}

func (fh *FlowHandler) SelectDestination() http.HandlerFunc {
	return fh.selectLocation(fh.bookingService.SelectDestination)
}

func (fh *FlowHandler) SelectVehicleClass() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-UserId")

		req := dto.VehicleClassRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}
		if err := fh.validate.Struct(req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		snap, err := fh.bookingService.SelectVehicleClass(r.Context(), userID, req.Class)
		if err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, snap)
	}
}

func (fh *FlowHandler) Confirm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-UserId")

		draft, err := fh.bookingService.ConfirmBooking(r.Context(), userID)
		if err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, draft)
	}
}

func (fh *FlowHandler) SelectPaymentMethod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-UserId")

		req := dto.PaymentMethodRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		booking, err := fh.bookingService.SelectPaymentMethod(r.Context(), userID, req)
		if err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusCreated, booking)
	}
}

func (fh *FlowHandler) SubmitRating() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-UserId")

		req := dto.RatingRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}
		if err := fh.validate.Struct(req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		booking, err := fh.bookingService.SubmitRating(r.Context(), userID, *req.Rating)
		if err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, booking)
	}
}

func (fh *FlowHandler) Reset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-UserId")

		if err := fh.bookingService.Reset(r.Context(), userID); err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, fh.bookingService.Snapshot(userID))
	}
}

func (fh *FlowHandler) selectLocation(
	selectFn func(ctx context.Context, userID string, loc model.Location) (dto.FlowSnapshot, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-UserId")

		req := dto.LocationRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}
		if err := fh.validate.Struct(req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		loc := model.Location{
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
			Label:     req.Label,
			Subtitle:  req.Subtitle,
		}
		snap, err := selectFn(r.Context(), userID, loc)
		if err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, snap)
	}
}
