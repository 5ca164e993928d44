package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookmycar/internal/booking-service/core/myerrors"
)

// jsonResponse writes the given data as a JSON-encoded HTTP response.
func jsonResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// JsonError writes an error response as JSON with the specified HTTP status code.
func JsonError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
		"code":  code,
	})
}

// serviceError maps domain errors onto HTTP status codes.
func serviceError(w http.ResponseWriter, err error) {
	JsonError(w, statusFor(err), err)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, myerrors.ErrInvalidPassword):
		return http.StatusUnauthorized

	case errors.Is(err, myerrors.ErrAccountNotFound),
		errors.Is(err, myerrors.ErrBookingNotFound),
		errors.Is(err, myerrors.ErrCardNotFound):
		return http.StatusNotFound

	case errors.Is(err, myerrors.ErrDuplicateEmail),
		errors.Is(err, myerrors.ErrInvalidTransition),
		errors.Is(err, myerrors.ErrNoPendingBooking),
		errors.Is(err, myerrors.ErrOperationInProgress):
		return http.StatusConflict

	case errors.Is(err, myerrors.ErrFieldIsEmpty),
		errors.Is(err, myerrors.ErrInvalidLocation),
		errors.Is(err, myerrors.ErrInvalidVehicleClass),
		errors.Is(err, myerrors.ErrInvalidRating),
		errors.Is(err, myerrors.ErrInvalidUsername),
		errors.Is(err, myerrors.ErrInvalidEmail),
		errors.Is(err, myerrors.ErrPasswordTooShort),
		errors.Is(err, myerrors.ErrPasswordMismatch),
		errors.Is(err, myerrors.ErrInvalidPaymentMethod),
		errors.Is(err, myerrors.ErrInvalidCard),
		errors.Is(err, myerrors.ErrInvalidPointCount):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
