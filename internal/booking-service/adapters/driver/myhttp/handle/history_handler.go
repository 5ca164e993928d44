package handle

import (
	"net/http"

	"bookmycar/internal/booking-service/core/domain/dto"
	"bookmycar/internal/booking-service/core/ports/driver"
	"bookmycar/internal/mylogger"
)

type HistoryHandler struct {
	historyService driver.IHistoryService
	log            mylogger.Logger
}

func NewHistoryHandler(hs driver.IHistoryService, log mylogger.Logger) *HistoryHandler {
	return &HistoryHandler{
		historyService: hs,
		log:            log,
	}
}

func (hh *HistoryHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-UserId")

		q := dto.HistoryQuery{
			Filter:  r.URL.Query().Get("filter"),
			GroupBy: r.URL.Query().Get("group_by"),
		}
		if q.Filter == "" {
			q.Filter = dto.HistoryFilterAll
		}
		if q.GroupBy == "" {
			q.GroupBy = dto.HistoryGroupNone
		}

		res, err := hh.historyService.List(r.Context(), userID, q)
		if err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, res)
	}
}

func (hh *HistoryHandler) ToggleFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-UserId")
		bookingID := r.PathValue("booking_id")

		fav, err := hh.historyService.ToggleFavorite(r.Context(), userID, bookingID)
		if err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, map[string]interface{}{
			"booking_id":  bookingID,
			"is_favorite": fav,
		})
	}
}

func (hh *HistoryHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-UserId")
		bookingID := r.PathValue("booking_id")

		if err := hh.historyService.Delete(r.Context(), userID, bookingID); err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusNoContent, nil)
	}
}
