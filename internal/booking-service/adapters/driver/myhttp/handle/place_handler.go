package handle

import (
	"net/http"
	"strconv"

	"bookmycar/internal/booking-service/core/ports/driven"
	"bookmycar/internal/mylogger"
)

type PlaceHandler struct {
	placeSearch driven.IPlaceSearch
	log         mylogger.Logger
}

func NewPlaceHandler(ps driven.IPlaceSearch, log mylogger.Logger) *PlaceHandler {
	return &PlaceHandler{
		placeSearch: ps,
		log:         log,
	}
}

func (ph *PlaceHandler) Search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		places, err := ph.placeSearch.Search(r.Context(), query, limit)
		if err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, map[string]interface{}{
			"places": places,
		})
	}
}
