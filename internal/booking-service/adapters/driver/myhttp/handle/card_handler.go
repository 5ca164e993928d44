package handle

import (
	"encoding/json"
	"net/http"

	"bookmycar/internal/booking-service/core/domain/dto"
	"bookmycar/internal/booking-service/core/domain/model"
	"bookmycar/internal/booking-service/core/ports/driver"
	"bookmycar/internal/mylogger"

	"github.com/go-playground/validator/v10"
)

type CardHandler struct {
	cardService driver.ICardService
	validate    *validator.Validate
	log         mylogger.Logger
}

func NewCardHandler(cs driver.ICardService, validate *validator.Validate, log mylogger.Logger) *CardHandler {
	return &CardHandler{
		cardService: cs,
		validate:    validate,
		log:         log,
	}
}

func (ch *CardHandler) Add() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-UserId")

		req := dto.AddCardRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}
		if err := ch.validate.Struct(req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		card, err := ch.cardService.Add(r.Context(), userID, req)
		if err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusCreated, cardResponse(card))
	}
}

func (ch *CardHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-UserId")

		cards, err := ch.cardService.List(r.Context(), userID)
		if err != nil {
			serviceError(w, err)
			return
		}

		res := make([]dto.CardResponse, 0, len(cards))
		for _, card := range cards {
			res = append(res, cardResponse(card))
		}
		jsonResponse(w, http.StatusOK, res)
	}
}

func (ch *CardHandler) SetDefault() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-UserId")
		cardID := r.PathValue("card_id")

		if err := ch.cardService.SetDefault(r.Context(), userID, cardID); err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, map[string]interface{}{
			"card_id":    cardID,
			"is_default": true,
		})
	}
}

func (ch *CardHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-UserId")
		cardID := r.PathValue("card_id")

		if err := ch.cardService.Delete(r.Context(), userID, cardID); err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusNoContent, nil)
	}
}

// Card numbers and CVVs never leave the service; responses carry the masked
// representation only.
func cardResponse(card model.PaymentCard) dto.CardResponse {
	return dto.CardResponse{
		ID:           card.ID,
		HolderName:   card.HolderName,
		MaskedNumber: card.MaskedNumber(),
		Expiry:       card.FormattedExpiry(),
		CardType:     card.CardType,
		IsDefault:    card.IsDefault,
	}
}
