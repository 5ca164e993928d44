package handle

import (
	"encoding/json"
	"net/http"

	"bookmycar/internal/booking-service/core/domain/dto"
	"bookmycar/internal/booking-service/core/ports/driver"
	"bookmycar/internal/mylogger"

	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authService driver.IAuthService
	validate    *validator.Validate
	log         mylogger.Logger
}

func NewAuthHandler(as driver.IAuthService, validate *validator.Validate, log mylogger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: as,
		validate:    validate,
		log:         log,
	}
}

func (ah *AuthHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := dto.RegisterRequest{}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}
		if err := ah.validate.Struct(req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		res, err := ah.authService.Register(r.Context(), req)
		if err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusCreated, res)
	}
}

func (ah *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := dto.LoginRequest{}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}
		if err := ah.validate.Struct(req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		res, err := ah.authService.Login(r.Context(), req)
		if err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, res)
	}
}
