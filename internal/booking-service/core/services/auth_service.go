package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"bookmycar/internal/booking-service/core/domain/dto"
	"bookmycar/internal/booking-service/core/domain/model"
	"bookmycar/internal/booking-service/core/myerrors"
	"bookmycar/internal/booking-service/core/ports/driven"
	driverports "bookmycar/internal/booking-service/core/ports/driver"
	"bookmycar/internal/config"
	"bookmycar/internal/mylogger"

	"github.com/golang-jwt/jwt"
)

const (
	MinUsernameLen = 3
	MaxUsernameLen = 100

	MinPasswordLen = 5
	MaxPasswordLen = 50

	TokenTTL = time.Hour * 72
)

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z ]*$`)
	emailRe    = regexp.MustCompile(`^[A-Z0-9a-z._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

type AuthService struct {
	ctx      context.Context
	cfg      *config.Config
	userRepo driven.IUserRepo
	mylog    mylogger.Logger
}

func NewAuthService(
	ctx context.Context,
	cfg *config.Config,
	userRepo driven.IUserRepo,
	mylog mylogger.Logger,
) driverports.IAuthService {
	return &AuthService{
		ctx:      ctx,
		cfg:      cfg,
		userRepo: userRepo,
		mylog:    mylog,
	}
}

func (as *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error) {
	log := as.mylog.Action("Register")

	if err := validateRegistration(req); err != nil {
		return dto.AuthResponse{}, err
	}

	user := model.UserAccount{
		Email:     req.Email,
		Username:  strings.TrimSpace(req.Username),
		Password:  req.Password,
		CreatedAt: time.Now().UTC(),
	}

	if err := as.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, myerrors.ErrDuplicateEmail) {
			log.Warn("failed to register, email already registered", "email", req.Email)
			return dto.AuthResponse{}, err
		}
		log.Error("failed to save user in db", err)
		return dto.AuthResponse{}, fmt.Errorf("cannot save user in db: %w", err)
	}

	token, err := as.issueToken(user)
	if err != nil {
		log.Error("failed to create jwt token", err)
		return dto.AuthResponse{}, err
	}

	log.Info("user registered successfully", "email", user.Email)
	return dto.AuthResponse{
		UserID:   user.Email,
		Username: user.Username,
		Token:    token,
	}, nil
}

func (as *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error) {
	log := as.mylog.Action("Login")

	if err := validateLogin(req); err != nil {
		return dto.AuthResponse{}, err
	}

	user, err := as.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, myerrors.ErrAccountNotFound) {
			log.Warn("failed to login, unknown email", "email", req.Email)
			return dto.AuthResponse{}, err
		}
		log.Error("failed to read user from db", err)
		return dto.AuthResponse{}, fmt.Errorf("cannot read user from db: %w", err)
	}

	// Exact string comparison against the stored password; accounts carry the
	// password exactly as entered.
	if user.Password != req.Password {
		log.Warn("failed to login, password mismatch", "email", req.Email)
		return dto.AuthResponse{}, myerrors.ErrInvalidPassword
	}

	token, err := as.issueToken(user)
	if err != nil {
		log.Error("failed to create jwt token", err)
		return dto.AuthResponse{}, err
	}

	log.Info("user login successfully", "email", user.Email)
	return dto.AuthResponse{
		UserID:   user.Email,
		Username: user.Username,
		Token:    token,
	}, nil
}

func (as *AuthService) issueToken(user model.UserAccount) (string, error) {
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.Email,
		"username": user.Username,
		"exp":      time.Now().Add(TokenTTL).Unix(),
	})
	return accessToken.SignedString([]byte(as.cfg.App.JwtSecret))
}

func validateRegistration(req dto.RegisterRequest) error {
	if err := validateUsername(req.Username); err != nil {
		return err
	}
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	if err := validatePassword(req.Password); err != nil {
		return err
	}
	if req.Password != req.ConfirmPassword {
		return myerrors.ErrPasswordMismatch
	}
	return nil
}

func validateLogin(req dto.LoginRequest) error {
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	if req.Password == "" {
		return fmt.Errorf("invalid password: %w", myerrors.ErrFieldIsEmpty)
	}
	return nil
}

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("invalid username: %w", myerrors.ErrFieldIsEmpty)
	}
	if len(username) < MinUsernameLen || len(username) > MaxUsernameLen {
		return myerrors.ErrInvalidUsername
	}
	if !usernameRe.MatchString(username) {
		return myerrors.ErrInvalidUsername
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("invalid email: %w", myerrors.ErrFieldIsEmpty)
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("%w: %q", myerrors.ErrInvalidEmail, email)
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("invalid password: %w", myerrors.ErrFieldIsEmpty)
	}
	if len(password) < MinPasswordLen || len(password) > MaxPasswordLen {
		return myerrors.ErrPasswordTooShort
	}
	return nil
}
