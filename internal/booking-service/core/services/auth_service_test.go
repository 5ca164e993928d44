package services

import (
	"context"
	"errors"
	"testing"

	"bookmycar/internal/booking-service/adapters/driven/memdb"
	"bookmycar/internal/booking-service/core/domain/dto"
	"bookmycar/internal/booking-service/core/myerrors"
	"bookmycar/internal/booking-service/core/ports/driver"
	"bookmycar/internal/config"
)

func newTestAuthService(t *testing.T) driver.IAuthService {
	t.Helper()
	cfg := &config.Config{
		App: &config.Appconfig{JwtSecret: "test-secret"},
	}
	return NewAuthService(context.Background(), cfg, memdb.NewUserRepo(), testLogger())
}

func validRegistration() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username:        "Asha Rao",
		Email:           "asha@example.com",
		Password:        "sekret",
		ConfirmPassword: "sekret",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	as := newTestAuthService(t)
	ctx := context.Background()

	res, err := as.Register(ctx, validRegistration())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if res.UserID != "asha@example.com" {
		t.Errorf("UserID = %q, want the email", res.UserID)
	}
	if res.Token == "" {
		t.Error("registration returned no token")
	}

	login, err := as.Login(ctx, dto.LoginRequest{Email: "asha@example.com", Password: "sekret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.Username != "Asha Rao" {
		t.Errorf("Username = %q, want %q", login.Username, "Asha Rao")
	}
	if login.Token == "" {
		t.Error("login returned no token")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	as := newTestAuthService(t)
	ctx := context.Background()

	if _, err := as.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := as.Login(ctx, dto.LoginRequest{Email: "asha@example.com", Password: "wrong"})
	if !errors.Is(err, myerrors.ErrInvalidPassword) {
		t.Errorf("got %v, want ErrInvalidPassword", err)
	}

	// Case differences count as a mismatch too.
	_, err = as.Login(ctx, dto.LoginRequest{Email: "asha@example.com", Password: "Sekret"})
	if !errors.Is(err, myerrors.ErrInvalidPassword) {
		t.Errorf("got %v, want ErrInvalidPassword", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	as := newTestAuthService(t)

	_, err := as.Login(context.Background(), dto.LoginRequest{Email: "nobody@example.com", Password: "sekret"})
	if !errors.Is(err, myerrors.ErrAccountNotFound) {
		t.Errorf("got %v, want ErrAccountNotFound", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	as := newTestAuthService(t)
	ctx := context.Background()

	if _, err := as.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	req := validRegistration()
	req.Username = "Someone Else"
	if _, err := as.Register(ctx, req); !errors.Is(err, myerrors.ErrDuplicateEmail) {
		t.Errorf("got %v, want ErrDuplicateEmail", err)
	}

	// Original account still wins the login.
	login, err := as.Login(ctx, dto.LoginRequest{Email: "asha@example.com", Password: "sekret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.Username != "Asha Rao" {
		t.Errorf("Username = %q, original account overwritten", login.Username)
	}
}

func TestRegisterValidation(t *testing.T) {
	as := newTestAuthService(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*dto.RegisterRequest)
		want   error
	}{
		{"empty username", func(r *dto.RegisterRequest) { r.Username = "" }, myerrors.ErrFieldIsEmpty},
		{"short username", func(r *dto.RegisterRequest) { r.Username = "Al" }, myerrors.ErrInvalidUsername},
		{"digits in username", func(r *dto.RegisterRequest) { r.Username = "Asha 99" }, myerrors.ErrInvalidUsername},
		{"bad email", func(r *dto.RegisterRequest) { r.Email = "not-an-email" }, myerrors.ErrInvalidEmail},
		{"short password", func(r *dto.RegisterRequest) { r.Password, r.ConfirmPassword = "abc", "abc" }, myerrors.ErrPasswordTooShort},
		{"confirmation mismatch", func(r *dto.RegisterRequest) { r.ConfirmPassword = "other" }, myerrors.ErrPasswordMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegistration()
			tc.mutate(&req)
			if _, err := as.Register(ctx, req); !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}
