// Package memdb holds map-backed implementations of the repository ports.
// They back the service tests and carry the same error contracts as the
// Postgres adapters.
package memdb

import (
	"context"
	"sort"
	"sync"

	"bookmycar/internal/booking-service/core/domain/model"
	"bookmycar/internal/booking-service/core/myerrors"
	"bookmycar/internal/booking-service/core/ports/driven"
)

type UserRepo struct {
	mu    sync.Mutex
	users map[string]model.UserAccount
}

func NewUserRepo() driven.IUserRepo {
	return &UserRepo{users: make(map[string]model.UserAccount)}
}

func (ur *UserRepo) Create(ctx context.Context, user model.UserAccount) error {
	ur.mu.Lock()
	defer ur.mu.Unlock()

	if _, ok := ur.users[user.Email]; ok {
		return myerrors.ErrDuplicateEmail
	}
	ur.users[user.Email] = user
	return nil
}

func (ur *UserRepo) GetByEmail(ctx context.Context, email string) (model.UserAccount, error) {
	ur.mu.Lock()
	defer ur.mu.Unlock()

	user, ok := ur.users[email]
	if !ok {
		return model.UserAccount{}, myerrors.ErrAccountNotFound
	}
	return user, nil
}

type BookingRepo struct {
	mu       sync.Mutex
	bookings map[string]model.Booking
}

func NewBookingRepo() driven.IBookingRepo {
	return &BookingRepo{bookings: make(map[string]model.Booking)}
}

func (br *BookingRepo) Create(ctx context.Context, b model.Booking) error {
	br.mu.Lock()
	defer br.mu.Unlock()

	br.bookings[b.ID] = b
	return nil
}

func (br *BookingRepo) GetByID(ctx context.Context, userID, bookingID string) (model.Booking, error) {
	br.mu.Lock()
	defer br.mu.Unlock()

	b, ok := br.bookings[bookingID]
	if !ok || b.UserID != userID {
		return model.Booking{}, myerrors.ErrBookingNotFound
	}
	return b, nil
}

func (br *BookingRepo) ListByUser(ctx context.Context, userID string) ([]model.Booking, error) {
	br.mu.Lock()
	defer br.mu.Unlock()

	var bookings []model.Booking
	for _, b := range br.bookings {
		if b.UserID == userID {
			bookings = append(bookings, b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}

func (br *BookingRepo) SetRating(ctx context.Context, userID, bookingID string, rating int) error {
	br.mu.Lock()
	defer br.mu.Unlock()

	b, ok := br.bookings[bookingID]
	if !ok || b.UserID != userID {
		return myerrors.ErrBookingNotFound
	}
	r := rating
	b.Rating = &r
	br.bookings[bookingID] = b
	return nil
}

func (br *BookingRepo) ToggleFavorite(ctx context.Context, userID, bookingID string) (bool, error) {
	br.mu.Lock()
	defer br.mu.Unlock()

	b, ok := br.bookings[bookingID]
	if !ok || b.UserID != userID {
		return false, myerrors.ErrBookingNotFound
	}
	b.IsFavorite = !b.IsFavorite
	br.bookings[bookingID] = b
	return b.IsFavorite, nil
}

func (br *BookingRepo) Delete(ctx context.Context, userID, bookingID string) error {
	br.mu.Lock()
	defer br.mu.Unlock()

	b, ok := br.bookings[bookingID]
	if ok && b.UserID == userID {
		delete(br.bookings, bookingID)
	}
	return nil
}

type CardRepo struct {
	mu    sync.Mutex
	cards map[string]model.PaymentCard
}

func NewCardRepo() driven.ICardRepo {
	return &CardRepo{cards: make(map[string]model.PaymentCard)}
}

func (cr *CardRepo) Create(ctx context.Context, card model.PaymentCard) error {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	cr.cards[card.ID] = card
	return nil
}

func (cr *CardRepo) GetByID(ctx context.Context, userID, cardID string) (model.PaymentCard, error) {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	card, ok := cr.cards[cardID]
	if !ok || card.UserID != userID {
		return model.PaymentCard{}, myerrors.ErrCardNotFound
	}
	return card, nil
}

func (cr *CardRepo) ListByUser(ctx context.Context, userID string) ([]model.PaymentCard, error) {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	var cards []model.PaymentCard
	for _, card := range cr.cards {
		if card.UserID == userID {
			cards = append(cards, card)
		}
	}
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].CreatedAt.After(cards[j].CreatedAt)
	})
	return cards, nil
}

func (cr *CardRepo) SetDefault(ctx context.Context, userID, cardID string) error {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	target, ok := cr.cards[cardID]
	if !ok || target.UserID != userID {
		return myerrors.ErrCardNotFound
	}
	for id, card := range cr.cards {
		if card.UserID != userID {
			continue
		}
		card.IsDefault = id == cardID
		cr.cards[id] = card
	}
	return nil
}

func (cr *CardRepo) Delete(ctx context.Context, userID, cardID string) error {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	card, ok := cr.cards[cardID]
	if !ok || card.UserID != userID {
		return myerrors.ErrCardNotFound
	}
	delete(cr.cards, cardID)
	return nil
}
