package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"bookmycar/internal/booking-service/core/domain/dto"
	"bookmycar/internal/booking-service/core/domain/model"
	"bookmycar/internal/booking-service/core/myerrors"
	"bookmycar/internal/booking-service/core/ports/driven"
	driverports "bookmycar/internal/booking-service/core/ports/driver"
	"bookmycar/internal/mylogger"

	"github.com/google/uuid"
)

var (
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	cvvRe        = regexp.MustCompile(`^\d{3,4}$`)
	yearRe       = regexp.MustCompile(`^(\d{2}|\d{4})$`)
)

type CardService struct {
	ctx      context.Context
	cardRepo driven.ICardRepo
	mylog    mylogger.Logger
}

func NewCardService(ctx context.Context, cardRepo driven.ICardRepo, mylog mylogger.Logger) driverports.ICardService {
	return &CardService{
		ctx:      ctx,
		cardRepo: cardRepo,
		mylog:    mylog,
	}
}

func (cs *CardService) Add(ctx context.Context, userID string, req dto.AddCardRequest) (model.PaymentCard, error) {
	log := cs.mylog.Action("AddCard")

	if err := validateCard(req); err != nil {
		return model.PaymentCard{}, err
	}

	existing, err := cs.cardRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Error("failed to list cards", err, "user_id", userID)
		return model.PaymentCard{}, fmt.Errorf("cannot list cards: %w", err)
	}

	card := model.PaymentCard{
		ID:          uuid.NewString(),
		UserID:      userID,
		HolderName:  req.HolderName,
		Number:      req.Number,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		CVV:         req.CVV,
		CardType:    req.CardType,
		// The first stored card becomes the default.
		IsDefault: len(existing) == 0,
		CreatedAt: time.Now().UTC(),
	}

	if err := cs.cardRepo.Create(ctx, card); err != nil {
		log.Error("failed to save card", err, "user_id", userID)
		return model.PaymentCard{}, fmt.Errorf("cannot save card: %w", err)
	}

	if req.MakeDefault && !card.IsDefault {
		if err := cs.cardRepo.SetDefault(ctx, userID, card.ID); err != nil {
			log.Error("failed to set default card", err, "card_id", card.ID)
			return model.PaymentCard{}, fmt.Errorf("cannot set default card: %w", err)
		}
		card.IsDefault = true
	}

	log.Info("card added", "user_id", userID, "card_id", card.ID, "default", card.IsDefault)
	return card, nil
}

func (cs *CardService) List(ctx context.Context, userID string) ([]model.PaymentCard, error) {
	return cs.cardRepo.ListByUser(ctx, userID)
}

func (cs *CardService) SetDefault(ctx context.Context, userID, cardID string) error {
	log := cs.mylog.Action("SetDefaultCard")

	if err := cs.cardRepo.SetDefault(ctx, userID, cardID); err != nil {
		return err
	}

	log.Info("default card changed", "user_id", userID, "card_id", cardID)
	return nil
}

func (cs *CardService) Delete(ctx context.Context, userID, cardID string) error {
	log := cs.mylog.Action("DeleteCard")

	card, err := cs.cardRepo.GetByID(ctx, userID, cardID)
	if err != nil {
		return err
	}

	if err := cs.cardRepo.Delete(ctx, userID, cardID); err != nil {
		return err
	}

	// Deleting the default promotes the most recent remaining card, so the
	// single-default invariant holds whenever any card exists.
	if card.IsDefault {
		remaining, err := cs.cardRepo.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(remaining) > 0 {
			if err := cs.cardRepo.SetDefault(ctx, userID, remaining[0].ID); err != nil {
				return err
			}
		}
	}

	log.Info("card deleted", "user_id", userID, "card_id", cardID)
	return nil
}

func validateCard(req dto.AddCardRequest) error {
	if req.HolderName == "" {
		return fmt.Errorf("%w: holder name is empty", myerrors.ErrInvalidCard)
	}
	if !cardNumberRe.MatchString(req.Number) {
		return fmt.Errorf("%w: number must be 16 digits", myerrors.ErrInvalidCard)
	}
	month, err := strconv.Atoi(req.ExpiryMonth)
	if err != nil || month < 1 || month > 12 {
		return fmt.Errorf("%w: expiry month must be 1-12", myerrors.ErrInvalidCard)
	}
	if !yearRe.MatchString(req.ExpiryYear) {
		return fmt.Errorf("%w: expiry year must be 2 or 4 digits", myerrors.ErrInvalidCard)
	}
	if !cvvRe.MatchString(req.CVV) {
		return fmt.Errorf("%w: cvv must be 3 or 4 digits", myerrors.ErrInvalidCard)
	}
	if req.CardType != model.CardTypeCredit && req.CardType != model.CardTypeDebit {
		return fmt.Errorf("%w: type must be %s or %s", myerrors.ErrInvalidCard, model.CardTypeCredit, model.CardTypeDebit)
	}
	return nil
}
