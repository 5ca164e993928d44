package db

import (
	"context"
	"errors"

	"bookmycar/internal/booking-service/core/domain/model"
	"bookmycar/internal/booking-service/core/myerrors"
	"bookmycar/internal/booking-service/core/ports/driven"

	"github.com/jackc/pgx/v5"
)

type CardRepo struct {
	db *DB
}

func NewCardRepo(db *DB) driven.ICardRepo {
	return &CardRepo{
		db: db,
	}
}

func (cr *CardRepo) Create(ctx context.Context, card model.PaymentCard) error {
	q := `
	INSERT INTO payment_cards(
		card_id,
		user_id,
		holder_name,
		number,
		expiry_month,
		expiry_year,
		cvv,
		card_type,
		is_default,
		created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	conn := cr.db.conn
	_, err := conn.Exec(ctx, q,
		card.ID,
		card.UserID,
		card.HolderName,
		card.Number,
		card.ExpiryMonth,
		card.ExpiryYear,
		card.CVV,
		card.CardType,
		card.IsDefault,
		card.CreatedAt,
	)
	return err
}

func (cr *CardRepo) GetByID(ctx context.Context, userID, cardID string) (model.PaymentCard, error) {
	q := selectCards + `
	WHERE
		user_id = $1 AND card_id = $2`

	conn := cr.db.conn
	card, err := scanCard(conn.QueryRow(ctx, q, userID, cardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.PaymentCard{}, myerrors.ErrCardNotFound
		}
		return model.PaymentCard{}, err
	}
	return card, nil
}

func (cr *CardRepo) ListByUser(ctx context.Context, userID string) ([]model.PaymentCard, error) {
	q := selectCards + `
	WHERE
		user_id = $1
	ORDER BY
		created_at DESC`

	conn := cr.db.conn
	rows, err := conn.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []model.PaymentCard
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

// SetDefault clears the default flag across the user's cards and sets it on
// the requested one inside a single transaction.
func (cr *CardRepo) SetDefault(ctx context.Context, userID, cardID string) error {
	conn := cr.db.conn
	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	q1 := `UPDATE payment_cards SET is_default = FALSE WHERE user_id = $1`
	if _, err := tx.Exec(ctx, q1, userID); err != nil {
		return err
	}

	q2 := `UPDATE payment_cards SET is_default = TRUE WHERE user_id = $1 AND card_id = $2`
	cmd, err := tx.Exec(ctx, q2, userID, cardID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return myerrors.ErrCardNotFound
	}
	return tx.Commit(ctx)
}

func (cr *CardRepo) Delete(ctx context.Context, userID, cardID string) error {
	q := `DELETE FROM payment_cards WHERE user_id = $1 AND card_id = $2`

	conn := cr.db.conn
	cmd, err := conn.Exec(ctx, q, userID, cardID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return myerrors.ErrCardNotFound
	}
	return nil
}

const selectCards = `
	SELECT
		card_id,
		user_id,
		holder_name,
		number,
		expiry_month,
		expiry_year,
		cvv,
		card_type,
		is_default,
		created_at
	FROM
		payment_cards`

func scanCard(row pgx.Row) (model.PaymentCard, error) {
	var card model.PaymentCard
	err := row.Scan(
		&card.ID,
		&card.UserID,
		&card.HolderName,
		&card.Number,
		&card.ExpiryMonth,
		&card.ExpiryYear,
		&card.CVV,
		&card.CardType,
		&card.IsDefault,
		&card.CreatedAt,
	)
	if err != nil {
		return model.PaymentCard{}, err
	}
	return card, nil
}
