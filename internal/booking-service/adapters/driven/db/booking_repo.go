package db

import (
	"context"
	"database/sql"
	"errors"

	"bookmycar/internal/booking-service/core/domain/model"
	"bookmycar/internal/booking-service/core/myerrors"
	"bookmycar/internal/booking-service/core/ports/driven"

	"github.com/jackc/pgx/v5"
)

type BookingRepo struct {
	db *DB
}

func NewBookingRepo(db *DB) driven.IBookingRepo {
	return &BookingRepo{
		db: db,
	}
}

func (br *BookingRepo) Create(ctx context.Context, b model.Booking) error {
	q := `
	INSERT INTO bookings(
		booking_id,
		user_id,
		pickup_lat,
		pickup_lng,
		pickup_label,
		pickup_subtitle,
		destination_lat,
		destination_lng,
		destination_label,
		destination_subtitle,
		vehicle_class,
		distance_text,
		duration_text,
		price_text,
		driver_name,
		driver_phone,
		driver_email,
		rating,
		is_favorite,
		payment_method,
		created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`

	conn := br.db.conn
	_, err := conn.Exec(ctx, q,
		b.ID,
		b.UserID,
		b.Pickup.Latitude,
		b.Pickup.Longitude,
		b.Pickup.Label,
		b.Pickup.Subtitle,
		b.Destination.Latitude,
		b.Destination.Longitude,
		b.Destination.Label,
		b.Destination.Subtitle,
		string(b.VehicleClass),
		b.DistanceText,
		b.DurationText,
		b.PriceText,
		b.DriverName,
		b.DriverPhone,
		b.DriverEmail,
		ratingValue(b.Rating),
		b.IsFavorite,
		methodValue(b.PaymentMethod),
		b.CreatedAt,
	)
	return err
}

func (br *BookingRepo) GetByID(ctx context.Context, userID, bookingID string) (model.Booking, error) {
	q := selectBookings + `
	WHERE
		user_id = $1 AND booking_id = $2`

	conn := br.db.conn
	b, err := scanBooking(conn.QueryRow(ctx, q, userID, bookingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Booking{}, myerrors.ErrBookingNotFound
		}
		return model.Booking{}, err
	}
	return b, nil
}

func (br *BookingRepo) ListByUser(ctx context.Context, userID string) ([]model.Booking, error) {
	q := selectBookings + `
	WHERE
		user_id = $1
	ORDER BY
		created_at DESC`

	conn := br.db.conn
	rows, err := conn.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []model.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (br *BookingRepo) SetRating(ctx context.Context, userID, bookingID string, rating int) error {
	q := `
	UPDATE
		bookings
	SET
		rating = $1
	WHERE
		user_id = $2 AND booking_id = $3`

	conn := br.db.conn
	cmd, err := conn.Exec(ctx, q, rating, userID, bookingID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return myerrors.ErrBookingNotFound
	}
	return nil
}

func (br *BookingRepo) ToggleFavorite(ctx context.Context, userID, bookingID string) (bool, error) {
	q := `
	UPDATE
		bookings
	SET
		is_favorite = NOT is_favorite
	WHERE
		user_id = $1 AND booking_id = $2
	RETURNING
		is_favorite`

	conn := br.db.conn
	fav := false
	row := conn.QueryRow(ctx, q, userID, bookingID)
	if err := row.Scan(&fav); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, myerrors.ErrBookingNotFound
		}
		return false, err
	}
	return fav, nil
}

func (br *BookingRepo) Delete(ctx context.Context, userID, bookingID string) error {
	q := `DELETE FROM bookings WHERE user_id = $1 AND booking_id = $2`

	conn := br.db.conn
	_, err := conn.Exec(ctx, q, userID, bookingID)
	return err
}

const selectBookings = `
	SELECT
		booking_id,
		user_id,
		pickup_lat,
		pickup_lng,
		pickup_label,
		pickup_subtitle,
		destination_lat,
		destination_lng,
		destination_label,
		destination_subtitle,
		vehicle_class,
		distance_text,
		duration_text,
		price_text,
		driver_name,
		driver_phone,
		driver_email,
		rating,
		is_favorite,
		payment_method,
		created_at
	FROM
		bookings`

func scanBooking(row pgx.Row) (model.Booking, error) {
	var (
		b      model.Booking
		class  string
		rating sql.NullInt32
		method sql.NullString
	)
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.Pickup.Latitude,
		&b.Pickup.Longitude,
		&b.Pickup.Label,
		&b.Pickup.Subtitle,
		&b.Destination.Latitude,
		&b.Destination.Longitude,
		&b.Destination.Label,
		&b.Destination.Subtitle,
		&class,
		&b.DistanceText,
		&b.DurationText,
		&b.PriceText,
		&b.DriverName,
		&b.DriverPhone,
		&b.DriverEmail,
		&rating,
		&b.IsFavorite,
		&method,
		&b.CreatedAt,
	)
	if err != nil {
		return model.Booking{}, err
	}

	b.VehicleClass = model.VehicleClass(class)
	if rating.Valid {
		r := int(rating.Int32)
		b.Rating = &r
	}
	if method.Valid {
		m := method.String
		b.PaymentMethod = &m
	}
	return b, nil
}

func ratingValue(r *int) any {
	if r == nil {
		return nil
	}
	return *r
}

func methodValue(m *string) any {
	if m == nil {
		return nil
	}
	return *m
}
