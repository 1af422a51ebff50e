package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mfortes/eventstay/internal/domain"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) GetByUserId(ctx context.Context, userId int) (*domain.Booking, error) {
	query := `
		SELECT
			b.id,
			b.user_id,
			b.room_id,
			b.created_at,
			b.updated_at,
			r.id,
			r.name,
			r.capacity,
			r.hotel_id,
			r.created_at,
			r.updated_at
		FROM bookings b
		JOIN rooms r ON b.room_id = r.id
		WHERE b.user_id = $1
		ORDER BY b.id
		LIMIT 1
	`

	var booking domain.Booking

	err := p.db.QueryRow(ctx, query, userId).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&booking.Room.ID,
		&booking.Room.Name,
		&booking.Room.Capacity,
		&booking.Room.HotelID,
		&booking.Room.CreatedAt,
		&booking.Room.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	bookings, err := p.retrieveRoomOccupancy(ctx, booking.RoomID)
	if err != nil {
		return nil, err
	}

	booking.Room.Bookings = bookings

	return &booking, nil
}

// retrieveRoomOccupancy loads the bookings of the embedded room so callers
// can report how many of its spots are taken.
func (p *PostgresBookingRepository) retrieveRoomOccupancy(ctx context.Context, roomId int) ([]domain.Booking, error) {
	query := `
		SELECT id, user_id, room_id, created_at, updated_at
		FROM bookings
		WHERE room_id = $1
	`

	rows, err := p.db.Query(ctx, query, roomId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking

		err = rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.RoomID,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)

		if err != nil {
			return nil, err
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (p *PostgresBookingRepository) GetById(ctx context.Context, bookingId int) (*domain.Booking, error) {
	query := `
		SELECT id, user_id, room_id, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking domain.Booking

	err := p.db.QueryRow(ctx, query, bookingId).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &booking, nil
}

func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		err := lockRoomWithCapacity(ctx, tx, booking.RoomID)
		if err != nil {
			return err
		}

		query := `
			INSERT INTO bookings (user_id, room_id)
			VALUES ($1, $2)
			RETURNING id, created_at, updated_at
		`

		return tx.QueryRow(ctx, query, booking.UserID, booking.RoomID).
			Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	})
}

func (p *PostgresBookingRepository) UpdateRoom(ctx context.Context, bookingId, roomId int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		err := lockRoomWithCapacity(ctx, tx, roomId)
		if err != nil {
			return err
		}

		query := `
			UPDATE bookings
			SET room_id = $1, updated_at = NOW()
			WHERE id = $2
		`

		tag, err := tx.Exec(ctx, query, roomId, bookingId)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			return domain.ErrRecordNotFound
		}

		return nil
	})
}

// lockRoomWithCapacity takes a row lock on the room and re-counts its
// bookings inside the transaction. Two concurrent requests racing for the
// last spot serialize on the lock, so the second one sees the first one's
// booking and fails with ErrRoomFull instead of overfilling the room.
func lockRoomWithCapacity(ctx context.Context, tx pgx.Tx, roomId int) error {
	var capacity int

	err := tx.QueryRow(ctx, `SELECT capacity FROM rooms WHERE id = $1 FOR UPDATE`, roomId).
		Scan(&capacity)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRecordNotFound
		}

		return err
	}

	var booked int

	err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE room_id = $1`, roomId).
		Scan(&booked)

	if err != nil {
		return err
	}

	if booked >= capacity {
		return domain.ErrRoomFull
	}

	return nil
}
