package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mfortes/eventstay/internal/domain"
)

type PostgresHotelRepository struct {
	db *pgxpool.Pool
}

func NewPostgresHotelRepository(db *pgxpool.Pool) *PostgresHotelRepository {
	return &PostgresHotelRepository{
		db: db,
	}
}

func (p *PostgresHotelRepository) GetAll(ctx context.Context) ([]domain.Hotel, error) {
	query := `
		SELECT id, name, image, created_at, updated_at
		FROM hotels
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hotels := make([]domain.Hotel, 0)

	for rows.Next() {
		var hotel domain.Hotel

		err = rows.Scan(
			&hotel.ID,
			&hotel.Name,
			&hotel.Image,
			&hotel.CreatedAt,
			&hotel.UpdatedAt,
		)

		if err != nil {
			return nil, err
		}

		hotels = append(hotels, hotel)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return hotels, nil
}

func (p *PostgresHotelRepository) GetById(ctx context.Context, hotelId int) (*domain.Hotel, error) {
	query := `
		SELECT id, name, image, created_at, updated_at
		FROM hotels
		WHERE id = $1
	`

	var hotel domain.Hotel

	err := p.db.QueryRow(ctx, query, hotelId).Scan(
		&hotel.ID,
		&hotel.Name,
		&hotel.Image,
		&hotel.CreatedAt,
		&hotel.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &hotel, nil
}
