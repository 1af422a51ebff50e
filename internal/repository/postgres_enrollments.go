package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mfortes/eventstay/internal/domain"
)

type PostgresEnrollmentRepository struct {
	db *pgxpool.Pool
}

func NewPostgresEnrollmentRepository(db *pgxpool.Pool) *PostgresEnrollmentRepository {
	return &PostgresEnrollmentRepository{
		db: db,
	}
}

func (p *PostgresEnrollmentRepository) GetByUserId(ctx context.Context, userId int) (*domain.Enrollment, error) {
	query := `
		SELECT id, user_id, name, document, birthday, phone, created_at, updated_at
		FROM enrollments
		WHERE user_id = $1
	`

	var enrollment domain.Enrollment

	err := p.db.QueryRow(ctx, query, userId).Scan(
		&enrollment.ID,
		&enrollment.UserID,
		&enrollment.Name,
		&enrollment.Document,
		&enrollment.Birthday,
		&enrollment.Phone,
		&enrollment.CreatedAt,
		&enrollment.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &enrollment, nil
}

func (p *PostgresEnrollmentRepository) Upsert(ctx context.Context, enrollment *domain.Enrollment) error {
	query := `
		INSERT INTO enrollments (user_id, name, document, birthday, phone)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET name = EXCLUDED.name,
			document = EXCLUDED.document,
			birthday = EXCLUDED.birthday,
			phone = EXCLUDED.phone,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	return p.db.QueryRow(
		ctx,
		query,
		enrollment.UserID,
		enrollment.Name,
		enrollment.Document,
		enrollment.Birthday,
		enrollment.Phone,
	).Scan(&enrollment.ID, &enrollment.CreatedAt, &enrollment.UpdatedAt)
}
