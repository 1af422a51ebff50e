package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mfortes/eventstay/internal/domain"
)

type PostgresPaymentRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPaymentRepository(db *pgxpool.Pool) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{
		db: db,
	}
}

func (p *PostgresPaymentRepository) GetByTicketId(ctx context.Context, ticketId int) (*domain.Payment, error) {
	query := `
		SELECT id, ticket_id, value, card_issuer, card_last_digits, created_at, updated_at
		FROM payments
		WHERE ticket_id = $1
		ORDER BY id
		LIMIT 1
	`

	var payment domain.Payment

	err := p.db.QueryRow(ctx, query, ticketId).Scan(
		&payment.ID,
		&payment.TicketID,
		&payment.Value,
		&payment.CardIssuer,
		&payment.CardLastDigits,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// An unpaid ticket simply has no payment row yet.
			return nil, nil
		}

		return nil, err
	}

	return &payment, nil
}

func (p *PostgresPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO payments (ticket_id, value, card_issuer, card_last_digits)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at, updated_at
		`

		err := tx.QueryRow(
			ctx,
			query,
			payment.TicketID,
			payment.Value,
			payment.CardIssuer,
			payment.CardLastDigits,
		).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)

		if err != nil {
			return err
		}

		query = `
			UPDATE tickets
			SET status = $1, updated_at = NOW()
			WHERE id = $2
		`

		tag, err := tx.Exec(ctx, query, domain.TicketStatusPaid, payment.TicketID)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			return domain.ErrRecordNotFound
		}

		return nil
	})
}
