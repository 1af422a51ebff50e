package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mfortes/eventstay/internal/domain"
)

type PostgresTicketRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTicketRepository(db *pgxpool.Pool) *PostgresTicketRepository {
	return &PostgresTicketRepository{
		db: db,
	}
}

func (p *PostgresTicketRepository) GetTicketTypes(ctx context.Context) ([]domain.TicketType, error) {
	query := `
		SELECT id, name, price, is_remote, includes_hotel, created_at, updated_at
		FROM ticket_types
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ticketTypes := make([]domain.TicketType, 0)

	for rows.Next() {
		var ticketType domain.TicketType

		err = rows.Scan(
			&ticketType.ID,
			&ticketType.Name,
			&ticketType.Price,
			&ticketType.IsRemote,
			&ticketType.IncludesHotel,
			&ticketType.CreatedAt,
			&ticketType.UpdatedAt,
		)

		if err != nil {
			return nil, err
		}

		ticketTypes = append(ticketTypes, ticketType)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ticketTypes, nil
}

func (p *PostgresTicketRepository) GetTicketTypeById(ctx context.Context, ticketTypeId int) (*domain.TicketType, error) {
	query := `
		SELECT id, name, price, is_remote, includes_hotel, created_at, updated_at
		FROM ticket_types
		WHERE id = $1
	`

	var ticketType domain.TicketType

	err := p.db.QueryRow(ctx, query, ticketTypeId).Scan(
		&ticketType.ID,
		&ticketType.Name,
		&ticketType.Price,
		&ticketType.IsRemote,
		&ticketType.IncludesHotel,
		&ticketType.CreatedAt,
		&ticketType.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &ticketType, nil
}

func (p *PostgresTicketRepository) GetByEnrollmentId(ctx context.Context, enrollmentId int) (*domain.Ticket, error) {
	query := `
		SELECT
			t.id,
			t.ticket_type_id,
			t.enrollment_id,
			t.status,
			t.created_at,
			t.updated_at,
			tt.id,
			tt.name,
			tt.price,
			tt.is_remote,
			tt.includes_hotel,
			tt.created_at,
			tt.updated_at
		FROM tickets t
		JOIN ticket_types tt ON t.ticket_type_id = tt.id
		WHERE t.enrollment_id = $1
		ORDER BY t.id
		LIMIT 1
	`

	var ticket domain.Ticket

	err := p.db.QueryRow(ctx, query, enrollmentId).Scan(
		&ticket.ID,
		&ticket.TicketTypeID,
		&ticket.EnrollmentID,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ticket.TicketType.ID,
		&ticket.TicketType.Name,
		&ticket.TicketType.Price,
		&ticket.TicketType.IsRemote,
		&ticket.TicketType.IncludesHotel,
		&ticket.TicketType.CreatedAt,
		&ticket.TicketType.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &ticket, nil
}

func (p *PostgresTicketRepository) GetById(ctx context.Context, ticketId int) (*domain.Ticket, error) {
	query := `
		SELECT id, ticket_type_id, enrollment_id, status, created_at, updated_at
		FROM tickets
		WHERE id = $1
	`

	var ticket domain.Ticket

	err := p.db.QueryRow(ctx, query, ticketId).Scan(
		&ticket.ID,
		&ticket.TicketTypeID,
		&ticket.EnrollmentID,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &ticket, nil
}

func (p *PostgresTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	query := `
		INSERT INTO tickets (ticket_type_id, enrollment_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	return p.db.QueryRow(
		ctx,
		query,
		ticket.TicketTypeID,
		ticket.EnrollmentID,
		ticket.Status,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
}
