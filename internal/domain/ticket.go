package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

// TicketType is immutable catalog data describing what a ticket costs and
// what it entitles the holder to.
type TicketType struct {
	ID            int
	Name          string
	Price         decimal.Decimal
	IsRemote      bool
	IncludesHotel bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Ticket struct {
	ID           int
	TicketTypeID int
	EnrollmentID int
	Status       TicketStatus
	TicketType   TicketType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type TicketRepository interface {
	GetTicketTypes(ctx context.Context) ([]TicketType, error)
	GetTicketTypeById(ctx context.Context, ticketTypeId int) (*TicketType, error)

	// GetByEnrollmentId returns the first ticket of an enrollment, with its
	// ticket type embedded. An enrollment holds at most one active ticket.
	GetByEnrollmentId(ctx context.Context, enrollmentId int) (*Ticket, error)
	GetById(ctx context.Context, ticketId int) (*Ticket, error)
	Create(ctx context.Context, ticket *Ticket) error
}
