// Package api holds the JSON request and response types of the HTTP surface.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type RegisterUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=25"`
}

type UserResponse struct {
	Id        int       `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignInResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type EnrollmentRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Document string `json:"document" validate:"required,numeric,len=11"`
	Birthday string `json:"birthday" validate:"required,datetime=2006-01-02"`
	Phone    string `json:"phone" validate:"required,min=8,max=15"`
}

type EnrollmentResponse struct {
	Id       int    `json:"id"`
	Name     string `json:"name"`
	Document string `json:"document"`
	Birthday string `json:"birthday"`
	Phone    string `json:"phone"`
}

type TicketTypeResponse struct {
	Id            int             `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	IsRemote      bool            `json:"isRemote"`
	IncludesHotel bool            `json:"includesHotel"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type CreateTicketRequest struct {
	TicketTypeId int `json:"ticketTypeId" validate:"required,min=1"`
}

type TicketResponse struct {
	Id           int                `json:"id"`
	Status       string             `json:"status"`
	TicketTypeId int                `json:"ticketTypeId"`
	EnrollmentId int                `json:"enrollmentId"`
	TicketType   TicketTypeResponse `json:"TicketType"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

type CardData struct {
	Issuer         string `json:"issuer" validate:"required"`
	Number         string `json:"number" validate:"required,credit_card"`
	Name           string `json:"name" validate:"required"`
	ExpirationDate string `json:"expirationDate" validate:"required,card_expiry"`
	Cvv            string `json:"cvv" validate:"required,numeric,min=3,max=4"`
}

type CreatePaymentRequest struct {
	TicketId int      `json:"ticketId" validate:"required,min=1"`
	CardData CardData `json:"cardData" validate:"required"`
}

type PaymentResponse struct {
	Id             int             `json:"id"`
	TicketId       int             `json:"ticketId"`
	Value          decimal.Decimal `json:"value"`
	CardIssuer     string          `json:"cardIssuer"`
	CardLastDigits string          `json:"cardLastDigits"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type HotelResponse struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type RoomResponse struct {
	Id          int       `json:"id"`
	Name        string    `json:"name"`
	Capacity    int       `json:"capacity"`
	HotelId     int       `json:"hotelId"`
	BookedCount int       `json:"bookedCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateBookingRequest struct {
	RoomId int `json:"roomId" validate:"required,min=1"`
}

type BookingIdResponse struct {
	BookingId int `json:"bookingId"`
}

type BookingResponse struct {
	Id   int          `json:"id"`
	Room RoomResponse `json:"Room"`
}

type HealthResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type SystemInfo struct {
	Environment string `json:"environment"`
	Version     string `json:"version"`
}
