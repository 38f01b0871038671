package dto

import (
	"time"

	"github.com/danuartha/resto-pos/models"
)

type ReservationCreateRequest struct {
	TableID   uint      `json:"table_id" binding:"required"`
	GuestName string    `json:"guest_name" binding:"required"`
	PartySize int       `json:"party_size" binding:"required,min=1"`
	Phone     string    `json:"phone"`
	EventTime time.Time `json:"event_time" binding:"required"`
	Status    string    `json:"status"`
}

type ReservationUpdateRequest struct {
	TableID   *uint      `json:"table_id"`
	GuestName *string    `json:"guest_name"`
	PartySize *int       `json:"party_size"`
	Phone     *string    `json:"phone"`
	EventTime *time.Time `json:"event_time"`
	Status    *string    `json:"status"`
}

type ReservationResponse struct {
	ID         uint      `json:"id"`
	TableID    uint      `json:"table_id"`
	TableLabel string    `json:"table_label"`
	GuestName  string    `json:"guest_name"`
	PartySize  int       `json:"party_size"`
	Phone      string    `json:"phone,omitempty"`
	EventTime  time.Time `json:"event_time"`
	Status     string    `json:"status"`
}

func NewReservationResponse(r models.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:         r.ID,
		TableID:    r.TableID,
		TableLabel: r.Table.Label,
		GuestName:  r.GuestName,
		PartySize:  r.PartySize,
		Phone:      r.Phone,
		EventTime:  r.EventTime,
		Status:     r.Status,
	}
}

func NewReservationResponses(reservations []models.Reservation) []ReservationResponse {
	responses := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		responses = append(responses, NewReservationResponse(r))
	}
	return responses
}
