package models

import (
	"time"

	"umrah/internal/domain"
)

type SupportRequest struct {
	ID        int64                `db:"id" json:"id"`
	UserID    int64                `db:"user_id" json:"user_id"`
	Issue     string               `db:"issue" json:"issue"`
	Status    domain.SupportStatus `db:"status" json:"status"`
	CreatedAt time.Time            `db:"created_at" json:"created_at"`
}

// ActivityEntry is append-only.
type ActivityEntry struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Action    string    `db:"action" json:"action"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
}

type Overview struct {
	Trips         int    `json:"trips"`
	Travellers    int    `json:"travellers"`
	Bookings      int    `json:"bookings"`
	OpenTickets   int    `json:"open_tickets"`
	UpcomingTrips []Trip `json:"upcoming_trips"`
}
