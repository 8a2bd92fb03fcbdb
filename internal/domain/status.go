package domain

import "strings"

type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
)

var bookingMoves = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCancelled},
}

// ParseBookingStatus accepts the three statuses case-insensitively.
func ParseBookingStatus(s string) (BookingStatus, error) {
	for _, st := range []BookingStatus{BookingPending, BookingConfirmed, BookingCancelled} {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", ValidationError{Field: "status", Msg: "status booking tidak dikenal: " + s}
}

func (s BookingStatus) CanTransition(to BookingStatus) bool {
	for _, next := range bookingMoves[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s BookingStatus) Terminal() bool { return len(bookingMoves[s]) == 0 }

// AcceptsDocuments is false once a booking is cancelled.
func (s BookingStatus) AcceptsDocuments() bool {
	return s == BookingPending || s == BookingConfirmed
}

type SupportStatus string

const (
	SupportPending  SupportStatus = "Pending"
	SupportResolved SupportStatus = "Resolved"
)

func ParseSupportStatus(s string) (SupportStatus, error) {
	for _, st := range []SupportStatus{SupportPending, SupportResolved} {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", ValidationError{Field: "status", Msg: "status tiket tidak dikenal: " + s}
}

func (s SupportStatus) CanTransition(to SupportStatus) bool {
	return s == SupportPending && to == SupportResolved
}

func (s SupportStatus) Terminal() bool { return s == SupportResolved }
