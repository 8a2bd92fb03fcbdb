package domain

import "testing"

func TestBookingStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		ok       bool
	}{
		{BookingPending, BookingConfirmed, true},
		{BookingPending, BookingCancelled, true},
		{BookingConfirmed, BookingCancelled, true},
		{BookingConfirmed, BookingPending, false},
		{BookingCancelled, BookingConfirmed, false},
		{BookingCancelled, BookingPending, false},
		{BookingPending, BookingPending, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.ok {
			t.Errorf("%s -> %s: got %v want %v", tc.from, tc.to, got, tc.ok)
		}
	}
	if !BookingCancelled.Terminal() || BookingConfirmed.Terminal() {
		t.Fatalf("only Cancelled should be terminal")
	}
	if BookingCancelled.AcceptsDocuments() || !BookingConfirmed.AcceptsDocuments() {
		t.Fatalf("document acceptance wrong")
	}
}

func TestParseBookingStatus(t *testing.T) {
	st, err := ParseBookingStatus(" confirmed ")
	if err != nil || st != BookingConfirmed {
		t.Fatalf("got %q, %v", st, err)
	}
	if _, err := ParseBookingStatus("Refunded"); !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSupportStatusTransitions(t *testing.T) {
	if !SupportPending.CanTransition(SupportResolved) {
		t.Fatalf("Pending -> Resolved must be allowed")
	}
	if SupportResolved.CanTransition(SupportPending) {
		t.Fatalf("Resolved is terminal")
	}
	if _, err := ParseSupportStatus("closed"); !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("packages")
	if err != nil || k.Table() != "packages" {
		t.Fatalf("got %q, %v", k, err)
	}
	if _, err := ParseKind("packages; DROP TABLE users"); !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
