package utils

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
	"time"
)

func TestFormatMoney(t *testing.T) {
	cases := map[float64]string{
		0:         "0.00",
		2000:      "2,000.00",
		12500.5:   "12,500.50",
		1234567.8: "1,234,567.80",
		-45:       "-45.00",
	}
	for in, want := range cases {
		if got := FormatMoney(in); got != want {
			t.Errorf("FormatMoney(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestSafeFilenamePart(t *testing.T) {
	cases := map[string]string{
		"passport scan.pdf":     "passport_scan.pdf",
		"../../etc/passwd":      "passwd",
		`C:\Users\a\visa?.jpg`:  "visa_.jpg",
		"":                      "NA",
		"..":                    "NA",
		".hidden":               "hidden",
	}
	for in, want := range cases {
		if got := SafeFilenamePart(in); got != want {
			t.Errorf("SafeFilenamePart(%q) = %q, want %q", in, got, want)
		}
	}
	long := strings.Repeat("x", 120) + ".pdf"
	if got := SafeFilenamePart(long); len(got) != 80 || !strings.HasSuffix(got, ".pdf") {
		t.Errorf("long name not trimmed: %q (%d)", got, len(got))
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2025, 9, 1, 23, 59, 0, 0, time.Local)
	got := StartOfDay(in)
	if got.Hour() != 0 || got.Day() != 1 {
		t.Fatalf("StartOfDay = %v", got)
	}
	if FormatDate(got) != "2025-09-01" {
		t.Fatalf("FormatDate = %s", FormatDate(got))
	}
}

func TestLogEventFormat(t *testing.T) {
	var buf bytes.Buffer
	flags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	}()

	LogEvent("", "booking", "create", "id=5")
	LogWarn("req-1", "support", "transition_rejected", "id=2")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if lines[0] != "[BOOKING] action=create request_id=- msg=id=5" {
		t.Fatalf("unexpected event line %q", lines[0])
	}
	if lines[1] != "[SUPPORT] level=warn action=transition_rejected request_id=req-1 msg=id=2" {
		t.Fatalf("unexpected warn line %q", lines[1])
	}
}
