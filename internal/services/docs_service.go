package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"umrah/internal/domain/models"
	"umrah/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders agency paperwork as PDF.
type DocsService struct {
	RequestID string
	Now       func() time.Time
}

func (s DocsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Voucher returns the PDF bytes and a download file name.
func (s DocsService) Voucher(v models.BookingVoucher) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "generate_voucher", fmt.Sprintf("booking_id=%d", v.ID))
	return buildVoucherPDF(v, s.now())
}

func buildVoucherPDF(v models.BookingVoucher, issued time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Umrah Booking Voucher", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "UMRAH BOOKING VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("No Voucher : UMR-%06d", v.ID))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Diterbitkan: "+utils.FormatDateTime(issued))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Jamaah")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, line := range []string{
		fmt.Sprintf("Nama           : %s", orDash(v.UserName)),
		fmt.Sprintf("No Paspor      : %s", orDash(v.PassportNumber)),
	} {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Perjalanan")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, line := range []string{
		fmt.Sprintf("Paket          : %s (%d hari)", orDash(v.PackageName), v.DurationDays),
		fmt.Sprintf("Hotel          : %s", orDash(v.Hotel)),
		fmt.Sprintf("Transport      : %s", orDash(v.Transport)),
		fmt.Sprintf("Tanggal        : %s", orDash(v.TravelDate)),
		fmt.Sprintf("Bus            : %s", orDash(v.BusNumber)),
		fmt.Sprintf("Pembimbing     : %s", orDash(v.GuideName)),
		fmt.Sprintf("Pembayaran     : %s", orDash(v.PaymentMethod)),
		fmt.Sprintf("Status         : %s", orDash(string(v.Status))),
	} {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Harga Paket: "+utils.FormatMoney(v.Price))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Voucher ini hanya berlaku untuk booking berstatus Confirmed. Bawa paspor asli saat keberangkatan.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("VOUCHER_%d_%s.pdf", v.ID, utils.SafeFilenamePart(v.UserName))
	return buf.Bytes(), filename, nil
}

func orDash(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "-"
	}
	return v
}
