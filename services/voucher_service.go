package services

import (
	"bytes"
	"fmt"
	"time"

	"travel-backend/models"

	"github.com/phpdave11/gofpdf"
)

// BuildBookingVoucherPDF renders the printable voucher an admin downloads for
// a booking. Layout mirrors the agency's paper slips: heading, reference, the
// trip and customer facts line by line, then the payable total.
func BuildBookingVoucherPDF(b *models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Reference      : %s", orDash(b.ReferenceCode)),
		fmt.Sprintf("Package        : %s", orDash(b.PackageTitle)),
		fmt.Sprintf("Travel Date    : %s", orDash(b.TravelDate)),
		fmt.Sprintf("Travelers      : %d", b.Travelers),
		fmt.Sprintf("Customer       : %s", orDash(b.CustomerName)),
		fmt.Sprintf("Email          : %s", orDash(b.CustomerEmail)),
		fmt.Sprintf("Phone          : %s", orDash(b.CustomerPhone)),
		fmt.Sprintf("Status         : %s", orDash(b.Status)),
		fmt.Sprintf("Booked At      : %s", b.CreatedAt.Format("2006-01-02 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total Amount: %s%d", b.Currency, b.Amount))
	pdf.Ln(12)

	if b.Message != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Note: "+b.Message, "", "", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, fmt.Sprintf("Generated %s. Valid for the listed travelers only; present at the pickup point.",
		time.Now().Format("2006-01-02")), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("VOUCHER_%s.pdf", orDash(b.ReferenceCode))
	return buf.Bytes(), filename, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
