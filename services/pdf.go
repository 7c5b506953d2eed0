package services

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"tripit/models"
)

// ItineraryPDF renders a saved itinerary as a PDF and returns raw bytes
// (no filesystem needed).
func ItineraryPDF(it models.Itinerary, travelerName string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "TripIT", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "AI-Powered Travel Itinerary", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Section Helpers ──────────────────────────────────────
	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	bullet := func(text string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		pdf.MultiCell(170, 5, "  •  "+text, "", "L", false)
	}

	// ── Trip Overview ─────────────────────────────────────────
	sectionHeader("Trip Overview")
	name := travelerName
	if name == "" {
		name = "Guest Traveler"
	}
	row("Traveler", name)
	row("Destination", it.Destination)
	row("Duration", fmt.Sprintf("%d days", it.Days))
	row("Total Estimate", fmt.Sprintf("%d", it.TotalCost))
	row("Generated", time.Now().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	// ── Day Plans ─────────────────────────────────────────────
	for _, day := range it.DayPlans {
		sectionHeader(fmt.Sprintf("Day %d — %s", day.Day, day.Title))
		for _, act := range day.Activities {
			bullet(act)
		}
		if len(day.Meals) > 0 {
			row("Meals", strings.Join(day.Meals, ", "))
		}
		if day.Accommodation != "" {
			row("Stay", day.Accommodation)
		}
		if day.EstimatedCost > 0 {
			row("Day budget", fmt.Sprintf("%d", day.EstimatedCost))
		}
		if day.Tips != "" {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.SetTextColor(130, 90, 20)
			pdf.MultiCell(170, 5, "Tip: "+day.Tips, "", "L", false)
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.Ln(3)
	}

	// ── Cost Breakdown ────────────────────────────────────────
	if len(it.CostBreakdown) > 0 {
		sectionHeader("Cost Breakdown")
		buckets := make([]string, 0, len(it.CostBreakdown))
		for k := range it.CostBreakdown {
			buckets = append(buckets, k)
		}
		sort.Strings(buckets)
		for _, k := range buckets {
			row(titleCase(k), fmt.Sprintf("%d", it.CostBreakdown[k]))
		}
		pdf.SetFillColor(212, 168, 67)
		pdf.SetTextColor(13, 24, 37)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(55, 9, "TOTAL ESTIMATE", "", 0, "L", true, 0, "")
		pdf.CellFormat(115, 9, fmt.Sprintf("%d", it.TotalCost), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(4)
	}

	// ── Travel Tips ───────────────────────────────────────────
	if len(it.TravelTips) > 0 {
		sectionHeader("Travel Tips")
		for _, tip := range it.TravelTips {
			bullet(tip)
		}
		pdf.Ln(4)
	}

	// ── Footer ────────────────────────────────────────────────
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Generated by TripIT AI Travel Planner · Not a booking confirmation · Prices subject to change",
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}
