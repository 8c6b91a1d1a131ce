// Package normalize turns positional spreadsheet rows into typed records.
// Row-level problems never fail: missing cells become defaults and rows
// without a shipname are skipped.
package normalize

import (
	"strconv"
	"strings"

	"github.com/ngmaloney/charter-terminal/internal/models"
)

// Boat sheet columns
const (
	colBoatShipname = iota
	colBoatURL
	colBoatPhone
	colBoatAddress
	colBoatDeparturePort
	colBoatAnglersFollower
	colBoatExternalURL
	colBoatPaymentMethod
	colBoatBookingMethod
	colBoatCalendarID
	colBoatCalendarURL
	colBoatCalendarStatus
	colBoatReview
	colBoatVisitCount
	colBoatMemo
)

// Listing sheet columns
const (
	colListingShipname = iota
	colListingDate
	colListingCategory
	colListingStatus
	colListingCapacity
	colListingNote
)

// DropHeader removes the header row. Sheets with no data rows yield nil.
func DropHeader(rows [][]string) [][]string {
	if len(rows) < 2 {
		return nil
	}
	return rows[1:]
}

// Boats converts data rows (header already removed) into boats
func Boats(rows [][]string) []models.Boat {
	boats := make([]models.Boat, 0, len(rows))
	for _, row := range rows {
		if cell(row, colBoatShipname) == "" {
			continue
		}
		boats = append(boats, models.Boat{
			Shipname:        cell(row, colBoatShipname),
			URL:             cell(row, colBoatURL),
			PhoneNumber:     cell(row, colBoatPhone),
			Address:         cell(row, colBoatAddress),
			DeparturePort:   cell(row, colBoatDeparturePort),
			AnglersFollower: cell(row, colBoatAnglersFollower),
			ExternalURL:     cell(row, colBoatExternalURL),
			PaymentMethod:   cell(row, colBoatPaymentMethod),
			BookingMethod:   cell(row, colBoatBookingMethod),
			CalendarID:      cell(row, colBoatCalendarID),
			CalendarURL:     cell(row, colBoatCalendarURL),
			CalendarStatus:  cell(row, colBoatCalendarStatus),
			Review:          cell(row, colBoatReview),
			VisitCount:      cell(row, colBoatVisitCount),
			Memo:            cell(row, colBoatMemo),
		})
	}
	return boats
}

// Listings converts data rows (header already removed) into trip listings
func Listings(rows [][]string) []models.TripListing {
	listings := make([]models.TripListing, 0, len(rows))
	for _, row := range rows {
		if cell(row, colListingShipname) == "" {
			continue
		}
		listings = append(listings, models.TripListing{
			Shipname: cell(row, colListingShipname),
			Date:     cell(row, colListingDate),
			Category: cell(row, colListingCategory),
			Status:   models.ParseStatus(cell(row, colListingStatus)),
			Capacity: ParseCapacity(cell(row, colListingCapacity)),
			Note:     cell(row, colListingNote),
		})
	}
	return listings
}

// ParseCapacity reads the leading integer of a cell ("3", " 4 ", "5名").
// Anything without leading digits, and negative counts, give 0.
func ParseCapacity(raw string) int {
	raw = strings.TrimSpace(raw)
	end := 0
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0
	}
	return n
}

// cell returns row[i], or "" when the row is too short
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
