package models

// DateGroup holds every listing sharing one calendar date, in display order
type DateGroup struct {
	DateKey      string // "YYYY/MM/DD"
	DisplayLabel string
	IsWeekend    bool // Saturday or Sunday
	IsSunday     bool
	Listings     []TripListing
}

// CountListings returns the total number of listings across groups
func CountListings(groups []DateGroup) int {
	n := 0
	for _, g := range groups {
		n += len(g.Listings)
	}
	return n
}
