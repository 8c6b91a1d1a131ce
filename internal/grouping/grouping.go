// Package grouping partitions filtered listings by date and orders them for display.
package grouping

import (
	"sort"
	"time"

	"github.com/ngmaloney/charter-terminal/internal/derive"
	"github.com/ngmaloney/charter-terminal/internal/models"
)

type datedListing struct {
	listing models.TripListing
	date    time.Time
	port    string
}

// GroupAndSort groups by calendar date in local time.
// See GroupAndSortIn.
func GroupAndSort(listings []models.TripListing, boats []models.Boat) []models.DateGroup {
	return GroupAndSortIn(listings, boats, time.Local)
}

// GroupAndSortIn orders listings chronologically, partitions them into one
// DateGroup per calendar date in loc, and sorts each group by status,
// category and departure port. All sorts are stable. Listings whose date does
// not parse are dropped. Pass the location the filter used so both agree on
// which day a listing falls on.
func GroupAndSortIn(listings []models.TripListing, boats []models.Boat, loc *time.Location) []models.DateGroup {
	idx := models.IndexBoats(boats)

	dated := make([]datedListing, 0, len(listings))
	for _, l := range listings {
		date, ok := derive.ParseDateIn(l.Date, loc)
		if !ok {
			continue
		}
		var port string
		if boat := idx.Lookup(l.Shipname); boat != nil {
			port = boat.DeparturePort
		}
		dated = append(dated, datedListing{listing: l, date: date, port: port})
	}

	// groups are emitted in first-seen order, so sort chronologically first
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].date.Before(dated[j].date)
	})

	var keys []string
	buckets := make(map[string][]datedListing)
	for _, d := range dated {
		key := derive.FormatDate(d.date)
		if _, seen := buckets[key]; !seen {
			keys = append(keys, key)
		}
		buckets[key] = append(buckets[key], d)
	}

	groups := make([]models.DateGroup, 0, len(keys))
	for _, key := range keys {
		bucket := buckets[key]
		sort.SliceStable(bucket, func(i, j int) bool {
			return less(bucket[i], bucket[j])
		})

		group := models.DateGroup{
			DateKey:  key,
			Listings: make([]models.TripListing, len(bucket)),
		}
		for i, d := range bucket {
			group.Listings[i] = d.listing
		}
		if day, ok := derive.ParseDateIn(key, loc); ok {
			group.DisplayLabel = derive.FormatDateHeader(day)
			group.IsSunday = day.Weekday() == time.Sunday
			group.IsWeekend = group.IsSunday || day.Weekday() == time.Saturday
		}
		groups = append(groups, group)
	}

	return groups
}

// less is the within-day order: status rank, then category, then port
func less(a, b datedListing) bool {
	if ra, rb := a.listing.Status.Rank(), b.listing.Status.Rank(); ra != rb {
		return ra < rb
	}
	if c := compareCategory(a.listing.Category, b.listing.Category); c != 0 {
		return c < 0
	}
	return a.port < b.port
}

// compareCategory puts catch-all and empty categories last; the rest compare
// lexicographically, catch-alls compare equal to each other
func compareCategory(a, b string) int {
	otherA, otherB := models.IsOtherCategory(a), models.IsOtherCategory(b)
	switch {
	case otherA && otherB:
		return 0
	case otherA:
		return 1
	case otherB:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
