// Package filter selects the trip listings matching a FilterCriteria.
package filter

import (
	"strings"
	"time"

	"github.com/ngmaloney/charter-terminal/internal/derive"
	"github.com/ngmaloney/charter-terminal/internal/models"
)

// Matcher evaluates one FilterCriteria against listings.
// Dates are interpreted in the location of the injected "now".
type Matcher struct {
	criteria models.FilterCriteria
	boats    models.BoatIndex
	loc      *time.Location

	today   time.Time
	from    time.Time
	to      time.Time
	hasFrom bool
	hasTo   bool
}

// NewMatcher prepares criteria for repeated matching.
// A date bound that does not parse is treated as unset.
func NewMatcher(boats []models.Boat, criteria models.FilterCriteria, now time.Time) *Matcher {
	m := &Matcher{
		criteria: criteria,
		boats:    models.IndexBoats(boats),
		loc:      now.Location(),
		today:    derive.StartOfDay(now),
	}
	if from, ok := derive.ParseDateIn(criteria.DateFrom, m.loc); ok {
		m.from = derive.StartOfDay(from)
		m.hasFrom = true
	}
	if to, ok := derive.ParseDateIn(criteria.DateTo, m.loc); ok {
		m.to = derive.EndOfDay(to)
		m.hasTo = true
	}
	return m
}

// Match reports whether a listing passes every active clause
func (m *Matcher) Match(l models.TripListing) bool {
	date, ok := derive.ParseDateIn(l.Date, m.loc)
	if !ok {
		return false
	}
	// past trips are never shown, whatever the range says
	if date.Before(m.today) {
		return false
	}
	if m.hasFrom && date.Before(m.from) {
		return false
	}
	if m.hasTo && date.After(m.to) {
		return false
	}

	if m.criteria.Category != "" && !l.HasCategory(m.criteria.Category) {
		return false
	}

	if m.criteria.HasBoatFilter() {
		boat := m.boats.Lookup(l.Shipname)
		if boat == nil {
			return false
		}
		if m.criteria.Port != "" && boat.DeparturePort != m.criteria.Port {
			return false
		}
		if m.criteria.Area != "" && !strings.Contains(boat.Address, m.criteria.Area) {
			return false
		}
	}

	return m.criteria.AllowsStatus(l.Status)
}

// Apply returns the listings matching criteria, preserving input order.
// It is pure: identical inputs give identical output.
func Apply(listings []models.TripListing, boats []models.Boat, criteria models.FilterCriteria, now time.Time) []models.TripListing {
	m := NewMatcher(boats, criteria, now)
	out := make([]models.TripListing, 0, len(listings))
	for _, l := range listings {
		if m.Match(l) {
			out = append(out, l)
		}
	}
	return out
}

// Ports returns the distinct non-empty departure ports in first-seen order
func Ports(boats []models.Boat) []string {
	return distinct(boats, func(b models.Boat) string { return b.DeparturePort })
}

// Areas returns the distinct non-empty areas derived from boat addresses
func Areas(boats []models.Boat) []string {
	return distinct(boats, func(b models.Boat) string { return derive.ExtractArea(b.Address) })
}

func distinct(boats []models.Boat, key func(models.Boat) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, b := range boats {
		k := key(b)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
