package models

// FilterCriteria is the user's filter configuration.
// It is passed by value; zero fields mean "no restriction".
type FilterCriteria struct {
	DateFrom string // inclusive lower bound, any format ParseDate accepts
	DateTo   string // inclusive upper bound through end of day
	Category string // substring of TripListing.Category
	Port     string // exact Boat.DeparturePort
	Area     string // substring of Boat.Address
	Statuses []Status
}

// DefaultCriteria is what the trip search view starts with
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		Statuses: []Status{StatusAvailable, StatusFull},
	}
}

// HasBoatFilter reports whether any clause needs the joined boat
func (c FilterCriteria) HasBoatFilter() bool {
	return c.Port != "" || c.Area != ""
}

// AllowsStatus reports whether a status passes the status clause.
// An empty set places no restriction.
func (c FilterCriteria) AllowsStatus(s Status) bool {
	if len(c.Statuses) == 0 {
		return true
	}
	for _, allowed := range c.Statuses {
		if allowed == s {
			return true
		}
	}
	return false
}

// WithStatusToggled returns a copy with s added to or removed from the set
func (c FilterCriteria) WithStatusToggled(s Status) FilterCriteria {
	next := make([]Status, 0, len(c.Statuses)+1)
	found := false
	for _, existing := range c.Statuses {
		if existing == s {
			found = true
			continue
		}
		next = append(next, existing)
	}
	if !found {
		next = append(next, s)
	}
	c.Statuses = next
	return c
}
