package models

// Boat represents a charter vessel profile from the boats sheet.
// Shipname is the only key; listings join on it by exact match.
type Boat struct {
	Shipname        string `json:"shipname"`
	URL             string `json:"url"`
	PhoneNumber     string `json:"phonenumber"`
	Address         string `json:"address"`
	DeparturePort   string `json:"departure_port"`
	AnglersFollower string `json:"anglers_follower"`
	ExternalURL     string `json:"external_url"`
	PaymentMethod   string `json:"payment_method"`
	BookingMethod   string `json:"booking_method"`
	CalendarID      string `json:"calendar_id"`
	CalendarURL     string `json:"calendar_url"`
	CalendarStatus  string `json:"calendar_integration_status"` // "active" or anything else
	Review          string `json:"review"`
	VisitCount      string `json:"visit_count"`
	Memo            string `json:"memo"`
}

// CalendarActive reports whether the boat's booking calendar is linked
func (b *Boat) CalendarActive() bool {
	return b.CalendarStatus == "active"
}

// Clickable reports whether the boat has an external page to open
func (b *Boat) Clickable() bool {
	return b.URL != ""
}

// BoatIndex maps shipname to boat for joins.
// Later duplicates overwrite earlier ones; shipnames are assumed unique.
type BoatIndex map[string]*Boat

// IndexBoats builds a BoatIndex over the given boats
func IndexBoats(boats []Boat) BoatIndex {
	idx := make(BoatIndex, len(boats))
	for i := range boats {
		idx[boats[i].Shipname] = &boats[i]
	}
	return idx
}

// Lookup returns the boat for a shipname, or nil when it is not loaded
func (idx BoatIndex) Lookup(shipname string) *Boat {
	return idx[shipname]
}
