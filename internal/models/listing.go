package models

import "strings"

// TripListing is a single date-specific trip offering for one boat
type TripListing struct {
	Shipname string // joins Boat.Shipname; the boat may be missing
	Date     string // locale date as typed in the sheet, e.g. "2026/3/10"
	Category string // may hold several tags, matched by substring
	Status   Status
	Capacity int // remaining seats, 0 when unknown
	Note     string
}

// Categories offered by the filter panel, in display order
var Categories = []string{"ジギング", "SLJ", "キャスティング", "タイラバ", "その他"}

// otherCategories are the catch-all tags that sort after everything else
var otherCategories = map[string]bool{
	"その他": true,
	"other": true,
	"misc":  true,
}

// IsOtherCategory reports whether a category is empty or a catch-all tag
func IsOtherCategory(category string) bool {
	return category == "" || otherCategories[category]
}

// HasCategory reports whether the listing carries the given category tag
func (l *TripListing) HasCategory(category string) bool {
	return strings.Contains(l.Category, category)
}

// ShowsCapacity reports whether remaining seats are worth displaying
func (l *TripListing) ShowsCapacity() bool {
	return l.Status == StatusAvailable && l.Capacity > 0
}
