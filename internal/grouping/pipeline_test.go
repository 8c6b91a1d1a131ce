package grouping

import (
	"testing"
	"time"

	"github.com/ngmaloney/charter-terminal/internal/filter"
	"github.com/ngmaloney/charter-terminal/internal/models"
	"github.com/ngmaloney/charter-terminal/internal/normalize"
)

func TestFilterThenGroup_EndToEnd(t *testing.T) {
	boatRows := [][]string{
		{"shipname", "url", "phonenumber", "address", "departure_port"},
		{"Alpha", "", "", "X-Prefecture Y-City", "Harbor1"},
	}
	listingRows := [][]string{
		{"shipname", "date", "category", "status", "capacity"},
		{"Alpha", "2026/3/10", "Jigging", "open", ""},
		{"", "2026/3/10", "Jigging", "open", ""},
	}

	boats := normalize.Boats(normalize.DropHeader(boatRows))
	listings := normalize.Listings(normalize.DropHeader(listingRows))

	criteria := models.FilterCriteria{
		DateFrom: "2026/03/01",
		DateTo:   "2026/03/31",
		Statuses: []models.Status{models.StatusAvailable, models.StatusFull},
	}
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)

	filtered := filter.Apply(listings, boats, criteria, now)
	if len(filtered) != 1 {
		t.Fatalf("filter.Apply() returned %d listings, want 1", len(filtered))
	}
	if filtered[0].Status != models.StatusAvailable {
		t.Errorf("status = %v, want available", filtered[0].Status)
	}

	groups := GroupAndSort(filtered, boats)
	if len(groups) != 1 {
		t.Fatalf("GroupAndSort() returned %d groups, want 1", len(groups))
	}
	if groups[0].DateKey != "2026/03/10" {
		t.Errorf("DateKey = %s, want 2026/03/10", groups[0].DateKey)
	}
	if len(groups[0].Listings) != 1 || groups[0].Listings[0].Shipname != "Alpha" {
		t.Errorf("group listings = %+v, want the Alpha listing", groups[0].Listings)
	}
}
