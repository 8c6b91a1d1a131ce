package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"github.com/ngmaloney/charter-terminal/internal/derive"
	"github.com/ngmaloney/charter-terminal/internal/models"
)

// boatItem wraps a Boat for use in a list
type boatItem struct {
	boat     models.Boat
	location string
}

// FilterValue implements list.Item
func (b boatItem) FilterValue() string {
	return b.boat.Shipname + " " + b.boat.DeparturePort + " " + b.boat.Address
}

// Title implements list.DefaultItem
func (b boatItem) Title() string {
	return fmt.Sprintf("%s  %s", b.boat.Shipname, calendarBadge(&b.boat))
}

// Description implements list.DefaultItem
func (b boatItem) Description() string {
	var parts []string
	if b.location != "" {
		parts = append(parts, b.location)
	}
	if b.boat.DeparturePort != "" {
		parts = append(parts, b.boat.DeparturePort)
	}
	if b.boat.PhoneNumber != "" {
		parts = append(parts, b.boat.PhoneNumber)
	}
	return strings.Join(parts, " • ")
}

func calendarBadge(b *models.Boat) string {
	if b.CalendarActive() {
		return "連携中"
	}
	return "未連携"
}

// createBoatList creates a list.Model from boats
func createBoatList(boats []models.Boat, memo *derive.Memo, width, height int) list.Model {
	items := make([]list.Item, len(boats))
	for i, boat := range boats {
		items[i] = boatItem{boat: boat, location: memo.ExtractLocation(boat.Address)}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = fmt.Sprintf("%d隻の遊漁船", len(boats))
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)

	return l
}
