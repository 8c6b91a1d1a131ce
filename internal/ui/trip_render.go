package ui

import (
	"fmt"
	"strings"

	"github.com/ngmaloney/charter-terminal/internal/models"
)

// resultsHeader summarizes how many listings passed the filters
func resultsHeader(count int) string {
	if count == 0 {
		return mutedStyle.Render("条件に一致するプランがありません")
	}
	return successStyle.Render(fmt.Sprintf("%d件のプランが見つかりました", count))
}

// renderDateGroups renders grouped listings as plain lines for scrolling
func (m Model) renderDateGroups(groups []models.DateGroup, boats models.BoatIndex) []string {
	var lines []string
	for _, g := range groups {
		header := fmt.Sprintf("%s  (%d)", g.DisplayLabel, len(g.Listings))
		lines = append(lines, dateGroupStyle(g).Render(header))
		for _, l := range g.Listings {
			lines = append(lines, m.renderListing(l, boats.Lookup(l.Shipname))...)
		}
	}
	return lines
}

// renderListing renders one listing card. boat may be nil.
func (m Model) renderListing(l models.TripListing, boat *models.Boat) []string {
	badge := statusStyle(l.Status).Render(fmt.Sprintf("[%s]", l.Status.Label()))

	parts := []string{badge, valueStyle.Bold(true).Render(l.Shipname)}
	if l.Category != "" {
		parts = append(parts, l.Category)
	}
	if boat != nil {
		if boat.DeparturePort != "" {
			parts = append(parts, boat.DeparturePort)
		}
		if loc := m.memo.ExtractLocation(boat.Address); loc != "" {
			parts = append(parts, mutedStyle.Render(loc))
		}
	}
	if l.ShowsCapacity() {
		parts = append(parts, successStyle.Render(fmt.Sprintf("残り%d名", l.Capacity)))
	}

	lines := []string{"  " + strings.Join(parts, "  ")}
	if l.Note != "" {
		lines = append(lines, "    "+mutedStyle.Render(l.Note))
	}
	if boat != nil && boat.Clickable() {
		lines = append(lines, "    "+mutedStyle.Render(boat.URL))
	}
	return lines
}

// renderBoatDetail renders the selected boat below the directory list
func (m Model) renderBoatDetail(b *models.Boat) string {
	var lines []string
	lines = append(lines, valueStyle.Bold(true).Render(b.Shipname)+"  "+calendarBadge(b))

	field := func(label, value string) {
		if value != "" {
			lines = append(lines, labelStyle.Render(label+": ")+value)
		}
	}
	field("住所", b.Address)
	field("出船港", b.DeparturePort)
	field("電話", b.PhoneNumber)
	field("支払い", b.PaymentMethod)
	field("予約", b.BookingMethod)
	field("レビュー", b.Review)
	field("メモ", b.Memo)
	if b.Clickable() {
		lines = append(lines, successStyle.Render("詳細を見る → ")+b.URL)
	}

	return sectionBoxStyle.Render(strings.Join(lines, "\n"))
}
