package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/charter-terminal/internal/filter"
	"github.com/ngmaloney/charter-terminal/internal/models"
)

// maxHints caps how many option hints the panel lists
const maxHints = 6

// Filter text fields, in focus order
const (
	fieldFrom = iota
	fieldTo
	fieldPort
	fieldArea
	fieldCount
)

// noFocus means no filter field has keyboard focus
const noFocus = -1

var fieldLabels = [fieldCount]string{"開始日", "終了日", "出船港", "エリア"}

// statusKeys maps number keys onto the status chips
var statusKeys = map[string]models.Status{
	"1": models.StatusAvailable,
	"2": models.StatusFull,
	"3": models.StatusClosed,
	"4": models.StatusUnspecified,
}

func newFilterInputs() []textinput.Model {
	placeholders := [fieldCount]string{"YYYY/MM/DD", "YYYY/MM/DD", "三崎港", "神奈川県"}
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 40
		ti.Width = 16
		inputs[i] = ti
	}
	return inputs
}

// criteria assembles the current FilterCriteria from the panel.
// Statuses are copied so later toggles never alias earlier values.
func (m Model) criteria() models.FilterCriteria {
	c := models.FilterCriteria{
		DateFrom: strings.TrimSpace(m.inputs[fieldFrom].Value()),
		DateTo:   strings.TrimSpace(m.inputs[fieldTo].Value()),
		Port:     strings.TrimSpace(m.inputs[fieldPort].Value()),
		Area:     strings.TrimSpace(m.inputs[fieldArea].Value()),
		Statuses: append([]models.Status(nil), m.statuses...),
	}
	if m.category >= 0 {
		c.Category = models.Categories[m.category]
	}
	return c
}

// toggleStatus adds or removes a status chip
func (m *Model) toggleStatus(s models.Status) {
	m.statuses = models.FilterCriteria{Statuses: m.statuses}.WithStatusToggled(s).Statuses
	m.scroll = 0
}

func (m Model) statusSelected(s models.Status) bool {
	for _, selected := range m.statuses {
		if selected == s {
			return true
		}
	}
	return false
}

// cycleCategory steps through all categories, then back to none
func (m *Model) cycleCategory() {
	m.category++
	if m.category >= len(models.Categories) {
		m.category = -1
	}
}

// clearFilters restores the initial panel
func (m *Model) clearFilters() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.category = -1
	m.statuses = models.DefaultCriteria().Statuses
}

// focusField moves keyboard focus to field i, or off the panel with noFocus
func (m *Model) focusField(i int) tea.Cmd {
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.focus = i
	if i == noFocus {
		return nil
	}
	return m.inputs[i].Focus()
}

// handleFilterInput routes keys while a filter field is focused
func (m Model) handleFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.focusField(noFocus)
		return m, nil
	case tea.KeyEnter, tea.KeyTab, tea.KeyDown:
		return m, m.focusField((m.focus + 1) % fieldCount)
	case tea.KeyShiftTab, tea.KeyUp:
		return m, m.focusField((m.focus + fieldCount - 1) % fieldCount)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.scroll = 0
	return m, cmd
}

// viewFilterPanel renders the inputs and chips
func (m Model) viewFilterPanel() string {
	var fields []string
	for i, ti := range m.inputs {
		fields = append(fields, labelStyle.Render(fieldLabels[i])+" "+ti.View())
	}

	category := "すべて"
	if m.category >= 0 {
		category = models.Categories[m.category]
	}

	var chips []string
	for _, key := range []string{"1", "2", "3", "4"} {
		s := statusKeys[key]
		label := fmt.Sprintf("%s %s", key, s.Label())
		if s == models.StatusUnspecified {
			label = key + " 未設定"
		}
		if m.statusSelected(s) {
			chips = append(chips, chipOnStyle.Render(label))
		} else {
			chips = append(chips, chipOffStyle.Render(label))
		}
	}

	rows := []string{
		strings.Join(fields[:2], "  "),
		strings.Join(fields[2:], "  "),
		labelStyle.Render("釣り物") + " " + valueStyle.Render(category) + "   " +
			labelStyle.Render("状況") + " " + strings.Join(chips, ""),
	}
	if m.snapshot != nil {
		ports := filter.Ports(m.snapshot.Boats)
		areas := filter.Areas(m.snapshot.Boats)
		rows = append(rows, mutedStyle.Render("港: "+hintList(ports)+"  エリア: "+hintList(areas)))
	}
	body := strings.Join(rows, "\n")

	if m.focus != noFocus {
		return activeFilterBoxStyle.Render(body)
	}
	return filterBoxStyle.Render(body)
}

func hintList(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	if len(values) > maxHints {
		return strings.Join(values[:maxHints], ", ") + ", …"
	}
	return strings.Join(values, ", ")
}
