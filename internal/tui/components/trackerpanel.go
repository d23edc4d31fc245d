package components

import (
	"fmt"
	"strings"

	"wisp/internal/tracker"
)

// TrackerPanelComponent renders the tracker category list with block
// toggles. Navigation wraps; the blocked set is refreshed from the store
// snapshot before each render.
type TrackerPanelComponent struct {
	categories []tracker.Category
	blocked    map[int64]bool
	selected   int
	width      int
}

// NewTrackerPanelComponent creates a panel over the known categories.
func NewTrackerPanelComponent(width int) *TrackerPanelComponent {
	return &TrackerPanelComponent{
		categories: tracker.Categories,
		blocked:    make(map[int64]bool),
		width:      width,
	}
}

// SetBlocked replaces the displayed blocked set.
func (p *TrackerPanelComponent) SetBlocked(ids []int64) {
	p.blocked = make(map[int64]bool, len(ids))
	for _, id := range ids {
		p.blocked[id] = true
	}
}

// SetWidth updates the rendered width.
func (p *TrackerPanelComponent) SetWidth(width int) {
	p.width = width
}

// SelectNext moves the selection down, wrapping at the end.
func (p *TrackerPanelComponent) SelectNext() {
	if len(p.categories) > 0 {
		p.selected = (p.selected + 1) % len(p.categories)
	}
}

// SelectPrev moves the selection up, wrapping at the start.
func (p *TrackerPanelComponent) SelectPrev() {
	if len(p.categories) > 0 {
		p.selected = (p.selected - 1 + len(p.categories)) % len(p.categories)
	}
}

// Selected returns the currently selected category.
func (p *TrackerPanelComponent) Selected() tracker.Category {
	return p.categories[p.selected]
}

// IsBlocked reports the displayed state for id.
func (p *TrackerPanelComponent) IsBlocked(id int64) bool {
	return p.blocked[id]
}

// Render renders the panel with a box border.
func (p *TrackerPanelComponent) Render() string {
	var lines []string
	lines = append(lines, " Tracker protection (space toggles)")

	for i, cat := range p.categories {
		marker := "[ ]"
		if p.blocked[cat.ID] {
			marker = "[x]"
		}
		prefix := "  "
		if i == p.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s %s", prefix, marker, cat.Name)
		if len(line) > p.width-2 {
			line = line[:p.width-5] + "..."
		}
		lines = append(lines, line)
	}

	border := strings.Repeat("─", p.width-2)
	result := "┌" + border + "┐\n"
	for _, line := range lines {
		result += fmt.Sprintf("│%-*s│", p.width-2, line) + "\n"
	}
	result += "└" + border + "┘"
	return result
}

// Height returns the rendered height including borders.
func (p *TrackerPanelComponent) Height() int {
	return len(p.categories) + 3
}
