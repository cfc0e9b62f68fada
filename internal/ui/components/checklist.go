package components

import (
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/examforge/internal/ui/theme"
)

// ChecklistItem is one row of a Checklist. Rows sharing a Group are
// listed under a single heading.
type ChecklistItem struct {
	Label   string
	Group   string
	Color   color.Color
	Checked bool
}

// Checklist is a vertical multi-select list.
type Checklist struct {
	Items  []ChecklistItem
	Cursor int
}

// NewChecklist creates a checklist with the cursor on the first item.
func NewChecklist(items []ChecklistItem) Checklist {
	return Checklist{Items: items}
}

// Update handles keyboard navigation and toggling.
func (c Checklist) Update(msg tea.KeyPressMsg) Checklist {
	if len(c.Items) == 0 {
		return c
	}
	switch msg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	case "space", " ", "x":
		c.Items = append([]ChecklistItem(nil), c.Items...)
		c.Items[c.Cursor].Checked = !c.Items[c.Cursor].Checked
	case "a":
		all := len(c.Checked()) < len(c.Items)
		c.Items = append([]ChecklistItem(nil), c.Items...)
		for i := range c.Items {
			c.Items[i].Checked = all
		}
	}
	return c
}

// Checked returns the indices of ticked items in order.
func (c Checklist) Checked() []int {
	var out []int
	for i, it := range c.Items {
		if it.Checked {
			out = append(out, i)
		}
	}
	return out
}

// View renders up to height rows, scrolled to keep the cursor visible.
func (c Checklist) View(height int) string {
	type row struct {
		text string
		item int // -1 for headings
	}
	var rows []row
	group := ""
	for i, it := range c.Items {
		if it.Group != group {
			group = it.Group
			rows = append(rows, row{text: lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(strings.ToUpper(group)), item: -1})
		}
		box := "[ ]"
		if it.Checked {
			box = "[x]"
		}
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if it.Color != nil {
			style = style.Foreground(it.Color)
		}
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
			style = style.Bold(true)
		}
		rows = append(rows, row{text: prefix + box + " " + style.Render(it.Label), item: i})
	}

	cursorRow := 0
	for i, r := range rows {
		if r.item == c.Cursor {
			cursorRow = i
			break
		}
	}
	start := 0
	if height > 0 && len(rows) > height {
		start = min(max(cursorRow-height/2, 0), len(rows)-height)
		rows = rows[start : start+height]
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = r.text
	}
	return strings.Join(lines, "\n")
}
