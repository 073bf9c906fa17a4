package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"usersearch/internal/domain"
	"usersearch/internal/ui/logic"
)

// RenderSuggestions renders the dropdown. Every occurrence of query in a
// name is emphasised and the row under the cursor is highlighted.
func (r *Renderer) RenderSuggestions(users []domain.User, query string, cursor int) string {
	if query == "" || len(users) == 0 {
		return ""
	}

	rows := make([]string, 0, len(users))
	for i, u := range users {
		rows = append(rows, r.renderItem(u.Name, query, i == cursor))
	}
	return r.styles.Dropdown.Render(strings.Join(rows, "\n"))
}

func (r *Renderer) renderItem(name, query string, selected bool) string {
	row := r.styles.Item
	plain := lipgloss.NewStyle()
	match := r.styles.Match
	if selected {
		row = r.styles.ItemSelected
		bg := r.styles.ItemSelected.GetBackground()
		plain = plain.Background(bg)
		match = match.Background(bg)
	}

	var b strings.Builder
	for _, seg := range logic.SplitMatch(name, query) {
		if seg.Match {
			b.WriteString(match.Render(seg.Text))
		} else {
			b.WriteString(plain.Render(seg.Text))
		}
	}
	return row.Render(b.String())
}
