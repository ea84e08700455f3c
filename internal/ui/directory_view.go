package ui

import (
	"fmt"
	"strings"

	"github.com/five82/roster/internal/users"
)

// renderLoading renders the spinner shown until the fetch settles.
func (m Model) renderLoading() string {
	styles := m.theme.Styles()
	return m.spinner.View() + " " + styles.Text.Render("Loading users...")
}

// renderFailed renders the terminal error screen.
func (m Model) renderFailed() string {
	styles := m.theme.Styles()
	return styles.DangerText.Render("Error loading users: " + m.snapshot.Message)
}

// renderDirectory renders the loaded view: header, search input, list,
// details panel and footer, in the line order layout.go describes.
func (m Model) renderDirectory() string {
	var b strings.Builder

	// Line 0: title and counts
	b.WriteString(m.renderTitle())
	b.WriteString("\n")

	// Line 1: search input
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	// List rows, padded to a fixed height so the panel below does not jump
	lines := m.renderList()
	for i := 0; i < m.listRows(); i++ {
		if i < len(lines) {
			b.WriteString(lines[i])
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if details := m.renderDetails(); details != "" {
		b.WriteString(details)
		b.WriteString("\n")
	} else {
		b.WriteString(strings.Repeat("\n", detailsHeight-1))
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderTitle() string {
	styles := m.theme.Styles()
	snap := m.snapshot

	count := fmt.Sprintf("%d users", len(snap.Users))
	if snap.Query != "" {
		count = fmt.Sprintf("%d of %d users", len(snap.Filtered), len(snap.Users))
	}
	return styles.Title.Render("Users List") + "  " + styles.MutedText.Render(count)
}

// renderList returns one line per visible row, or the no-results message.
func (m Model) renderList() []string {
	styles := m.theme.Styles()
	snap := m.snapshot

	if snap.ShowNoResults() {
		return []string{styles.WarningText.Render(fmt.Sprintf("No users found for %q.", snap.Query))}
	}

	nameWidth := m.nameColumnWidth()
	end := minInt(m.offset+m.listRows(), len(snap.Filtered))

	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		u := snap.Filtered[i]
		active := snap.IsSelected(u.ID)

		marker := "  "
		if active {
			marker = "● "
		}
		name := padRight(truncate(rowName(u), nameWidth), nameWidth)
		email := u.Email
		if room := m.width - rowGutter - nameWidth - 2; room > 0 {
			email = truncate(email, room)
		}

		var row string
		switch {
		case i == m.cursor && m.focus == focusList:
			row = styles.Cursor.Width(m.width).Render(marker + name + "  " + email)
		case active:
			row = styles.Active.Render(marker + name + "  " + email)
		default:
			row = styles.Text.Render(marker+name) + "  " + styles.MutedText.Render(email)
		}
		lines = append(lines, row)
	}
	return lines
}

// nameColumnWidth sizes the name column to the longest visible name.
func (m Model) nameColumnWidth() int {
	width := 0
	for _, u := range m.snapshot.Filtered {
		width = maxInt(width, len([]rune(rowName(u))))
	}
	limit := minInt(nameColumnMax, maxInt(m.width/2-rowGutter, 8))
	return minInt(width, limit)
}

// renderDetails renders the panel for the selected user, or "" without one.
func (m Model) renderDetails() string {
	u, ok := m.snapshot.Selected()
	if !ok {
		return ""
	}
	styles := m.theme.Styles()

	label := func(s string) string {
		return styles.MutedText.Render(padRight(s, 7))
	}
	body := strings.Join([]string{
		styles.Title.Render("User Details"),
		label("Name:") + styles.Text.Render(orDash(u.Name)),
		label("Email:") + styles.Text.Render(orDash(u.Email)),
		label("City:") + styles.Text.Render(orDash(u.City())),
	}, "\n")

	panel := styles.Panel
	if m.focus == focusList {
		panel = styles.PanelFocus
	}
	return panel.Render(body)
}

func (m Model) renderFooter() string {
	if m.focus == focusSearch {
		return m.help.View(searchHelp{k: m.keys})
	}
	return m.help.View(m.keys)
}

// rowName is the label shown for a user in the list.
func rowName(u users.User) string {
	if strings.TrimSpace(u.Name) != "" {
		return u.Name
	}
	return u.DisplayName()
}
