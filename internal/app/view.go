package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/crate/internal/keymap"
	"github.com/llehouerou/crate/internal/library"
)

const (
	menuWidth  = 20
	crumbSep   = " › "
	chromeRows = 3 // header, pane title, footer
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	header := m.renderHeader()
	menu := menuStyle.Height(m.Height - 2).Render(m.renderMenu())
	paneWidth := max(0, m.Width-lipgloss.Width(menu)-1)

	var body string
	switch {
	case m.ShowHelp:
		body = m.renderHelp()
	case m.Info != nil:
		body = m.renderInfo(paneWidth)
	default:
		body = m.renderPane(paneWidth)
	}
	main := lipgloss.JoinHorizontal(lipgloss.Top, menu, " ", body)

	return lipgloss.JoinVertical(lipgloss.Left, header, main, m.renderFooter())
}

// listHeight is the number of row lines the top pane can show.
func (m Model) listHeight() int {
	return max(0, m.Height-chromeRows)
}

func (m Model) renderHeader() string {
	crumbs := strings.Join(m.Engine.Breadcrumbs(), accentStyle.Render(crumbSep))
	left := titleStyle.Render(crumbs)

	right := ""
	if m.Scanning {
		right = mutedStyle.Render(scanLabel(m.ScanProgress))
	}
	gap := max(1, m.Width-lipgloss.Width(left)-lipgloss.Width(right))
	return truncate(left+strings.Repeat(" ", gap)+right, m.Width)
}

func scanLabel(p library.ScanProgress) string {
	if p.Total > 0 {
		return fmt.Sprintf("%s %d/%d", p.Phase, p.Current, p.Total)
	}
	return p.Phase + "…"
}

func (m Model) renderMenu() string {
	active := m.Engine.TopLevelIndex()
	entries := m.Engine.Catalog().Entries()
	lines := make([]string, len(entries))
	for i, c := range entries {
		label := truncate(fmt.Sprintf("%d %s", i+1, m.Icons.Format(c.MainImage, c.Title)), menuWidth)
		if i == active {
			lines[i] = activeStyle.Render(label)
		} else {
			lines[i] = mutedStyle.Render(label)
		}
	}
	return lipgloss.NewStyle().Width(menuWidth).Render(strings.Join(lines, "\n"))
}

func (m Model) renderPane(width int) string {
	top := m.Top()
	if top == nil {
		return mutedStyle.Render("Loading…")
	}

	title := titleStyle.Render(m.Icons.Format(top.Image, top.Title))
	if top.Subtitle != "" {
		title += mutedStyle.Render("  " + top.Subtitle)
	}
	lines := []string{truncate(title, width)}

	height := m.listHeight()
	switch {
	case top.Err != "":
		lines = append(lines, errorStyle.Render(truncate(top.Err, width)))
	case len(top.Rows) == 0:
		lines = append(lines, subtleStyle.Render(top.Empty))
	default:
		end := min(len(top.Rows), top.Offset+height)
		for i := top.Offset; i < end; i++ {
			row := top.Rows[i]
			if row.Group != "" {
				lines = append(lines, accentStyle.Render(truncate(row.Group, width)))
			}
			lines = append(lines, m.renderRow(row, top.CanRate, i == top.Cursor, width))
		}
	}
	if len(lines) > height+1 {
		lines = lines[:height+1]
	}
	return strings.Join(lines, "\n")
}

// renderRow lays out "title  secondary ... info", truncating the left part
// so info stays visible.
func (m Model) renderRow(row library.Row, canRate, selected bool, width int) string {
	info := row.Info
	if canRate && row.Rating > 0 {
		info = strings.TrimSpace(stars(row.Rating) + " " + info)
	}
	infoWidth := runewidth.StringWidth(info)
	if infoWidth > width/2 {
		info, infoWidth = "", 0
	}

	left := "  " + m.Icons.Format(row.Image, row.Title)
	if selected {
		left = "> " + m.Icons.Format(row.Image, row.Title)
	}
	leftMax := max(0, width-infoWidth-1)
	left = truncate(left, leftMax)

	secondary := ""
	if row.Secondary != "" {
		if room := leftMax - runewidth.StringWidth(left); room > 3 {
			secondary = runewidth.Truncate("  "+row.Secondary, room, "…")
		}
	}

	pad := max(1, width-runewidth.StringWidth(left)-runewidth.StringWidth(secondary)-infoWidth)
	if selected {
		return cursorStyle.Render(left+secondary+strings.Repeat(" ", pad)+info)
	}
	return baseStyle.Render(left) + mutedStyle.Render(secondary) +
		strings.Repeat(" ", pad) + subtleStyle.Render(info)
}

func stars(n int) string {
	n = max(0, min(maxRating, n))
	return strings.Repeat("★", n) + strings.Repeat("☆", maxRating-n)
}

func (m Model) renderInfo(width int) string {
	lines := []string{titleStyle.Render("Info")}
	for _, f := range m.Info.Fields() {
		v, _ := m.Info.Value(f)
		label := f.String()
		if m.Info.ReadOnly(f) {
			label += " (read-only)"
		}
		lines = append(lines, truncate(mutedStyle.Render(label+": ")+baseStyle.Render(v), width-4))
	}
	if !m.Info.Valid() {
		lines = append(lines, errorStyle.Render(m.Info.ErrorMessage()))
	}
	return overlayStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderHelp() string {
	var lines []string
	for _, context := range []string{"global", "navigator", "library", "radios"} {
		lines = append(lines, titleStyle.Render(context))
		for _, b := range keymap.Help(context) {
			h := b.Help()
			lines = append(lines, fmt.Sprintf("  %-10s %s", h.Key, mutedStyle.Render(h.Desc)))
		}
	}
	lines = append(lines, "  1-9        "+mutedStyle.Render("Select view"))
	return overlayStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter() string {
	switch {
	case m.ErrorMsg != "":
		return errorStyle.Render(truncate(m.ErrorMsg, m.Width))
	case m.StatusMsg != "":
		return statusStyle.Render(truncate(m.StatusMsg, m.Width))
	}
	return subtleStyle.Render(truncate("? help  enter open  backspace back  1-9 views  q quit", m.Width))
}

// truncate cuts s to width display cells. Styled strings are measured with
// lipgloss so escape sequences do not count.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	if strings.Contains(s, "\x1b") {
		return lipgloss.NewStyle().MaxWidth(width).Render(s)
	}
	return runewidth.Truncate(s, width, "…")
}
