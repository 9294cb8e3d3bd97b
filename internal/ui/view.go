package ui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/JumpLink/NetflixController/internal/dom"
	"github.com/JumpLink/NetflixController/internal/format/table"
	"github.com/JumpLink/NetflixController/internal/nav"
)

// Fixture class names rendered by the view. They match the markup in the
// bundled document.
const (
	viewMenuClass    = "navigation-tab"
	viewRowClass     = "lolomoRow"
	viewItemClass    = "slider-item"
	viewCardClass    = "search-title-card"
	viewControlsRow  = "PlayerControlsNeo__button-control-row"
	viewPanelClass   = "jawbone"
	viewPanelActions = "jawbone-action"
)

// View renders the whole simulator frame.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.currentLocation() {
	case "/search":
		b.WriteString(m.renderSearch())
	default:
		if strings.HasPrefix(m.currentLocation(), "/watch") {
			b.WriteString(m.renderWatch())
		} else {
			b.WriteString(m.renderBrowse())
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderRoster())
	b.WriteString("\n")
	b.WriteString(m.renderNotices())
	b.WriteString(m.renderHints())
	return b.String()
}

func (m *Model) renderHeader() string {
	title := fmt.Sprintf("netflix-controller %s", m.currentLocation())
	return m.clip(styles.Header.Render(title))
}

func (m *Model) renderBrowse() string {
	var b strings.Builder
	b.WriteString(m.renderElements("Menu", m.doc.ByClass(viewMenuClass)))
	for i, row := range m.doc.ByClass(viewRowClass) {
		items := row.ByClass(viewItemClass)
		b.WriteString(m.renderElements(fmt.Sprintf("Row %d", i), items))
		if panel := row.FirstByClass(viewPanelClass); panel != nil {
			b.WriteString(m.renderElements("  Details", panel.ByClass(viewPanelActions)))
		}
	}
	return b.String()
}

func (m *Model) renderSearch() string {
	var b strings.Builder
	b.WriteString(m.clip(m.searchInput.View()))
	b.WriteString("\n")
	cards := m.doc.ByClass(viewCardClass)
	b.WriteString(m.renderElements("Results", cards))
	return b.String()
}

func (m *Model) renderWatch() string {
	row := m.doc.FirstByClass(viewControlsRow)
	if row == nil {
		return m.clip(styles.Section.Render("player loading")) + "\n"
	}
	return m.renderElements("Controls", row.QueryAll(".//button"))
}

// renderElements draws one labelled line of focusable elements, marking the
// one carrying the focus class.
func (m *Model) renderElements(title string, els []*dom.Element) string {
	if len(els) == 0 {
		return ""
	}
	parts := make([]string, 0, len(els))
	for _, el := range els {
		label := strings.TrimSpace(el.Text())
		if label == "" {
			label = el.Attr("id")
		}
		if label == "" {
			label = el.Tag()
		}
		if el.HasClass(nav.DefaultStyler.Class) {
			parts = append(parts, styles.FocusedItem.Render("["+label+"]"))
			continue
		}
		parts = append(parts, styles.Item.Render(" "+label+" "))
	}
	line := styles.SectionTitle.Render(title) + " " + strings.Join(parts, " ")
	return m.clip(line) + "\n"
}

func (m *Model) renderRoster() string {
	entries := m.roster.Entries()
	if len(entries) == 0 {
		return m.clip(styles.Roster.Render("no controllers connected"))
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		layout := "standard"
		if !e.Standard {
			layout = "non-standard"
		}
		rows = append(rows, []string{
			fmt.Sprintf("#%d", e.Index),
			e.ID,
			fmt.Sprintf("%db/%da", e.Buttons, e.Axes),
			layout,
		})
	}
	lines := table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft, table.AlignRight, table.AlignLeft})
	var b strings.Builder
	for i, line := range lines {
		style := styles.Roster
		if !entries[i].Standard {
			style = styles.RosterWarning
		}
		b.WriteString(m.clip(style.Render(line)))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m *Model) renderNotices() string {
	var b strings.Builder
	for _, n := range m.notices.Active() {
		b.WriteString(m.clip(styles.Notice.Render(n.Message)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderHints() string {
	entries := m.hints.Entries()
	if len(entries) == 0 {
		return ""
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, styles.HintGlyph.Render(e.Glyph)+" "+styles.HintLabel.Render(e.Label))
	}
	return m.clip(strings.Join(parts, "  "))
}

func (m *Model) clip(s string) string {
	if m.width <= 0 {
		return s
	}
	return truncate.StringWithTail(s, uint(m.width), "…")
}
