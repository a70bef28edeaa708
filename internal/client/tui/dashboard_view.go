package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/econdash/internal/client/models"
	"github.com/dmitrijs2005/econdash/internal/client/services"
)

func (m Model) viewDashboard() string {
	var b strings.Builder

	b.WriteString(m.viewHeader() + "\n\n")

	if m.snapshot.Err != "" {
		b.WriteString(m.styles.Banner.Render(
			"data fetch failed: "+m.snapshot.Err+" (showing generated sample data)") + "\n\n")
	}

	b.WriteString(m.viewCards() + "\n")
	b.WriteString(m.viewFilterPanel() + "\n")

	ind := models.ResolveIndicator(m.filters.Indicator)
	country := models.ResolveCountry(m.filters.Country)

	b.WriteString(m.styles.Title.Render(fmt.Sprintf("%s, %s (%d-%d)",
		ind.Label, country.Label, m.filters.YearStart, m.filters.YearEnd)) + "\n")
	if m.loading {
		b.WriteString(m.spinner.View() + " loading data...\n")
	} else {
		b.WriteString(renderSeriesChart(m.snapshot.Series, ind.Kind, m.styles) + "\n")
	}

	b.WriteString("\n" + m.styles.Title.Render(fmt.Sprintf("Comparison, %d", m.filters.YearEnd)) + "\n")
	if m.loading {
		b.WriteString(m.spinner.View() + " loading data...\n")
	} else {
		b.WriteString(renderComparisonChart(m.snapshot.Comparison, ind.Kind, m.styles) + "\n")
	}

	b.WriteString("\n" + m.styles.Help.Render(
		"tab next filter · ←/→ change selection · enter apply · ctrl+o sign out · ctrl+c quit") + "\n")

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m Model) viewHeader() string {
	left := m.styles.Title.Render("econdash")

	sess := m.session.Current()
	if sess == nil {
		return left
	}

	right := sess.DisplayName()
	if expiry, ok := services.TokenExpiry(sess.AccessToken); ok {
		right += m.styles.Muted.Render(" · session until " + expiry.Format("15:04"))
	}
	return left + "  " + right
}

func (m Model) viewCards() string {
	ind := models.ResolveIndicator(m.filters.Indicator)
	country := models.ResolveCountry(m.filters.Country)

	current := "n/a"
	year := ""
	if n := len(m.snapshot.Series); n > 0 {
		last := m.snapshot.Series[n-1]
		current = formatValue(last.Value, ind.Kind)
		year = fmt.Sprintf("%d", last.Year)
	}

	cards := []string{
		m.card("Current Value", current, year),
		m.card("YoY Change", formatDelta(m.snapshot.Series), "vs previous year"),
		m.card("Country", country.Label, country.Code),
		m.card("Indicator", ind.Key, string(ind.Kind)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m Model) card(title, value, meta string) string {
	return m.styles.Card.Render(strings.Join([]string{
		m.styles.CardTitle.Render(title),
		m.styles.CardValue.Render(value),
		m.styles.CardMeta.Render(meta),
	}, "\n"))
}

func (m Model) viewFilterPanel() string {
	rows := []string{
		m.panelRow(fieldCountry, "Country", "◀ "+m.panel.country().Label+" ▶"),
		m.panelRow(fieldIndicator, "Indicator", "◀ "+m.panel.indicator().Label+" ▶"),
		m.panelRow(fieldYearStart, "From", m.panel.yearStart.View()),
		m.panelRow(fieldYearEnd, "To", m.panel.yearEnd.View()),
	}
	if m.panel.errMsg != "" {
		rows = append(rows, m.styles.Error.Render(m.panel.errMsg))
	}
	return m.styles.Panel.Render(strings.Join(rows, "\n"))
}

func (m Model) panelRow(field int, label, value string) string {
	st := m.styles.Label
	marker := "  "
	if m.panel.focus == field {
		st = m.styles.FocusedLabel
		marker = "> "
	}
	return fmt.Sprintf("%s%s %s", marker, st.Render(fmt.Sprintf("%-10s", label)), value)
}
