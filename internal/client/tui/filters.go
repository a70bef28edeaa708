package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrijs2005/econdash/internal/client/models"
)

// Filter panel field indexes, top to bottom.
const (
	fieldCountry = iota
	fieldIndicator
	fieldYearStart
	fieldYearEnd
	fieldCount
)

// filterPanel holds the pending, uncommitted filter selections. Committed
// values only change when the user applies the panel; until then the charts
// keep rendering the previous selection.
type filterPanel struct {
	countryIdx   int
	indicatorIdx int
	yearStart    textinput.Model
	yearEnd      textinput.Model
	focus        int
	errMsg       string
}

func newYearInput(year int) textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 4
	ti.Width = 6
	ti.SetValue(strconv.Itoa(year))
	return ti
}

func newFilterPanel(f models.FilterSet) filterPanel {
	p := filterPanel{
		yearStart: newYearInput(f.YearStart),
		yearEnd:   newYearInput(f.YearEnd),
	}
	for i, c := range models.Countries {
		if c.Code == f.Country {
			p.countryIdx = i
		}
	}
	for i, ind := range models.Indicators {
		if ind.Key == f.Indicator {
			p.indicatorIdx = i
		}
	}
	return p
}

func (p *filterPanel) country() models.Country {
	return models.Countries[p.countryIdx]
}

func (p *filterPanel) indicator() models.Indicator {
	return models.Indicators[p.indicatorIdx]
}

// moveFocus shifts the focused field by delta, wrapping around, and keeps
// the year inputs' focus state in sync.
func (p *filterPanel) moveFocus(delta int) {
	p.yearStart.Blur()
	p.yearEnd.Blur()
	p.focus = (p.focus + delta + fieldCount) % fieldCount
	switch p.focus {
	case fieldYearStart:
		p.yearStart.Focus()
	case fieldYearEnd:
		p.yearEnd.Focus()
	}
}

// cycle steps the focused catalog field by delta. Year fields are edited as
// text and are not affected.
func (p *filterPanel) cycle(delta int) {
	switch p.focus {
	case fieldCountry:
		n := len(models.Countries)
		p.countryIdx = (p.countryIdx + delta + n) % n
	case fieldIndicator:
		n := len(models.Indicators)
		p.indicatorIdx = (p.indicatorIdx + delta + n) % n
	}
}

// update routes a key to the focused year input, if any.
func (p *filterPanel) update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch p.focus {
	case fieldYearStart:
		p.yearStart, cmd = p.yearStart.Update(msg)
	case fieldYearEnd:
		p.yearEnd, cmd = p.yearEnd.Update(msg)
	}
	return cmd
}

// commit validates the pending selections and returns the filter set to
// apply. On validation failure it records the message and reports false,
// leaving the committed selection untouched.
func (p *filterPanel) commit() (models.FilterSet, bool) {
	start, err := strconv.Atoi(p.yearStart.Value())
	if err != nil {
		p.errMsg = "start year must be a number"
		return models.FilterSet{}, false
	}
	end, err := strconv.Atoi(p.yearEnd.Value())
	if err != nil {
		p.errMsg = "end year must be a number"
		return models.FilterSet{}, false
	}
	if start > end {
		p.errMsg = "start year must not be after end year"
		return models.FilterSet{}, false
	}

	p.errMsg = ""
	return models.FilterSet{
		Country:   p.country().Code,
		Indicator: p.indicator().Key,
		YearStart: start,
		YearEnd:   end,
	}, true
}
