package models

// FilterSet is the committed (country, indicator, year range) selection
// driving both charts. It is mutated only by an explicit user commit in the
// filter panel; YearStart <= YearEnd always holds for committed values.
type FilterSet struct {
	Country   string
	Indicator string
	YearStart int
	YearEnd   int
}

// DefaultFilterSet is the selection applied on the initial dashboard mount.
func DefaultFilterSet() FilterSet {
	return FilterSet{
		Country:   "USA",
		Indicator: "GDP",
		YearStart: 2010,
		YearEnd:   2023,
	}
}
