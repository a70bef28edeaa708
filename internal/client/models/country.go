package models

// Country is one entry of the fixed country catalog. Code is the internal
// ISO3-style key used in filters, ProviderCode is the alpha-2 code the
// statistics provider expects, Label is the display name.
type Country struct {
	Code         string
	ProviderCode string
	Label        string
}

// Known reports whether the country came from the catalog rather than from
// the ResolveCountry fallback.
func (c Country) Known() bool {
	return c.Code != c.ProviderCode
}

// Countries is the catalog offered by the filter panel, in display order.
var Countries = []Country{
	{Code: "USA", ProviderCode: "US", Label: "United States"},
	{Code: "CHN", ProviderCode: "CN", Label: "China"},
	{Code: "JPN", ProviderCode: "JP", Label: "Japan"},
	{Code: "DEU", ProviderCode: "DE", Label: "Germany"},
	{Code: "GBR", ProviderCode: "GB", Label: "United Kingdom"},
	{Code: "FRA", ProviderCode: "FR", Label: "France"},
	{Code: "IND", ProviderCode: "IN", Label: "India"},
	{Code: "BRA", ProviderCode: "BR", Label: "Brazil"},
}

// ResolveCountry maps an internal country code to its catalog entry. The
// resolution is total: unknown codes come back wrapped as-is, so requests
// for countries outside the catalog pass the raw code through to the
// provider unchanged.
func ResolveCountry(code string) Country {
	for _, c := range Countries {
		if c.Code == code {
			return c
		}
	}
	return Country{Code: code, ProviderCode: code, Label: code}
}

// ComparisonCountries is the fixed set fetched for the cross-country chart.
func ComparisonCountries() []string {
	return []string{"USA", "CHN", "JPN", "DEU", "GBR", "FRA", "IND", "BRA"}
}

// FallbackCountries is the fixed set used for synthetic comparison data
// when the live fetch cycle fails.
func FallbackCountries() []string {
	return []string{"USA", "CHN", "JPN", "DEU", "GBR"}
}
