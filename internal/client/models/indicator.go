package models

// ValueKind classifies how an indicator's values are rendered.
type ValueKind string

const (
	KindCurrency ValueKind = "currency"
	KindCount    ValueKind = "count"
	KindPercent  ValueKind = "percent"
)

// Indicator is one entry of the fixed indicator catalog. Key is the internal
// filter key, ProviderCode the statistics provider's indicator code, and
// BaseMagnitude the scale applied to synthetic fallback values.
type Indicator struct {
	Key           string
	ProviderCode  string
	Label         string
	Kind          ValueKind
	BaseMagnitude float64
}

// fallbackBase is the synthetic-data magnitude for indicators without a
// dedicated scale.
const fallbackBase = 2.5

// Indicators is the catalog offered by the filter panel, in display order.
var Indicators = []Indicator{
	{Key: "GDP", ProviderCode: "NY.GDP.MKTP.CD", Label: "GDP (Current US$)", Kind: KindCurrency, BaseMagnitude: 1.5e13},
	{Key: "POPULATION", ProviderCode: "SP.POP.TOTL", Label: "Population, Total", Kind: KindCount, BaseMagnitude: 3.3e8},
	{Key: "INFLATION", ProviderCode: "FP.CPI.TOTL.ZG", Label: "Inflation, Consumer Prices (%)", Kind: KindPercent, BaseMagnitude: fallbackBase},
	{Key: "UNEMPLOYMENT", ProviderCode: "SL.UEM.TOTL.ZS", Label: "Unemployment Rate (%)", Kind: KindPercent, BaseMagnitude: fallbackBase},
	{Key: "EXPORTS", ProviderCode: "NE.EXP.GNFS.CD", Label: "Exports of Goods and Services (US$)", Kind: KindCurrency, BaseMagnitude: fallbackBase},
	{Key: "IMPORTS", ProviderCode: "NE.IMP.GNFS.CD", Label: "Imports of Goods and Services (US$)", Kind: KindCurrency, BaseMagnitude: fallbackBase},
}

// ResolveIndicator maps an internal indicator key to its catalog entry. The
// resolution is total: unknown keys come back wrapped as-is with percent
// rendering and the default fallback magnitude, so the raw key is passed
// through to the provider unchanged.
func ResolveIndicator(key string) Indicator {
	for _, i := range Indicators {
		if i.Key == key {
			return i
		}
	}
	return Indicator{Key: key, ProviderCode: key, Label: key, Kind: KindPercent, BaseMagnitude: fallbackBase}
}
