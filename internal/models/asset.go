package models

// AssetID is the compound key of an asset.
type AssetID struct {
	Identifier string `json:"identifier"`
	AssetType  string `json:"assetType"`
}

// AssetSecurity holds the security metadata of an Asset.
type AssetSecurity struct {
	Website     string `json:"website" validate:"url"`
	Type        string `json:"type"`
	WKN         string `json:"wkn"`
	ISIN        string `json:"isin"`
	ETFDomicile string `json:"etfDomicile"`
	ETFCompany  string `json:"etfCompany"`
}

// Asset represents a tradable security as returned by the asset provider.
type Asset struct {
	ID        AssetID       `json:"_id"`
	AssetType string        `json:"assetType"`
	Name      string        `json:"name"`
	Logo      string        `json:"logo" validate:"url"`
	Security  AssetSecurity `json:"security"`
}

// SecuritySummary is the loosely checked security block embedded in
// dividend details and ETF holdings. Website and logo are not required to
// be URLs there and the ETF fields may be missing.
type SecuritySummary struct {
	Website     string  `json:"website"`
	Type        string  `json:"type"`
	WKN         string  `json:"wkn"`
	ISIN        string  `json:"isin"`
	ETFDomicile *string `json:"etfDomicile,omitempty"`
	ETFCompany  *string `json:"etfCompany,omitempty"`
}

// AssetSummary is an Asset as it appears nested in other records.
type AssetSummary struct {
	ID        AssetID         `json:"_id"`
	AssetType string          `json:"assetType"`
	Name      string          `json:"name"`
	Logo      string          `json:"logo"`
	Security  SecuritySummary `json:"security"`
}

// AssetSearchResult is the lightweight projection used in search listings.
type AssetSearchResult struct {
	Type       StockType `json:"type"`
	Name       string    `json:"name"`
	Identifier string    `json:"identifier"`
	Logo       string    `json:"logo"`
	Domicile   *string   `json:"domicile,omitempty"`
	WKN        string    `json:"wkn"`
	Website    *string   `json:"website,omitempty"`
}

// ChartInterval is the requested window of a chart quote.
type ChartInterval struct {
	From      Date   `json:"from"`
	To        Date   `json:"to"`
	Timeframe string `json:"timeframe"`
}

// QuotePoint is a single (date, price) observation.
type QuotePoint struct {
	Date  Date    `json:"date"`
	Price float64 `json:"price"`
}

// ChartValues holds the plotted values of a chart point.
type ChartValues struct {
	Price float64 `json:"price"`
}

// ChartPoint is a plotted point tagged with its intraday position.
type ChartPoint struct {
	Values ChartValues `json:"values"`
	Date   Date        `json:"date"`
	Mark   ChartMark   `json:"mark" validate:"chart_mark"`
}

// AssetChartQuote is a time series of quotes for one asset.
type AssetChartQuote struct {
	AssetID         AssetID       `json:"assetId"`
	AssetIdentifier string        `json:"assetIdentifier"`
	Interval        ChartInterval `json:"interval"`
	From            Date          `json:"from"`
	Currency        Currency      `json:"currency" validate:"currency"`
	Quotes          []QuotePoint  `json:"quotes" validate:"dive"`
	PriceChart      []ChartPoint  `json:"priceChart" validate:"dive"`
	Exchange        string        `json:"exchange"`
}
