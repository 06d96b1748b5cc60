package models

// Currency is a three letter currency code such as EUR or USD.
type Currency string

// Timeframe is the range a chart was requested for.
type Timeframe string

const (
	Timeframe1D  Timeframe = "1d"
	Timeframe1M  Timeframe = "1m"
	Timeframe3M  Timeframe = "3m"
	Timeframe1Y  Timeframe = "1y"
	Timeframe5Y  Timeframe = "5y"
	TimeframeYTD Timeframe = "ytd"
)

// StockType classifies a security. Aktie and ETF are the known values, but
// providers send others and those are accepted as-is.
type StockType string

const (
	StockTypeAktie StockType = "Aktie"
	StockTypeETF   StockType = "ETF"
)

// IsKnown reports whether t is one of the named stock types.
func (t StockType) IsKnown() bool {
	return t == StockTypeAktie || t == StockTypeETF
}

// ChartMark tags where a chart point sits within a trading day.
type ChartMark string

const (
	ChartMarkMostRecent ChartMark = "most_recent"
	ChartMarkEOD        ChartMark = "eod"
	ChartMarkBOD        ChartMark = "bod"
)

// ExchangeLabel describes one entry of the exchange lookup table.
type ExchangeLabel struct {
	Label  string `json:"label"`
	Ticker string `json:"ticker"`
}

// StockExchanges maps an exchange key to its display label and ticker.
type StockExchanges map[string]ExchangeLabel
