package models

// StockQuote is a price observation for an ISIN on an exchange. CachedAt
// records when the quote was stored and is used to judge staleness; it is
// unrelated to Date and Datetime of the quote itself.
type StockQuote struct {
	Currency Currency `json:"currency" validate:"currency"`
	Exchange string   `json:"exchange" validate:"max=100"`
	Date     Date     `json:"date"`
	Datetime Date     `json:"datetime"`
	Price    float64  `json:"price"`
	ISIN     string   `json:"isin" validate:"isin"`
	CachedAt Date     `json:"cachedAt"`
}

// StockExchange identifies a tradable symbol on an exchange.
type StockExchange struct {
	Symbol   string `gorm:"primaryKey;size:5" json:"symbol" validate:"max=5"`
	Name     string `gorm:"size:100;not null" json:"name" validate:"max=100"`
	Exchange string `gorm:"size:100;not null" json:"exchange" validate:"max=100"`
	Country  string `gorm:"size:100;not null" json:"country" validate:"max=100"`
}

// StockExchangeTable is a row of the stock_exchanges table.
type StockExchangeTable struct {
	StockExchange
	CreatedAt Date `gorm:"not null" json:"created_at"`
}

// TableName overrides the table name used by GORM.
func (StockExchangeTable) TableName() string {
	return "stock_exchanges"
}
