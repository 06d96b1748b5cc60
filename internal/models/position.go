package models

// StockPositionTable is a row of the stock_positions table. Exchange holds
// the symbol of a stock_exchanges row.
type StockPositionTable struct {
	ID        int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Owner     string   `gorm:"type:uuid;not null;index" json:"owner" validate:"uuid"`
	BoughtAt  Date     `gorm:"not null" json:"bought_at"`
	Exchange  string   `gorm:"size:5;not null" json:"exchange"`
	ISIN      string   `gorm:"size:12;not null" json:"isin" validate:"isin"`
	BuyIn     float64  `gorm:"not null" json:"buy_in"`
	Currency  Currency `gorm:"size:3;not null" json:"currency" validate:"currency"`
	Quantity  float64  `gorm:"not null" json:"quantity"`
	CreatedAt Date     `gorm:"not null" json:"created_at"`
}

// TableName overrides the table name used by GORM.
func (StockPositionTable) TableName() string {
	return "stock_positions"
}

// Materialize resolves the exchange reference of p into exchange.
func (p StockPositionTable) Materialize(exchange StockExchangeTable) MaterializedStockPositionTable {
	return MaterializedStockPositionTable{
		ID:        p.ID,
		Owner:     p.Owner,
		BoughtAt:  p.BoughtAt,
		Exchange:  exchange.StockExchange,
		ISIN:      p.ISIN,
		BuyIn:     p.BuyIn,
		Currency:  p.Currency,
		Quantity:  p.Quantity,
		CreatedAt: p.CreatedAt,
	}
}

// MaterializedStockPositionTable is a stock position row with its exchange
// joined in.
type MaterializedStockPositionTable struct {
	ID        int64         `json:"id"`
	Owner     string        `json:"owner"`
	BoughtAt  Date          `json:"bought_at"`
	Exchange  StockExchange `json:"exchange"`
	ISIN      string        `json:"isin" validate:"isin"`
	BuyIn     float64       `json:"buy_in"`
	Currency  Currency      `json:"currency" validate:"currency"`
	Quantity  float64       `json:"quantity"`
	CreatedAt Date          `json:"created_at"`
}

// OpenPositionPayload is the request body for opening a position.
type OpenPositionPayload struct {
	Owner    string   `json:"owner" validate:"uuid"`
	BoughtAt Date     `json:"bought_at"`
	Exchange string   `json:"exchange"`
	ISIN     string   `json:"isin" validate:"isin"`
	BuyIn    float64  `json:"buy_in"`
	Currency Currency `json:"currency" validate:"currency"`
	Quantity float64  `json:"quantity"`
}

// UpdatePositionPayload is the request body for updating a position. The
// owner and currency of a position cannot change.
type UpdatePositionPayload struct {
	ID       int64   `json:"id"`
	BoughtAt Date    `json:"bought_at"`
	Exchange string  `json:"exchange"`
	ISIN     string  `json:"isin" validate:"isin"`
	BuyIn    float64 `json:"buy_in"`
	Quantity float64 `json:"quantity"`
}

// ClosePositionPayload is the request body for closing a position.
type ClosePositionPayload struct {
	ID int64 `json:"id"`
}

// StockPosition is a position enriched with asset data and its latest
// quote.
type StockPosition struct {
	ID        int64         `json:"id"`
	Owner     string        `json:"owner" validate:"uuid"`
	BoughtAt  Date          `json:"bought_at"`
	Exchange  StockExchange `json:"exchange"`
	ISIN      string        `json:"isin" validate:"isin"`
	BuyIn     float64       `json:"buy_in"`
	Currency  Currency      `json:"currency" validate:"currency"`
	Quantity  float64       `json:"quantity"`
	CreatedAt Date          `json:"created_at"`
	Name      string        `json:"name"`
	Logo      string        `json:"logo"`
	Volume    float64       `json:"volume"`
	Quote     StockQuote    `json:"quote"`
}
