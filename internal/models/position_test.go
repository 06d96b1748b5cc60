package models

import (
	"testing"
	"time"
)

func TestStockPositionTable_Materialize(t *testing.T) {
	now := NewDate(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	position := StockPositionTable{
		ID:        7,
		Owner:     "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b",
		BoughtAt:  now,
		Exchange:  "XETR",
		ISIN:      "US0378331005",
		BuyIn:     170.25,
		Currency:  "EUR",
		Quantity:  10,
		CreatedAt: now,
	}
	exchange := StockExchangeTable{
		StockExchange: StockExchange{Symbol: "XETR", Name: "Xetra", Exchange: "Deutsche Boerse Xetra", Country: "Germany"},
		CreatedAt:     now,
	}

	got := position.Materialize(exchange)

	if got.ID != 7 || got.ISIN != position.ISIN || got.Quantity != 10 {
		t.Errorf("position fields not copied: %+v", got)
	}
	if got.Exchange != exchange.StockExchange {
		t.Errorf("expected exchange %+v, got %+v", exchange.StockExchange, got.Exchange)
	}
}

func TestTableNames(t *testing.T) {
	if got := (StockPositionTable{}).TableName(); got != "stock_positions" {
		t.Errorf("expected stock_positions, got %s", got)
	}
	if got := (StockExchangeTable{}).TableName(); got != "stock_exchanges" {
		t.Errorf("expected stock_exchanges, got %s", got)
	}
}
