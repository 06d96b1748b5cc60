package schema

import (
	"errors"
	"sort"
	"sync"

	"stockfolio/internal/models"
)

// ErrUnknownShape is returned by Registry.Validate for an unregistered name.
var ErrUnknownShape = errors.New("unknown schema")

// Stock and asset shapes.
var (
	Currency                       = Define[models.Currency]("Currency", WithTag("currency"))
	Timeframe                      = Define[models.Timeframe]("Timeframe", WithTag("timeframe"))
	StockType                      = Define[models.StockType]("StockType")
	StockExchanges                 = Define[models.StockExchanges]("StockExchanges")
	Asset                          = Define[models.Asset]("Asset")
	AssetSearchResult              = Define[models.AssetSearchResult]("AssetSearchResult")
	AssetChartQuote                = Define[models.AssetChartQuote]("AssetChartQuote")
	Dividend                       = Define[models.Dividend]("Dividend")
	DividendDetails                = Define[models.DividendDetails]("DividendDetails")
	DividendDetailList             = Define[models.DividendDetailList]("DividendDetailList")
	StockQuote                     = Define[models.StockQuote]("StockQuote")
	StockExchangeTable             = Define[models.StockExchangeTable]("StockExchangeTable")
	StockPositionTable             = Define[models.StockPositionTable]("StockPositionTable")
	MaterializedStockPositionTable = Define[models.MaterializedStockPositionTable]("MaterializedStockPositionTable")
	OpenPositionPayload            = Define[models.OpenPositionPayload]("OpenPositionPayload")
	UpdatePositionPayload          = Define[models.UpdatePositionPayload]("UpdatePositionPayload")
	ClosePositionPayload           = Define[models.ClosePositionPayload]("ClosePositionPayload")
	StockPosition                  = Define[models.StockPosition]("StockPosition")
	AssetDetails                   = Define[models.AssetDetails]("AssetDetails")
)

// Transaction shapes.
var (
	Category                         = Define[models.Category]("Category")
	PaymentMethod                    = Define[models.PaymentMethod]("PaymentMethod")
	TransactionFile                  = Define[models.TransactionFile]("TransactionFile")
	TransferAmount                   = Define[models.Amount]("TransferAmount")
	Transaction                      = Define[models.Transaction]("Transaction")
	CreateTransactionPayload         = Define[models.CreateTransactionPayload]("CreateTransactionPayload")
	UpdateTransactionPayload         = Define[models.UpdateTransactionPayload]("UpdateTransactionPayload")
	DeleteTransactionPayload         = Define[models.DeleteTransactionPayload]("DeleteTransactionPayload")
	DeleteTransactionResponsePayload = Define[models.DeleteTransactionResponsePayload]("DeleteTransactionResponsePayload")
)

// User is nullable: a JSON null stands for "no authenticated user".
var User = Define[*models.User]("User")

// Registry looks shapes up by name.
type Registry struct {
	shapes map[string]Schema
}

// NewRegistry returns a registry holding the given shapes. A later shape
// replaces an earlier one of the same name.
func NewRegistry(shapes ...Schema) *Registry {
	r := &Registry{shapes: make(map[string]Schema, len(shapes))}
	for _, s := range shapes {
		r.shapes[s.Name()] = s
	}
	return r
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the registry of every record shape.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(
			Currency, Timeframe, StockType, StockExchanges,
			Asset, AssetSearchResult, AssetChartQuote,
			Dividend, DividendDetails, DividendDetailList,
			StockQuote, StockExchangeTable, StockPositionTable, MaterializedStockPositionTable,
			OpenPositionPayload, UpdatePositionPayload, ClosePositionPayload, StockPosition,
			AssetDetails,
			Category, PaymentMethod, TransactionFile, TransferAmount, Transaction,
			CreateTransactionPayload, UpdateTransactionPayload,
			DeleteTransactionPayload, DeleteTransactionResponsePayload,
			User,
		)
	})
	return defaultRegistry
}

// Lookup returns the shape registered under name.
func (r *Registry) Lookup(name string) (Schema, bool) {
	s, ok := r.shapes[name]
	return s, ok
}

// Names returns the registered shape names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.shapes))
	for name := range r.shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks data against the named shape.
func (r *Registry) Validate(name string, data []byte) (any, error) {
	s, ok := r.Lookup(name)
	if !ok {
		return nil, ErrUnknownShape
	}
	return s.Check(data)
}
