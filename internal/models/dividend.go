package models

// Dividend is a single dividend event of a security. OriginalPrice and
// OriginalCurrency are set when Price was converted from another currency.
type Dividend struct {
	Type             string    `json:"type"`
	Security         string    `json:"security"`
	Price            float64   `json:"price"`
	Currency         Currency  `json:"currency" validate:"currency"`
	Date             Date      `json:"date"`
	Datetime         Date      `json:"datetime"`
	OriginalPrice    *float64  `json:"originalPrice,omitempty"`
	OriginalCurrency *Currency `json:"originalCurrency,omitempty" validate:"omitnil,currency"`
	PaymentDate      Date      `json:"paymentDate"`
	DeclarationDate  *Date     `json:"declarationDate,omitempty" schema:"nullable"`
	RecordDate       *Date     `json:"recordDate,omitempty" schema:"nullable"`
	ExDate           Date      `json:"exDate"`
	IsEstimated      bool      `json:"isEstimated"`
}

// DividendKPIs are the computed dividend figures of a security. The CAGR
// values are nil when there is not enough history to compute them.
type DividendKPIs struct {
	CAGR3Y                     *float64 `json:"cagr3Y" schema:"nullable"`
	CAGR5Y                     *float64 `json:"cagr5Y" schema:"nullable"`
	CAGR10Y                    *float64 `json:"cagr10Y" schema:"nullable"`
	DividendYieldPercentageTTM float64  `json:"dividendYieldPercentageTTM"`
	DividendPerShareTTM        float64  `json:"dividendPerShareTTM"`
}

// DividendDetails aggregates the past and announced dividends of one
// security.
type DividendDetails struct {
	Identifier       string        `json:"identifier"`
	PayoutInterval   string        `json:"payoutInterval"`
	Asset            *AssetSummary `json:"asset" schema:"default"`
	HistoryDividends []Dividend    `json:"historyDividends" schema:"default" validate:"dive"`
	FutureDividends  []Dividend    `json:"futureDividends" schema:"default" validate:"dive"`
	DividendKPIs     *DividendKPIs `json:"dividendKPIs,omitempty"`
}

// DividendDetailList maps a security identifier to its dividend details.
type DividendDetailList struct {
	DividendDetails map[string]DividendDetails `json:"dividendDetails" validate:"dive"`
}
