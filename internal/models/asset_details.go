package models

// Share is a weighted breakdown entry (region, sector, country, industry).
type Share struct {
	Share float64 `json:"share"`
	ID    string  `json:"id"`
}

// ExchangeSymbol lists the symbol of a security on one exchange.
type ExchangeSymbol struct {
	Exchange string `json:"exchange"`
	Symbol   string `json:"symbol"`
}

// DetailedSecurity is the full security block of an asset.
type DetailedSecurity struct {
	Regions      []Share          `json:"regions" validate:"dive"`
	Sectors      []Share          `json:"sectors" validate:"dive"`
	Countries    []Share          `json:"countries" validate:"dive"`
	Industries   []Share          `json:"industries" validate:"dive"`
	ISIN         string           `json:"isin"`
	Symbols      []ExchangeSymbol `json:"symbols" validate:"dive"`
	Website      string           `json:"website" validate:"url"`
	WKN          string           `json:"wkn"`
	Type         string           `json:"type"`
	IPODate      Date             `json:"ipoDate"`
	ETFDomicile  *string          `json:"etfDomicile,omitempty"`
	ETFCompany   *string          `json:"etfCompany,omitempty"`
	HasDividends *bool            `json:"hasDividends,omitempty"`
}

// DetailedAsset is an asset including timestamps and the full security
// block.
type DetailedAsset struct {
	ID        AssetID          `json:"_id"`
	AssetType string           `json:"assetType"`
	Name      string           `json:"name"`
	Logo      string           `json:"logo"`
	CreatedAt Date             `json:"createdAt"`
	UpdatedAt Date             `json:"updatedAt"`
	Security  DetailedSecurity `json:"security"`
}

// Range is a closed numeric interval.
type Range struct {
	From float64 `json:"from"`
	To   float64 `json:"to"`
}

// Address is a company postal address.
type Address struct {
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
}

// IncomeStatementGrowth is the year over year growth for one period.
type IncomeStatementGrowth struct {
	Date            Date    `json:"date"`
	GrowthRevenue   float64 `json:"growthRevenue"`
	GrowthNetIncome float64 `json:"growthNetIncome"`
}

// Financials are the reported figures for one period.
type Financials struct {
	Currency    Currency `json:"currency" validate:"currency"`
	Date        Date     `json:"date"`
	Revenue     float64  `json:"revenue"`
	GrossProfit float64  `json:"grossProfit"`
	NetIncome   float64  `json:"netIncome"`
	EBITDA      float64  `json:"ebitda"`
}

// SecurityDetails are the fundamentals of an equity. The TTM dividend
// figures are nil for companies that do not pay dividends.
type SecurityDetails struct {
	Description               string                  `json:"description"`
	Currency                  Currency                `json:"currency" validate:"currency"`
	MarketCap                 float64                 `json:"marketCap"`
	Shares                    float64                 `json:"shares"`
	FullTimeEmployees         float64                 `json:"fullTimeEmployees"`
	Beta                      float64                 `json:"beta"`
	PERatioTTM                float64                 `json:"peRatioTTM"`
	PriceSalesRatioTTM        float64                 `json:"priceSalesRatioTTM"`
	PriceToBookRatioTTM       float64                 `json:"priceToBookRatioTTM"`
	PEGRatioTTM               float64                 `json:"pegRatioTTM"`
	PriceFairValueTTM         float64                 `json:"priceFairValueTTM"`
	DividendYielPercentageTTM *float64                `json:"dividendYielPercentageTTM" schema:"nullable"`
	DividendPerShareTTM       *float64                `json:"dividendPerShareTTM" schema:"nullable"`
	PayoutRatioTTM            float64                 `json:"payoutRatioTTM"`
	FiftyTwoWeekRange         Range                   `json:"fiftyTwoWeekRange"`
	Address                   Address                 `json:"address"`
	IncomeStatementGrowth     []IncomeStatementGrowth `json:"incomeStatementGrowth" validate:"dive"`
	AnnualFinancials          []Financials            `json:"annualFinancials" validate:"dive"`
	QuarterlyFinancials       []Financials            `json:"quarterlyFinancials" validate:"dive"`
	CEO                       string                  `json:"ceo"`
}

// ETFDetails are the fund figures of an ETF.
type ETFDetails struct {
	Currency        Currency `json:"currency" validate:"currency"`
	NAV             float64  `json:"nav"`
	Description     string   `json:"description"`
	PriceToBook     float64  `json:"priceToBook"`
	PriceToEarnings float64  `json:"priceToEarnings"`
	AUM             float64  `json:"aum"`
	ExpenseRatio    float64  `json:"expenseRatio"`
}

// ETFHolding is one position held by an ETF.
type ETFHolding struct {
	Share          float64      `json:"share"`
	MarketValue    float64      `json:"marketValue"`
	AmountOfShares float64      `json:"amountOfShares"`
	Name           string       `json:"name"`
	Asset          AssetSummary `json:"asset"`
}

// ETFBreakdown lists the holdings of an ETF.
type ETFBreakdown struct {
	Currency  Currency     `json:"currency" validate:"currency"`
	UpdatedAt Date         `json:"updatedAt"`
	Holdings  []ETFHolding `json:"holdings" validate:"dive"`
}

// AnalystEstimates counts analyst recommendations.
type AnalystEstimates struct {
	StrongBuy  float64 `json:"strongBuy"`
	Buy        float64 `json:"buy"`
	Hold       float64 `json:"hold"`
	Sell       float64 `json:"sell"`
	StrongSell float64 `json:"strongSell"`
}

// PriceTargetConsensus summarizes analyst price targets.
type PriceTargetConsensus struct {
	Currency  Currency `json:"currency" validate:"currency"`
	High      float64  `json:"high"`
	Low       float64  `json:"low"`
	Consensus float64  `json:"consensus"`
	Median    float64  `json:"median"`
}

// AnalysisEntry is a published analysis (video or article).
type AnalysisEntry struct {
	AnalysisDate Date    `json:"analysisDate"`
	MediaType    string  `json:"mediaType"`
	RatingCount  float64 `json:"ratingCount"`
	Rating       float64 `json:"rating"`
	Author       string  `json:"author"`
	Title        string  `json:"title"`
	URL          string  `json:"url" validate:"url"`
}

// Analysis groups the analysis entries of an asset.
type Analysis struct {
	Entries []AnalysisEntry `json:"entries" validate:"dive"`
}

// NewsItem is a news article about an asset.
type NewsItem struct {
	PublishedAt Date   `json:"publishedAt"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image" validate:"url"`
	URL         string `json:"url" validate:"url"`
}

// Scoring is a rating badge. BadgeColor is a hex color.
type Scoring struct {
	Source     string  `json:"source"`
	Type       string  `json:"type"`
	Value      float64 `json:"value"`
	MaxValue   float64 `json:"maxValue"`
	BadgeColor string  `json:"badgeColor"`
}

// AssetDetailSections holds the detail sections of an asset. Equities carry
// SecurityDetails, ETFs carry ETFDetails and ETFBreakdown.
type AssetDetailSections struct {
	SecurityDetails      *SecurityDetails      `json:"securityDetails,omitempty"`
	ETFDetails           *ETFDetails           `json:"eftDetails,omitempty"`
	ETFBreakdown         *ETFBreakdown         `json:"etfBreakdown,omitempty" schema:"nullable"`
	AnalystEstimates     *AnalystEstimates     `json:"analystEstimates" schema:"nullable"`
	HistoricalDividends  []Dividend            `json:"historicalDividends" schema:"default" validate:"dive"`
	FutureDividends      []Dividend            `json:"futureDividends" schema:"default" validate:"dive"`
	PriceTargetConsensus *PriceTargetConsensus `json:"priceTargetConsensus" schema:"nullable"`
	Analysis             Analysis              `json:"analysis"`
	News                 []NewsItem            `json:"news" validate:"dive"`
	Scorings             []Scoring             `json:"scorings" validate:"dive"`
	PayoutInterval       *string               `json:"payoutInterval" schema:"nullable"`
	PayoutIntervalSource *string               `json:"payoutIntervalSource" schema:"nullable"`
	DividendKPIs         *DividendKPIs         `json:"dividendKPIs,omitempty" schema:"nullable"`
	DividendYearlyTTM    map[string]float64    `json:"dividendYearlyTTM" schema:"nullable"`
}

// AssetDetails is an asset with its current quote and all detail sections.
type AssetDetails struct {
	Asset   DetailedAsset       `json:"asset"`
	Quote   StockQuote          `json:"quote"`
	Details AssetDetailSections `json:"details"`
}
