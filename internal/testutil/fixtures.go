package testutil

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"stockfolio/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Owner ids and record ids used by the fixtures.
const (
	OwnerID  = "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b"
	FileID   = "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5c"
	RecordID = "abc123def456ghi"
)

const (
	assetIDJSON  = `{"identifier":"US0378331005","assetType":"Security"}`
	exchangeJSON = `{"symbol":"XETR","name":"Xetra","exchange":"Deutsche Boerse Xetra","country":"Germany"}`
	quoteJSON    = `{"currency":"EUR","exchange":"XETRA","date":"2024-05-16","datetime":"2024-05-16T15:30:00Z","price":172.5,"isin":"US0378331005","cachedAt":"2024-05-16T15:31:00Z"}`
	dividendJSON = `{"type":"dividend","security":"US0378331005","price":0.24,"currency":"USD",` +
		`"date":"2024-05-16T00:00:00Z","datetime":"2024-05-16T00:00:00Z","paymentDate":"2024-05-16T00:00:00Z",` +
		`"declarationDate":"2024-05-02T00:00:00Z","recordDate":null,"exDate":"2024-05-10T00:00:00Z","isEstimated":false}`
	dividendDetailsJSON = `{"identifier":"US0378331005","payoutInterval":"quarterly","asset":null,` +
		`"historyDividends":[` + dividendJSON + `],` +
		`"dividendKPIs":{"cagr3Y":5.1,"cagr5Y":null,"cagr10Y":null,"dividendYieldPercentageTTM":0.5,"dividendPerShareTTM":0.96}}`
	positionFieldsJSON = `"id":1,"owner":"` + OwnerID + `","bought_at":"2024-03-01","isin":"US0378331005",` +
		`"buy_in":170.25,"currency":"EUR","quantity":10,"created_at":"2024-03-01T09:00:00Z"`
	categoryJSON = `{"id":3,"owner":"` + OwnerID + `","name":"Groceries","description":null,"created_at":"2024-01-01T00:00:00Z"}`
	paymentJSON  = `{"id":5,"owner":"` + OwnerID + `","name":"Checking","address":"DE89370400440532013000",` +
		`"provider":"Bank","description":"Main account","created_at":"2024-01-01T00:00:00Z"}`
	fileJSON = `{"uuid":"` + FileID + `","fileName":"receipt.pdf","fileSize":48213,"mimeType":"application/pdf",` +
		`"location":"transactions/42/receipt.pdf","createdAt":"2024-05-01T12:00:00Z"}`
	userJSON = `{"id":"` + RecordID + `","created":"2024-01-01 10:00:00.123Z","updated":"2024-02-01 10:00:00.456Z",` +
		`"collectionId":"_pb_users_auth_","collectionName":"users","avatar":null,"email":"jane@example.com",` +
		`"emailVisibility":false,"username":"jane","name":"Jane","surname":null,"verified":true,"newsletter":["n1a2b3c4d5e6f7g"]}`
	transactionJSON = `{"id":42,"owner":` + userJSON + `,"category":` + categoryJSON + `,"paymentMethod":` + paymentJSON + `,` +
		`"processedAt":"2024-05-01","receiver":"Supermarket","description":"Weekly shopping","transferAmount":"-54.20",` +
		`"attachedFiles":[` + fileJSON + `],"createdAt":"2024-05-01T12:00:00Z"}`
	detailedAssetJSON = `{"_id":` + assetIDJSON + `,"assetType":"Security","name":"Apple Inc.",` +
		`"logo":"https://assets.example.com/logos/US0378331005.png","createdAt":"2023-01-01T00:00:00Z","updatedAt":"2024-05-01T00:00:00Z",` +
		`"security":{"regions":[{"share":1,"id":"north-america"}],"sectors":[{"share":1,"id":"technology"}],` +
		`"countries":[{"share":1,"id":"US"}],"industries":[{"share":1,"id":"consumer-electronics"}],"isin":"US0378331005",` +
		`"symbols":[{"exchange":"XETRA","symbol":"APC"}],"website":"https://www.apple.com","wkn":"865985","type":"Aktie",` +
		`"ipoDate":"1980-12-12","hasDividends":true}}`
	securityDetailsJSON = `{"description":"Designs consumer electronics.","currency":"USD","marketCap":2.9e12,"shares":1.5e10,` +
		`"fullTimeEmployees":161000,"beta":1.29,"peRatioTTM":29.1,"priceSalesRatioTTM":7.6,"priceToBookRatioTTM":45.2,` +
		`"pegRatioTTM":2.1,"priceFairValueTTM":180,"dividendYielPercentageTTM":0.5,"dividendPerShareTTM":0.96,` +
		`"payoutRatioTTM":0.15,"fiftyTwoWeekRange":{"from":164.1,"to":199.6},` +
		`"address":{"addressLine":"One Apple Park Way","city":"Cupertino","state":"CA","zip":"95014"},` +
		`"incomeStatementGrowth":[{"date":"2023-09-30","growthRevenue":-0.028,"growthNetIncome":-0.028}],` +
		`"annualFinancials":[{"currency":"USD","date":"2023-09-30","revenue":3.83e11,"grossProfit":1.69e11,"netIncome":9.7e10,"ebitda":1.25e11}],` +
		`"quarterlyFinancials":[],"ceo":"Tim Cook"}`
	assetDetailsJSON = `{"asset":` + detailedAssetJSON + `,"quote":` + quoteJSON + `,"details":{` +
		`"securityDetails":` + securityDetailsJSON + `,` +
		`"analystEstimates":{"strongBuy":12,"buy":20,"hold":8,"sell":1,"strongSell":0},` +
		`"futureDividends":[` + dividendJSON + `],"priceTargetConsensus":null,` +
		`"analysis":{"entries":[{"analysisDate":"2024-04-01","mediaType":"video","ratingCount":10,"rating":4.5,` +
		`"author":"Analyst","title":"Apple review","url":"https://example.com/analysis/1"}]},` +
		`"news":[{"publishedAt":"2024-05-02T08:00:00Z","title":"Earnings","description":"Q2 results",` +
		`"image":"https://example.com/news/1.png","url":"https://example.com/news/1"}],` +
		`"scorings":[{"source":"esg","type":"score","value":7,"maxValue":10,"badgeColor":"#00ff00"}],` +
		`"payoutInterval":"quarterly","payoutIntervalSource":null,"dividendYearlyTTM":{"2023":0.94}}}`
)

// Fixtures holds one valid JSON document per registered shape name.
var Fixtures = map[string]string{
	"Currency":       `"EUR"`,
	"Timeframe":      `"1y"`,
	"StockType":      `"Aktie"`,
	"StockExchanges": `{"XETRA":{"label":"Xetra","ticker":"GDAXI"},"NYSE":{"label":"New York Stock Exchange","ticker":"NYA"}}`,
	"Asset": `{"_id":` + assetIDJSON + `,"assetType":"Security","name":"Apple Inc.",` +
		`"logo":"https://assets.example.com/logos/US0378331005.png","security":{"website":"https://www.apple.com",` +
		`"type":"Aktie","wkn":"865985","isin":"US0378331005","etfDomicile":"","etfCompany":""}}`,
	"AssetSearchResult": `{"type":"Aktie","name":"Apple Inc.","identifier":"US0378331005",` +
		`"logo":"https://assets.example.com/logos/US0378331005.png","domicile":"US","wkn":"865985","website":"https://www.apple.com"}`,
	"AssetChartQuote": `{"assetId":` + assetIDJSON + `,"assetIdentifier":"US0378331005",` +
		`"interval":{"from":"2024-01-02T00:00:00Z","to":"2024-12-31T00:00:00Z","timeframe":"1y"},` +
		`"from":"2024-01-02T00:00:00Z","currency":"EUR","quotes":[{"date":"2024-01-02T00:00:00Z","price":172.5}],` +
		`"priceChart":[{"values":{"price":172.5},"date":"2024-01-02T00:00:00Z","mark":"eod"}],"exchange":"XETRA"}`,
	"Dividend":           dividendJSON,
	"DividendDetails":    dividendDetailsJSON,
	"DividendDetailList": `{"dividendDetails":{"US0378331005":` + dividendDetailsJSON + `}}`,
	"StockQuote":         quoteJSON,
	"StockExchangeTable": `{"symbol":"XETR","name":"Xetra","exchange":"Deutsche Boerse Xetra","country":"Germany",` +
		`"created_at":"2024-01-01 00:00:00+00"}`,
	"StockPositionTable":             `{` + positionFieldsJSON + `,"exchange":"XETR"}`,
	"MaterializedStockPositionTable": `{` + positionFieldsJSON + `,"exchange":` + exchangeJSON + `}`,
	"OpenPositionPayload": `{"owner":"` + OwnerID + `","bought_at":"2024-03-01","exchange":"XETR","isin":"US0378331005",` +
		`"buy_in":170.25,"currency":"EUR","quantity":10}`,
	"UpdatePositionPayload": `{"id":1,"bought_at":"2024-03-01","exchange":"XETR","isin":"US0378331005","buy_in":171,"quantity":12}`,
	"ClosePositionPayload":  `{"id":1}`,
	"StockPosition": `{` + positionFieldsJSON + `,"exchange":` + exchangeJSON + `,"name":"Apple Inc.",` +
		`"logo":"https://assets.example.com/logos/US0378331005.png","volume":1702.5,"quote":` + quoteJSON + `}`,
	"AssetDetails":    assetDetailsJSON,
	"Category":        categoryJSON,
	"PaymentMethod":   paymentJSON,
	"TransactionFile": fileJSON,
	"TransferAmount":  `"12.50"`,
	"Transaction":     transactionJSON,
	"CreateTransactionPayload": `{"owner":"` + OwnerID + `","categoryId":3,"paymentMethodId":5,"processedAt":"2024-05-01",` +
		`"receiver":"Supermarket","description":null,"transferAmount":54.2}`,
	"UpdateTransactionPayload": `{"transactionId":42,"categoryId":3,"paymentMethodId":5,"processedAt":"2024-05-01",` +
		`"receiver":"Supermarket","description":"Weekly shopping","transferAmount":"54.20"}`,
	"DeleteTransactionPayload":         `[{"transactionId":42},{"transactionId":7}]`,
	"DeleteTransactionResponsePayload": `{"success":[` + transactionJSON + `],"failed":[{"transactionId":7}]}`,
	"User":                             userJSON,
}

// Fixture returns the fixture of the named shape decoded into a JSON object.
func Fixture(t *testing.T, name string) map[string]any {
	t.Helper()

	raw, ok := Fixtures[name]
	if !ok {
		t.Fatalf("no fixture for %q", name)
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		t.Fatalf("fixture %q is not a JSON object: %v", name, err)
	}
	return obj
}

// Encode marshals v to JSON.
func Encode(t *testing.T, v any) []byte {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to encode %T: %v", v, err)
	}
	return data
}

// CreateTestExchange stores a stock exchange row with a unique symbol.
func CreateTestExchange(t *testing.T, db *gorm.DB) *models.StockExchangeTable {
	t.Helper()

	exchange := &models.StockExchangeTable{
		StockExchange: models.StockExchange{
			Symbol:   fmt.Sprintf("X%03d", nextID()%1000),
			Name:     "Xetra",
			Exchange: "Deutsche Boerse Xetra",
			Country:  "Germany",
		},
		CreatedAt: models.NewDate(time.Now().UTC()),
	}
	if err := db.Create(exchange).Error; err != nil {
		t.Fatalf("failed to create test exchange: %v", err)
	}
	return exchange
}

// CreateTestPosition stores a position on the given exchange.
func CreateTestPosition(t *testing.T, db *gorm.DB, exchange string) *models.StockPositionTable {
	t.Helper()
	return CreateTestPositionWithISIN(t, db, exchange, "US0378331005")
}

// CreateTestPositionWithISIN stores a position with the given ISIN. The
// ISIN is not checked, so tests can store rows that violate the row shape.
func CreateTestPositionWithISIN(t *testing.T, db *gorm.DB, exchange, isin string) *models.StockPositionTable {
	t.Helper()

	now := models.NewDate(time.Now().UTC())
	position := &models.StockPositionTable{
		Owner:     OwnerID,
		BoughtAt:  now,
		Exchange:  exchange,
		ISIN:      isin,
		BuyIn:     170.25,
		Currency:  "EUR",
		Quantity:  10,
		CreatedAt: now,
	}
	if err := db.Create(position).Error; err != nil {
		t.Fatalf("failed to create test position: %v", err)
	}
	return position
}
