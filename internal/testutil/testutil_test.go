package testutil_test

import (
	"encoding/json"
	"testing"

	"stockfolio/internal/errors"
	"stockfolio/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	for _, table := range []string{"stock_exchanges", "stock_positions"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestDBFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	exchange := testutil.CreateTestExchange(t, db)
	if exchange.Symbol == "" {
		t.Fatal("exchange should have a symbol")
	}

	position := testutil.CreateTestPosition(t, db, exchange.Symbol)
	if position.ID == 0 {
		t.Fatal("position should have a non-zero ID")
	}
	if position.Exchange != exchange.Symbol {
		t.Errorf("expected exchange %q, got %q", exchange.Symbol, position.Exchange)
	}
}

func TestFixturesAreJSON(t *testing.T) {
	for name, raw := range testutil.Fixtures {
		if !json.Valid([]byte(raw)) {
			t.Errorf("fixture %q is not valid JSON", name)
		}
	}
}

func TestAssertAppError(t *testing.T) {
	// Should not fail for matching code
	testutil.AssertAppError(t, errors.ErrSchemaNotFound, "SCHEMA_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
