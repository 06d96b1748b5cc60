package database

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"stockfolio/internal/schema"
	"stockfolio/internal/testutil"
)

func TestManager_Audit(t *testing.T) {
	t.Run("clean database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		exchange := testutil.CreateTestExchange(t, db)
		testutil.CreateTestPosition(t, db, exchange.Symbol)
		testutil.CreateTestPosition(t, db, exchange.Symbol)

		report, err := NewManagerFromDB(db).Audit(context.Background())
		testutil.AssertNoError(t, err)

		if !report.Clean() {
			t.Errorf("expected a clean report, got %+v", report.Rows)
		}
		if report.Checked["stock_exchanges"] != 1 || report.Checked["stock_positions"] != 2 {
			t.Errorf("unexpected counts %v", report.Checked)
		}
	})

	t.Run("reports rows that violate their shape", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		exchange := testutil.CreateTestExchange(t, db)
		bad := testutil.CreateTestPositionWithISIN(t, db, exchange.Symbol, "US03783310051")

		report, err := NewManagerFromDB(db).Audit(context.Background())
		testutil.AssertNoError(t, err)

		if report.Clean() {
			t.Fatal("expected violations")
		}
		// The row fails both as a table row and once materialized.
		if len(report.Rows) != 2 {
			t.Fatalf("expected 2 violations, got %+v", report.Rows)
		}
		for _, row := range report.Rows {
			if row.Table != "stock_positions" || row.Key != itoa(bad.ID) {
				t.Errorf("unexpected row %+v", row)
			}
			if len(row.Issues) != 1 || row.Issues[0].Path != "isin" {
				t.Errorf("expected an isin issue, got %+v", row.Issues)
			}
		}
	})

	t.Run("reports positions on unknown exchanges", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		testutil.CreateTestPosition(t, db, "NOPE")

		report, err := NewManagerFromDB(db).Audit(context.Background())
		testutil.AssertNoError(t, err)

		if len(report.Rows) != 1 || report.Rows[0].Issues[0].Code != schema.CodeExists {
			t.Errorf("expected a missing exchange issue, got %+v", report.Rows)
		}
	})
}

func TestManager_MigrationsUnavailable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	m := NewManagerFromDB(db)
	if err := m.Up(); !errors.Is(err, ErrNoMigrations) {
		t.Errorf("expected ErrNoMigrations, got %v", err)
	}
	if err := m.Down(1); !errors.Is(err, ErrNoMigrations) {
		t.Errorf("expected ErrNoMigrations, got %v", err)
	}
	if _, _, err := m.Version(); !errors.Is(err, ErrNoMigrations) {
		t.Errorf("expected ErrNoMigrations, got %v", err)
	}
	if err := m.Down(0); err == nil {
		t.Error("expected an invalid step count to be rejected")
	}
}

func TestConfig_URLs(t *testing.T) {
	cfg := &Config{
		Host: "db", Port: "5432", User: "app", Password: "p@ss word",
		DBName: "stockfolio", SSLMode: "disable",
	}

	if got := cfg.URL(); got != "postgres://app:p%40ss%20word@db:5432/stockfolio?sslmode=disable" {
		t.Errorf("unexpected URL %s", got)
	}
	if got := cfg.SourceURL(); got != "file://migrations" {
		t.Errorf("unexpected source URL %s", got)
	}
	cfg.MigrationsPath = "/srv/migrations"
	if got := cfg.SourceURL(); got != "file:///srv/migrations" {
		t.Errorf("unexpected source URL %s", got)
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
