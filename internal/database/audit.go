package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"stockfolio/internal/logger"
	"stockfolio/internal/models"
	"stockfolio/internal/schema"
)

const auditBatchSize = 500

// RowIssue lists the violations found in one stored row.
type RowIssue struct {
	Table  string         `json:"table"`
	Key    string         `json:"key"`
	Schema string         `json:"schema"`
	Issues []schema.Issue `json:"issues"`
}

// AuditReport is the outcome of Audit.
type AuditReport struct {
	Checked map[string]int `json:"checked"`
	Rows    []RowIssue     `json:"rows"`
}

// Clean reports whether no stored row violated its shape.
func (r *AuditReport) Clean() bool {
	return len(r.Rows) == 0
}

// Audit loads every stored exchange and position and validates it against
// its row shape. Positions are additionally materialized with their
// exchange and validated as MaterializedStockPositionTable.
func (m *Manager) Audit(ctx context.Context) (*AuditReport, error) {
	report := &AuditReport{Checked: map[string]int{}}
	db := m.db.WithContext(ctx)

	exchanges := map[string]models.StockExchangeTable{}
	var exchangeBatch []models.StockExchangeTable
	result := db.FindInBatches(&exchangeBatch, auditBatchSize, func(_ *gorm.DB, _ int) error {
		for _, row := range exchangeBatch {
			exchanges[row.Symbol] = row
			report.Checked[row.TableName()]++
			if err := report.check(row.TableName(), row.Symbol, schema.StockExchangeTable, row); err != nil {
				return err
			}
		}
		return nil
	})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to audit stock exchanges: %w", result.Error)
	}

	var positionBatch []models.StockPositionTable
	result = db.FindInBatches(&positionBatch, auditBatchSize, func(_ *gorm.DB, _ int) error {
		for _, row := range positionBatch {
			key := strconv.FormatInt(row.ID, 10)
			report.Checked[row.TableName()]++
			if err := report.check(row.TableName(), key, schema.StockPositionTable, row); err != nil {
				return err
			}

			exchange, ok := exchanges[row.Exchange]
			if !ok {
				report.Rows = append(report.Rows, RowIssue{
					Table:  row.TableName(),
					Key:    key,
					Schema: schema.MaterializedStockPositionTable.Name(),
					Issues: []schema.Issue{{
						Path:    "exchange",
						Code:    schema.CodeExists,
						Message: fmt.Sprintf("exchange %q does not exist", row.Exchange),
					}},
				})
				continue
			}
			if err := report.check(row.TableName(), key, schema.MaterializedStockPositionTable, row.Materialize(exchange)); err != nil {
				return err
			}
		}
		return nil
	})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to audit stock positions: %w", result.Error)
	}

	logger.Get().Infow("audit completed",
		"checked", report.Checked,
		"violations", len(report.Rows),
	)
	return report, nil
}

func (r *AuditReport) check(table, key string, shape schema.Schema, row any) error {
	data, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to encode %s row %s: %w", table, key, err)
	}
	_, err = shape.Check(data)
	var verr *schema.ValidationError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &verr):
		r.Rows = append(r.Rows, RowIssue{Table: table, Key: key, Schema: shape.Name(), Issues: verr.Issues})
		return nil
	default:
		return err
	}
}
