package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayouts are tried in order when decoding a Date.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Date is a point in time exchanged as a string. It accepts RFC 3339,
// plain dates (YYYY-MM-DD) and the space separated timestamps Postgres
// emits, and always encodes as RFC 3339.
type Date struct {
	time.Time
}

// NewDate wraps t.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// ParseDate parses s using any of the accepted layouts.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t}, nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q, use RFC3339 or YYYY-MM-DD", s)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.UTC().Format(time.RFC3339Nano))
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// CheckJSON reports whether raw, a value produced by decoding JSON into an
// interface, can be decoded as a Date.
func (Date) CheckJSON(raw any) error {
	s, ok := raw.(string)
	if !ok {
		return fmt.Errorf("expected date string, received %s", jsonKind(raw))
	}
	_, err := ParseDate(s)
	return err
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	case nil:
		d.Time = time.Time{}
		return nil
	}
	return fmt.Errorf("cannot scan %T into Date", src)
}

// GormDataType stores a Date in the dialect's timestamp column type.
func (Date) GormDataType() string {
	return "time"
}

// Amount is a monetary value that may arrive as a JSON number or as a
// numeric string ("12.50"). It is always encoded as a number.
type Amount float64

// ParseAmount parses a numeric string.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: not a number", s)
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("invalid amount %q: out of range", s)
	}
	return Amount(f), nil
}

// Float64 returns the amount as a float64.
func (a Amount) Float64() float64 { return float64(a) }

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*a = Amount(v)
		return nil
	case string:
		parsed, err := ParseAmount(v)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	}
	return fmt.Errorf("expected number or numeric string, received %s", jsonKind(raw))
}

// CheckJSON reports whether raw can be decoded as an Amount.
func (Amount) CheckJSON(raw any) error {
	switch v := raw.(type) {
	case float64:
		return nil
	case json.Number:
		_, err := ParseAmount(v.String())
		return err
	case string:
		_, err := ParseAmount(v)
		return err
	}
	return fmt.Errorf("expected number or numeric string, received %s", jsonKind(raw))
}

// RecordBase holds the columns every record of the user store carries.
type RecordBase struct {
	ID             string `json:"id" validate:"record_id"`
	Created        Date   `json:"created"`
	Updated        Date   `json:"updated"`
	CollectionID   string `json:"collectionId"`
	CollectionName string `json:"collectionName"`
}

func jsonKind(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64, json.Number:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", raw)
}
