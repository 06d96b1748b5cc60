// Package validator builds the go-playground validator used for every
// record shape and installs it as Gin's binding engine.
package validator

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"stockfolio/internal/models"
)

// EmbeddedName is reported as the namespace segment of embedded structs so
// that callers can drop it from field paths.
const EmbeddedName = "~"

// aliases are length caps shared by several shapes.
var aliases = map[string]string{
	"isin":         "max=12",
	"mimetype":     "max=20",
	"filelocation": "max=100",
	"record_id":    "len=15,alphanum",
}

var (
	engine *validator.Validate
	once   sync.Once
)

// Get returns the shared validator, building it on first use.
func Get() *validator.Validate {
	once.Do(func() {
		engine = New()
	})
	return engine
}

// New builds a validator with all custom tags registered. Field names in
// errors are taken from the json tag.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)

	for alias, tags := range aliases {
		v.RegisterAlias(alias, tags)
	}
	_ = v.RegisterValidation("currency", validateCurrency)
	_ = v.RegisterValidation("chart_mark", validateChartMark)
	_ = v.RegisterValidation("timeframe", validateTimeframe)

	v.RegisterStructValidation(validateDeleteResponse, models.DeleteTransactionResponsePayload{})
	return v
}

// Register installs the shared validator as Gin's binding engine so that
// ShouldBindJSON and friends apply the same rules as the schema registry.
func Register() {
	binding.Validator = &ginValidator{validate: Get()}
}

type ginValidator struct {
	validate *validator.Validate
}

// ValidateStruct implements binding.StructValidator.
func (g *ginValidator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}
	value := reflect.ValueOf(obj)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}
	switch value.Kind() {
	case reflect.Struct:
		return g.validate.Struct(value.Interface())
	case reflect.Slice, reflect.Array:
		for i := 0; i < value.Len(); i++ {
			if err := g.ValidateStruct(value.Index(i).Interface()); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
	}
	return nil
}

// Engine implements binding.StructValidator.
func (g *ginValidator) Engine() any {
	return g.validate
}

func jsonName(field reflect.StructField) string {
	if field.Anonymous {
		return EmbeddedName
	}
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func validateCurrency(fl validator.FieldLevel) bool {
	return utf8.RuneCountInString(fl.Field().String()) == 3
}

func validateChartMark(fl validator.FieldLevel) bool {
	switch models.ChartMark(fl.Field().String()) {
	case models.ChartMarkMostRecent, models.ChartMarkEOD, models.ChartMarkBOD:
		return true
	}
	return false
}

func validateTimeframe(fl validator.FieldLevel) bool {
	switch models.Timeframe(fl.Field().String()) {
	case models.Timeframe1D, models.Timeframe1M, models.Timeframe3M,
		models.Timeframe1Y, models.Timeframe5Y, models.TimeframeYTD:
		return true
	}
	return false
}

// validateDeleteResponse rejects a response that reports an id as both
// deleted and failed.
func validateDeleteResponse(sl validator.StructLevel) {
	resp := sl.Current().Interface().(models.DeleteTransactionResponsePayload)

	deleted := make(map[int64]bool, len(resp.Success))
	for _, tx := range resp.Success {
		deleted[tx.ID] = true
	}
	for i, ref := range resp.Failed {
		if deleted[ref.TransactionID] {
			name := fmt.Sprintf("failed[%d].transactionId", i)
			sl.ReportError(ref.TransactionID, name, name, "disjoint", fmt.Sprint(ref.TransactionID))
		}
	}
}
