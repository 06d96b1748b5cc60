package schema

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Issue codes reported by the structural pass. Constraint failures use the
// validator tag as code (max, currency, url, ...).
const (
	CodeRequired    = "required"
	CodeInvalidType = "invalid_type"
	CodeInvalidJSON = "invalid_json"

	// CodeUnknownSchema is reported for a value addressed to an
	// unregistered shape name.
	CodeUnknownSchema = "unknown_schema"
	// CodeExists is reported for a stored row that references a row which
	// does not exist.
	CodeExists = "exists"
)

// Issue describes one violated constraint.
type Issue struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// String formats the issue as "path: message".
func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// ValidationError is returned when a value does not conform to a shape.
type ValidationError struct {
	Shape  string  `json:"schema"`
	Issues []Issue `json:"issues"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return fmt.Sprintf("%s: %s", e.Shape, strings.Join(parts, "; "))
}

// Has reports whether an issue with the given path and code was recorded.
func (e *ValidationError) Has(path, code string) bool {
	for _, issue := range e.Issues {
		if issue.Path == path && issue.Code == code {
			return true
		}
	}
	return false
}

// constraintMessages override the generic message for a validator tag.
var constraintMessages = map[string]string{
	"currency":     "Currency must be 3 characters long",
	"mimetype":     "Mimetype is too long",
	"filelocation": "Location is too long",
	"isin":         "ISIN must be at most 12 characters",
	"record_id":    "must be a 15 character record id",
	"chart_mark":   "must be one of most_recent, eod, bod",
	"timeframe":    "must be one of 1d, 1m, 3m, 1y, 5y, ytd",
	"url":          "must be a valid URL",
	"email":        "must be a valid email address",
	"uuid":         "must be a valid UUID",
}

func constraintIssue(path string, fe validator.FieldError) Issue {
	issue := Issue{Path: path, Code: fe.Tag(), Param: fe.Param()}
	if msg, ok := constraintMessages[fe.Tag()]; ok {
		issue.Message = msg
		return issue
	}
	switch fe.Tag() {
	case "max":
		issue.Message = fmt.Sprintf("must be at most %s characters", fe.Param())
	case "len":
		issue.Message = fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "disjoint":
		issue.Message = fmt.Sprintf("transaction %s is reported as both deleted and failed", fe.Param())
	default:
		issue.Message = fmt.Sprintf("failed %q constraint", fe.Tag())
	}
	return issue
}
