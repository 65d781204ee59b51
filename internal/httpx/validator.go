package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const defaultPageSize = 20

// Page is the pagination part of a list query string. Page is capped so that
// Offset stays well inside int range.
type Page struct {
	Page     int `validate:"min=1,max=100000"`
	PageSize int `validate:"min=1,max=100"`
}

// Limit and Offset translate the page into SQL terms.
func (p Page) Limit() int  { return p.PageSize }
func (p Page) Offset() int { return (p.Page - 1) * p.PageSize }

// ParsePage reads page and page_size, defaulting to 1 and 20.
func ParsePage(r *http.Request) (Page, []ErrorDetail) {
	q := r.URL.Query()
	p := Page{Page: 1, PageSize: defaultPageSize}
	var details []ErrorDetail

	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			details = append(details, ErrorDetail{Field: "page", Message: "page must be a number"})
		} else {
			p.Page = n
		}
	}
	if v := q.Get("page_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			details = append(details, ErrorDetail{Field: "page_size", Message: "page_size must be a number"})
		} else {
			p.PageSize = n
		}
	}
	if len(details) > 0 {
		return p, details
	}
	return p, ValidateStruct(p)
}

// ParseID reads a positive integer path parameter.
func ParseID(raw string) (int64, []ErrorDetail) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, []ErrorDetail{{Field: "id", Message: "id must be a number"}}
	}
	if err := validate.Var(id, "gt=0"); err != nil {
		return 0, []ErrorDetail{{Field: "id", Message: "id must be greater than 0"}}
	}
	return id, nil
}

// ValidateStruct checks s against its validate tags.
func ValidateStruct(s any) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []ErrorDetail{{Message: err.Error()}}
	}

	details := make([]ErrorDetail, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := toSnake(fe.Field())
		param := fe.Param()

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s", field, param)
		case "max":
			message = fmt.Sprintf("%s must be at most %s", field, param)
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(param, " ", ", "))
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}
		details = append(details, ErrorDetail{Field: field, Message: message})
	}
	return details
}

func toSnake(s string) string {
	var b strings.Builder
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			c += 'a' - 'A'
		}
		b.WriteRune(c)
	}
	return b.String()
}
