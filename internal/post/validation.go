package post

import (
	"context"
	"strings"

	"blogapi/internal/record"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldSummary  = "summary"
	FieldCategory = "category"
)

const (
	CategoryFiction    = "Fiction"
	CategoryNonFiction = "Non-Fiction"

	minContentLength = 250
	maxSummaryLength = 250
)

// ClickbaitPhrases are the substrings a title must contain at least one of.
var ClickbaitPhrases = []string{"Won't Believe", "Secret", "Top", "Guess"}

var errNoClickbait = validation.NewError("validation_no_clickbait", "No clickbait found.")

const contentMessage = "Post content must be greater than or equal to 250 characters long."

var rules = record.Rules{
	FieldTitle: {
		validation.Required.Error("Title field is required."),
		validation.By(func(value interface{}) error {
			title, _ := value.(string)
			for _, phrase := range ClickbaitPhrases {
				if strings.Contains(title, phrase) {
					return nil
				}
			}
			return errNoClickbait
		}),
	},
	FieldContent: {
		validation.Required.Error(contentMessage),
		validation.RuneLength(minContentLength, 0).Error(contentMessage),
	},
	FieldSummary: {
		validation.RuneLength(0, maxSummaryLength).Error("Post summary must be less than or equal to 250 characters long."),
	},
	FieldCategory: {
		validation.Required.Error("Category must be Fiction or Non-Fiction."),
		validation.In(CategoryFiction, CategoryNonFiction).Error("Category must be Fiction or Non-Fiction."),
	},
}

// ValidateTitle requires a non-empty title containing a clickbait phrase.
func ValidateTitle(title string) error {
	return rules.Check(context.Background(), FieldTitle, title)
}

// ValidateLength applies the length bound of field: content needs at least 250
// characters, summary allows at most 250. Other fields have no bound.
func ValidateLength(field, value string) error {
	switch field {
	case FieldContent, FieldSummary:
		return rules.Check(context.Background(), field, value)
	}
	return nil
}

// ValidateCategory accepts exactly "Fiction" or "Non-Fiction".
func ValidateCategory(category string) error {
	return rules.Check(context.Background(), FieldCategory, category)
}
