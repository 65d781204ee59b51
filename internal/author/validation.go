package author

import (
	"context"
	"regexp"

	"blogapi/internal/record"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	FieldName        = "name"
	FieldPhoneNumber = "phone_number"
)

var (
	phoneDigits = regexp.MustCompile(`^[0-9]{10}$`)

	errNameTaken = validation.NewError("validation_name_unique", "Name must be unique.")
)

const phoneMessage = "Phone number must be 10 digits."

func rules(names NameChecker) record.Rules {
	return record.Rules{
		FieldName: {
			validation.Required.Error("Name field is required."),
			validation.WithContext(func(ctx context.Context, value interface{}) error {
				name, _ := value.(string)
				exists, err := names.ExistsByName(ctx, name)
				if err != nil {
					return validation.NewInternalError(err)
				}
				if exists {
					return errNameTaken
				}
				return nil
			}),
		},
		FieldPhoneNumber: {
			validation.Required.Error(phoneMessage),
			validation.RuneLength(10, 10).Error(phoneMessage),
			validation.Match(phoneDigits).Error(phoneMessage),
		},
	}
}

// ValidateName rejects an empty name or one already used by a stored author.
// It reads through names once when the name is non-empty.
func ValidateName(ctx context.Context, names NameChecker, name string) error {
	return rules(names).Check(ctx, FieldName, name)
}

// ValidatePhoneNumber accepts exactly ten ASCII decimal digits. The empty string
// is rejected; an absent phone is modelled as a nil pointer and never validated.
func ValidatePhoneNumber(phone string) error {
	return rules(nil).Check(context.Background(), FieldPhoneNumber, phone)
}

// NameTakenError is the error reported when a name is already in use.
func NameTakenError() *record.ValidationError {
	return &record.ValidationError{Field: FieldName, Message: errNameTaken.Message()}
}
