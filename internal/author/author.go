package author

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when an author is not found.
var ErrNotFound = errors.New("author not found")

// Author represents a blog author.
type Author struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber *string   `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Fields are the initial values of a new author. A nil PhoneNumber leaves the
// phone unset.
type Fields struct {
	Name        string
	PhoneNumber *string
}

// Patch lists the fields to change on an existing author. Nil fields are left
// alone. ClearPhone wins over PhoneNumber.
type Patch struct {
	Name        *string
	PhoneNumber *string
	ClearPhone  bool
}

// Query defines pagination for listing authors.
type Query struct {
	Limit  int
	Offset int
}

// New builds an author from f, validating each field as it is assigned.
func New(ctx context.Context, names NameChecker, f Fields) (*Author, error) {
	a := &Author{}
	if err := a.SetName(ctx, names, f.Name); err != nil {
		return nil, err
	}
	if f.PhoneNumber != nil {
		if err := a.SetPhoneNumber(*f.PhoneNumber); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// SetName validates and assigns the name. Keeping a persisted author's current
// name is not a uniqueness conflict and skips the lookup.
func (a *Author) SetName(ctx context.Context, names NameChecker, name string) error {
	if a.ID != 0 && name == a.Name {
		return nil
	}
	if err := ValidateName(ctx, names, name); err != nil {
		return err
	}
	a.Name = name
	return nil
}

// SetPhoneNumber validates and assigns the phone number.
func (a *Author) SetPhoneNumber(phone string) error {
	if err := ValidatePhoneNumber(phone); err != nil {
		return err
	}
	a.PhoneNumber = &phone
	return nil
}

// ClearPhoneNumber removes the phone number.
func (a *Author) ClearPhoneNumber() {
	a.PhoneNumber = nil
}

func (a Author) String() string {
	return fmt.Sprintf("Author(id=%d, name=%s)", a.ID, a.Name)
}
