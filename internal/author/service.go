package author

import (
	"context"
)

// Service provides author-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new author service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates f and stores the new author.
func (s *Service) Create(ctx context.Context, f Fields) (Author, error) {
	a, err := New(ctx, s.repo, f)
	if err != nil {
		return Author{}, err
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Author{}, err
	}
	return *a, nil
}

// Get returns an author by id.
func (s *Service) Get(ctx context.Context, id int64) (Author, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a page of authors and the total count.
func (s *Service) List(ctx context.Context, q Query) ([]Author, int, error) {
	return s.repo.List(ctx, q)
}

// Update applies p to the stored author. Only the fields present in p are
// validated and written.
func (s *Service) Update(ctx context.Context, id int64, p Patch) (Author, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Author{}, err
	}

	if p.Name != nil {
		if err := a.SetName(ctx, s.repo, *p.Name); err != nil {
			return Author{}, err
		}
	}
	switch {
	case p.ClearPhone:
		a.ClearPhoneNumber()
	case p.PhoneNumber != nil:
		if err := a.SetPhoneNumber(*p.PhoneNumber); err != nil {
			return Author{}, err
		}
	}

	if err := s.repo.Update(ctx, &a); err != nil {
		return Author{}, err
	}
	return a, nil
}

// Delete removes an author.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
