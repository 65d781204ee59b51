package post

import (
	"context"
)

// Service provides post-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new post service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates f and stores the new post.
func (s *Service) Create(ctx context.Context, f Fields) (Post, error) {
	p, err := New(f)
	if err != nil {
		return Post{}, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Post{}, err
	}
	return *p, nil
}

// Get returns a post by id.
func (s *Service) Get(ctx context.Context, id int64) (Post, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a page of posts and the total count.
func (s *Service) List(ctx context.Context, q Query) ([]Post, int, error) {
	return s.repo.List(ctx, q)
}

// Update applies patch to the stored post.
func (s *Service) Update(ctx context.Context, id int64, patch Patch) (Post, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Post{}, err
	}
	if err := p.Apply(patch); err != nil {
		return Post{}, err
	}
	if err := s.repo.Update(ctx, &p); err != nil {
		return Post{}, err
	}
	return p, nil
}

// Delete removes a post.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
