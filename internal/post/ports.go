package post

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=post

// Repository defines the contract for post data storage.
type Repository interface {
	Create(ctx context.Context, p *Post) error
	GetByID(ctx context.Context, id int64) (Post, error)
	List(ctx context.Context, q Query) ([]Post, int, error)
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id int64) error
}
