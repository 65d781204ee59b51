package author

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=author

// NameChecker reports whether a stored author already uses a name.
type NameChecker interface {
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// Repository defines the contract for author data storage.
type Repository interface {
	NameChecker
	Create(ctx context.Context, a *Author) error
	GetByID(ctx context.Context, id int64) (Author, error)
	List(ctx context.Context, q Query) ([]Author, int, error)
	Update(ctx context.Context, a *Author) error
	Delete(ctx context.Context, id int64) error
}
