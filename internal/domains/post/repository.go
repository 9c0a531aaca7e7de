package post

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for the posts collection.
// The implementation owns the read-through cache and its invalidation;
// callers see plain CRUD.
type Repository interface {
	// GetAll returns every post, newest first.
	GetAll(ctx context.Context) ([]Post, error)

	// GetPublished returns published posts, newest first.
	GetPublished(ctx context.Context) ([]Post, error)

	// GetFeatured returns published, featured posts, newest first,
	// capped at FeaturedLimit.
	GetFeatured(ctx context.Context) ([]Post, error)

	// GetByID returns exactly one post.
	// Errors: ErrPostNotFound when the id does not resolve.
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)

	// Create inserts a new post. The database assigns id and
	// created_at; updated_at stays null until the first update.
	Create(ctx context.Context, p *Post) (*Post, error)

	// Update overwrites the editable fields and stamps updated_at.
	// Errors: ErrPostNotFound when the id does not exist.
	Update(ctx context.Context, id uuid.UUID, p *Post) (*Post, error)

	// Delete permanently removes a post. Deleting an absent id is a
	// successful no-op so retries stay idempotent.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByStatus aggregates totals for the dashboard.
	CountByStatus(ctx context.Context) (*Stats, error)
}
