package post

import (
	"context"
)

// Service defines the business logic for the blog content layer.
// The save operations implement the editor semantics: one validation
// path, two actions that force the target status first.
type Service interface {
	// ListAll returns every post, drafts included (admin listing).
	ListAll(ctx context.Context) ([]Post, error)

	// ListPublished returns the public listing.
	ListPublished(ctx context.Context) ([]Post, error)

	// ListFeatured returns at most FeaturedLimit published, featured
	// posts for promotional placement.
	ListFeatured(ctx context.Context) ([]Post, error)

	// GetByID fetches one post by its string id.
	// Errors: ErrInvalidPostID, ErrPostNotFound.
	GetByID(ctx context.Context, id string) (*Post, error)

	// SaveDraft forces status=draft, validates, then creates or
	// updates depending on editorID ("new" or empty means create).
	// Errors: validation.Errors, ErrInvalidPostID, ErrPostNotFound,
	// ErrSaveInProgress.
	SaveDraft(ctx context.Context, editorID string, req *SavePostRequest) (*Post, error)

	// Publish forces status=published and follows the same path as
	// SaveDraft. Exactly one of the two actions runs per submission.
	Publish(ctx context.Context, editorID string, req *SavePostRequest) (*Post, error)

	// Delete removes a post permanently. Absent ids succeed.
	// Errors: ErrInvalidPostID.
	Delete(ctx context.Context, id string) error

	// Stats returns post counts for the admin dashboard.
	Stats(ctx context.Context) (*Stats, error)
}
