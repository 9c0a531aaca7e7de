package post

import (
	"time"

	"github.com/google/uuid"
)

// Status is the post lifecycle state. Exactly two values exist:
// drafts are excluded from public listings, published posts are live.
type Status string

const (
	StatusPublished Status = "published"
	StatusDraft     Status = "draft"
)

func (s Status) IsValid() bool {
	return s == StatusPublished || s == StatusDraft
}

// Validation constants for editor input
const (
	MinTitleLength   = 5
	MinContentLength = 50
	MinExcerptLength = 10
)

// FeaturedLimit caps the promotional listing on the landing page.
const FeaturedLimit = 3

// Post is the blog article managed by the admin surface.
// This is the domain model, independent of database/API concerns.
type Post struct {
	// Identity - assigned once by the database, never by the client
	ID uuid.UUID `json:"id" db:"id"`

	// Editorial content
	Title   string `json:"title" db:"title"`
	Content string `json:"content" db:"content"`
	Excerpt string `json:"excerpt" db:"excerpt"`
	Author  string `json:"author" db:"author"` // one of the configured author list

	// SEO metadata, all optional
	MetaTitle       *string `json:"meta_title" db:"meta_title"`
	MetaDescription *string `json:"meta_description" db:"meta_description"`
	Tags            *string `json:"tags" db:"tags"` // comma-separated

	// Lifecycle
	Status     Status `json:"status" db:"status"`
	IsFeatured bool   `json:"is_featured" db:"is_featured"`

	// Audit timestamps. CreatedAt is immutable after insert;
	// UpdatedAt is stamped by every update and stays nil on create.
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}

func (p *Post) IsPublished() bool {
	return p.Status == StatusPublished
}

func (p *Post) HasTags() bool {
	return p.Tags != nil && *p.Tags != ""
}

// Stats aggregates post counts for the admin dashboard.
type Stats struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
	Drafts    int64 `json:"drafts"`
	Featured  int64 `json:"featured"`
}
