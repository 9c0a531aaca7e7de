package post

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// EditorNewID is the sentinel path id the editor sends when creating a
// post. Anything else is treated as an existing post id (edit mode).
const EditorNewID = "new"

// SavePostRequest carries the editor form fields for both save actions.
// The draft/publish endpoints force Status before validation, so the two
// actions share a single validation and persist path.
type SavePostRequest struct {
	Title           string  `json:"title"`
	Content         string  `json:"content"`
	Excerpt         string  `json:"excerpt"`
	Author          string  `json:"author"`
	MetaTitle       *string `json:"meta_title,omitempty"`
	MetaDescription *string `json:"meta_description,omitempty"`
	Tags            *string `json:"tags,omitempty"`
	Status          Status  `json:"status"`
	IsFeatured      bool    `json:"is_featured"`
}

// Validate enforces the editor field rules before any persistence is
// attempted. Failures stay local; they never reach the repository.
func (r SavePostRequest) Validate(allowedAuthors []string) error {
	authors := make([]interface{}, len(allowedAuthors))
	for i, a := range allowedAuthors {
		authors[i] = a
	}

	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.RuneLength(MinTitleLength, 0).Error("title must be at least 5 characters"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.RuneLength(MinContentLength, 0).Error("content must be at least 50 characters"),
		),
		validation.Field(&r.Excerpt,
			validation.Required.Error("excerpt is required"),
			validation.RuneLength(MinExcerptLength, 0).Error("excerpt must be at least 10 characters"),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.In(authors...).Error("author must be one of the configured authors"),
		),
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In(StatusPublished, StatusDraft).Error("status must be published or draft"),
		),
		// A draft cannot be featured: the promotional listing only
		// shows published posts, so the combination is rejected here.
		validation.Field(&r.IsFeatured,
			validation.When(r.Status == StatusDraft,
				validation.Empty.Error("draft posts cannot be featured"),
			),
		),
	)
}

// ToEntity converts the request to a Post entity for creation.
func (r *SavePostRequest) ToEntity() *Post {
	return &Post{
		Title:           r.Title,
		Content:         r.Content,
		Excerpt:         r.Excerpt,
		Author:          r.Author,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		Tags:            r.Tags,
		Status:          r.Status,
		IsFeatured:      r.IsFeatured,
	}
}

// ApplyToEntity overwrites an existing Post with the editor fields.
// Identity and timestamps are left to the database.
func (r *SavePostRequest) ApplyToEntity(p *Post) {
	p.Title = r.Title
	p.Content = r.Content
	p.Excerpt = r.Excerpt
	p.Author = r.Author
	p.MetaTitle = r.MetaTitle
	p.MetaDescription = r.MetaDescription
	p.Tags = r.Tags
	p.Status = r.Status
	p.IsFeatured = r.IsFeatured
}

// PostResponse is the API shape of a post.
type PostResponse struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	Excerpt         string     `json:"excerpt"`
	Author          string     `json:"author"`
	MetaTitle       *string    `json:"meta_title,omitempty"`
	MetaDescription *string    `json:"meta_description,omitempty"`
	Tags            *string    `json:"tags,omitempty"`
	Status          Status     `json:"status"`
	IsFeatured      bool       `json:"is_featured"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// ToResponse converts a Post entity to its API shape.
func (p Post) ToResponse() *PostResponse {
	return &PostResponse{
		ID:              p.ID,
		Title:           p.Title,
		Content:         p.Content,
		Excerpt:         p.Excerpt,
		Author:          p.Author,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		Tags:            p.Tags,
		Status:          p.Status,
		IsFeatured:      p.IsFeatured,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ToResponseList converts a slice of entities.
func ToResponseList(posts []Post) []PostResponse {
	out := make([]PostResponse, len(posts))
	for i, p := range posts {
		out[i] = *p.ToResponse()
	}
	return out
}
