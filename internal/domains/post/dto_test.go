package post

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var testAuthors = []string{"Ahmed Hassan", "Sophia White", "Omar Farooq"}

func validRequest() SavePostRequest {
	return SavePostRequest{
		Title:   "AC Tips",
		Content: strings.Repeat("a", 60),
		Excerpt: "Short excerpt text",
		Author:  "Ahmed Hassan",
		Status:  StatusDraft,
	}
}

func TestSavePostRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *SavePostRequest)
		wantField string
	}{
		{
			name:   "valid draft",
			mutate: func(r *SavePostRequest) {},
		},
		{
			name: "valid publish",
			mutate: func(r *SavePostRequest) {
				r.Status = StatusPublished
			},
		},
		{
			name: "valid featured published",
			mutate: func(r *SavePostRequest) {
				r.Status = StatusPublished
				r.IsFeatured = true
			},
		},
		{
			name: "title too short",
			mutate: func(r *SavePostRequest) {
				r.Title = "Tip"
			},
			wantField: "title",
		},
		{
			name: "multibyte title below rune minimum",
			mutate: func(r *SavePostRequest) {
				r.Title = "空調修理" // 4 runes, 12 bytes
			},
			wantField: "title",
		},
		{
			name: "multibyte title at rune minimum",
			mutate: func(r *SavePostRequest) {
				r.Title = "エアコン修理"
			},
		},
		{
			name: "title missing",
			mutate: func(r *SavePostRequest) {
				r.Title = ""
			},
			wantField: "title",
		},
		{
			name: "content too short",
			mutate: func(r *SavePostRequest) {
				r.Content = strings.Repeat("a", 49)
			},
			wantField: "content",
		},
		{
			name: "excerpt too short",
			mutate: func(r *SavePostRequest) {
				r.Excerpt = "too short"
			},
			wantField: "excerpt",
		},
		{
			name: "author missing",
			mutate: func(r *SavePostRequest) {
				r.Author = ""
			},
			wantField: "author",
		},
		{
			name: "author not in configured list",
			mutate: func(r *SavePostRequest) {
				r.Author = "Jane Doe"
			},
			wantField: "author",
		},
		{
			name: "unknown status",
			mutate: func(r *SavePostRequest) {
				r.Status = Status("archived")
			},
			wantField: "status",
		},
		{
			name: "draft cannot be featured",
			mutate: func(r *SavePostRequest) {
				r.Status = StatusDraft
				r.IsFeatured = true
			},
			wantField: "is_featured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate(testAuthors)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			verr, ok := err.(validation.Errors)
			require.True(t, ok, "expected validation.Errors, got %T", err)
			assert.Contains(t, verr, tt.wantField)
		})
	}
}

func TestSavePostRequestOptionalFieldsSkipValidation(t *testing.T) {
	req := validRequest()
	empty := ""
	req.MetaTitle = &empty
	req.MetaDescription = nil
	req.Tags = &empty

	assert.NoError(t, req.Validate(testAuthors))
}

func TestToEntityCopiesAllEditorFields(t *testing.T) {
	req := validRequest()
	tags := "ac,maintenance"
	metaTitle := "AC Tips | Happy Brother"
	req.Tags = &tags
	req.MetaTitle = &metaTitle

	entity := req.ToEntity()

	assert.Equal(t, req.Title, entity.Title)
	assert.Equal(t, req.Content, entity.Content)
	assert.Equal(t, req.Excerpt, entity.Excerpt)
	assert.Equal(t, req.Author, entity.Author)
	assert.Equal(t, &tags, entity.Tags)
	assert.Equal(t, &metaTitle, entity.MetaTitle)
	assert.Equal(t, StatusDraft, entity.Status)
	assert.False(t, entity.IsFeatured)
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusPublished.IsValid())
	assert.True(t, StatusDraft.IsValid())
	assert.False(t, Status("archived").IsValid())
	assert.False(t, Status("").IsValid())
}
