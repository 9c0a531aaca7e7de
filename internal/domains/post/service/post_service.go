package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"happybrother-backend/internal/domains/post"
)

// postService implements post.Service.
type postService struct {
	repo    post.Repository
	authors []string

	// One in-flight save per post identity: a second submit while one
	// is pending fails fast instead of racing last-write-wins.
	mu     sync.Mutex
	saving map[string]struct{}
}

func NewPostService(repo post.Repository, authors []string) post.Service {
	return &postService{
		repo:    repo,
		authors: authors,
		saving:  make(map[string]struct{}),
	}
}

func (s *postService) ListAll(ctx context.Context) ([]post.Post, error) {
	return s.repo.GetAll(ctx)
}

func (s *postService) ListPublished(ctx context.Context) ([]post.Post, error) {
	return s.repo.GetPublished(ctx)
}

func (s *postService) ListFeatured(ctx context.Context) ([]post.Post, error) {
	return s.repo.GetFeatured(ctx)
}

func (s *postService) GetByID(ctx context.Context, id string) (*post.Post, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, post.ErrInvalidPostID
	}

	return s.repo.GetByID(ctx, postID)
}

// SaveDraft forces draft status and runs the shared save path.
func (s *postService) SaveDraft(ctx context.Context, editorID string, req *post.SavePostRequest) (*post.Post, error) {
	req.Status = post.StatusDraft
	return s.save(ctx, editorID, req)
}

// Publish forces published status and runs the shared save path.
func (s *postService) Publish(ctx context.Context, editorID string, req *post.SavePostRequest) (*post.Post, error) {
	req.Status = post.StatusPublished
	return s.save(ctx, editorID, req)
}

// isCreateMode reports whether the editor id designates a new post.
// The editor sends the literal "new" for the create screen; an absent
// id means the same thing.
func isCreateMode(editorID string) bool {
	return editorID == "" || editorID == post.EditorNewID
}

// save is the single validation and persist path both actions share.
// Create mode inserts without any prior fetch; edit mode issues exactly
// one fetch to confirm the record before the update.
func (s *postService) save(ctx context.Context, editorID string, req *post.SavePostRequest) (*post.Post, error) {
	guardKey := editorID
	if guardKey == "" {
		guardKey = post.EditorNewID
	}

	if err := s.acquireSave(guardKey); err != nil {
		return nil, err
	}
	defer s.releaseSave(guardKey)

	if err := req.Validate(s.authors); err != nil {
		return nil, err
	}

	if isCreateMode(editorID) {
		created, err := s.repo.Create(ctx, req.ToEntity())
		if err != nil {
			return nil, fmt.Errorf("failed to create post: %w", err)
		}
		return created, nil
	}

	postID, err := uuid.Parse(editorID)
	if err != nil {
		return nil, post.ErrInvalidPostID
	}

	current, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(current)

	updated, err := s.repo.Update(ctx, postID, current)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *postService) Delete(ctx context.Context, id string) error {
	postID, err := uuid.Parse(id)
	if err != nil {
		return post.ErrInvalidPostID
	}

	return s.repo.Delete(ctx, postID)
}

func (s *postService) Stats(ctx context.Context) (*post.Stats, error) {
	return s.repo.CountByStatus(ctx)
}

func (s *postService) acquireSave(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.saving[key]; busy {
		return post.ErrSaveInProgress
	}
	s.saving[key] = struct{}{}
	return nil
}

func (s *postService) releaseSave(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.saving, key)
}
