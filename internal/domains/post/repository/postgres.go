package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"happybrother-backend/internal/domains/post"
	"happybrother-backend/pkg/cache"
	"happybrother-backend/pkg/logger"
)

// Cache key constants. Each logical query view owns an independent
// entry; invalidation is explicit, never chained implicitly.
const (
	postCacheKeyPrefix    = "post:"
	allListCacheKey       = "posts:list:all"
	publishedListCacheKey = "posts:list:published"
	featuredListCacheKey  = "posts:list:featured"
	cacheTTL              = 15 * time.Minute
)

const postColumns = `
	id, title, content, excerpt, author,
	meta_title, meta_description, tags,
	status, is_featured, created_at, updated_at`

// dbPool is the subset of pgxpool.Pool the repository uses.
type dbPool interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// postgresRepository implements post.Repository with pgx for storage
// and Redis as the read-through query cache.
type postgresRepository struct {
	db    dbPool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache) post.Repository {
	return newRepository(pool, c)
}

func newRepository(db dbPool, c cache.Cache) *postgresRepository {
	return &postgresRepository{
		db:    db,
		cache: c,
	}
}

// retryRead runs a read operation with a retry budget of exactly one:
// a transient failure gets one more attempt before the error surfaces.
// Not-found results and cancelled contexts are not retried.
func retryRead(ctx context.Context, op func() error) error {
	err := op()
	if err == nil || errors.Is(err, post.ErrPostNotFound) || ctx.Err() != nil {
		return err
	}
	return op()
}

func scanPost(row pgx.Row) (*post.Post, error) {
	var p post.Post
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&p.Excerpt,
		&p.Author,
		&p.MetaTitle,
		&p.MetaDescription,
		&p.Tags,
		&p.Status,
		&p.IsFeatured,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) queryList(ctx context.Context, query string, args ...interface{}) ([]post.Post, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]post.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}

	return posts, nil
}

// cachedList serves a list view from the cache and falls back to the
// database on a miss. Cache failures degrade to plain DB reads.
func (r *postgresRepository) cachedList(ctx context.Context, cacheKey, query string, args ...interface{}) ([]post.Post, error) {
	var cached []post.Post
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	} else if err != nil {
		logger.Warn("post list cache read failed", err)
	}

	var posts []post.Post
	err := retryRead(ctx, func() error {
		var qerr error
		posts, qerr = r.queryList(ctx, query, args...)
		return qerr
	})
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, cacheKey, posts, cacheTTL); err != nil {
		logger.Warn("post list cache write failed", err)
	}

	return posts, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]post.Post, error) {
	query := `
        SELECT ` + postColumns + `
        FROM posts
        ORDER BY created_at DESC
    `
	return r.cachedList(ctx, allListCacheKey, query)
}

func (r *postgresRepository) GetPublished(ctx context.Context) ([]post.Post, error) {
	query := `
        SELECT ` + postColumns + `
        FROM posts
        WHERE status = $1
        ORDER BY created_at DESC
    `
	return r.cachedList(ctx, publishedListCacheKey, query, post.StatusPublished)
}

func (r *postgresRepository) GetFeatured(ctx context.Context) ([]post.Post, error) {
	query := `
        SELECT ` + postColumns + `
        FROM posts
        WHERE status = $1 AND is_featured = TRUE
        ORDER BY created_at DESC
        LIMIT $2
    `
	return r.cachedList(ctx, featuredListCacheKey, query, post.StatusPublished, post.FeaturedLimit)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	cacheKey := postCacheKeyPrefix + id.String()

	var cached post.Post
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	} else if err != nil {
		logger.Warn("post cache read failed", err)
	}

	query := `
        SELECT ` + postColumns + `
        FROM posts
        WHERE id = $1
    `

	var p *post.Post
	err := retryRead(ctx, func() error {
		var qerr error
		p, qerr = scanPost(r.db.QueryRow(ctx, query, id))
		if errors.Is(qerr, pgx.ErrNoRows) {
			return post.ErrPostNotFound
		}
		if qerr != nil {
			return fmt.Errorf("failed to get post %s: %w", id, qerr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, cacheKey, p, cacheTTL); err != nil {
		logger.Warn("post cache write failed", err)
	}

	return p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	query := `
        INSERT INTO posts (
            title, content, excerpt, author,
            meta_title, meta_description, tags,
            status, is_featured
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING ` + postColumns + `
    `

	created, err := scanPost(r.db.QueryRow(ctx, query,
		p.Title,
		p.Content,
		p.Excerpt,
		p.Author,
		p.MetaTitle,
		p.MetaDescription,
		p.Tags,
		p.Status,
		p.IsFeatured,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	// A new post can appear in both the admin and the public listing.
	r.invalidateListCaches(ctx)

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, p *post.Post) (*post.Post, error) {
	query := `
        UPDATE posts SET
            title = $2,
            content = $3,
            excerpt = $4,
            author = $5,
            meta_title = $6,
            meta_description = $7,
            tags = $8,
            status = $9,
            is_featured = $10,
            updated_at = NOW()
        WHERE id = $1
        RETURNING ` + postColumns + `
    `

	updated, err := scanPost(r.db.QueryRow(ctx, query,
		id,
		p.Title,
		p.Content,
		p.Excerpt,
		p.Author,
		p.MetaTitle,
		p.MetaDescription,
		p.Tags,
		p.Status,
		p.IsFeatured,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, post.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post %s: %w", id, err)
	}

	// A status flip can move the post between the logical list views,
	// so the list entries go. The single-post entry is refreshed with
	// the new record so a get right after the update stays consistent.
	r.invalidateListCaches(ctx)
	if err := r.cache.Set(ctx, postCacheKeyPrefix+id.String(), updated, cacheTTL); err != nil {
		logger.Warn("post cache refresh failed", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM posts WHERE id = $1`

	// Zero rows affected is fine: deleting an absent id stays a
	// successful no-op so retries are idempotent.
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete post %s: %w", id, err)
	}

	r.invalidateListCaches(ctx)
	if err := r.cache.Delete(ctx, postCacheKeyPrefix+id.String()); err != nil {
		logger.Warn("post cache invalidation failed", err)
	}

	return nil
}

func (r *postgresRepository) CountByStatus(ctx context.Context) (*post.Stats, error) {
	query := `
        SELECT
            COUNT(*),
            COUNT(*) FILTER (WHERE status = $1),
            COUNT(*) FILTER (WHERE status = $2),
            COUNT(*) FILTER (WHERE status = $1 AND is_featured = TRUE)
        FROM posts
    `

	var stats post.Stats
	err := retryRead(ctx, func() error {
		return r.db.QueryRow(ctx, query, post.StatusPublished, post.StatusDraft).Scan(
			&stats.Total,
			&stats.Published,
			&stats.Drafts,
			&stats.Featured,
		)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	return &stats, nil
}

// invalidateListCaches drops every list view entry after a mutation.
// A status or featured flip can move a post between any of them.
func (r *postgresRepository) invalidateListCaches(ctx context.Context) {
	if err := r.cache.Delete(ctx, allListCacheKey, publishedListCacheKey, featuredListCacheKey); err != nil {
		logger.Warn("post list cache invalidation failed", err)
	}
}
