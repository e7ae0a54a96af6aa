package domain

import (
	"context"
	"time"
)

// Blog is a published post. CreatedBy is populated only when the repository
// is asked to resolve the creator, e.g. on the detail view.
type Blog struct {
	ID            int64
	UserID        int64
	Title         string
	Body          string
	CoverImageURL string
	CreatedAt     time.Time
	CreatedBy     *User
}

// BlogRepository defines persistence operations for blogs.
type BlogRepository interface {
	Create(ctx context.Context, blog *Blog) error
	// GetByID returns the blog with its creator resolved.
	GetByID(ctx context.Context, id int64) (*Blog, error)
	// List returns all blogs, newest first.
	List(ctx context.Context) ([]Blog, error)
	// ListByUser returns the given user's blogs, newest first.
	ListByUser(ctx context.Context, userID int64) ([]Blog, error)
	// Delete removes the blog and every comment attached to it.
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
}
