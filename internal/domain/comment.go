package domain

import (
	"context"
	"time"
)

// Comment is attached to exactly one blog and one author. The blog reference
// is not validated on insert; see DESIGN.md on orphaned comments.
type Comment struct {
	ID        int64
	BlogID    int64
	UserID    int64
	Content   string
	CreatedAt time.Time
	CreatedBy *User
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	// ListByBlog returns the blog's comments newest first, each with its
	// author resolved.
	ListByBlog(ctx context.Context, blogID int64) ([]Comment, error)
	CountByBlog(ctx context.Context, blogID int64) (int, error)
}
