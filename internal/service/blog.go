package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/inkwell/internal/domain"
)

// BlogService orchestrates blog and comment operations.
type BlogService struct {
	blogs    domain.BlogRepository
	comments domain.CommentRepository
	users    domain.UserRepository
}

// NewBlogService creates a new BlogService.
func NewBlogService(blogs domain.BlogRepository, comments domain.CommentRepository, users domain.UserRepository) *BlogService {
	return &BlogService{blogs: blogs, comments: comments, users: users}
}

// Create validates and persists a new blog owned by userID.
func (s *BlogService) Create(ctx context.Context, userID int64, title, body, coverImageURL string) (*domain.Blog, error) {
	if title == "" || body == "" {
		return nil, fmt.Errorf("%w: title and body are required", domain.ErrInvalidInput)
	}

	blog := &domain.Blog{
		UserID:        userID,
		Title:         title,
		Body:          body,
		CoverImageURL: coverImageURL,
	}

	if err := s.blogs.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}

	return blog, nil
}

// List returns all blogs, newest first.
func (s *BlogService) List(ctx context.Context) ([]domain.Blog, error) {
	return s.blogs.List(ctx)
}

// ListByUser returns the given user's blogs, newest first.
func (s *BlogService) ListByUser(ctx context.Context, userID int64) ([]domain.Blog, error) {
	return s.blogs.ListByUser(ctx, userID)
}

// Get returns the blog with its creator resolved plus its comments newest
// first, each comment carrying its resolved author.
func (s *BlogService) Get(ctx context.Context, id int64) (*domain.Blog, []domain.Comment, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	comments, err := s.comments.ListByBlog(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list comments: %w", err)
	}

	return blog, comments, nil
}

// Delete removes the blog and cascades to its comments. There is no
// ownership check here; the route is open by observed design (see DESIGN.md).
func (s *BlogService) Delete(ctx context.Context, id int64) error {
	return s.blogs.Delete(ctx, id)
}

// DeleteAll wipes the blog collection. Administrative escape hatch.
func (s *BlogService) DeleteAll(ctx context.Context) (int64, error) {
	return s.blogs.DeleteAll(ctx)
}

// AddComment attaches a comment by userID to the given blog id and returns
// it with the author resolved. The blog id is taken as given; a comment on a
// nonexistent blog is stored anyway.
func (s *BlogService) AddComment(ctx context.Context, userID, blogID int64, content string) (*domain.Comment, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: comment text cannot be empty", domain.ErrInvalidInput)
	}

	comment := &domain.Comment{
		BlogID:  blogID,
		UserID:  userID,
		Content: content,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	author, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("resolve comment author: %w", err)
		}
	} else {
		comment.CreatedBy = author
	}

	return comment, nil
}
