package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/msomdec/inkwell/internal/domain"
)

// CommentRepository implements domain.CommentRepository using SQLite.
type CommentRepository struct {
	db *sql.DB
}

// NewCommentRepository creates a new SQLite-backed CommentRepository.
func NewCommentRepository(db *DB) *CommentRepository {
	return &CommentRepository{db: db.SqlDB}
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (blog_id, user_id, content, created_at)
		 VALUES (?, ?, ?, ?)`,
		comment.BlogID, comment.UserID, comment.Content, now,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	comment.ID = id
	comment.CreatedAt = now
	return nil
}

func (r *CommentRepository) ListByBlog(ctx context.Context, blogID int64) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.id, c.blog_id, c.user_id, c.content, c.created_at,
		        u.id, u.email, u.full_name, u.profile_image_url, u.password_hash, u.password_salt, u.role, u.created_at, u.updated_at
		 FROM comments c
		 JOIN users u ON u.id = c.user_id
		 WHERE c.blog_id = ?
		 ORDER BY c.created_at DESC, c.id DESC`, blogID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		u := &domain.User{}
		if err := rows.Scan(&c.ID, &c.BlogID, &c.UserID, &c.Content, &c.CreatedAt,
			&u.ID, &u.Email, &u.FullName, &u.ProfileImageURL,
			&u.PasswordHash, &u.PasswordSalt, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		c.CreatedBy = u
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) CountByBlog(ctx context.Context, blogID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM comments WHERE blog_id = ?", blogID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return count, nil
}
