package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/inkwell/internal/domain"
)

// BlogRepository implements domain.BlogRepository using SQLite.
type BlogRepository struct {
	db *sql.DB
}

// NewBlogRepository creates a new SQLite-backed BlogRepository.
func NewBlogRepository(db *DB) *BlogRepository {
	return &BlogRepository{db: db.SqlDB}
}

const blogColumns = "id, user_id, title, body, cover_image_url, created_at"

func (r *BlogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO blogs (user_id, title, body, cover_image_url, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		blog.UserID, blog.Title, blog.Body, blog.CoverImageURL, now,
	)
	if err != nil {
		return fmt.Errorf("insert blog: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	blog.ID = id
	blog.CreatedAt = now
	return nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id int64) (*domain.Blog, error) {
	b := &domain.Blog{}
	err := r.db.QueryRowContext(ctx,
		"SELECT "+blogColumns+" FROM blogs WHERE id = ?", id,
	).Scan(&b.ID, &b.UserID, &b.Title, &b.Body, &b.CoverImageURL, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query blog by id: %w", err)
	}

	creator, err := scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = ?", b.UserID))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("resolve blog creator: %w", err)
		}
	} else {
		b.CreatedBy = creator
	}
	return b, nil
}

func (r *BlogRepository) List(ctx context.Context) ([]domain.Blog, error) {
	return r.listWhere(ctx, "", nil)
}

func (r *BlogRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Blog, error) {
	return r.listWhere(ctx, "WHERE user_id = ?", []any{userID})
}

func (r *BlogRepository) listWhere(ctx context.Context, where string, args []any) ([]domain.Blog, error) {
	// id DESC breaks ties between rows created in the same instant.
	query := "SELECT " + blogColumns + " FROM blogs " + where + " ORDER BY created_at DESC, id DESC"
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()

	var blogs []domain.Blog
	for rows.Next() {
		var b domain.Blog
		if err := rows.Scan(&b.ID, &b.UserID, &b.Title, &b.Body, &b.CoverImageURL, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan blog: %w", err)
		}
		blogs = append(blogs, b)
	}
	return blogs, rows.Err()
}

// Delete removes the blog and all comments referencing it in one transaction.
func (r *BlogRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, "DELETE FROM blogs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM comments WHERE blog_id = ?", id); err != nil {
		return fmt.Errorf("delete blog comments: %w", err)
	}

	return tx.Commit()
}

func (r *BlogRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM blogs")
	if err != nil {
		return 0, fmt.Errorf("delete all blogs: %w", err)
	}
	return result.RowsAffected()
}
