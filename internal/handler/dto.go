package handler

import (
	"time"

	"github.com/msomdec/inkwell/internal/domain"
)

// UserDTO is the JSON representation of a user. The password hash and salt
// deliberately have no fields here.
type UserDTO struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	FullName        string `json:"fullName"`
	ProfileImageURL string `json:"profileImageURL"`
	Role            string `json:"role"`
	CreatedAt       string `json:"createdAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:              u.ID,
		Email:           u.Email,
		FullName:        u.FullName,
		ProfileImageURL: u.ProfileImageURL,
		Role:            u.Role,
		CreatedAt:       u.CreatedAt.Format(time.RFC3339),
	}
}

func toUserDTOs(users []domain.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i := range users {
		dtos[i] = toUserDTO(&users[i])
	}
	return dtos
}

// BlogDTO is the JSON representation of a blog. CreatedBy is populated only
// when the creator was resolved (the detail view).
type BlogDTO struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Body          string   `json:"body"`
	CoverImageURL string   `json:"coverImageURL"`
	CreatedByID   int64    `json:"createdById"`
	CreatedBy     *UserDTO `json:"createdBy,omitempty"`
	CreatedAt     string   `json:"createdAt"`
}

func toBlogDTO(b *domain.Blog) BlogDTO {
	dto := BlogDTO{
		ID:            b.ID,
		Title:         b.Title,
		Body:          b.Body,
		CoverImageURL: b.CoverImageURL,
		CreatedByID:   b.UserID,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
	if b.CreatedBy != nil {
		creator := toUserDTO(b.CreatedBy)
		dto.CreatedBy = &creator
	}
	return dto
}

func toBlogDTOs(blogs []domain.Blog) []BlogDTO {
	dtos := make([]BlogDTO, len(blogs))
	for i := range blogs {
		dtos[i] = toBlogDTO(&blogs[i])
	}
	return dtos
}

// CommentDTO is the JSON representation of a comment with its author
// resolved.
type CommentDTO struct {
	ID        int64    `json:"id"`
	BlogID    int64    `json:"blogId"`
	Content   string   `json:"content"`
	CreatedBy *UserDTO `json:"createdBy,omitempty"`
	CreatedAt string   `json:"createdAt"`
}

func toCommentDTO(c *domain.Comment) CommentDTO {
	dto := CommentDTO{
		ID:        c.ID,
		BlogID:    c.BlogID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
	if c.CreatedBy != nil {
		author := toUserDTO(c.CreatedBy)
		dto.CreatedBy = &author
	}
	return dto
}

func toCommentDTOs(comments []domain.Comment) []CommentDTO {
	dtos := make([]CommentDTO, len(comments))
	for i := range comments {
		dtos[i] = toCommentDTO(&comments[i])
	}
	return dtos
}
