// file: internals/features/library/dto/book_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "booklend_backend/internals/features/library/model"
)

/* =========================================================
   REQUEST
   ========================================================= */

type BookCreateRequest struct {
	Title       string  `json:"title"       form:"title"       validate:"required,min=1"`
	Author      *string `json:"author,omitempty"      form:"author"      validate:"omitempty"`
	Description *string `json:"description,omitempty" form:"description" validate:"omitempty"`
}

// Full-replace: PUT menimpa keempat field apa adanya, field yang tidak
// dikirim jadi null/false. Itu kontrak caller, bukan partial patch.
type BookUpdateRequest struct {
	Title       string  `json:"title"`
	Author      *string `json:"author"`
	Description *string `json:"description"`
	Available   bool    `json:"available"`
}

/* =========================================================
   RESPONSE (LIST)
   ========================================================= */

// BookListItem: kolom terpilih untuk GET /api/books (bukan full row).
type BookListItem struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Author    *string   `json:"author,omitempty"`
	ImagePath *string   `json:"image_path"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
}

/* =========================================================
   NORMALIZER
   ========================================================= */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func (r *BookCreateRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Author = trimPtr(r.Author)
	r.Description = trimPtr(r.Description)
}

func (r *BookCreateRequest) ToModel() *model.BookModel {
	return &model.BookModel{
		ID:          uuid.New(),
		Title:       r.Title,
		Author:      r.Author,
		Description: r.Description,
		Available:   true,
	}
}
