// file: internals/features/library/dto/loan_request_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "booklend_backend/internals/features/library/model"
)

/* =========================================================
   REQUEST
   ========================================================= */

type LoanRequestCreateRequest struct {
	RequesterName *string `json:"requester_name,omitempty" validate:"omitempty"`
	Message       *string `json:"message,omitempty"        validate:"omitempty"`
}

type RespondRequest struct {
	Accept bool `json:"accept"`
}

/* =========================================================
   RESPONSE (LIST)
   ========================================================= */

// LoanRequestListItem: row request + judul buku (LEFT JOIN, title bisa null
// kalau bukunya sudah tidak ada).
type LoanRequestListItem struct {
	ID            uuid.UUID `json:"id"`
	BookID        uuid.UUID `json:"book_id"`
	RequesterName *string   `json:"requester_name,omitempty"`
	Message       *string   `json:"message,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Title         *string   `json:"title"`
}

/* =========================================================
   NORMALIZER
   ========================================================= */

func (r *LoanRequestCreateRequest) Normalize() {
	r.RequesterName = trimPtr(r.RequesterName)
	r.Message = trimPtr(r.Message)
}

func (r *LoanRequestCreateRequest) ToModel(bookID uuid.UUID) *model.LoanRequestModel {
	return &model.LoanRequestModel{
		ID:            uuid.New(),
		BookID:        bookID,
		RequesterName: r.RequesterName,
		Message:       r.Message,
	}
}
