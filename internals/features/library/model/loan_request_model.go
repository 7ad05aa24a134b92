// file: internals/features/library/model/loan_request_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type LoanRequestModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	BookID uuid.UUID `gorm:"type:uuid;not null;index;column:book_id" json:"book_id"`

	// delete buku = cascade delete semua request-nya
	Book *BookModel `gorm:"foreignKey:BookID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	RequesterName *string `gorm:"type:text;column:requester_name" json:"requester_name,omitempty"`
	Message       *string `gorm:"type:text;column:message" json:"message,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;column:created_at" json:"created_at"`
}

func (LoanRequestModel) TableName() string { return "requests" }
