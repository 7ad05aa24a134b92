// file: internals/features/library/model/book_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type BookModel struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Title string    `gorm:"type:text;not null;column:title" json:"title"`

	Author      *string `gorm:"type:text;column:author" json:"author,omitempty"`
	Description *string `gorm:"type:text;column:description" json:"description,omitempty"`

	// public path di filestore, null kalau buku tanpa cover
	ImagePath *string `gorm:"type:text;column:image_path" json:"image_path"`

	Available bool `gorm:"not null;default:true;column:available" json:"available"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;column:created_at" json:"created_at"`
}

func (BookModel) TableName() string { return "books" }
