// file: internals/features/library/service/loan_request_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "booklend_backend/internals/features/library/dto"
	model "booklend_backend/internals/features/library/model"
)

type LoanRequestService struct {
	DB *gorm.DB
}

// Create menolak request untuk buku yang tidak ada. Buku yang available=false
// tetap boleh di-request; pending request boleh dobel per buku.
func (s *LoanRequestService) Create(ctx context.Context, bookID uuid.UUID, req *dto.LoanRequestCreateRequest) (*model.LoanRequestModel, error) {
	req.Normalize()

	var book model.BookModel
	err := s.DB.WithContext(ctx).Select("id").First(&book, "id = ?", bookID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}

	ent := req.ToModel(bookID)
	if err := s.DB.WithContext(ctx).Create(ent).Error; err != nil {
		return nil, err
	}
	return ent, nil
}

// List: request + judul buku, terbaru dulu. LEFT JOIN: request yang bukunya
// sudah hilang tetap muncul dengan title null.
func (s *LoanRequestService) List(ctx context.Context) ([]dto.LoanRequestListItem, error) {
	items := make([]dto.LoanRequestListItem, 0)
	err := s.DB.WithContext(ctx).
		Table("requests").
		Select("requests.id, requests.book_id, requests.requester_name, requests.message, requests.created_at, books.title").
		Joins("LEFT JOIN books ON books.id = requests.book_id").
		Order("requests.created_at DESC").
		Scan(&items).Error
	return items, err
}

// Respond: terima atau tolak, dua-duanya menghapus request-nya. Flip
// available dan delete jalan dalam satu transaksi; crash di tengah tidak
// boleh menghasilkan flip tanpa delete atau sebaliknya.
func (s *LoanRequestService) Respond(ctx context.Context, id uuid.UUID, accept bool) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reqRow model.LoanRequestModel
		err := tx.First(&reqRow, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequestNotFound
		}
		if err != nil {
			return err
		}

		if accept {
			// unconditional: sudah false ya ditulis false lagi
			if err := tx.Model(&model.BookModel{}).
				Where("id = ?", reqRow.BookID).
				Update("available", false).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&model.LoanRequestModel{}, "id = ?", id).Error
	})
}
