// file: internals/features/library/service/book_service.go
package service

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/google/uuid"

	"gorm.io/gorm"

	dto "booklend_backend/internals/features/library/dto"
	model "booklend_backend/internals/features/library/model"
	filestore "booklend_backend/internals/helpers/filestore"
)

// BookService: CRUD buku + koordinasi cover file dengan metadata.
// DB dan Covers di-inject dari luar (testing pakai sqlite + temp dir).
type BookService struct {
	DB     *gorm.DB
	Covers *filestore.Store
}

// Create menyimpan buku baru. Cover (opsional) ditulis dulu ke filestore;
// kalau insert row gagal, file yang barusan ditulis dihapus lagi supaya
// maksimal satu file tertulis per create yang sukses.
func (s *BookService) Create(ctx context.Context, req *dto.BookCreateRequest, cover *multipart.FileHeader) (*model.BookModel, error) {
	req.Normalize()
	if req.Title == "" {
		return nil, ErrTitleRequired
	}

	ent := req.ToModel()
	if cover != nil {
		publicPath, err := s.Covers.Save(cover)
		if err != nil {
			return nil, err
		}
		ent.ImagePath = &publicPath
	}

	if err := s.DB.WithContext(ctx).Create(ent).Error; err != nil {
		if ent.ImagePath != nil {
			s.Covers.Remove(*ent.ImagePath)
		}
		return nil, err
	}
	return ent, nil
}

// List: kolom terpilih, terbaru dulu. Tanpa pagination.
func (s *BookService) List(ctx context.Context) ([]dto.BookListItem, error) {
	items := make([]dto.BookListItem, 0)
	err := s.DB.WithContext(ctx).
		Model(&model.BookModel{}).
		Select("id, title, author, image_path, available, created_at").
		Order("created_at DESC").
		Scan(&items).Error
	return items, err
}

func (s *BookService) Get(ctx context.Context, id uuid.UUID) (*model.BookModel, error) {
	var ent model.BookModel
	err := s.DB.WithContext(ctx).First(&ent, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ent, nil
}

// Update menimpa title/author/description/available tanpa syarat
// (full replace). image_path tidak disentuh. Id yang tidak ada bukan error.
func (s *BookService) Update(ctx context.Context, id uuid.UUID, req *dto.BookUpdateRequest) error {
	return s.DB.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":       req.Title,
			"author":      req.Author,
			"description": req.Description,
			"available":   req.Available,
		}).Error
}

// Delete menghapus row buku (request ikut terhapus via FK cascade) lalu
// hapus cover-nya best-effort. Row yang tidak ada juga dianggap sukses.
func (s *BookService) Delete(ctx context.Context, id uuid.UUID) error {
	var ent model.BookModel
	err := s.DB.WithContext(ctx).Select("id", "image_path").First(&ent, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.DB.WithContext(ctx).Delete(&model.BookModel{}, "id = ?", id).Error; err != nil {
		return err
	}

	if ent.ImagePath != nil {
		s.Covers.Remove(*ent.ImagePath)
	}
	return nil
}
