package service_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "booklend_backend/internals/features/library/model"
	service "booklend_backend/internals/features/library/service"
	filestore "booklend_backend/internals/helpers/filestore"
)

// setupDB: sqlite in-memory per test, FK enforcement nyala supaya
// cascade delete books→requests kelakuannya sama dengan Postgres.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.BookModel{}, &model.LoanRequestModel{}))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newBookService(t *testing.T, db *gorm.DB) *service.BookService {
	t.Helper()
	covers, err := filestore.New(t.TempDir(), filestore.PublicPrefix)
	require.NoError(t, err)
	return &service.BookService{DB: db, Covers: covers}
}

func seedBook(t *testing.T, db *gorm.DB, title string, createdAt time.Time) *model.BookModel {
	t.Helper()
	b := &model.BookModel{
		ID:        uuid.New(),
		Title:     title,
		Available: true,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(b).Error)
	return b
}

func seedRequest(t *testing.T, db *gorm.DB, bookID uuid.UUID, createdAt time.Time) *model.LoanRequestModel {
	t.Helper()
	r := &model.LoanRequestModel{
		ID:        uuid.New(),
		BookID:    bookID,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

func countRows(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}

func coverFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("cover", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["cover"][0]
}
