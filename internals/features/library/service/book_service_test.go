package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "booklend_backend/internals/features/library/dto"
	model "booklend_backend/internals/features/library/model"
	service "booklend_backend/internals/features/library/service"
)

func Test_BookService_Create_RequiresTitle(t *testing.T) {
	db := setupDB(t)
	svc := newBookService(t, db)

	tests := []struct {
		name  string
		title string
	}{
		{name: "empty_title", title: ""},
		{name: "whitespace_only_title", title: "   "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &dto.BookCreateRequest{Title: tc.title}, nil)
			require.ErrorIs(t, err, service.ErrTitleRequired)
			assert.Equal(t, int64(0), countRows(t, db, &model.BookModel{}))
		})
	}
}

func Test_BookService_Create_GeneratesIDAndDefaults(t *testing.T) {
	db := setupDB(t)
	svc := newBookService(t, db)

	ent, err := svc.Create(context.Background(), &dto.BookCreateRequest{Title: "Dune"}, nil)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, ent.ID)
	assert.Equal(t, "Dune", ent.Title)
	assert.Nil(t, ent.Author)
	assert.Nil(t, ent.Description)
	assert.Nil(t, ent.ImagePath)
	assert.True(t, ent.Available)
	assert.False(t, ent.CreatedAt.IsZero())

	var row model.BookModel
	require.NoError(t, db.First(&row, "id = ?", ent.ID).Error)
	assert.True(t, row.Available)
}

func Test_BookService_Create_WithCover(t *testing.T) {
	db := setupDB(t)
	svc := newBookService(t, db)

	content := []byte("fake-jpeg-bytes")
	ent, err := svc.Create(context.Background(),
		&dto.BookCreateRequest{Title: "Dune"},
		coverFileHeader(t, "dune.jpg", content),
	)
	require.NoError(t, err)
	require.NotNil(t, ent.ImagePath)

	// image_path harus resolve ke file beneran di filestore
	onDisk := filepath.Join(svc.Covers.Dir(), filepath.Base(*ent.ImagePath))
	got, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func Test_BookService_List_NewestFirst(t *testing.T) {
	db := setupDB(t)
	svc := newBookService(t, db)

	base := time.Now().Add(-time.Hour)
	seedBook(t, db, "first", base)
	seedBook(t, db, "second", base.Add(time.Minute))
	seedBook(t, db, "third", base.Add(2*time.Minute))

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "third", items[0].Title)
	assert.Equal(t, "second", items[1].Title)
	assert.Equal(t, "first", items[2].Title)
}

func Test_BookService_Get(t *testing.T) {
	db := setupDB(t)
	svc := newBookService(t, db)

	seeded := seedBook(t, db, "Dune", time.Now())

	got, err := svc.Get(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, got.ID)
	assert.Equal(t, "Dune", got.Title)

	_, err = svc.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, service.ErrBookNotFound)
}

func Test_BookService_Update_FullReplace(t *testing.T) {
	db := setupDB(t)
	svc := newBookService(t, db)

	author := "Frank Herbert"
	desc := "sand"
	imagePath := "/uploads/keep-me.jpg"
	seeded := seedBook(t, db, "Dune", time.Now())
	require.NoError(t, db.Model(seeded).Updates(map[string]interface{}{
		"author":      author,
		"description": desc,
		"image_path":  imagePath,
	}).Error)

	// update tanpa author/description → keduanya ditulis NULL (full replace)
	err := svc.Update(context.Background(), seeded.ID, &dto.BookUpdateRequest{
		Title:     "Dune Messiah",
		Available: false,
	})
	require.NoError(t, err)

	var row model.BookModel
	require.NoError(t, db.First(&row, "id = ?", seeded.ID).Error)
	assert.Equal(t, "Dune Messiah", row.Title)
	assert.Nil(t, row.Author)
	assert.Nil(t, row.Description)
	assert.False(t, row.Available)
	// image_path tidak boleh ikut tersentuh
	require.NotNil(t, row.ImagePath)
	assert.Equal(t, imagePath, *row.ImagePath)
}

func Test_BookService_Update_MissingID_NoError(t *testing.T) {
	db := setupDB(t)
	svc := newBookService(t, db)

	err := svc.Update(context.Background(), uuid.New(), &dto.BookUpdateRequest{Title: "ghost"})
	assert.NoError(t, err)
}

func Test_BookService_Delete_CascadesAndRemovesCover(t *testing.T) {
	db := setupDB(t)
	svc := newBookService(t, db)

	ent, err := svc.Create(context.Background(),
		&dto.BookCreateRequest{Title: "Dune"},
		coverFileHeader(t, "dune.png", []byte("png")),
	)
	require.NoError(t, err)
	require.NotNil(t, ent.ImagePath)
	onDisk := filepath.Join(svc.Covers.Dir(), filepath.Base(*ent.ImagePath))

	seedRequest(t, db, ent.ID, time.Now())
	seedRequest(t, db, ent.ID, time.Now())
	require.Equal(t, int64(2), countRows(t, db, &model.LoanRequestModel{}))

	require.NoError(t, svc.Delete(context.Background(), ent.ID))

	assert.Equal(t, int64(0), countRows(t, db, &model.BookModel{}))
	assert.Equal(t, int64(0), countRows(t, db, &model.LoanRequestModel{}))
	_, statErr := os.Stat(onDisk)
	assert.True(t, os.IsNotExist(statErr))
}

func Test_BookService_Delete_MissingID_NoError(t *testing.T) {
	db := setupDB(t)
	svc := newBookService(t, db)

	assert.NoError(t, svc.Delete(context.Background(), uuid.New()))
}
