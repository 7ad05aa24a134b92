// file: internals/helpers/filestore/filestore.go
package filestore

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"

	"github.com/google/uuid"
)

const (
	// MaxCoverBytes = 10 MiB, batas upload cover.
	MaxCoverBytes = 10 << 20

	// PublicPrefix adalah prefix URL publik untuk cover (nilai image_path di DB).
	PublicPrefix = "/uploads"
)

var ErrCoverTooLarge = errors.New("cover image too large")

// hanya huruf/angka/titik/dash/underscore yang boleh masuk ke nama file
var extRe = regexp.MustCompile(`^\.[a-zA-Z0-9]+$`)

// Store menyimpan cover image di satu folder lokal. Baris DB adalah source
// of truth; operasi filesystem di sini best-effort, bukan transaksional.
type Store struct {
	dir    string
	prefix string
}

func New(dir, prefix string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, prefix: prefix}, nil
}

func (s *Store) Dir() string { return s.dir }

// Save menulis upload dengan nama unik (uuid + ekstensi asli) dan
// mengembalikan public path-nya. O_EXCL: upload paralel tidak akan tabrakan.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxCoverBytes {
		return "", ErrCoverTooLarge
	}

	ext := filepath.Ext(fh.Filename)
	if !extRe.MatchString(ext) {
		ext = ""
	}
	name := uuid.New().String() + ext

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}

	n, err := io.Copy(dst, io.LimitReader(src, MaxCoverBytes+1))
	cerr := dst.Close()
	if err == nil {
		err = cerr
	}
	if err == nil && n > MaxCoverBytes {
		err = ErrCoverTooLarge
	}
	if err != nil {
		// jangan tinggalkan file setengah jadi
		_ = os.Remove(filepath.Join(s.dir, name))
		return "", err
	}

	return path.Join(s.prefix, name), nil
}

// Remove menghapus cover by public path, best-effort. Gagal hapus cukup
// dilog; file nyasar di disk bukan pelanggaran integritas data.
func (s *Store) Remove(publicPath string) {
	if publicPath == "" {
		return
	}
	name := path.Base(publicPath) // tahan path traversal
	if name == "." || name == "/" || name == ".." {
		return
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		log.Printf("[FILESTORE] gagal hapus %q: %v", name, err)
	}
}
