package services

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"umrah/internal/domain"
	"umrah/internal/utils"
)

// Upload is one document received from a multipart form.
type Upload struct {
	Name string
	Body io.Reader
}

// UploadStore writes traveller documents under Dir as "<prefix>_<name>".
// Existing files are never replaced.
type UploadStore struct {
	Dir string
}

func (u UploadStore) dir() string {
	if u.Dir != "" {
		return u.Dir
	}
	return "uploads"
}

// maxNameAttempts bounds the "<prefix>_<n>_<name>" suffixes tried for one upload.
const maxNameAttempts = 1000

// Save writes the upload without overwriting anything: a name already taken
// under the same prefix gets a counter, "<prefix>_2_<name>", "<prefix>_3_<name>".
func (u UploadStore) Save(prefix string, up Upload) (string, error) {
	if err := os.MkdirAll(u.dir(), 0o755); err != nil {
		return "", domain.StoreError{Op: "create upload dir", Err: err}
	}
	base := utils.SafeFilenamePart(up.Name)

	for n := 1; n <= maxNameAttempts; n++ {
		name := fmt.Sprintf("%s_%s", prefix, base)
		if n > 1 {
			name = fmt.Sprintf("%s_%d_%s", prefix, n, base)
		}
		path := filepath.Join(u.dir(), name)

		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", domain.StoreError{Op: "save upload", Err: err}
		}
		if _, err := io.Copy(f, up.Body); err != nil {
			f.Close()
			os.Remove(path)
			return "", domain.StoreError{Op: "save upload", Err: err}
		}
		if err := f.Close(); err != nil {
			os.Remove(path)
			return "", domain.StoreError{Op: "save upload", Err: err}
		}
		return path, nil
	}
	return "", domain.StoreError{Op: "save upload", Err: fmt.Errorf("nama file %s_%s sudah terpakai", prefix, base)}
}

func (u UploadStore) Remove(paths ...string) {
	for _, p := range paths {
		_ = os.Remove(p)
	}
}
