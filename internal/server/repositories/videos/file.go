package videos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/dmitrijs2005/edutube/internal/common"
	"github.com/dmitrijs2005/edutube/internal/filex"
	"github.com/dmitrijs2005/edutube/internal/server/models"
)

// FileRepository keeps every record in one JSON array on disk. Each
// mutation reads the whole document, changes it and writes it back via a
// temporary file and rename, all under one mutex.
type FileRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) List(ctx context.Context) ([]models.UploadedVideo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *FileRepository) Get(ctx context.Context, id string) (*models.UploadedVideo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return nil, err
	}

	i := findIndex(list, id)
	if i < 0 {
		return nil, common.ErrNotFound
	}
	v := list[i]
	return &v, nil
}

func (r *FileRepository) Append(ctx context.Context, v *models.UploadedVideo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return err
	}
	if err := checkUnique(list, v); err != nil {
		return err
	}

	return r.save(append(list, *v))
}

func (r *FileRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return err
	}

	i := findIndex(list, id)
	if i < 0 {
		return common.ErrNotFound
	}

	return r.save(append(list[:i], list[i+1:]...))
}

func (r *FileRepository) Close() error { return nil }

// load treats a missing or blank file as an empty list.
func (r *FileRepository) load() ([]models.UploadedVideo, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.UploadedVideo{}, nil
	}
	if err != nil {
		return nil, readError(err)
	}

	list := []models.UploadedVideo{}
	if len(bytes.TrimSpace(data)) == 0 {
		return list, nil
	}
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, readError(err)
	}
	if list == nil {
		list = []models.UploadedVideo{}
	}
	return list, nil
}

func (r *FileRepository) save(list []models.UploadedVideo) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	if err := filex.WriteFileAtomic(r.path, data, 0o644); err != nil {
		return fmt.Errorf("save metadata: %w", err)
	}
	return nil
}
