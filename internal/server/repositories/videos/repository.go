// Package videos stores uploaded-video metadata records.
//
// Records are kept in insertion order and are never updated; Append and
// Remove are the only mutations. Every backend makes those two atomic with
// respect to each other.
package videos

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/edutube/internal/common"
	"github.com/dmitrijs2005/edutube/internal/server/models"
)

// ErrDuplicate is returned by Append when the id or object key is taken.
var ErrDuplicate = errors.New("duplicate video record")

type Repository interface {
	// List returns all records in insertion order. An empty store yields
	// an empty, non-nil slice.
	List(ctx context.Context) ([]models.UploadedVideo, error)

	// Get returns the record with id or common.ErrNotFound.
	Get(ctx context.Context, id string) (*models.UploadedVideo, error)

	// Append adds v at the end of the list.
	Append(ctx context.Context, v *models.UploadedVideo) error

	// Remove deletes the record with id or returns common.ErrNotFound.
	Remove(ctx context.Context, id string) error
}

// Store is a Repository that holds resources until closed.
type Store interface {
	Repository
	io.Closer
}

func readError(err error) error {
	return fmt.Errorf("%w: %v", common.ErrStorageRead, err)
}

func findIndex(list []models.UploadedVideo, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

func checkUnique(list []models.UploadedVideo, v *models.UploadedVideo) error {
	for i := range list {
		if list[i].ID == v.ID || list[i].ObjectKey == v.ObjectKey {
			return fmt.Errorf("%w: id %s, key %s", ErrDuplicate, v.ID, v.ObjectKey)
		}
	}
	return nil
}
