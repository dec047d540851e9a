package videos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/edutube/internal/common"
	"github.com/dmitrijs2005/edutube/internal/dbx"
	"github.com/dmitrijs2005/edutube/internal/server/models"
)

const videoColumns = `id, type, title, description, public_url, object_key, file_name, content_type, uploaded_at`

// dialect carries the statements and value encodings that differ between
// the SQL backends.
type dialect struct {
	name        string
	list        string
	get         string
	insert      string
	lock        string
	delete      string
	encodeTime  func(time.Time) any
	isDuplicate func(error) bool
}

// SQLRepository is the database/sql backend shared by PostgreSQL and SQLite.
// Insertion order is the order of the seq column.
type SQLRepository struct {
	db *sql.DB
	d  dialect
}

func (r *SQLRepository) List(ctx context.Context) ([]models.UploadedVideo, error) {
	rows, err := r.db.QueryContext(ctx, r.d.list)
	if err != nil {
		return nil, readError(err)
	}
	defer rows.Close()

	list := []models.UploadedVideo{}
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, readError(err)
		}
		list = append(list, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, readError(err)
	}
	return list, nil
}

func (r *SQLRepository) Get(ctx context.Context, id string) (*models.UploadedVideo, error) {
	v, err := scanVideo(r.db.QueryRowContext(ctx, r.d.get, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, readError(err)
	}
	return v, nil
}

func (r *SQLRepository) Append(ctx context.Context, v *models.UploadedVideo) error {
	_, err := r.db.ExecContext(ctx, r.d.insert,
		v.ID, v.Type, v.Title, v.Description, v.PublicURL,
		v.ObjectKey, v.FileName, v.ContentType, r.d.encodeTime(v.UploadedAt))
	if err != nil {
		if r.d.isDuplicate(err) {
			return fmt.Errorf("%w: %v", ErrDuplicate, err)
		}
		return fmt.Errorf("%s insert video: %w", r.d.name, err)
	}
	return nil
}

// Remove locks the row, then deletes it, inside one transaction.
func (r *SQLRepository) Remove(ctx context.Context, id string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var seq int64
		if err := tx.QueryRowContext(ctx, r.d.lock, id).Scan(&seq); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return common.ErrNotFound
			}
			return fmt.Errorf("%s lock video: %w", r.d.name, err)
		}

		if _, err := tx.ExecContext(ctx, r.d.delete, seq); err != nil {
			return fmt.Errorf("%s delete video: %w", r.d.name, err)
		}
		return nil
	})
}

func (r *SQLRepository) Close() error {
	return r.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVideo(row rowScanner) (*models.UploadedVideo, error) {
	var v models.UploadedVideo
	err := row.Scan(&v.ID, &v.Type, &v.Title, &v.Description, &v.PublicURL,
		&v.ObjectKey, &v.FileName, &v.ContentType, timeScanner{&v.UploadedAt})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// timeScanner accepts native timestamps and RFC 3339 text.
type timeScanner struct {
	t *time.Time
}

func (s timeScanner) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*s.t = v.UTC()
	case string:
		return s.parse(v)
	case []byte:
		return s.parse(string(v))
	case nil:
		*s.t = time.Time{}
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
	return nil
}

func (s timeScanner) parse(v string) error {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return err
	}
	*s.t = t.UTC()
	return nil
}
