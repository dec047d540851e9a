// Package uploads implements the upload broker: it hands out time-limited
// write URLs for object storage and keeps the list of uploaded videos.
// File bytes never pass through the broker.
package uploads

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/edutube/internal/common"
	"github.com/dmitrijs2005/edutube/internal/logging"
	"github.com/dmitrijs2005/edutube/internal/server/models"
	"github.com/dmitrijs2005/edutube/internal/server/repositories/videos"
	"github.com/dmitrijs2005/edutube/internal/server/storage"
)

const (
	DefaultURLExpiry   = 15 * time.Minute
	DefaultMaxFileSize = 100 << 20

	// StorageProvider names object storage in upstream errors.
	StorageProvider = "object storage"

	keyPrefix = "uploads/"
)

// Messages returned to callers.
const (
	MsgUploadFieldsRequired  = "fileName and fileType are required"
	MsgConfirmFieldsRequired = "fileKey, fileName, fileType and title are required"
	MsgNotVideo              = "Please select a valid video file."
	MsgUploadURLFailed       = "Could not generate upload URL"
	MsgSaveFailed            = "Error saving video information"
	MsgDeleteFailed          = "Error deleting video"
)

// UploadRequest asks for a write URL. FileSize is optional; zero means
// unknown.
type UploadRequest struct {
	FileName    string
	ContentType string
	FileSize    int64
}

// Confirmation reports a finished direct upload.
type Confirmation struct {
	ObjectKey   string
	FileName    string
	ContentType string
	Title       string
	Description string
}

type Options struct {
	URLExpiry   time.Duration
	MaxFileSize int64
}

type Service struct {
	storage storage.ObjectStorage
	repo    videos.Repository
	logger  logging.Logger
	opts    Options

	// mu serializes confirm and delete sequences.
	mu sync.Mutex

	now   func() time.Time
	newID func() string
}

func NewService(st storage.ObjectStorage, repo videos.Repository, logger logging.Logger, opts Options) *Service {
	if opts.URLExpiry <= 0 {
		opts.URLExpiry = DefaultURLExpiry
	}
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = DefaultMaxFileSize
	}

	return &Service{
		storage: st,
		repo:    repo,
		logger:  logger.With("module", "uploads"),
		opts:    opts,
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
	}
}

// ObjectKey builds a collision-free key that ends with the file's base name.
func ObjectKey(id, fileName string) string {
	name := path.Base(strings.ReplaceAll(fileName, `\`, "/"))
	return keyPrefix + id + "-" + name
}

// CreateUploadTarget validates the request and presigns a PUT for a fresh
// object key. Nothing is recorded until ConfirmUpload.
func (s *Service) CreateUploadTarget(ctx context.Context, req UploadRequest) (*models.UploadTarget, error) {
	fileName := strings.TrimSpace(req.FileName)
	contentType := strings.TrimSpace(req.ContentType)

	if fileName == "" || contentType == "" {
		return nil, common.InvalidRequest(MsgUploadFieldsRequired)
	}
	if !strings.HasPrefix(strings.ToLower(contentType), "video/") {
		return nil, common.InvalidRequest(MsgNotVideo)
	}
	if req.FileSize < 0 {
		return nil, common.InvalidRequest("fileSize must not be negative")
	}
	if req.FileSize > s.opts.MaxFileSize {
		return nil, common.InvalidRequest("File is too large. Maximum size is %dMB.", s.opts.MaxFileSize>>20)
	}

	key := ObjectKey(s.newID(), fileName)

	url, err := s.storage.PresignPut(ctx, key, contentType, s.opts.URLExpiry)
	if err != nil {
		s.logger.Error(ctx, "presign failed", "key", key, "error", err)
		return nil, common.NewUpstreamError(StorageProvider, 0, MsgUploadURLFailed, err)
	}

	s.logger.Info(ctx, "upload target issued", "key", key, "expires_in", s.opts.URLExpiry)
	return &models.UploadTarget{UploadURL: url, ObjectKey: key}, nil
}

// ConfirmUpload records a video whose bytes the caller reports as stored.
// The object itself is not checked.
func (s *Service) ConfirmUpload(ctx context.Context, c Confirmation) (*models.UploadedVideo, error) {
	if strings.TrimSpace(c.ObjectKey) == "" || strings.TrimSpace(c.FileName) == "" ||
		strings.TrimSpace(c.ContentType) == "" || strings.TrimSpace(c.Title) == "" {
		return nil, common.InvalidRequest(MsgConfirmFieldsRequired)
	}

	// Timestamps keep microsecond precision so every store returns the
	// record exactly as confirmed.
	v := &models.UploadedVideo{
		ID:          s.newID(),
		Type:        models.UploadedType,
		Title:       c.Title,
		Description: c.Description,
		PublicURL:   s.storage.PublicURL(c.ObjectKey),
		ObjectKey:   c.ObjectKey,
		FileName:    c.FileName,
		ContentType: c.ContentType,
		UploadedAt:  s.now().UTC().Truncate(time.Microsecond),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Append(ctx, v); err != nil {
		s.logger.Error(ctx, "save video failed", "key", c.ObjectKey, "error", err)
		return nil, fmt.Errorf("%s: %w", MsgSaveFailed, err)
	}

	s.logger.Info(ctx, "upload confirmed", "id", v.ID, "key", v.ObjectKey)
	return v, nil
}

// ListVideos returns every record in confirmation order.
func (s *Service) ListVideos(ctx context.Context) ([]models.UploadedVideo, error) {
	return s.repo.List(ctx)
}

// DeleteVideo removes the stored object and then the record. When the
// object can't be removed the record is kept.
func (s *Service) DeleteVideo(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, v.ObjectKey); err != nil {
		s.logger.Error(ctx, "object delete failed", "id", id, "key", v.ObjectKey, "error", err)
		return common.NewUpstreamError(StorageProvider, 0, MsgDeleteFailed, err)
	}

	if err := s.repo.Remove(ctx, id); err != nil {
		s.logger.Error(ctx, "record delete failed", "id", id, "error", err)
		return err
	}

	s.logger.Info(ctx, "video deleted", "id", id, "key", v.ObjectKey)
	return nil
}
