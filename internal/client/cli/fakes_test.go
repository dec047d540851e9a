package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/edutube/internal/client/api"
	"github.com/dmitrijs2005/edutube/internal/client/config"
	"github.com/dmitrijs2005/edutube/internal/netx"
	"github.com/dmitrijs2005/edutube/internal/client/models"
)

type fakeAPI struct {
	healthErr error

	searchQuery string
	searchRes   []models.SearchResult
	home        *models.HomeSections
	videos      []models.UploadedVideo
	err         error

	uploadReq   *api.UploadURLRequest
	completeReq *api.UploadCompleteRequest
	deletedID   string
}

func (f *fakeAPI) Health(context.Context) error { return f.healthErr }

func (f *fakeAPI) Search(_ context.Context, q string) ([]models.SearchResult, error) {
	f.searchQuery = q
	return f.searchRes, f.err
}

func (f *fakeAPI) HomeSections(context.Context) (*models.HomeSections, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.home, nil
}

func (f *fakeAPI) GenerateUploadURL(_ context.Context, req api.UploadURLRequest) (*models.UploadTarget, error) {
	f.uploadReq = &req
	if f.err != nil {
		return nil, f.err
	}
	return &models.UploadTarget{UploadURL: "http://storage/put", ObjectKey: "uploads/id-" + req.FileName}, nil
}

func (f *fakeAPI) CompleteUpload(_ context.Context, req api.UploadCompleteRequest) (*models.UploadedVideo, error) {
	f.completeReq = &req
	return &models.UploadedVideo{ID: "vid-1", Title: req.Title, PublicURL: "http://storage/bucket/" + req.FileKey}, nil
}

func (f *fakeAPI) ListVideos(context.Context) ([]models.UploadedVideo, error) {
	return f.videos, f.err
}

func (f *fakeAPI) DeleteVideo(_ context.Context, id string) error {
	f.deletedID = id
	return f.err
}

type recordedUpload struct {
	url         string
	contentType string
	body        []byte
	size        int64
}

func newTestApp(fa *fakeAPI, input string) (*App, *bytes.Buffer, *[]recordedUpload) {
	out := &bytes.Buffer{}
	var uploads []recordedUpload

	app := &App{
		config:  &config.Config{},
		api:     fa,
		storage: &http.Client{},
		in:      bufio.NewReader(strings.NewReader(input)),
		out:     out,
		upload: func(_ context.Context, _ *http.Client, url, contentType string, body io.Reader, size int64, progress netx.ProgressFunc) error {
			b, err := io.ReadAll(body)
			if err != nil {
				return err
			}
			if progress != nil {
				progress(size, size)
			}
			uploads = append(uploads, recordedUpload{url: url, contentType: contentType, body: b, size: size})
			return nil
		},
	}
	return app, out, &uploads
}
