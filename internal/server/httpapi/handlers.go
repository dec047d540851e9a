package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/edutube/internal/server/models"
	"github.com/dmitrijs2005/edutube/internal/server/uploads"
)

const (
	msgSearchFailed   = "Could not fetch search results"
	msgSectionsFailed = "Could not fetch home sections"
	msgListFailed     = "Could not retrieve videos"
	msgNotFound       = "Video not found"
	msgDeleted        = "Video deleted successfully"
)

type uploadURLRequest struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	FileSize int64  `json:"fileSize,omitempty"`
}

type uploadCompleteRequest struct {
	FileKey     string `json:"fileKey"`
	FileName    string `json:"fileName"`
	FileType    string `json:"fileType"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type healthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, r, http.StatusOK, healthResponse{
		Status: "healthy",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleSearch handles GET /api/search?q=
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	res, err := s.catalog.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.respondFailure(w, r, err, http.StatusBadGateway, msgSearchFailed)
		return
	}
	if res == nil {
		res = []models.SearchResult{}
	}
	s.respondJSON(w, r, http.StatusOK, res)
}

// handleHomeSections handles GET /api/home-sections
func (s *Server) handleHomeSections(w http.ResponseWriter, r *http.Request) {
	hs, err := s.catalog.HomeSections(r.Context())
	if err != nil {
		s.respondFailure(w, r, err, http.StatusBadGateway, msgSectionsFailed)
		return
	}
	s.respondJSON(w, r, http.StatusOK, hs)
}

// handleGenerateUploadURL handles POST /api/generate-upload-url
func (s *Server) handleGenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	var req uploadURLRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	target, err := s.broker.CreateUploadTarget(r.Context(), uploads.UploadRequest{
		FileName:    req.FileName,
		ContentType: req.FileType,
		FileSize:    req.FileSize,
	})
	if err != nil {
		s.respondFailure(w, r, err, http.StatusInternalServerError, uploads.MsgUploadURLFailed)
		return
	}
	s.respondJSON(w, r, http.StatusOK, target)
}

// handleUploadComplete handles POST /api/upload-complete
func (s *Server) handleUploadComplete(w http.ResponseWriter, r *http.Request) {
	var req uploadCompleteRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	v, err := s.broker.ConfirmUpload(r.Context(), uploads.Confirmation{
		ObjectKey:   req.FileKey,
		FileName:    req.FileName,
		ContentType: req.FileType,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		s.respondFailure(w, r, err, http.StatusInternalServerError, uploads.MsgSaveFailed)
		return
	}
	s.respondJSON(w, r, http.StatusCreated, v)
}

// handleListVideos handles GET /api/my-videos
func (s *Server) handleListVideos(w http.ResponseWriter, r *http.Request) {
	list, err := s.broker.ListVideos(r.Context())
	if err != nil {
		s.respondFailure(w, r, err, http.StatusInternalServerError, msgListFailed)
		return
	}
	if list == nil {
		list = []models.UploadedVideo{}
	}
	s.respondJSON(w, r, http.StatusOK, list)
}

// handleDeleteVideo handles DELETE /api/videos/{id}
func (s *Server) handleDeleteVideo(w http.ResponseWriter, r *http.Request) {
	if err := s.broker.DeleteVideo(r.Context(), r.PathValue("id")); err != nil {
		s.respondFailure(w, r, err, http.StatusInternalServerError, uploads.MsgDeleteFailed)
		return
	}
	s.respondJSON(w, r, http.StatusOK, messageResponse{Message: msgDeleted})
}
