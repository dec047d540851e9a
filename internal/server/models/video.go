package models

import "time"

// UploadedType is the constant Type of every UploadedVideo.
const UploadedType = "uploaded"

// UploadedVideo is the metadata record of a user-uploaded video.
// Records are immutable once appended; removal is the only mutation.
type UploadedVideo struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PublicURL   string    `json:"publicUrl"`
	ObjectKey   string    `json:"fileKey"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"fileType"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// UploadTarget is a time-limited write permission for one object key.
type UploadTarget struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"fileKey"`
}
