package models

import "time"

// UploadedType is the type the server reports for uploaded videos.
const UploadedType = "uploaded"

// UploadedVideo is a stored upload as listed by the server.
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

// UploadTarget is the presigned upload URL handed out for one object key.
type UploadTarget struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"fileKey"`
}
