package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/edutube/internal/client/api"
)

// MaxUploadSize mirrors the server's default limit so oversize files fail
// before any network call.
const MaxUploadSize int64 = 100 << 20

var ErrNotVideo = errors.New("please select a valid video file")

var videoTypes = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/x-m4v",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
	".ogv":  "video/ogg",
	".mpeg": "video/mpeg",
	".mpg":  "video/mpeg",
}

// detectContentType goes by extension first and sniffs the header bytes
// when the extension is unknown.
func detectContentType(path string, f io.ReadSeeker) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ct, ok := videoTypes[ext]; ok {
		return ct, nil
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct, nil
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(head[:n]), nil
}

func checkVideo(contentType string, size int64) error {
	if !strings.HasPrefix(strings.ToLower(contentType), "video/") {
		return fmt.Errorf("%w (detected %s)", ErrNotVideo, contentType)
	}
	if size > MaxUploadSize {
		return fmt.Errorf("file is too large: maximum size is %dMB", MaxUploadSize>>20)
	}
	return nil
}

// Upload sends a local video file through the direct-upload flow. A missing
// title is asked for interactively.
func (a *App) Upload(ctx context.Context, path, title, description string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	contentType, err := detectContentType(path, f)
	if err != nil {
		return err
	}
	if err := checkVideo(contentType, info.Size()); err != nil {
		return err
	}

	if strings.TrimSpace(title) == "" {
		title, err = GetSimpleText(a.in, "Title:", a.out)
		if err != nil {
			return err
		}
		if title == "" {
			return errors.New("title is required")
		}
		if description == "" {
			description, _ = GetSimpleText(a.in, "Description (optional):", a.out)
		}
	}

	fileName := filepath.Base(path)

	target, err := a.api.GenerateUploadURL(ctx, api.UploadURLRequest{
		FileName: fileName,
		FileType: contentType,
		FileSize: info.Size(),
	})
	if err != nil {
		return err
	}

	var progress func(sent, total int64)
	if a.interactive {
		progress = a.printProgress
	}

	if err := a.upload(ctx, a.storage, target.UploadURL, contentType, f, info.Size(), progress); err != nil {
		return err
	}
	if a.interactive {
		fmt.Fprintln(a.out)
	}

	v, err := a.api.CompleteUpload(ctx, api.UploadCompleteRequest{
		FileKey:     target.ObjectKey,
		FileName:    fileName,
		FileType:    contentType,
		Title:       title,
		Description: description,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Uploaded %q as %s\n", v.Title, v.ID)
	fmt.Fprintf(a.out, "    %s\n", v.PublicURL)
	return nil
}

func (a *App) printProgress(sent, total int64) {
	if total <= 0 {
		return
	}
	fmt.Fprintf(a.out, "\rUploading... %3d%%", sent*100/total)
}
