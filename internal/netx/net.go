// Package netx holds the direct-to-storage upload used by the CLI.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// ProgressFunc receives the bytes sent so far and the total size.
type ProgressFunc func(sent, total int64)

// UploadToPresignedURL PUTs size bytes from body to a presigned URL. The
// Content-Type must match the one the URL was signed for. Only 200 counts
// as success.
func UploadToPresignedURL(ctx context.Context, client *http.Client, url, contentType string, body io.Reader, size int64, progress ProgressFunc) error {
	if client == nil {
		client = http.DefaultClient
	}
	if progress != nil {
		body = &progressReader{r: body, total: size, fn: progress}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, body)
	if err != nil {
		return err
	}
	req.ContentLength = size
	req.Header.Set("Content-Type", contentType)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("upload failed: %s; body: %s", resp.Status, string(b))
	}
	return nil
}

type progressReader struct {
	r     io.Reader
	sent  int64
	total int64
	fn    ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		p.fn(p.sent, p.total)
	}
	return n, err
}
