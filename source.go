package scrollreel

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"

	_ "golang.org/x/image/webp"
)

// FrameSource fetches and decodes one frame. Implementations must be safe
// for concurrent use; the batch loader calls Load from several goroutines.
type FrameSource interface {
	Load(ctx context.Context, index int) (image.Image, error)
	Path(index int) string
}

// FramePath returns the resource path of frame index:
// dir + index zero-padded to four digits + "." + format.
func FramePath(dir, format string, index int) string {
	return fmt.Sprintf("%s%04d.%s", dir, index, format)
}

// DirSource reads frames from the local filesystem.
type DirSource struct {
	Dir    string
	Format string
}

// Path implements FrameSource.
func (s DirSource) Path(index int) string {
	return FramePath(s.Dir, s.Format, index)
}

// Load implements FrameSource.
func (s DirSource) Load(ctx context.Context, index int) (image.Image, error) {
	path := s.Path(index)
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Index: index, Path: path, Err: err}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Index: index, Path: path, Err: err}
	}
	defer f.Close()
	return decodeFrame(f, index, path)
}

// HTTPSource fetches frames with plain GET requests from a URL prefix.
// Under GOOS=js the default client goes through the browser's fetch.
type HTTPSource struct {
	BaseURL string
	Format  string
	Client  *http.Client
}

// Path implements FrameSource.
func (s HTTPSource) Path(index int) string {
	return FramePath(s.BaseURL, s.Format, index)
}

// Load implements FrameSource.
func (s HTTPSource) Load(ctx context.Context, index int) (image.Image, error) {
	path := s.Path(index)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, &LoadError{Index: index, Path: path, Err: fmt.Errorf("create request: %w", err)}
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &LoadError{Index: index, Path: path, Err: fmt.Errorf("http request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &LoadError{Index: index, Path: path, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}
	return decodeFrame(resp.Body, index, path)
}

// NewSource picks an HTTPSource for http(s) prefixes and a DirSource
// otherwise.
func NewSource(dir, format string) FrameSource {
	if IsRemote(dir) {
		return HTTPSource{BaseURL: dir, Format: format}
	}
	return DirSource{Dir: dir, Format: format}
}

// IsRemote reports whether dir is an http(s) base URL.
func IsRemote(dir string) bool {
	return strings.HasPrefix(dir, "http://") || strings.HasPrefix(dir, "https://")
}

func decodeFrame(r io.Reader, index int, path string) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &LoadError{Index: index, Path: path, Err: fmt.Errorf("decode: %w", err)}
	}
	return img, nil
}
