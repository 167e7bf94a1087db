// Package uploads stores admin-submitted images on disk and hands back the
// public URL they will be served under.
package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/logging"
	"github.com/fomolabs/fomo-cms/pkg/interfaces"
)

const (
	// URLPrefix is the path the stored files are served under.
	URLPrefix = "/uploads/"

	defaultMaxBytes = 5 << 20
)

var (
	// ErrUnsupportedType is returned for anything that is not a png, jpeg
	// or webp image.
	ErrUnsupportedType = errors.New("uploads: unsupported content type")
	// ErrTooLarge is returned when the file exceeds the configured limit.
	ErrTooLarge = errors.New("uploads: file exceeds size limit")
)

var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// Service writes uploaded images to a directory.
type Service struct {
	dir      string
	maxBytes int64
	newID    func() uuid.UUID
	logger   interfaces.Logger
}

// Option configures the upload service.
type Option func(*Service)

func WithMaxBytes(limit int64) Option {
	return func(s *Service) {
		if limit > 0 {
			s.maxBytes = limit
		}
	}
}

func WithIDGenerator(generator func() uuid.UUID) Option {
	return func(s *Service) {
		if generator != nil {
			s.newID = generator
		}
	}
}

func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates the upload directory if needed.
func NewService(dir string, opts ...Option) (*Service, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("uploads: create directory: %w", err)
	}
	s := &Service{dir: dir, maxBytes: defaultMaxBytes, newID: uuid.New, logger: logging.NoOp()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dir returns the storage directory, for wiring the static file server.
func (s *Service) Dir() string {
	return s.dir
}

// Save stores the image under a fresh uuid-based name and returns its
// public URL. The original filename is discarded, only the content type
// decides the extension.
func (s *Service) Save(ctx context.Context, contentType string, body io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext, ok := extensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	name := s.newID().String() + ext
	path := filepath.Join(s.dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("uploads: create file: %w", err)
	}
	defer file.Close()

	// Read one byte past the limit so oversize bodies are detected without
	// buffering the whole file.
	written, err := io.Copy(file, io.LimitReader(body, s.maxBytes+1))
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("uploads: write file: %w", err)
	}
	if written > s.maxBytes {
		os.Remove(path)
		return "", fmt.Errorf("%w: limit %d bytes", ErrTooLarge, s.maxBytes)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("uploads: close file: %w", err)
	}

	s.logger.Debug("file stored", "name", name, "bytes", written)
	return URLPrefix + name, nil
}
