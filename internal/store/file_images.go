package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/redproduct/hotelkeeper/internal/config"
	"github.com/redproduct/hotelkeeper/internal/logger"
)

// imageFileStorage is the local-filesystem implementation of
// [ImageFileStorage]. Uploaded files get a millisecond-timestamp prefix so
// that repeated uploads of the same filename never collide, and are served
// statically from the upload directory under the /uploads/ prefix.
type imageFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewImageFileStorage constructs an [ImageFileStorage] rooted at the
// configured upload directory, creating it if necessary.
func NewImageFileStorage(cfg config.Files, logger *logger.Logger) (ImageFileStorage, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating upload directory: %w", err)
	}

	logger.Debug().Str("dir", cfg.UploadDir).Msg("creating image file storage")
	return &imageFileStorage{
		dir:    cfg.UploadDir,
		logger: logger,
	}, nil
}

// SaveImage writes the uploaded image to the upload directory and returns
// the relative path clients fetch it from.
// The original filename is reduced to its base name so that path traversal
// in a multipart filename cannot escape the upload directory.
func (s *imageFileStorage) SaveImage(ctx context.Context, originalName string, r io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	name := sanitizeFileName(originalName)
	fileName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), name)
	fullPath := filepath.Join(s.dir, fileName)

	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		log.Err(err).Str("func", "*imageFileStorage.SaveImage").Msg("error: creating image file")
		return "", fmt.Errorf("error creating image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		log.Err(err).Str("func", "*imageFileStorage.SaveImage").Msg("error: writing image file")
		return "", fmt.Errorf("error writing image file: %w", err)
	}

	return path.Join("uploads", "hotels", fileName), nil
}

// Root returns the upload directory on the local filesystem.
func (s *imageFileStorage) Root() string {
	return s.dir
}

func sanitizeFileName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "image"
	}
	return name
}
