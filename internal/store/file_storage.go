package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-photo-catalog/internal/logger"
)

const (
	thumbnailsDir       = "thumbnails"
	thumbnailsExtension = "jpg"
)

// diskFileStorage is the filesystem implementation of [FileStorage].
//
// Files are kept as <dir>/<id>.<extension>, thumbnails as
// <dir>/thumbnails/<id>.jpg. Writes go through a temporary file followed by a
// rename so readers never observe partial content.
type diskFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewFileStorage constructs a [FileStorage] rooted at dir, creating the
// directory tree if needed.
func NewFileStorage(dir string, log *logger.Logger) (FileStorage, error) {
	if err := os.MkdirAll(filepath.Join(dir, thumbnailsDir), 0o755); err != nil {
		return nil, fmt.Errorf("error creating file storage directory: %w", err)
	}

	return &diskFileStorage{dir: dir, logger: log}, nil
}

func (s *diskFileStorage) GetFileSavePath(id int64, extension string) string {
	name := strconv.FormatInt(id, 10)
	if ext := strings.TrimPrefix(extension, "."); ext != "" {
		name += "." + ext
	}
	return filepath.Join(s.dir, name)
}

// filePath is GetFileSavePath for extensions that cannot leave s.dir.
func (s *diskFileStorage) filePath(id int64, extension string) (string, error) {
	if strings.ContainsAny(extension, `/\`) || strings.Contains(extension, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidFileExtension, extension)
	}
	return s.GetFileSavePath(id, extension), nil
}

func (s *diskFileStorage) thumbnailPath(id int64) string {
	return filepath.Join(s.dir, thumbnailsDir, strconv.FormatInt(id, 10)+"."+thumbnailsExtension)
}

func (s *diskFileStorage) SaveFile(ctx context.Context, id int64, extension string, data []byte) error {
	path, err := s.filePath(id, extension)
	if err != nil {
		return err
	}
	return s.write(ctx, path, data)
}

func (s *diskFileStorage) ReadFile(ctx context.Context, id int64, extension string) ([]byte, error) {
	path, err := s.filePath(id, extension)
	if err != nil {
		return nil, err
	}
	data, err := s.read(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %d", ErrFileContentNotFound, id)
	}
	return data, err
}

func (s *diskFileStorage) SaveThumbnail(ctx context.Context, id int64, data []byte) error {
	return s.write(ctx, s.thumbnailPath(id), data)
}

func (s *diskFileStorage) ReadThumbnail(ctx context.Context, id int64) ([]byte, bool, error) {
	data, err := s.read(ctx, s.thumbnailPath(id))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, false, nil
	case err != nil:
		return nil, false, err
	}
	return data, true, nil
}

func (s *diskFileStorage) write(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return fmt.Errorf("error creating temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing file: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		s.logger.Err(err).Str("func", "diskFileStorage.write").Str("path", path).Msg("failed to move file into place")
		return fmt.Errorf("error moving file into place: %w", err)
	}

	return nil
}

func (s *diskFileStorage) read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}
