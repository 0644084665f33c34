package storage

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/collection-points/internal/config"
	"github.com/collection-points/internal/domain/repository"
	"github.com/collection-points/internal/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxNameLength = 64

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// LocalStorage - хранилище изображений на локальном диске
type LocalStorage struct {
	dir    string
	logger *zap.Logger
}

func NewLocalStorage(cfg *config.StorageConfig, logger *zap.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	logger.Info("Image storage ready", zap.String("dir", cfg.UploadDir))

	return &LocalStorage{dir: cfg.UploadDir, logger: logger}, nil
}

var _ repository.ImageStorage = (*LocalStorage)(nil)

// Store записывает файл под новым уникальным именем.
// O_EXCL гарантирует, что существующий файл никогда не будет перезаписан.
func (s *LocalStorage) Store(ctx context.Context, data []byte, originalName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.ErrStorageWriteFailed.Wrap(err)
	}

	ref := newReference(originalName)
	path := filepath.Join(s.dir, ref)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		s.logger.Error("Failed to create image file", zap.String("ref", ref), zap.Error(err))
		return "", errors.ErrStorageWriteFailed.Wrap(err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		_ = os.Remove(path)
		s.logger.Error("Failed to write image file", zap.String("ref", ref), zap.Error(err))
		return "", errors.ErrStorageWriteFailed.Wrap(err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		s.logger.Error("Failed to close image file", zap.String("ref", ref), zap.Error(err))
		return "", errors.ErrStorageWriteFailed.Wrap(err)
	}

	s.logger.Debug("Image stored", zap.String("ref", ref), zap.Int("size", len(data)))
	return ref, nil
}

// Delete удаляет файл, отсутствие файла ошибкой не считается
func (s *LocalStorage) Delete(ctx context.Context, ref string) error {
	if ref == "" || ref != filepath.Base(ref) {
		return fmt.Errorf("invalid image reference %q", ref)
	}

	err := os.Remove(filepath.Join(s.dir, ref))
	if err != nil && !stderrors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// Path возвращает путь к файлу на диске
func (s *LocalStorage) Path(ref string) string {
	return filepath.Join(s.dir, ref)
}

func newReference(originalName string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return id + "-" + sanitizeName(originalName)
}

func sanitizeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeNameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if len(name) > maxNameLength {
		name = name[len(name)-maxNameLength:]
	}
	if name == "" {
		return "image"
	}
	return name
}
