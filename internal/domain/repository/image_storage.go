package repository

import "context"

// ImageStorage - хранилище загруженных изображений
type ImageStorage interface {
	// Store записывает ровно один файл и возвращает его уникальную ссылку
	Store(ctx context.Context, data []byte, originalName string) (string, error)

	// Delete удаляет файл по ссылке
	Delete(ctx context.Context, ref string) error
}
