package validator

import (
	"github.com/gabriel-vasile/mimetype"
)

// ImagePolicy - ограничения на загружаемые изображения.
// Проверяется до любой записи, чтобы отклонить запрос без побочных эффектов.
type ImagePolicy struct {
	MaxSize int64
	Allowed []string
}

// Check возвращает нарушенное правило ("required", "max", "mime") или пустую строку
func (p ImagePolicy) Check(data []byte) string {
	if len(data) == 0 {
		return "required"
	}
	if p.MaxSize > 0 && int64(len(data)) > p.MaxSize {
		return "max"
	}

	detected := mimetype.Detect(data)
	for _, allowed := range p.Allowed {
		if detected.Is(allowed) {
			return ""
		}
	}
	return "mime"
}
