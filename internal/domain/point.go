package domain

import "time"

// Point представляет зарегистрированный пункт приёма отходов
type Point struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	Whatsapp    string    `json:"whatsapp" db:"whatsapp"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	City        string    `json:"city" db:"city"`
	UF          string    `json:"uf" db:"uf"`
	Image       *string   `json:"image,omitempty" db:"image"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	CategoryIDs []int64   `json:"category_ids" db:"-"`
}

// PointFilter - фильтр поиска пунктов. Пустое поле не накладывает ограничений.
type PointFilter struct {
	City string
	UF   string
	// CategoryIDs: пункт подходит, если принимает хотя бы одну из категорий
	CategoryIDs []int64
}

// IsEmpty возвращает true, если фильтр не ограничивает выборку
func (f PointFilter) IsEmpty() bool {
	return f.City == "" && f.UF == "" && len(f.CategoryIDs) == 0
}
