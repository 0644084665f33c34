package dto

import (
	"strings"
	"time"
)

// CreatePointRequest - поля multipart-формы создания пункта.
// Числовые поля приходят строками и проверяются правилами валидатора,
// чтобы все нарушения можно было вернуть одновременно.
// Ограничения max совпадают с размерами колонок таблицы points.
type CreatePointRequest struct {
	Name      string `form:"name" validate:"required,max=255"`
	Email     string `form:"email" validate:"required,email,max=255"`
	Whatsapp  string `form:"whatsapp" validate:"required,numeric,max=32"`
	Latitude  string `form:"latitude" validate:"required,float"`
	Longitude string `form:"longitude" validate:"required,float"`
	City      string `form:"city" validate:"required,max=255"`
	UF        string `form:"uf" validate:"required,max=2"`
	Items     string `form:"items" validate:"required"`
}

// Normalize убирает пробелы по краям всех полей
func (r *CreatePointRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Whatsapp = strings.TrimSpace(r.Whatsapp)
	r.Latitude = strings.TrimSpace(r.Latitude)
	r.Longitude = strings.TrimSpace(r.Longitude)
	r.City = strings.TrimSpace(r.City)
	r.UF = strings.TrimSpace(r.UF)
	r.Items = strings.TrimSpace(r.Items)
}

// ImageUpload - загруженный файл изображения
type ImageUpload struct {
	Filename string
	Data     []byte
}

// ListPointsRequest - параметры поиска пунктов (?city=&uf=&items=1,2)
type ListPointsRequest struct {
	City  string `query:"city"`
	UF    string `query:"uf"`
	Items string `query:"items"`
}

// CategoryResponse - категория в ответе API
type CategoryResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

// PointResponse - пункт в ответе API вместе с принимаемыми категориями
type PointResponse struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Whatsapp  string             `json:"whatsapp"`
	Latitude  float64            `json:"latitude"`
	Longitude float64            `json:"longitude"`
	City      string             `json:"city"`
	UF        string             `json:"uf"`
	ImageURL  *string            `json:"image_url"`
	CreatedAt time.Time          `json:"created_at"`
	Items     []CategoryResponse `json:"items"`
}
