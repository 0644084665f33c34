package dto

import (
	"net/url"

	"github.com/collection-points/internal/domain"
	"github.com/collection-points/internal/pkg/errors"
)

// Presenter преобразует доменные сущности в контракт ответа.
// Чистая функция от входных данных и базового URL изображений.
type Presenter struct {
	base *url.URL
}

// NewPresenter создаёт презентер. Пустой или относительный baseURL
// не приводит к панике: методы будут возвращать ErrConfiguration.
func NewPresenter(baseURL string) *Presenter {
	u, err := url.Parse(baseURL)
	if err != nil || baseURL == "" || !u.IsAbs() || u.Host == "" {
		return &Presenter{}
	}
	return &Presenter{base: u}
}

func (p *Presenter) imageURL(ref string) (string, error) {
	if p.base == nil {
		return "", errors.ErrConfiguration.WithDetails(map[string]interface{}{
			"setting": "STORAGE_PUBLIC_URL",
		})
	}
	return p.base.JoinPath(ref).String(), nil
}

func (p *Presenter) Category(c domain.Category) (CategoryResponse, error) {
	imageURL, err := p.imageURL(c.Image)
	if err != nil {
		return CategoryResponse{}, err
	}
	return CategoryResponse{
		ID:       c.ID,
		Title:    c.Title,
		ImageURL: imageURL,
	}, nil
}

func (p *Presenter) Categories(categories []domain.Category) ([]CategoryResponse, error) {
	result := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		item, err := p.Category(c)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

// Point собирает ответ по пункту. Без изображения image_url равен null.
func (p *Presenter) Point(point *domain.Point, categories []domain.Category) (PointResponse, error) {
	items, err := p.Categories(categories)
	if err != nil {
		return PointResponse{}, err
	}

	resp := PointResponse{
		ID:        point.ID,
		Name:      point.Name,
		Email:     point.Email,
		Whatsapp:  point.Whatsapp,
		Latitude:  point.Latitude,
		Longitude: point.Longitude,
		City:      point.City,
		UF:        point.UF,
		CreatedAt: point.CreatedAt,
		Items:     items,
	}

	if point.Image != nil && *point.Image != "" {
		imageURL, err := p.imageURL(*point.Image)
		if err != nil {
			return PointResponse{}, err
		}
		resp.ImageURL = &imageURL
	}

	return resp, nil
}
