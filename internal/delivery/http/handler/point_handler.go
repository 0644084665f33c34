package handler

import (
	"context"
	stderrors "errors"
	"io"

	"github.com/collection-points/internal/pkg/errors"
	"github.com/collection-points/internal/pkg/utils"
	"github.com/collection-points/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// PointService - операции над пунктами приёма, используемые обработчиком
type PointService interface {
	CreatePoint(ctx context.Context, req dto.CreatePointRequest, image *dto.ImageUpload) (*dto.PointResponse, error)
	GetPoint(ctx context.Context, id int64) (*dto.PointResponse, error)
	QueryPoints(ctx context.Context, req dto.ListPointsRequest) ([]dto.PointResponse, error)
}

// PointHandler - обработчик запросов к пунктам приёма
type PointHandler struct {
	pointUC PointService
	logger  *zap.Logger
}

// NewPointHandler - создание нового PointHandler
func NewPointHandler(pointUC PointService, logger *zap.Logger) *PointHandler {
	return &PointHandler{
		pointUC: pointUC,
		logger:  logger,
	}
}

// Index godoc
// @Summary Поиск пунктов приёма
// @Description Фильтрует пункты по городу, штату и категориям. Пункт подходит, если принимает хотя бы одну из перечисленных категорий. Без параметров возвращает все пункты.
// @Tags Points
// @Produce json
// @Param city query string false "Город (точное совпадение)"
// @Param uf query string false "Штат, две буквы (точное совпадение)"
// @Param items query string false "Идентификаторы категорий через запятую" example(1,2)
// @Success 200 {array} dto.PointResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /points [get]
func (h *PointHandler) Index(c *fiber.Ctx) error {
	var req dto.ListPointsRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.NewValidationError(map[string]string{"query": "invalid"}))
	}

	points, err := h.pointUC.QueryPoints(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, points)
}

// Show godoc
// @Summary Получить пункт приёма
// @Description Возвращает пункт вместе с принимаемыми категориями
// @Tags Points
// @Produce json
// @Param id path int true "ID пункта"
// @Success 200 {object} dto.PointResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /points/{id} [get]
func (h *PointHandler) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.NewValidationError(map[string]string{"id": "numeric"}))
	}

	point, err := h.pointUC.GetPoint(c.UserContext(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, point)
}

// Create godoc
// @Summary Зарегистрировать пункт приёма
// @Description Принимает multipart-форму. Все нарушения валидации возвращаются одним ответом.
// @Tags Points
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Название"
// @Param email formData string true "Email"
// @Param whatsapp formData string true "Номер WhatsApp, только цифры"
// @Param latitude formData number true "Широта"
// @Param longitude formData number true "Долгота"
// @Param city formData string true "Город"
// @Param uf formData string true "Штат, до двух символов"
// @Param items formData string true "Идентификаторы категорий через запятую"
// @Param image formData file false "Изображение пункта"
// @Success 201 {object} dto.PointResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /points [post]
func (h *PointHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePointRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Failed to parse point form", zap.Error(err))
		return utils.SendError(c, errors.NewValidationError(map[string]string{"body": "form"}))
	}

	image, err := readImage(c)
	if err != nil {
		h.logger.Error("Failed to read uploaded image", zap.Error(err))
		return utils.SendError(c, errors.NewValidationError(map[string]string{"image": "readable"}))
	}

	point, err := h.pointUC.CreatePoint(c.UserContext(), req, image)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.StatusCreated, point)
}

// readImage читает необязательный файл "image". nil, если файл не передан.
func readImage(c *fiber.Ctx) (*dto.ImageUpload, error) {
	header, err := c.FormFile("image")
	if stderrors.Is(err, fasthttp.ErrMissingFile) || stderrors.Is(err, fasthttp.ErrNoMultipartForm) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &dto.ImageUpload{
		Filename: header.Filename,
		Data:     data,
	}, nil
}
