package handler

import (
	"context"

	"github.com/collection-points/internal/pkg/utils"
	"github.com/collection-points/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ItemService interface {
	ListItems(ctx context.Context) ([]dto.CategoryResponse, error)
}

// ItemHandler - обработчик справочника категорий
type ItemHandler struct {
	itemUC ItemService
	logger *zap.Logger
}

func NewItemHandler(itemUC ItemService, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{
		itemUC: itemUC,
		logger: logger,
	}
}

// Index godoc
// @Summary Список категорий материалов
// @Description Возвращает все категории с абсолютными URL иконок
// @Tags Items
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /items [get]
func (h *ItemHandler) Index(c *fiber.Ctx) error {
	items, err := h.itemUC.ListItems(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, items)
}
