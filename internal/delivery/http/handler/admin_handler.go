package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ecotravel-admin/internal/delivery/http/middleware"
	apperrors "github.com/ecotravel-admin/internal/pkg/errors"
	"github.com/ecotravel-admin/internal/pkg/utils"
	"github.com/ecotravel-admin/internal/usecase"
	"github.com/ecotravel-admin/internal/usecase/dto"
	"github.com/ecotravel-admin/internal/usecase/page"
)

// AdminHandler - служебные эндпоинты: состояния страниц и журнал действий
type AdminHandler struct {
	auditUC *usecase.AuditUseCase
	pages   *page.Registry
	logger  *zap.Logger
}

// NewAdminHandler создает AdminHandler; auditUC может быть nil, если Postgres не настроен
func NewAdminHandler(auditUC *usecase.AuditUseCase, pages *page.Registry, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		auditUC: auditUC,
		pages:   pages,
		logger:  logger,
	}
}

// Health godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *AdminHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
	})
}

// Pages godoc
// @Summary Page states
// @Description Состояния страниц текущей сессии, all=true - всех сессий
// @Tags System
// @Produce json
// @Param all query bool false "All sessions"
// @Success 200 {object} utils.SuccessResponse{data=dto.PagesResponse}
// @Router /api/v1/pages [get]
func (h *AdminHandler) Pages(c *fiber.Ctx) error {
	session := middleware.SessionID(c)
	if c.QueryBool("all") {
		session = ""
	}

	states := h.pages.States(session)
	return utils.SendSuccess(c, dto.PagesResponse{
		SessionID: session,
		Pages:     states,
	}, &utils.Meta{Total: len(states)})
}

// Audit godoc
// @Summary Admin audit log
// @Tags System
// @Produce json
// @Param resource query string false "booking, location or transport"
// @Param entity_id query string false "Entity ID"
// @Param limit query int false "1..500, default 50"
// @Success 200 {object} utils.SuccessResponse{data=dto.AuditListResponse}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/audit [get]
func (h *AdminHandler) Audit(c *fiber.Ctx) error {
	if h.auditUC == nil {
		return utils.SendError(c, apperrors.ErrDatabaseError.
			WithMessage("Audit log is not configured").
			WithStatus(fiber.StatusServiceUnavailable))
	}

	var req dto.AuditListRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest.Wrap(err))
	}

	res, err := h.auditUC.List(c.UserContext(), req)
	if err != nil {
		h.logger.Error("Failed to list audit entries", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, res, &utils.Meta{Total: res.Count})
}
