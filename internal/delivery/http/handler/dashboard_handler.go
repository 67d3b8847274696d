package handler

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/station-dashboard/internal/domain"
	apperrors "github.com/station-dashboard/internal/pkg/errors"
	"github.com/station-dashboard/internal/pkg/utils"
	"github.com/station-dashboard/internal/pkg/validator"
	"github.com/station-dashboard/internal/render"
	"github.com/station-dashboard/internal/usecase"
	"github.com/station-dashboard/internal/usecase/dto"
	"go.uber.org/zap"
)

// DashboardHandler обрабатывает запросы графиков и событий выпадающих списков
type DashboardHandler struct {
	dashboardUC *usecase.DashboardUseCase
	logger      *zap.Logger
}

// NewDashboardHandler создает новый экземпляр DashboardHandler
func NewDashboardHandler(dashboardUC *usecase.DashboardUseCase, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		logger:      logger,
	}
}

// GetLayout godoc
// @Summary Page layout
// @Description Headings, dropdowns with their options and the charts each dropdown drives
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.LayoutResponse}
// @Router /api/v1/layout [get]
func (h *DashboardHandler) GetLayout(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.dashboardUC.Layout(), nil)
}

// GetFigures godoc
// @Summary Initial figures
// @Description Every chart with both dropdowns cleared
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.FiguresResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/figures [get]
func (h *DashboardHandler) GetFigures(c *fiber.Ctx) error {
	figures, err := h.dashboardUC.InitialFigures()
	if err != nil {
		h.logger.Error("Failed to build figures", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, figures, &utils.Meta{Total: len(figures.Figures)})
}

// GetFigure godoc
// @Summary One figure
// @Description Builds one chart. value filters the chart by its dropdown; the map ignores it.
// @Tags Dashboard
// @Produce json
// @Param chart_id path string true "Chart ID" Enums(bar-chart, pie-chart, bar-chart2, bar-chart3, map-graph)
// @Param value query string false "Dropdown value"
// @Success 200 {object} utils.SuccessResponse{data=figure.Figure}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/figures/{chart_id} [get]
func (h *DashboardHandler) GetFigure(c *fiber.Ctx) error {
	chart := domain.ChartID(c.Params("chart_id"))

	fig, err := h.dashboardUC.Figure(chart, queryFilter(c))
	if err != nil {
		h.logger.Debug("Failed to build figure", zap.String("chart", string(chart)), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fig, nil)
}

// GetFigurePNG godoc
// @Summary Figure as PNG
// @Description Renders one chart as a static PNG image
// @Tags Dashboard
// @Produce png
// @Param chart_id path string true "Chart ID"
// @Param value query string false "Dropdown value"
// @Param width query int false "Image width" minimum(200) maximum(4096)
// @Param height query int false "Image height" minimum(200) maximum(4096)
// @Success 200 {file} binary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/figures/{chart_id}/png [get]
func (h *DashboardHandler) GetFigurePNG(c *fiber.Ctx) error {
	var q dto.ImageQuery
	if err := c.QueryParser(&q); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest.Wrap(err))
	}
	if err := validator.Validate(q); err != nil {
		return utils.SendError(c, err)
	}

	chart := domain.ChartID(c.Params("chart_id"))
	fig, err := h.dashboardUC.Figure(chart, queryFilter(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	var buf bytes.Buffer
	if err := render.PNG(&buf, fig, q.Width, q.Height); err != nil {
		h.logger.Warn("Failed to render figure", zap.String("chart", string(chart)), zap.Error(err))
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(buf.Bytes())
}

// Callback godoc
// @Summary Dropdown change
// @Description Recomputes every chart bound to the changed dropdown. A null or empty value clears the dropdown.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body dto.CallbackRequest true "Changed dropdown"
// @Success 200 {object} utils.SuccessResponse{data=dto.CallbackResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/callbacks [post]
func (h *DashboardHandler) Callback(c *fiber.Ctx) error {
	var req dto.CallbackRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest.Wrap(err))
	}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.dashboardUC.Dispatch(req)
	if err != nil {
		h.logger.Debug("Callback failed", zap.String("input", req.Input), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}

// queryFilter - значение фильтра из ?value=, пустое или отсутствующее сбрасывает фильтр
func queryFilter(c *fiber.Ctx) domain.Filter {
	return domain.FilterFromValue(c.Query("value"))
}
