package handler

import (
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/station-dashboard/internal/pkg/utils"
	"github.com/station-dashboard/internal/usecase"
	"github.com/station-dashboard/internal/usecase/dto"
	"go.uber.org/zap"
)

const plotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

//go:embed templates/*.html
var templatesFS embed.FS

// PageData - данные для шаблона страницы дашборда
type PageData struct {
	Layout      *dto.LayoutResponse
	Figures     interface{}
	PlotlyURL   string
	CallbackURL string
}

// PageHandler - хендлер для рендеринга страницы дашборда
type PageHandler struct {
	templates   *template.Template
	dashboardUC *usecase.DashboardUseCase
	logger      *zap.Logger
}

// NewPageHandler - создание нового хендлера страницы
func NewPageHandler(dashboardUC *usecase.DashboardUseCase, logger *zap.Logger) (*PageHandler, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &PageHandler{
		templates:   tmpl,
		dashboardUC: dashboardUC,
		logger:      logger,
	}, nil
}

// RenderDashboard - рендеринг страницы с начальными графиками
func (h *PageHandler) RenderDashboard(c *fiber.Ctx) error {
	initial, err := h.dashboardUC.InitialFigures()
	if err != nil {
		h.logger.Error("Failed to build initial figures", zap.Error(err))
		return utils.SendError(c, err)
	}

	data := PageData{
		Layout:      h.dashboardUC.Layout(),
		Figures:     initial.Figures,
		PlotlyURL:   plotlyURL,
		CallbackURL: "/api/v1/callbacks",
	}

	c.Set("Content-Type", "text/html; charset=utf-8")
	return h.templates.ExecuteTemplate(c.Response().BodyWriter(), "dashboard.html", data)
}
