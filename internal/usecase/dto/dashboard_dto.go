package dto

import (
	"github.com/station-dashboard/internal/domain"
	"github.com/station-dashboard/internal/figure"
)

// CallbackRequest - событие изменения значения выпадающего списка
type CallbackRequest struct {
	Input string  `json:"input" validate:"required"`
	Value *string `json:"value"` // null или "" сбрасывает фильтр
}

// CallbackResponse - пересчитанные графики
type CallbackResponse struct {
	Input   string                            `json:"input"`
	Value   *string                           `json:"value"`
	Outputs map[domain.ChartID]*figure.Figure `json:"outputs"`
}

// FiguresResponse - все графики страницы
type FiguresResponse struct {
	Figures map[domain.ChartID]*figure.Figure `json:"figures"`
}

// LayoutResponse - структура страницы дашборда
type LayoutResponse struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// Section - заголовок, необязательный фильтр и графики под ним
type Section struct {
	Heading  string      `json:"heading"`
	Dropdown *Dropdown   `json:"dropdown,omitempty"`
	Charts   []ChartSlot `json:"charts"`
}

type Dropdown struct {
	ID          domain.InputID   `json:"id"`
	Placeholder string           `json:"placeholder"`
	Options     []Option         `json:"options"`
	Outputs     []domain.ChartID `json:"outputs"`
}

type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type ChartSlot struct {
	ID   domain.ChartID `json:"id"`
	Half bool           `json:"half,omitempty"` // рядом с соседним графиком
}

// ImageQuery - размеры PNG изображения графика
type ImageQuery struct {
	Width  int `query:"width" validate:"omitempty,min=200,max=4096"`
	Height int `query:"height" validate:"omitempty,min=200,max=4096"`
}
