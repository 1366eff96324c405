package demorequest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sereddy-768/hms-backend/internal/platform/rest"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/demo-requests", h.Create)
	api.GET("/demo-requests", h.List)
}

func (h *Handler) Create(c echo.Context) error {
	var in Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	dr, err := h.svc.Create(c.Request().Context(), &in)
	if err != nil {
		return rest.WriteError(c, err)
	}
	return c.JSON(http.StatusCreated, dr)
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return rest.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
