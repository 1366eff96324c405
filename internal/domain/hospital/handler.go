package hospital

import (
	"net/http"

	"github.com/google/uuid"
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
	api.POST("/hospitals", h.Create)
	api.GET("/hospitals", h.List)
	api.GET("/hospitals/:id", h.Get)
}

func (h *Handler) Create(c echo.Context) error {
	var in Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.Create(c.Request().Context(), &in)
	if err != nil {
		return rest.WriteError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return rest.WriteError(c, rest.PatientNotFound())
	}
	found, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return rest.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, found)
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return rest.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
