package appointment

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
	api.POST("/appointments", h.Create)
	api.GET("/appointments", h.List)
	api.GET("/appointments/:id", h.Get)
	api.PUT("/appointments/:id", h.Update)
}

func (h *Handler) Create(c echo.Context) error {
	var in Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.Create(c.Request().Context(), &in)
	if err != nil {
		return rest.WriteError(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) List(c echo.Context) error {
	if q := c.QueryParam("patient_id"); q != "" {
		pid, err := uuid.Parse(q)
		if err != nil {
			return c.JSON(http.StatusOK, []*Appointment{})
		}
		items, err := h.svc.ListByPatient(c.Request().Context(), pid)
		if err != nil {
			return rest.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, items)
	}
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return rest.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return rest.WriteError(c, rest.PatientNotFound())
	}
	a, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return rest.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return rest.WriteError(c, rest.PatientNotFound())
	}
	var in Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.Update(c.Request().Context(), id, &in)
	if err != nil {
		return rest.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}
