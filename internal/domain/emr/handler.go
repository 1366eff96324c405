package emr

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
	api.GET("/patients/:patient_id/emr", h.Get)
	api.PUT("/patients/:patient_id/emr", h.Update)
}

func (h *Handler) Get(c echo.Context) error {
	pid, err := uuid.Parse(c.Param("patient_id"))
	if err != nil {
		return rest.WriteError(c, rest.PatientNotFound())
	}
	rec, err := h.svc.Get(c.Request().Context(), pid)
	if err != nil {
		return rest.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) Update(c echo.Context) error {
	pid, err := uuid.Parse(c.Param("patient_id"))
	if err != nil {
		return rest.WriteError(c, rest.PatientNotFound())
	}
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rec, err := h.svc.Update(c.Request().Context(), pid, fields)
	if err != nil {
		return rest.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}
