package insights

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
	api.GET("/patients/:patient_id/dashboard", h.Dashboard)
	api.GET("/staff/overview", h.StaffOverview)
	api.GET("/analytics", h.Analytics)
}

func (h *Handler) Dashboard(c echo.Context) error {
	pid, err := uuid.Parse(c.Param("patient_id"))
	if err != nil {
		return rest.WriteError(c, rest.PatientNotFound())
	}
	sum, err := h.svc.Dashboard(c.Request().Context(), pid)
	if err != nil {
		return rest.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, sum)
}

func (h *Handler) StaffOverview(c echo.Context) error {
	ov, err := h.svc.StaffOverview(c.Request().Context())
	if err != nil {
		return rest.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, ov)
}

func (h *Handler) Analytics(c echo.Context) error {
	an, err := h.svc.Analytics(c.Request().Context())
	if err != nil {
		return rest.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, an)
}
