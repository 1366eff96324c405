package billing

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
	api.GET("/invoices", h.ListInvoices)
	api.POST("/invoices", h.CreateInvoice)
	api.GET("/claims", h.ListClaims)
	api.POST("/claims", h.CreateClaim)
}

func (h *Handler) CreateInvoice(c echo.Context) error {
	var in InvoiceInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	inv, err := h.svc.CreateInvoice(c.Request().Context(), &in)
	if err != nil {
		return rest.WriteError(c, err)
	}
	return c.JSON(http.StatusCreated, inv)
}

func (h *Handler) ListInvoices(c echo.Context) error {
	if q := c.QueryParam("patient_id"); q != "" {
		pid, err := uuid.Parse(q)
		if err != nil {
			return c.JSON(http.StatusOK, []*Invoice{})
		}
		items, err := h.svc.ListInvoicesByPatient(c.Request().Context(), pid)
		if err != nil {
			return rest.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, items)
	}
	items, err := h.svc.ListInvoices(c.Request().Context())
	if err != nil {
		return rest.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateClaim(c echo.Context) error {
	var in ClaimInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	cl, err := h.svc.CreateClaim(c.Request().Context(), &in)
	if err != nil {
		return rest.WriteError(c, err)
	}
	return c.JSON(http.StatusCreated, cl)
}

func (h *Handler) ListClaims(c echo.Context) error {
	if q := c.QueryParam("patient_id"); q != "" {
		pid, err := uuid.Parse(q)
		if err != nil {
			return c.JSON(http.StatusOK, []*InsuranceClaim{})
		}
		items, err := h.svc.ListClaimsByPatient(c.Request().Context(), pid)
		if err != nil {
			return rest.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, items)
	}
	items, err := h.svc.ListClaims(c.Request().Context())
	if err != nil {
		return rest.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
