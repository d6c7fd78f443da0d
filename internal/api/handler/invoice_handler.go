package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/studiobill/invoice-system/internal/api/metrics"
	"github.com/studiobill/invoice-system/internal/core/ports"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// InvoiceHandler serves generated invoice documents.
type InvoiceHandler struct {
	service ports.InvoiceService
}

func NewInvoiceHandler(service ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// Generate builds and streams the invoice workbook for a project.
//
// @Summary      Generate a project invoice
// @Tags         invoices
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        id  path  string  true  "Project ID"
// @Success      200  {file}    binary
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /v1/projects/{id}/invoice [get]
func (h *InvoiceHandler) Generate(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := h.service.Generate(c.Request().Context(), actor, c.Param("id"))
	metrics.InvoiceGenerationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.InvoicesGeneratedTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.InvoicesGeneratedTotal.WithLabelValues("ok").Inc()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, result.Filename))
	return c.Blob(http.StatusOK, xlsxContentType, result.Content)
}
