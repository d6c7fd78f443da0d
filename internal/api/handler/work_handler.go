package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/studiobill/invoice-system/internal/api/metrics"
	"github.com/studiobill/invoice-system/internal/core/domain"
	"github.com/studiobill/invoice-system/internal/core/ports"
)

// WorkHandler handles work entry logging and scoped reads.
type WorkHandler struct {
	service ports.WorkEntryService
}

func NewWorkHandler(service ports.WorkEntryService) *WorkHandler {
	return &WorkHandler{service: service}
}

// --- Request / Response types ---

type createWorkEntryRequest struct {
	ProjectID string `json:"project_id"`
	Category  string `json:"category" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Date      string `json:"date"     validate:"required,datetime=2006-01-02"`
}

type workEntryResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Username    string `json:"username,omitempty"`
	ProjectID   string `json:"project_id,omitempty"`
	ProjectName string `json:"project_name,omitempty"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
	Date        string `json:"date"`
}

type workEntryListResponse struct {
	Entries []workEntryResponse `json:"entries"`
}

type dashboardResponse struct {
	Entries  []workEntryResponse `json:"entries"`
	Rates    map[string]string   `json:"rates"`
	Projects []*domain.Project   `json:"projects"`
}

func toWorkEntryResponse(v ports.WorkEntryView) workEntryResponse {
	return workEntryResponse{
		ID:          v.Entry.ID,
		UserID:      v.Entry.UserID,
		Username:    v.Username,
		ProjectID:   v.Entry.ProjectID,
		ProjectName: v.ProjectName,
		Category:    v.Entry.Category,
		Quantity:    v.Entry.Quantity,
		Date:        v.Entry.Date.Format(dateLayout),
	}
}

// Create logs a work entry for the acting member.
//
// @Summary      Log a work entry
// @Tags         work-entries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createWorkEntryRequest  true  "Work entry details"
// @Success      201   {object}  workEntryResponse
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/work-entries [post]
func (h *WorkHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createWorkEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return domain.NewValidationError("date", "must be a date in YYYY-MM-DD format")
	}

	entry, err := h.service.Create(c.Request().Context(), actor, ports.CreateWorkEntryInput{
		ProjectID: req.ProjectID,
		Category:  req.Category,
		Quantity:  req.Quantity,
		Date:      date,
	})
	if err != nil {
		return err
	}

	metrics.WorkEntriesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, workEntryResponse{
		ID:        entry.ID,
		UserID:    entry.UserID,
		ProjectID: entry.ProjectID,
		Category:  entry.Category,
		Quantity:  entry.Quantity,
		Date:      entry.Date.Format(dateLayout),
	})
}

// List returns the work entries inside the actor's scope, newest first.
//
// @Summary      List work entries
// @Tags         work-entries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  workEntryListResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/work-entries [get]
func (h *WorkHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	views, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	entries := make([]workEntryResponse, 0, len(views))
	for _, v := range views {
		entries = append(entries, toWorkEntryResponse(v))
	}

	return c.JSON(http.StatusOK, workEntryListResponse{Entries: entries})
}

// Dashboard returns the admin overview: team entries, rates and projects.
//
// @Summary      Admin dashboard
// @Tags         work-entries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/dashboard [get]
func (h *WorkHandler) Dashboard(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	result, err := h.service.Dashboard(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	entries := make([]workEntryResponse, 0, len(result.Entries))
	for _, v := range result.Entries {
		entries = append(entries, toWorkEntryResponse(v))
	}

	rates := make(map[string]string, len(result.Rates))
	for category, rate := range result.Rates {
		rates[category] = rate.StringFixed(2)
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		Entries:  entries,
		Rates:    rates,
		Projects: result.Projects,
	})
}
