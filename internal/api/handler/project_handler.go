package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/studiobill/invoice-system/internal/core/domain"
	"github.com/studiobill/invoice-system/internal/core/ports"
)

const dateLayout = "2006-01-02"

// ProjectHandler handles client project CRUD.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// --- Request / Response types ---

type createProjectRequest struct {
	Name          string `json:"name"           validate:"required"`
	StartDate     string `json:"start_date"     validate:"required,datetime=2006-01-02"`
	EndDate       string `json:"end_date"       validate:"omitempty,datetime=2006-01-02"`
	AttachmentURL string `json:"attachment_url" validate:"omitempty,url"`
}

type updateProjectRequest struct {
	Name          *string `json:"name,omitempty"`
	StartDate     *string `json:"start_date,omitempty"     validate:"omitempty,datetime=2006-01-02"`
	EndDate       *string `json:"end_date,omitempty"       validate:"omitempty,datetime=2006-01-02"`
	AttachmentURL *string `json:"attachment_url,omitempty" validate:"omitempty,url"`
	ManagedBy     *string `json:"managed_by,omitempty"`
}

type projectListResponse struct {
	Projects []*domain.Project `json:"projects"`
}

// Create registers a new project owned by the acting admin.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return domain.NewValidationError("start_date", "must be a date in YYYY-MM-DD format")
	}
	var end *time.Time
	if req.EndDate != "" {
		t, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return domain.NewValidationError("end_date", "must be a date in YYYY-MM-DD format")
		}
		end = &t
	}

	project, err := h.service.Create(c.Request().Context(), actor, ports.CreateProjectInput{
		Name:          req.Name,
		StartDate:     start,
		EndDate:       end,
		AttachmentURL: req.AttachmentURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, project)
}

// List returns the projects inside the actor's scope.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  projectListResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	projects, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projectListResponse{Projects: projects})
}

// Selectable returns the projects the actor may log work against.
//
// @Summary      List selectable projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  projectListResponse
// @Router       /v1/projects/selectable [get]
func (h *ProjectHandler) Selectable(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	projects, err := h.service.Selectable(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projectListResponse{Projects: projects})
}

// Get returns one project by id.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Project ID"
// @Success      200  {object}  domain.Project
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	project, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, project)
}

// Update modifies a project owned by the actor.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project ID"
// @Param        body  body      updateProjectRequest  true  "Fields to update"
// @Success      200   {object}  domain.Project
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.UpdateProjectInput{
		Name:          req.Name,
		AttachmentURL: req.AttachmentURL,
		ManagedBy:     req.ManagedBy,
	}
	if req.StartDate != nil {
		t, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			return domain.NewValidationError("start_date", "must be a date in YYYY-MM-DD format")
		}
		input.StartDate = &t
	}
	if req.EndDate != nil {
		t, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			return domain.NewValidationError("end_date", "must be a date in YYYY-MM-DD format")
		}
		input.EndDate = &t
	}

	project, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, project)
}

// Delete removes a project owned by the actor.
//
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Project ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
