package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/studiobill/invoice-system/internal/core/domain"
	"github.com/studiobill/invoice-system/internal/core/ports"
)

// PriceHandler handles category rate CRUD.
type PriceHandler struct {
	service ports.PriceService
}

func NewPriceHandler(service ports.PriceService) *PriceHandler {
	return &PriceHandler{service: service}
}

// --- Request / Response types ---

type createPriceRequest struct {
	Category string `json:"category" validate:"required"`
	Rate     string `json:"rate"     validate:"required"`
}

type updatePriceRequest struct {
	Category *string `json:"category,omitempty"`
	Rate     *string `json:"rate,omitempty"`
}

type priceListResponse struct {
	Prices []*domain.Price `json:"prices"`
}

func parseRate(raw string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, domain.NewValidationError("rate", "must be a decimal number")
	}
	return rate, nil
}

// Create registers a new category rate for the acting admin.
//
// @Summary      Create a price
// @Tags         prices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPriceRequest  true  "Price details"
// @Success      201   {object}  domain.Price
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/prices [post]
func (h *PriceHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createPriceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	rate, err := parseRate(req.Rate)
	if err != nil {
		return err
	}

	price, err := h.service.Create(c.Request().Context(), actor, ports.CreatePriceInput{
		Category: req.Category,
		Rate:     rate,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, price)
}

// List returns the rates inside the actor's scope.
//
// @Summary      List prices
// @Tags         prices
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  priceListResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/prices [get]
func (h *PriceHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	prices, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, priceListResponse{Prices: prices})
}

// Update modifies a rate owned by the actor.
//
// @Summary      Update a price
// @Tags         prices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Price ID"
// @Param        body  body      updatePriceRequest  true  "Fields to update"
// @Success      200   {object}  domain.Price
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/prices/{id} [put]
func (h *PriceHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updatePriceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	input := ports.UpdatePriceInput{Category: req.Category}
	if req.Rate != nil {
		rate, err := parseRate(*req.Rate)
		if err != nil {
			return err
		}
		input.Rate = &rate
	}

	price, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, price)
}

// Delete removes a rate owned by the actor.
//
// @Summary      Delete a price
// @Tags         prices
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Price ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/prices/{id} [delete]
func (h *PriceHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
