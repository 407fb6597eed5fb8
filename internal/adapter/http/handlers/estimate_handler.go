package handlers

import (
	"errors"
	"net/http"

	request "letterpress_ops/internal/adapter/http/dto/request"
	response "letterpress_ops/internal/adapter/http/dto/response"
	"letterpress_ops/internal/adapter/http/middleware"
	"letterpress_ops/internal/usecase"
	"letterpress_ops/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for estimates and ad-hoc pricing.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// ComputePricing godoc
// @Summary      Price a job
// @Description  Runs the cost engine without saving anything
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        payload  body      request.PricingRequest  true  "Process costs"
// @Success      200      {object}  response.QuoteResponse
// @Failure      400      {object}  map[string]interface{}
// @Security     Bearer
// @Router       /pricing/compute [post]
func (h *EstimateHandler) ComputePricing(c *gin.Context) {
	var payload request.PricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	q := h.usecase.Quote(payload.PerProcessCosts, payload.Quantity, payload.MarkupPercentage)
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// CreateEstimate godoc
// @Summary      Create an estimate
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateEstimateRequest  true  "Estimate"
// @Success      201      {object}  response.EstimateResponse
// @Failure      400      {object}  map[string]interface{}
// @Failure      403      {object}  map[string]interface{}
// @Security     Bearer
// @Router       /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.CreateEstimate(c.Request.Context(), payload.ToInput(), middleware.GetRole(c))
	if err != nil {
		respondError(c, "estimate", mapEstimateError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// GetEstimate godoc
// @Summary      Get an estimate
// @Tags         estimates
// @Produce      json
// @Param        id   path      string  true  "Estimate ID"
// @Success      200  {object}  response.EstimateResponse
// @Failure      404  {object}  map[string]interface{}
// @Security     Bearer
// @Router       /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetEstimate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "estimate", mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// ListClientEstimates godoc
// @Summary      List a client's estimates
// @Tags         clients
// @Produce      json
// @Param        client_id  path      string  true  "Client ID"
// @Success      200        {array}   response.EstimateResponse
// @Security     Bearer
// @Router       /clients/{client_id}/estimates [get]
func (h *EstimateHandler) ListClientEstimates(c *gin.Context) {
	list, err := h.usecase.ListClientEstimates(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		respondError(c, "estimate", mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(list))
}

// CancelEstimate godoc
// @Summary      Cancel an estimate
// @Tags         estimates
// @Produce      json
// @Param        id   path      string  true  "Estimate ID"
// @Success      200  {object}  response.EstimateResponse
// @Failure      409  {object}  map[string]interface{}
// @Security     Bearer
// @Router       /estimates/{id}/cancel [post]
func (h *EstimateHandler) CancelEstimate(c *gin.Context) {
	estimate, err := h.usecase.CancelEstimate(c.Request.Context(), c.Param("id"), middleware.GetRole(c))
	if err != nil {
		respondError(c, "estimate", mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// SetEscrow godoc
// @Summary      Put an estimate in or out of escrow
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Estimate ID"
// @Param        payload  body      request.EscrowRequest  true  "Escrow flag"
// @Success      200      {object}  response.EstimateResponse
// @Security     Bearer
// @Router       /estimates/{id}/escrow [post]
func (h *EstimateHandler) SetEscrow(c *gin.Context) {
	var payload request.EscrowRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.SetEscrow(c.Request.Context(), c.Param("id"), *payload.InEscrow, middleware.GetRole(c))
	if err != nil {
		respondError(c, "estimate", mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// ConvertToOrder godoc
// @Summary      Convert an estimate into an order
// @Description  Allocates an FL-YYYY-NNNNN serial and marks the estimate as moved
// @Tags         estimates
// @Produce      json
// @Param        id   path      string  true  "Estimate ID"
// @Success      201  {object}  response.OrderResponse
// @Failure      409  {object}  map[string]interface{}
// @Security     Bearer
// @Router       /estimates/{id}/convert [post]
func (h *EstimateHandler) ConvertToOrder(c *gin.Context) {
	order, err := h.usecase.ConvertToOrder(c.Request.Context(), c.Param("id"), middleware.GetRole(c))
	if err != nil {
		respondError(c, "estimate", mapEstimateError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func mapEstimateError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidQuantity):
		return errInvalidRequest.WithDetails(err.Error())
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateLocked):
		return pkg.NewDomainErrorSimple("ESTIMATE_LOCKED", "Estimate was moved to orders, canceled or is in escrow", http.StatusConflict)
	default:
		return internalError(err)
	}
}
