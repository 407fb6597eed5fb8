package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "letterpress_ops/internal/adapter/http/dto/request"
	response "letterpress_ops/internal/adapter/http/dto/response"
	"letterpress_ops/internal/adapter/http/middleware"
	"letterpress_ops/internal/usecase"
	"letterpress_ops/pkg"

	"github.com/gin-gonic/gin"
)

const artworkFormField = "file"

// OrderHandler handles the production board.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// ListOrders godoc
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Param        sort   query     string  false  "serial to sort by order serial"
// @Param        order  query     string  false  "asc or desc"
// @Success      200    {array}   response.OrderResponse
// @Security     Bearer
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	opts := usecase.OrderListOptions{
		SortBySerial: strings.EqualFold(c.Query("sort"), "serial"),
		Descending:   strings.EqualFold(c.Query("order"), "desc"),
	}

	orders, err := h.usecase.ListOrders(c.Request.Context(), opts)
	if err != nil {
		respondError(c, "order", mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// Dashboard godoc
// @Summary      Order KPIs and per-stage counts
// @Tags         orders
// @Produce      json
// @Success      200  {object}  response.DashboardResponse
// @Security     Bearer
// @Router       /orders/dashboard [get]
func (h *OrderHandler) Dashboard(c *gin.Context) {
	d, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, "order", mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(d))
}

// GetOrder godoc
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  map[string]interface{}
// @Security     Bearer
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "order", mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ChangeStage godoc
// @Summary      Move an order to another stage
// @Description  Set exactly one of target_stage, clicked_stage (progress indicator rule) or undo
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Order ID"
// @Param        payload  body      request.StageChangeRequest  true  "Stage change"
// @Success      200      {object}  response.OrderResponse
// @Failure      409      {object}  map[string]interface{}
// @Security     Bearer
// @Router       /orders/{id}/stage [post]
func (h *OrderHandler) ChangeStage(c *gin.Context) {
	var payload request.StageChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	mode, stage, err := payload.Resolve()
	if err != nil {
		respondError(c, "order", errInvalidRequest.WithDetails(err.Error()))
		return
	}

	ctx := c.Request.Context()
	role := middleware.GetRole(c)

	order, err := h.usecase.GetOrder(ctx, c.Param("id"))
	if err != nil {
		respondError(c, "order", mapOrderError(err))
		return
	}

	var req usecase.TransitionRequest
	switch mode {
	case request.StageModeIndicator:
		req, err = h.usecase.RequestIndicatorClick(order, stage, role)
	case request.StageModeUndo:
		prev, ok := order.Stage.Previous()
		if !ok {
			err = usecase.ErrNoTransitionTarget
			break
		}
		req, err = h.usecase.RequestTransition(order, prev, role)
	default:
		req, err = h.usecase.RequestTransition(order, stage, role)
	}
	if err != nil {
		respondError(c, "order", mapOrderError(err))
		return
	}

	log.Printf("[order][handler] transition requested order_id=%s from=%q to=%q request_id=%s actor=%s", req.OrderID, req.From, req.To, req.ID, actor(c))
	updated, err := h.usecase.ConfirmTransition(ctx, req)
	if err != nil {
		respondError(c, "order", mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(updated))
}

// AssignProduction godoc
// @Summary      Assign an order to a production staff member
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Order ID"
// @Param        payload  body      request.AssignmentRequest  true  "Assignment"
// @Success      200      {object}  response.OrderResponse
// @Security     Bearer
// @Router       /orders/{id}/assignment [post]
func (h *OrderHandler) AssignProduction(c *gin.Context) {
	var payload request.AssignmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	deadline, err := payload.ResolveDeadline()
	if err != nil {
		respondError(c, "order", errInvalidRequest.WithDetails(err.Error()))
		return
	}

	order, err := h.usecase.AssignProduction(c.Request.Context(), c.Param("id"), strings.TrimSpace(payload.StaffID), deadline, middleware.GetRole(c))
	if err != nil {
		respondError(c, "order", mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// UploadArtwork godoc
// @Summary      Upload artwork for an order
// @Description  PNG, JPEG or PDF up to 10MB
// @Tags         orders
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "Order ID"
// @Param        file  formData  file    true  "Artwork file"
// @Success      201   {object}  response.ArtworkResponse
// @Failure      400   {object}  map[string]interface{}
// @Security     Bearer
// @Router       /orders/{id}/artwork [post]
func (h *OrderHandler) UploadArtwork(c *gin.Context) {
	fileHeader, err := c.FormFile(artworkFormField)
	if err != nil {
		respondError(c, "order", errInvalidRequest.WithDetails("no file uploaded"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, "order", internalError(err))
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Printf("[order][handler] failed to close upload err=%v", closeErr)
		}
	}()

	link, err := h.usecase.UploadArtwork(c.Request.Context(), c.Param("id"), fileHeader.Filename, fileHeader.Size, file, middleware.GetRole(c))
	if err != nil {
		respondError(c, "order", mapOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromArtworkLink(link))
}

// ListArtwork godoc
// @Summary      List an order's artwork with presigned URLs
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {array}   response.ArtworkResponse
// @Security     Bearer
// @Router       /orders/{id}/artwork [get]
func (h *OrderHandler) ListArtwork(c *gin.Context) {
	links, err := h.usecase.ListArtwork(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "order", mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromArtworkLinks(links))
}

func mapOrderError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidStage),
		errors.Is(err, usecase.ErrInvalidDeadline),
		errors.Is(err, usecase.ErrEmptyArtwork),
		errors.Is(err, usecase.ErrUnsupportedArtworkType),
		errors.Is(err, usecase.ErrStaffNotAssignable):
		return errInvalidRequest.WithDetails(err.Error())
	case errors.Is(err, usecase.ErrArtworkTooLarge):
		return pkg.NewDomainErrorSimple("ARTWORK_TOO_LARGE", "File size exceeds 10MB limit", http.StatusRequestEntityTooLarge)
	case errors.Is(err, usecase.ErrArtworkUnavailable):
		return pkg.NewDomainErrorSimple("ARTWORK_UNAVAILABLE", "Artwork storage is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStaffNotFound):
		return pkg.NewDomainErrorSimple("STAFF_NOT_FOUND", "Staff member not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoTransitionTarget):
		return pkg.NewDomainErrorSimple("NO_TRANSITION_TARGET", "There is no stage to move to", http.StatusConflict)
	case errors.Is(err, usecase.ErrTransitionInFlight):
		return pkg.NewDomainErrorSimple("TRANSITION_IN_FLIGHT", "A stage change for this order is already in progress", http.StatusConflict)
	default:
		return internalError(err)
	}
}

