package handlers

import (
	"errors"
	"log"
	"net/http"

	request "letterpress_ops/internal/adapter/http/dto/request"
	response "letterpress_ops/internal/adapter/http/dto/response"
	"letterpress_ops/internal/adapter/http/middleware"
	"letterpress_ops/internal/usecase"
	"letterpress_ops/pkg"

	"github.com/gin-gonic/gin"
)

// VersionHandler moves a client's estimates between versions.
type VersionHandler struct {
	usecase usecase.IVersionTransferUseCase
}

func NewVersionHandler(uc usecase.IVersionTransferUseCase) *VersionHandler {
	return &VersionHandler{usecase: uc}
}

// TransferVersions godoc
// @Summary      Move selected estimates to another version
// @Description  Returns 207 when some updates failed; those that succeeded stay applied
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        client_id  path      string                          true  "Client ID"
// @Param        payload    body      request.VersionTransferRequest  true  "Selection and target version"
// @Success      200        {object}  response.VersionTransferResponse
// @Success      207        {object}  response.VersionTransferResponse
// @Failure      400        {object}  map[string]interface{}
// @Security     Bearer
// @Router       /clients/{client_id}/versions/transfer [post]
func (h *VersionHandler) TransferVersions(c *gin.Context) {
	var payload request.VersionTransferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	log.Printf("[version][handler] transfer requested client_id=%s target=%s actor=%s", c.Param("client_id"), payload.TargetVersion, actor(c))
	n, err := h.usecase.TransferClientVersions(
		c.Request.Context(),
		c.Param("client_id"),
		payload.ToSelection(),
		payload.TargetVersion,
		payload.CurrentVersion,
		middleware.GetRole(c),
	)
	if err != nil {
		var batch *usecase.PartialBatchFailure
		if errors.As(err, &batch) && n > 0 {
			c.JSON(http.StatusMultiStatus, response.FromTransferResult(n, batch))
			return
		}
		respondError(c, "version", mapVersionError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromTransferResult(n, nil))
}

// VersionStatistics godoc
// @Summary      Count a client's estimates per version
// @Tags         clients
// @Produce      json
// @Param        client_id  path      string  true  "Client ID"
// @Success      200        {object}  usecase.VersionStatistics
// @Security     Bearer
// @Router       /clients/{client_id}/versions/stats [get]
func (h *VersionHandler) VersionStatistics(c *gin.Context) {
	stats, err := h.usecase.VersionStatistics(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		respondError(c, "version", mapVersionError(err))
		return
	}
	if stats.VersionBreakdown == nil {
		stats.VersionBreakdown = []usecase.VersionCount{}
	}
	c.JSON(http.StatusOK, stats)
}

func mapVersionError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID):
		return errInvalidRequest.WithDetails(err.Error())
	default:
		return internalError(err)
	}
}
