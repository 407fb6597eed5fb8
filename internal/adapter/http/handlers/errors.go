package handlers

import (
	"errors"
	"log"
	"net/http"

	"letterpress_ops/internal/usecase"
	"letterpress_ops/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errForbidden      = pkg.NewDomainErrorSimple("FORBIDDEN", "Your role is not allowed to perform this operation", http.StatusForbidden)
)

// mapCommonError covers the errors every use case can return. It reports
// false when err needs a handler-specific mapping.
func mapCommonError(err error) (*pkg.AppError, bool) {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return errInvalidRequest.WithDetails(verr.Error()), true
	case errors.Is(err, usecase.ErrForbiddenRole):
		return errForbidden, true
	}
	return nil, false
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func respondError(c *gin.Context, area string, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[%s][handler] %s %s failed err=%v", area, c.Request.Method, c.FullPath(), appErr)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
