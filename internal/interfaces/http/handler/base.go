// Package handler contains the gin HTTP handlers for the catalog API.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	productapp "github.com/shopsync/backend/internal/application/product"
	"github.com/shopsync/backend/internal/domain/shared"
	"github.com/shopsync/backend/internal/domain/shopify"
	"github.com/shopsync/backend/internal/interfaces/http/dto"
	"github.com/shopsync/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a success response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, perPage int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, perPage))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with an explicit status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, middleware.GetRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleError converts domain, sync and platform errors to HTTP
// responses. Unknown error types surface as a 500 without leaking the
// underlying message.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, dto.GetHTTPStatus(domainErr.Code), domainErr.Code, domainErr.Message)
		return
	}

	switch {
	case errors.Is(err, shopify.ErrUnauthorized):
		h.Error(c, dto.GetHTTPStatus(dto.ErrCodeUpstreamUnauthorized), dto.ErrCodeUpstreamUnauthorized, "Shopify rejected the configured credentials")
		return
	case errors.Is(err, shopify.ErrRateLimited):
		h.Error(c, dto.GetHTTPStatus(dto.ErrCodeUpstreamRateLimited), dto.ErrCodeUpstreamRateLimited, "Shopify rate limit exceeded, retry later")
		return
	case errors.Is(err, shopify.ErrProductNotFound):
		h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, "Product not found on Shopify")
		return
	}

	var syncErr *productapp.SyncError
	if errors.As(err, &syncErr) {
		h.Error(c, dto.GetHTTPStatus(dto.ErrCodeSyncFailed), dto.ErrCodeSyncFailed, syncErr.Error())
		return
	}

	h.InternalError(c, "An unexpected error occurred")
}
