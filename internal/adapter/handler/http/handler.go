package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkalinin/shopadmin/internal/core/domain"
	"go.uber.org/zap"
)

// response is the uniform envelope every endpoint answers with.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrForbidden:                  http.StatusForbidden,

	domain.ErrBadRequest: http.StatusBadRequest,

	domain.ErrOrderNotFound:        http.StatusNotFound,
	domain.ErrProductNotInOrder:    http.StatusNotFound,
	domain.ErrPaymentFieldsMissing: http.StatusBadRequest,
	domain.ErrPaymentDuplicate:     http.StatusConflict,
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleSuccess sends a success envelope with optional data
func (h *Handler) handleSuccess(ctx *gin.Context, message string, data any) {
	ctx.JSON(http.StatusOK, response{Success: true, Message: message, Data: data})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.JSON(statusCode, response{Success: false, Message: err.Error()})
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, response{Success: false, Message: err.Error()})
}

// handleAbort sends an error envelope and aborts the request, for middleware use
func handleAbort(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
	}
	ctx.AbortWithStatusJSON(statusCode, response{Success: false, Message: err.Error()})
}

// parseDate accepts RFC 3339 timestamps or plain dates from query strings.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t, err = time.Parse("2006-01-02", value)
		if err != nil {
			return nil, domain.ErrBadRequest
		}
	}
	return &t, nil
}
