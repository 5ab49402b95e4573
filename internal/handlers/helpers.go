package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "phonebot/internal/errors"
	"phonebot/internal/logger"
	"phonebot/internal/middleware"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid path parameter"`
}

// respondWithError writes {"error": "..."}. AppErrors keep their status code;
// for internal faults the text is the underlying error. Any other error is
// logged and returned as a 500 with its own text.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
				"request_id", middleware.RequestID(c),
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{Error: appErr.Description()})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", middleware.RequestID(c),
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{Error: err.Error()})
}

// invalidInput wraps a binding failure as a 400.
func invalidInput(err error) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}
