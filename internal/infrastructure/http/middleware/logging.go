package middleware

import (
	stdErrors "errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/common"
)

// RequestLogger writes one structured log line per request
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// let the error handler write the status before it is logged
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			fields := []zap.Field{
				zap.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
				zap.String("method", req.Method),
				zap.String("uri", req.RequestURI),
				zap.Int("status", res.Status),
				zap.Int64("bytes_out", res.Size),
				zap.Duration("latency", time.Since(start)),
			}

			switch {
			case res.Status >= http.StatusInternalServerError:
				logger.Error("http.request", fields...)
			case res.Status >= http.StatusBadRequest:
				logger.Warn("http.request", fields...)
			default:
				logger.Info("http.request", fields...)
			}
			return nil
		}
	}
}

// ErrorHandler renders errors that escape handlers, such as echo's body
// limit and routing errors, in the API error envelope
func ErrorHandler(logger *zap.Logger, bodyLimit string) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var appErr errors.AppError
		var httpErr *echo.HTTPError
		switch {
		case stdErrors.As(err, &appErr):
		case stdErrors.As(err, &httpErr) && httpErr.Code == http.StatusRequestEntityTooLarge:
			appErr = errors.ErrPayloadTooLarge(bodyLimit)
		case stdErrors.As(err, &httpErr) && httpErr.Code == http.StatusNotFound:
			appErr = errors.ErrNotFound("route")
		case stdErrors.As(err, &httpErr):
			appErr = errors.AppError{
				HTTPCode:  httpErr.Code,
				Code:      errors.ErrorCode_INVALID_ARGUMENT,
				Message:   http.StatusText(httpErr.Code),
				Timestamp: time.Now(),
			}
		default:
			appErr = errors.ErrInternal(err)
		}

		if logger != nil && appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.unhandled_error", zap.Error(err))
		}

		body := common.ErrorResponse{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(appErr.HTTPCode)
		} else {
			err = c.JSON(appErr.HTTPCode, body)
		}
		if err != nil && logger != nil {
			logger.Error("http.error_response_failed", zap.Error(err))
		}
	}
}
