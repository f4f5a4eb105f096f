package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/paramkit/core"
	"github.com/dmitrymomot/paramkit/pkg/binder"
	"github.com/dmitrymomot/paramkit/pkg/logger"
	"github.com/dmitrymomot/paramkit/pkg/reqparams"
	"github.com/dmitrymomot/paramkit/pkg/requestid"
)

// ErrorHandler writes the response for a request whose parameters could not
// be extracted or validated.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Code       string
	Message    string
	Field      string
	Source     string
	LogLevel   slog.Level
}

// SourceError tags an error with the parameter source it came from
// ("query", "body", "headers").
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string { return e.Source + " parameters: " + e.Err.Error() }

func (e *SourceError) Unwrap() error { return e.Err }

var validationCodes = map[error]string{
	reqparams.ErrMissingParameter:      "missing_parameter",
	reqparams.ErrUnrecognizedParameter: "unrecognized_parameter",
	reqparams.ErrInvalidParameterValue: "invalid_parameter_value",
	reqparams.ErrInvalidParameterType:  "invalid_parameter_type",
}

func fromHTTPError(httpErr core.HTTPError, message string) ErrorInfo {
	if message == "" {
		message = http.StatusText(httpErr.Code)
	}
	return ErrorInfo{StatusCode: httpErr.Code, Code: httpErr.Key, Message: message}
}

// determineLogLevel maps HTTP status codes to appropriate log levels
func determineLogLevel(statusCode int) slog.Level {
	if statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// ClassifyError maps an error to the response it should produce. Input
// problems become 4xx responses carrying the error text; anything else is a
// 500 whose details stay in the logs.
func ClassifyError(err error) ErrorInfo {
	info := fromHTTPError(core.ErrInternalServerError, "An error occurred processing your request")

	var httpErr core.HTTPError
	if errors.As(err, &httpErr) {
		info = fromHTTPError(httpErr, "")
	}

	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		info = fromHTTPError(core.ErrUnsupportedMediaType, err.Error())
	case errors.Is(err, binder.ErrBodyTooLarge):
		info = fromHTTPError(core.ErrRequestEntityTooLarge, err.Error())
	case errors.Is(err, binder.ErrMissingContentType),
		errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParseForm),
		errors.Is(err, binder.ErrFailedToParseQuery):
		info = fromHTTPError(core.ErrBadRequest, err.Error())
	}

	// validation errors override everything else
	if verr, ok := reqparams.AsValidationError(err); ok {
		info = ErrorInfo{
			StatusCode: verr.StatusCode(),
			Code:       validationCodes[verr.Kind],
			Message:    verr.Error(),
			Field:      verr.Field,
		}
	}

	var srcErr *SourceError
	if errors.As(err, &srcErr) {
		info.Source = srcErr.Source
	}

	info.LogLevel = determineLogLevel(info.StatusCode)
	return info
}

// logError logs the error with comprehensive context
func logError(log *slog.Logger, r *http.Request, err error, info ErrorInfo) {
	attrs := []slog.Attr{
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		logger.StatusCode(info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Component("error_handler"),
	}
	if info.Source != "" {
		attrs = append(attrs, logger.Source(info.Source))
	}
	if info.Field != "" {
		attrs = append(attrs, logger.Field(info.Field))
	}
	log.LogAttrs(r.Context(), info.LogLevel, "request error", attrs...)
}

// NewErrorHandler creates the default error handler. It logs the error and
// answers with a JSON body:
//
//	{"error": {"code": "missing_parameter", "message": "missing parameter: page",
//	           "field": "page", "source": "query", "request_id": "..."}}
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	return func(w http.ResponseWriter, r *http.Request, err error) {
		info := ClassifyError(err)
		logError(log, r, err, info)

		resp := JSON(JSONResponse{Error: &ErrorDetail{
			Code:      info.Code,
			Message:   info.Message,
			Field:     info.Field,
			Source:    info.Source,
			RequestID: requestid.FromContext(r.Context()),
		}}, WithJSONStatus(info.StatusCode))

		if renderErr := resp.Render(w, r); renderErr != nil {
			log.Error("failed to render error response",
				logger.RequestID(requestid.FromContext(r.Context())),
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}
