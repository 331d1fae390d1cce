// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"

	apperrors "github.com/bfarth20/malexanderportfolio/internal/services/web/platform/errors"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/platform/httpx"
	"github.com/bfarth20/malexanderportfolio/internal/services/web/platform/pagerender"
	webtemplates "github.com/bfarth20/malexanderportfolio/internal/services/web/templates"
	"go.uber.org/zap"
)

// ShouldRenderErrorPage reports whether status should use the error page.
func ShouldRenderErrorPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// WriteError logs err and writes the matching error page.
func WriteError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, chrome webtemplates.Chrome, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if logger != nil && statusCode >= http.StatusInternalServerError {
		fields := []zap.Field{zap.Int("status", statusCode), zap.Error(err)}
		if r != nil {
			fields = append(fields,
				zap.String("path", r.URL.Path),
				zap.String("request_id", httpx.RequestIDFromContext(r.Context())),
			)
		}
		logger.Error("page request failed", fields...)
	}
	WriteStatus(w, r, chrome, statusCode)
}

// WriteStatus writes the error page for statusCode.
func WriteStatus(w http.ResponseWriter, r *http.Request, chrome webtemplates.Chrome, statusCode int) {
	if w == nil {
		return
	}
	if !ShouldRenderErrorPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	chrome.Title = webtemplates.ErrorHeading(statusCode)
	chrome.Active = ""
	view := webtemplates.ErrorView{
		StatusCode: statusCode,
		Message:    apperrors.PublicMessage(statusCode),
	}
	err := pagerender.WritePage(w, r, pagerender.Page{
		Chrome:     chrome,
		StatusCode: statusCode,
		Body:       webtemplates.ErrorPage(view),
	})
	if err != nil {
		http.Error(w, view.Message, statusCode)
	}
}
