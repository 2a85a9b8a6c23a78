// internal/webutil/response.go
package webutil

import (
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"

	"go_5_lesson_notes/internal/model"
)

// HandleError はエラーを解釈し、ステータスコード付きの簡易HTMLエラーページを返します。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	statusCode := MapErrorToStatusCode(err)

	message := http.StatusText(statusCode)
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	} else if statusCode == http.StatusInternalServerError {
		// 詳細はログにだけ出す
		logger.Error("Unhandled error", slog.Any("error", err))
	} else if errors.Is(err, model.ErrNotFound) {
		message = "The requested note does not exist."
	}

	RespondWithHTML(w, statusCode, fmt.Sprintf(
		"<!DOCTYPE html><html><head><title>%d %s</title></head><body><h1>%d %s</h1><p>%s</p><p><a href=\"/\">Back to notes</a></p></body></html>",
		statusCode, http.StatusText(statusCode), statusCode, http.StatusText(statusCode), html.EscapeString(message),
	))
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithHTML はHTMLをそのまま返します
func RespondWithHTML(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	w.Write([]byte(body))
}
