package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestLoggingMiddleware_LevelByStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "2xx は INFO", status: http.StatusOK, wantLevel: "INFO"},
		{name: "4xx は WARN", status: http.StatusNotFound, wantLevel: "WARN"},
		{name: "5xx は ERROR", status: http.StatusInternalServerError, wantLevel: "ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

			h := chimiddleware.RequestID(LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.NotSame(t, slog.Default(), GetLogger(r.Context()), "リクエストロガーがコンテキストにある")
				w.WriteHeader(tc.status)
			})))

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/edit", nil))

			lines := decodeLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, tc.wantLevel, lines[0]["level"])
			assert.Equal(t, "Request completed", lines[0]["msg"])
			assert.Equal(t, float64(tc.status), lines[0]["status"])
			assert.Equal(t, "/edit", lines[0]["path"])
			assert.NotEmpty(t, lines[0]["request_id"])
		})
	}
}

func TestLoggingMiddleware_DebugDetailMasksHeaders(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var seenBody string
	h := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		seenBody = r.PostForm.Get("title")
	}))

	req := httptest.NewRequest(http.MethodPost, "/new", strings.NewReader("title=hello"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Cookie", "session=secret")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "hello", seenBody, "ボディはハンドラでも読める")
	out := buf.String()
	assert.Contains(t, out, "[SENSITIVE]")
	assert.NotContains(t, out, "session=secret")
	assert.Contains(t, out, "title=hello")
}

func TestGetLogger_Default(t *testing.T) {
	assert.Same(t, slog.Default(), GetLogger(context.Background()))

	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, l, GetLogger(WithLogger(context.Background(), l)))
}
