package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_5_lesson_notes/internal/repository"
)

func TestNewRouter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := repository.NewDB("sqlite", dsn, logger)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	router := newRouter(db, logger)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "ヘルスチェック", path: "/health", wantStatus: http.StatusOK, wantBody: "OK"},
		{name: "一覧", path: "/", wantStatus: http.StatusOK, wantBody: "Welcome to the Nanodegree Program"},
		{name: "新規作成フォーム", path: "/new?q=2.1", wantStatus: http.StatusOK, wantBody: `<option value="2.1" selected>`},
		{name: "メトリクス", path: "/metrics", wantStatus: http.StatusOK, wantBody: "lesson_notes_created_total"},
		{name: "存在しないノート", path: "/edit?node=" + uuid.NewString(), wantStatus: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	assert.True(t, newLogger("debug", "").Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, newLogger("warn", "dev").Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, newLogger("bogus", "").Enabled(context.Background(), slog.LevelInfo))
}
