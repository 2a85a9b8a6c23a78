package handlers_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go_5_lesson_notes/internal/handlers"
	"go_5_lesson_notes/internal/model"
	"go_5_lesson_notes/internal/repository"
	"go_5_lesson_notes/internal/service"
	"go_5_lesson_notes/internal/view"
)

// setupIntegration は実際のサービスとインメモリSQLiteでルーターを組み立てます
func setupIntegration(t *testing.T) (*chi.Mux, *gorm.DB, service.NoteService) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Note{}))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewNoteService(db, repository.NewGormNoteRepository(), testCatalog, model.ParentRoot, testLogger)
	h := handlers.NewNoteHandler(svc, testCatalog, view.MustParseTemplates(), testLogger)

	router := chi.NewRouter()
	h.Routes(router)
	return router, db, svc
}

// clearTable は指定されたモデルのテーブルデータをクリアします。
func clearTable(t *testing.T, db *gorm.DB, modelInstance interface{}) {
	t.Helper()
	err := db.Unscoped().Where("1 = 1").Delete(modelInstance).Error
	require.NoError(t, err, fmt.Sprintf("Failed to clear table for model %T", modelInstance))
}

func countNotes(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.Note{}).Count(&n).Error)
	return n
}

func TestIntegration_CreateNote(t *testing.T) {
	router, db, _ := setupIntegration(t)

	tests := []struct {
		name       string
		form       url.Values
		wantStatus int
		wantStored bool
	}{
		{name: "正常系: レッスンCは章1", form: url.Values{"title": {"T"}, "content": {"X"}, "select_lesson": {"C"}}, wantStatus: http.StatusSeeOther, wantStored: true},
		{name: "異常系: タイトルなし", form: url.Values{"title": {""}, "content": {"X"}, "select_lesson": {"A"}}, wantStatus: http.StatusOK},
		{name: "異常系: 本文なし", form: url.Values{"title": {"T"}, "content": {""}, "select_lesson": {"A"}}, wantStatus: http.StatusOK},
		{name: "異常系: 章名を選択", form: url.Values{"title": {"T"}, "content": {"X"}, "select_lesson": {"0"}}, wantStatus: http.StatusOK},
		{name: "異常系: 未知のレッスン", form: url.Values{"title": {"T"}, "content": {"X"}, "select_lesson": {"Z"}}, wantStatus: http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearTable(t, db, &model.Note{})

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, postForm("/new", tc.form))
			assert.Equal(t, tc.wantStatus, rr.Code)

			if !tc.wantStored {
				assert.Equal(t, int64(0), countNotes(t, db))
				assert.Contains(t, rr.Body.String(), "There must be content in <b>both</b>")
				return
			}
			assert.Equal(t, "/", rr.Header().Get("Location"))
			var note model.Note
			require.NoError(t, db.First(&note).Error)
			assert.Equal(t, "T", note.Title)
			assert.Equal(t, "X", note.Content)
			assert.Equal(t, "C", note.Lesson)
			assert.Equal(t, "1", note.Unit)
			assert.Equal(t, model.ParentRoot, note.ParentKey)
		})
	}
}

func TestIntegration_EditChangesOnlyOneField(t *testing.T) {
	router, db, svc := setupIntegration(t)
	ctx := context.Background()

	note, err := svc.CreateNote(ctx, &model.CreateNoteRequest{Title: "T", Content: "X", Lesson: "A"})
	require.NoError(t, err)

	load := func() model.Note {
		var n model.Note
		require.NoError(t, db.First(&n, "note_id = ?", note.NoteID).Error)
		return n
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, postForm("/edit", url.Values{"node": {note.Key()}, "title_change": {"1"}, "title": {"T2"}, "content": {"ignored"}}))
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	got := load()
	assert.Equal(t, "T2", got.Title)
	assert.Equal(t, "X", got.Content, "フラグのないフィールドは変わらない")
	assert.Equal(t, "A", got.Lesson)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, postForm("/edit", url.Values{"node": {note.Key()}, "lesson_change": {"1"}, "select_lesson": {"C"}}))
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	got = load()
	assert.Equal(t, "C", got.Lesson)
	assert.Equal(t, "1", got.Unit)
	assert.Equal(t, "T2", got.Title)

	// 同じ値への変更は拒否される
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, postForm("/edit", url.Values{"node": {note.Key()}, "content_change": {"1"}, "content": {"X"}}))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "updated content in the <b>content</b> area")
	assert.Equal(t, "X", load().Content)
}

func TestIntegration_DeleteNeverRemoves(t *testing.T) {
	router, db, svc := setupIntegration(t)
	ctx := context.Background()
	for _, title := range []string{"one", "two"} {
		_, err := svc.CreateNote(ctx, &model.CreateNoteRequest{Title: title, Content: "c", Lesson: "B"})
		require.NoError(t, err)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, postForm("/", url.Values{"database_delete": {"1"}}))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "delete currently disabled")
	assert.Equal(t, int64(2), countNotes(t, db))
}

func TestIntegration_ListShowsTOC(t *testing.T) {
	router, _, svc := setupIntegration(t)
	ctx := context.Background()
	_, err := svc.CreateNote(ctx, &model.CreateNoteRequest{Title: "about B", Content: "# heading", Lesson: "B"})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "about B")
	assert.Contains(t, body, "<h1>heading</h1>")
}

func TestIntegration_EditUnknownNode(t *testing.T) {
	router, _, _ := setupIntegration(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/edit?node="+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/edit", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
