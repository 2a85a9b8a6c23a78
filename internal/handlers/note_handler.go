// internal/handlers/note_handler.go
package handlers

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"go_5_lesson_notes/internal/catalog"
	"go_5_lesson_notes/internal/metrics"
	"go_5_lesson_notes/internal/model"
	"go_5_lesson_notes/internal/service"
	"go_5_lesson_notes/internal/view"
	"go_5_lesson_notes/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type NoteHandler struct {
	service service.NoteService
	catalog *catalog.Catalog
	views   *view.Renderer
	logger  *slog.Logger
}

func NewNoteHandler(s service.NoteService, cat *catalog.Catalog, views *view.Renderer, logger *slog.Logger) *NoteHandler {
	if cat == nil {
		cat = catalog.Default()
	}
	if views == nil {
		views = view.MustParseTemplates()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &NoteHandler{
		service: s,
		catalog: cat,
		views:   views,
		logger:  logger,
	}
}

// Routes はノート画面のルーティングを登録します
func (h *NoteHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.PostList)
	r.Get("/new", h.ShowCreateForm)
	r.Post("/new", h.PostCreate)
	r.Get("/edit", h.ShowEditForm)
	r.Post("/edit", h.PostEdit)
}

// List はノート一覧と目次を表示するハンドラ
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, "")
}

// PostList は削除フォームの送信先。削除は無効化されているため通知を出して一覧を表示する
func (h *NoteHandler) PostList(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostList"))
	if err := webutil.ParseForm(r); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Delete requested but disabled", slog.Bool("database_delete", webutil.FormFlag(r, "database_delete")))
	metrics.DeleteAttempted()
	h.renderList(w, r, model.DeleteDisabledNotice)
}

// ShowCreateForm は新規作成フォームを表示するハンドラ (?q= でレッスンを事前選択)
func (h *NoteHandler) ShowCreateForm(w http.ResponseWriter, r *http.Request) {
	h.renderCreateForm(w, model.FormErrorNone, model.CreateNoteRequest{Lesson: r.URL.Query().Get("q")})
}

// PostCreate は新規作成フォームの送信を処理するハンドラ
func (h *NoteHandler) PostCreate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostCreate"))

	req, err := webutil.DecodeCreateNoteForm(r)
	if err != nil {
		logger.Warn("Failed to decode form", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	if webutil.FormFlag(r, "return_without_changes") {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := webutil.Validator.StructCtx(webutil.WithCatalog(r.Context(), h.catalog), req); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
			return
		}
		field, msg := webutil.FirstValidationMessage(validationErrors)
		logger.Info("Validation failed", slog.String("field", field), slog.String("message", msg))
		metrics.FormError(string(model.FormErrorAddNew))
		h.renderCreateForm(w, model.FormErrorAddNew, *req)
		return
	}

	note, err := h.service.CreateNote(r.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			metrics.FormError(string(model.FormErrorAddNew))
			h.renderCreateForm(w, model.FormErrorAddNew, *req)
			return
		}
		logger.Error("Error creating note in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	metrics.NoteCreated()
	logger.Info("Note created successfully", slog.String("note_id", note.Key()), slog.String("lesson", note.Lesson))
	h.redirectPerStay(w, r)
}

// ShowEditForm は ?node= で指定されたノートの編集フォームを表示するハンドラ
func (h *NoteHandler) ShowEditForm(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ShowEditForm"))

	note, err := h.noteFromRequest(r)
	if err != nil {
		h.handleLookupError(w, logger, err)
		return
	}
	h.renderEditForm(w, note, model.FormErrorNone)
}

// editOutcome は1つの変更フラグを評価した結果です
type editOutcome struct {
	applied bool
	errKind model.FormErrorKind
}

// PostEdit は編集フォームの送信を処理するハンドラ。
// title_change / content_change / lesson_change はこの順にそれぞれ独立して評価され、
// 最後に評価したフラグの結果でレスポンスが決まる。
func (h *NoteHandler) PostEdit(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostEdit"))

	if err := webutil.ParseForm(r); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if webutil.FormFlag(r, "return_without_changes") {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	note, err := h.noteFromRequest(r)
	if err != nil {
		h.handleLookupError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("note_id", note.Key()))

	changes := []struct {
		flag    string
		field   string
		errKind model.FormErrorKind
		apply   func() error
	}{
		{"title_change", "title", model.FormErrorTitle, func() error {
			return h.service.ChangeTitle(r.Context(), note, r.PostFormValue("title"))
		}},
		{"content_change", "content", model.FormErrorContent, func() error {
			return h.service.ChangeContent(r.Context(), note, r.PostFormValue("content"))
		}},
		{"lesson_change", "select_lesson", model.FormErrorLesson, func() error {
			return h.service.ChangeLesson(r.Context(), note, r.PostFormValue("select_lesson"))
		}},
	}

	var last *editOutcome
	for _, c := range changes {
		if !webutil.FormFlag(r, c.flag) {
			continue
		}
		err := c.apply()
		switch {
		case err == nil:
			logger.Info("Note updated successfully", slog.String("field", c.field))
			metrics.NoteEdited(c.field, true)
			last = &editOutcome{applied: true}
		case errors.Is(err, model.ErrInvalidInput):
			logger.Info("Edit rejected", slog.String("field", c.field))
			metrics.NoteEdited(c.field, false)
			metrics.FormError(string(c.errKind))
			last = &editOutcome{errKind: c.errKind}
		default:
			logger.Error("Error updating note in service", slog.String("field", c.field), slog.Any("error", err))
			webutil.HandleError(w, logger, err)
			return
		}
	}

	switch {
	case last == nil:
		// 変更フラグなし: エラーなしでフォームを再表示
		h.renderEditForm(w, note, model.FormErrorNone)
	case last.applied:
		h.redirectPerStay(w, r)
	default:
		h.renderEditForm(w, note, last.errKind)
	}
}

// noteFromRequest はフォームまたはクエリの node キーからノートを取得します。
// キーが解釈できない場合も ErrNotFound として扱います。
func (h *NoteHandler) noteFromRequest(r *http.Request) (*model.Note, error) {
	key := r.FormValue("node")
	noteID, err := uuid.Parse(key)
	if err != nil {
		return nil, model.ErrNotFound
	}
	return h.service.GetNote(r.Context(), noteID)
}

func (h *NoteHandler) handleLookupError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if errors.Is(err, model.ErrNotFound) {
		logger.Info("Note not found")
	} else {
		logger.Error("Error getting note from service", slog.Any("error", err))
	}
	webutil.HandleError(w, logger, err)
}

// redirectPerStay は stay フラグがあれば一覧をその場で描画し、なければ / へリダイレクトします
func (h *NoteHandler) redirectPerStay(w http.ResponseWriter, r *http.Request) {
	if webutil.FormFlag(r, "stay") {
		h.renderList(w, r, "")
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *NoteHandler) renderList(w http.ResponseWriter, r *http.Request, notice string) {
	logger := h.logger.With(slog.String("handler", "List"))

	notes, err := h.service.ListNotes(r.Context())
	if err != nil {
		logger.Error("Error listing notes in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	h.views.RenderPage(w, http.StatusOK, view.ViewData{
		Title:           "Notes",
		ContentTemplate: view.PageList,
		Notice:          notice,
		Chapters:        h.catalog.AllChapters(),
		Notes:           notes,
		TOC:             service.BuildTOC(notes).ByLesson(),
	})
}

func (h *NoteHandler) renderCreateForm(w http.ResponseWriter, kind model.FormErrorKind, form model.CreateNoteRequest) {
	h.views.RenderPage(w, http.StatusOK, view.ViewData{
		Title:           "New note",
		ContentTemplate: view.PageCreate,
		Chapters:        h.catalog.AllChapters(),
		Error:           template.HTML(model.FormErrorMessage(kind)),
		Form:            form,
	})
}

func (h *NoteHandler) renderEditForm(w http.ResponseWriter, note *model.Note, kind model.FormErrorKind) {
	h.views.RenderPage(w, http.StatusOK, view.ViewData{
		Title:           "Edit note",
		ContentTemplate: view.PageEdit,
		Chapters:        h.catalog.AllChapters(),
		Error:           template.HTML(model.FormErrorMessage(kind)),
		Note:            note,
	})
}
