//go:generate mockery --name NoteService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"log/slog"

	"go_5_lesson_notes/internal/catalog"
	"go_5_lesson_notes/internal/model"
	"go_5_lesson_notes/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteService interface {
	CreateNote(ctx context.Context, req *model.CreateNoteRequest) (*model.Note, error)
	GetNote(ctx context.Context, noteID uuid.UUID) (*model.Note, error)
	ListNotes(ctx context.Context) ([]*model.Note, error)
	ChangeTitle(ctx context.Context, note *model.Note, title string) error
	ChangeContent(ctx context.Context, note *model.Note, content string) error
	ChangeLesson(ctx context.Context, note *model.Note, lesson string) error
}

type noteService struct {
	db        *gorm.DB
	noteRepo  repository.NoteRepository
	catalog   *catalog.Catalog
	parentKey string
	logger    *slog.Logger
}

func NewNoteService(db *gorm.DB, noteRepo repository.NoteRepository, cat *catalog.Catalog, parentKey string, logger *slog.Logger) NoteService {
	if cat == nil {
		cat = catalog.Default()
	}
	if parentKey == "" {
		parentKey = model.ParentRoot
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &noteService{
		db:        db,
		noteRepo:  noteRepo,
		catalog:   cat,
		parentKey: parentKey,
		logger:    logger,
	}
}

// CreateNote はレッスンから章を導出してノートを保存します。
// タイトル・本文が空、またはレッスンがカタログにない場合は何も保存しません。
func (s *noteService) CreateNote(ctx context.Context, req *model.CreateNoteRequest) (*model.Note, error) {
	if req.Title == "" || req.Content == "" || !s.catalog.IsValidLesson(req.Lesson) {
		return nil, model.NewAppError("VALIDATION_ERROR", model.FormErrorMessage(model.FormErrorAddNew), "", model.ErrInvalidInput)
	}

	note := &model.Note{
		NoteID:    uuid.New(),
		ParentKey: s.parentKey,
		Title:     req.Title,
		Content:   req.Content,
		Lesson:    req.Lesson,
		Unit:      s.catalog.ChapterOf(req.Lesson),
	}
	if err := s.noteRepo.Create(ctx, s.db, note); err != nil {
		s.logger.ErrorContext(ctx, "Error creating note", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}
	return note, nil
}

func (s *noteService) GetNote(ctx context.Context, noteID uuid.UUID) (*model.Note, error) {
	note, err := s.noteRepo.FindByID(ctx, s.db, s.parentKey, noteID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		s.logger.ErrorContext(ctx, "Error getting note", slog.Any("error", err), slog.String("note_id", noteID.String()))
		return nil, model.ErrInternalServer
	}
	return note, nil
}

func (s *noteService) ListNotes(ctx context.Context) ([]*model.Note, error) {
	notes, err := s.noteRepo.FindByParent(ctx, s.db, s.parentKey)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error listing notes", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}
	return notes, nil
}

// ChangeTitle は空でなく現在と異なる場合だけタイトルを更新します
func (s *noteService) ChangeTitle(ctx context.Context, note *model.Note, title string) error {
	if title == "" || title == note.Title {
		return model.NewAppError("VALIDATION_ERROR", model.FormErrorMessage(model.FormErrorTitle), "title", model.ErrInvalidInput)
	}
	updated := *note
	updated.Title = title
	return s.save(ctx, note, &updated)
}

func (s *noteService) ChangeContent(ctx context.Context, note *model.Note, content string) error {
	if content == "" || content == note.Content {
		return model.NewAppError("VALIDATION_ERROR", model.FormErrorMessage(model.FormErrorContent), "content", model.ErrInvalidInput)
	}
	updated := *note
	updated.Content = content
	return s.save(ctx, note, &updated)
}

// ChangeLesson はレッスンと、それに対応する章を合わせて更新します
func (s *noteService) ChangeLesson(ctx context.Context, note *model.Note, lesson string) error {
	if lesson == note.Lesson || !s.catalog.IsValidLesson(lesson) {
		return model.NewAppError("VALIDATION_ERROR", model.FormErrorMessage(model.FormErrorLesson), "select_lesson", model.ErrInvalidInput)
	}
	updated := *note
	updated.Lesson = lesson
	updated.Unit = s.catalog.ChapterOf(lesson)
	return s.save(ctx, note, &updated)
}

// save は更新後の値を保存し、成功した場合のみ呼び出し元のノートへ反映します
func (s *noteService) save(ctx context.Context, note, updated *model.Note) error {
	if err := s.noteRepo.Update(ctx, s.db, updated); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		s.logger.ErrorContext(ctx, "Error updating note", slog.Any("error", err), slog.String("note_id", note.NoteID.String()))
		return model.ErrInternalServer
	}
	*note = *updated
	return nil
}
