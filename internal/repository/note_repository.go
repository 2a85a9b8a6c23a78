//go:generate mockery --name NoteRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_lesson_notes/internal/middleware"
	"go_5_lesson_notes/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteRepository はノートの永続化を担当します。削除は提供しません。
type NoteRepository interface {
	Create(ctx context.Context, tx *gorm.DB, note *model.Note) error
	FindByID(ctx context.Context, db *gorm.DB, parentKey string, noteID uuid.UUID) (*model.Note, error)
	FindByParent(ctx context.Context, db *gorm.DB, parentKey string) ([]*model.Note, error)
	Update(ctx context.Context, tx *gorm.DB, note *model.Note) error
}

type gormNoteRepository struct{}

func NewGormNoteRepository() NoteRepository {
	return &gormNoteRepository{}
}

func (r *gormNoteRepository) Create(ctx context.Context, tx *gorm.DB, note *model.Note) error {
	logger := middleware.GetLogger(ctx)
	if note.NoteID == uuid.Nil {
		note.NoteID = uuid.New()
	}
	if note.ParentKey == "" {
		note.ParentKey = model.ParentRoot
	}
	result := tx.WithContext(ctx).Create(note)
	if result.Error != nil {
		logger.Error("Error creating note in DB",
			"error", result.Error,
			"lesson", note.Lesson,
		)
		return fmt.Errorf("gormNoteRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormNoteRepository) FindByID(ctx context.Context, db *gorm.DB, parentKey string, noteID uuid.UUID) (*model.Note, error) {
	logger := middleware.GetLogger(ctx)
	var note model.Note
	result := db.WithContext(ctx).Where("parent_key = ? AND note_id = ?", parentKey, noteID).First(&note)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding note by ID in DB",
			"error", result.Error,
			"note_id", noteID.String(),
		)
		return nil, fmt.Errorf("gormNoteRepository.FindByID: %w", result.Error)
	}
	return &note, nil
}

// FindByParent は親キー配下の全ノートを作成順で返します
func (r *gormNoteRepository) FindByParent(ctx context.Context, db *gorm.DB, parentKey string) ([]*model.Note, error) {
	logger := middleware.GetLogger(ctx)
	var notes []*model.Note
	result := db.WithContext(ctx).Where("parent_key = ?", parentKey).Order("created_at ASC").Find(&notes)
	if result.Error != nil {
		logger.Error("Error finding notes by parent in DB",
			"error", result.Error,
			"parent_key", parentKey,
		)
		return nil, fmt.Errorf("gormNoteRepository.FindByParent: %w", result.Error)
	}
	return notes, nil
}

func (r *gormNoteRepository) Update(ctx context.Context, tx *gorm.DB, note *model.Note) error {
	logger := middleware.GetLogger(ctx)
	updates := map[string]interface{}{
		"title":   note.Title,
		"content": note.Content,
		"lesson":  note.Lesson,
		"unit":    note.Unit,
	}
	result := tx.WithContext(ctx).Model(&model.Note{}).
		Where("parent_key = ? AND note_id = ?", note.ParentKey, note.NoteID).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating note in DB",
			"error", result.Error,
			"note_id", note.NoteID.String(),
		)
		return fmt.Errorf("gormNoteRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
