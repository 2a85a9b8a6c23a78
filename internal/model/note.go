// internal/model/note.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ParentRoot は全ノートが属する固定の親キーです
const ParentRoot = "parent_root"

// Note はレッスンに紐づくノート(タイトル・本文・章・レッスン)を表します
type Note struct {
	NoteID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"note_id"`
	ParentKey string    `gorm:"not null;index" json:"-"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Unit      string    `gorm:"not null;default:''" json:"unit"`   // レッスンから導出される章ID
	Lesson    string    `gorm:"not null;default:''" json:"lesson"` // レッスン名
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Note) TableName() string {
	return "notes"
}

// Key はURLに載せるノートの不透明キーです
func (n *Note) Key() string {
	return n.NoteID.String()
}

// ノート作成リクエスト (フォーム)
type CreateNoteRequest struct {
	Title   string `form:"title" validate:"required"`
	Content string `form:"content" validate:"required"`
	Lesson  string `form:"select_lesson" validate:"required,lesson"`
}
