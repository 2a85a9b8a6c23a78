package webutil

import (
	"net/http"

	"go_5_lesson_notes/internal/model"
)

// ParseForm はフォームを解析します。失敗時は ErrInvalidInput を返します。
func ParseForm(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return model.NewAppError("INVALID_FORM", "the submitted form could not be read", "", model.ErrInvalidInput)
	}
	return nil
}

// FormFlag はチェックボックスやsubmitボタンのような「存在すれば真」のフィールドを判定します
func FormFlag(r *http.Request, name string) bool {
	return r.FormValue(name) != ""
}

// DecodeCreateNoteForm は新規作成フォームをリクエストDTOに詰めます
func DecodeCreateNoteForm(r *http.Request) (*model.CreateNoteRequest, error) {
	if err := ParseForm(r); err != nil {
		return nil, err
	}
	return &model.CreateNoteRequest{
		Title:   r.PostFormValue("title"),
		Content: r.PostFormValue("content"),
		Lesson:  r.PostFormValue("select_lesson"),
	}, nil
}
