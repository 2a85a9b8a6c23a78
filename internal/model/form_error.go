// internal/model/form_error.go
package model

// FormErrorKind はフォーム再表示時に出すエラーメッセージの種類です
type FormErrorKind string

const (
	FormErrorNone    FormErrorKind = ""
	FormErrorTitle   FormErrorKind = "title"
	FormErrorContent FormErrorKind = "content"
	FormErrorLesson  FormErrorKind = "lesson"
	FormErrorAddNew  FormErrorKind = "add_new"
)

// メッセージはHTML断片としてそのまま表示される
var formErrorMessages = map[FormErrorKind]string{
	FormErrorTitle:   "There must be an updated title in the <b>title</b> area, and it cannot be empty.",
	FormErrorContent: "There must be updated content in the <b>content</b> area, and it cannot be empty.",
	FormErrorLesson:  "You must enter a <b>new</b> lesson, and you cannot select a chapter",
	FormErrorAddNew:  "There must be content in <b>both</b> the title and content areas, and you must choose a valid lesson (<b>not</b> a chapter name).",
	FormErrorNone:    " ",
}

// FormErrorMessage は種類に対応するメッセージを返します。未知の種類は空白扱いです。
func FormErrorMessage(kind FormErrorKind) string {
	if msg, ok := formErrorMessages[kind]; ok {
		return msg
	}
	return formErrorMessages[FormErrorNone]
}

// DeleteDisabledNotice は削除機能が無効であることを知らせる文言です
const DeleteDisabledNotice = "delete currently disabled: notes are never removed from the database."
