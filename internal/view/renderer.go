package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"

	"go_5_lesson_notes/internal/catalog"
	"go_5_lesson_notes/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// ページ (コンテンツテンプレート) 名
const (
	PageList   = "main_content"
	PageCreate = "add_new"
	PageEdit   = "change_page"
)

// ViewData はテンプレートに渡す値です。ページごとに使うフィールドだけ埋めます。
type ViewData struct {
	Title           string
	ContentTemplate string
	ContentHTML     template.HTML
	Notice          string

	Chapters []catalog.Chapter
	Error    template.HTML

	// 一覧
	Notes []*model.Note
	TOC   map[string][]*model.Note

	// 新規作成フォームの入力値 (Lesson は選択済みレッスン)
	Form model.CreateNoteRequest

	// 編集対象
	Note *model.Note
}

type Renderer struct {
	all *template.Template
	md  goldmark.Markdown
}

func MustParseTemplates() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{md: goldmark.New()}
	t := template.New("").Funcs(template.FuncMap{
		"dict": func(values ...any) (map[string]any, error) {
			if len(values)%2 != 0 {
				return nil, fmt.Errorf("dict requires even number of arguments")
			}
			out := make(map[string]any, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict keys must be strings")
				}
				out[key] = values[i+1]
			}
			return out, nil
		},
		"markdown": r.markdown,
	})
	t, err := t.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("view.NewRenderer: %w", err)
	}
	r.all = t
	return r, nil
}

// markdown はノート本文をHTMLに変換します。生のHTMLは出力されません。
func (r *Renderer) markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// RenderPage はコンテンツテンプレートを描画し、base レイアウトに埋め込んで返します
func (r *Renderer) RenderPage(w http.ResponseWriter, status int, data ViewData) {
	var content bytes.Buffer
	if err := r.all.ExecuteTemplate(&content, data.ContentTemplate, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	data.ContentHTML = template.HTML(content.String())

	var page bytes.Buffer
	if err := r.all.ExecuteTemplate(&page, "base", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	page.WriteTo(w)
}
