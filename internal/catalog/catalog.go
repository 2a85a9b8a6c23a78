// internal/catalog/catalog.go
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed lessons.yaml
var lessonsYAML []byte

// Chapter は章IDと、その章に属するレッスン名の一覧です
type Chapter struct {
	ID      string   `yaml:"id"`
	Lessons []string `yaml:"lessons"`
}

type catalogFile struct {
	Chapters []Chapter `yaml:"chapters"`
}

// Catalog は起動時に一度だけ構築される、変更不可のレッスン表です
type Catalog struct {
	chapters  []Chapter
	chapterOf map[string]string // レッスン名 -> 章ID
}

// New は章の一覧からカタログを構築します。
// 同じレッスン名が複数の章にある場合は後の章が優先されます。
func New(chapters []Chapter) *Catalog {
	c := &Catalog{
		chapters:  make([]Chapter, 0, len(chapters)),
		chapterOf: make(map[string]string),
	}
	for _, ch := range chapters {
		lessons := append([]string(nil), ch.Lessons...)
		c.chapters = append(c.chapters, Chapter{ID: ch.ID, Lessons: lessons})
		for _, name := range lessons {
			c.chapterOf[name] = ch.ID
		}
	}
	return c
}

// Parse はYAML形式のレッスン表を読み込みます
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog.Parse: %w", err)
	}
	if len(f.Chapters) == 0 {
		return nil, fmt.Errorf("catalog.Parse: no chapters defined")
	}
	return New(f.Chapters), nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default は埋め込みのレッスン表から作られたプロセス共通のカタログを返します
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(lessonsYAML)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func (c *Catalog) IsValidLesson(name string) bool {
	_, ok := c.chapterOf[name]
	return ok
}

// ChapterOf はレッスンが属する章IDを返します。見つからない場合は空文字です。
func (c *Catalog) ChapterOf(name string) string {
	return c.chapterOf[name]
}

// AllChapters は表示用に章の一覧を定義順で返します
func (c *Catalog) AllChapters() []Chapter {
	out := make([]Chapter, len(c.chapters))
	for i, ch := range c.chapters {
		out[i] = Chapter{ID: ch.ID, Lessons: append([]string(nil), ch.Lessons...)}
	}
	return out
}

// Lessons は全レッスン名を定義順で返します
func (c *Catalog) Lessons() []string {
	var out []string
	for _, ch := range c.chapters {
		out = append(out, ch.Lessons...)
	}
	return out
}
