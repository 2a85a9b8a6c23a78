package service

import "go_5_lesson_notes/internal/model"

// TOCEntry は1レッスン分の目次です
type TOCEntry struct {
	Lesson string
	Notes  []*model.Note
}

// TOC はレッスン名ごとにノートをまとめた目次です。
// レッスンは最初に現れた順、各グループ内のノートも出現順を保ちます。
type TOC struct {
	Entries []TOCEntry
	index   map[string]int
}

// BuildTOC はノート一覧を1回走査して目次を作ります
func BuildTOC(notes []*model.Note) *TOC {
	toc := &TOC{index: make(map[string]int)}
	for _, n := range notes {
		i, ok := toc.index[n.Lesson]
		if !ok {
			i = len(toc.Entries)
			toc.index[n.Lesson] = i
			toc.Entries = append(toc.Entries, TOCEntry{Lesson: n.Lesson})
		}
		toc.Entries[i].Notes = append(toc.Entries[i].Notes, n)
	}
	return toc
}

// NotesFor はレッスンに属するノートを返します。無ければ nil です。
func (t *TOC) NotesFor(lesson string) []*model.Note {
	if i, ok := t.index[lesson]; ok {
		return t.Entries[i].Notes
	}
	return nil
}

// ByLesson はテンプレート向けに map 形式で返します
func (t *TOC) ByLesson() map[string][]*model.Note {
	out := make(map[string][]*model.Note, len(t.Entries))
	for _, e := range t.Entries {
		out[e.Lesson] = e.Notes
	}
	return out
}
