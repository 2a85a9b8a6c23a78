// internal/metrics/metrics.go
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// notesCreated は作成に成功したノート数
	notesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lesson_notes_created_total",
		Help: "Total notes created",
	})

	// noteEdits はフィールドごとの編集結果 (result: applied/rejected)
	noteEdits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lesson_notes_edits_total",
		Help: "Total note edit attempts by field and result",
	}, []string{"field", "result"})

	// formErrors はフォーム再表示の原因となったエラー種別
	formErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lesson_notes_form_errors_total",
		Help: "Total form validation failures by error kind",
	}, []string{"kind"})

	deleteAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lesson_notes_delete_attempts_total",
		Help: "Total delete submissions answered with the disabled notice",
	})
)

func NoteCreated() {
	notesCreated.Inc()
}

func NoteEdited(field string, applied bool) {
	result := "rejected"
	if applied {
		result = "applied"
	}
	noteEdits.WithLabelValues(field, result).Inc()
}

func FormError(kind string) {
	formErrors.WithLabelValues(kind).Inc()
}

func DeleteAttempted() {
	deleteAttempts.Inc()
}

// Handler は /metrics 用のハンドラを返します
func Handler() http.Handler {
	return promhttp.Handler()
}
