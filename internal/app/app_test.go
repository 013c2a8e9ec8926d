package app

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen/numerology-service/internal/domain/numerology"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func clock() time.Time { return fixedNow }

func staticID(id string) func() string {
	return func() string { return id }
}

// recorderSpy counts metric calls.
type recorderSpy struct {
	mu       sync.Mutex
	readings []numerology.Numbers
	deleted  int
	reports  map[string]int
	pruned   int
	auth     map[string]int
}

func newRecorderSpy() *recorderSpy {
	return &recorderSpy{reports: map[string]int{}, auth: map[string]int{}}
}

func (r *recorderSpy) RecordReading(n numerology.Numbers) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.readings = append(r.readings, n)
}

func (r *recorderSpy) RecordReadingDeleted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleted++
}

func (r *recorderSpy) RecordReport(status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports[status]++
}

func (r *recorderSpy) RecordPruned(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pruned += n
}

func (r *recorderSpy) RecordAuth(operation, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auth[operation+":"+status]++
}
