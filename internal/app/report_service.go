package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	appctx "github.com/jsamuelsen/numerology-service/internal/app/context"
	"github.com/jsamuelsen/numerology-service/internal/domain"
	"github.com/jsamuelsen/numerology-service/internal/domain/numerology"
	"github.com/jsamuelsen/numerology-service/internal/ports"
)

// ReportServiceConfig holds the dependencies of a ReportService.
// Renderer and Store are required. Readings is needed by GenerateForReading.
type ReportServiceConfig struct {
	Renderer ports.ReportRenderer
	Store    ports.ReportStore
	Readings ports.ReadingRepository
	Metrics  Recorder
	Logger   *slog.Logger
	Now      func() time.Time
	NewID    func() string
}

// ReportService renders, stores and expires PDF reports.
type ReportService struct {
	renderer ports.ReportRenderer
	store    ports.ReportStore
	readings ports.ReadingRepository
	metrics  Recorder
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

// NewReportService panics when Renderer or Store is nil.
func NewReportService(cfg ReportServiceConfig) *ReportService {
	if cfg.Renderer == nil || cfg.Store == nil {
		panic("app: ReportServiceConfig.Renderer and Store are required")
	}

	return &ReportService{
		renderer: cfg.Renderer,
		store:    cfg.Store,
		readings: cfg.Readings,
		metrics:  orNopRecorder(cfg.Metrics),
		logger:   orDefaultLogger(cfg.Logger, "app.ReportService"),
		now:      orNow(cfg.Now),
		newID:    orNewID(cfg.NewID),
	}
}

// Generate renders a report for name and dob without storing a reading.
// The computed reading is returned alongside the report.
func (s *ReportService) Generate(ctx context.Context, name, dob string) (*domain.Report, *domain.Reading, error) {
	if err := ValidateSubject(name, dob, s.now()); err != nil {
		return nil, nil, err
	}

	reading := domain.NewReading("", name, dob, "", numerology.Calculate(name, dob), s.now().UTC())

	content, err := s.render(ctx, reading)
	if err != nil {
		return nil, nil, err
	}

	report, err := s.store.Save(ctx, s.newID(), content)
	if err != nil {
		return nil, nil, fmt.Errorf("storing report: %w", err)
	}

	reading.ReportID = report.ID

	return report, reading, nil
}

// GenerateForReading renders a report for a stored reading and attaches it.
// The stored file is removed again when the attach fails.
func (s *ReportService) GenerateForReading(ctx context.Context, reading *domain.Reading) (*domain.Report, error) {
	if s.readings == nil {
		return nil, errors.New("report service has no reading repository")
	}

	content, err := s.render(ctx, reading)
	if err != nil {
		return nil, err
	}

	save := &saveReportAction{store: s.store, id: s.newID(), content: content}
	attach := &attachReportAction{readings: s.readings, readingID: reading.ID, save: save}

	rc := appctx.New(ctx).WithLogger(loggerFor(ctx, s.logger))
	if err := rc.AddAction(save); err != nil {
		return nil, err
	}

	if err := rc.AddAction(attach); err != nil {
		return nil, err
	}

	if err := rc.Commit(ctx); err != nil {
		return nil, fmt.Errorf("storing report: %w", err)
	}

	return save.report, nil
}

func (s *ReportService) render(ctx context.Context, reading *domain.Reading) ([]byte, error) {
	content, err := s.renderer.Render(ctx, reading)
	if err != nil {
		s.metrics.RecordReport(statusFailure)

		return nil, fmt.Errorf("rendering report: %w", err)
	}

	s.metrics.RecordReport(statusSuccess)

	return content, nil
}

// Open returns a stored report. The caller closes the reader.
func (s *ReportService) Open(ctx context.Context, id string) (io.ReadCloser, *domain.Report, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil, domain.NewNotFoundError("report", id)
	}

	rc, report, err := s.store.Open(ctx, parsed.String())
	if err != nil {
		return nil, nil, fmt.Errorf("opening report: %w", err)
	}

	return rc, report, nil
}

// List returns every stored report.
func (s *ReportService) List(ctx context.Context) ([]*domain.Report, error) {
	reports, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}

	return reports, nil
}

// Delete removes one stored report.
func (s *ReportService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}

	return nil
}

// Prune removes reports older than maxAge and returns how many were removed.
func (s *ReportService) Prune(ctx context.Context, maxAge time.Duration) (int, error) {
	if maxAge <= 0 {
		return 0, domain.NewValidationErrorWithValue("max_age", "must be positive", maxAge)
	}

	cutoff := s.now().Add(-maxAge)

	n, err := s.store.Prune(ctx, cutoff)
	if n > 0 {
		s.metrics.RecordPruned(n)
	}

	if err != nil {
		return n, fmt.Errorf("pruning reports: %w", err)
	}

	s.logger.InfoContext(ctx, "reports pruned",
		slog.Int("count", n),
		slog.Time("cutoff", cutoff),
	)

	return n, nil
}

type saveReportAction struct {
	store   ports.ReportStore
	id      string
	content []byte
	report  *domain.Report
}

func (a *saveReportAction) Execute(ctx context.Context) error {
	report, err := a.store.Save(ctx, a.id, a.content)
	if err != nil {
		return err
	}

	a.report = report

	return nil
}

func (a *saveReportAction) Rollback(ctx context.Context) error {
	return a.store.Delete(ctx, a.id)
}

func (a *saveReportAction) Description() string {
	return "save report " + a.id
}

type attachReportAction struct {
	readings  ports.ReadingRepository
	readingID string
	save      *saveReportAction
}

func (a *attachReportAction) Execute(ctx context.Context) error {
	return a.readings.AttachReport(ctx, a.readingID, a.save.report.ID)
}

// Rollback is a no-op: attach is the last action, so it is never undone.
func (a *attachReportAction) Rollback(context.Context) error {
	return nil
}

func (a *attachReportAction) Description() string {
	return "attach report to reading " + a.readingID
}
