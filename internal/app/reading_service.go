package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/numerology-service/internal/domain"
	"github.com/jsamuelsen/numerology-service/internal/domain/numerology"
	"github.com/jsamuelsen/numerology-service/internal/ports"
)

// CalculateInput is a request to compute and store a reading.
type CalculateInput struct {
	Name        string
	DateOfBirth string

	// OwnerID is empty for anonymous callers.
	OwnerID string
}

// ReadingServiceConfig holds the dependencies of a ReadingService.
// Readings is required; the rest is optional.
type ReadingServiceConfig struct {
	Readings ports.ReadingRepository

	// Reports renders a PDF for each new reading while the report-on-create
	// flag is on. Nil disables rendering.
	Reports *ReportService

	Flags   ports.FeatureFlags
	Metrics Recorder
	Logger  *slog.Logger
	Now     func() time.Time
	NewID   func() string
}

// ReadingService computes, stores and manages readings.
type ReadingService struct {
	readings ports.ReadingRepository
	reports  *ReportService
	flags    ports.FeatureFlags
	metrics  Recorder
	exec     *Executor
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

// NewReadingService panics when Readings is nil.
func NewReadingService(cfg ReadingServiceConfig) *ReadingService {
	if cfg.Readings == nil {
		panic("app: ReadingServiceConfig.Readings is required")
	}

	logger := orDefaultLogger(cfg.Logger, "app.ReadingService")

	return &ReadingService{
		readings: cfg.Readings,
		reports:  cfg.Reports,
		flags:    cfg.Flags,
		metrics:  orNopRecorder(cfg.Metrics),
		exec:     NewExecutor(logger),
		logger:   logger,
		now:      orNow(cfg.Now),
		newID:    orNewID(cfg.NewID),
	}
}

// Calculate validates the input, computes the numbers, stores the reading and,
// when enabled, attaches a rendered report. A report failure is logged and
// leaves the reading without one.
func (s *ReadingService) Calculate(ctx context.Context, in CalculateInput) (*domain.Reading, error) {
	op := Operation[CalculateInput, *domain.Reading, *domain.Reading, *domain.Reading]{
		Name: "reading.calculate",
		Validate: func(_ context.Context, in CalculateInput) error {
			return ValidateSubject(in.Name, in.DateOfBirth, s.now())
		},
		Perform: func(_ context.Context, in CalculateInput) (*domain.Reading, error) {
			n := numerology.Calculate(in.Name, in.DateOfBirth)

			return domain.NewReading(s.newID(), in.Name, in.DateOfBirth, in.OwnerID, n, s.now().UTC()), nil
		},
		Verify: func(_ context.Context, _ CalculateInput, r *domain.Reading) (*domain.Reading, error) {
			if err := verifyNumbers(r); err != nil {
				return nil, err
			}

			return r, nil
		},
		Archive: func(ctx context.Context, _ CalculateInput, r *domain.Reading) error {
			if err := s.readings.Create(ctx, r); err != nil {
				return fmt.Errorf("storing reading: %w", err)
			}

			s.metrics.RecordReading(r.Numbers())

			return nil
		},
		Respond: func(ctx context.Context, _ CalculateInput, r *domain.Reading) (*domain.Reading, error) {
			s.attachReport(ctx, r)

			return r, nil
		},
	}

	return Execute(ctx, s.exec, op, in)
}

// verifyNumbers accepts a zero soul urge only for names without vowels.
func verifyNumbers(r *domain.Reading) error {
	n := r.Numbers()

	if !numerology.IsValidNumber(n.LifePath) {
		return fmt.Errorf("life path number %d out of range", n.LifePath)
	}

	if !numerology.IsValidNumber(n.Expression) {
		return fmt.Errorf("expression number %d out of range", n.Expression)
	}

	hasVowels := numerology.NameValue(r.Name, numerology.Vowels) > 0
	if (hasVowels && !numerology.IsValidNumber(n.SoulUrge)) || (!hasVowels && n.SoulUrge != 0) {
		return fmt.Errorf("soul urge number %d out of range", n.SoulUrge)
	}

	return nil
}

func (s *ReadingService) attachReport(ctx context.Context, r *domain.Reading) {
	if s.reports == nil || s.flags == nil || !s.flags.IsEnabled(ctx, ports.FlagReportOnCreate, false) {
		return
	}

	report, err := s.reports.GenerateForReading(ctx, r)
	if err != nil {
		loggerFor(ctx, s.logger).WarnContext(ctx, "report generation failed",
			slog.String("reading_id", r.ID),
			slog.Any("error", err),
		)

		return
	}

	r.ReportID = report.ID
}

// History returns one page of an owner's readings, newest first.
func (s *ReadingService) History(ctx context.Context, ownerID string, req domain.PageRequest) (domain.Page[*domain.Reading], error) {
	req = req.Normalize()

	if ownerID == "" {
		return domain.Page[*domain.Reading]{}, domain.NewUnauthorizedError("authentication required")
	}

	total, items, err := Parallel2(ctx,
		func(ctx context.Context) (int, error) {
			return s.readings.CountByOwner(ctx, ownerID)
		},
		func(ctx context.Context) ([]*domain.Reading, error) {
			return s.readings.ListByOwner(ctx, ownerID, req.Offset(), req.Limit)
		},
	)
	if err != nil {
		return domain.Page[*domain.Reading]{}, fmt.Errorf("loading history: %w", err)
	}

	return domain.NewPage(items, req, total), nil
}

// Get returns a reading owned by requesterID.
func (s *ReadingService) Get(ctx context.Context, id, requesterID string) (*domain.Reading, error) {
	reading, err := s.readings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting reading: %w", err)
	}

	if !reading.OwnedBy(requesterID) {
		return nil, domain.NewForbiddenError("view reading", "not the owner")
	}

	return reading, nil
}

// Delete removes a reading owned by requesterID along with its report.
// Report removal is best effort.
func (s *ReadingService) Delete(ctx context.Context, id, requesterID string) error {
	logger := loggerFor(ctx, s.logger).With(slog.String("reading_id", id))

	reading, err := s.readings.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("getting reading: %w", err)
	}

	if !reading.OwnedBy(requesterID) {
		logger.WarnContext(ctx, "delete refused", slog.String("requester_id", requesterID))

		return domain.NewForbiddenError("delete reading", "not the owner")
	}

	if err := s.readings.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting reading: %w", err)
	}

	s.metrics.RecordReadingDeleted()
	logger.InfoContext(ctx, "reading deleted")

	if reading.HasReport() && s.reports != nil {
		if err := s.reports.Delete(ctx, reading.ReportID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			logger.WarnContext(ctx, "report cleanup failed",
				slog.String("report_id", reading.ReportID),
				slog.Any("error", err),
			)
		}
	}

	return nil
}
