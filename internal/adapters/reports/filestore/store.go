// Package filestore keeps rendered reports as files in one directory.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jsamuelsen/numerology-service/internal/domain"
	"github.com/jsamuelsen/numerology-service/internal/ports"
)

const (
	ext        = ".pdf"
	tempPrefix = ".report-"
)

var (
	_ ports.ReportStore   = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store implements ports.ReportStore on the local filesystem. A report's
// creation time is its file's mtime.
type Store struct {
	dir string
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithNow sets the clock used to stamp saved files.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates the directory if needed and returns a Store rooted there.
func New(dir string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating report dir: %w", err)
	}

	s := &Store{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Dir returns the root directory.
func (s *Store) Dir() string { return s.dir }

// Save writes content atomically: a temp file is renamed into place.
func (s *Store) Save(ctx context.Context, id string, content []byte) (*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.path(id)
	if err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(s.dir, tempPrefix+"*.tmp")
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}

	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()

		return nil, fmt.Errorf("writing report: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()

		return nil, fmt.Errorf("syncing report: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("closing report: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return nil, fmt.Errorf("renaming report: %w", err)
	}

	created := s.now()
	if err := os.Chtimes(path, created, created); err != nil {
		return nil, fmt.Errorf("stamping report: %w", err)
	}

	return &domain.Report{
		ID:        id,
		Filename:  domain.ReportFilename(id),
		Size:      int64(len(content)),
		CreatedAt: created.UTC(),
	}, nil
}

// Open returns domain.ErrNotFound for unknown ids.
func (s *Store) Open(ctx context.Context, id string) (io.ReadCloser, *domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	path, err := s.path(id)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(path) //nolint:gosec // path is confined to s.dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, domain.NewNotFoundError("report", id)
		}

		return nil, nil, fmt.Errorf("opening report: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()

		return nil, nil, fmt.Errorf("stat report: %w", err)
	}

	return f, toReport(id, info), nil
}

// Delete returns domain.ErrNotFound when the file does not exist.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.path(id)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewNotFoundError("report", id)
		}

		return fmt.Errorf("removing report: %w", err)
	}

	return nil
}

// List returns all reports, newest first.
func (s *Store) List(ctx context.Context) ([]*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading report dir: %w", err)
	}

	reports := make([]*domain.Report, 0, len(entries))

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, tempPrefix) || !strings.HasSuffix(name, ext) {
			continue
		}

		info, err := e.Info()
		if err != nil {
			// Removed between ReadDir and Info.
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return nil, fmt.Errorf("stat %s: %w", name, err)
		}

		reports = append(reports, toReport(strings.TrimSuffix(name, ext), info))
	}

	sort.Slice(reports, func(i, j int) bool {
		if reports[i].CreatedAt.Equal(reports[j].CreatedAt) {
			return reports[i].ID < reports[j].ID
		}

		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})

	return reports, nil
}

// Prune removes reports created before cutoff. It keeps going past
// individual failures and reports them together.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int, error) {
	reports, err := s.List(ctx)
	if err != nil {
		return 0, err
	}

	var (
		removed int
		errs    []error
	)

	for _, r := range reports {
		if !r.CreatedAt.Before(cutoff) {
			continue
		}

		if err := ctx.Err(); err != nil {
			errs = append(errs, err)

			break
		}

		err := s.Delete(ctx, r.ID)
		switch {
		case err == nil:
			removed++
		case domain.IsNotFound(err):
		default:
			errs = append(errs, err)
		}
	}

	return removed, errors.Join(errs...)
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "reports" }

// Check verifies the directory is writable.
func (s *Store) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.CreateTemp(s.dir, tempPrefix+"health-*.tmp")
	if err != nil {
		return domain.NewUnavailableError("reports", err.Error())
	}

	name := f.Name()
	f.Close()

	return os.Remove(name)
}

func (s *Store) path(id string) (string, error) {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) || filepath.Base(id) != id {
		return "", domain.NewValidationErrorWithValue("id", "invalid report id", id)
	}

	return filepath.Join(s.dir, domain.ReportFilename(id)), nil
}

func toReport(id string, info fs.FileInfo) *domain.Report {
	return &domain.Report{
		ID:        id,
		Filename:  domain.ReportFilename(id),
		Size:      info.Size(),
		CreatedAt: info.ModTime().UTC(),
	}
}
