package app

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/numerology-service/internal/domain"
	"github.com/jsamuelsen/numerology-service/internal/mocks"
)

const reportID = "3f2b8c1e-5a7d-4e9f-8b6a-1c2d3e4f5a6b"

func newReportService(t *testing.T) (*ReportService, *mocks.MockReportRenderer, *mocks.MockReportStore, *recorderSpy) {
	t.Helper()

	renderer := mocks.NewMockReportRenderer(t)
	store := mocks.NewMockReportStore(t)
	spy := newRecorderSpy()

	svc := NewReportService(ReportServiceConfig{
		Renderer: renderer,
		Store:    store,
		Metrics:  spy,
		Logger:   discardLogger(),
		Now:      clock,
		NewID:    staticID(reportID),
	})

	return svc, renderer, store, spy
}

func TestNewReportService_RequiresRendererAndStore(t *testing.T) {
	assert.Panics(t, func() { NewReportService(ReportServiceConfig{}) })
	assert.Panics(t, func() {
		NewReportService(ReportServiceConfig{Renderer: mocks.NewMockReportRenderer(t)})
	})
}

func TestReportService_Generate(t *testing.T) {
	svc, renderer, store, spy := newReportService(t)
	pdf := []byte("%PDF")

	renderer.EXPECT().
		Render(mock.Anything, mock.MatchedBy(func(r *domain.Reading) bool {
			return r.Name == "John" && r.LifePathNumber == 3 && r.ID == ""
		})).
		Return(pdf, nil)
	store.EXPECT().Save(mock.Anything, reportID, pdf).
		Return(&domain.Report{ID: reportID, Filename: domain.ReportFilename(reportID), Size: 4}, nil)

	report, reading, err := svc.Generate(context.Background(), "John", "1990-05-15")

	require.NoError(t, err)
	assert.Equal(t, reportID+".pdf", report.Filename)
	assert.Equal(t, reportID, reading.ReportID)
	assert.Equal(t, 6, reading.SoulUrgeNumber)
	assert.Equal(t, 1, spy.reports[statusSuccess])
}

func TestReportService_Generate_Errors(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		svc, _, _, _ := newReportService(t)

		_, _, err := svc.Generate(context.Background(), "", "1990-05-15")

		assert.True(t, domain.IsValidation(err))
	})

	t.Run("render failure is counted", func(t *testing.T) {
		svc, renderer, _, spy := newReportService(t)
		renderer.EXPECT().Render(mock.Anything, mock.Anything).Return(nil, errors.New("bad font"))

		_, _, err := svc.Generate(context.Background(), "John", "1990-05-15")

		require.ErrorContains(t, err, "rendering report")
		assert.Equal(t, 1, spy.reports[statusFailure])
	})

	t.Run("store failure", func(t *testing.T) {
		svc, renderer, store, _ := newReportService(t)
		renderer.EXPECT().Render(mock.Anything, mock.Anything).Return([]byte("pdf"), nil)
		store.EXPECT().Save(mock.Anything, reportID, mock.Anything).Return(nil, errors.New("read-only file system"))

		_, _, err := svc.Generate(context.Background(), "John", "1990-05-15")

		require.ErrorContains(t, err, "storing report")
	})
}

func TestReportService_GenerateForReading_NeedsRepository(t *testing.T) {
	svc, _, _, _ := newReportService(t)

	_, err := svc.GenerateForReading(context.Background(), &domain.Reading{ID: "r-1"})

	require.Error(t, err)
}

func TestReportService_Open(t *testing.T) {
	t.Run("valid id", func(t *testing.T) {
		svc, _, store, _ := newReportService(t)
		body := io.NopCloser(strings.NewReader("%PDF"))
		store.EXPECT().Open(mock.Anything, reportID).Return(body, &domain.Report{ID: reportID}, nil)

		rc, report, err := svc.Open(context.Background(), strings.ToUpper(reportID))

		require.NoError(t, err)
		defer rc.Close()
		assert.Equal(t, reportID, report.ID)
	})

	t.Run("not a report id", func(t *testing.T) {
		svc, _, _, _ := newReportService(t)

		_, _, err := svc.Open(context.Background(), "../../etc/passwd")

		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("missing file", func(t *testing.T) {
		svc, _, store, _ := newReportService(t)
		store.EXPECT().Open(mock.Anything, reportID).Return(nil, nil, domain.NewNotFoundError("report", reportID))

		_, _, err := svc.Open(context.Background(), reportID)

		assert.True(t, domain.IsNotFound(err))
	})
}

func TestReportService_Prune(t *testing.T) {
	svc, _, store, spy := newReportService(t)
	store.EXPECT().Prune(mock.Anything, fixedNow.Add(-24*time.Hour)).Return(3, nil)

	n, err := svc.Prune(context.Background(), 24*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, spy.pruned)
}

func TestReportService_Prune_Errors(t *testing.T) {
	t.Run("non-positive age", func(t *testing.T) {
		svc, _, _, _ := newReportService(t)

		_, err := svc.Prune(context.Background(), 0)

		assert.True(t, domain.IsValidation(err))
	})

	t.Run("partial failure still counts removed files", func(t *testing.T) {
		svc, _, store, spy := newReportService(t)
		store.EXPECT().Prune(mock.Anything, mock.Anything).Return(2, errors.New("busy"))

		n, err := svc.Prune(context.Background(), time.Hour)

		require.Error(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, 2, spy.pruned)
	})
}

func TestReportService_ListAndDelete(t *testing.T) {
	svc, _, store, _ := newReportService(t)
	store.EXPECT().List(mock.Anything).Return([]*domain.Report{{ID: reportID}}, nil)
	store.EXPECT().Delete(mock.Anything, reportID).Return(nil)

	reports, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, reports, 1)

	require.NoError(t, svc.Delete(context.Background(), reportID))
}
