package dto

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/numerology-service/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, target, nil)
	}

	c.Request = r

	return c, w
}

func TestHTTPStatusFromCode(t *testing.T) {
	tests := map[string]int{
		ErrorCodeNotFound:     http.StatusNotFound,
		ErrorCodeConflict:     http.StatusConflict,
		ErrorCodeValidation:   http.StatusBadRequest,
		ErrorCodeForbidden:    http.StatusForbidden,
		ErrorCodeUnauthorized: http.StatusUnauthorized,
		ErrorCodeRateLimited:  http.StatusTooManyRequests,
		ErrorCodeTooLarge:     http.StatusRequestEntityTooLarge,
		ErrorCodeUnavailable:  http.StatusServiceUnavailable,
		ErrorCodeTimeout:      http.StatusGatewayTimeout,
		ErrorCodeInternal:     http.StatusInternalServerError,
		"UNKNOWN_CODE":        http.StatusInternalServerError,
	}

	for code, want := range tests {
		t.Run(code, func(t *testing.T) {
			assert.Equal(t, want, HTTPStatusFromCode(code))
		})
	}
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails map[string]string
	}{
		{
			name:        "not found",
			err:         domain.NewNotFoundError("reading", "r-1"),
			wantStatus:  http.StatusNotFound,
			wantCode:    ErrorCodeNotFound,
			wantMessage: `reading with id "r-1" not found`,
		},
		{
			name:        "conflict",
			err:         domain.NewConflictError("user", "email already registered"),
			wantStatus:  http.StatusConflict,
			wantCode:    ErrorCodeConflict,
			wantMessage: "user conflict: email already registered",
		},
		{
			name:        "validation with field",
			err:         domain.NewValidationError("dob", "must not be in the future"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrorCodeValidation,
			wantMessage: "validation failed for dob: must not be in the future",
			wantDetails: map[string]string{"dob": "must not be in the future"},
		},
		{
			name:        "validation without field",
			err:         domain.NewValidationError("", "bad input"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrorCodeValidation,
			wantMessage: "validation failed: bad input",
		},
		{
			name:        "unauthorized",
			err:         domain.NewUnauthorizedError("invalid credentials"),
			wantStatus:  http.StatusUnauthorized,
			wantCode:    ErrorCodeUnauthorized,
			wantMessage: "unauthorized: invalid credentials",
		},
		{
			name:        "forbidden",
			err:         domain.NewForbiddenError("delete reading", "not the owner"),
			wantStatus:  http.StatusForbidden,
			wantCode:    ErrorCodeForbidden,
			wantMessage: `operation "delete reading" forbidden: not the owner`,
		},
		{
			name:        "wrapped not found drops prefixes",
			err:         fmt.Errorf("deleting reading: %w", fmt.Errorf("getting reading: %w", domain.NewNotFoundError("reading", "r-1"))),
			wantStatus:  http.StatusNotFound,
			wantCode:    ErrorCodeNotFound,
			wantMessage: `reading with id "r-1" not found`,
		},
		{
			name:        "wrapped validation keeps details",
			err:         fmt.Errorf("calculating reading: %w", domain.NewValidationError("name", "must contain at least one letter")),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrorCodeValidation,
			wantMessage: "validation failed for name: must contain at least one letter",
			wantDetails: map[string]string{"name": "must contain at least one letter"},
		},
		{
			name:        "wrapped forbidden drops prefixes",
			err:         fmt.Errorf("deleting reading: %w", domain.NewForbiddenError("delete reading", "not the owner")),
			wantStatus:  http.StatusForbidden,
			wantCode:    ErrorCodeForbidden,
			wantMessage: `operation "delete reading" forbidden: not the owner`,
		},
		{
			name:        "wrapped unauthorized drops prefixes",
			err:         fmt.Errorf("logging in: %w", domain.NewUnauthorizedError("invalid credentials")),
			wantStatus:  http.StatusUnauthorized,
			wantCode:    ErrorCodeUnauthorized,
			wantMessage: "unauthorized: invalid credentials",
		},
		{
			name:        "wrapped conflict drops prefixes",
			err:         fmt.Errorf("registering user: %w", domain.NewConflictError("user", "email already registered")),
			wantStatus:  http.StatusConflict,
			wantCode:    ErrorCodeConflict,
			wantMessage: "user conflict: email already registered",
		},
		{
			name:        "bare sentinel uses sentinel text",
			err:         fmt.Errorf("loading report rep-9 from disk: %w", domain.ErrNotFound),
			wantStatus:  http.StatusNotFound,
			wantCode:    ErrorCodeNotFound,
			wantMessage: "not found",
		},
		{
			name:        "unavailable hides details",
			err:         domain.NewUnavailableError("database", "dial tcp 10.0.0.1:5432"),
			wantStatus:  http.StatusServiceUnavailable,
			wantCode:    ErrorCodeUnavailable,
			wantMessage: messageUnavailable,
		},
		{
			name:        "body too large",
			err:         &http.MaxBytesError{Limit: 10},
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantCode:    ErrorCodeTooLarge,
			wantMessage: "request body too large",
		},
		{
			name:        "deadline exceeded",
			err:         fmt.Errorf("listing readings: %w", context.DeadlineExceeded),
			wantStatus:  http.StatusGatewayTimeout,
			wantCode:    ErrorCodeTimeout,
			wantMessage: "request timeout exceeded",
		},
		{
			name:        "unknown error hides details",
			err:         errors.New("pq: password authentication failed"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    ErrorCodeInternal,
			wantMessage: messageInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapDomainError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantMessage, resp.Error.Message)
			assert.Equal(t, tt.wantDetails, resp.Error.Details)
		})
	}

	t.Run("nil", func(t *testing.T) {
		status, resp := MapDomainError(nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Nil(t, resp)
	})
}

func TestGetTraceID(t *testing.T) {
	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)

	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  trace.SpanID{1},
	})

	tests := []struct {
		name  string
		setup func(*gin.Context)
		want  string
	}{
		{
			name:  "explicit value wins",
			setup: func(c *gin.Context) { c.Set(ContextKeyTraceID, "context-trace-123") },
			want:  "context-trace-123",
		},
		{
			name:  "explicit value of wrong type",
			setup: func(c *gin.Context) { c.Set(ContextKeyTraceID, 12345) },
			want:  "",
		},
		{
			name: "active span",
			setup: func(c *gin.Context) {
				ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)
				c.Request = c.Request.WithContext(ctx)
				c.Request.Header.Set("X-Request-ID", "ignored")
			},
			want: "4bf92f3577b34da6a3ce929d0e0e4736",
		},
		{
			name: "echoed request id",
			setup: func(c *gin.Context) {
				c.Header("X-Request-ID", "generated-789")
				c.Request.Header.Set("X-Request-ID", "")
			},
			want: "generated-789",
		},
		{
			name:  "request id header",
			setup: func(c *gin.Context) { c.Request.Header.Set("X-Request-ID", "header-456") },
			want:  "header-456",
		},
		{
			name:  "nothing",
			setup: func(*gin.Context) {},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(http.MethodGet, "/", "")
			tt.setup(c)

			assert.Equal(t, tt.want, GetTraceID(c))
		})
	}
}

func TestHandleError(t *testing.T) {
	c, w := newContext(http.MethodGet, "/", "")
	c.Set(ContextKeyTraceID, "trace-abc")

	HandleError(c, domain.NewForbiddenError("get reading", "not the owner"))

	assert.Equal(t, http.StatusForbidden, w.Code)

	body := w.Body.String()
	assert.Equal(t, ErrorCodeForbidden, gjson.Get(body, "error.code").String())
	assert.Contains(t, gjson.Get(body, "error.message").String(), "not the owner")
	assert.Equal(t, "trace-abc", gjson.Get(body, "traceId").String())
	assert.False(t, gjson.Get(body, "error.details").Exists())
}

func TestAbortWithError(t *testing.T) {
	c, w := newContext(http.MethodGet, "/", "")

	AbortWithError(c, domain.NewUnauthorizedError("token expired"))

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, ErrorCodeUnauthorized, gjson.Get(w.Body.String(), "error.code").String())
}

func TestAbortWithCode(t *testing.T) {
	c, w := newContext(http.MethodGet, "/", "")

	AbortWithCode(c, ErrorCodeRateLimited, "too many requests")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "too many requests", gjson.Get(w.Body.String(), "error.message").String())
}

func TestBindAndValidate_CalculateRequest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantDetails map[string]string
	}{
		{
			name:       "valid",
			body:       `{"name":"John","dob":"1990-05-15"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing both",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantDetails: map[string]string{
				"name": "this field is required",
				"dob":  "this field is required",
			},
		},
		{
			name:        "blank name",
			body:        `{"name":"   ","dob":"1990-05-15"}`,
			wantStatus:  http.StatusBadRequest,
			wantDetails: map[string]string{"name": "must not be blank"},
		},
		{
			name:        "bad date",
			body:        `{"name":"John","dob":"15/05/1990"}`,
			wantStatus:  http.StatusBadRequest,
			wantDetails: map[string]string{"dob": "must be a date in YYYY-MM-DD form"},
		},
		{
			name:        "name too long",
			body:        `{"name":"` + strings.Repeat("a", 201) + `","dob":"1990-05-15"}`,
			wantStatus:  http.StatusBadRequest,
			wantDetails: map[string]string{"name": "must be at most 200 characters"},
		},
		{
			name:       "malformed json",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext(http.MethodPost, "/", tt.body)

			var req CalculateRequest

			err := BindAndValidate(c, &req)
			if tt.wantStatus == http.StatusOK {
				require.NoError(t, err)
				assert.Equal(t, CalculateRequest{Name: "John", DOB: "1990-05-15"}, req)

				return
			}

			require.Error(t, err)
			RespondWithBindError(c, err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, ErrorCodeValidation, gjson.Get(w.Body.String(), "error.code").String())

			if tt.wantDetails != nil {
				assert.Equal(t, tt.wantDetails, ValidationErrors(err))
			}
		})
	}
}

func TestRespondWithBindError_TooLarge(t *testing.T) {
	c, w := newContext(http.MethodPost, "/", `{"name":"John","dob":"1990-05-15"}`)
	c.Request.Body = http.MaxBytesReader(w, c.Request.Body, 8)

	var req CalculateRequest

	err := BindAndValidate(c, &req)
	require.ErrorIs(t, err, ErrBinding)

	RespondWithBindError(c, err)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "request body exceeds 8 bytes", gjson.Get(w.Body.String(), "error.message").String())
}

func TestBindQueryAndValidate_PageQuery(t *testing.T) {
	tests := []struct {
		query   string
		want    domain.PageRequest
		wantErr bool
	}{
		{query: "", want: domain.PageRequest{Page: 1, Limit: 10}},
		{query: "?page=3&limit=5", want: domain.PageRequest{Page: 3, Limit: 5}},
		{query: "?limit=1000", want: domain.PageRequest{Page: 1, Limit: 100}},
		{query: "?page=0", want: domain.PageRequest{Page: 1, Limit: 10}},
		{query: "?page=-1", wantErr: true},
		{query: "?page=abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := newContext(http.MethodGet, "/history"+tt.query, "")

			var q PageQuery

			err := BindQueryAndValidate(c, &q)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, q.ToDomain())
		})
	}
}

func TestCredentialsRequest_Validation(t *testing.T) {
	err := Validate(&CredentialsRequest{Email: "nope", Password: "short"})
	require.ErrorIs(t, err, ErrValidation)

	assert.Equal(t, map[string]string{
		"email":    "must be a valid email address",
		"password": "must be at least 8 characters",
	}, ValidationErrors(err))

	require.NoError(t, Validate(&CredentialsRequest{Email: "ada@example.com", Password: "correct horse"}))
}

func TestNewReadingResponse(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	reading := &domain.Reading{
		ID:               "r-1",
		Name:             "JOHN",
		DateOfBirth:      "1990-05-15",
		LifePathNumber:   3,
		ExpressionNumber: 2,
		SoulUrgeNumber:   6,
		OwnerID:          "u-1",
		CreatedAt:        created,
	}

	url := func(id string) string { return "/api/v1/reports/" + id }

	resp := NewReadingResponse(reading, url)
	assert.Nil(t, resp.PDFURL)
	assert.Equal(t, NamedNumber{Name: NameLifePath, Value: 3}, resp.Readings.LifePath)
	assert.Equal(t, NamedNumber{Name: NameExpression, Value: 2}, resp.Readings.Expression)
	assert.Equal(t, NamedNumber{Name: NameSoulUrge, Value: 6}, resp.Readings.SoulUrge)

	reading.ReportID = "rep-1"
	resp = NewReadingResponse(reading, url)
	require.NotNil(t, resp.PDFURL)
	assert.Equal(t, "/api/v1/reports/rep-1", *resp.PDFURL)
}

func TestNewHistoryResponse(t *testing.T) {
	empty := NewHistoryResponse(domain.NewPage[*domain.Reading](nil, domain.PageRequest{Page: 1, Limit: 10}, 0), nil)

	assert.Equal(t, "Numerology History", empty.Title)
	assert.Equal(t, "No numerology history found", empty.Message)
	assert.NotNil(t, empty.Readings)
	assert.Empty(t, empty.Readings)

	page := domain.NewPage(
		[]*domain.Reading{{ID: "a"}, {ID: "b"}},
		domain.PageRequest{Page: 2, Limit: 2},
		5,
	)

	resp := NewHistoryResponse(page, nil)

	assert.Empty(t, resp.Message)
	assert.Len(t, resp.Readings, 2)
	assert.Equal(t, Pagination{
		CurrentPage:  2,
		TotalPages:   3,
		TotalItems:   5,
		ItemsPerPage: 2,
		HasNext:      true,
		HasPrev:      true,
	}, resp.Pagination)
}
