package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/numerology-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/numerology-service/internal/domain"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func clock() time.Time { return fixedNow }

func staticID(id string) func() string {
	return func() string { return id }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// asUser stands in for RequireAuth.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Set(middleware.ContextKeyIdentity, &domain.Identity{UserID: userID, Email: userID + "@example.com"})
		}

		c.Next()
	}
}

func serve(router *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	var reader io.Reader

	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func requireJSON(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	require.Contains(t, w.Header().Get("Content-Type"), "application/json")
	require.True(t, json.Valid(w.Body.Bytes()), "body: %s", w.Body.String())

	return w.Body.String()
}

