package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/numerology-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/numerology-service/internal/domain"
	"github.com/jsamuelsen/numerology-service/internal/platform/logging"
)

// ContextKeyIdentity is the gin context key for the authenticated caller.
const ContextKeyIdentity = "identity"

// Authenticator resolves a bearer token to the caller. *app.AuthService
// satisfies it.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Identity, error)
}

// RequireAuth rejects requests without a valid bearer token with 401.
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			dto.AbortWithError(c, domain.NewUnauthorizedError("missing bearer token"))
			return
		}

		if !authenticate(c, auth, token) {
			return
		}

		c.Next()
	}
}

// OptionalAuth attaches the caller when a bearer token is sent. A request
// without one passes through anonymously; an invalid token is still 401.
func OptionalAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		token, ok := bearerToken(header)
		if !ok {
			dto.AbortWithError(c, domain.NewUnauthorizedError("malformed authorization header"))
			return
		}

		if !authenticate(c, auth, token) {
			return
		}

		c.Next()
	}
}

// GetIdentity returns the authenticated caller, or nil for anonymous requests.
func GetIdentity(c *gin.Context) *domain.Identity {
	if v, ok := c.Get(ContextKeyIdentity); ok {
		if id, ok := v.(*domain.Identity); ok {
			return id
		}
	}

	return nil
}

// UserID returns the authenticated caller's id, or "".
func UserID(c *gin.Context) string {
	if id := GetIdentity(c); id != nil {
		return id.UserID
	}

	return ""
}

func authenticate(c *gin.Context, auth Authenticator, token string) bool {
	identity, err := auth.Authenticate(c.Request.Context(), token)
	if err != nil {
		dto.AbortWithError(c, err)
		return false
	}

	c.Set(ContextKeyIdentity, identity)

	ctx := ContextWithIdentity(c.Request.Context(), identity)
	ctx = logging.WithUserID(ctx, identity.UserID)
	c.Request = c.Request.WithContext(ctx)

	return true
}

// bearerToken parses "Bearer <token>". The scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
