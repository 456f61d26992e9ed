package middleware

import (
	"net/http"
	"strings"

	"github.com/vivekmohanraj/EventSphere/internal/auth"
	"github.com/wb-go/wbf/ginext"
)

const (
	// CtxUserID and CtxRole hold the authenticated caller. Handlers read
	// them once and pass the role into core operations as an explicit
	// parameter.
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// Auth rejects requests without a valid bearer token.
func Auth(tokens *auth.TokenIssuer) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		identity, ok := bearerIdentity(c, tokens)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid or missing token"})
			return
		}

		c.Set(CtxUserID, identity.UserID)
		c.Set(CtxRole, string(identity.Role))
		c.Next()
	}
}

// OptionalAuth extracts the caller when a token is present but lets
// anonymous requests through. Public listings use it to scope results.
func OptionalAuth(tokens *auth.TokenIssuer) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if identity, ok := bearerIdentity(c, tokens); ok {
			c.Set(CtxUserID, identity.UserID)
			c.Set(CtxRole, string(identity.Role))
		}
		c.Next()
	}
}

func bearerIdentity(c *ginext.Context, tokens *auth.TokenIssuer) (*auth.Identity, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}

	identity, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return nil, false
	}

	return identity, true
}
