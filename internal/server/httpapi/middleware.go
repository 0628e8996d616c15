package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dsavelev/garagekeeper/internal/server/auth"
)

const userIDCtxKey = "user_id"

// authMiddleware requires a valid "Authorization: Bearer <jwt>" header and
// stores the token's user ID in the request context.
func (s *Server) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		abort(c, http.StatusUnauthorized, "authorization header required")
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		abort(c, http.StatusUnauthorized, "invalid authorization header")
		return
	}

	userID, err := auth.GetUserIDFromToken(parts[1], s.jwtSecret)
	if err != nil {
		abort(c, http.StatusUnauthorized, "invalid token")
		return
	}

	c.Set(userIDCtxKey, userID)
	c.Next()
}

func userIDFrom(c *gin.Context) (string, bool) {
	v, ok := c.Get(userIDCtxKey)
	if !ok {
		abort(c, http.StatusUnauthorized, "no user in context")
		return "", false
	}
	userID, _ := v.(string)
	return userID, true
}

// optionalQuery returns a pointer to the query value, nil when absent.
func optionalQuery(c *gin.Context, name string) *string {
	if v, ok := c.GetQuery(name); ok && v != "" {
		return &v
	}
	return nil
}
