package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dsavelev/garagekeeper/internal/common"
)

func abort(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// abortWithError maps the shared sentinel errors to HTTP statuses. Anything
// unrecognized is a 500 with a generic body so internals do not leak.
func (s *Server) abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		abort(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrRefreshTokenExpired),
		errors.Is(err, common.ErrResetTokenExpired):
		abort(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		abort(c, http.StatusNotFound, "not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		abort(c, http.StatusConflict, "already exists")
	default:
		s.logger.Error(c.Request.Context(), "request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
		abort(c, http.StatusInternalServerError, "internal error")
	}
}

func abortBadRequest(c *gin.Context, err error) {
	abort(c, http.StatusBadRequest, "invalid request body: "+err.Error())
}
