package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Upload kinds map to object key prefixes so photos and receipts stay
// separable in the bucket.
var uploadPrefixes = map[string]string{
	"photo":   "photos",
	"receipt": "receipts",
}

type createUploadRequest struct {
	Kind string `json:"kind" binding:"required"`
}

type createUploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// handleCreateUpload mints an object key and a presigned PUT URL; the client
// uploads directly to storage and then stores the key on the entity.
func (s *Server) handleCreateUpload(c *gin.Context) {
	if _, ok := userIDFrom(c); !ok {
		return
	}

	var req createUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	prefix, ok := uploadPrefixes[req.Kind]
	if !ok {
		abort(c, http.StatusBadRequest, "unknown upload kind")
		return
	}

	key, url, err := s.storage.GetPresignedPutUrl(c.Request.Context(), prefix)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createUploadResponse{Key: key, URL: url})
}

func (s *Server) handleGetUploadURL(c *gin.Context) {
	if _, ok := userIDFrom(c); !ok {
		return
	}

	key := c.Query("key")
	if key == "" {
		abort(c, http.StatusBadRequest, "key is required")
		return
	}

	url, err := s.storage.GetPresignedGetUrl(c.Request.Context(), key)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (s *Server) handleDeleteUpload(c *gin.Context) {
	if _, ok := userIDFrom(c); !ok {
		return
	}

	key := c.Query("key")
	if key == "" {
		abort(c, http.StatusBadRequest, "key is required")
		return
	}

	if err := s.storage.DeleteObject(c.Request.Context(), key); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
