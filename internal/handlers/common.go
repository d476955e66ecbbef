package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// archiveRequest is the body accepted by every archive endpoint.
type archiveRequest struct {
	ArchiveNote string `json:"archiveNote"`
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func parseQueryID(c *gin.Context, key string) (uint, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
