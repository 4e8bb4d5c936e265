package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// health handles GET /api/health: the worker pool snapshot plus the
// vector index size, 503 when the pool or its database is down.
func (s *Server) health(c *gin.Context) {
	h := s.pool.Health()
	status := http.StatusOK
	state := "healthy"
	if !h.IsHealthy {
		status = http.StatusServiceUnavailable
		state = "unhealthy"
	}
	c.JSON(status, gin.H{
		"status":        state,
		"pool":          h,
		"index_entries": len(s.idx.ListIDs()),
	})
}
