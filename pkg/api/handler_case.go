package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getCase handles GET /api/cases/:id, the web-viewer detail endpoint.
func (s *Server) getCase(c *gin.Context) {
	detail, err := s.cases.CaseDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
