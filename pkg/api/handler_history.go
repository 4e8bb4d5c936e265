package api

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/casemine/casemine/pkg/models"
	"github.com/casemine/casemine/pkg/services"
)

// createLinkToken handles POST /history/link-token. The collaborator
// asks for a fresh token when the one in its HISTORY_LINK notification
// has expired. The admin must be bound to the group, or mid-way through
// binding it.
func (s *Server) createLinkToken(c *gin.Context) {
	var req models.LinkTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AdminID == "" || req.GroupID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "admin_id and group_id are required"})
		return
	}

	ctx := c.Request.Context()
	authorized := false

	groups, err := s.admins.GroupsForAdmin(ctx, req.AdminID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	for _, g := range groups {
		if g == req.GroupID {
			authorized = true
			break
		}
	}

	if !authorized {
		session, err := s.admins.GetSession(ctx, req.AdminID)
		if err != nil && !errors.Is(err, services.ErrNotFound) {
			abortWithServiceError(c, err)
			return
		}
		if session != nil && session.PendingGroupID != nil && *session.PendingGroupID == req.GroupID {
			authorized = true
		}
	}

	if !authorized {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin is not bound to this group"})
		return
	}

	tok, err := s.admins.CreateToken(ctx, req.AdminID, req.GroupID, s.cfg.Retention.TokenTTL)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.LinkTokenResponse{
		Token:  tok.ID,
		QRHint: "scan the login QR with the history account within the token lifetime",
	})
}

// qrReady handles POST /history/qr-ready: the collaborator has a login
// QR and wants it relayed to the admin's DM.
func (s *Server) qrReady(c *gin.Context) {
	var req models.QRReadyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	png, err := base64.StdEncoding.DecodeString(req.QRPNGBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "qr_png_base64 is not valid base64"})
		return
	}

	if err := s.importer.RelayQR(c.Request.Context(), req.Token, png); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// importCases handles POST /history/cases, the bulk import that ends a
// history-bootstrap session. The token is burned on first use.
func (s *Server) importCases(c *gin.Context) {
	var req models.HistoryCasesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := s.importer.ImportCases(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
