package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetCredential handles PUT /api/v1/credentials/:credential_kind.
func (s *Server) SetCredential(c *gin.Context) {
	var req SetCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.credentials.Set(c.Request.Context(), projectID(c), c.Param("credential_kind"), req.Value); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetCredential handles GET /api/v1/credentials/:credential_kind.
func (s *Server) GetCredential(c *gin.Context) {
	var value map[string]interface{}
	if err := s.credentials.Get(c.Request.Context(), projectID(c), c.Param("credential_kind"), &value); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"value": value})
}

// DeleteCredential handles DELETE /api/v1/credentials/:credential_kind.
func (s *Server) DeleteCredential(c *gin.Context) {
	if err := s.credentials.Delete(c.Request.Context(), projectID(c), c.Param("credential_kind")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
