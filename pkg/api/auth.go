package api

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stenobot-io/stenobot/ent"
	"github.com/stenobot-io/stenobot/ent/apikey"
)

// contextKeyProjectID is where the auth middleware stores the caller's
// project id.
const contextKeyProjectID = "project_id"

// DigestToken returns the stored form of an API token. Tokens are never
// persisted in clear.
func DigestToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// RequireAPIKey authenticates requests by bearer token and scopes them to
// the key's project.
func RequireAPIKey(client *ent.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		key, err := client.APIKey.Query().
			Where(
				apikey.TokenDigest(DigestToken(token)),
				apikey.DisabledAtIsNil(),
			).
			Only(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
			return
		}

		c.Set(contextKeyProjectID, key.ProjectID)
		c.Next()
	}
}

// projectID returns the authenticated project id set by RequireAPIKey.
func projectID(c *gin.Context) string {
	return c.GetString(contextKeyProjectID)
}
