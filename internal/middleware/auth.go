package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/gin-gonic/gin"

	"taskboard-api/pkg/response"
)

// OwnerIDKey is the gin context key carrying the authenticated owner id.
const OwnerIDKey = "owner_id"

// OwnerID returns the authenticated owner id set by Auth, or "".
func OwnerID(c *gin.Context) string {
	return c.GetString(OwnerIDKey)
}

// Auth validates the bearer token and puts the owner id on the context.
// Token format: "<owner_id>.<hex hmac-sha256(owner_id, secret)>". Verified
// resolutions are cached; the cache TTL bounds how long a token outlives a
// secret rotation.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if ownerID, ok := m.tokenCache.Get(token); ok {
			c.Set(OwnerIDKey, ownerID)
			c.Next()
			return
		}

		ownerID, ok := m.verifyToken(token)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		m.tokenCache.Add(token, ownerID)
		c.Set(OwnerIDKey, ownerID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func (m Middleware) verifyToken(token string) (string, bool) {
	idx := strings.LastIndex(token, ".")
	if idx <= 0 || idx == len(token)-1 {
		return "", false
	}
	ownerID, sigHex := token[:idx], token[idx+1:]

	expected, err := hex.DecodeString(sigHex)
	if err != nil {
		return "", false
	}

	mac := hmac.New(sha256.New, []byte(m.authSecret))
	mac.Write([]byte(ownerID))
	if !hmac.Equal(expected, mac.Sum(nil)) {
		return "", false
	}
	return ownerID, true
}
