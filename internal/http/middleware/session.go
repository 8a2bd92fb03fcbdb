package middleware

import (
	"net/http"
	"strings"

	"umrah/internal/domain"
	"umrah/internal/utils"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// TokenParser turns a bearer token into the caller's session.
type TokenParser interface {
	ParseToken(raw string) (domain.RequestContext, error)
}

// Session resolves the bearer token once per request. Requests without a
// token continue as visitors; a bad token is rejected with 401.
func Session(p TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := strings.TrimSpace(c.GetHeader("Authorization"))
		if h == "" {
			c.Next()
			return
		}
		raw, ok := strings.CutPrefix(h, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "format Authorization harus Bearer <token>"})
			return
		}
		rc, err := p.ParseToken(strings.TrimSpace(raw))
		if err != nil {
			utils.LogWarn(GetRequestID(c), "auth", "parse_token", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token tidak valid atau kedaluwarsa"})
			return
		}
		c.Set(sessionKey, rc)
		c.Next()
	}
}

// GetSession returns the caller; visitors get the zero value.
func GetSession(c *gin.Context) domain.RequestContext {
	if c == nil {
		return domain.RequestContext{}
	}
	if v, ok := c.Get(sessionKey); ok {
		if rc, ok := v.(domain.RequestContext); ok {
			return rc
		}
	}
	return domain.RequestContext{}
}
