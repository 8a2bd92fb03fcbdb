package middleware

import (
	"context"
	"fmt"
	"net/http"

	"umrah/internal/domain"
	"umrah/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequireRoles only lets through sessions whose role is listed.
// Session must run first.
func RequireRoles(allowed ...domain.Role) gin.HandlerFunc {
	set := make(map[domain.Role]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}

	return func(c *gin.Context) {
		rc := GetSession(c)
		if !rc.LoggedIn() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "wajib login",
				"request_id": GetRequestID(c),
			})
			return
		}
		if _, ok := set[rc.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":      "role " + rc.Role.String() + " tidak diizinkan",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}

func RequireLogin() gin.HandlerFunc { return RequireRoles(domain.RoleAdmin, domain.RoleTraveller) }

func RequireAdmin() gin.HandlerFunc { return RequireRoles(domain.RoleAdmin) }

// AccountLookup reads an account's role from the store.
type AccountLookup interface {
	CurrentRole(ctx context.Context, userID int64) (domain.Role, error)
}

// RecheckAdmin replaces the role of an admin token with the role stored for
// the account, so a demoted or deleted admin loses access before the token
// expires. Other sessions pass through untouched. Run it before RequireAdmin.
func RecheckAdmin(l AccountLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		rc := GetSession(c)
		if !rc.IsAdmin() {
			c.Next()
			return
		}
		role, err := l.CurrentRole(c.Request.Context(), rc.UserID)
		if domain.IsNotFound(err) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "akun tidak ditemukan",
				"request_id": GetRequestID(c),
			})
			return
		}
		if err != nil {
			utils.LogWarn(GetRequestID(c), "auth", "recheck_role", fmt.Sprintf("user_id=%d err=%v", rc.UserID, err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":      "gagal memeriksa akun",
				"request_id": GetRequestID(c),
			})
			return
		}
		if role != rc.Role {
			utils.LogWarn(GetRequestID(c), "auth", "role_changed", fmt.Sprintf("user_id=%d token_role=%s role=%s", rc.UserID, rc.Role, role))
			rc.Role = role
			c.Set(sessionKey, rc)
		}
		c.Next()
	}
}
