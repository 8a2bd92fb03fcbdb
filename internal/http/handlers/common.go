package handlers

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	intconfig "umrah/internal/config"
	"umrah/internal/domain"
	"umrah/internal/http/middleware"
	"umrah/internal/services"

	"github.com/gin-gonic/gin"
)

var (
	settingsMu sync.RWMutex
	settings   = intconfig.Env{JWTSecret: "change-me-umrah-portal", JWTTTL: 24 * time.Hour, UploadDir: "upload", MaxUploadBytes: 10 << 20}
)

// Configure stores the runtime settings handlers need (secret, upload dir).
func Configure(env intconfig.Env) {
	if env.MaxUploadBytes <= 0 {
		env.MaxUploadBytes = 10 << 20
	}
	if env.JWTTTL <= 0 {
		env.JWTTTL = 24 * time.Hour
	}
	if env.UploadDir == "" {
		env.UploadDir = "upload"
	}
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = env
}

func currentSettings() intconfig.Env {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// RespondError sends standard error payload with request_id included.
// Keeps backward compatibility by always providing "message".
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		RespondError(c, http.StatusBadRequest, "body kosong", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "payload tidak valid", err)
		return false
	}
	return true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", err)
		return 0, false
	}
	return id, true
}

// Service constructors. Repositories are left zero so they use config.DB.

func activitySvc(c *gin.Context) services.ActivityService {
	return services.ActivityService{RequestID: middleware.GetRequestID(c)}
}

// AuthService builds the token issuer/parser from the current settings.
func AuthService(requestID string) services.AuthService {
	s := currentSettings()
	return services.AuthService{
		Activity:  services.ActivityService{RequestID: requestID},
		Secret:    []byte(s.JWTSecret),
		TTL:       s.JWTTTL,
		RequestID: requestID,
	}
}

func bookingSvc(c *gin.Context) services.BookingService {
	rid := middleware.GetRequestID(c)
	return services.BookingService{
		Uploads:   services.UploadStore{Dir: currentSettings().UploadDir},
		Docs:      services.DocsService{RequestID: rid},
		Activity:  activitySvc(c),
		RequestID: rid,
	}
}

func supportSvc(c *gin.Context) services.SupportService {
	return services.SupportService{Activity: activitySvc(c), RequestID: middleware.GetRequestID(c)}
}

func catalogSvc(c *gin.Context) services.CatalogService {
	return services.CatalogService{Activity: activitySvc(c), RequestID: middleware.GetRequestID(c)}
}

func userSvc(c *gin.Context) services.UserService {
	return services.UserService{Activity: activitySvc(c), RequestID: middleware.GetRequestID(c)}
}

func session(c *gin.Context) domain.RequestContext {
	return middleware.GetSession(c)
}
