package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr        string
	GinMode        string
	DBDSN          string
	JWTSecret      string
	JWTTTL         time.Duration
	UploadDir      string
	CORSOrigins    []string
	DBAutoMigrate  bool
	MaxUploadBytes int64
	AdminEmail     string
	AdminPassword  string
}

// LoadEnv reads .env (when present) and then the process environment.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: gagal membaca .env: %v", err)
	}

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "change-me-umrah-portal"
		log.Println("warning: JWT_SECRET kosong, memakai secret default")
	}

	ttl := 24 * time.Hour
	if v := strings.TrimSpace(os.Getenv("JWT_TTL_HOURS")); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h > 0 {
			ttl = time.Duration(h) * time.Hour
		}
	}

	uploadDir := strings.TrimSpace(os.Getenv("UPLOAD_DIR"))
	if uploadDir == "" {
		uploadDir = "upload"
	}

	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	maxUpload := int64(10 << 20)
	if v := strings.TrimSpace(os.Getenv("MAX_UPLOAD_MB")); v != "" {
		if mb, err := strconv.ParseInt(v, 10, 64); err == nil && mb > 0 {
			maxUpload = mb << 20
		}
	}

	return Env{
		AppAddr:        appAddr,
		GinMode:        strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDSN:          buildDSN(),
		JWTSecret:      secret,
		JWTTTL:         ttl,
		UploadDir:      uploadDir,
		CORSOrigins:    origins,
		DBAutoMigrate:  parseBool(os.Getenv("DB_AUTO_MIGRATE"), true),
		MaxUploadBytes: maxUpload,
		AdminEmail:     strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
	}
}

func buildDSN() string {
	if dsn := strings.TrimSpace(os.Getenv("DB_DSN")); dsn != "" {
		return withRequiredParams(dsn)
	}
	user := envOr("DB_USER", "root")
	pass := os.Getenv("DB_PASS")
	host := envOr("DB_HOST", "127.0.0.1:3306")
	name := envOr("DB_NAME", "umrah")
	return withRequiredParams(fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&loc=Local&timeout=5s&readTimeout=30s&writeTimeout=30s", user, pass, host, name))
}

// withRequiredParams forces parseTime and clientFoundRows; RowsAffected must
// report matched rows so an unchanged UPDATE is not mistaken for a missing id.
func withRequiredParams(dsn string) string {
	for _, p := range []string{"parseTime=true", "clientFoundRows=true"} {
		key := p[:strings.Index(p, "=")+1]
		if strings.Contains(dsn, key) {
			continue
		}
		if strings.Contains(dsn, "?") {
			dsn += "&" + p
		} else {
			dsn += "?" + p
		}
	}
	return dsn
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func parseBool(v string, def bool) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
