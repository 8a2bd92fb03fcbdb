package handlers

import (
	"errors"
	"net/http"

	"umrah/internal/domain/models"
	"umrah/internal/http/middleware"
	"umrah/internal/services"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var in models.UserInput
	if !BindJSONOrError(c, &in) {
		return
	}
	u, err := AuthService(middleware.GetRequestID(c)).Register(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "registrasi berhasil", "user": u})
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	token, u, err := AuthService(middleware.GetRequestID(c)).Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrBadCredentials) {
			respondError(c, http.StatusUnauthorized, "bad_credentials", err.Error(), nil)
			return
		}
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": u})
}

// GET /api/auth/me
func Me(c *gin.Context) {
	u, err := userSvc(c).Me(c.Request.Context(), session(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
