package handlers

import (
	"net/http"
	"strconv"

	"umrah/internal/domain"
	"umrah/internal/domain/models"
	"umrah/internal/http/middleware"
	"umrah/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/overview
func AdminOverview(c *gin.Context) {
	out, err := services.ReportsService{}.Overview(c.Request.Context(), session(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/me/dashboard
func MyDashboard(c *gin.Context) {
	out, err := services.ReportsService{}.Dashboard(c.Request.Context(), session(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/admin/activity?limit=100
func AdminActivity(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			RespondError(c, http.StatusBadRequest, "limit tidak valid", err)
			return
		}
		limit = n
	}
	list, err := activitySvc(c).List(c.Request.Context(), session(c), limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/admin/export/:kind
func AdminExport(c *gin.Context) {
	kind, err := domain.ParseKind(c.Param("kind"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	svc := services.ExportService{Catalog: catalogSvc(c), RequestID: middleware.GetRequestID(c)}
	data, filename, err := svc.Export(c.Request.Context(), session(c), kind)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// GET /api/admin/users
func AdminListUsers(c *gin.Context) {
	list, err := userSvc(c).List(c.Request.Context(), session(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type userUpdateRequest struct {
	models.UserUpdate
	Password string `json:"password"`
}

// PUT /api/admin/users/:id
func AdminUpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req userUpdateRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := userSvc(c).Update(c.Request.Context(), session(c), id, req.UserUpdate, req.Password); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user diperbarui", "id": id})
}

// POST /api/admin/users creates an account with the given role (default traveller).
func AdminCreateUser(c *gin.Context) {
	var req struct {
		models.UserInput
		Role domain.Role `json:"role_id"`
	}
	if !BindJSONOrError(c, &req) {
		return
	}
	rc := session(c)
	u, err := AuthService(middleware.GetRequestID(c)).CreateAccount(c.Request.Context(), rc, req.UserInput, req.Role)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// DELETE /api/admin/users/:id
func AdminDeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := userSvc(c).Delete(c.Request.Context(), session(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user dihapus", "id": id})
}
