package handlers

import (
	"net/http"

	"umrah/internal/domain"

	"github.com/gin-gonic/gin"
)

type supportRequest struct {
	Issue string `json:"issue"`
}

// POST /api/support
func CreateSupport(c *gin.Context) {
	var req supportRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	id, err := supportSvc(c).Create(c.Request.Context(), session(c), req.Issue)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "tiket bantuan terkirim", "id": id, "status": domain.SupportPending})
}

// GET /api/me/support
func MySupport(c *gin.Context) {
	list, err := supportSvc(c).ListMine(c.Request.Context(), session(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/admin/support
func AdminListSupport(c *gin.Context) {
	list, err := supportSvc(c).ListAll(c.Request.Context(), session(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// PUT /api/admin/support/:id/status
func AdminUpdateSupportStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req statusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	to, err := domain.ParseSupportStatus(req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := supportSvc(c).Transition(c.Request.Context(), session(c), id, to); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status tiket diperbarui", "id": id, "status": to})
}

// DELETE /api/admin/support/:id
func AdminDeleteSupport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := supportSvc(c).Delete(c.Request.Context(), session(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tiket dihapus", "id": id})
}
