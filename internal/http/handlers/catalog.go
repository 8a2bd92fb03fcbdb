package handlers

import (
	"net/http"

	"umrah/internal/domain"
	"umrah/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/packages
func ListPackages(c *gin.Context) {
	list, err := catalogSvc(c).ListPackages(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/packages/:id
func GetPackage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := catalogSvc(c).GetPackage(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GET /api/trips
func ListTrips(c *gin.Context) {
	list, err := catalogSvc(c).ListTrips(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Admin CRUD is generated per kind from the typed input and update forms.

// MountEntity registers GET/POST/PUT/DELETE for one admin-managed kind.
func MountEntity[In services.Validator, Upd services.UpdateForm](g *gin.RouterGroup, kind domain.Kind, entity func(services.CatalogService) services.Entity[In, Upd]) {
	g.GET("", listKind(kind))
	g.POST("", createEntity(entity))
	g.PUT("/:id", updateEntity(entity))
	g.DELETE("/:id", deleteEntity(entity))
}

func listKind(kind domain.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, err := catalogSvc(c).ListEntities(c.Request.Context(), kind)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

func createEntity[In services.Validator, Upd services.UpdateForm](entity func(services.CatalogService) services.Entity[In, Upd]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in In
		if !BindJSONOrError(c, &in) {
			return
		}
		id, err := entity(catalogSvc(c)).Create(c.Request.Context(), session(c), in)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": id})
	}
}

func updateEntity[In services.Validator, Upd services.UpdateForm](entity func(services.CatalogService) services.Entity[In, Upd]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var upd Upd
		if !BindJSONOrError(c, &upd) {
			return
		}
		if err := entity(catalogSvc(c)).Update(c.Request.Context(), session(c), id, upd); err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "data diperbarui", "id": id})
	}
}

func deleteEntity[In services.Validator, Upd services.UpdateForm](entity func(services.CatalogService) services.Entity[In, Upd]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := entity(catalogSvc(c)).Delete(c.Request.Context(), session(c), id); err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "data dihapus", "id": id})
	}
}

// GET /api/admin/entities/:kind returns any table as columns and rows.
func ListEntities(c *gin.Context) {
	kind, err := domain.ParseKind(c.Param("kind"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	listKind(kind)(c)
}
