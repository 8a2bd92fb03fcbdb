package api

import (
	"log"
	stdhttp "net/http"

	intconfig "umrah/internal/config"
	"umrah/internal/domain"
	h "umrah/internal/http/handlers"
	"umrah/internal/http/middleware"
	"umrah/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins), middleware.Session(h.AuthService("")))
	r.MaxMultipartMemory = env.MaxUploadBytes

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/me", middleware.RequireLogin(), h.Me)

		// Public catalog
		api.GET("/packages", h.ListPackages)
		api.GET("/packages/:id", h.GetPackage)
		api.GET("/trips", h.ListTrips)

		// Traveller
		traveller := api.Group("", middleware.RequireLogin())
		traveller.POST("/bookings", h.CreateBooking)
		traveller.POST("/bookings/:id/files", h.AttachBookingFile)
		traveller.GET("/bookings/:id/files", h.ListBookingFiles)
		traveller.GET("/bookings/:id/voucher", h.BookingVoucher)
		traveller.POST("/support", h.CreateSupport)
		traveller.GET("/me/bookings", h.MyBookings)
		traveller.GET("/me/support", h.MySupport)
		traveller.GET("/me/dashboard", h.MyDashboard)

		// Admin
		admin := api.Group("/admin", middleware.RecheckAdmin(h.AuthService("")), middleware.RequireAdmin())
		mountEntities(admin)

		users := admin.Group("/users")
		users.GET("", h.AdminListUsers)
		users.POST("", h.AdminCreateUser)
		users.PUT("/:id", h.AdminUpdateUser)
		users.DELETE("/:id", h.AdminDeleteUser)

		admin.GET("/bookings", h.AdminListBookings)
		admin.PUT("/bookings/:id/status", h.AdminUpdateBookingStatus)
		admin.DELETE("/bookings/:id", h.AdminDeleteBooking)
		admin.GET("/support", h.AdminListSupport)
		admin.PUT("/support/:id/status", h.AdminUpdateSupportStatus)
		admin.DELETE("/support/:id", h.AdminDeleteSupport)
		admin.GET("/activity", h.AdminActivity)
		admin.GET("/overview", h.AdminOverview)
		admin.GET("/export/:kind", h.AdminExport)
		admin.GET("/entities/:kind", h.ListEntities)
	}

	h.SetRouter(r)
	return r
}

func mountEntities(admin *gin.RouterGroup) {
	h.MountEntity(admin.Group("/packages"), domain.KindPackages, services.CatalogService.PackageAdmin)
	h.MountEntity(admin.Group("/hotels"), domain.KindHotels, services.CatalogService.HotelAdmin)
	h.MountEntity(admin.Group("/guides"), domain.KindGuides, services.CatalogService.GuideAdmin)
	h.MountEntity(admin.Group("/trips"), domain.KindTrips, services.CatalogService.TripAdmin)
	h.MountEntity(admin.Group("/buses"), domain.KindBuses, services.CatalogService.BusAdmin)
	h.MountEntity(admin.Group("/travellers"), domain.KindTravellers, services.CatalogService.TravellerAdmin)
}
