// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/technsat/storefront/internal/auth"
	"github.com/technsat/storefront/internal/changefeed"
	"github.com/technsat/storefront/internal/config"
	"github.com/technsat/storefront/internal/handlers"
	"github.com/technsat/storefront/internal/middleware"
	"github.com/technsat/storefront/internal/services"
	"github.com/technsat/storefront/internal/showcase"
	"github.com/technsat/storefront/internal/utils"
)

// Initialize wires services, the showcase store, and all routes. db may be
// nil when the catalog service is unconfigured; everything degrades to
// empty collections and default settings.
func Initialize(db *gorm.DB, feed changefeed.Broker, cfg *config.Config) (*gin.Engine, *showcase.Store) {
	offerService := services.NewOfferService(db, feed)
	boxService := services.NewBoxService(db, feed)
	receiverService := services.NewReceiverService(db, feed)
	accessoryService := services.NewAccessoryService(db, feed)
	settingsService := services.NewSettingsService(db, feed)
	storageService, _ := services.NewStorageService(&cfg.Storage)

	store := showcase.NewStore(feed, offerService, boxService, receiverService, accessoryService, settingsService)

	authenticator := auth.NewStaticAuthenticator(cfg.Admin)

	authHandler := handlers.NewAuthHandler(authenticator, cfg.JWT.AccessTokenTTL)
	offerHandler := handlers.NewOfferHandler(store, offerService)
	boxHandler := handlers.NewBoxHandler(store, boxService)
	receiverHandler := handlers.NewReceiverHandler(store, receiverService)
	accessoryHandler := handlers.NewAccessoryHandler(store, accessoryService)
	settingsHandler := handlers.NewSettingsHandler(store, settingsService)
	homeHandler := handlers.NewHomeHandler(store)
	redirectHandler := handlers.NewRedirectHandler(store, cfg.Contact.WhatsAppURL)
	uploadHandler := handlers.NewUploadHandler(storageService)

	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	r.GET("/health", func(c *gin.Context) {
		status := "healthy"
		if db == nil {
			status = "degraded"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":             status,
			"catalog_configured": db != nil,
		})
	})

	v1 := r.Group("/v1")
	{
		v1.GET("/home", homeHandler.GetHome)
		v1.GET("/offers", offerHandler.GetOffers)
		v1.GET("/android-boxes", boxHandler.GetBoxes)
		v1.GET("/android-boxes/:id", boxHandler.GetBox)
		v1.GET("/satellite-receivers", receiverHandler.GetReceivers)
		v1.GET("/accessories", accessoryHandler.GetAccessories)
		v1.GET("/accessories/categories", accessoryHandler.GetCategories)
		v1.GET("/settings", settingsHandler.GetSettings)
		v1.GET("/go/:entity/:id", redirectHandler.Go)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuditLogMiddleware(db))
	{
		admin.POST("/login", middleware.LoginRateLimit(), authHandler.Login)

		protected := admin.Group("")
		protected.Use(middleware.AdminRequired())
		{
			protected.POST("/logout", authHandler.Logout)

			protected.POST("/offers", offerHandler.CreateOffer)
			protected.PUT("/offers/:id", offerHandler.UpdateOffer)
			protected.DELETE("/offers/:id", offerHandler.DeleteOffer)

			protected.POST("/android-boxes", boxHandler.CreateBox)
			protected.PUT("/android-boxes/:id", boxHandler.UpdateBox)
			protected.DELETE("/android-boxes/:id", boxHandler.DeleteBox)

			protected.POST("/satellite-receivers", receiverHandler.CreateReceiver)
			protected.PUT("/satellite-receivers/:id", receiverHandler.UpdateReceiver)
			protected.DELETE("/satellite-receivers/:id", receiverHandler.DeleteReceiver)

			protected.POST("/accessories", accessoryHandler.CreateAccessory)
			protected.PUT("/accessories/:id", accessoryHandler.UpdateAccessory)
			protected.DELETE("/accessories/:id", accessoryHandler.DeleteAccessory)

			protected.PUT("/settings", settingsHandler.UpdateSettings)

			protected.POST("/uploads", middleware.UploadRateLimit(), uploadHandler.UploadImage)
		}
	}

	return r, store
}
