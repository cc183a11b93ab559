package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	auth "gig-market/internal/authService"
	bids "gig-market/internal/bidService"
	gigs "gig-market/internal/gigService"
	handler "gig-market/services/market/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(gigService *gigs.GigService, bidService *bids.BidService, authService *auth.AuthService, jwtSecret string) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(MetricsMiddleware)       // prometheus request metrics

	gigHandler := handler.NewGigHandler(gigService)
	bidHandler := handler.NewBidHandler(bidService)
	authHandler := handler.NewAuthHandler(authService)

	authRequired := AuthRequired(jwtSecret)

	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.RegisterHandler)
			authGroup.POST("/login", authHandler.LoginHandler)
			authGroup.GET("/logout", authHandler.LogoutHandler)
			authGroup.GET("/me", authRequired, authHandler.MeHandler)
		}

		gigGroup := api.Group("/gigs")
		{
			gigGroup.GET("", gigHandler.ListGigsHandler)
			gigGroup.POST("", authRequired, gigHandler.CreateGigHandler)
			gigGroup.GET("/my", authRequired, gigHandler.MyGigsHandler)
			gigGroup.GET("/:gig_id", gigHandler.GetGigHandler)
			gigGroup.DELETE("/:gig_id", authRequired, gigHandler.DeleteGigHandler)
			gigGroup.POST("/:gig_id/bids", authRequired, bidHandler.SubmitBidHandler)
			gigGroup.GET("/:gig_id/bids", authRequired, bidHandler.ListGigBidsHandler)
		}

		bidGroup := api.Group("/bids")
		{
			bidGroup.GET("/my", authRequired, bidHandler.MyBidsHandler)
			bidGroup.POST("/:bid_id/hire", authRequired, bidHandler.HireBidHandler)
		}
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router
}
