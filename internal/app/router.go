package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"ridelite/internal/handler"
	"ridelite/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	AuthHandler   *handler.AuthHandler
	RideHandler   *handler.RideHandler
	WalletHandler *handler.WalletHandler
	TripHandler   *handler.TripHandler
	MetaHandler   *handler.MetaHandler
	RedisClient   *redis.Client // nil in memory mode; disables replay protection
	NewRelicApp   *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	if deps.RedisClient != nil {
		router.Use(middleware.ReplayGuard(deps.RedisClient))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Session routes.
		auth := v1.Group("/auth")
		{
			auth.POST("/login", deps.AuthHandler.Login)
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/logout", deps.AuthHandler.Logout)
			auth.GET("/me", deps.AuthHandler.Me)
			auth.PUT("/profile", deps.AuthHandler.UpdateProfile)
		}

		// Ride matching routes.
		rides := v1.Group("/rides")
		{
			rides.POST("", deps.RideHandler.RequestRide)
			rides.GET("/status", deps.RideHandler.Status)
			rides.POST("/confirm", deps.RideHandler.Confirm)
			rides.POST("/cancel", deps.RideHandler.Cancel)
			rides.POST("/retry", deps.RideHandler.Retry)
			rides.POST("/dismiss", deps.RideHandler.Dismiss)
			rides.GET("/upcoming", deps.RideHandler.Upcoming)
			rides.DELETE("/upcoming", deps.RideHandler.CancelUpcoming)
			rides.POST("/upcoming/pay", deps.RideHandler.StagePayment)
		}

		// Wallet routes.
		wallet := v1.Group("/wallet")
		{
			wallet.GET("", deps.WalletHandler.Get)
			wallet.POST("/topup", deps.WalletHandler.TopUp)
			wallet.POST("/method", deps.WalletHandler.SelectMethod)
			wallet.POST("/pay", deps.WalletHandler.Pay)
			wallet.GET("/pending", deps.WalletHandler.Pending)
		}

		// Trip history.
		v1.GET("/trips", deps.TripHandler.GetAll)

		// Static catalogues.
		v1.GET("/ride-types", deps.MetaHandler.RideTypes)
		v1.GET("/locations", deps.MetaHandler.Locations)
	}

	return router
}
