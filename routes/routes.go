package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"travel-backend/controllers"
	"travel-backend/middleware"
	"travel-backend/services"
	"travel-backend/utils"
)

func parseCorsOrigins() []string {
	raw := utils.EnvOrDefault("CORS_ORIGINS", "*")

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controller instances onto the public and admin route
// groups.
func SetupRouter(
	authCtrl *controllers.AuthController,
	pkgCtrl *controllers.PackageController,
	bookingCtrl *controllers.BookingController,
	adminCtrl *controllers.AdminController,
	subCtrl *controllers.SubscriberController,
	auth services.AuthService,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		packages := api.Group("/packages")
		{
			packages.GET("", pkgCtrl.List)
			packages.GET("/:id", pkgCtrl.Get)
			packages.GET("/:id/recommended", pkgCtrl.Recommended)
		}

		api.POST("/bookings", bookingCtrl.Create)
		api.POST("/subscriber", subCtrl.Create)

		api.POST("/register", authCtrl.Register)
		api.POST("/login", authCtrl.Login)
		api.POST("/logout", authCtrl.Logout)
		api.GET("/auth/check", authCtrl.Check)

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin(auth))
		{
			admin.GET("/dashboard", adminCtrl.Dashboard)

			adminPackages := admin.Group("/packages")
			{
				adminPackages.GET("", adminCtrl.ListPackages)
				adminPackages.POST("", adminCtrl.CreatePackage)
				adminPackages.GET("/:id", adminCtrl.GetPackage)
				adminPackages.PUT("/:id", adminCtrl.UpdatePackage)
				adminPackages.DELETE("/:id", adminCtrl.DeletePackage)
			}

			adminBookings := admin.Group("/bookings")
			{
				adminBookings.GET("", bookingCtrl.List)
				adminBookings.PATCH("/:id/status", bookingCtrl.UpdateStatus)
				adminBookings.GET("/:id/voucher", bookingCtrl.Voucher)
			}

			admin.GET("/users", adminCtrl.ListCustomers)
		}
	}

	return r
}
