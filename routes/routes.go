package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/studiofit/studiofit-be/config"
	"github.com/studiofit/studiofit-be/controllers"
	"github.com/studiofit/studiofit-be/middleware"
	"github.com/studiofit/studiofit-be/websocket"
)

func SetupRoutes() *gin.Engine {
	r := gin.Default()

	// Initialize controllers
	authController := controllers.NewAuthController()
	adminController := controllers.NewAdminController()
	userController := controllers.NewUserController()
	classController := controllers.NewClassController()
	bookingController := controllers.NewBookingController()
	membershipController := controllers.NewMembershipController()

	// Public routes
	public := r.Group("/api/v1")
	{
		public.POST("/auth/login", authController.Login)
		public.POST("/auth/register", authController.Register)
		public.GET("/plans", membershipController.GetPlans)
		public.GET("/ws", websocket.HandleWebSocket(config.WSHub))
	}

	// Protected routes
	protected := r.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware())
	{
		// User routes
		protected.GET("/profile", userController.GetProfile)
		protected.GET("/classes", classController.GetClasses)
		protected.GET("/classes/:id", classController.GetClass)
		protected.GET("/memberships", membershipController.GetMemberships)
		protected.POST("/memberships", membershipController.CreateMembership)
		protected.GET("/bookings", bookingController.GetBookings)
		protected.POST("/bookings", bookingController.BookClass)
		protected.DELETE("/bookings/class/:classId", bookingController.CancelBooking)
	}

	// Admin only routes
	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminOnly())
	{
		// User management
		admin.POST("/users", adminController.CreateUser)
		admin.GET("/users", adminController.GetUsers)

		// Schedule management
		admin.POST("/classes", adminController.CreateClass)

		// Membership management
		admin.POST("/memberships", adminController.GrantMembership)
	}

	return r
}
