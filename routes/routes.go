package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/itsraghul/hearty-foods/controllers"
	"github.com/itsraghul/hearty-foods/middleware"
)

// Controllers bundles everything the router wires up.
type Controllers struct {
	Dishes *controllers.DishController
	Users  *controllers.UserController
	Orders *controllers.OrderController
	Plate  *controllers.PlateController
	Admin  *controllers.AdminController
	Seed   *controllers.SeedController
}

// Register wires all API routes. The seed surface is registered only when
// seedEnabled is true (never in production).
func Register(r *gin.Engine, c Controllers, jwtSecret string, seedEnabled bool) {
	auth := middleware.Auth(jwtSecret)
	admin := middleware.AdminOnly()

	api := r.Group("/api")

	dishRoutes := api.Group("/dishes")
	{
		dishRoutes.GET("", c.Dishes.GetDishes)
		dishRoutes.GET("/:id", c.Dishes.GetDishByID)
		dishRoutes.GET("/slug/:slug", c.Dishes.GetDishBySlug)
	}

	userRoutes := api.Group("/users")
	{
		userRoutes.POST("/login", middleware.RateLimit(), c.Users.Login)
		userRoutes.POST("/register", middleware.RateLimit(), c.Users.Register)
		userRoutes.PUT("/profile", auth, c.Users.UpdateProfile)
	}

	api.GET("/keys/paypal", auth, c.Orders.GetPayPalKey)

	orderRoutes := api.Group("/orders", auth)
	{
		orderRoutes.POST("", c.Orders.CreateOrder)
		orderRoutes.GET("/history", c.Orders.GetOrderHistory)
		orderRoutes.GET("/:id", c.Orders.GetOrderByID)
		orderRoutes.PUT("/:id/pay", c.Orders.PayOrder)
		orderRoutes.PUT("/:id/deliver", admin, c.Orders.DeliverOrder)
		orderRoutes.POST("/:id/payment-intent", c.Orders.CreatePaymentIntent)
	}

	plateRoutes := api.Group("/plate", auth)
	{
		plateRoutes.GET("", c.Plate.GetPlate)
		plateRoutes.DELETE("", c.Plate.ClearPlate)
		plateRoutes.POST("/items", c.Plate.AddItem)
		plateRoutes.DELETE("/items/:id", c.Plate.RemoveItem)
		plateRoutes.PUT("/address", c.Plate.SetAddress)
		plateRoutes.PUT("/payment-method", c.Plate.SetPaymentMethod)
		plateRoutes.PUT("/dark-mode", c.Plate.SetDarkMode)
	}

	adminRoutes := api.Group("/admin", auth, admin)
	{
		adminRoutes.GET("/summary", c.Admin.GetSummary)
		adminRoutes.POST("/uploads", c.Admin.CreateUpload)
		adminRoutes.GET("/orders", c.Orders.GetAllOrders)

		adminRoutes.GET("/dishes", c.Dishes.GetDishes)
		adminRoutes.POST("/dishes", c.Dishes.CreateDish)
		adminRoutes.GET("/dishes/:id", c.Dishes.GetDishByID)
		adminRoutes.PUT("/dishes/:id", c.Dishes.UpdateDish)
		adminRoutes.DELETE("/dishes/:id", c.Dishes.DeleteDish)

		adminRoutes.GET("/users", c.Users.GetUsers)
		adminRoutes.GET("/users/:id", c.Users.GetUser)
		adminRoutes.PUT("/users/:id", c.Users.UpdateUser)
		adminRoutes.DELETE("/users/:id", c.Users.DeleteUser)
	}

	if seedEnabled {
		api.GET("/seed", c.Seed.Seed)
		api.POST("/seed", c.Seed.Seed)
	}
}
