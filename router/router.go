package router

import (
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"

	"github.com/danuartha/resto-pos/catalog"
	"github.com/danuartha/resto-pos/controllers"
	"github.com/danuartha/resto-pos/middlewares"
	"github.com/danuartha/resto-pos/services"
)

func SetupRouter(db *gorm.DB, cat *catalog.Catalog) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi service dan controller
	orderService := services.NewOrderService(db, cat)
	reservationService := services.NewReservationService(db, cat)
	tableService := services.NewTableService(db, cat)

	userCtrl := controllers.NewUserController(db)
	menuCtrl := controllers.NewMenuController(db)
	categoryCtrl := controllers.NewMenuCategoryController(db)
	orderCtrl := controllers.NewOrderController(orderService)
	reservationCtrl := controllers.NewReservationController(reservationService)
	tableCtrl := controllers.NewTableController(tableService)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter ketat untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Lihat kategori dan menu tanpa login
	r.GET("/categories", categoryCtrl.GetAllCategories)
	r.GET("/menus", menuCtrl.GetAllMenus)
	r.GET("/menus/by-category", menuCtrl.GetMenuByCategory)
	r.GET("/tables", tableCtrl.GetAllTables)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/profile", userCtrl.GetProfile)
	auth.POST("/logout", userCtrl.Logout)
	auth.GET("/users", userCtrl.GetAllUsers)

	// TABLES (staff/admin)
	staff := auth.Group("/")
	staff.Use(middlewares.RequireRoles("staff"))
	{
		staff.POST("/tables", tableCtrl.CreateTable)
		staff.GET("/tables/:table_id", tableCtrl.GetTableByID)
		staff.PATCH("/tables/:table_id", tableCtrl.UpdateTable)
		staff.DELETE("/tables/:table_id", tableCtrl.DeleteTable)
		staff.GET("/tables/by-status", tableCtrl.FindTablesByStatus)
		staff.GET("/dashboard/stats", tableCtrl.GetDashboardStats)

		// ORDERS
		staff.GET("/orders", orderCtrl.GetAllOrders)
		staff.GET("/orders/open", orderCtrl.GetOpenOrders)
		staff.GET("/orders/paid", orderCtrl.GetPaidOrders)
		staff.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		staff.POST("/orders", orderCtrl.CreateOrder)
		staff.POST("/orders/start", orderCtrl.StartOrder)
		staff.POST("/orders/:order_id/pay", orderCtrl.PayOrder)
		staff.PATCH("/orders/:order_id/status", orderCtrl.UpdateStatus)
		staff.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)
		staff.POST("/orders/:order_id/items", orderCtrl.AddItem)
		staff.PATCH("/orders/:order_id/items/:item_id", orderCtrl.UpdateItem)
		staff.DELETE("/orders/:order_id/items/:item_id", orderCtrl.RemoveItem)
		staff.GET("/tables/:table_id/orders/open", orderCtrl.GetOpenOrdersByTable)

		// RESERVATIONS
		staff.GET("/reservations", reservationCtrl.GetAllReservations)
		staff.GET("/reservations/by-status", reservationCtrl.GetReservationsByStatus)
		staff.GET("/reservations/:reservation_id", reservationCtrl.GetReservationByID)
		staff.POST("/reservations", reservationCtrl.CreateReservation)
		staff.PATCH("/reservations/:reservation_id", reservationCtrl.UpdateReservation)
		staff.DELETE("/reservations/:reservation_id", reservationCtrl.DeleteReservation)
		staff.GET("/tables/:table_id/reservations", reservationCtrl.GetReservationsByTableAndRange)
	}

	// MENUS & CATEGORIES (admin)
	admin := auth.Group("/")
	admin.Use(middlewares.RequireRoles())
	{
		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PATCH("/categories/:cat_id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:cat_id", categoryCtrl.DeleteCategory)

		admin.POST("/menus", menuCtrl.CreateMenu)
		admin.GET("/menus/:menu_id", menuCtrl.GetMenuByID)
		admin.PATCH("/menus/:menu_id", menuCtrl.UpdateMenu)
		admin.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)
	}

	// WebSocket floor display
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware())
	{
		wsGroup.GET("/events", controllers.EventsHandler)
	}

	return r
}
