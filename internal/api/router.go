package api

import (
	"log"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"hostel-management-backend/config"
	"hostel-management-backend/internal/mw"
	"hostel-management-backend/internal/store"
)

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", mw.RequestIDHeader},
		ExposeHeaders: []string{mw.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	// cors rejects "*" mixed with explicit origins.
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, cfg config.ServerConfig, logger *log.Logger) *gin.Engine {
	r := gin.Default()
	r.Use(mw.RequestID())
	r.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	handler := NewHandler(s, logger)

	r.GET("/healthz", handler.Healthz)

	// Rate limit per client IP
	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	// API group
	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/organizations", handler.ListOrganizations)
		api.POST("/organizations", handler.CreateOrganization)

		// Inventory hierarchy: hostel -> floor -> room -> bed
		api.GET("/hostels", handler.ListHostels)
		api.POST("/hostels", handler.CreateHostel)
		api.GET("/hostels/:hostelId", handler.GetHostel)
		api.GET("/hostels/:hostelId/floors", handler.ListFloors)
		api.POST("/floors", handler.CreateFloor)
		api.GET("/floors/:floorId/rooms", handler.ListRooms)
		api.POST("/rooms", handler.CreateRoom)
		api.GET("/rooms/:roomId/beds", handler.ListBeds)
		api.POST("/beds", handler.CreateBed)
		api.POST("/beds/bulk", handler.BulkCreateBeds)
		api.GET("/beds/available", handler.ListAvailableBeds)
		api.PATCH("/beds/:bedId/status", handler.SetBedStatus)

		api.GET("/students", handler.ListStudents)
		api.POST("/students", handler.CreateStudent)
		api.PATCH("/students/:studentId/photo", handler.UpdateStudentPhoto)
		api.PATCH("/students/:studentId/status", handler.SetStudentStatus)
		api.GET("/students/:studentId/allocations", handler.ListStudentAllocations)

		api.POST("/users", handler.CreateUser)
		api.PATCH("/users/:userId/role", handler.AssignUserRole)

		api.GET("/allocations", handler.ListAllocations)
		api.POST("/allocations", handler.CreateAllocation)
		api.PATCH("/allocations/:allocationId/vacate", handler.VacateAllocation)

		api.GET("/payments", handler.ListPayments)
		api.POST("/payments", handler.CreatePayment)
		api.PATCH("/payments/:paymentId/mark-paid", handler.MarkPaymentPaid)

		api.GET("/tariffs", handler.ListTariffs)
		api.POST("/tariffs", handler.CreateTariff)

		api.GET("/dashboard/stats", handler.DashboardStats)
		api.GET("/dashboard/hostel-occupancy", handler.HostelOccupancy)
		api.GET("/dashboard/floor-occupancy/:hostelId", handler.FloorOccupancy)
		api.GET("/dashboard/due-payments", handler.DuePayments)
		api.GET("/dashboard/todays-payments", handler.TodaysPayments)

		api.GET("/roles", handler.ListRoles)
		api.GET("/access/menu", handler.VisibleMenu)
		api.GET("/access/check", handler.CheckAccess)
	}

	return r
}
